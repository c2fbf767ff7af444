package catalog

import "github.com/forhad-fhj/SkillBridge/models"

// Builtin returns the catalog shipped with the service.
func Builtin() []Entry {
	return []Entry{
		{
			Skill:         "Python",
			EstimatedTime: "3-4 weeks",
			Description:   "Master Python syntax, data structures, and OOP concepts.",
			Resources: []models.Resource{
				{Title: "Python.org", URL: "https://www.python.org/about/gettingstarted/", Platform: "Python.org", Difficulty: "Beginner", Type: "documentation"},
				{Title: "Real Python", URL: "https://realpython.com/", Platform: "Real Python", Difficulty: "Beginner", Type: "tutorial"},
				{Title: "Automate the Boring Stuff", URL: "https://automatetheboringstuff.com/", Platform: "Book", Difficulty: "Beginner", Type: "book"},
			},
		},
		{
			Skill:         "React",
			EstimatedTime: "2-3 weeks",
			Description:   "Learn Components, Hooks, State Management, and Next.js basics.",
			Resources: []models.Resource{
				{Title: "React Docs", URL: "https://react.dev/", Platform: "react.dev", Difficulty: "Beginner", Type: "documentation"},
				{Title: "Fullstack Open", URL: "https://fullstackopen.com/en/", Platform: "University of Helsinki", Difficulty: "Intermediate", Type: "course"},
			},
		},
		{
			Skill:         "SQL",
			EstimatedTime: "1-2 weeks",
			Description:   "Understand relational DBs, SELECT queries, JOINs, and normalization.",
			Resources: []models.Resource{
				{Title: "SQLZoo", URL: "https://sqlzoo.net/", Platform: "SQLZoo", Difficulty: "Beginner", Type: "interactive"},
				{Title: "Khan Academy SQL", URL: "https://www.khanacademy.org/computing/computer-programming/sql", Platform: "Khan Academy", Difficulty: "Beginner", Type: "course"},
			},
		},
		{
			Skill:         "Docker",
			EstimatedTime: "1 week",
			Description:   "Learn containerization, Dockerfiles, and basic orchestration.",
			Resources: []models.Resource{
				{Title: "Docker Get Started", URL: "https://docs.docker.com/get-started/", Platform: "Docker", Difficulty: "Beginner", Type: "documentation"},
			},
		},
		{
			Skill:         "Kubernetes",
			EstimatedTime: "1 week",
			Description:   "Learn containerization, Dockerfiles, and basic orchestration.",
			Resources: []models.Resource{
				{Title: "Kubernetes Basics", URL: "https://kubernetes.io/docs/tutorials/kubernetes-basics/", Platform: "Kubernetes", Difficulty: "Intermediate", Type: "tutorial"},
			},
		},
		{
			Skill:       "JavaScript",
			Description: "Learn the language core: types, functions, closures, promises, and the DOM.",
			Resources: []models.Resource{
				{Title: "MDN JavaScript Guide", URL: "https://developer.mozilla.org/en-US/docs/Web/JavaScript/Guide", Platform: "MDN", Difficulty: "Beginner", Type: "documentation"},
				{Title: "javascript.info", URL: "https://javascript.info/", Platform: "javascript.info", Difficulty: "Beginner", Type: "tutorial"},
			},
		},
		{
			Skill:       "TypeScript",
			Description: "Add static types to JavaScript: interfaces, generics, and strict mode.",
			Resources: []models.Resource{
				{Title: "TypeScript Handbook", URL: "https://www.typescriptlang.org/docs/handbook/intro.html", Platform: "typescriptlang.org", Difficulty: "Intermediate", Type: "documentation"},
			},
		},
		{
			Skill: "HTML",
			Resources: []models.Resource{
				{Title: "MDN HTML Basics", URL: "https://developer.mozilla.org/en-US/docs/Learn/HTML", Platform: "MDN", Difficulty: "Beginner", Type: "documentation"},
			},
		},
		{
			Skill: "CSS",
			Resources: []models.Resource{
				{Title: "MDN CSS Basics", URL: "https://developer.mozilla.org/en-US/docs/Learn/CSS", Platform: "MDN", Difficulty: "Beginner", Type: "documentation"},
				{Title: "Flexbox Froggy", URL: "https://flexboxfroggy.com/", Platform: "Flexbox Froggy", Difficulty: "Beginner", Type: "interactive"},
			},
		},
		{
			Skill: "Git",
			Resources: []models.Resource{
				{Title: "Pro Git", URL: "https://git-scm.com/book/en/v2", Platform: "git-scm.com", Difficulty: "Beginner", Type: "book"},
			},
		},
		{
			Skill:       "Node",
			Description: "Build servers with Node.js: modules, the event loop, and npm.",
			Resources: []models.Resource{
				{Title: "Node.js Learn", URL: "https://nodejs.org/en/learn", Platform: "nodejs.org", Difficulty: "Beginner", Type: "documentation"},
			},
		},
		{
			Skill: "Go",
			Resources: []models.Resource{
				{Title: "A Tour of Go", URL: "https://go.dev/tour/", Platform: "go.dev", Difficulty: "Beginner", Type: "interactive"},
				{Title: "Effective Go", URL: "https://go.dev/doc/effective_go", Platform: "go.dev", Difficulty: "Intermediate", Type: "documentation"},
			},
		},
		{
			Skill: "AWS",
			Resources: []models.Resource{
				{Title: "AWS Skill Builder", URL: "https://skillbuilder.aws/", Platform: "AWS", Difficulty: "Intermediate", Type: "course"},
			},
		},
	}
}
