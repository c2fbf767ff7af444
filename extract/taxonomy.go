package extract

// Taxonomy maps a category to the lower-case skill patterns searched for in text.
type Taxonomy map[string][]string

// DefaultTaxonomy is the built-in list of technical skills.
func DefaultTaxonomy() Taxonomy {
	return Taxonomy{
		"languages": {
			"python", "javascript", "typescript", "java", "c++", "c#", "php", "ruby",
			"go", "rust", "swift", "kotlin", "scala", "r", "sql", "html", "html5",
			"css", "css3", "bash", "shell", "perl", "dart", "elixir", "clojure",
		},
		"frameworks": {
			"react", "react.js", "reactjs", "vue", "vue.js", "vuejs", "angular",
			"next.js", "nextjs", "nuxt", "svelte", "django", "flask", "fastapi",
			"express", "express.js", "expressjs", "nestjs", "spring", "spring boot",
			"laravel", "rails", "ruby on rails", "asp.net", ".net", "tensorflow",
			"pytorch", "keras", "scikit-learn", "pandas", "numpy", "react native",
			"flutter", "ionic", "xamarin", "tailwind", "tailwind css", "bootstrap",
			"material-ui", "mui", "chakra ui", "redux", "mobx", "zustand", "graphql",
			"apollo", "prisma", "typeorm", "sequelize", "mongoose", "hibernate",
		},
		"databases": {
			"postgresql", "postgres", "mysql", "mongodb", "redis", "elasticsearch",
			"cassandra", "dynamodb", "sqlite", "oracle", "sql server", "mariadb",
			"neo4j", "couchdb", "firebase", "supabase",
		},
		"tools": {
			"git", "github", "gitlab", "bitbucket", "docker", "kubernetes", "k8s",
			"jenkins", "travis ci", "circle ci", "github actions", "aws", "azure",
			"gcp", "google cloud", "heroku", "vercel", "netlify", "terraform",
			"ansible", "puppet", "chef", "vagrant", "nginx", "apache", "webpack",
			"vite", "rollup", "babel", "eslint", "prettier", "jest", "mocha",
			"chai", "cypress", "selenium", "postman", "insomnia", "figma",
			"adobe xd", "sketch", "photoshop", "illustrator", "jira", "confluence",
			"slack", "trello", "asana", "notion", "vs code", "intellij", "pycharm",
			"jupyter", "tableau", "power bi", "grafana", "prometheus", "elk",
			"kafka", "rabbitmq", "celery", "airflow", "spark", "hadoop", "mlflow",
		},
		"concepts": {
			"restful api", "rest api", "api", "microservices", "serverless",
			"ci/cd", "devops", "agile", "scrum", "tdd", "bdd", "oop", "functional programming",
			"machine learning", "deep learning", "nlp", "computer vision", "data science",
			"data analysis", "data visualization", "etl", "big data", "cloud computing",
			"responsive design", "mobile development", "web development", "full stack",
			"frontend", "backend", "ui/ux", "accessibility", "seo", "performance optimization",
			"security", "authentication", "authorization", "jwt", "oauth", "solid principles",
			"design patterns", "algorithms", "data structures", "testing", "debugging",
		},
	}
}
