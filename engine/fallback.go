package engine

import (
	"fmt"
	"strings"

	"github.com/forhad-fhj/SkillBridge/models"
)

// DefaultDomain is used when a request names no domain or an unknown one.
const DefaultDomain = models.DomainFrontend

// fallbackTemplates is a small representative market per domain, used when
// no job data is available.
var fallbackTemplates = map[string][]models.SkillSet{
	models.DomainFrontend: {
		{"skills": {"React", "JavaScript", "CSS", "HTML", "TypeScript", "Tailwind", "Next.js", "Redux", "Git"}},
		{"skills": {"Vue", "JavaScript", "HTML", "CSS", "Sass", "Webpack"}},
		{"skills": {"React", "TypeScript", "MaterialUI", "Jest", "GraphQL"}},
		{"skills": {"Angular", "TypeScript", "RxJS", "HTML", "SCSS"}},
		{"skills": {"JavaScript", "React", "Node.js", "CSS", "Figma"}},
	},
	models.DomainBackend: {
		{"skills": {"Python", "Django", "SQL", "PostgreSQL", "Docker", "AWS", "Git", "Redis"}},
		{"skills": {"Node.js", "Express", "MongoDB", "JavaScript", "TypeScript", "REST API"}},
		{"skills": {"Java", "Spring Boot", "MySQL", "Microservices", "Kafka"}},
		{"skills": {"Go", "PostgreSQL", "Docker", "Kubernetes", "gRPC"}},
		{"skills": {"Python", "Flask", "SQLAlchemy", "Celery", "RabbitMQ"}},
	},
	models.DomainData: {
		{"skills": {"Python", "Pandas", "NumPy", "SQL", "Tableau", "Excel", "Statistics"}},
		{"skills": {"R", "SQL", "PowerBI", "Data Visualization", "Excel"}},
		{"skills": {"Python", "SQL", "Machine Learning", "Scikit-Learn", "Jupyter"}},
		{"skills": {"Excel", "VBA", "SQL", "Reporting", "Google Sheets"}},
		{"skills": {"Python", "Spark", "Hadoop", "SQL", "AWS"}},
	},
	models.DomainFullStack: {
		{"skills": {"React", "Node.js", "Express", "MongoDB", "JavaScript", "TypeScript", "HTML", "CSS"}},
		{"skills": {"Vue", "Laravel", "PHP", "MySQL", "JavaScript", "Tailwind"}},
		{"skills": {"Next.js", "PostgreSQL", "Prisma", "TypeScript", "Tailwind", "Vercel"}},
		{"skills": {"Angular", "Java", "Spring Boot", "SQL", "TypeScript"}},
		{"skills": {"MERN Stack", "AWS", "Docker", "Git", "CI/CD"}},
	},
	models.DomainMobile: {
		{"skills": {"Flutter", "Dart", "Firebase", "Android", "iOS"}},
		{"skills": {"React Native", "JavaScript", "TypeScript", "Redux", "Mobile UI"}},
		{"skills": {"Swift", "iOS", "Xcode", "CoreData", "SwiftUI"}},
		{"skills": {"Kotlin", "Android", "Jetpack Compose", "Java", "Gradle"}},
		{"skills": {"Flutter", "Bloc", "Clean Architecture", "Git", "App Store"}},
	},
}

// FallbackDomains lists the domains with built-in market data.
func FallbackDomains() []string {
	return []string{
		models.DomainFrontend,
		models.DomainBackend,
		models.DomainData,
		models.DomainFullStack,
		models.DomainMobile,
	}
}

// FallbackMarket returns the built-in job records for a domain and the
// domain actually used. Unknown or empty domains resolve to DefaultDomain.
// Each call returns fresh records the caller may modify.
func FallbackMarket(domain string) ([]models.JobRecord, string) {
	templates, ok := fallbackTemplates[domain]
	if !ok {
		domain = DefaultDomain
		templates = fallbackTemplates[domain]
	}

	slug := strings.ToLower(strings.ReplaceAll(domain, " ", "-"))
	jobs := make([]models.JobRecord, 0, len(templates))
	for i, skills := range templates {
		copied := make(models.SkillSet, len(skills))
		for category, list := range skills {
			copied[category] = append([]string(nil), list...)
		}
		jobs = append(jobs, models.JobRecord{
			ID:              fmt.Sprintf("fallback-%s-%d", slug, i+1),
			Title:           domain,
			Company:         "SkillBridge market sample",
			Domain:          domain,
			ExtractedSkills: copied,
		})
	}
	return jobs, domain
}
