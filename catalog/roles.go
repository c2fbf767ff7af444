package catalog

import (
	"fmt"
	"log"
	"strings"

	"github.com/forhad-fhj/SkillBridge/models"
)

// roleFile is the on-disk layout of a role catalog: {"roles": [...]}
type roleFile struct {
	Roles []models.Role `json:"roles" yaml:"roles"`
}

// BuiltinRoles returns the entry-level roles shipped with the service.
func BuiltinRoles() []models.Role {
	return []models.Role{
		{
			ID:              "frontend-intern",
			Title:           "Frontend Developer Intern",
			Difficulty:      "Beginner",
			Description:     "Build UI components and pages for a production web app.",
			CompanyTypes:    []string{"Startups", "Agencies", "Product companies"},
			AvgSalary:       "$15-25/hr",
			GrowthPath:      "Frontend Intern → Junior Frontend Developer → Frontend Engineer",
			RequiredSkills:  []string{"HTML", "CSS", "JavaScript", "React", "Git"},
			PreferredSkills: []string{"TypeScript", "Tailwind", "Jest"},
			MinReadiness:    30,
		},
		{
			ID:              "backend-intern",
			Title:           "Backend Developer Intern",
			Difficulty:      "Intermediate",
			Description:     "Write APIs and database queries behind a web product.",
			CompanyTypes:    []string{"Startups", "SaaS companies"},
			AvgSalary:       "$18-28/hr",
			GrowthPath:      "Backend Intern → Junior Backend Developer → Backend Engineer",
			RequiredSkills:  []string{"Python", "SQL", "REST API", "Git"},
			PreferredSkills: []string{"Django", "PostgreSQL", "Docker", "Redis"},
			MinReadiness:    40,
		},
		{
			ID:              "fullstack-intern",
			Title:           "Full Stack Developer Intern",
			Difficulty:      "Intermediate",
			Description:     "Ship features end to end across a React frontend and a Node.js backend.",
			CompanyTypes:    []string{"Startups", "Agencies"},
			AvgSalary:       "$18-30/hr",
			GrowthPath:      "Full Stack Intern → Junior Full Stack Developer → Full Stack Engineer",
			RequiredSkills:  []string{"JavaScript", "React", "Node.js", "SQL", "Git"},
			PreferredSkills: []string{"TypeScript", "MongoDB", "Docker", "Next.js"},
			MinReadiness:    50,
		},
		{
			ID:              "data-analyst-intern",
			Title:           "Data Analyst Intern",
			Difficulty:      "Beginner",
			Description:     "Clean datasets and build reports and dashboards for business teams.",
			CompanyTypes:    []string{"Enterprises", "Consultancies", "Fintech"},
			AvgSalary:       "$15-25/hr",
			GrowthPath:      "Data Analyst Intern → Data Analyst → Senior Data Analyst",
			RequiredSkills:  []string{"SQL", "Excel", "Python"},
			PreferredSkills: []string{"Pandas", "Tableau", "Power BI", "Statistics"},
			MinReadiness:    30,
		},
		{
			ID:              "mobile-intern",
			Title:           "Mobile App Developer Intern",
			Difficulty:      "Intermediate",
			Description:     "Build screens and features for cross-platform mobile apps.",
			CompanyTypes:    []string{"Startups", "Product companies"},
			AvgSalary:       "$16-26/hr",
			GrowthPath:      "Mobile Intern → Junior Mobile Developer → Mobile Engineer",
			RequiredSkills:  []string{"Flutter", "Dart", "Git"},
			PreferredSkills: []string{"Firebase", "React Native", "Kotlin", "Swift"},
			MinReadiness:    40,
		},
		{
			ID:              "qa-intern",
			Title:           "QA Automation Intern",
			Difficulty:      "Beginner",
			Description:     "Write automated tests and help keep releases stable.",
			CompanyTypes:    []string{"Enterprises", "SaaS companies"},
			AvgSalary:       "$14-22/hr",
			GrowthPath:      "QA Intern → QA Engineer → SDET",
			RequiredSkills:  []string{"JavaScript", "Testing", "Git"},
			PreferredSkills: []string{"Cypress", "Selenium", "Jest", "Postman"},
			MinReadiness:    20,
		},
		{
			ID:              "devops-intern",
			Title:           "DevOps Intern",
			Difficulty:      "Advanced",
			Description:     "Automate builds, deployments and cloud infrastructure.",
			CompanyTypes:    []string{"SaaS companies", "Enterprises"},
			AvgSalary:       "$20-32/hr",
			GrowthPath:      "DevOps Intern → DevOps Engineer → Site Reliability Engineer",
			RequiredSkills:  []string{"Linux", "Docker", "Git", "Bash"},
			PreferredSkills: []string{"Kubernetes", "AWS", "Terraform", "CI/CD"},
			MinReadiness:    60,
		},
		{
			ID:              "ml-intern",
			Title:           "Machine Learning Intern",
			Difficulty:      "Advanced",
			Description:     "Prepare data and train models for product features.",
			CompanyTypes:    []string{"AI startups", "Research labs"},
			AvgSalary:       "$22-35/hr",
			GrowthPath:      "ML Intern → Junior ML Engineer → ML Engineer",
			RequiredSkills:  []string{"Python", "Machine Learning", "Pandas", "NumPy"},
			PreferredSkills: []string{"TensorFlow", "PyTorch", "Scikit-learn", "SQL"},
			MinReadiness:    65,
		},
	}
}

// LoadRolesFile reads roles from a JSON or YAML file. The file holds either
// {"roles": [...]} or a bare list.
func LoadRolesFile(path string) ([]models.Role, error) {
	data, unmarshal, err := readDataFile(path)
	if err != nil {
		return nil, err
	}

	var wrapped roleFile
	if err := unmarshal(data, &wrapped); err == nil && len(wrapped.Roles) > 0 {
		return wrapped.Roles, nil
	}

	var list []models.Role
	if err := unmarshal(data, &list); err != nil {
		return nil, fmt.Errorf("failed to parse role file %s: %w", path, err)
	}
	return list, nil
}

// LoadRoles returns the built-in roles, replaced or extended by path when
// set. Roles are keyed by ID; a file role with a built-in ID replaces it.
func LoadRoles(path string) ([]models.Role, error) {
	roles := BuiltinRoles()
	if path == "" {
		return roles, nil
	}

	extra, err := LoadRolesFile(path)
	if err != nil {
		return nil, err
	}

	index := make(map[string]int, len(roles))
	for i, r := range roles {
		index[r.ID] = i
	}
	for _, r := range extra {
		r.ID = strings.TrimSpace(r.ID)
		if r.ID == "" || strings.TrimSpace(r.Title) == "" {
			return nil, fmt.Errorf("role in %s needs an id and a title", path)
		}
		if i, ok := index[r.ID]; ok {
			roles[i] = r
			continue
		}
		index[r.ID] = len(roles)
		roles = append(roles, r)
	}
	log.Printf("[Catalog] Loaded %d roles from %s", len(extra), path)
	return roles, nil
}
