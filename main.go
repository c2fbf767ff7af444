package main

import (
	"os"

	"github.com/forhad-fhj/SkillBridge/cmd"
)

// @title SkillBridge API
// @version 1.0
// @description Skill gap analysis backend: resume skill extraction, market readiness scoring, and learning roadmaps.
// @termsOfService http://swagger.io/terms/

// @contact.name API Support
// @contact.email support@skillbridge.dev

// @license.name Apache 2.0
// @license.url http://www.apache.org/licenses/LICENSE-2.0.html

// @host localhost:8080
// @BasePath /api

// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description Type "Bearer" followed by a space and JWT token.

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
