package cmd

import (
	"log"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "skillbridge",
	Short: "Skill gap analysis and learning roadmap service",
	Long:  "SkillBridge compares a student's skills with job market demand and builds a prioritized learning roadmap.",
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		// Load .env file if present (for local development)
		if err := godotenv.Load(); err != nil {
			log.Println("No .env file found, using environment variables")
		}
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		return runServer(cmd.Context())
	},
	SilenceUsage: true,
}

// Execute runs the root command
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(analyzeCmd)
	rootCmd.AddCommand(seedCmd)
}
