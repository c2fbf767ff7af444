package cmd

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/forhad-fhj/SkillBridge/config"
	"github.com/forhad-fhj/SkillBridge/models"
)

var analyzeCmd = &cobra.Command{
	Use:   "analyze",
	Short: "Run a gap analysis from files and print the result as JSON",
	Example: `  skillbridge analyze --skills me.json --domain "Backend Developer"
  skillbridge analyze --skills me.yaml --jobs postings.json`,
	RunE: func(cmd *cobra.Command, args []string) error {
		skillsPath, _ := cmd.Flags().GetString("skills")
		jobsPath, _ := cmd.Flags().GetString("jobs")
		domain, _ := cmd.Flags().GetString("domain")

		var userSkills models.SkillSet
		if err := readDataFile(skillsPath, &userSkills); err != nil {
			return err
		}

		var jobs []models.JobRecord
		if jobsPath != "" {
			if err := readDataFile(jobsPath, &jobs); err != nil {
				return err
			}
		}

		cfg := config.Load()
		if domain == "" {
			domain = cfg.DefaultDomain
		}

		eng, _, err := newEngine(cfg)
		if err != nil {
			return err
		}

		result, err := eng.AnalyzeWithFallback(userSkills, jobs, domain)
		if err != nil {
			return err
		}

		enc := json.NewEncoder(cmd.OutOrStdout())
		enc.SetIndent("", "  ")
		return enc.Encode(result)
	},
}

func init() {
	analyzeCmd.Flags().String("skills", "", "JSON or YAML file with the user's skills by category")
	analyzeCmd.Flags().String("jobs", "", "JSON or YAML file with job postings (defaults to the built-in market)")
	analyzeCmd.Flags().String("domain", "", "Target domain for the built-in market")
	_ = analyzeCmd.MarkFlagRequired("skills")
}

// readDataFile decodes a JSON or YAML file into out, chosen by extension
func readDataFile(path string, out interface{}) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("failed to read %s: %w", path, err)
	}

	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		err = yaml.Unmarshal(data, out)
	default:
		err = json.Unmarshal(data, out)
	}
	if err != nil {
		return fmt.Errorf("failed to parse %s: %w", path, err)
	}
	return nil
}
