package cmd

import (
	"fmt"
	"log"

	"github.com/spf13/cobra"

	"github.com/forhad-fhj/SkillBridge/config"
	"github.com/forhad-fhj/SkillBridge/engine"
)

var seedCmd = &cobra.Command{
	Use:   "seed",
	Short: "Load the built-in market dataset into the configured job store",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg := config.Load()
		if cfg.StorageBackend == config.StorageMemory {
			return fmt.Errorf("seeding the in-memory store has no effect; set STORAGE_BACKEND")
		}

		ctx := cmd.Context()
		store, err := openStore(ctx, cfg)
		if err != nil {
			return err
		}
		defer store.Close()

		total := 0
		for _, domain := range engine.FallbackDomains() {
			jobs, _ := engine.FallbackMarket(domain)
			for i := range jobs {
				if err := store.SaveJob(ctx, &jobs[i]); err != nil {
					return fmt.Errorf("failed to seed %s: %w", jobs[i].ID, err)
				}
			}
			log.Printf("[Seed] %s: %d jobs", domain, len(jobs))
			total += len(jobs)
		}

		fmt.Fprintf(cmd.OutOrStdout(), "Seeded %d jobs\n", total)
		return nil
	},
}
