package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

var healthCmd = &cobra.Command{
	Use:   "health",
	Short: "Check the recommendation API's readiness",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig(cmd)
		if err != nil {
			return fmt.Errorf("failed to load config: %w", err)
		}

		client := newModelClient(cfg, newLogger())
		health, err := client.CheckHealth(cmd.Context())
		if err != nil {
			printErr("", fmt.Sprintf("%s unreachable: %v", client.BaseURL(), err))
			return fmt.Errorf("health check failed")
		}

		printSection("Recommendation API")
		printInfo("status", health.Status)
		if health.ModelLoaded {
			printOK("model", "loaded")
		} else {
			printWarn("model", "not loaded")
		}
		printInfo("jobs", fmt.Sprintf("%d cached", health.TotalJobs))
		return nil
	},
}

func init() {
	rootCmd.AddCommand(healthCmd)
}
