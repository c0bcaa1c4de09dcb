package main

import (
	"fmt"
	"log"
	"net/http"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/actuallystonmai/jobrec/internal/config"
	"github.com/actuallystonmai/jobrec/internal/model"
)

var (
	flagBaseURL string
	flagTimeout time.Duration
)

var rootCmd = &cobra.Command{
	Use:          "jobrec",
	Short:        "Skill-based job recommendations",
	SilenceUsage: true, // don't print usage on operational errors
	Long: `jobrec collects your skills, asks the recommendation API for matching
jobs and shows them with their match score. Run "jobrec serve" for the
web widget or "jobrec recommend" for a one-off search in the terminal.`,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&flagBaseURL, "base-url", "", "recommendation API base URL (overrides RECOMMENDER_BASE_URL)")
	rootCmd.PersistentFlags().DurationVar(&flagTimeout, "timeout", 0, "HTTP client timeout (overrides HTTP_TIMEOUT)")
}

// Execute is called by main.go.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// loadConfig reads env/.env and applies the persistent flags on top.
func loadConfig(cmd *cobra.Command) (*config.Config, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, err
	}
	if cmd.Flags().Changed("base-url") {
		cfg.RecommenderBaseURL = flagBaseURL
	}
	if cmd.Flags().Changed("timeout") {
		cfg.HTTPTimeout = flagTimeout
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func newLogger() *log.Logger {
	return log.New(os.Stderr, "", log.LstdFlags)
}

func newModelClient(cfg *config.Config, logger *log.Logger) *model.Client {
	return model.NewClient(cfg.RecommenderBaseURL, &http.Client{Timeout: cfg.HTTPTimeout}, logger)
}
