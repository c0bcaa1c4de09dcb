package main

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/actuallystonmai/jobrec/internal/domain"
	"github.com/actuallystonmai/jobrec/internal/widget"
)

var (
	flagTopN int
	flagJSON bool
)

var recommendCmd = &cobra.Command{
	Use:   "recommend <skills...>",
	Short: "Get job recommendations for a list of skills",
	Example: `  jobrec recommend python, machine learning react
  jobrec recommend --top-n 5 "go, kubernetes"`,
	RunE: runRecommend,
}

func init() {
	recommendCmd.Flags().IntVarP(&flagTopN, "top-n", "n", 0, "number of recommendations (overrides TOP_N)")
	recommendCmd.Flags().BoolVar(&flagJSON, "json", false, "print the widget state as JSON")
	rootCmd.AddCommand(recommendCmd)
}

func runRecommend(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}
	topN := cfg.TopN
	if cmd.Flags().Changed("top-n") {
		topN = flagTopN
	}

	logger := newLogger()
	w := widget.New(newModelClient(cfg, logger),
		widget.WithTopN(topN),
		widget.WithLogger(logger),
	)
	w.Mount(cmd.Context())
	defer w.Unmount()

	w.SetQuery(strings.Join(args, " "))
	submitErr := w.Submit(cmd.Context())
	state := w.Snapshot()

	if flagJSON {
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		if err := enc.Encode(state); err != nil {
			return err
		}
	} else {
		renderView(os.Stdout, widget.NewView(state))
	}

	if submitErr != nil {
		if domain.IsValidationError(submitErr) {
			return fmt.Errorf("no skills given")
		}
		return fmt.Errorf("recommendation failed")
	}
	return nil
}

func renderView(out io.Writer, v widget.View) {
	if h := v.Health; h != nil {
		loaded := "✗"
		if h.ModelLoaded {
			loaded = "✓"
		}
		fmt.Fprintf(out, "API Status: %s | Model Loaded: %s | Jobs Cached: %d\n", h.Status, loaded, h.TotalJobs)
	}

	if v.Error != "" {
		fmt.Fprintf(out, "\n  ✗  %s\n", v.Error)
	}

	if len(v.Cards) > 0 {
		fmt.Fprintf(out, "\n=== %s ===\n", v.Heading)
		for _, c := range v.Cards {
			fmt.Fprintf(out, "\n%s %d. %s  [%s]\n", tierIcon(c.Tier), c.Rank, c.JobRole, c.Score)
			fmt.Fprintf(out, "     Company:  %s\n", c.Company)
			fmt.Fprintf(out, "     Category: %s\n", c.Category)
			fmt.Fprintf(out, "     Skills:   %s\n", c.RequiredSkills)
			fmt.Fprintf(out, "     %s\n", c.Excerpt)
		}
	}

	if v.ShowEmpty {
		fmt.Fprintf(out, "\n  -  %s\n", v.EmptyText)
	}
}

func tierIcon(t widget.Tier) string {
	switch t {
	case widget.TierHigh:
		return "●"
	case widget.TierMedium:
		return "◐"
	default:
		return "○"
	}
}
