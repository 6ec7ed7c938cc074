package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/spinbox/internal/registry"
	"github.com/vovakirdan/spinbox/internal/storage"
)

var flagRunsLimit int

var runsCmd = &cobra.Command{
	Use:   "runs <demo>",
	Short: "Show recent recorded runs",
	Long: `Display the most recent runs recorded for a demo, newest first.

Examples:
  spinbox runs spin
  spinbox runs spin_segment --limit 50`,
	Args: cobra.ExactArgs(1),
	RunE: runRuns,
}

func init() {
	runsCmd.Flags().IntVar(&flagRunsLimit, "limit", 20, "Number of runs to show")
}

func runRuns(cmd *cobra.Command, args []string) error {
	demoID := args[0]
	if !registry.Exists(demoID) {
		return fmt.Errorf("unknown demo %q (run 'spinbox list' to see available demos)", demoID)
	}

	store, err := storage.Open(flagDBPath)
	if err != nil {
		return fmt.Errorf("opening run database: %w", err)
	}
	defer store.Close()

	runs, err := store.RecentRuns(demoID, flagRunsLimit)
	if err != nil {
		return fmt.Errorf("retrieving runs: %w", err)
	}

	if len(runs) == 0 {
		fmt.Println("No runs recorded yet.")
		return nil
	}

	fmt.Printf("  %-8s  %-8s  %8s  %8s  %7s  %9s  %s\n",
		"Run", "Strategy", "Ticks", "Bounces", "Angle", "Drift", "Date")
	for _, r := range runs {
		fmt.Printf("  %-8s  %-8s  %8d  %8d  %7.2f  %9.2e  %s\n",
			shortID(r.RunID), r.Strategy, r.Ticks, r.Bounces, r.FinalAngle, r.SpeedDrift,
			r.CreatedAt.Format("2006-01-02 15:04"))
	}
	return nil
}

func shortID(id string) string {
	if len(id) > 8 {
		return id[:8]
	}
	return id
}
