package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/spinbox/internal/registry"
	"github.com/vovakirdan/spinbox/internal/storage"
)

var scoresCmd = &cobra.Command{
	Use:   "scores <demo>",
	Short: "Show best bounce counts for a demo",
	Long: `Display the top 10 bounce counts recorded for the specified demo.

Examples:
  spinbox scores spin
  spinbox scores spin_segment`,
	Args: cobra.ExactArgs(1),
	RunE: runScores,
}

func runScores(cmd *cobra.Command, args []string) error {
	demoID := args[0]

	game, err := registry.Create(demoID)
	if err != nil {
		return fmt.Errorf("%w (run 'spinbox list' to see available demos)", err)
	}

	store, err := storage.Open(flagDBPath)
	if err != nil {
		return fmt.Errorf("opening run database: %w", err)
	}
	defer store.Close()

	scores, err := store.TopScores(demoID, 10)
	if err != nil {
		return fmt.Errorf("retrieving scores: %w", err)
	}

	fmt.Printf("Most Bounces - %s\n", game.Title())
	fmt.Println()

	if len(scores) == 0 {
		fmt.Println("No runs recorded yet.")
		fmt.Println()
		fmt.Printf("Run 'spinbox play %s' to record the first one!\n", demoID)
		return nil
	}

	fmt.Printf("  %-4s  %-10s  %s\n", "Rank", "Bounces", "Date")
	fmt.Printf("  %-4s  %-10s  %s\n", "----", "-------", "----")

	for i, entry := range scores {
		fmt.Printf("  %-4d  %-10d  %s\n", i+1, entry.Score, entry.CreatedAt.Format("2006-01-02 15:04"))
	}

	if stats, err := store.GetGameStats(demoID); err == nil {
		fmt.Println()
		fmt.Printf("Best: %d  Runs: %d  Average: %.1f\n", stats.HighScore, stats.GamesCount, stats.AvgScore)
	}
	return nil
}
