package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/spinbox/internal/config"
	"github.com/vovakirdan/spinbox/internal/registry"
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List all available demos",
	Long:  `Shows every registered demo with its collision strategy.`,
	Run:   runList,
}

func runList(cmd *cobra.Command, args []string) {
	demos := registry.List()

	if len(demos) == 0 {
		fmt.Println("No demos available.")
		return
	}

	fmt.Println("Available demos:")
	fmt.Println()

	maxIDLen := 2 // "ID" header
	for _, d := range demos {
		maxIDLen = max(maxIDLen, len(d.ID))
	}

	fmt.Printf("  %-*s  %-8s  %s\n", maxIDLen, "ID", "Strategy", "Title")
	fmt.Printf("  %-*s  %-8s  %s\n", maxIDLen, "--", "--------", "-----")

	for _, d := range demos {
		strategy := config.DefaultFor(d.ID).Strategy()
		fmt.Printf("  %-*s  %-8s  %s\n", maxIDLen, d.ID, strategy, d.Title)
	}

	fmt.Println()
	fmt.Println("Run 'spinbox play <id>' to start a demo.")
}
