package main

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/spinbox/internal/games/spin"
	"github.com/vovakirdan/spinbox/internal/platform/tui"
	"github.com/vovakirdan/spinbox/internal/registry"
	"github.com/vovakirdan/spinbox/internal/storage"
)

var menuCmd = &cobra.Command{
	Use:   "menu",
	Short: "Start spinbox with a demo picker menu",
	Long: `Start spinbox in interactive menu mode.

Use arrow keys or j/k to navigate, Enter to select a demo.
When a demo quits you return to the menu.

Controls:
  Up/Down/j/k  - Navigate menu
  Enter/Space  - Select demo
  Tab          - Run history
  Q            - Quit

Examples:
  spinbox menu
  spinbox menu --fps 30
  spinbox menu --db ./spinbox.db`,
	Run: runMenu,
}

func init() {
	menuCmd.Flags().StringVar(&flagConfig, "config", "", "Path to custom demo config YAML")
	menuCmd.Flags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard, fixed")
}

func runMenu(_ *cobra.Command, _ []string) {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not open run database: %v\n", err)
		store = nil
	}

	spin.SetConfigPath(flagConfig)
	spin.SetDifficultyPreset(flagDifficulty)

	cfg := runtimeConfig()

	for {
		menuResult, err := tui.RunMenu(store, cfg)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			break
		}

		// Pick up any size changes
		cfg = menuResult.Config

		if menuResult.Quit {
			break
		}

		if menuResult.WantsScoreboard {
			goBack, sbErr := tui.RunScoreboard(store, cfg.ScreenW, cfg.ScreenH)
			if sbErr != nil {
				fmt.Fprintf(os.Stderr, "Error: %v\n", sbErr)
			}
			if goBack {
				continue
			}
			break
		}

		if menuResult.GameID == "" {
			break
		}

		game, err := registry.Create(menuResult.GameID)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error creating demo: %v\n", err)
			continue
		}

		if flagSeed == 0 {
			cfg.Seed = time.Now().UnixNano()
		}

		if err := tui.Run(game, store, cfg); err != nil {
			fmt.Fprintf(os.Stderr, "Error running demo: %v\n", err)
		}
	}

	if store != nil {
		store.Close()
	}
}
