// spinbox drives a ball bouncing inside a rotating square, in the terminal
// or headless.
//
// Usage:
//
//	spinbox list              - List available demos
//	spinbox play <demo>       - Run a demo interactively
//	spinbox menu              - Pick demos from an interactive menu
//	spinbox serve             - Start SSH server for remote sessions
//	spinbox sim <demo>        - Run a demo headless and check its invariants
//	spinbox scores <demo>     - Show best bounce counts for a demo
//	spinbox runs <demo>       - Show recent recorded runs
//
// Global flags:
//
//	--fps <rate>    - Set tick rate (default: 60)
//	--seed <value>  - Set seed recorded with the run config
//	--db <path>     - Set database path (default: ~/.spinbox/spinbox.db)
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	// Import demos to register them
	_ "github.com/vovakirdan/spinbox/internal/games/spin"
)

var (
	// Global flags
	flagFPS    int
	flagSeed   int64
	flagDBPath string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "spinbox",
	Short: "Spinbox - a ball bouncing inside a rotating square",
	Long: `Spinbox simulates a ball moving inside a square that rotates about
its centre. Every wall contact reflects the ball's velocity across the
wall normal and pushes the ball back inside.

Available commands:
  list     - Show all available demos
  play     - Run a specific demo directly
  menu     - Interactive demo picker menu
  serve    - Start SSH server for remote sessions
  sim      - Run a demo headless and report invariants
  scores   - View best bounce counts
  runs     - View recent recorded runs

Examples:
  spinbox list
  spinbox play spin
  spinbox menu
  spinbox serve --ssh :2222
  spinbox sim spin_segment --ticks 100000`,
	SilenceUsage: true,
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Tick rate (frames per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "Seed (0 = based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.spinbox/spinbox.db", "Path to run database")

	// Add subcommands
	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(menuCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(simCmd)
	rootCmd.AddCommand(scoresCmd)
	rootCmd.AddCommand(runsCmd)
}
