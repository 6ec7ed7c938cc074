package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/spinbox/internal/config"
	"github.com/vovakirdan/spinbox/internal/core"
	"github.com/vovakirdan/spinbox/internal/games/spin"
	"github.com/vovakirdan/spinbox/internal/platform/tui"
	"github.com/vovakirdan/spinbox/internal/registry"
	"github.com/vovakirdan/spinbox/internal/storage"
)

var (
	flagConfig     string
	flagDifficulty string
)

var playCmd = &cobra.Command{
	Use:   "play <demo>",
	Short: "Run a demo",
	Long: `Start the specified demo in the terminal.

Controls:
  W/Up       - Spin faster
  S/Down     - Spin slower
  Space      - Reverse spin
  X          - Reset spin
  P/Esc      - Pause
  R          - Restart
  Ctrl+S     - Save screenshot
  Q/Ctrl+C   - Quit

Difficulty options:
  easy   - Spin ramps up from the base rate
  normal - Spin starts at 30% of the ramp
  hard   - Spin starts at 70% of the ramp
  fixed  - Spin stays at the configured rate

Examples:
  spinbox play spin
  spinbox play spin_segment --difficulty hard
  spinbox play spin --config ./my-spin.yaml`,
	Args: cobra.ExactArgs(1),
	RunE: runPlay,
}

func init() {
	playCmd.Flags().StringVar(&flagConfig, "config", "", "Path to custom demo config YAML")
	playCmd.Flags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard, fixed")
}

func runPlay(cmd *cobra.Command, args []string) error {
	demoID := args[0]

	if !registry.Exists(demoID) {
		return fmt.Errorf("unknown demo %q (run 'spinbox list' to see available demos)", demoID)
	}
	if _, err := config.ParsePreset(flagDifficulty); err != nil {
		return err
	}
	if flagConfig != "" {
		// Surface config errors here; the demo itself falls back silently.
		if _, err := config.LoadSpin(demoID, flagConfig); err != nil {
			return fmt.Errorf("config: %w", err)
		}
	}

	spin.SetConfigPath(flagConfig)
	spin.SetDifficultyPreset(flagDifficulty)

	game, err := registry.Create(demoID)
	if err != nil {
		return fmt.Errorf("creating demo: %w", err)
	}

	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not open run database: %v\n", err)
		// Continue without storage - the demo still works
		store = nil
	}

	runErr := tui.Run(game, store, runtimeConfig())

	if store != nil {
		store.Close()
	}
	return runErr
}

// runtimeConfig builds the runtime config from the terminal size and
// global flags.
func runtimeConfig() core.RuntimeConfig {
	width, height := 80, 24
	if w, h, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
		width, height = w, h
	}

	return core.RuntimeConfig{
		ScreenW:  width,
		ScreenH:  height,
		TickRate: flagFPS,
		Seed:     flagSeed,
	}
}
