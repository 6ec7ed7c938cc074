package main

import (
	"errors"
	"fmt"
	"math"
	"os"
	"time"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/spinbox/internal/config"
	"github.com/vovakirdan/spinbox/internal/games/spin"
	"github.com/vovakirdan/spinbox/internal/physics"
	"github.com/vovakirdan/spinbox/internal/platform/tui"
	"github.com/vovakirdan/spinbox/internal/registry"
	"github.com/vovakirdan/spinbox/internal/storage"
)

// Tolerances for the headless invariant checks.
const (
	speedTolerance       = 1e-9
	penetrationTolerance = 1e-6
)

var (
	flagSimTicks    int
	flagSimStrategy string
	flagSimConfig   string
	flagSimEvery    int
	flagSimSave     bool
	flagSimVerbose  bool
)

var errInvariant = errors.New("invariant violated")

var simCmd = &cobra.Command{
	Use:   "sim <demo>",
	Short: "Run a demo headless and check its invariants",
	Long: `Step a demo's engine without a terminal and report the final state.

After every tick the run checks that the boundary angle stays in [0, 360),
that the ball's speed is unchanged and that the ball never sits past a
wall by more than the tolerance. The command fails if any check fails.

Examples:
  spinbox sim spin
  spinbox sim spin --strategy segment --ticks 100000
  spinbox sim spin_segment --config ./my-spin.yaml --save`,
	Args: cobra.ExactArgs(1),
	RunE: runSim,
}

func init() {
	simCmd.Flags().IntVar(&flagSimTicks, "ticks", 10000, "Number of ticks to simulate")
	simCmd.Flags().StringVar(&flagSimStrategy, "strategy", "", "Override collision strategy: local, segment")
	simCmd.Flags().StringVar(&flagSimConfig, "config", "", "Path to custom demo config YAML")
	simCmd.Flags().IntVar(&flagSimEvery, "every", 0, "Log progress every N ticks (0 = ticks/10)")
	simCmd.Flags().BoolVar(&flagSimSave, "save", false, "Record the run in the database")
	simCmd.Flags().BoolVarP(&flagSimVerbose, "verbose", "v", false, "Log every collision")
}

// simReport summarises a headless run.
type simReport struct {
	Ticks          int
	Bounces        int
	FinalAngle     float64
	Speed          float64
	MaxSpeedDrift  float64
	MaxPenetration float64
	AngleFailures  int
	Elapsed        time.Duration
}

// Failures lists the checks the run did not pass.
func (r simReport) Failures() []string {
	var out []string
	if r.AngleFailures > 0 {
		out = append(out, fmt.Sprintf("angle left [0, 360) on %d ticks", r.AngleFailures))
	}
	if r.MaxSpeedDrift > speedTolerance {
		out = append(out, fmt.Sprintf("speed drifted by %.3e", r.MaxSpeedDrift))
	}
	if r.MaxPenetration > penetrationTolerance {
		out = append(out, fmt.Sprintf("ball penetrated a wall by %.3e", r.MaxPenetration))
	}
	return out
}

func runSim(cmd *cobra.Command, args []string) error {
	demoID := args[0]
	if !registry.Exists(demoID) {
		return fmt.Errorf("unknown demo %q (run 'spinbox list' to see available demos)", demoID)
	}
	if flagSimTicks <= 0 {
		return fmt.Errorf("--ticks must be positive, got %d", flagSimTicks)
	}

	logger := log.NewWithOptions(os.Stderr, log.Options{
		ReportTimestamp: true,
		Prefix:          "sim",
	})
	if flagSimVerbose {
		logger.SetLevel(log.DebugLevel)
	}

	cfg, err := config.LoadSpin(demoID, flagSimConfig)
	if err != nil {
		return fmt.Errorf("config: %w", err)
	}
	if flagSimStrategy != "" {
		if _, err := physics.ParseStrategy(flagSimStrategy); err != nil {
			return err
		}
		cfg.Collision.Strategy = flagSimStrategy
	}

	engine, err := cfg.Engine()
	if err != nil {
		return fmt.Errorf("building engine: %w", err)
	}

	every := flagSimEvery
	if every <= 0 {
		every = max(flagSimTicks/10, 1)
	}

	logger.Info("starting run",
		"demo", demoID,
		"strategy", engine.Strategy(),
		"ticks", flagSimTicks,
		"half_extent", cfg.Boundary.HalfExtent,
		"radius", cfg.Ball.Radius,
	)

	report := simulate(engine, flagSimTicks, every, logger)
	printReport(demoID, engine, report)

	if flagSimSave {
		saveSimRun(demoID, engine, logger)
	}

	if failures := report.Failures(); len(failures) > 0 {
		for _, f := range failures {
			logger.Error("check failed", "reason", f)
		}
		return errInvariant
	}
	return nil
}

// simulate steps the engine n times, tracking the invariants after each tick.
func simulate(e *physics.Engine, n, every int, logger *log.Logger) simReport {
	start := time.Now()
	initialSpeed := e.Ball().Vel.Len()

	var r simReport
	for i := 0; i < n; i++ {
		e.Step()

		if angle := e.Boundary().Angle; angle < 0 || angle >= 360 {
			r.AngleFailures++
		}
		r.MaxSpeedDrift = math.Max(r.MaxSpeedDrift, math.Abs(e.Ball().Vel.Len()-initialSpeed))
		r.MaxPenetration = math.Max(r.MaxPenetration, e.Penetration())

		for _, ev := range e.LastCollisions() {
			logger.Debug("collision", "tick", e.Ticks(), "wall", ev.Wall, "depth", ev.Depth)
		}

		if every > 0 && (i+1)%every == 0 {
			logger.Info("progress",
				"tick", e.Ticks(),
				"angle", fmt.Sprintf("%.2f", e.Boundary().Angle),
				"bounces", e.Bounces(),
			)
		}
	}

	r.Ticks = e.Ticks()
	r.Bounces = e.Bounces()
	r.FinalAngle = e.Boundary().Angle
	r.Speed = e.Ball().Vel.Len()
	r.Elapsed = time.Since(start)
	return r
}

func printReport(demoID string, e *physics.Engine, r simReport) {
	ball := e.Ball()
	local := e.LocalPosition()

	fmt.Printf("Run - %s (%s)\n", demoID, e.Strategy())
	fmt.Println()
	fmt.Printf("  Ticks:            %d (%s)\n", r.Ticks, r.Elapsed.Round(time.Millisecond))
	fmt.Printf("  Bounces:          %d\n", r.Bounces)
	fmt.Printf("  Final angle:      %.4f\n", r.FinalAngle)
	fmt.Printf("  Position:         (%.3f, %.3f)  local (%.3f, %.3f)\n", ball.Pos.X, ball.Pos.Y, local.X, local.Y)
	fmt.Printf("  Velocity:         (%.4f, %.4f)  speed %.6f\n", ball.Vel.X, ball.Vel.Y, r.Speed)
	fmt.Printf("  Max speed drift:  %.3e\n", r.MaxSpeedDrift)
	fmt.Printf("  Max penetration:  %.3e\n", r.MaxPenetration)

	fmt.Println()
	if failures := r.Failures(); len(failures) > 0 {
		fmt.Printf("FAIL: %d check(s) failed\n", len(failures))
		return
	}
	fmt.Println("OK: all checks passed")
}

// saveSimRun records the run; failures are logged and do not fail the command.
func saveSimRun(demoID string, e *physics.Engine, logger *log.Logger) {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		logger.Warn("could not open run database", "err", err)
		return
	}
	defer store.Close()

	runID, err := store.SaveRun(tui.RunRecord(demoID, spin.SummaryOf(e)))
	if err != nil {
		logger.Warn("could not save run", "err", err)
		return
	}
	logger.Info("run saved", "run_id", runID)
}
