// Package spin implements the rotating-square demos: a ball bouncing
// elastically inside a square that spins about its centre.
package spin

import (
	"math"

	"github.com/vovakirdan/spinbox/internal/config"
	"github.com/vovakirdan/spinbox/internal/core"
	"github.com/vovakirdan/spinbox/internal/physics"
	"github.com/vovakirdan/spinbox/internal/registry"
)

// Control tuning, in degrees per tick.
const (
	SpinIncrement = 0.25 // Up/Down change per key press
	MaxSpin       = 10.0 // Absolute cap on the user-controlled spin
	FlashTicks    = 6    // How long a struck wall stays highlighted
)

// configPath stores the custom config path set via CLI
var configPath string

// difficultyPreset stores the difficulty preset set via CLI
var difficultyPreset config.DifficultyPreset

// SetConfigPath sets the custom config path for loading.
func SetConfigPath(path string) {
	configPath = path
}

// SetDifficultyPreset sets the difficulty preset. Unknown names clear it.
func SetDifficultyPreset(preset string) {
	p, err := config.ParsePreset(preset)
	if err != nil || preset == "" {
		difficultyPreset = ""
		return
	}
	difficultyPreset = p
}

// Game drives one physics engine as a registered demo.
type Game struct {
	id    string
	title string

	engine     *physics.Engine
	cfg        config.SpinConfig
	difficulty *config.DifficultyManager
	runtime    core.RuntimeConfig

	baseStep float64 // user-controlled spin before difficulty scaling
	flash    [4]int  // remaining highlight ticks per wall
	paused   bool
	gameOver bool
}

// New creates the local-frame demo.
func New() *Game {
	return &Game{id: "spin", title: "Spinning Box"}
}

// NewSegment creates the segment-distance demo.
func NewSegment() *Game {
	return &Game{id: "spin_segment", title: "Spinning Box (Segments)"}
}

// ID returns the unique identifier for this demo.
func (g *Game) ID() string {
	return g.id
}

// Title returns the display name for this demo.
func (g *Game) Title() string {
	return g.title
}

// Reset loads the configuration and rebuilds the engine.
func (g *Game) Reset(runtime core.RuntimeConfig) {
	g.runtime = runtime

	cfg, err := config.LoadSpin(g.id, configPath)
	if err != nil {
		cfg = config.DefaultFor(g.id)
	}
	if difficultyPreset != "" {
		config.ApplySpinPreset(&cfg, difficultyPreset)
	}

	engine, err := cfg.Engine()
	if err != nil {
		cfg = config.DefaultFor(g.id)
		engine, _ = cfg.Engine()
	}

	g.cfg = cfg
	g.engine = engine
	g.difficulty = config.NewDifficultyManager(cfg.Difficulty)
	g.baseStep = cfg.Boundary.AngularStep
	g.flash = [4]int{}
	g.paused = false
	g.gameOver = false
}

// Step advances the demo by one tick.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	if g.gameOver {
		return core.StepResult{State: g.State()}
	}

	if in.Has(core.ActionPause) {
		g.paused = !g.paused
	}
	if g.paused {
		return core.StepResult{State: g.State()}
	}

	g.handleSpinInput(in)
	g.engine.SetAngularStep(g.difficulty.SpinStep(g.baseStep, g.engine.Bounces(), g.engine.Ticks()))
	g.engine.Step()

	for i := range g.flash {
		if g.flash[i] > 0 {
			g.flash[i]--
		}
	}
	for _, ev := range g.engine.LastCollisions() {
		g.flash[ev.Wall] = FlashTicks
	}

	if d := g.cfg.Run.DurationTicks; d > 0 && g.engine.Ticks() >= d {
		g.gameOver = true
	}

	return core.StepResult{State: g.State()}
}

func (g *Game) handleSpinInput(in core.InputFrame) {
	switch {
	case in.Has(core.ActionUp):
		g.baseStep += SpinIncrement
	case in.Has(core.ActionDown):
		g.baseStep -= SpinIncrement
	case in.Has(core.ActionJump):
		g.baseStep = -g.baseStep
	case in.Has(core.ActionDuck):
		g.baseStep = g.cfg.Boundary.AngularStep
	}
	g.baseStep = core.ClampF(g.baseStep, -MaxSpin, MaxSpin)
}

// State returns the current demo state. Score is the bounce count.
func (g *Game) State() core.GameState {
	score := 0
	if g.engine != nil {
		score = g.engine.Bounces()
	}
	return core.GameState{
		Score:    score,
		GameOver: g.gameOver,
		Paused:   g.paused,
	}
}

// Summary reports the run so far.
func (g *Game) Summary() core.RunSummary {
	if g.engine == nil {
		return core.RunSummary{}
	}
	return SummaryOf(g.engine)
}

// SummaryOf reports the current state of an engine as a run summary.
func SummaryOf(e *physics.Engine) core.RunSummary {
	return core.RunSummary{
		Strategy:   e.Strategy().String(),
		Ticks:      e.Ticks(),
		Bounces:    e.Bounces(),
		FinalAngle: e.Boundary().Angle,
		Speed:      e.Ball().Vel.Len(),
		SpeedDrift: e.SpeedDrift(),
	}
}

// Engine exposes the underlying engine for inspection.
func (g *Game) Engine() *physics.Engine {
	return g.engine
}

// SpinRate returns the user-controlled spin in degrees per tick.
func (g *Game) SpinRate() float64 {
	return g.baseStep
}

// boundingRadius is the distance from the centre to a corner.
func (g *Game) boundingRadius() float64 {
	return g.engine.Boundary().HalfExtent * math.Sqrt2
}

// Register the demos with the registry
func init() {
	registry.Register("spin", func() registry.Game {
		return New()
	})
	registry.Register("spin_segment", func() registry.Game {
		return NewSegment()
	})
}
