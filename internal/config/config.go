// Package config provides YAML-based demo configuration loading and
// difficulty management for spinbox.
package config

import (
	"errors"
	"fmt"

	"github.com/vovakirdan/spinbox/internal/physics"
)

// Validation errors returned by SpinConfig.Validate.
var (
	ErrInvalidRadius     = errors.New("config: ball radius must be positive")
	ErrInvalidHalfExtent = errors.New("config: half_extent must exceed the ball radius")
	ErrInvalidStart      = errors.New("config: ball start must lie inside the square")
	ErrInvalidDuration   = errors.New("config: duration_ticks must not be negative")
)

// SpinConfig contains all configuration for a rotating-square demo.
type SpinConfig struct {
	Boundary   BoundaryConfig   `yaml:"boundary"`
	Ball       BallConfig       `yaml:"ball"`
	Collision  CollisionConfig  `yaml:"collision"`
	Run        RunConfig        `yaml:"run"`
	Difficulty DifficultyConfig `yaml:"difficulty"`
}

// BoundaryConfig defines the rotating square.
type BoundaryConfig struct {
	CenterX      float64 `yaml:"center_x"`
	CenterY      float64 `yaml:"center_y"`
	HalfExtent   float64 `yaml:"half_extent"`
	InitialAngle float64 `yaml:"initial_angle"` // degrees
	AngularStep  float64 `yaml:"angular_step"`  // degrees per tick
}

// BallConfig defines the ball. Start offsets are relative to the square's centre.
type BallConfig struct {
	Radius    float64 `yaml:"radius"`
	StartX    float64 `yaml:"start_x"`
	StartY    float64 `yaml:"start_y"`
	VelocityX float64 `yaml:"velocity_x"`
	VelocityY float64 `yaml:"velocity_y"`
}

// CollisionConfig selects the detection strategy and its tunables.
type CollisionConfig struct {
	Strategy string  `yaml:"strategy"` // "local" or "segment"
	Margin   float64 `yaml:"margin"`   // segment strategy only
	Epsilon  float64 `yaml:"epsilon"`  // segment strategy only; 0 uses the engine default
}

// RunConfig bounds a run.
type RunConfig struct {
	DurationTicks int `yaml:"duration_ticks"` // 0 = endless
}

// DifficultyConfig defines the difficulty progression system.
type DifficultyConfig struct {
	Enabled      bool              `yaml:"enabled"`
	InitialLevel float64           `yaml:"initial_level"` // 0.0 = easy, 1.0 = hard
	Progression  ProgressionConfig `yaml:"progression"`
	Scaling      ScalingConfig     `yaml:"scaling"`
}

// ProgressionConfig defines how difficulty increases over time.
type ProgressionConfig struct {
	Type  string `yaml:"type"`   // "score", "time", or "none"
	MaxAt int    `yaml:"max_at"` // Score/ticks at which max difficulty is reached
}

// ScalingConfig defines the magnitude of difficulty changes.
type ScalingConfig struct {
	SpinMultiplier float64 `yaml:"spin_multiplier"` // Added to the spin rate at max difficulty
}

// Validate checks that the configuration describes a usable engine.
func (c SpinConfig) Validate() error {
	r := c.Ball.Radius
	if !(r > 0) {
		return fmt.Errorf("%w: got %v", ErrInvalidRadius, r)
	}
	h := c.Boundary.HalfExtent
	if !(h > r) {
		return fmt.Errorf("%w: half_extent %v, radius %v", ErrInvalidHalfExtent, h, r)
	}
	limit := h - r
	if c.Ball.StartX < -limit || c.Ball.StartX > limit || c.Ball.StartY < -limit || c.Ball.StartY > limit {
		return fmt.Errorf("%w: (%v, %v) outside +/-%v", ErrInvalidStart, c.Ball.StartX, c.Ball.StartY, limit)
	}
	if _, err := physics.ParseStrategy(c.Collision.Strategy); err != nil {
		return fmt.Errorf("config: %w", err)
	}
	if c.Run.DurationTicks < 0 {
		return ErrInvalidDuration
	}
	return nil
}

// Strategy returns the parsed detection strategy, defaulting to the local frame.
func (c SpinConfig) Strategy() physics.Strategy {
	s, _ := physics.ParseStrategy(c.Collision.Strategy)
	return s
}

// Engine builds a physics engine from the configuration.
func (c SpinConfig) Engine() (*physics.Engine, error) {
	if err := c.Validate(); err != nil {
		return nil, err
	}
	center := physics.V(c.Boundary.CenterX, c.Boundary.CenterY)
	opts := []physics.Option{
		physics.WithStrategy(c.Strategy()),
		physics.WithMargin(c.Collision.Margin),
	}
	if c.Collision.Epsilon > 0 {
		opts = append(opts, physics.WithEpsilon(c.Collision.Epsilon))
	}
	return physics.NewEngine(
		physics.Boundary{
			Center:      center,
			HalfExtent:  c.Boundary.HalfExtent,
			Angle:       c.Boundary.InitialAngle,
			AngularStep: c.Boundary.AngularStep,
		},
		physics.Ball{
			Pos:    center.Add(physics.V(c.Ball.StartX, c.Ball.StartY)),
			Vel:    physics.V(c.Ball.VelocityX, c.Ball.VelocityY),
			Radius: c.Ball.Radius,
		},
		opts...,
	)
}

// DifficultyPreset represents a named difficulty level.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
	DifficultyFixed  DifficultyPreset = "fixed"
)

// InitialLevelForPreset returns the initial_level for a difficulty preset.
func InitialLevelForPreset(preset DifficultyPreset) float64 {
	switch preset {
	case DifficultyEasy:
		return 0.0
	case DifficultyNormal:
		return 0.3
	case DifficultyHard:
		return 0.7
	default:
		return 0.0
	}
}

// IsFixedPreset returns true if the preset disables progression.
func IsFixedPreset(preset DifficultyPreset) bool {
	return preset == DifficultyFixed
}

// ParsePreset converts a CLI name to a preset. Empty means normal.
func ParsePreset(name string) (DifficultyPreset, error) {
	switch p := DifficultyPreset(name); p {
	case "":
		return DifficultyNormal, nil
	case DifficultyEasy, DifficultyNormal, DifficultyHard, DifficultyFixed:
		return p, nil
	default:
		return "", fmt.Errorf("config: unknown difficulty %q (use easy, normal, hard or fixed)", name)
	}
}
