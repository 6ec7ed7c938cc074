package config

import (
	_ "embed"
)

//go:embed defaults/spin.yaml
var defaultSpinYAML []byte

//go:embed defaults/spin_segment.yaml
var defaultSpinSegmentYAML []byte

// DefaultSpinConfig returns the hard-coded local-frame demo configuration.
func DefaultSpinConfig() SpinConfig {
	return SpinConfig{
		Boundary: BoundaryConfig{
			CenterX:     400,
			CenterY:     300,
			HalfExtent:  250,
			AngularStep: 0.5,
		},
		Ball: BallConfig{
			Radius:    20,
			VelocityX: 3,
			VelocityY: 3.5,
		},
		Collision: CollisionConfig{
			Strategy: "local",
		},
		Difficulty: DifficultyConfig{
			Enabled:      true,
			InitialLevel: 0.0,
			Progression: ProgressionConfig{
				Type:  "time",
				MaxAt: 36000, // 10 minutes at 60fps
			},
			Scaling: ScalingConfig{
				SpinMultiplier: 1.0,
			},
		},
	}
}

// DefaultSpinSegmentConfig returns the hard-coded segment demo configuration.
func DefaultSpinSegmentConfig() SpinConfig {
	return SpinConfig{
		Boundary: BoundaryConfig{
			CenterX:     400,
			CenterY:     300,
			HalfExtent:  100,
			AngularStep: 1,
		},
		Ball: BallConfig{
			Radius:    10,
			VelocityX: 5,
			VelocityY: 3,
		},
		Collision: CollisionConfig{
			Strategy: "segment",
			Margin:   2,
			Epsilon:  1e-6,
		},
		Difficulty: DifficultyConfig{
			Enabled:      true,
			InitialLevel: 0.0,
			Progression: ProgressionConfig{
				Type:  "time",
				MaxAt: 36000,
			},
			Scaling: ScalingConfig{
				SpinMultiplier: 2.0,
			},
		},
	}
}

// DefaultFor returns the hard-coded configuration for a demo ID.
func DefaultFor(id string) SpinConfig {
	if id == "spin_segment" {
		return DefaultSpinSegmentConfig()
	}
	return DefaultSpinConfig()
}

// GetDefaultYAML returns the embedded default YAML for a demo.
func GetDefaultYAML(id string) []byte {
	switch id {
	case "spin":
		return defaultSpinYAML
	case "spin_segment":
		return defaultSpinSegmentYAML
	default:
		return nil
	}
}
