package config

import (
	"math"
	"testing"
)

func TestDifficultyLevel(t *testing.T) {
	cfg := DifficultyConfig{
		Enabled:      true,
		InitialLevel: 0.2,
		Progression:  ProgressionConfig{Type: "time", MaxAt: 1000},
		Scaling:      ScalingConfig{SpinMultiplier: 1},
	}
	dm := NewDifficultyManager(cfg)

	tests := []struct {
		ticks    int
		expected float64
	}{
		{0, 0.2},
		{500, 0.6},
		{1000, 1.0},
		{5000, 1.0},
	}

	for _, tc := range tests {
		got := dm.Level(0, tc.ticks)
		if math.Abs(got-tc.expected) > 1e-9 {
			t.Errorf("Level(0, %d) = %v, expected %v", tc.ticks, got, tc.expected)
		}
	}
}

func TestDifficultyScoreProgression(t *testing.T) {
	dm := NewDifficultyManager(DifficultyConfig{
		Enabled:     true,
		Progression: ProgressionConfig{Type: "score", MaxAt: 10},
	})

	if got := dm.Level(5, 99999); math.Abs(got-0.5) > 1e-9 {
		t.Errorf("Level(5, _) = %v, expected 0.5", got)
	}
}

func TestDifficultyDisabled(t *testing.T) {
	dm := NewDifficultyManager(DifficultyConfig{
		Enabled:      false,
		InitialLevel: 0.3,
		Progression:  ProgressionConfig{Type: "time", MaxAt: 10},
	})

	if dm.IsEnabled() {
		t.Error("IsEnabled() = true, expected false")
	}
	if got := dm.Level(100, 100); got != 0.3 {
		t.Errorf("Level() = %v, expected 0.3", got)
	}

	dm.SetEnabled(true)
	if !dm.IsEnabled() {
		t.Error("IsEnabled() = false after SetEnabled(true)")
	}
}

func TestDifficultySpinStep(t *testing.T) {
	dm := NewDifficultyManager(DifficultyConfig{
		Enabled:     true,
		Progression: ProgressionConfig{Type: "time", MaxAt: 100},
		Scaling:     ScalingConfig{SpinMultiplier: 2},
	})

	tests := []struct {
		base     float64
		ticks    int
		expected float64
	}{
		{1, 0, 1},
		{1, 50, 2},
		{1, 100, 3},
		{-0.5, 100, -1.5},
		{0, 100, 0},
	}

	for _, tc := range tests {
		got := dm.SpinStep(tc.base, 0, tc.ticks)
		if math.Abs(got-tc.expected) > 1e-9 {
			t.Errorf("SpinStep(%v, 0, %d) = %v, expected %v", tc.base, tc.ticks, got, tc.expected)
		}
	}
}

func TestDifficultyZeroMaxAt(t *testing.T) {
	dm := NewDifficultyManager(DifficultyConfig{
		Enabled:     true,
		Progression: ProgressionConfig{Type: "time", MaxAt: 0},
	})

	if got := dm.Level(0, 1); got != 1 {
		t.Errorf("Level(0, 1) = %v, expected 1", got)
	}
}

func TestSetInitialLevelClamps(t *testing.T) {
	dm := NewDifficultyManager(DifficultyConfig{Progression: ProgressionConfig{Type: "none"}})

	dm.SetInitialLevel(1.7)
	if got := dm.Level(0, 0); got != 1 {
		t.Errorf("Level() = %v, expected 1", got)
	}
	dm.SetInitialLevel(-2)
	if got := dm.Level(0, 0); got != 0 {
		t.Errorf("Level() = %v, expected 0", got)
	}
}
