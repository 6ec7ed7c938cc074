package core

// RuntimeConfig contains configuration passed to demos at initialization.
// Demos use it to fit the terminal and for reproducible starting states.
type RuntimeConfig struct {
	ScreenW  int   // Screen width in characters
	ScreenH  int   // Screen height in characters
	TickRate int   // Simulation ticks per second (default 60)
	Seed     int64 // RNG seed; 0 means the platform picks one from the clock
}

// DefaultConfig returns a RuntimeConfig with sensible defaults.
func DefaultConfig() RuntimeConfig {
	return RuntimeConfig{
		ScreenW:  80,
		ScreenH:  24,
		TickRate: 60,
	}
}

// GameState is reported to the platform after every step.
type GameState struct {
	Score    int  // Current score (wall bounces for the spin demos)
	GameOver bool // Whether the run has ended
	Paused   bool // Whether the simulation is paused
}

// StepResult is returned by Game.Step() after each simulation tick.
type StepResult struct {
	State GameState
}

// RunSummary describes a finished or in-progress simulation run.
// Demos that track one expose it through a Summary method so the
// platform can persist it alongside the score.
type RunSummary struct {
	Strategy   string  // collision detection strategy name
	Ticks      int     // ticks simulated
	Bounces    int     // velocity reflections
	FinalAngle float64 // boundary angle in degrees
	Speed      float64 // ball speed at the end of the run
	SpeedDrift float64 // Speed minus the starting speed
}
