package core

// RuntimeConfig contains configuration passed to games at initialization.
// Games use this to adapt to the frontend and for deterministic simulation.
type RuntimeConfig struct {
	ScreenW  int   // Terminal width in characters (0 for graphical frontends)
	ScreenH  int   // Terminal height in characters
	TickRate int   // Simulation ticks per second (default 60)
	Seed     int64 // RNG seed for deterministic gameplay
}

// DefaultConfig returns a RuntimeConfig with sensible defaults.
func DefaultConfig() RuntimeConfig {
	return RuntimeConfig{
		ScreenW:  80,
		ScreenH:  24,
		TickRate: 60,
		Seed:     0, // 0 means use current time in platform layer
	}
}

// GameState represents the current state of a game.
// Returned by Game.State() to communicate status to the platform.
type GameState struct {
	Score  int  // Current score
	Paused bool // Whether the game is paused
}

// StepResult is returned by Game.Step() after each simulation tick.
type StepResult struct {
	State GameState

	// ScoreChanged is true on the tick the score was incremented.
	ScoreChanged bool
}
