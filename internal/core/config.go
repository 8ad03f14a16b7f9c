package core

// RuntimeConfig contains configuration passed to the game at initialization.
// The game uses this to adapt to screen size and for deterministic simulation.
type RuntimeConfig struct {
	ScreenW  int   // Screen width in characters
	ScreenH  int   // Screen height in characters
	TickRate int   // Frames per second requested from the host loop (default 60)
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

// GameState is the externally visible status of a run.
type GameState struct {
	Score        int     // Distance travelled, in whole units
	GameOver     bool    // Whether the run has ended in a collision
	Paused       bool    // Whether the simulation is paused
	NewHighScore bool    // Whether the final score qualifies for the high-score list
	Difficulty   float64 // Current per-frame spawn probability
}

// StepResult is returned by Game.Step() after each frame.
type StepResult struct {
	State GameState
	// Collided is true only on the frame the run ended.
	Collided bool
}
