package core

// RuntimeConfig contains configuration passed to games at initialization.
// Games use this to adapt to screen size and for deterministic simulation.
type RuntimeConfig struct {
	ScreenW  int   // Screen width in characters
	ScreenH  int   // Screen height in characters
	TickRate int   // Simulation frames per second (default 24)
	Seed     int64 // RNG seed for deterministic gameplay

	// Clock supplies simulation frames. Nil means one frame per Step.
	Clock FrameClock
}

// DefaultFPS is the simulation frame rate.
const DefaultFPS = 24

// DefaultConfig returns a RuntimeConfig with sensible defaults.
func DefaultConfig() RuntimeConfig {
	return RuntimeConfig{
		ScreenW:  80,
		ScreenH:  26,
		TickRate: DefaultFPS,
		Seed:     0, // 0 means use current time in platform layer
	}
}

// GameState represents the current state of a game.
// Returned by Game.State() to communicate status to the platform.
type GameState struct {
	Score    int    // Current score
	Frame    uint64 // Current simulation frame
	GameOver bool   // Whether the game has ended
	Paused   bool   // Whether the game is paused
	Cause    string // Why the game ended, empty while running

	Harvested int // Fruit picked so far
	Crew      int // Crew members still aboard
}

// StepResult is returned by Game.Step() after each simulation tick.
type StepResult struct {
	State GameState
}
