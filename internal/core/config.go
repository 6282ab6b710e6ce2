package core

// RuntimeConfig contains platform parameters passed to the game at
// initialization. Screen size is the terminal size in characters; the game
// simulates in its own world units and scales onto it.
type RuntimeConfig struct {
	ScreenW  int // Screen width in characters
	ScreenH  int // Screen height in characters
	TickRate int // Simulation ticks per second (default 60)
}

// DefaultConfig returns a RuntimeConfig with sensible defaults.
func DefaultConfig() RuntimeConfig {
	return RuntimeConfig{
		ScreenW:  80,
		ScreenH:  24,
		TickRate: 60,
	}
}

// GameState summarizes the game for the platform after each tick.
type GameState struct {
	Score          int  // Current score
	Active         bool // Whether a game is running (false = menu)
	Paused         bool // Whether the simulation is currently suspended
	PointerVisible bool // Whether the platform should show/track the pointer
}

// StepResult is returned by Game.Step() after each simulation tick.
type StepResult struct {
	State GameState

	// GameOver is set only on the tick a running game ended.
	GameOver bool
}
