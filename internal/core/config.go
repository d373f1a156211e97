package core

// RuntimeConfig is what the platform hands a game at reset: the terminal
// area it must draw into and the parameters that make a run reproducible.
type RuntimeConfig struct {
	ScreenW  int
	ScreenH  int
	TickRate int   // simulation ticks per second
	Seed     int64 // zero asks the platform to seed from the clock
}

// DefaultConfig returns the settings used when the caller overrides
// nothing: an 80x24 terminal stepped at 60 ticks per second.
func DefaultConfig() RuntimeConfig {
	return RuntimeConfig{
		ScreenW:  80,
		ScreenH:  24,
		TickRate: 60,
	}
}

// GameState is the status a game reports back to the platform after each
// tick and on demand through State.
type GameState struct {
	Score    int
	GameOver bool
	Paused   bool
}

// StepResult carries the outcome of one simulation tick.
type StepResult struct {
	State GameState
}
