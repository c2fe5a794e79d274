package core

// RuntimeConfig is what the platform tells a game about its surroundings.
type RuntimeConfig struct {
	ScreenW  int   // Terminal columns
	ScreenH  int   // Terminal rows available to the game
	TickRate int   // Fixed ticks per second
	Seed     int64 // Seeds the game's render RNG; 0 lets the platform pick one
}

// DefaultConfig is an 80x24 terminal at 60 ticks per second.
func DefaultConfig() RuntimeConfig {
	return RuntimeConfig{ScreenW: 80, ScreenH: 24, TickRate: 60}
}

// GameState is the run status a game reports to the platform after each
// tick. Level is 0 before the first level is loaded.
type GameState struct {
	Score     int
	Lives     int
	Level     int
	GameOver  bool
	Completed bool // Run ended by clearing the last level
	Paused    bool
}

// StepResult is returned by Game.Step.
type StepResult struct {
	State GameState
}
