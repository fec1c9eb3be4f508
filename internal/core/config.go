package core

// RuntimeConfig contains configuration passed to the simulation at initialization.
type RuntimeConfig struct {
	ScreenW  int   // Screen width in characters
	ScreenH  int   // Screen height in characters
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

// GameState is the session status reported after every tick.
type GameState struct {
	Score    int  // Current score
	GameOver bool // Defeat: player health reached zero
	Won      bool // Victory: the goal tile was reached
	Paused   bool // Whether the simulation is paused
}

// Terminal reports whether the session has ended in victory or defeat.
func (s GameState) Terminal() bool {
	return s.GameOver || s.Won
}

// StepResult is returned by Step() after each simulation tick.
// Events lists everything notable that happened during the tick, in order.
type StepResult struct {
	State  GameState
	Events []Event
}
