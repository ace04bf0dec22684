package core

// RuntimeConfig contains configuration passed to challenges at initialization.
type RuntimeConfig struct {
	ScreenW int // Screen width in characters
	ScreenH int // Screen height in characters
}

// DefaultConfig returns a RuntimeConfig with sensible defaults.
func DefaultConfig() RuntimeConfig {
	return RuntimeConfig{
		ScreenW: 80,
		ScreenH: 24,
	}
}

// GameState summarizes a challenge for the platform layer.
type GameState struct {
	Score    int  // Current score
	GameOver bool // Lost; waiting for a manual restart
	Complete bool // Won; the alarm may be dismissed
}

// Terminal reports whether the challenge is frozen in a finished state.
func (s GameState) Terminal() bool {
	return s.GameOver || s.Complete
}

// StepResult is returned after every input event or periodic tick.
type StepResult struct {
	State GameState
	// Changed is false when the stimulus was ignored (e.g. input while frozen).
	Changed bool
}
