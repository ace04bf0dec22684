package config

import "time"

// DifficultyManager speeds up the chase pursuers as a run goes on.
// The zero level is the configured initial level; progress toward the
// configured score or tick count raises it linearly to 1.
type DifficultyManager struct {
	cfg   DifficultyConfig
	start float64
}

// NewDifficultyManager creates a manager for cfg.
func NewDifficultyManager(cfg DifficultyConfig) *DifficultyManager {
	return &DifficultyManager{
		cfg:   cfg,
		start: min(max(cfg.InitialLevel, 0), 1),
	}
}

// IsEnabled reports whether the level changes during a run.
func (d *DifficultyManager) IsEnabled() bool {
	if !d.cfg.Enabled {
		return false
	}
	t := d.cfg.Progression.Type
	return t == ProgressionScore || t == ProgressionTime
}

// Level returns the difficulty in [0, 1] after score points and ticks
// pursuer ticks.
func (d *DifficultyManager) Level(score, ticks int) float64 {
	if !d.IsEnabled() {
		return d.start
	}

	progress := score
	if d.cfg.Progression.Type == ProgressionTime {
		progress = ticks
	}
	frac := float64(progress) / float64(max(d.cfg.Progression.MaxAt, 1))
	frac = min(max(frac, 0), 1)

	return d.start + frac*(1-d.start)
}

// Interval shortens base as the level rises: at level 1 the period is
// base / (1 + speed_multiplier).
func (d *DifficultyManager) Interval(base time.Duration, score, ticks int) time.Duration {
	if !d.IsEnabled() {
		return base
	}
	speedup := 1 + d.Level(score, ticks)*d.cfg.Scaling.SpeedMultiplier
	return time.Duration(float64(base) / speedup)
}
