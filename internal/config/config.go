// Package config provides YAML-based configuration loading and difficulty
// management for the alarm clock and its challenges.
package config

import "time"

// Config is the complete application configuration.
type Config struct {
	Clock   ClockConfig   `yaml:"clock"`
	Chase   ChaseConfig   `yaml:"chase"`
	Shake   ShakeConfig   `yaml:"shake"`
	Storage StorageConfig `yaml:"storage"`
	Server  ServerConfig  `yaml:"server"`
}

// ClockConfig controls how often alarms are checked.
type ClockConfig struct {
	PollInterval time.Duration `yaml:"poll_interval"`
}

// ChaseConfig contains all configuration for the maze-chase challenge.
type ChaseConfig struct {
	PursuerInterval time.Duration    `yaml:"pursuer_interval"`
	Quota           int              `yaml:"quota"`         // collectibles seeded
	Points          int              `yaml:"points"`        // score per collectible
	DismissDelay    time.Duration    `yaml:"dismiss_delay"` // pause after a win before the alarm is dismissed
	Difficulty      DifficultyConfig `yaml:"difficulty"`
}

// ShakeConfig contains all configuration for the shake challenge.
type ShakeConfig struct {
	Threshold    float64       `yaml:"threshold"`
	Debounce     time.Duration `yaml:"debounce"`
	Target       int           `yaml:"target"`
	Flash        time.Duration `yaml:"flash"`
	DismissDelay time.Duration `yaml:"dismiss_delay"`
}

// StorageConfig locates the SQLite database.
type StorageConfig struct {
	Path string `yaml:"path"`
}

// ServerConfig configures the SSH server.
type ServerConfig struct {
	Address     string        `yaml:"address"`
	HostKey     string        `yaml:"host_key"`
	IdleTimeout time.Duration `yaml:"idle_timeout"`
}

// DifficultyConfig defines the optional pursuer speed-up as the run goes on.
type DifficultyConfig struct {
	Enabled      bool              `yaml:"enabled"`
	InitialLevel float64           `yaml:"initial_level"` // 0.0 = easy, 1.0 = hard
	Progression  ProgressionConfig `yaml:"progression"`
	Scaling      ScalingConfig     `yaml:"scaling"`
}

// ProgressionConfig defines how difficulty increases over time.
type ProgressionConfig struct {
	Type  string `yaml:"type"`   // ProgressionScore, ProgressionTime or ProgressionNone
	MaxAt int    `yaml:"max_at"` // Score/ticks at which max difficulty is reached
}

// Progression types.
const (
	ProgressionScore = "score" // by points collected
	ProgressionTime  = "time"  // by pursuer ticks survived
	ProgressionNone  = "none"
)

// ScalingConfig defines the magnitude of difficulty changes.
type ScalingConfig struct {
	SpeedMultiplier float64 `yaml:"speed_multiplier"` // Speed added at max difficulty
}

// DifficultyPreset represents a named difficulty level.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
	DifficultyFixed  DifficultyPreset = "fixed"
)

// ParsePreset maps a flag value to a preset. Unknown values return "", which
// leaves the configured values alone.
func ParsePreset(s string) DifficultyPreset {
	switch p := DifficultyPreset(s); p {
	case DifficultyEasy, DifficultyNormal, DifficultyHard, DifficultyFixed:
		return p
	}
	return ""
}

// PursuerIntervalForPreset returns the pursuer period for a preset, or 0 if
// the preset does not set one.
func PursuerIntervalForPreset(preset DifficultyPreset) time.Duration {
	switch preset {
	case DifficultyEasy:
		return 600 * time.Millisecond
	case DifficultyNormal:
		return 400 * time.Millisecond
	case DifficultyHard:
		return 250 * time.Millisecond
	default:
		return 0
	}
}

// IsFixedPreset returns true if the preset disables progression.
func IsFixedPreset(preset DifficultyPreset) bool {
	return preset == DifficultyFixed
}
