package config

import (
	_ "embed"
	"time"
)

//go:embed defaults/alarm.yaml
var defaultAlarmYAML []byte

// Default returns the hardcoded configuration. It matches defaults/alarm.yaml.
func Default() Config {
	return Config{
		Clock: ClockConfig{
			PollInterval: time.Second,
		},
		Chase: ChaseConfig{
			PursuerInterval: 400 * time.Millisecond,
			Quota:           30,
			Points:          10,
			DismissDelay:    1200 * time.Millisecond,
			Difficulty: DifficultyConfig{
				Enabled:      false,
				InitialLevel: 0.0,
				Progression: ProgressionConfig{
					Type:  ProgressionNone,
					MaxAt: 300,
				},
				Scaling: ScalingConfig{
					SpeedMultiplier: 0.5,
				},
			},
		},
		Shake: ShakeConfig{
			Threshold:    15,
			Debounce:     500 * time.Millisecond,
			Target:       20,
			Flash:        300 * time.Millisecond,
			DismissDelay: time.Second,
		},
		Storage: StorageConfig{
			Path: "~/.alarm/alarm.db",
		},
		Server: ServerConfig{
			Address:     ":23235",
			IdleTimeout: 30 * time.Minute,
		},
	}
}

// DefaultYAML returns the embedded default configuration file.
func DefaultYAML() []byte {
	return defaultAlarmYAML
}
