package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// FileName is the configuration file looked up in the config directories.
const FileName = "alarm.yaml"

// Load loads the application configuration.
// Search order: customPath -> ~/.alarm/configs/alarm.yaml -> ./configs/alarm.yaml -> embedded default
// Fields missing from a file keep their default values.
func Load(customPath string) (Config, error) {
	// Try custom path first
	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return Default(), fmt.Errorf("failed to read config %s: %w", customPath, err)
		}
		cfg, err := Parse(data)
		if err != nil {
			return Default(), fmt.Errorf("failed to parse config %s: %w", customPath, err)
		}
		return cfg, nil
	}

	// Try user config directory
	if userCfgPath := UserConfigPath(); userCfgPath != "" {
		if data, err := os.ReadFile(userCfgPath); err == nil {
			if cfg, err := Parse(data); err == nil {
				return cfg, nil
			}
		}
	}

	// Try local configs directory
	if data, err := os.ReadFile(filepath.Join("configs", FileName)); err == nil {
		if cfg, err := Parse(data); err == nil {
			return cfg, nil
		}
	}

	// Use embedded default YAML
	cfg, err := Parse(defaultAlarmYAML)
	if err != nil {
		return Default(), nil // Fallback to hardcoded if embed fails
	}
	return cfg, nil
}

// Parse decodes YAML on top of the defaults and normalizes the result.
func Parse(data []byte) (Config, error) {
	cfg := Default()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Default(), err
	}
	cfg.normalize()
	return cfg, nil
}

// normalize replaces unusable values with defaults.
func (c *Config) normalize() {
	def := Default()
	if c.Clock.PollInterval <= 0 {
		c.Clock.PollInterval = def.Clock.PollInterval
	}
	if c.Chase.PursuerInterval <= 0 {
		c.Chase.PursuerInterval = def.Chase.PursuerInterval
	}
	if c.Chase.Quota <= 0 {
		c.Chase.Quota = def.Chase.Quota
	}
	if c.Chase.Points <= 0 {
		c.Chase.Points = def.Chase.Points
	}
	if c.Chase.DismissDelay < 0 {
		c.Chase.DismissDelay = 0
	}
	if c.Shake.Threshold <= 0 {
		c.Shake.Threshold = def.Shake.Threshold
	}
	if c.Shake.Debounce <= 0 {
		c.Shake.Debounce = def.Shake.Debounce
	}
	if c.Shake.Target <= 0 {
		c.Shake.Target = def.Shake.Target
	}
	if c.Shake.Flash <= 0 {
		c.Shake.Flash = def.Shake.Flash
	}
	if c.Shake.DismissDelay < 0 {
		c.Shake.DismissDelay = 0
	}
	if c.Storage.Path == "" {
		c.Storage.Path = def.Storage.Path
	}
	if c.Server.Address == "" {
		c.Server.Address = def.Server.Address
	}
}

// UserConfigPath returns the path to the user config file, or empty if home is unavailable.
func UserConfigPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".alarm", "configs", FileName)
}

// WriteDefault writes the embedded default file to path unless it exists.
func WriteDefault(path string) error {
	if _, err := os.Stat(path); err == nil {
		return fmt.Errorf("config %s already exists", path)
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("cannot create config directory: %w", err)
	}
	if err := os.WriteFile(path, defaultAlarmYAML, 0o644); err != nil {
		return fmt.Errorf("cannot write config %s: %w", path, err)
	}
	return nil
}

// ApplyChasePreset modifies the chase config based on a difficulty preset.
func ApplyChasePreset(cfg *ChaseConfig, preset DifficultyPreset) {
	if preset == "" {
		return
	}
	if IsFixedPreset(preset) {
		cfg.Difficulty.Enabled = false
		return
	}
	cfg.PursuerInterval = PursuerIntervalForPreset(preset)
}
