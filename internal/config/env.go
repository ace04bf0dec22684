package config

import (
	"errors"
	"io/fs"
	"os"

	"github.com/joho/godotenv"
)

// Environment variables that override flags left at their defaults.
const (
	EnvConfig  = "ALARM_CONFIG"
	EnvDB      = "ALARM_DB"
	EnvSSHAddr = "ALARM_SSH_ADDR"
)

// Env holds the environment overrides.
type Env struct {
	ConfigPath string
	DBPath     string
	SSHAddr    string
}

// LoadEnv reads an optional .env file into the process environment and
// returns the overrides. Variables already set in the environment win over
// the file. A missing file is not an error.
func LoadEnv(files ...string) (Env, error) {
	if err := godotenv.Load(files...); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return readEnv(), err
	}
	return readEnv(), nil
}

func readEnv() Env {
	return Env{
		ConfigPath: os.Getenv(EnvConfig),
		DBPath:     os.Getenv(EnvDB),
		SSHAddr:    os.Getenv(EnvSSHAddr),
	}
}
