package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// AppName names the config directory and single-instance lock.
const AppName = "PomoBoard"

// Environment keys.
const (
	EnvLogLevel     = "POMOBOARD_LOG_LEVEL"
	EnvLogJSON      = "POMOBOARD_LOG_JSON"
	EnvTickInterval = "POMOBOARD_TICK_INTERVAL"
	EnvConfigDir    = "POMOBOARD_CONFIG_DIR"
)

// ErrInvalidValue indicates a malformed environment value.
var ErrInvalidValue = errors.New("invalid configuration value")

// Config holds process-level options.
type Config struct {
	LogLevel     string
	LogJSON      bool
	TickInterval time.Duration
	ConfigDir    string
}

// Load reads an optional .env file and the process environment.
func Load() (*Config, error) {
	_ = godotenv.Load()
	return FromLookup(os.LookupEnv)
}

// FromLookup builds a Config from lookup, filling defaults for unset keys.
func FromLookup(lookup func(string) (string, bool)) (*Config, error) {
	cfg := &Config{
		LogLevel:     "info",
		TickInterval: time.Second,
	}

	if value, ok := nonEmpty(lookup, EnvLogLevel); ok {
		cfg.LogLevel = strings.ToLower(value)
	}

	if value, ok := nonEmpty(lookup, EnvLogJSON); ok {
		parsed, err := strconv.ParseBool(value)
		if err != nil {
			return nil, fmt.Errorf("%s=%q: %w", EnvLogJSON, value, ErrInvalidValue)
		}
		cfg.LogJSON = parsed
	}

	if value, ok := nonEmpty(lookup, EnvTickInterval); ok {
		parsed, err := time.ParseDuration(value)
		if err != nil || parsed <= 0 {
			return nil, fmt.Errorf("%s=%q: %w", EnvTickInterval, value, ErrInvalidValue)
		}
		cfg.TickInterval = parsed
	}

	if value, ok := nonEmpty(lookup, EnvConfigDir); ok {
		cfg.ConfigDir = value
	} else {
		base, err := os.UserConfigDir()
		if err != nil {
			return nil, fmt.Errorf("resolve user config dir: %w", err)
		}
		cfg.ConfigDir = filepath.Join(base, AppName)
	}

	return cfg, nil
}

func nonEmpty(lookup func(string) (string, bool), key string) (string, bool) {
	value, ok := lookup(key)
	value = strings.TrimSpace(value)
	return value, ok && value != ""
}
