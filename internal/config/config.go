package config

import (
	"fmt"

	"github.com/kelseyhightower/envconfig"
)

// Config represents the complete application configuration.
// Every field carries a default, so the binaries run with zero
// environment set; the pipeline tunables themselves (regex literals,
// event patterns, column schema) are fixed constants in constants.go.
type Config struct {
	Logging LoggingConfig `envconfig:"LOGGING"`
	Paths   PathsConfig   `envconfig:"PATHS"`
}

// LoggingConfig contains logging configuration
type LoggingConfig struct {
	Level       string `envconfig:"LEVEL" default:"info"`
	Format      string `envconfig:"FORMAT" default:"json"`
	Output      string `envconfig:"OUTPUT" default:"both"`
	FilePath    string `envconfig:"FILE_PATH" default:""`
	Development bool   `envconfig:"DEVELOPMENT" default:"false"`
}

// PathsConfig contains file system path overrides. Empty values fall back
// to the executable-relative defaults computed by GetPaths.
type PathsConfig struct {
	DataDir    string `envconfig:"DATA_DIR" default:""`
	ReportsDir string `envconfig:"REPORTS_DIR" default:""`
	LogsDir    string `envconfig:"LOGS_DIR" default:""`
}

// Load loads configuration from the environment with defaults applied.
func Load() (*Config, error) {
	var cfg Config
	if err := envconfig.Process("GYM", &cfg); err != nil {
		return nil, fmt.Errorf("failed to load config from env: %w", err)
	}
	if err := cfg.validate(); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}
	return &cfg, nil
}

// validate checks configuration values
func (c *Config) validate() error {
	switch c.Logging.Level {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("invalid log level: %s", c.Logging.Level)
	}
	switch c.Logging.Output {
	case "console", "file", "both":
	default:
		return fmt.Errorf("invalid log output: %s", c.Logging.Output)
	}
	return nil
}
