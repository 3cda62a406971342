package config

import (
	"fmt"
	"os"
	"strconv"
)

// Default values for configuration.
const (
	DefaultLogLevel      = LevelInfo
	DefaultLogMaxSize    = 10
	DefaultLogMaxBackups = 3
	DefaultLogMaxAge     = 7
	DefaultMaxLineBytes  = 0 // no limit
)

// Environment variable names.
const (
	EnvLogEnabled   = "EVRATE_LOG_ENABLED"
	EnvLogLevel     = "EVRATE_LOG_LEVEL"
	EnvLogFile      = "EVRATE_LOG_FILE"
	EnvMaxLineBytes = "EVRATE_MAX_LINE_BYTES"
	EnvProgress     = "EVRATE_PROGRESS"
	EnvMetricsFile  = "EVRATE_METRICS_FILE"
)

// DefaultConfig returns a configuration with sensible defaults.
func DefaultConfig() *Config {
	return &Config{
		Logging: LoggingConfig{
			Level:      DefaultLogLevel,
			MaxSize:    DefaultLogMaxSize,
			MaxBackups: DefaultLogMaxBackups,
			MaxAge:     DefaultLogMaxAge,
		},
		Scan: ScanConfig{
			MaxLineBytes: DefaultMaxLineBytes,
		},
	}
}

// applyEnvironmentOverrides applies environment variable overrides to the config.
func (c *Config) applyEnvironmentOverrides() error {
	if v := os.Getenv(EnvLogEnabled); v != "" {
		enabled, err := strconv.ParseBool(v)
		if err != nil {
			return fmt.Errorf("%s: %w", EnvLogEnabled, err)
		}
		c.Logging.Enabled = enabled
	}

	if v := os.Getenv(EnvLogLevel); v != "" {
		c.Logging.Level = v
	}

	if v := os.Getenv(EnvLogFile); v != "" {
		c.Logging.Path = v
	}

	if v := os.Getenv(EnvMaxLineBytes); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("%s: %w", EnvMaxLineBytes, err)
		}
		c.Scan.MaxLineBytes = n
	}

	if v := os.Getenv(EnvProgress); v != "" {
		progress, err := strconv.ParseBool(v)
		if err != nil {
			return fmt.Errorf("%s: %w", EnvProgress, err)
		}
		c.Progress = progress
	}

	if v := os.Getenv(EnvMetricsFile); v != "" {
		c.MetricsFile = v
	}

	return nil
}
