package config

import (
	"context"
	"errors"
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"
)

// Load reads and validates a configuration file. An empty path yields the
// defaults with environment overrides applied.
func Load(_ context.Context, path string) (*Config, error) {
	cfg := DefaultConfig()

	if path != "" {
		data, err := os.ReadFile(path) // #nosec G304 -- user-provided config path is expected
		if err != nil {
			return nil, fmt.Errorf("reading config file: %w", err)
		}

		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("parsing config file: %w", err)
		}
	}

	if err := cfg.applyEnvironmentOverrides(); err != nil {
		return nil, fmt.Errorf("applying environment: %w", err)
	}

	if err := Validate(cfg); err != nil {
		return nil, fmt.Errorf("validating config: %w", err)
	}

	return cfg, nil
}

// Validate checks a configuration for errors and fills in defaults for
// zero values.
func Validate(cfg *Config) error {
	if err := validateLogging(&cfg.Logging); err != nil {
		return fmt.Errorf("logging: %w", err)
	}

	if err := validateScan(&cfg.Scan); err != nil {
		return fmt.Errorf("scan: %w", err)
	}

	cfg.MetricsFile = expandPath(cfg.MetricsFile)

	return nil
}

func validateLogging(lc *LoggingConfig) error {
	if lc.Level == "" {
		lc.Level = DefaultLogLevel
	}
	lc.Level = strings.ToLower(lc.Level)

	switch lc.Level {
	case LevelDebug, LevelInfo, LevelWarn, LevelError:
		// Valid
	default:
		return fmt.Errorf("invalid level %q (must be debug, info, warn, or error)", lc.Level)
	}

	lc.Path = expandPath(lc.Path)

	if lc.MaxSize < 0 || lc.MaxBackups < 0 || lc.MaxAge < 0 {
		return errors.New("max_size, max_backups and max_age must not be negative")
	}
	if lc.MaxSize == 0 {
		lc.MaxSize = DefaultLogMaxSize
	}

	return nil
}

func validateScan(sc *ScanConfig) error {
	if sc.MaxLineBytes < 0 {
		return fmt.Errorf("max_line_bytes must not be negative, got %d", sc.MaxLineBytes)
	}
	return nil
}

// expandPath expands ${VAR} and $VAR references in a path.
func expandPath(s string) string {
	if !strings.Contains(s, "$") {
		return s
	}
	return os.ExpandEnv(s)
}
