// Package config provides configuration loading and validation for evrate.
package config

// Config is the root configuration structure loaded from YAML.
type Config struct {
	Logging LoggingConfig `yaml:"logging"`
	Scan    ScanConfig    `yaml:"scan"`

	// Progress shows a progress bar on stderr while scanning.
	Progress bool `yaml:"progress"`

	// MetricsFile is where scan metrics are written in the Prometheus
	// text format. Empty disables metrics output.
	MetricsFile string `yaml:"metrics_file,omitempty"`
}

// LoggingConfig controls diagnostic logging. Logs never go to stdout.
type LoggingConfig struct {
	// Enabled turns logging on. When false all log output is discarded.
	Enabled bool `yaml:"enabled"`

	// Level is one of debug, info, warn, error.
	Level string `yaml:"level"`

	// Path is a log file rotated by size. Empty means stderr.
	Path string `yaml:"path,omitempty"`

	// MaxSize is the size in megabytes before rotation.
	MaxSize int `yaml:"max_size"`

	// MaxBackups is the number of rotated files to keep.
	MaxBackups int `yaml:"max_backups"`

	// MaxAge is the number of days to keep rotated files.
	MaxAge int `yaml:"max_age"`

	// Compress gzips rotated files.
	Compress bool `yaml:"compress"`
}

// ScanConfig tunes the line reader.
type ScanConfig struct {
	// MaxLineBytes caps how much of a line is examined. Longer lines are
	// skipped as shape mismatches. Zero means no limit.
	MaxLineBytes int `yaml:"max_line_bytes"`
}

// Log levels accepted in LoggingConfig.Level.
const (
	LevelDebug = "debug"
	LevelInfo  = "info"
	LevelWarn  = "warn"
	LevelError = "error"
)
