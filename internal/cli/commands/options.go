package commands

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/ccollicutt/evrate/pkg/config"
	"github.com/ccollicutt/evrate/pkg/logging"
)

// User input errors. The messages are printed as-is and exit with status 1.
var (
	ErrFileNotFound = errors.New("error: specified file does not exist")
	ErrNotAFile     = errors.New("error: specified path is not a file")
)

// GlobalOptions holds flags shared by all commands.
type GlobalOptions struct {
	ConfigPath  string
	LogLevel    string
	LogFile     string
	Progress    bool
	MetricsFile string
}

// AddGlobalFlags registers the shared flags as persistent flags on cmd.
func AddGlobalFlags(cmd *cobra.Command, g *GlobalOptions) {
	flags := cmd.PersistentFlags()
	flags.StringVar(&g.ConfigPath, "config", "", "Path to a YAML configuration file")
	flags.StringVar(&g.LogLevel, "log-level", "", "Enable diagnostic logging at level (debug|info|warn|error)")
	flags.StringVar(&g.LogFile, "log-file", "", "Write diagnostic logs to a rotated file instead of stderr")
	flags.BoolVar(&g.Progress, "progress", false, "Show a progress bar on stderr")
	flags.StringVar(&g.MetricsFile, "metrics-file", "", "Write scan metrics in Prometheus text format to this file")
}

// CheckPath verifies that path names an existing regular file.
func CheckPath(path string) (os.FileInfo, error) {
	info, err := os.Stat(path)
	if err != nil {
		return nil, ErrFileNotFound
	}
	if !info.Mode().IsRegular() {
		return nil, ErrNotAFile
	}
	return info, nil
}

// IsUserInputError reports whether err is one of the path errors.
func IsUserInputError(err error) bool {
	return errors.Is(err, ErrFileNotFound) || errors.Is(err, ErrNotAFile)
}

// loadRuntime loads configuration, applies flag overrides and builds the logger.
func loadRuntime(cmd *cobra.Command, g *GlobalOptions) (*config.Config, *zap.SugaredLogger, error) {
	ctx := commandContext(cmd)

	cfg, err := config.Load(ctx, g.ConfigPath)
	if err != nil {
		return nil, nil, fmt.Errorf("loading config: %w", err)
	}

	// Flags win over the config file and environment.
	if g.LogLevel != "" {
		cfg.Logging.Enabled = true
		cfg.Logging.Level = g.LogLevel
	}
	if g.LogFile != "" {
		cfg.Logging.Enabled = true
		cfg.Logging.Path = g.LogFile
	}
	if g.Progress {
		cfg.Progress = true
	}
	if g.MetricsFile != "" {
		cfg.MetricsFile = g.MetricsFile
	}

	if err := config.Validate(cfg); err != nil {
		return nil, nil, fmt.Errorf("validating flags: %w", err)
	}

	log, err := logging.New(cfg.Logging, cmd.ErrOrStderr())
	if err != nil {
		return nil, nil, fmt.Errorf("initializing logging: %w", err)
	}

	return cfg, log, nil
}

func commandContext(cmd *cobra.Command) context.Context {
	if ctx := cmd.Context(); ctx != nil {
		return ctx
	}
	return context.Background()
}
