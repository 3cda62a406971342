package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/ccollicutt/evrate/pkg/config"
)

// NewValidateCommand creates the validate command.
func NewValidateCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "validate <config-file>",
		Short: "Validate a configuration file",
		Long: `Validate an evrate configuration file without scanning anything.

Checks:
  - YAML syntax
  - Log level and numeric limits
  - Environment overrides applied on top of the file`,
		Args: cobra.ExactArgs(1),
		RunE: runValidate,
	}
}

func runValidate(cmd *cobra.Command, args []string) error {
	configPath := args[0]
	out := cmd.OutOrStdout()

	_, _ = fmt.Fprintf(out, "Validating %s...\n", configPath)

	cfg, err := config.Load(commandContext(cmd), configPath)
	if err != nil {
		return fmt.Errorf("validation failed: %w", err)
	}

	_, _ = fmt.Fprintf(out, "\nConfiguration valid!\n")

	logDest := "stderr"
	if cfg.Logging.Path != "" {
		logDest = cfg.Logging.Path
	}
	if cfg.Logging.Enabled {
		_, _ = fmt.Fprintf(out, "  Logging:        %s to %s\n", cfg.Logging.Level, logDest)
	} else {
		_, _ = fmt.Fprintf(out, "  Logging:        disabled\n")
	}
	if cfg.Scan.MaxLineBytes > 0 {
		_, _ = fmt.Fprintf(out, "  Max line bytes: %d\n", cfg.Scan.MaxLineBytes)
	} else {
		_, _ = fmt.Fprintf(out, "  Max line bytes: unlimited\n")
	}
	_, _ = fmt.Fprintf(out, "  Progress:       %t\n", cfg.Progress)
	if cfg.MetricsFile != "" {
		_, _ = fmt.Fprintf(out, "  Metrics file:   %s\n", cfg.MetricsFile)
	}

	return nil
}
