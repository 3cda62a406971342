// Package cli provides the command-line interface for evrate.
package cli

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"

	"github.com/spf13/cobra"

	"github.com/ccollicutt/evrate/internal/cli/commands"
)

// Exit codes.
const (
	ExitOK         = 0
	ExitUserInput  = 1 // missing path or not a regular file
	ExitRuntimeErr = 2 // configuration or runtime error
)

// Execute runs the root command against the process arguments and returns
// the exit code.
func Execute() int {
	return Run(os.Args[1:], os.Stdout, os.Stderr)
}

// Run executes evrate with args and returns the exit code.
func Run(args []string, stdout, stderr io.Writer) int {
	// cobra falls back to os.Args when given nil.
	if args == nil {
		args = []string{}
	}

	rootCmd := NewRootCommand()
	rootCmd.SetArgs(args)
	rootCmd.SetOut(stdout)
	rootCmd.SetErr(stderr)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if err := rootCmd.ExecuteContext(ctx); err != nil {
		// Path problems are reported on stdout without a prefix.
		if commands.IsUserInputError(err) {
			_, _ = fmt.Fprintln(stdout, err.Error())
			return ExitUserInput
		}
		// Print error to stderr (SilenceErrors prevents Cobra from doing this)
		_, _ = fmt.Fprintf(stderr, "Error: %v\n", err)
		return ExitRuntimeErr
	}
	return ExitOK
}

// NewRootCommand creates the root cobra command.
func NewRootCommand() *cobra.Command {
	var g commands.GlobalOptions

	rootCmd := &cobra.Command{
		Use:   "evrate <filepath>",
		Short: "Report per-event-type frequencies from a log file",
		Long: `evrate scans a log file for records of the form

  [2024-01-01T10:00:00.000000+00:00] ... event_type=<name>

and prints, for each event type, the number of records and their frequency
in records per second over the span between the earliest and latest record.

Lines that do not match, or whose timestamp is not a real calendar date,
are skipped. Files ending in .gz or .zst are decompressed transparently.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return commands.RunScan(cmd, args[0], &g)
		},
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	commands.AddGlobalFlags(rootCmd, &g)

	rootCmd.AddCommand(commands.NewInspectCommand(&g))
	rootCmd.AddCommand(commands.NewValidateCommand())
	rootCmd.AddCommand(commands.NewVersionCommand())

	return rootCmd
}
