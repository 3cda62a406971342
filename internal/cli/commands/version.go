package commands

import (
	"fmt"
	"io"
	"runtime/debug"

	"github.com/spf13/cobra"
)

// Build metadata, set via ldflags:
//
//	-X github.com/ccollicutt/evrate/internal/cli/commands.Version=v1.2.0
//	-X github.com/ccollicutt/evrate/internal/cli/commands.Commit=abc1234
var (
	Version = "dev"
	Commit  = ""
)

// NewVersionCommand creates the version command.
func NewVersionCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Long:  "Print the evrate version and, when known, the commit it was built from.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return RunVersion(cmd.OutOrStdout(), Version, Commit, buildVersion())
		},
	}
}

// RunVersion writes the version line to w. A "dev" version falls back to the
// module version recorded by `go install`, if any.
func RunVersion(w io.Writer, version, commit, moduleVersion string) error {
	if version == "dev" && moduleVersion != "" {
		version = moduleVersion
	}
	line := "evrate " + version
	if commit != "" {
		line += " (" + commit + ")"
	}
	_, err := fmt.Fprintln(w, line)
	return err
}

// buildVersion returns the main module version from the build info, or ""
// for local builds.
func buildVersion() string {
	info, ok := debug.ReadBuildInfo()
	if !ok || info.Main.Version == "(devel)" {
		return ""
	}
	return info.Main.Version
}
