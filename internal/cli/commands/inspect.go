package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/ccollicutt/evrate/pkg/analyzer"
	"github.com/ccollicutt/evrate/pkg/logging"
	"github.com/ccollicutt/evrate/pkg/output"
	"github.com/ccollicutt/evrate/pkg/parser"
)

// DefaultSamples is the number of skipped lines kept per reason.
const DefaultSamples = 5

// NewInspectCommand creates the inspect command.
func NewInspectCommand(g *GlobalOptions) *cobra.Command {
	var samples int

	cmd := &cobra.Command{
		Use:   "inspect <filepath>",
		Short: "Explain how the lines of a log file were classified",
		Long: `Inspect scans a log file like the default command but prints a
diagnostic summary instead of frequencies:

  - lines read, records, and lines skipped by reason
  - distinct event types and the observed time span
  - sample lines that failed the record pattern or date validation`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return RunInspect(cmd, args[0], samples, g)
		},
	}

	cmd.Flags().IntVar(&samples, "samples", DefaultSamples, "Skipped lines to show per reason (0 disables)")

	return cmd
}

// RunInspect scans path and prints a classification summary.
func RunInspect(cmd *cobra.Command, path string, samples int, g *GlobalOptions) error {
	if samples < 0 {
		return fmt.Errorf("--samples must not be negative, got %d", samples)
	}

	if _, err := CheckPath(path); err != nil {
		return err
	}

	cfg, log, err := loadRuntime(cmd, g)
	if err != nil {
		return err
	}
	defer func() { _ = log.Sync() }()

	ctx := logging.WithContext(commandContext(cmd), log)

	collector := newSampleCollector(samples)

	in, err := parser.OpenInput(path)
	if err != nil {
		return err
	}
	source := parser.NewFileSource(in,
		parser.WithMaxLineBytes(cfg.Scan.MaxLineBytes),
		parser.WithLineHook(collector.observe),
	)
	defer source.Close()

	result, err := analyzer.NewScanner(analyzer.WithLogger(log)).Scan(ctx, source)
	if err != nil {
		return fmt.Errorf("scanning %s: %w", path, err)
	}

	report := output.NewReport(result, path)
	report.Metadata.Samples = collector.samples

	if err := output.NewInspectFormatter().Format(ctx, report, cmd.OutOrStdout()); err != nil {
		return fmt.Errorf("formatting output: %w", err)
	}
	return nil
}

// sampleCollector keeps the first few skipped lines for each reason.
type sampleCollector struct {
	limit   int
	perKind map[string]int
	samples []output.SkippedLine
}

func newSampleCollector(limit int) *sampleCollector {
	return &sampleCollector{
		limit:   limit,
		perKind: make(map[string]int),
	}
}

func (c *sampleCollector) observe(lineNum int, line string, err error) {
	reason := parser.SkipReason(err)
	if reason == "" || c.perKind[reason] >= c.limit {
		return
	}
	c.perKind[reason]++
	c.samples = append(c.samples, output.SkippedLine{
		LineNum: lineNum,
		Text:    line,
		Reason:  reason,
	})
}
