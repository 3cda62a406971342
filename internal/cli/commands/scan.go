package commands

import (
	"fmt"
	"io"
	"time"

	"github.com/schollz/progressbar/v3"
	"github.com/spf13/cobra"

	"github.com/ccollicutt/evrate/pkg/analyzer"
	"github.com/ccollicutt/evrate/pkg/logging"
	"github.com/ccollicutt/evrate/pkg/metrics"
	"github.com/ccollicutt/evrate/pkg/output"
	"github.com/ccollicutt/evrate/pkg/parser"
)

// RunScan scans the log file at path and prints the frequency report.
func RunScan(cmd *cobra.Command, path string, g *GlobalOptions) error {
	info, err := CheckPath(path)
	if err != nil {
		return err
	}

	cfg, log, err := loadRuntime(cmd, g)
	if err != nil {
		return err
	}
	defer func() { _ = log.Sync() }()

	ctx := logging.WithContext(commandContext(cmd), log)
	log.Debugw("scan started", "file", path, "size", info.Size())

	var openOpts []parser.OpenOption
	var bar *progressbar.ProgressBar
	if cfg.Progress {
		bar = newProgressBar(info.Size(), cmd.ErrOrStderr())
		openOpts = append(openOpts, parser.WithByteObserver(bar))
	}

	in, err := parser.OpenInput(path, openOpts...)
	if err != nil {
		return err
	}
	source := parser.NewFileSource(in, parser.WithMaxLineBytes(cfg.Scan.MaxLineBytes))
	defer source.Close()

	var m *metrics.ScanMetrics
	if cfg.MetricsFile != "" {
		m = metrics.NewScanMetrics()
	}

	scanner := analyzer.NewScanner(analyzer.WithLogger(log), analyzer.WithMetrics(m))
	result, err := scanner.Scan(ctx, source)
	if bar != nil {
		_ = bar.Finish()
	}
	if err != nil {
		return fmt.Errorf("scanning %s: %w", path, err)
	}

	report := output.NewReport(result, path)
	if err := output.NewTextFormatter().Format(ctx, report, cmd.OutOrStdout()); err != nil {
		return fmt.Errorf("formatting output: %w", err)
	}

	if err := m.WriteTextfile(cfg.MetricsFile); err != nil {
		return err
	}

	log.Infow("scan complete",
		"file", path,
		"records", report.TotalRecords(),
		"event_types", len(report.Types),
		"duration_seconds", report.Duration,
	)

	return nil
}

// newProgressBar creates a byte progress bar on w.
func newProgressBar(size int64, w io.Writer) *progressbar.ProgressBar {
	return progressbar.NewOptions64(size,
		progressbar.OptionSetWriter(w),
		progressbar.OptionSetDescription("scanning"),
		progressbar.OptionSetWidth(40),
		progressbar.OptionShowBytes(true),
		progressbar.OptionSetTheme(progressbar.Theme{
			Saucer:        "█",
			SaucerHead:    "█",
			SaucerPadding: "░",
			BarStart:      "",
			BarEnd:        "",
		}),
		progressbar.OptionThrottle(100*time.Millisecond),
		progressbar.OptionClearOnFinish(),
	)
}
