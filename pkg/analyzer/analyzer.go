package analyzer

import (
	"context"
	"errors"
	"fmt"
	"io"
	"time"

	"go.uber.org/zap"

	"github.com/ccollicutt/evrate/pkg/metrics"
	"github.com/ccollicutt/evrate/pkg/parser"
)

// Scanner drains a RecordSource into an Aggregate.
type Scanner struct {
	log     *zap.SugaredLogger
	metrics *metrics.ScanMetrics
}

// ScannerOption configures scanner behavior.
type ScannerOption func(*Scanner)

// WithLogger sets the logger used for scan summaries.
func WithLogger(log *zap.SugaredLogger) ScannerOption {
	return func(s *Scanner) {
		if log != nil {
			s.log = log
		}
	}
}

// WithMetrics records scan counters into m.
func WithMetrics(m *metrics.ScanMetrics) ScannerOption {
	return func(s *Scanner) {
		s.metrics = m
	}
}

// NewScanner creates a scanner.
func NewScanner(opts ...ScannerOption) *Scanner {
	s := &Scanner{log: zap.NewNop().Sugar()}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Scan reads every record from source and returns the aggregated result.
// Read errors abort the scan; skipped lines do not.
func (s *Scanner) Scan(ctx context.Context, source parser.RecordSource) (*Result, error) {
	start := time.Now()
	agg := NewAggregate()

	for {
		rec, err := source.Next(ctx)
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("reading log source: %w", err)
		}
		agg.Add(rec)
	}

	result := agg.snapshot(source.Stats())
	result.StartTime = start
	result.EndTime = time.Now()

	elapsed := result.EndTime.Sub(result.StartTime)
	s.metrics.ObserveStats(result.Stats)
	s.metrics.ObserveCounts(result.Counts)
	s.metrics.ObserveScan(elapsed, result.Duration())

	s.log.Debugw("scan finished",
		"lines", result.Stats.LinesRead,
		"records", result.Stats.Records,
		"shape_mismatches", result.Stats.ShapeMismatches,
		"invalid_dates", result.Stats.InvalidDates,
		"event_types", len(result.Counts),
		"elapsed", elapsed,
	)

	return result, nil
}
