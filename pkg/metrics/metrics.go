// Package metrics exposes scan counters as Prometheus metrics.
package metrics

import (
	"fmt"
	"time"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/ccollicutt/evrate/pkg/parser"
)

// Skip reasons used as the "reason" label.
const (
	SkipReasonShape = parser.ReasonShape
	SkipReasonDate  = parser.ReasonDate
)

// ScanMetrics holds the metrics of a single scan in a private registry.
// A nil *ScanMetrics is valid and records nothing.
type ScanMetrics struct {
	registry *prometheus.Registry

	linesRead    prometheus.Counter
	linesSkipped *prometheus.CounterVec
	records      *prometheus.CounterVec
	scanDuration prometheus.Gauge
	logSpan      prometheus.Gauge
}

// NewScanMetrics creates and registers the scan metrics.
func NewScanMetrics() *ScanMetrics {
	m := &ScanMetrics{
		registry: prometheus.NewRegistry(),
		linesRead: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "evrate_lines_read_total",
			Help: "Total lines read from the log file",
		}),
		linesSkipped: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "evrate_lines_skipped_total",
				Help: "Lines that did not yield a record, by reason",
			},
			[]string{"reason"},
		),
		records: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "evrate_records_total",
				Help: "Records found, by event type",
			},
			[]string{"event_type"},
		),
		scanDuration: prometheus.NewGauge(prometheus.GaugeOpts{
			Name: "evrate_scan_duration_seconds",
			Help: "Wall-clock time spent scanning",
		}),
		logSpan: prometheus.NewGauge(prometheus.GaugeOpts{
			Name: "evrate_log_span_seconds",
			Help: "Seconds between the earliest and latest record timestamps",
		}),
	}

	m.registry.MustRegister(m.linesRead, m.linesSkipped, m.records, m.scanDuration, m.logSpan)
	return m
}

// ObserveStats records line classification counters.
func (m *ScanMetrics) ObserveStats(stats parser.Stats) {
	if m == nil {
		return
	}
	m.linesRead.Add(float64(stats.LinesRead))
	m.linesSkipped.WithLabelValues(SkipReasonShape).Add(float64(stats.ShapeMismatches))
	m.linesSkipped.WithLabelValues(SkipReasonDate).Add(float64(stats.InvalidDates))
}

// ObserveCounts records per-type record counts.
func (m *ScanMetrics) ObserveCounts(counts map[string]int) {
	if m == nil {
		return
	}
	for eventType, n := range counts {
		m.records.WithLabelValues(eventType).Add(float64(n))
	}
}

// ObserveScan records scan timing and the observed log span.
func (m *ScanMetrics) ObserveScan(elapsed time.Duration, spanSeconds float64) {
	if m == nil {
		return
	}
	m.scanDuration.Set(elapsed.Seconds())
	m.logSpan.Set(spanSeconds)
}

// Registry returns the registry holding the scan metrics.
func (m *ScanMetrics) Registry() *prometheus.Registry {
	return m.registry
}

// LinesRead returns the lines read counter.
func (m *ScanMetrics) LinesRead() prometheus.Counter { return m.linesRead }

// LinesSkipped returns the skipped lines counter.
func (m *ScanMetrics) LinesSkipped() *prometheus.CounterVec { return m.linesSkipped }

// Records returns the per-type records counter.
func (m *ScanMetrics) Records() *prometheus.CounterVec { return m.records }

// LogSpan returns the log span gauge.
func (m *ScanMetrics) LogSpan() prometheus.Gauge { return m.logSpan }

// WriteTextfile writes the metrics in the text exposition format for the
// node_exporter textfile collector. The file is replaced atomically.
func (m *ScanMetrics) WriteTextfile(path string) error {
	if m == nil {
		return nil
	}
	if err := prometheus.WriteToTextfile(path, m.registry); err != nil {
		return fmt.Errorf("writing metrics to %s: %w", path, err)
	}
	return nil
}
