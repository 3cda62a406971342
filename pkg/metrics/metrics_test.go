package metrics

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ccollicutt/evrate/pkg/parser"
)

func TestScanMetrics_Observe(t *testing.T) {
	m := NewScanMetrics()

	m.ObserveStats(parser.Stats{LinesRead: 10, ShapeMismatches: 3, InvalidDates: 2, Records: 5})
	m.ObserveCounts(map[string]int{"LOGIN": 4, "LOGOUT": 1})
	m.ObserveScan(1500*time.Millisecond, 42.5)

	assert.Equal(t, 10.0, testutil.ToFloat64(m.LinesRead()))
	assert.Equal(t, 3.0, testutil.ToFloat64(m.LinesSkipped().WithLabelValues(SkipReasonShape)))
	assert.Equal(t, 2.0, testutil.ToFloat64(m.LinesSkipped().WithLabelValues(SkipReasonDate)))
	assert.Equal(t, 4.0, testutil.ToFloat64(m.Records().WithLabelValues("LOGIN")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.Records().WithLabelValues("LOGOUT")))
	assert.Equal(t, 42.5, testutil.ToFloat64(m.LogSpan()))
	assert.Equal(t, 2, testutil.CollectAndCount(m.Records()))
}

func TestScanMetrics_Nil(t *testing.T) {
	var m *ScanMetrics

	assert.NotPanics(t, func() {
		m.ObserveStats(parser.Stats{LinesRead: 1})
		m.ObserveCounts(map[string]int{"A": 1})
		m.ObserveScan(time.Second, 1)
	})
	assert.NoError(t, m.WriteTextfile(filepath.Join(t.TempDir(), "never.prom")))
}

func TestScanMetrics_WriteTextfile(t *testing.T) {
	m := NewScanMetrics()
	m.ObserveStats(parser.Stats{LinesRead: 3, Records: 2, ShapeMismatches: 1})
	m.ObserveCounts(map[string]int{"A": 2})

	path := filepath.Join(t.TempDir(), "evrate.prom")
	require.NoError(t, m.WriteTextfile(path))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	text := string(data)

	assert.Contains(t, text, "evrate_lines_read_total 3")
	assert.Contains(t, text, `evrate_records_total{event_type="A"} 2`)
	assert.Contains(t, text, `evrate_lines_skipped_total{reason="shape"} 1`)
	assert.True(t, strings.HasPrefix(text, "# HELP"), "exposition format expected, got %q", text)
}

func TestScanMetrics_WriteTextfileError(t *testing.T) {
	m := NewScanMetrics()
	err := m.WriteTextfile(filepath.Join(t.TempDir(), "missing", "dir", "evrate.prom"))
	assert.Error(t, err)
}
