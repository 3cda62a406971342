package output

import (
	"bytes"
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ccollicutt/evrate/pkg/parser"
)

func TestInspectFormatter_Format(t *testing.T) {
	base := time.Date(2023, 6, 1, 12, 0, 0, 0, time.UTC)
	result := createTestResult(map[string]int{"A": 2, "B": 1}, base, base.Add(10*time.Second))
	result.Stats = parser.Stats{LinesRead: 5, ShapeMismatches: 1, InvalidDates: 1, Records: 3}

	report := NewReport(result, "app.log")
	report.Metadata.Samples = []SkippedLine{
		{LineNum: 4, Text: "garbage line", Reason: "shape"},
		{LineNum: 5, Text: "[2023-13-01T12:00:00.000000+00:00] x event_type=A", Reason: "date"},
	}

	f := NewInspectFormatter()
	assert.Equal(t, "inspect", f.Name())

	var buf bytes.Buffer
	require.NoError(t, f.Format(context.Background(), report, &buf))
	out := buf.String()

	assert.Contains(t, out, "app.log")
	assert.Contains(t, out, "Lines read:")
	assert.Contains(t, out, "Shape mismatches:")
	assert.Contains(t, out, "2023-06-01T12:00:00.000000+00:00")
	assert.Contains(t, out, "2023-06-01T12:00:10.000000+00:00")
	assert.Contains(t, out, "10.0s")
	assert.Contains(t, out, "4 [shape]")
	assert.Contains(t, out, "5 [date]")
	assert.NotContains(t, out, "\x1b[", "no escape codes when not writing to a terminal")
}

func TestInspectFormatter_Format_Empty(t *testing.T) {
	result := createTestResult(map[string]int{}, time.Time{}, time.Time{})
	result.Stats = parser.Stats{LinesRead: 2, ShapeMismatches: 2}

	var buf bytes.Buffer
	require.NoError(t, NewInspectFormatter().Format(context.Background(), NewReport(result, "noise.log"), &buf))

	assert.Contains(t, buf.String(), "No valid records found")
	assert.NotContains(t, buf.String(), "Earliest")
}

func TestInspectFormatter_Format_ZeroDuration(t *testing.T) {
	ts := time.Date(2023, 6, 1, 12, 0, 0, 0, time.UTC)
	result := createTestResult(map[string]int{"A": 1}, ts, ts)

	var buf bytes.Buffer
	require.NoError(t, NewInspectFormatter().Format(context.Background(), NewReport(result, "one.log"), &buf))

	assert.Contains(t, buf.String(), "frequencies are zero")
}

// countingWriter fails every write after the first n.
type countingWriter struct {
	n      int
	writes int
}

func (c *countingWriter) Write(p []byte) (int, error) {
	c.writes++
	if c.writes > c.n {
		return 0, assert.AnError
	}
	return len(p), nil
}

func TestInspectFormatter_Format_WriteError(t *testing.T) {
	base := time.Date(2023, 6, 1, 12, 0, 0, 0, time.UTC)
	report := NewReport(createTestResult(map[string]int{"A": 1}, base, base.Add(time.Second)), "app.log")

	err := NewInspectFormatter().Format(context.Background(), report, failWriter{})
	assert.ErrorIs(t, err, assert.AnError)

	w := &countingWriter{n: 3}
	err = NewInspectFormatter().Format(context.Background(), report, w)
	assert.ErrorIs(t, err, assert.AnError)
	assert.Equal(t, 4, w.writes, "no writes after the first failure")
}

func TestTruncate(t *testing.T) {
	assert.Equal(t, "short", truncate("short", 10))
	assert.Equal(t, "abc...", truncate("abcdef", 3))
}
