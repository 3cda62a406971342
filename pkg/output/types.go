// Package output provides formatting and output generation for scan results.
package output

import (
	"time"

	"github.com/ccollicutt/evrate/pkg/analyzer"
	"github.com/ccollicutt/evrate/pkg/parser"
)

// Report is the complete scan output.
type Report struct {
	// Types holds one entry per event type, ordered by event type.
	Types []TypeStat

	// Duration is the observed span in seconds.
	Duration float64

	// ZeroDuration is set when records exist but all share one timestamp.
	// Every frequency is then reported as zero.
	ZeroDuration bool

	// Metadata provides context about the scan.
	Metadata Metadata
}

// TypeStat is the per-event-type line of a report.
type TypeStat struct {
	EventType string
	Records   int

	// Frequency is records per second rounded to FrequencyPrecision digits.
	Frequency float64
}

// Metadata provides context about the scan run.
type Metadata struct {
	// Source is the path of the scanned file.
	Source string

	// Earliest and Latest are the extreme record timestamps.
	Earliest time.Time
	Latest   time.Time

	// Stats classifies every line read.
	Stats parser.Stats

	// Samples holds skipped lines collected for inspection, if any.
	Samples []SkippedLine

	// Elapsed is how long the scan took.
	Elapsed time.Duration
}

// SkippedLine is a line that did not produce a record.
type SkippedLine struct {
	LineNum int
	Text    string
	Reason  string
}

// NewReport creates a Report from scan results.
func NewReport(result *analyzer.Result, source string) *Report {
	report := &Report{
		Types: make([]TypeStat, 0, len(result.Counts)),
		Metadata: Metadata{
			Source:   source,
			Earliest: result.Min,
			Latest:   result.Max,
			Stats:    result.Stats,
			Elapsed:  result.EndTime.Sub(result.StartTime),
		},
	}

	if !result.HasRecords() {
		return report
	}

	report.Duration = result.Duration()
	report.ZeroDuration = report.Duration == 0

	for _, eventType := range result.EventTypes() {
		count := result.Counts[eventType]
		stat := TypeStat{EventType: eventType, Records: count}
		if !report.ZeroDuration {
			stat.Frequency = RoundFrequency(float64(count) / report.Duration)
		}
		report.Types = append(report.Types, stat)
	}

	return report
}

// Empty returns true if the scan found no records.
func (r *Report) Empty() bool {
	return len(r.Types) == 0
}

// TotalRecords returns the sum of all per-type counts.
func (r *Report) TotalRecords() int {
	total := 0
	for _, t := range r.Types {
		total += t.Records
	}
	return total
}
