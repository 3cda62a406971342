// Package analyzer folds extracted records into per-event-type counts and
// the observed time span.
package analyzer

import (
	"sort"
	"time"

	"github.com/shopspring/decimal"

	"github.com/ccollicutt/evrate/pkg/parser"
)

// Result is the outcome of a completed scan. It is not modified after
// Scan returns.
type Result struct {
	// Counts maps event type to the number of records seen.
	Counts map[string]int

	// Min and Max are the earliest and latest record timestamps.
	// Both are zero when no record was found.
	Min time.Time
	Max time.Time

	// Stats classifies every line read from the source.
	Stats parser.Stats

	// StartTime and EndTime bound the scan in wall-clock time.
	StartTime time.Time
	EndTime   time.Time
}

// HasRecords reports whether at least one record was found.
func (r *Result) HasRecords() bool {
	return len(r.Counts) > 0
}

// TotalRecords returns the sum of all per-type counts.
func (r *Result) TotalRecords() int {
	total := 0
	for _, n := range r.Counts {
		total += n
	}
	return total
}

// EventTypes returns the distinct event types in ascending order.
func (r *Result) EventTypes() []string {
	types := make([]string, 0, len(r.Counts))
	for t := range r.Counts {
		types = append(types, t)
	}
	sort.Strings(types)
	return types
}

// Duration returns the span between Min and Max in seconds.
func (r *Result) Duration() float64 {
	if !r.HasRecords() {
		return 0
	}
	return SpanSeconds(r.Min, r.Max)
}

// SpanSeconds returns max-min in seconds, computed from whole microseconds
// and rounded once to the nearest float64. time.Duration would overflow for
// spans beyond ~292 years.
func SpanSeconds(min, max time.Time) float64 {
	micros := (max.Unix()-min.Unix())*1_000_000 +
		int64(max.Nanosecond()/1000) - int64(min.Nanosecond()/1000)
	f, _ := decimal.New(micros, -6).Float64()
	return f
}
