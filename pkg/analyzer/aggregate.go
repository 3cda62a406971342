package analyzer

import (
	"time"

	"github.com/ccollicutt/evrate/pkg/parser"
)

// Aggregate is the running state of a scan: per-type counts and the
// extreme timestamps seen so far.
type Aggregate struct {
	counts map[string]int
	min    time.Time
	max    time.Time
	set    bool
}

// NewAggregate returns an empty aggregate.
func NewAggregate() *Aggregate {
	return &Aggregate{counts: make(map[string]int)}
}

// Add folds one record into the aggregate. Ties with the current extremes
// leave them unchanged.
func (a *Aggregate) Add(rec *parser.Record) {
	a.counts[rec.EventType]++

	if !a.set {
		a.min = rec.Timestamp
		a.max = rec.Timestamp
		a.set = true
		return
	}
	if rec.Timestamp.After(a.max) {
		a.max = rec.Timestamp
	}
	if rec.Timestamp.Before(a.min) {
		a.min = rec.Timestamp
	}
}

// Len returns the number of distinct event types.
func (a *Aggregate) Len() int {
	return len(a.counts)
}

// Bounds returns the extreme timestamps and whether any record was added.
func (a *Aggregate) Bounds() (min, max time.Time, ok bool) {
	return a.min, a.max, a.set
}

// snapshot copies the state into a Result.
func (a *Aggregate) snapshot(stats parser.Stats) *Result {
	counts := make(map[string]int, len(a.counts))
	for t, n := range a.counts {
		counts[t] = n
	}
	return &Result{
		Counts: counts,
		Min:    a.min,
		Max:    a.max,
		Stats:  stats,
	}
}
