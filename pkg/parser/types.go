// Package parser provides log file reading and record extraction.
package parser

import "time"

// Record is a single event extracted from a log line.
type Record struct {
	// Timestamp is the parsed record time (UTC, microsecond precision).
	Timestamp time.Time

	// EventType is the identifier following the event_type= marker.
	EventType string

	// LineNum is the 1-based line number in the source.
	LineNum int
}

// Stats counts how the lines of a source were classified.
type Stats struct {
	// LinesRead is the number of lines consumed from the source.
	LinesRead int

	// ShapeMismatches is the number of lines that did not match the record pattern.
	ShapeMismatches int

	// InvalidDates is the number of lines whose timestamp failed calendar validation.
	InvalidDates int

	// Records is the number of lines that produced a Record.
	Records int
}

// Skipped returns the number of lines that did not produce a record.
func (s Stats) Skipped() int {
	return s.ShapeMismatches + s.InvalidDates
}
