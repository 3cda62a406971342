package parser

import (
	"context"
)

// RecordSource provides an iterator over extracted records.
// Implementations must be safe for sequential access (not concurrent).
type RecordSource interface {
	// Next returns the next record.
	// Returns io.EOF when no more lines are available.
	// Lines that do not yield a record are skipped and counted in Stats.
	Next(ctx context.Context) (*Record, error)

	// Stats returns the line classification counters so far.
	Stats() Stats

	// Close releases any resources held by the source.
	Close() error
}
