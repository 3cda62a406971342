package output

import (
	"context"
	"io"
)

// Formatter renders scan results in a specific format.
type Formatter interface {
	// Format renders the report to the given writer.
	Format(ctx context.Context, report *Report, w io.Writer) error

	// Name returns the format name (text, inspect).
	Name() string
}
