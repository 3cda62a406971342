package output

import (
	"context"
	"fmt"
	"io"
)

// ZeroDurationWarning is printed before the per-type lines when every record
// shares one timestamp.
const ZeroDurationWarning = "WARNING: minimum timestamp is equal to maximum timestamp -> setting all type frequencies to zero"

// TextFormatter formats reports as one line per event type.
type TextFormatter struct{}

// NewTextFormatter creates a new text formatter.
func NewTextFormatter() *TextFormatter {
	return &TextFormatter{}
}

// Name returns the format name.
func (f *TextFormatter) Name() string {
	return "text"
}

// Format renders the report as text. An empty report produces no output.
func (f *TextFormatter) Format(ctx context.Context, report *Report, w io.Writer) error {
	if report.Empty() {
		return nil
	}

	if report.ZeroDuration {
		if _, err := fmt.Fprintln(w, ZeroDurationWarning); err != nil {
			return err
		}
	}

	for _, t := range report.Types {
		freq := "0"
		if !report.ZeroDuration {
			freq = FormatFrequency(t.Frequency)
		}
		if _, err := fmt.Fprintf(w, "event type: %s, records: %d, frequency: %s rec/s\n",
			t.EventType, t.Records, freq); err != nil {
			return err
		}
	}

	return nil
}
