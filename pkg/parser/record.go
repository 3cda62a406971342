package parser

import (
	"errors"
	"fmt"
	"regexp"
	"time"
)

// RecordPattern is the fixed shape of a record line. Group 1 captures the
// timestamp without its offset, group 2 the event type. The greedy .* makes
// the last " event_type=" marker on the line win. Event types are made of
// Unicode letters, digits and underscores.
const RecordPattern = `^\[(\d{4}-\d{2}-\d{2}T\d{2}:\d{2}:\d{2}\.\d{6})\+00:00\].* event_type=([\p{L}\p{N}_]+)`

// TimestampLayout parses the captured timestamp text.
const TimestampLayout = "2006-01-02T15:04:05.000000"

var recordRe = regexp.MustCompile(RecordPattern)

var (
	// ErrShapeMismatch is returned when a line does not match RecordPattern.
	ErrShapeMismatch = errors.New("line does not match record pattern")

	// ErrInvalidDate is returned when the timestamp matches the pattern but
	// is not a valid calendar instant.
	ErrInvalidDate = errors.New("invalid date format")

	// ErrLineTooLong marks a line cut off by the line cap. It is reported
	// wrapped together with ErrShapeMismatch.
	ErrLineTooLong = errors.New("line exceeds maximum length")
)

// Skip reasons reported by SkipReason.
const (
	ReasonShape = "shape"
	ReasonDate  = "date"
)

// SkipReason classifies an Extract error as ReasonShape or ReasonDate.
// It returns "" for nil or unrelated errors.
func SkipReason(err error) string {
	switch {
	case errors.Is(err, ErrShapeMismatch):
		return ReasonShape
	case errors.Is(err, ErrInvalidDate):
		return ReasonDate
	default:
		return ""
	}
}

// MatchShape applies the record pattern to a line and returns the raw
// timestamp text and event type.
func MatchShape(line string) (timestamp, eventType string, ok bool) {
	m := recordRe.FindStringSubmatch(line)
	if m == nil {
		return "", "", false
	}
	return m[1], m[2], true
}

// ParseTimestamp validates timestamp text captured by MatchShape.
func ParseTimestamp(s string) (time.Time, error) {
	ts, err := time.Parse(TimestampLayout, s)
	if err != nil {
		return time.Time{}, fmt.Errorf("%w: %v", ErrInvalidDate, err)
	}
	// Year 0000 parses in Go but is not a calendar year.
	if ts.Year() < 1 {
		return time.Time{}, fmt.Errorf("%w: year %d out of range", ErrInvalidDate, ts.Year())
	}
	return ts, nil
}

// Extract runs both stages on a line. The returned error wraps
// ErrShapeMismatch or ErrInvalidDate.
func Extract(line string) (*Record, error) {
	tsStr, eventType, ok := MatchShape(line)
	if !ok {
		return nil, ErrShapeMismatch
	}

	ts, err := ParseTimestamp(tsStr)
	if err != nil {
		return nil, fmt.Errorf("parsing timestamp %q: %w", tsStr, err)
	}

	return &Record{Timestamp: ts, EventType: eventType}, nil
}
