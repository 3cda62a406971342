package output

import (
	"context"
	"fmt"
	"io"
	"strconv"

	"github.com/charmbracelet/lipgloss"
)

// InspectFormatter renders a human-readable breakdown of how the lines of a
// file were classified. Styling is dropped when w is not a terminal.
type InspectFormatter struct{}

// NewInspectFormatter creates a new inspect formatter.
func NewInspectFormatter() *InspectFormatter {
	return &InspectFormatter{}
}

// Name returns the format name.
func (f *InspectFormatter) Name() string {
	return "inspect"
}

type inspectStyles struct {
	title lipgloss.Style
	label lipgloss.Style
	value lipgloss.Style
	warn  lipgloss.Style
	muted lipgloss.Style
}

func newInspectStyles(w io.Writer) inspectStyles {
	r := lipgloss.NewRenderer(w)
	return inspectStyles{
		title: r.NewStyle().Bold(true),
		label: r.NewStyle().Foreground(lipgloss.Color("#666666")).Width(18),
		value: r.NewStyle().Bold(true),
		warn:  r.NewStyle().Foreground(lipgloss.Color("#FF0000")).Bold(true),
		muted: r.NewStyle().Foreground(lipgloss.Color("#666666")),
	}
}

// Format renders the inspection report.
func (f *InspectFormatter) Format(ctx context.Context, report *Report, w io.Writer) error {
	s := newInspectStyles(w)
	out := &stickyWriter{w: w}
	meta := report.Metadata
	stats := meta.Stats

	row := func(label, value string) {
		out.printf("  %s %s\n", s.label.Render(label+":"), s.value.Render(value))
	}

	out.println(s.title.Render("=== evrate inspection: "+meta.Source+" ==="))
	out.println()

	row("Lines read", strconv.Itoa(stats.LinesRead))
	row("Records", strconv.Itoa(stats.Records))
	row("Shape mismatches", strconv.Itoa(stats.ShapeMismatches))
	row("Invalid dates", strconv.Itoa(stats.InvalidDates))
	row("Event types", strconv.Itoa(len(report.Types)))

	if report.Empty() {
		out.println()
		out.println(s.warn.Render("  No valid records found"))
	} else {
		row("Earliest", meta.Earliest.Format(timestampFormat))
		row("Latest", meta.Latest.Format(timestampFormat))
		row("Duration", FormatFrequency(report.Duration)+"s")
		if report.ZeroDuration {
			out.println()
			out.println(s.warn.Render("  All records share one timestamp; frequencies are zero"))
		}

		out.println()
		out.println(s.title.Render("Event types"))
		for _, t := range report.Types {
			out.printf("  %-24s %d\n", t.EventType, t.Records)
		}
	}

	if len(meta.Samples) > 0 {
		out.println()
		out.println(s.title.Render("Skipped lines"))
		for _, sl := range meta.Samples {
			out.printf("  %s %s\n", s.muted.Render(fmt.Sprintf("%d [%s]", sl.LineNum, sl.Reason)), truncate(sl.Text, 120))
		}
	}

	return out.err
}

// stickyWriter keeps the first write error and skips writes after it.
type stickyWriter struct {
	w   io.Writer
	err error
}

func (sw *stickyWriter) printf(format string, args ...any) {
	if sw.err == nil {
		_, sw.err = fmt.Fprintf(sw.w, format, args...)
	}
}

func (sw *stickyWriter) println(args ...any) {
	if sw.err == nil {
		_, sw.err = fmt.Fprintln(sw.w, args...)
	}
}

const timestampFormat = "2006-01-02T15:04:05.000000-07:00"

func truncate(s string, n int) string {
	r := []rune(s)
	if len(r) <= n {
		return s
	}
	return string(r[:n]) + "..."
}
