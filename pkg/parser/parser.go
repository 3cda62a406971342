package parser

import (
	"bufio"
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
)

// LineHook observes every line read by a FileSource. err is nil for lines
// that produced a record and wraps ErrShapeMismatch or ErrInvalidDate otherwise.
type LineHook func(lineNum int, line string, err error)

// SourceOption configures a FileSource.
type SourceOption func(*FileSource)

// WithMaxLineBytes caps the bytes kept per line. Longer lines are still
// consumed in full but count as shape mismatches. Zero or less means no limit.
func WithMaxLineBytes(n int) SourceOption {
	return func(s *FileSource) {
		if n > 0 {
			s.maxLine = n
		}
	}
}

// WithLineHook registers a hook called for each line.
func WithLineHook(h LineHook) SourceOption {
	return func(s *FileSource) {
		s.hook = h
	}
}

// FileSource implements RecordSource over a line-oriented reader.
type FileSource struct {
	reader  io.Reader
	br      *bufio.Reader
	maxLine int
	hook    LineHook

	line    []byte
	eof     bool
	pending error

	stats Stats
}

// NewFileSource creates a RecordSource reading lines from r.
// If r is an io.Closer it is closed by Close.
func NewFileSource(r io.Reader, opts ...SourceOption) *FileSource {
	s := &FileSource{
		reader: r,
		br:     bufio.NewReaderSize(r, 64*1024),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Next returns the next record.
// Skips lines that fail either extraction stage.
// Returns io.EOF when the reader is exhausted.
func (s *FileSource) Next(ctx context.Context) (*Record, error) {
	for {
		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		default:
		}

		oversized, err := s.readLine()
		if err == io.EOF {
			return nil, io.EOF
		}
		if err != nil {
			return nil, fmt.Errorf("reading line %d: %w", s.stats.LinesRead+1, err)
		}

		s.stats.LinesRead++
		line := string(s.line)

		var rec *Record
		if oversized {
			err = fmt.Errorf("%w: %w", ErrShapeMismatch, ErrLineTooLong)
		} else {
			rec, err = Extract(line)
		}
		if s.hook != nil {
			s.hook(s.stats.LinesRead, line, err)
		}
		if err != nil {
			if errors.Is(err, ErrShapeMismatch) {
				s.stats.ShapeMismatches++
			} else {
				s.stats.InvalidDates++
			}
			continue
		}

		s.stats.Records++
		rec.LineNum = s.stats.LinesRead
		return rec, nil
	}
}

// Stats returns the counters accumulated so far.
func (s *FileSource) Stats() Stats {
	return s.stats
}

// Close releases resources.
func (s *FileSource) Close() error {
	if c, ok := s.reader.(io.Closer); ok {
		return c.Close()
	}
	return nil
}

// readLine reads the next line into s.line without its terminator. Lines end
// at \n, \r\n or a lone \r. With a line cap, only the first maxLine bytes are
// kept and oversized reports that the rest was dropped.
func (s *FileSource) readLine() (oversized bool, err error) {
	if s.pending != nil {
		err, s.pending = s.pending, nil
		return false, err
	}
	if s.eof {
		return false, io.EOF
	}

	s.line = s.line[:0]
	consumed := 0
	for {
		if s.br.Buffered() == 0 {
			if _, err := s.br.Peek(1); err != nil {
				if err != io.EOF {
					return false, err
				}
				s.eof = true
				if consumed == 0 {
					return false, io.EOF
				}
				return oversized, nil
			}
		}

		buf, _ := s.br.Peek(s.br.Buffered())
		i := bytes.IndexAny(buf, "\r\n")
		chunk := buf
		if i >= 0 {
			chunk = buf[:i]
		}
		oversized = s.appendCapped(chunk) || oversized
		consumed += len(chunk)

		if i < 0 {
			_, _ = s.br.Discard(len(buf))
			continue
		}

		term := buf[i]
		_, _ = s.br.Discard(i + 1)
		if term == '\r' {
			next, err := s.br.Peek(1)
			switch {
			case err == nil && next[0] == '\n':
				_, _ = s.br.Discard(1)
			case err == io.EOF:
				s.eof = true
			case err != nil:
				// Surface the failure on the following call.
				s.pending = err
			}
		}
		return oversized, nil
	}
}

// appendCapped appends b to the current line up to the line cap and reports
// whether anything was dropped.
func (s *FileSource) appendCapped(b []byte) bool {
	if s.maxLine <= 0 {
		s.line = append(s.line, b...)
		return false
	}
	room := s.maxLine - len(s.line)
	if room >= len(b) {
		s.line = append(s.line, b...)
		return false
	}
	if room > 0 {
		s.line = append(s.line, b[:room]...)
	}
	return true
}
