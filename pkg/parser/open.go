package parser

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/klauspost/compress/gzip"
	"github.com/klauspost/compress/zstd"
)

// OpenOption configures OpenInput.
type OpenOption func(*openConfig)

type openConfig struct {
	observer io.Writer
}

// WithByteObserver copies every raw byte read from the file (before
// decompression) to w. Used to drive progress reporting.
func WithByteObserver(w io.Writer) OpenOption {
	return func(c *openConfig) {
		c.observer = w
	}
}

// OpenInput opens a log file for reading. Files ending in .gz or .zst are
// decompressed transparently.
func OpenInput(path string, opts ...OpenOption) (io.ReadCloser, error) {
	var cfg openConfig
	for _, opt := range opts {
		opt(&cfg)
	}

	f, err := os.Open(path) // #nosec G304 -- user-provided paths are expected
	if err != nil {
		return nil, fmt.Errorf("opening log file %s: %w", path, err)
	}

	var raw io.Reader = f
	if cfg.observer != nil {
		raw = io.TeeReader(f, cfg.observer)
	}

	switch {
	case strings.HasSuffix(path, ".gz"):
		zr, err := gzip.NewReader(raw)
		if err != nil {
			_ = f.Close()
			return nil, fmt.Errorf("opening gzip stream %s: %w", path, err)
		}
		return &input{Reader: zr, closers: []func() error{zr.Close, f.Close}}, nil

	case strings.HasSuffix(path, ".zst"):
		dec, err := zstd.NewReader(raw, zstd.WithDecoderConcurrency(1))
		if err != nil {
			_ = f.Close()
			return nil, fmt.Errorf("opening zstd stream %s: %w", path, err)
		}
		closeDec := func() error {
			dec.Close()
			return nil
		}
		return &input{Reader: dec, closers: []func() error{closeDec, f.Close}}, nil

	default:
		return &input{Reader: raw, closers: []func() error{f.Close}}, nil
	}
}

// input closes a decoder chain innermost first.
type input struct {
	io.Reader
	closers []func() error
}

func (in *input) Close() error {
	var firstErr error
	for _, c := range in.closers {
		if err := c(); err != nil && firstErr == nil {
			firstErr = err
		}
	}
	return firstErr
}
