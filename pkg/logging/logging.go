// Package logging builds the diagnostic logger. Diagnostics go to stderr or
// a rotated file; stdout is reserved for the report.
package logging

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"gopkg.in/natefinch/lumberjack.v2"

	"github.com/ccollicutt/evrate/pkg/config"
)

type contextKey string

const loggerKey = contextKey("logger")

// New builds a logger from configuration. Disabled logging returns a no-op
// logger. stderr is used when no path is configured.
func New(cfg config.LoggingConfig, stderr io.Writer) (*zap.SugaredLogger, error) {
	if !cfg.Enabled {
		return zap.NewNop().Sugar(), nil
	}

	level, err := zapcore.ParseLevel(cfg.Level)
	if err != nil {
		return nil, fmt.Errorf("parsing log level: %w", err)
	}

	writeSyncer := zapcore.AddSync(stderr)
	if cfg.Path != "" {
		if err := os.MkdirAll(filepath.Dir(cfg.Path), 0755); err != nil {
			return nil, fmt.Errorf("creating log directory: %w", err)
		}
		writeSyncer = zapcore.AddSync(&lumberjack.Logger{
			Filename:   cfg.Path,
			MaxSize:    cfg.MaxSize,
			MaxBackups: cfg.MaxBackups,
			MaxAge:     cfg.MaxAge,
			Compress:   cfg.Compress,
		})
	}

	encoderConfig := zap.NewProductionEncoderConfig()
	encoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder
	encoder := zapcore.NewConsoleEncoder(encoderConfig)

	core := zapcore.NewCore(encoder, writeSyncer, level)
	return zap.New(core).Sugar(), nil
}

// WithContext adds logger to context.
func WithContext(ctx context.Context, log *zap.SugaredLogger) context.Context {
	return context.WithValue(ctx, loggerKey, log)
}

// FromContext returns the logger stored in ctx, or a no-op logger.
func FromContext(ctx context.Context) *zap.SugaredLogger {
	if ctx != nil {
		if log, ok := ctx.Value(loggerKey).(*zap.SugaredLogger); ok {
			return log
		}
	}
	return zap.NewNop().Sugar()
}
