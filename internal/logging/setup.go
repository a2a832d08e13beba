// Package logging configures the process logger and carries it through
// context.Context so every layer logs with the fields of its callers.
package logging

import (
	"context"
	"io"
	"os"
	"strings"

	"github.com/charmbracelet/log"
)

// Field keys shared by every layer.
const (
	FieldLayer     = "layer"
	FieldAdapter   = "adapter"
	FieldUseCase   = "usecase"
	FieldAction    = "action"
	FieldContainer = "container"
	FieldGroup     = "group"
)

// Config selects the level and destination of the logger.
type Config struct {
	Level  string
	Output io.Writer
}

// Setup builds the process logger and installs it as the package default.
func Setup(cfg Config) *log.Logger {
	out := cfg.Output
	if out == nil {
		out = os.Stderr
	}

	logger := log.NewWithOptions(out, log.Options{
		Level:           ParseLevel(cfg.Level),
		ReportTimestamp: true,
		TimeFormat:      "15:04:05",
	})
	log.SetDefault(logger)

	return logger
}

// ParseLevel maps a level name to a log.Level. Unknown names yield info.
func ParseLevel(level string) log.Level {
	switch strings.ToLower(strings.TrimSpace(level)) {
	case "debug":
		return log.DebugLevel
	case "warn", "warning":
		return log.WarnLevel
	case "error":
		return log.ErrorLevel
	case "fatal":
		return log.FatalLevel
	default:
		return log.InfoLevel
	}
}

// WithLogger returns a copy of ctx carrying logger.
func WithLogger(ctx context.Context, logger *log.Logger) context.Context {
	return log.WithContext(ctx, logger)
}

// FromContext returns the logger carried by ctx, or the default logger.
func FromContext(ctx context.Context) *log.Logger {
	return log.FromContext(ctx)
}

// WithFields enriches the context logger with keyvals and returns both the
// new context and the enriched logger.
func WithFields(ctx context.Context, keyvals ...any) (context.Context, *log.Logger) {
	logger := FromContext(ctx).With(keyvals...)
	return WithLogger(ctx, logger), logger
}
