package pointfield

import (
	"context"
	"log/slog"
	"os"
)

// LevelTrace is the level used for per-value notices like dropped unused
// fields and ignored boosts. It sits below slog.LevelDebug so ordinary debug
// logging does not emit it.
const LevelTrace = slog.LevelDebug - 4

// Logger wraps slog.Logger with pointfield-specific helpers.
// This provides structured logging with consistent field names.
type Logger struct {
	*slog.Logger
}

// NewLogger creates a new Logger with the given handler.
// If handler is nil, uses default text handler to stderr.
func NewLogger(handler slog.Handler) *Logger {
	if handler == nil {
		handler = slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
			Level: slog.LevelInfo,
		})
	}
	return &Logger{
		Logger: slog.New(handler),
	}
}

// NoopLogger creates a Logger that discards all log output.
// Use this to disable logging entirely.
func NoopLogger() *Logger {
	handler := slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: slog.Level(1000), // Unreachable level
	})
	return &Logger{
		Logger: slog.New(handler),
	}
}

// WithField adds a field name to the logger.
func (l *Logger) WithField(name string) *Logger {
	return &Logger{
		Logger: l.Logger.With("field", name),
	}
}

// Trace emits a record at LevelTrace.
func (l *Logger) Trace(msg string, args ...any) {
	l.Log(context.Background(), LevelTrace, msg, args...)
}

// traceEnabled reports whether trace records would be emitted, so hot paths
// can skip attribute construction entirely.
func (l *Logger) traceEnabled() bool {
	return l.Handler().Enabled(context.Background(), LevelTrace)
}
