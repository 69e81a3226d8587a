package halfgo

import (
	"log/slog"
	"os"
)

// Logger wraps slog.Logger with halfgo-specific field names. The package
// logs nothing by default; SetLogger enables debug diagnostics for the
// parallel conversion paths.
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

// NewJSONLogger creates a Logger that outputs JSON-formatted logs.
// level sets the minimum log level (e.g., slog.LevelDebug, slog.LevelInfo).
func NewJSONLogger(level slog.Level) *Logger {
	handler := slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{
		Level: level,
	})
	return &Logger{
		Logger: slog.New(handler),
	}
}

// NewTextLogger creates a Logger that outputs human-readable text logs.
func NewTextLogger(level slog.Level) *Logger {
	handler := slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: level,
	})
	return &Logger{
		Logger: slog.New(handler),
	}
}

// NoopLogger creates a Logger that discards all log output.
func NoopLogger() *Logger {
	handler := slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: slog.Level(1000), // Unreachable level
	})
	return &Logger{
		Logger: slog.New(handler),
	}
}

// logger is the package-level diagnostics logger, silent by default.
var logger = NoopLogger()

// SetLogger replaces the package logger. Pass nil to silence the package
// again. Not safe to call concurrently with conversions.
func SetLogger(l *Logger) {
	if l == nil {
		l = NoopLogger()
	}
	logger = l
}

// logFanOut records a parallel conversion fan-out decision.
func logFanOut(op string, n, chunks, workers int) {
	logger.Debug("parallel fan-out",
		"op", op,
		"count", n,
		"chunks", chunks,
		"workers", workers,
	)
}
