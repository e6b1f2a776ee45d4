package bloomgo

import (
	"log/slog"
	"os"
)

// Logger wraps slog.Logger with bloomgo-specific helpers.
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
// Use this to disable logging entirely.
func NoopLogger() *Logger {
	handler := slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: slog.Level(1000), // Unreachable level
	})
	return &Logger{
		Logger: slog.New(handler),
	}
}

// WithBits adds the filter bit count to the logger.
func (l *Logger) WithBits(bits uint64) *Logger {
	return &Logger{
		Logger: l.Logger.With("bits", bits),
	}
}

// LogCreate logs filter construction.
func (l *Logger) LogCreate(bits uint64, hashFunctions int) {
	l.Debug("filter created",
		"bits", bits,
		"hash_functions", hashFunctions,
	)
}

// LogAdd logs an add operation.
func (l *Logger) LogAdd(dataLen int) {
	l.Debug("add completed",
		"data_len", dataLen,
	)
}

// LogSubstringScan logs a substring scan.
func (l *Logger) LogSubstringScan(dataLen, substringLength, windows int, hit bool) {
	l.Debug("substring scan completed",
		"data_len", dataLen,
		"substring_len", substringLength,
		"windows", windows,
		"hit", hit,
	)
}
