package voronoi1d

import (
	"log/slog"
	"os"
)

// Logger wraps slog.Logger with voronoi1d-specific context.
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

// WithSeedCount adds a seeds field to the logger.
func (l *Logger) WithSeedCount(seeds int) *Logger {
	return &Logger{
		Logger: l.Logger.With("seeds", seeds),
	}
}

// WithValueCount adds a values field to the logger.
func (l *Logger) WithValueCount(count int) *Logger {
	return &Logger{
		Logger: l.Logger.With("values", count),
	}
}

// LogPartition logs one completed partition run.
func (l *Logger) LogPartition(values, seeds int, init InitMethod, res *Result) {
	l.Debug("partition completed",
		"values", values,
		"seeds", seeds,
		"init", init.String(),
		"iterations", res.Iterations,
		"converged", res.Converged,
	)
}
