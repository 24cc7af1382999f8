package tsigo

import (
	"log/slog"
	"os"

	"github.com/hupe1980/tsigo/mesh"
)

// Logger wraps slog.Logger with tsigo-specific context.
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

// WithPath adds a path field to the logger.
func (l *Logger) WithPath(path string) *Logger {
	return &Logger{
		Logger: l.Logger.With("path", path),
	}
}

// WithCompression adds a compression field to the logger.
func (l *Logger) WithCompression(c Compression) *Logger {
	return &Logger{
		Logger: l.Logger.With("compression", c.String()),
	}
}

// meshAttrs summarizes a mesh for logging.
func meshAttrs(m *mesh.Mesh) []any {
	if m == nil {
		return nil
	}
	return []any{
		"vertices", len(m.Vertices),
		"triangles", len(m.Triangles),
		"inclusions", len(m.Inclusions),
		"exclusions", len(m.Exclusions),
	}
}

// LogRead logs a file read operation.
func (l *Logger) LogRead(path string, m *mesh.Mesh, err error) {
	if err != nil {
		l.Error("read failed",
			"path", path,
			"error", err,
		)
	} else {
		l.Debug("read completed",
			append([]any{"path", path}, meshAttrs(m)...)...,
		)
	}
}

// LogWrite logs a file write operation.
func (l *Logger) LogWrite(path string, m *mesh.Mesh, err error) {
	if err != nil {
		l.Error("write failed",
			"path", path,
			"error", err,
		)
	} else {
		l.Debug("write completed",
			append([]any{"path", path}, meshAttrs(m)...)...,
		)
	}
}
