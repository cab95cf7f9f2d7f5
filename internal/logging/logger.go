package logging

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"path/filepath"
	"strings"
	"sync"
)

// Log levels supported by the logger
const (
	LevelDebug = "DEBUG"
	LevelInfo  = "INFO"
	LevelWarn  = "WARN"
	LevelError = "ERROR"
)

// FileName is the log file created inside the state directory.
const FileName = "debug.log"

// Logger provides structured logging with persistent attributes.
// It is safe for concurrent use.
type Logger struct {
	logger *slog.Logger
	closer io.Closer
	mu     *sync.Mutex // shared with children; guards closer
	attrs  []slog.Attr
}

// New creates a Logger that appends JSON lines to {dir}/debug.log without
// rotation.
func New(dir string, level string) (*Logger, error) {
	return NewWithRotation(dir, level, RotationConfig{})
}

// NewWithRotation creates a Logger writing to {dir}/debug.log through a
// RotatingWriter configured by config.
func NewWithRotation(dir string, level string, config RotationConfig) (*Logger, error) {
	if dir == "" {
		return nil, fmt.Errorf("log directory is empty")
	}

	rw, err := NewRotatingWriter(filepath.Join(dir, FileName), config)
	if err != nil {
		return nil, err
	}

	l := NewWriter(rw, level)
	l.closer = rw
	return l, nil
}

// NewWriter creates a Logger that writes JSON lines to w. Close does not
// close w.
func NewWriter(w io.Writer, level string) *Logger {
	handler := slog.NewJSONHandler(w, &slog.HandlerOptions{
		Level: parseLevel(level),
	})
	return &Logger{
		logger: slog.New(handler),
		mu:     &sync.Mutex{},
	}
}

// parseLevel converts a string log level to slog.Level.
// Defaults to INFO if the level string is not recognized.
func parseLevel(level string) slog.Level {
	switch strings.ToUpper(level) {
	case LevelDebug:
		return slog.LevelDebug
	case LevelWarn:
		return slog.LevelWarn
	case LevelError:
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

// WithComponent returns a child Logger tagged with the emitting component
// ("source", "prefs", "board", "tui").
func (l *Logger) WithComponent(name string) *Logger {
	return l.withAttrs(slog.String("component", name))
}

// WithView returns a child Logger tagged with the active grouping and
// ordering.
func (l *Logger) WithView(groupBy, sortOrder string) *Logger {
	return l.withAttrs(slog.String("group_by", groupBy), slog.String("sort_order", sortOrder))
}

// With returns a child Logger with arbitrary key-value attributes.
// Keys and values are provided as alternating arguments; a non-string key
// drops its pair.
func (l *Logger) With(args ...any) *Logger {
	if len(args) == 0 {
		return l
	}

	attrs := make([]slog.Attr, 0, len(args)/2)
	for i := 0; i+1 < len(args); i += 2 {
		key, ok := args[i].(string)
		if !ok {
			continue
		}
		attrs = append(attrs, slog.Any(key, args[i+1]))
	}
	return l.withAttrs(attrs...)
}

func (l *Logger) withAttrs(extra ...slog.Attr) *Logger {
	attrs := make([]slog.Attr, 0, len(l.attrs)+len(extra))
	attrs = append(attrs, l.attrs...)
	attrs = append(attrs, extra...)

	return &Logger{
		logger: l.logger,
		closer: l.closer,
		mu:     l.mu,
		attrs:  attrs,
	}
}

// Debug logs a message at DEBUG level with optional key-value pairs.
func (l *Logger) Debug(msg string, args ...any) {
	l.log(slog.LevelDebug, msg, args...)
}

// Info logs a message at INFO level with optional key-value pairs.
func (l *Logger) Info(msg string, args ...any) {
	l.log(slog.LevelInfo, msg, args...)
}

// Warn logs a message at WARN level with optional key-value pairs.
func (l *Logger) Warn(msg string, args ...any) {
	l.log(slog.LevelWarn, msg, args...)
}

// Error logs a message at ERROR level with optional key-value pairs.
func (l *Logger) Error(msg string, args ...any) {
	l.log(slog.LevelError, msg, args...)
}

func (l *Logger) log(level slog.Level, msg string, args ...any) {
	all := make([]any, 0, len(l.attrs)+len(args))
	for _, attr := range l.attrs {
		all = append(all, attr)
	}
	all = append(all, args...)

	l.logger.Log(context.Background(), level, msg, all...)
}

// Close flushes and closes the log file. Closing any logger in a family of
// children closes the shared file; later calls are no-ops.
func (l *Logger) Close() error {
	l.mu.Lock()
	defer l.mu.Unlock()

	if l.closer == nil {
		return nil
	}
	err := l.closer.Close()
	l.closer = nil
	return err
}

// NopLogger returns a Logger that discards all log output.
// Useful for testing or when logging is disabled.
func NopLogger() *Logger {
	return NewWriter(io.Discard, LevelError)
}

// ParseLevel normalizes a user-provided level string.
// Returns LevelInfo if the level string is not recognized.
func ParseLevel(level string) string {
	switch strings.ToUpper(level) {
	case LevelDebug:
		return LevelDebug
	case LevelWarn:
		return LevelWarn
	case LevelError:
		return LevelError
	default:
		return LevelInfo
	}
}

// ValidLevels returns the list of valid log level strings.
func ValidLevels() []string {
	return []string{LevelDebug, LevelInfo, LevelWarn, LevelError}
}
