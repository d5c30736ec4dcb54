// Package logging provides the leveled, structured logger used across the
// framework. Applications pick a minimum level once, on their config, and
// framework components log through this package so that tooling and runtime
// output share one format.
package logging

import (
	"errors"
	"fmt"
	"strings"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Level is the minimum severity a logger records.
type Level int8

const (
	// LevelDebug records everything, including per-step detail such as
	// individual schema migrations.
	LevelDebug Level = iota
	// LevelInfo records lifecycle and summary messages.
	LevelInfo
	// LevelWarn records recoverable anomalies.
	LevelWarn
	// LevelError records failures only.
	LevelError
)

// ErrUnknownLevel indicates a level name with no mapping.
var ErrUnknownLevel = errors.New("unknown log level")

// ParseLevel maps a level name to its Level. Names are case-insensitive and
// surrounding whitespace is ignored.
func ParseLevel(name string) (Level, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "debug":
		return LevelDebug, nil
	case "info":
		return LevelInfo, nil
	case "warn", "warning":
		return LevelWarn, nil
	case "error":
		return LevelError, nil
	}
	return LevelDebug, fmt.Errorf("%w: %q", ErrUnknownLevel, name)
}

// String returns the canonical name of the level.
func (l Level) String() string {
	switch l {
	case LevelDebug:
		return "debug"
	case LevelInfo:
		return "info"
	case LevelWarn:
		return "warn"
	case LevelError:
		return "error"
	}
	return fmt.Sprintf("level(%d)", int8(l))
}

func (l Level) zapLevel() zapcore.Level {
	switch l {
	case LevelInfo:
		return zapcore.InfoLevel
	case LevelWarn:
		return zapcore.WarnLevel
	case LevelError:
		return zapcore.ErrorLevel
	}
	return zapcore.DebugLevel
}

// Logger is a structured logger. A nil Logger is safe to use and discards
// every entry, so components can accept one without guarding call sites.
type Logger struct {
	sugar *zap.SugaredLogger
}

// New creates a production-encoded logger recording entries at or above level.
func New(level Level) (*Logger, error) {
	cfg := zap.NewProductionConfig()
	cfg.Level = zap.NewAtomicLevelAt(level.zapLevel())
	zl, err := cfg.Build()
	if err != nil {
		return nil, fmt.Errorf("build logger: %w", err)
	}
	return &Logger{sugar: zl.Sugar()}, nil
}

// NewNop returns a logger that discards everything.
func NewNop() *Logger {
	return &Logger{sugar: zap.NewNop().Sugar()}
}

// Debug logs a debug message with alternating key/value context.
func (l *Logger) Debug(msg string, keysAndValues ...any) {
	if l == nil || l.sugar == nil {
		return
	}
	l.sugar.Debugw(msg, keysAndValues...)
}

// Info logs an informational message with alternating key/value context.
func (l *Logger) Info(msg string, keysAndValues ...any) {
	if l == nil || l.sugar == nil {
		return
	}
	l.sugar.Infow(msg, keysAndValues...)
}

// Warn logs a warning with alternating key/value context.
func (l *Logger) Warn(msg string, keysAndValues ...any) {
	if l == nil || l.sugar == nil {
		return
	}
	l.sugar.Warnw(msg, keysAndValues...)
}

// Error logs an error with alternating key/value context.
func (l *Logger) Error(msg string, keysAndValues ...any) {
	if l == nil || l.sugar == nil {
		return
	}
	l.sugar.Errorw(msg, keysAndValues...)
}

// With returns a logger that attaches the given key/value context to every
// entry it records.
func (l *Logger) With(keysAndValues ...any) *Logger {
	if l == nil || l.sugar == nil {
		return l
	}
	return &Logger{sugar: l.sugar.With(keysAndValues...)}
}

// Sync flushes buffered entries. Call it before process exit.
func (l *Logger) Sync() {
	if l == nil || l.sugar == nil {
		return
	}
	_ = l.sugar.Sync()
}
