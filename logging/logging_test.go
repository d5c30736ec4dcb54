package logging

import (
	"errors"
	"testing"

	"go.uber.org/zap/zapcore"
)

func TestParseLevel(t *testing.T) {
	cases := []struct {
		name  string
		input string
		want  Level
	}{
		{name: "debug", input: "debug", want: LevelDebug},
		{name: "info", input: "info", want: LevelInfo},
		{name: "warn", input: "warn", want: LevelWarn},
		{name: "warning alias", input: "warning", want: LevelWarn},
		{name: "error", input: "error", want: LevelError},
		{name: "mixed case", input: "Info", want: LevelInfo},
		{name: "surrounding whitespace", input: "  error  ", want: LevelError},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := ParseLevel(tc.input)
			if err != nil {
				t.Fatalf("ParseLevel(%q) returned error: %v", tc.input, err)
			}
			if got != tc.want {
				t.Fatalf("ParseLevel(%q) = %v, want %v", tc.input, got, tc.want)
			}
		})
	}
}

func TestParseLevelUnknown(t *testing.T) {
	if _, err := ParseLevel("verbose"); !errors.Is(err, ErrUnknownLevel) {
		t.Fatalf("expected ErrUnknownLevel, got %v", err)
	}
}

func TestLevelString(t *testing.T) {
	cases := []struct {
		level Level
		want  string
	}{
		{level: LevelDebug, want: "debug"},
		{level: LevelInfo, want: "info"},
		{level: LevelWarn, want: "warn"},
		{level: LevelError, want: "error"},
		{level: Level(42), want: "level(42)"},
	}

	for _, tc := range cases {
		if got := tc.level.String(); got != tc.want {
			t.Fatalf("Level(%d).String() = %q, want %q", int8(tc.level), got, tc.want)
		}
	}
}

func TestLevelZapLevel(t *testing.T) {
	cases := []struct {
		level Level
		want  zapcore.Level
	}{
		{level: LevelDebug, want: zapcore.DebugLevel},
		{level: LevelInfo, want: zapcore.InfoLevel},
		{level: LevelWarn, want: zapcore.WarnLevel},
		{level: LevelError, want: zapcore.ErrorLevel},
	}

	for _, tc := range cases {
		if got := tc.level.zapLevel(); got != tc.want {
			t.Fatalf("%v.zapLevel() = %v, want %v", tc.level, got, tc.want)
		}
	}
}

func TestNew(t *testing.T) {
	for _, level := range []Level{LevelDebug, LevelInfo, LevelWarn, LevelError} {
		t.Run(level.String(), func(t *testing.T) {
			logger, err := New(level)
			if err != nil {
				t.Fatalf("New(%v) returned error: %v", level, err)
			}
			if logger == nil {
				t.Fatal("expected logger")
			}
			logger.Sync()
		})
	}
}

func TestNopLoggerIsSafe(t *testing.T) {
	logger := NewNop()
	logger.Debug("debug", "key", "value")
	logger.Info("info")
	logger.Warn("warn")
	logger.Error("error", "err", errors.New("boom"))
	logger.With("component", "test").Info("derived")
	logger.Sync()
}

func TestNilLoggerIsSafe(t *testing.T) {
	var logger *Logger
	logger.Debug("debug")
	logger.Info("info")
	logger.Warn("warn")
	logger.Error("error")
	if derived := logger.With("key", "value"); derived != nil {
		t.Fatalf("expected nil derived logger, got %v", derived)
	}
	logger.Sync()
}
