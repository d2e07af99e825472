package logging

import (
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// ANSI color codes for level letters.
const (
	reset     = "\033[0m"
	bold      = "\033[1m"
	dim       = "\033[2m"
	gray      = "\033[90m"
	brightRed = "\033[91m"
	yellow    = "\033[93m"
	white     = "\033[97m"
)

// DefaultLevel keeps diagnostics quiet unless something needs attention.
const DefaultLevel = "warn"

// ParseLevel maps a config string onto a zap level. Empty means DefaultLevel.
func ParseLevel(s string) (zapcore.Level, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		s = DefaultLevel
	}
	var level zapcore.Level
	if err := level.UnmarshalText([]byte(strings.ToLower(s))); err != nil {
		return level, fmt.Errorf("parse log level: %w", err)
	}
	return level, nil
}

// New builds a console logger writing to w (stderr when nil). Colors are
// applied to the level letter only when color is true.
func New(level string, w io.Writer, color bool) (*zap.Logger, error) {
	lvl, err := ParseLevel(level)
	if err != nil {
		return nil, err
	}
	if w == nil {
		w = os.Stderr
	}
	core := zapcore.NewCore(consoleEncoder(color), zapcore.AddSync(w), lvl)
	return zap.New(core), nil
}

func consoleEncoder(color bool) zapcore.Encoder {
	config := zap.NewDevelopmentEncoderConfig()
	config.CallerKey = ""
	config.StacktraceKey = ""

	config.EncodeTime = func(t time.Time, enc zapcore.PrimitiveArrayEncoder) {
		ts := t.Format("15:04:05")
		if color {
			ts = dim + ts + reset
		}
		enc.AppendString(ts)
	}

	// Single letter level: D, I, W, E
	config.EncodeLevel = func(level zapcore.Level, enc zapcore.PrimitiveArrayEncoder) {
		letter := levelLetter(level)
		if color {
			letter = levelColor(level) + bold + letter + reset
		}
		enc.AppendString(letter)
	}

	return zapcore.NewConsoleEncoder(config)
}

func levelLetter(level zapcore.Level) string {
	switch level {
	case zapcore.DebugLevel:
		return "D"
	case zapcore.InfoLevel:
		return "I"
	case zapcore.WarnLevel:
		return "W"
	case zapcore.ErrorLevel:
		return "E"
	default:
		return "F"
	}
}

func levelColor(level zapcore.Level) string {
	switch level {
	case zapcore.DebugLevel:
		return gray
	case zapcore.InfoLevel:
		return white
	case zapcore.WarnLevel:
		return yellow
	default:
		return brightRed
	}
}
