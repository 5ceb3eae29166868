// Package logging builds the process logger: log/slog records rendered by a
// tint handler.
package logging

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/lmittmann/tint"
)

// TimeFormat is the clock layout printed in front of every record.
const TimeFormat = "15:04:05"

// ErrInvalidLevel indicates a level name outside debug|info|warn|error.
var ErrInvalidLevel = errors.New("logging: invalid level")

// Levels lists the accepted level names.
var Levels = []string{"debug", "info", "warn", "error"}

// ParseLevel maps a case-insensitive level name to a slog.Level.
func ParseLevel(name string) (slog.Level, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "debug":
		return slog.LevelDebug, nil
	case "info", "":
		return slog.LevelInfo, nil
	case "warn", "warning":
		return slog.LevelWarn, nil
	case "error":
		return slog.LevelError, nil
	}

	return 0, fmt.Errorf("logging: %q: %w", name, ErrInvalidLevel)
}

// New returns a logger writing tint-formatted records to w.
func New(w io.Writer, level string, noColor bool) (*slog.Logger, error) {
	lvl, err := ParseLevel(level)
	if err != nil {
		return nil, err
	}

	return slog.New(tint.NewHandler(w, &tint.Options{
		Level:      lvl,
		TimeFormat: TimeFormat,
		NoColor:    noColor,
	})), nil
}

// Install builds a logger with New and makes it the slog default.
func Install(w io.Writer, level string, noColor bool) (*slog.Logger, error) {
	l, err := New(w, level, noColor)
	if err != nil {
		return nil, err
	}
	slog.SetDefault(l)

	return l, nil
}
