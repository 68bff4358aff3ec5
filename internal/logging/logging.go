// Package logging sets up the slog default used by every teamsel component.
// Logs go to stderr so they never mix with session output on stdout.
package logging

import (
	"fmt"
	"io"
	"log/slog"
	"strings"
)

// Handler formats accepted by Init.
const (
	FormatText = "text"
	FormatJSON = "json"
)

// Init installs a text or JSON handler writing to w at the given level as
// the slog default.
func Init(level slog.Level, format string, w io.Writer) error {
	opts := &slog.HandlerOptions{Level: level}

	var handler slog.Handler
	switch format {
	case FormatText:
		handler = slog.NewTextHandler(w, opts)
	case FormatJSON:
		handler = slog.NewJSONHandler(w, opts)
	default:
		return fmt.Errorf("unknown log format %q (want text or json)", format)
	}

	slog.SetDefault(slog.New(handler))
	return nil
}

// New returns the default logger tagged with component.
func New(component string) *slog.Logger {
	return slog.Default().With(slog.String("component", component))
}

// ParseLevel maps debug, info, warn and error (any case) to a slog level.
func ParseLevel(s string) (slog.Level, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "debug":
		return slog.LevelDebug, nil
	case "", "info":
		return slog.LevelInfo, nil
	case "warn", "warning":
		return slog.LevelWarn, nil
	case "error":
		return slog.LevelError, nil
	}
	return slog.LevelInfo, fmt.Errorf("unknown log level %q (want debug, info, warn or error)", s)
}
