package internal

import (
	"io"
	"log/slog"
)

// Returns the log level selected by the quiet and debug modes.
func LogLevel() slog.Level {
	switch {
	case IsDebug():
		return slog.LevelDebug
	case IsQuiet():
		return slog.LevelWarn
	default:
		return slog.LevelInfo
	}
}

// Creates a text logger writing to w at the current [LogLevel].
//
// In verbose mode records carry their source location.
func NewLogger(w io.Writer) *slog.Logger {
	handler := slog.NewTextHandler(w, &slog.HandlerOptions{
		Level:     LogLevel(),
		AddSource: IsVerbose(),
	})
	return slog.New(handler).With("app", Name)
}
