// Package log configures structured logging for canopy using log/slog.
package log

import (
	"io"
	"log/slog"
	"os"
)

// Level maps the verbosity flags to a slog level.
//
//   - quiet mode:   only WARN and ERROR messages
//   - normal mode:  INFO and above
//   - verbose mode: DEBUG and above
//
// Quiet wins when both flags are set.
func Level(verbose, quiet bool) slog.Level {
	switch {
	case quiet:
		return slog.LevelWarn
	case verbose:
		return slog.LevelDebug
	default:
		return slog.LevelInfo
	}
}

// New returns a logger writing to w. JSON selects slog.JSONHandler, used by
// the long-running server so its logs can be shipped; otherwise
// slog.TextHandler is used.
func New(w io.Writer, verbose, quiet, json bool) *slog.Logger {
	opts := &slog.HandlerOptions{Level: Level(verbose, quiet)}
	if json {
		return slog.New(slog.NewJSONHandler(w, opts))
	}
	return slog.New(slog.NewTextHandler(w, opts))
}

// Setup configures the default slog logger based on verbosity flags.
// Output is written to stderr using slog.TextHandler.
func Setup(verbose, quiet bool) {
	slog.SetDefault(New(os.Stderr, verbose, quiet, false))
}

// SetupJSON is Setup with JSON-formatted records.
func SetupJSON(verbose, quiet bool) {
	slog.SetDefault(New(os.Stderr, verbose, quiet, true))
}
