package cli

import (
	"io"
	"log/slog"
	"os"

	"github.com/cruciblehq/cruxpack/internal"
	"golang.org/x/term"
)

// Returns a logger for w at the level implied by the current modes.
//
// Terminals get human-readable text records. Anything else, such as a CI log
// or a redirected file, gets JSON records.
func NewLogger(w io.Writer) *slog.Logger {
	opts := &slog.HandlerOptions{
		Level:     internal.LogLevel(),
		AddSource: internal.IsVerbose(),
	}

	var handler slog.Handler
	if isatty(w) {
		handler = slog.NewTextHandler(w, opts)
	} else {
		handler = slog.NewJSONHandler(w, opts)
	}
	return slog.New(handler.WithGroup(internal.Name))
}

// Replaces the default logger with one reflecting the parsed flags.
func ConfigureLogger(w io.Writer) {
	slog.SetDefault(NewLogger(w))
}

// Whether w is an interactive terminal.
func isatty(w io.Writer) bool {
	f, ok := w.(*os.File)
	return ok && term.IsTerminal(int(f.Fd()))
}
