package cli

import (
	"io"
	"log/slog"
)

// newLogger returns a text logger on w. Only warnings and errors are
// emitted unless verbose is set, so a normal run writes nothing to w.
func newLogger(w io.Writer, verbose bool) *slog.Logger {
	level := slog.LevelWarn
	if verbose {
		level = slog.LevelDebug
	}
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: level}))
}
