// Package logging creates the application logger.
package logging

import (
	"io"
	"log/slog"
	"os"
)

// New returns a text logger writing to stderr at the given level, keeping
// stdout free for command output and the attach handoff.
func New(level slog.Level) *slog.Logger {
	return slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
}

// NewNop returns a logger that discards everything.
func NewNop() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}
