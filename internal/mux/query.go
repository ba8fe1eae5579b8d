package mux

import (
	"fmt"

	gotmux "github.com/GianlucaP106/gotmux/gotmux"
)

// SessionInfo describes one live session known to the tmux server.
type SessionInfo struct {
	Name    string
	Windows int
}

// Running lists the sessions the tmux server currently knows about.
// Used by the CLI only; the renderer never reads server state back.
func Running() ([]SessionInfo, error) {
	tmux, err := gotmux.DefaultTmux()
	if err != nil {
		return nil, fmt.Errorf("connect to tmux: %w", err)
	}
	sessions, err := tmux.ListSessions()
	if err != nil {
		return nil, fmt.Errorf("list sessions: %w", err)
	}
	out := make([]SessionInfo, 0, len(sessions))
	for _, s := range sessions {
		out = append(out, SessionInfo{Name: s.Name, Windows: s.Windows})
	}
	return out, nil
}

// Has reports whether a session with the given name is currently running.
// Errors (including no server running) are reported as "not running" so
// callers can use this as a best-effort precondition check.
func Has(name string) bool {
	tmux, err := gotmux.DefaultTmux()
	if err != nil {
		return false
	}
	s, err := tmux.GetSessionByName(name)
	if err != nil {
		return false
	}
	return s != nil
}

// Kill terminates the named running session.
func Kill(name string) error {
	tmux, err := gotmux.DefaultTmux()
	if err != nil {
		return fmt.Errorf("connect to tmux: %w", err)
	}
	s, err := tmux.GetSessionByName(name)
	if err != nil {
		return fmt.Errorf("look up session %q: %w", name, err)
	}
	if s == nil {
		return fmt.Errorf("no running session named %q", name)
	}
	if err := s.Kill(); err != nil {
		return fmt.Errorf("kill session %q: %w", name, err)
	}
	return nil
}
