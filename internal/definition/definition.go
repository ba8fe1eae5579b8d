// Package definition holds the declarative model of a tmux workspace:
// a Session containing Windows, each optionally split into Panes arranged
// by a Layout. The model is pure data decoded from a YAML definition file;
// internal/render consumes it exactly once to drive the tmux server.
package definition

import (
	"errors"
	"fmt"

	"gopkg.in/yaml.v3"
)

// ErrMalformed reports a definition that failed to decode or validate:
// an unknown layout token, a missing required field, or a structure not
// shaped as Session -> Windows -> Panes.
var ErrMalformed = errors.New("malformed session definition")

// Layout names a tmux tiling algorithm applied to a window's panes.
// The string value is the canonical select-layout argument.
type Layout string

const (
	LayoutTiled          Layout = "tiled"
	LayoutEvenHorizontal Layout = "even-horizontal"
	LayoutEvenVertical   Layout = "even-vertical"
	LayoutMainHorizontal Layout = "main-horizontal"
	LayoutMainVertical   Layout = "main-vertical"
)

// DefaultLayout is applied to windows that declare no layout.
const DefaultLayout = LayoutEvenHorizontal

// ParseLayout maps a layout token from a definition file to its Layout.
// Unrecognized tokens are a malformed-definition error.
func ParseLayout(s string) (Layout, error) {
	switch l := Layout(s); l {
	case LayoutTiled, LayoutEvenHorizontal, LayoutEvenVertical,
		LayoutMainHorizontal, LayoutMainVertical:
		return l, nil
	}
	return "", fmt.Errorf("%w: unknown layout %q", ErrMalformed, s)
}

// String returns the canonical tmux name for the layout.
func (l Layout) String() string { return string(l) }

// UnmarshalYAML decodes and validates a layout token.
func (l *Layout) UnmarshalYAML(node *yaml.Node) error {
	var s string
	if err := node.Decode(&s); err != nil {
		return fmt.Errorf("%w: layout must be a string: %v", ErrMalformed, err)
	}
	parsed, err := ParseLayout(s)
	if err != nil {
		return err
	}
	*l = parsed
	return nil
}

// Session is the root of the definition tree. It is immutable after
// decoding; name collisions with already-running sessions are an external
// precondition checked by the CLI, not here.
type Session struct {
	Name    string   `yaml:"name"`
	Root    string   `yaml:"root,omitempty"`
	Windows []Window `yaml:"windows,omitempty"`
}

// Window describes one tmux window: an optional display name, a layout,
// an optional working directory overriding the session root, and either a
// single startup command or a list of panes.
type Window struct {
	Name   string `yaml:"name,omitempty"`
	Layout Layout `yaml:"layout,omitempty"`
	Root   string `yaml:"root,omitempty"`
	Cmd    string `yaml:"cmd,omitempty"`
	Panes  []Pane `yaml:"panes,omitempty"`
}

// Pane wraps a single optional startup command. A pane with no command is
// created and left idle.
type Pane struct {
	Cmd string
}

// UnmarshalYAML accepts a plain scalar: a command string, or null/empty
// for an idle pane.
func (p *Pane) UnmarshalYAML(node *yaml.Node) error {
	if node.Tag == "!!null" {
		p.Cmd = ""
		return nil
	}
	var s string
	if err := node.Decode(&s); err != nil {
		return fmt.Errorf("%w: pane must be a command string or empty: %v", ErrMalformed, err)
	}
	p.Cmd = s
	return nil
}

// MarshalYAML emits the pane back as the scalar it was decoded from.
func (p Pane) MarshalYAML() (any, error) {
	if p.Cmd == "" {
		return nil, nil
	}
	return p.Cmd, nil
}

// Decode parses a YAML definition document, applies defaults and validates
// the result. All failures wrap ErrMalformed.
func Decode(data []byte) (*Session, error) {
	var s Session
	if err := yaml.Unmarshal(data, &s); err != nil {
		if errors.Is(err, ErrMalformed) {
			return nil, err
		}
		return nil, fmt.Errorf("%w: %v", ErrMalformed, err)
	}
	for i := range s.Windows {
		if s.Windows[i].Layout == "" {
			s.Windows[i].Layout = DefaultLayout
		}
	}
	if err := s.Validate(); err != nil {
		return nil, err
	}
	return &s, nil
}

// Validate checks the semantic rules the YAML shape cannot express:
// the session name is required, and a window runs either one top-level
// command or panes with their own commands, never both.
func (s *Session) Validate() error {
	if s.Name == "" {
		return fmt.Errorf("%w: session name is required", ErrMalformed)
	}
	for i, w := range s.Windows {
		if w.Cmd != "" && len(w.Panes) > 0 {
			return fmt.Errorf("%w: window %d (%s): cmd and panes are mutually exclusive", ErrMalformed, i, w.Name)
		}
	}
	return nil
}
