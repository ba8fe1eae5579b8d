// Package mux drives an external tmux server through ordered control
// operations. ExecClient spawns one tmux process per operation and waits
// for it; the server's own state is the only source of truth, so callers
// must issue operations strictly in dependency order.
package mux

import (
	"bytes"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/exec"
	"strconv"
	"strings"
)

// Client is the control surface the renderer drives. Every method is a
// blocking round-trip; a non-nil error means the server rejected or could
// not execute the operation.
type Client interface {
	// CreateSession starts a detached session whose initial window is
	// named sentinelWindow, optionally rooted at root.
	CreateSession(name, sentinelWindow, root string) error
	// SetWindowBase pins the session's first window index so renumbering
	// and attach targets are deterministic regardless of user tmux config.
	SetWindowBase(session string, base int) error
	// CreateWindow creates a window at the explicit target index
	// ("session:index"), optionally named and rooted.
	CreateWindow(target, name, root string) error
	// SplitPane subdivides the active pane of the target window. The new
	// pane becomes the window's active pane.
	SplitPane(window string) error
	// SendKeys types text followed by the activation key into the active
	// pane of the target.
	SendKeys(target, text string) error
	// SelectLayout re-tiles the target window's panes.
	SelectLayout(window, layout string) error
	// KillWindow removes the target window ("session:index-or-name").
	KillWindow(target string) error
	// RenumberWindows compacts the session's window indices into a
	// contiguous sequence starting at the window base.
	RenumberWindows(session string) error
	// Attach attaches the controlling terminal to the target, or switches
	// the current client when already inside tmux.
	Attach(target string) error
}

// OpError reports a control operation the tmux server rejected or could
// not run, including the server being unavailable.
type OpError struct {
	Op     string // tmux subcommand, e.g. "new-window"
	Output string // trimmed stderr from the tmux process
	Err    error
}

func (e *OpError) Error() string {
	if e.Output != "" {
		return fmt.Sprintf("tmux %s: %v: %s", e.Op, e.Err, e.Output)
	}
	return fmt.Sprintf("tmux %s: %v", e.Op, e.Err)
}

func (e *OpError) Unwrap() error { return e.Err }

// ExecClient implements Client by invoking the tmux binary.
type ExecClient struct {
	log *slog.Logger
}

// NewExecClient returns an ExecClient logging each issued operation at
// debug level. A nil logger disables logging.
func NewExecClient(log *slog.Logger) *ExecClient {
	if log == nil {
		log = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	return &ExecClient{log: log}
}

// run executes one tmux subcommand, capturing stderr for error reporting.
func (c *ExecClient) run(op string, args ...string) error {
	c.log.Debug("tmux", "op", op, "args", strings.Join(args, " "))
	cmd := exec.Command("tmux", append([]string{op}, args...)...)
	var out bytes.Buffer
	cmd.Stderr = &out
	if err := cmd.Run(); err != nil {
		return &OpError{Op: op, Output: strings.TrimSpace(out.String()), Err: err}
	}
	return nil
}

func (c *ExecClient) CreateSession(name, sentinelWindow, root string) error {
	args := []string{"-d", "-s", name, "-n", sentinelWindow}
	if root != "" {
		args = append(args, "-c", root)
	}
	return c.run("new-session", args...)
}

func (c *ExecClient) SetWindowBase(session string, base int) error {
	return c.run("set-option", "-t", session, "base-index", strconv.Itoa(base))
}

func (c *ExecClient) CreateWindow(target, name, root string) error {
	args := []string{"-d", "-t", target}
	if name != "" {
		args = append(args, "-n", name)
	}
	if root != "" {
		args = append(args, "-c", root)
	}
	return c.run("new-window", args...)
}

func (c *ExecClient) SplitPane(window string) error {
	return c.run("split-window", "-t", window)
}

func (c *ExecClient) SendKeys(target, text string) error {
	return c.run("send-keys", "-t", target, text, "Enter")
}

func (c *ExecClient) SelectLayout(window, layout string) error {
	return c.run("select-layout", "-t", window, layout)
}

func (c *ExecClient) KillWindow(target string) error {
	return c.run("kill-window", "-t", target)
}

func (c *ExecClient) RenumberWindows(session string) error {
	return c.run("move-window", "-r", "-t", session+":")
}

func (c *ExecClient) Attach(target string) error {
	if os.Getenv("TMUX") != "" {
		return c.run("switch-client", "-t", target)
	}
	// attach-session takes over the terminal; hand it our stdio instead
	// of capturing it.
	c.log.Debug("tmux", "op", "attach-session", "args", target)
	cmd := exec.Command("tmux", "attach-session", "-t", target)
	cmd.Stdin = os.Stdin
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr
	if err := cmd.Run(); err != nil {
		return &OpError{Op: "attach-session", Err: err}
	}
	return nil
}
