package mux

import (
	"errors"
	"fmt"
	"os"
	"testing"
)

func TestOpError(t *testing.T) {
	base := errors.New("exit status 1")
	tests := []struct {
		name string
		err  *OpError
		want string
	}{
		{
			name: "with server output",
			err:  &OpError{Op: "new-window", Output: "create window failed: index in use", Err: base},
			want: "tmux new-window: exit status 1: create window failed: index in use",
		},
		{
			name: "without output",
			err:  &OpError{Op: "attach-session", Err: base},
			want: "tmux attach-session: exit status 1",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.err.Error(); got != tt.want {
				t.Errorf("Error() = %q, want %q", got, tt.want)
			}
			if !errors.Is(tt.err, base) {
				t.Error("OpError does not unwrap to the underlying error")
			}
		})
	}
}

func TestExecClientUnknownTarget(t *testing.T) {
	if os.Getenv("TMUX") == "" {
		t.Skip("Skipping tmux test: not running inside tmux")
	}
	c := NewExecClient(nil)
	err := c.KillWindow("precession-test-no-such-session:999")
	if err == nil {
		t.Fatal("expected error for unknown target")
	}
	var opErr *OpError
	if !errors.As(err, &opErr) {
		t.Fatalf("error type = %T, want *OpError", err)
	}
	if opErr.Op != "kill-window" {
		t.Errorf("OpError.Op = %q, want kill-window", opErr.Op)
	}
}

func TestExecClientSessionLifecycle(t *testing.T) {
	if os.Getenv("TMUX") == "" {
		t.Skip("Skipping tmux test: not running inside tmux")
	}
	c := NewExecClient(nil)
	name := fmt.Sprintf("precession-test-%d", os.Getpid())
	if err := c.CreateSession(name, "999", t.TempDir()); err != nil {
		t.Fatalf("CreateSession: %v", err)
	}
	defer c.run("kill-session", "-t", name)

	if err := c.SetWindowBase(name, 1); err != nil {
		t.Fatalf("SetWindowBase: %v", err)
	}
	target := name + ":2"
	if err := c.CreateWindow(target, "work", ""); err != nil {
		t.Fatalf("CreateWindow: %v", err)
	}
	if err := c.SplitPane(target); err != nil {
		t.Fatalf("SplitPane: %v", err)
	}
	if err := c.SendKeys(target, "true"); err != nil {
		t.Fatalf("SendKeys: %v", err)
	}
	if err := c.SelectLayout(target, "even-horizontal"); err != nil {
		t.Fatalf("SelectLayout: %v", err)
	}
	if err := c.KillWindow(name + ":999"); err != nil {
		t.Fatalf("KillWindow: %v", err)
	}
	if err := c.RenumberWindows(name); err != nil {
		t.Fatalf("RenumberWindows: %v", err)
	}
}
