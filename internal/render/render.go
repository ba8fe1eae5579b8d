// Package render walks a session definition top-down and replays it as an
// ordered sequence of tmux control operations. tmux has no atomic "create
// session with full layout" primitive and models window/pane creation as
// "insert after current/last", so correctness rests entirely on emitting
// the right operations in the right order; the renderer keeps no local
// model and never reads server state back.
package render

import (
	"context"
	"fmt"
	"io"
	"log/slog"

	"precession/internal/definition"
	"precession/internal/mux"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	oteltrace "go.opentelemetry.io/otel/trace"
)

// sentinelWindow names the throwaway window created together with the
// session, because tmux refuses to create a session with zero windows.
// 999 sits far outside any real window's range so finalize can address
// and remove it without colliding with real windows.
const sentinelWindow = "999"

// defaultBaseIndex is pinned on every new session so final window
// numbering is 1-based end to end, regardless of the user's tmux config.
const defaultBaseIndex = 1

var tracer = otel.Tracer("precession/render")

// Options adjust how a session is rendered.
type Options struct {
	// BaseIndex is the first window index after renumbering.
	// Zero selects defaultBaseIndex.
	BaseIndex int
	// Detached skips the final attach.
	Detached bool
}

// Renderer issues the control operations that build one session.
// It is single-use per Render call and fully sequential: each operation
// completes before the next is issued, and the first failure aborts the
// render with no cleanup of partially created state.
type Renderer struct {
	client mux.Client
	log    *slog.Logger
	opts   Options
}

// New creates a Renderer over the given control client. A nil logger
// disables progress logging.
func New(client mux.Client, log *slog.Logger, opts Options) *Renderer {
	if opts.BaseIndex == 0 {
		opts.BaseIndex = defaultBaseIndex
	}
	if log == nil {
		log = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	return &Renderer{client: client, log: log, opts: opts}
}

// Render builds the session def describes: session with sentinel window,
// windows and panes in declaration order, then sentinel removal,
// renumbering, and attach. The context carries the trace span only;
// control operations themselves do not support cancellation.
func (r *Renderer) Render(ctx context.Context, def *definition.Session) error {
	ctx, span := tracer.Start(ctx, "render",
		oteltrace.WithAttributes(attribute.String("session.name", def.Name)))
	defer span.End()

	if err := def.Validate(); err != nil {
		return recordErr(span, err)
	}

	r.log.Debug("creating session", "name", def.Name, "windows", len(def.Windows))
	if err := r.createSession(ctx, def); err != nil {
		return recordErr(span, err)
	}
	for i := range def.Windows {
		if err := r.renderWindow(ctx, def.Name, i, &def.Windows[i]); err != nil {
			return recordErr(span, fmt.Errorf("window %d: %w", i, err))
		}
	}
	if err := r.finalize(ctx, def.Name); err != nil {
		return recordErr(span, err)
	}
	return nil
}

// createSession issues the new-session operation with the sentinel window
// and pins the window base index on the fresh session.
func (r *Renderer) createSession(ctx context.Context, def *definition.Session) error {
	err := r.op(ctx, "new-session", def.Name, func() error {
		return r.client.CreateSession(def.Name, sentinelWindow, def.Root)
	})
	if err != nil {
		return err
	}
	return r.op(ctx, "set-base-index", def.Name, func() error {
		return r.client.SetWindowBase(def.Name, r.opts.BaseIndex)
	})
}

// windowTarget computes the in-flight index of the i-th declared window.
// The sentinel occupies the session's first slot during the render, so
// real windows are created one past the base; renumbering compacts them
// back down once the sentinel is gone.
func (r *Renderer) windowTarget(session string, i int) string {
	return fmt.Sprintf("%s:%d", session, r.opts.BaseIndex+1+i)
}

// renderWindow creates one window, runs its startup command or panes in
// declaration order, and applies the layout once every pane exists.
// Commands are sent to the window target: tmux keeps the newest pane
// active within its window, so the addressing stays deterministic without
// reading pane indices back.
func (r *Renderer) renderWindow(ctx context.Context, session string, i int, w *definition.Window) error {
	target := r.windowTarget(session, i)
	r.log.Debug("creating window", "target", target, "name", w.Name, "panes", len(w.Panes))

	err := r.op(ctx, "new-window", target, func() error {
		return r.client.CreateWindow(target, w.Name, w.Root)
	})
	if err != nil {
		return err
	}

	if w.Cmd != "" {
		if err := r.sendKeys(ctx, target, w.Cmd); err != nil {
			return err
		}
	}

	for j := range w.Panes {
		if j > 0 {
			err := r.op(ctx, "split-window", target, func() error {
				return r.client.SplitPane(target)
			})
			if err != nil {
				return err
			}
		}
		if cmd := w.Panes[j].Cmd; cmd != "" {
			if err := r.sendKeys(ctx, target, cmd); err != nil {
				return err
			}
		}
	}

	// Layout algorithms act on the pane set present at invocation time,
	// so this must come after the last split.
	layout := w.Layout
	if layout == "" {
		layout = definition.DefaultLayout
	}
	return r.op(ctx, "select-layout", target, func() error {
		return r.client.SelectLayout(target, layout.String())
	})
}

func (r *Renderer) sendKeys(ctx context.Context, target, cmd string) error {
	return r.op(ctx, "send-keys", target, func() error {
		return r.client.SendKeys(target, cmd)
	})
}

// finalize removes the sentinel window, compacts the remaining window
// indices into a contiguous sequence starting at the base index, and
// attaches at the first real window. On a zero-window definition killing
// the sentinel kills the session with it, and the failing attach
// propagates like any other control failure.
func (r *Renderer) finalize(ctx context.Context, session string) error {
	sentinel := session + ":" + sentinelWindow
	if err := r.op(ctx, "kill-window", sentinel, func() error {
		return r.client.KillWindow(sentinel)
	}); err != nil {
		return err
	}
	if err := r.op(ctx, "renumber-windows", session, func() error {
		return r.client.RenumberWindows(session)
	}); err != nil {
		return err
	}
	if r.opts.Detached {
		return nil
	}
	first := fmt.Sprintf("%s:%d", session, r.opts.BaseIndex)
	return r.op(ctx, "attach", first, func() error {
		return r.client.Attach(first)
	})
}

// op wraps one control operation in a trace span.
func (r *Renderer) op(ctx context.Context, name, target string, fn func() error) error {
	_, span := tracer.Start(ctx, name,
		oteltrace.WithAttributes(attribute.String("tmux.target", target)))
	defer span.End()
	if err := fn(); err != nil {
		return recordErr(span, err)
	}
	return nil
}

func recordErr(span oteltrace.Span, err error) error {
	span.RecordError(err)
	span.SetStatus(codes.Error, err.Error())
	return err
}
