package gui

import (
	"context"
	"fmt"
	"log/slog"
	"time"
)

// Backend is a platform surface that also supplies input and shows frames.
type Backend interface {
	Surface

	// Poll returns the events received since the last call, in order.
	Poll() []Event

	// Present shows the frame drawn since the last call.
	Present() error
}

// Window owns the root of a widget tree and drives the frame loop:
// poll, dispatch, draw, present, wait for the next tick.
// A Window and its tree belong to a single goroutine.
type Window struct {
	backend Backend
	display *Display
	root    *Panel
	factory *Factory
	logger  *slog.Logger
	fps     int
	frame   time.Duration
	frames  uint64
}

// NewWindow creates a window drawing on b. It understands WithTheme,
// WithNamer, WithFonts, WithFPS, WithSize and WithLogger.
func NewWindow(b Backend, opts ...Option) *Window {
	o := applyOptions(opts)
	if o.fonts == nil {
		o.fonts = NewFontCache()
	}
	w := &Window{
		backend: b,
		display: NewDisplay(b, o.fonts),
		factory: newFactory(o),
		logger:  o.logger,
		fps:     o.fps,
		frame:   o.frameInterval(),
	}

	w.root = newPanel(o.theme, 0, 0, PanelConfig{Name: "root", Width: o.size.X, Height: o.size.Y})
	w.root.bg = o.theme.WindowBackground
	w.root.borderOn = false
	w.root.SetDisplay(w.display)
	return w
}

// Root returns the full-window panel every widget hangs off.
func (w *Window) Root() *Panel { return w.root }

// Display returns the display shared by the tree.
func (w *Window) Display() *Display { return w.display }

// Factory returns a factory using the window's theme and naming policy.
func (w *Window) Factory() *Factory { return w.factory }

// Input returns the accumulated input state.
func (w *Window) Input() *InputState { return w.display.Input }

// FPS returns the target frame rate.
func (w *Window) FPS() int { return w.fps }

// Frames returns how many frames have been drawn.
func (w *Window) Frames() uint64 { return w.frames }

// Attach adds a top-level widget.
func (w *Window) Attach(c Component) { w.root.Attach(c) }

// Detach removes a top-level widget.
func (w *Window) Detach(c Component) bool { return w.root.Detach(c) }

// Dispatch folds events into the input state and dispatches them through
// the tree. It reports whether the batch asked to quit.
func (w *Window) Dispatch(events []Event) (quit bool) {
	w.display.Input.Apply(events)
	w.root.Dispatch(events)
	for _, ev := range events {
		if ev.Kind == EventQuit {
			return true
		}
	}
	return false
}

// Draw draws the whole tree once.
func (w *Window) Draw() {
	w.root.Draw()
	w.frames++
}

// Frame dispatches events and, unless they asked to quit, draws.
// It reports whether the loop should continue.
func (w *Window) Frame(events []Event) bool {
	if w.Dispatch(events) {
		return false
	}
	w.Draw()
	return true
}

// Run loops until a Quit event arrives or ctx is done. It returns nil on
// Quit, the context's error on cancellation and a wrapped error if the
// backend fails to present.
func (w *Window) Run(ctx context.Context) error {
	w.logger.Info("window run", "fps", w.fps, "size", fmt.Sprintf("%gx%g", w.root.area.W, w.root.area.H))
	ticker := time.NewTicker(w.frame)
	defer ticker.Stop()

	for {
		if err := ctx.Err(); err != nil {
			w.logger.Info("window stopped", "reason", err, "frames", w.frames)
			return err
		}
		if !w.Frame(w.backend.Poll()) {
			w.logger.Info("window stopped", "reason", "quit", "frames", w.frames)
			return nil
		}
		if err := w.backend.Present(); err != nil {
			return fmt.Errorf("present frame %d: %w", w.frames, err)
		}
		select {
		case <-ctx.Done():
		case <-ticker.C:
		}
	}
}
