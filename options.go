package gui

import (
	"log/slog"
	"time"
)

// Option configures a Factory or a Window. Options that do not apply to
// the value being built are ignored.
type Option func(*options)

// options holds everything an Option can set.
type options struct {
	theme  Theme
	namer  *Namer
	fonts  FontSource
	fps    int
	size   Vec2
	logger *slog.Logger
}

// Defaults used when no option overrides them.
const (
	DefaultFPS    = 50
	DefaultWidth  = 800
	DefaultHeight = 600
)

// WithTheme sets the theme applied to new widgets.
func WithTheme(t Theme) Option {
	return func(o *options) { o.theme = t }
}

// WithNamer sets the naming policy for widgets built without a name.
func WithNamer(n *Namer) Option {
	return func(o *options) { o.namer = n }
}

// WithFonts sets the font source of a Window. Without it NewWindow loads
// the built-in Go fonts.
func WithFonts(f FontSource) Option {
	return func(o *options) { o.fonts = f }
}

// WithFPS sets the target frame rate of Window.Run. Values below 1 are ignored.
func WithFPS(fps int) Option {
	return func(o *options) {
		if fps > 0 {
			o.fps = fps
		}
	}
}

// WithSize sets the window size in pixels.
func WithSize(w, h float32) Option {
	return func(o *options) { o.size = Vec2{X: w, Y: h} }
}

// WithLogger sets the logger used by Window.Run.
func WithLogger(l *slog.Logger) Option {
	return func(o *options) { o.logger = l }
}

// applyOptions applies all options over the defaults.
func applyOptions(opts []Option) options {
	o := options{
		theme: DefaultTheme(),
		fps:   DefaultFPS,
		size:  Vec2{X: DefaultWidth, Y: DefaultHeight},
	}
	for _, opt := range opts {
		if opt != nil {
			opt(&o)
		}
	}
	if o.namer == nil {
		o.namer = NewNamer()
	}
	if o.logger == nil {
		o.logger = guiLogger
	}
	return o
}

// frameInterval returns the time budget of one frame.
func (o options) frameInterval() time.Duration {
	return time.Second / time.Duration(o.fps)
}
