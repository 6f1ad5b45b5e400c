package gui

// TextStyle selects optional text decorations.
type TextStyle uint8

const (
	TextUnderline TextStyle = 1 << iota
	TextStrong
)

// Has reports whether all flags in f are set.
func (s TextStyle) Has(f TextStyle) bool { return s&f == f }

// Glyph is an opaque rendered image owned by a Surface.
type Glyph interface {
	// Size returns the pixel dimensions of the image.
	Size() Vec2
}

// Surface is the drawing target a component tree renders onto.
// Backends implement it; the tree never touches pixels directly.
type Surface interface {
	// FillRect fills r with c. A radius above zero rounds the corners.
	FillRect(r Rect, c Color, radius float32)

	// StrokeRect outlines r with a line of the given width.
	StrokeRect(r Rect, c Color, width, radius float32)

	// RenderText rasterises text once and returns the image together with
	// its bounding box at the origin. bg may be ColorTransparent.
	RenderText(text string, fg, bg Color, f Font, style TextStyle) (Glyph, Rect)

	// Blit draws a previously rendered glyph with its top-left corner at pos.
	Blit(g Glyph, pos Vec2)
}

// TextInputHost is implemented by surfaces that can switch the platform
// text input (on-screen keyboard, IME candidate window) on and off.
type TextInputHost interface {
	// StartTextInput enables text input; r is where the edited text is shown.
	StartTextInput(r Rect)

	// StopTextInput disables text input.
	StopTextInput()
}

// Display bundles the handles a component tree shares: where to draw,
// where fonts come from and the accumulated pointer state.
// A child attached to a container inherits the container's Display.
type Display struct {
	Surface Surface
	Fonts   FontSource
	Input   *InputState
}

// NewDisplay creates a Display with a fresh InputState.
// A nil fonts argument falls back to the built-in fixed face.
func NewDisplay(s Surface, fonts FontSource) *Display {
	return &Display{Surface: s, Fonts: fonts, Input: NewInputState()}
}

// Font resolves ref through the display's FontSource.
func (d *Display) Font(ref FontRef) Font {
	if d == nil || d.Fonts == nil {
		return NewFaceFont(ref, fallbackFace)
	}
	return d.Fonts.Font(ref)
}

// pointer returns the last known pointer position and whether one is known.
func (d *Display) pointer() (Vec2, bool) {
	if d == nil || d.Input == nil {
		return Vec2{}, false
	}
	return d.Input.MousePos(), true
}

// textInput returns the surface's TextInputHost, if it has one.
func (d *Display) textInput() TextInputHost {
	if d == nil || d.Surface == nil {
		return nil
	}
	h, _ := d.Surface.(TextInputHost)
	return h
}
