package gui

import "math"

// LabelConfig configures NewLabel. An empty Text takes the theme default.
type LabelConfig struct {
	Name string
	Tag  any
	Text string

	// Align places the text relative to the anchor. Defaults to left/top,
	// making the anchor the label's top-left corner.
	Align []Alignment
}

// Label is a non-interactive line of text sized to fit exactly.
// It is positioned by an anchor point: AlignLeft puts the left edge on the
// anchor, AlignCenter centres on it and AlignRight puts the right edge on
// it, and likewise vertically.
type Label struct {
	Base

	text   string
	fg     Color
	bg     Color
	font   FontRef
	align  Align
	anchor Vec2

	layout textLayout
}

// NewLabel creates a label anchored at (x, y) using the default theme.
func NewLabel(x, y float32, cfg LabelConfig) *Label {
	return newLabel(DefaultTheme(), x, y, cfg)
}

func newLabel(th Theme, x, y float32, cfg LabelConfig) *Label {
	l := &Label{
		text:   cfg.Text,
		fg:     th.LabelText,
		bg:     th.LabelBackground,
		font:   th.Font,
		align:  Align{H: AlignLeft, V: AlignTop}.With(cfg.Align...),
		anchor: Vec2{X: x, Y: y},
	}
	if l.text == "" {
		l.text = th.LabelDefault
	}
	l.InitBase(l)
	l.name = cfg.Name
	l.tag = cfg.Tag
	l.layout.dirty = true
	l.place()
	return l
}

// Area returns the rectangle the text occupies.
func (l *Label) Area() Rect {
	l.ensureLayout()
	return l.layout.box
}

// Contains reports whether p lies on the label.
func (l *Label) Contains(p Vec2) bool { return l.Area().Contains(p) }

// Anchor returns the reference point.
func (l *Label) Anchor() Vec2 { return l.anchor }

// SetAnchor moves the label.
func (l *Label) SetAnchor(p Vec2) {
	l.anchor = p
	l.place()
}

// Text returns the label text.
func (l *Label) Text() string { return l.text }

// SetText changes the text and resizes the label to fit it.
func (l *Label) SetText(text string) {
	if text == l.text {
		return
	}
	l.text = text
	l.relayout()
}

// Font returns the font reference.
func (l *Label) Font() FontRef { return l.font }

// SetFont changes the font and resizes the label to fit.
func (l *Label) SetFont(ref FontRef) {
	if ref == l.font {
		return
	}
	l.font = ref
	l.relayout()
}

// TextAlign returns how the text sits relative to the anchor.
func (l *Label) TextAlign() Align { return l.align }

// SetTextAlign routes each value to its axis and re-places the label.
func (l *Label) SetTextAlign(values ...Alignment) {
	l.align.Set(values...)
	l.place()
}

// Colour returns the text colour.
func (l *Label) Colour() Color { return l.fg }

// SetColour changes the text colour.
func (l *Label) SetColour(c Color) {
	if c == l.fg {
		return
	}
	l.fg = c
	l.relayout()
}

// Background returns the background colour.
func (l *Label) Background() Color { return l.bg }

// SetBackground changes the background colour.
func (l *Label) SetBackground(c Color) {
	if c == l.bg {
		return
	}
	l.bg = c
	l.relayout()
}

// LayoutCount returns how many times the text has been rendered.
func (l *Label) LayoutCount() int { return l.layout.count }

// Draw blits the text when visible and not blank.
func (l *Label) Draw() {
	if !l.Visible() || isBlank(l.text) || l.display == nil || l.display.Surface == nil {
		return
	}
	l.ensureLayout()
	if l.layout.glyph == nil {
		return
	}
	l.display.Surface.Blit(l.layout.glyph, l.layout.box.Pos())
}

// Dispatch ignores input; labels are not interactive.
func (l *Label) Dispatch([]Event) {}

// SetProperty implements Component.
func (l *Label) SetProperty(key string, value any) error {
	switch key {
	case "text":
		s, err := asString(key, value)
		if err != nil {
			return err
		}
		l.SetText(s)
	case "colour", "color", "foreground":
		c, err := asColor(key, value)
		if err != nil {
			return err
		}
		l.SetColour(c)
	case "background":
		c, err := asColor(key, value)
		if err != nil {
			return err
		}
		l.SetBackground(c)
	case "align":
		values, err := asAlignments(key, value)
		if err != nil {
			return err
		}
		l.SetTextAlign(values...)
	case "h_align", "v_align":
		a, err := asAxisAlignment(key, value, key == "h_align")
		if err != nil {
			return err
		}
		l.SetTextAlign(a)
	case "font":
		name, err := asString(key, value)
		if err != nil {
			return err
		}
		l.SetFont(FontRef{Name: name, Size: l.font.Size})
	case "font_size":
		size, err := asFloat(key, value)
		if err != nil {
			return err
		}
		l.SetFont(FontRef{Name: l.font.Name, Size: size})
	case "anchor":
		p, err := asVec2(key, value)
		if err != nil {
			return err
		}
		l.SetAnchor(p)
	case "x", "y":
		n, err := asFloat(key, value)
		if err != nil {
			return err
		}
		p := l.anchor
		if key == "x" {
			p.X = n
		} else {
			p.Y = n
		}
		l.SetAnchor(p)
	default:
		return l.Base.SetProperty(key, value)
	}
	return nil
}

func (l *Label) relayout() {
	l.layout.invalidate()
	l.ensureLayout()
}

func (l *Label) ensureLayout() {
	if !l.layout.dirty {
		return
	}
	d := l.display
	if d == nil || d.Surface == nil {
		return
	}
	l.layout.render(d.Surface, l.text, l.fg, l.bg, d.Font(l.font), 0)
	l.place()
}

func (l *Label) place() {
	box := l.align.anchor(l.anchor, l.layout.size)
	box.X = float32(math.Round(float64(box.X)))
	box.Y = float32(math.Round(float64(box.Y)))
	l.layout.box = box
}

func (l *Label) displayAttached() {
	l.ensureLayout()
}
