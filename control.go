package gui

import (
	"fmt"
	"math"
)

// Control is an interactive container with an area, a line of styled text
// and pointer callbacks.
//
// Per Dispatch batch a visible, enabled control walks the events in order:
// a press inside the area calls OnMouseDown, and for the primary button
// also OnClick and latches Clicked; a release inside calls OnMouseUp and
// motion inside calls OnMouseOver. Once the batch is done the latch is
// cleared unless the primary button is still held. Children are dispatched
// afterwards whether or not the control itself is enabled.
type Control struct {
	Container

	area     Rect
	disabled uint32
	clicked  bool

	fg     Color
	bg     Color
	border Color
	text   string
	align  Align
	font   FontRef
	margin float32

	layout textLayout

	// Callback slots. Nil slots are skipped.
	OnClick     ClickFunc
	OnMouseDown MouseButtonFunc
	OnMouseUp   MouseButtonFunc
	OnMouseOver MouseOverFunc
}

// InitControl prepares an embedded Control. self is the concrete widget
// passed to callbacks.
func (c *Control) InitControl(self Component, area Rect) {
	c.InitBase(self)
	c.area = area
	c.fg = ColorBlack
	c.bg = ColorTransparent
	c.border = ColorBlack
	c.align = DefaultAlign
	c.font = DefaultFont
	c.layout.dirty = true
}

// controlConfig is the part of every widget config a Control consumes.
type controlConfig struct {
	name        string
	tag         any
	text        string
	onClick     ClickFunc
	onMouseDown MouseButtonFunc
	onMouseUp   MouseButtonFunc
	onMouseOver MouseOverFunc
}

func (c *Control) apply(cfg controlConfig) {
	c.name = cfg.name
	c.tag = cfg.tag
	c.text = cfg.text
	c.OnClick = cfg.onClick
	c.OnMouseDown = cfg.onMouseDown
	c.OnMouseUp = cfg.onMouseUp
	c.OnMouseOver = cfg.onMouseOver
	c.layout.invalidate()
}

// NewControl creates a bare control over area.
func NewControl(area Rect) *Control {
	c := &Control{}
	c.InitControl(c, area)
	return c
}

// Area returns the control's rectangle.
func (c *Control) Area() Rect { return c.area }

// SetArea moves or resizes the control. The cached text is re-placed, not
// re-rendered.
func (c *Control) SetArea(r Rect) {
	c.area = r
	c.place()
}

// SetPos moves the control's top-left corner to p.
func (c *Control) SetPos(p Vec2) {
	c.SetArea(Rect{X: p.X, Y: p.Y, W: c.area.W, H: c.area.H})
}

// SetSize resizes the control keeping its top-left corner.
func (c *Control) SetSize(w, h float32) {
	c.SetArea(Rect{X: c.area.X, Y: c.area.Y, W: w, H: h})
}

// Contains reports whether p lies inside the area, edges included.
func (c *Control) Contains(p Vec2) bool { return c.area.Contains(p) }

// Disable increments the disable counter. Each call needs a matching Enable.
func (c *Control) Disable() {
	c.disabled++
}

// Enable decrements the disable counter. Calling it more often than Disable
// is a programming error and panics with ErrCounterUnderflow.
func (c *Control) Enable() {
	if c.disabled == 0 {
		panic(fmt.Errorf("%w: %s", ErrCounterUnderflow, componentName(c.self)))
	}
	c.disabled--
}

// Disabled reports whether Disable has been called more often than Enable.
func (c *Control) Disabled() bool { return c.disabled > 0 }

// DisableCount returns the net number of Disable calls.
func (c *Control) DisableCount() uint32 { return c.disabled }

// Clicked reports whether the primary button was pressed inside the
// control and has not been seen released since.
func (c *Control) Clicked() bool { return c.clicked }

// Text returns the control's text.
func (c *Control) Text() string { return c.text }

// SetText changes the text.
func (c *Control) SetText(text string) {
	if text == c.text {
		return
	}
	c.text = text
	c.relayout()
}

// Font returns the font reference.
func (c *Control) Font() FontRef { return c.font }

// SetFont changes the font.
func (c *Control) SetFont(ref FontRef) {
	if ref == c.font {
		return
	}
	c.font = ref
	c.relayout()
}

// TextAlign returns the text alignment.
func (c *Control) TextAlign() Align { return c.align }

// SetTextAlign routes each value to its axis. Values for neither axis are
// ignored.
func (c *Control) SetTextAlign(values ...Alignment) {
	next := c.align.With(values...)
	if next == c.align {
		return
	}
	c.align = next
	c.relayout()
}

// Colour returns the text colour.
func (c *Control) Colour() Color { return c.fg }

// SetColour changes the text colour.
func (c *Control) SetColour(col Color) {
	if col == c.fg {
		return
	}
	c.fg = col
	c.relayout()
}

// Background returns the background colour.
func (c *Control) Background() Color { return c.bg }

// SetBackground changes the background colour.
func (c *Control) SetBackground(col Color) {
	if col == c.bg {
		return
	}
	c.bg = col
	c.relayout()
}

// BorderColour returns the border colour.
func (c *Control) BorderColour() Color { return c.border }

// SetBorderColour changes the border colour.
func (c *Control) SetBorderColour(col Color) { c.border = col }

// Margin returns the inset used to place aligned text.
func (c *Control) Margin() float32 { return c.margin }

// SetMargin changes the inset used to place aligned text.
func (c *Control) SetMargin(m float32) {
	c.margin = m
	c.place()
}

// TextBox returns where the text is drawn.
func (c *Control) TextBox() Rect {
	c.ensureLayout()
	return c.layout.box
}

// LayoutCount returns how many times the text has been rendered.
func (c *Control) LayoutCount() int { return c.layout.count }

// Dispatch handles the control's own pointer input, then its children.
func (c *Control) Dispatch(events []Event) {
	for _, ev := range events {
		c.HandlePointer(ev)
	}
	c.EndBatch(events)
	c.DispatchChildren(events)
}

// Draw draws the text (when visible) and then the children.
func (c *Control) Draw() {
	if c.Visible() {
		c.DrawText()
	}
	c.DrawChildren()
}

// HandlePointer runs the pointer callbacks for a single event. Disabled or
// invisible controls ignore it.
func (c *Control) HandlePointer(ev Event) {
	if c.Disabled() || !c.Visible() || !ev.IsPointer() {
		return
	}
	if !c.area.Contains(ev.Pos) {
		return
	}
	switch ev.Kind {
	case EventPointerDown:
		if ev.Button == MouseButtonPrimary {
			c.clicked = true
			if c.OnClick != nil {
				c.OnClick(c.self, ev.Pos)
			}
		}
		if c.OnMouseDown != nil {
			c.OnMouseDown(c.self, ev.Pos, ev.Button)
		}
	case EventPointerUp:
		if c.OnMouseUp != nil {
			c.OnMouseUp(c.self, ev.Pos, ev.Button)
		}
	case EventPointerMove:
		if c.OnMouseOver != nil {
			c.OnMouseOver(c.self, ev.Pos, ev.Rel, ev.Buttons)
		}
	}
}

// EndBatch clears the click latch unless the primary button is held.
func (c *Control) EndBatch(events []Event) {
	if !c.primaryHeld(events) {
		c.clicked = false
	}
}

// primaryHeld reads the shared input state, or failing that the last
// primary-button evidence in the batch.
func (c *Control) primaryHeld(events []Event) bool {
	if d := c.display; d != nil && d.Input != nil {
		return d.Input.MouseDown(MouseButtonPrimary)
	}
	held := c.clicked
	for _, ev := range events {
		switch ev.Kind {
		case EventPointerDown, EventPointerUp:
			if ev.Button == MouseButtonPrimary {
				held = ev.Kind == EventPointerDown
			}
		case EventPointerMove:
			held = ev.Buttons.Has(MouseButtonPrimary)
		}
	}
	return held
}

// DrawText blits the cached text glyph unless the text is blank.
func (c *Control) DrawText() {
	if isBlank(c.text) || c.display == nil || c.display.Surface == nil {
		return
	}
	c.ensureLayout()
	if c.layout.glyph == nil {
		return
	}
	c.display.Surface.Blit(c.layout.glyph, c.layout.box.Pos())
}

// DrawFrame fills the area with bg and, when border is set, first fills the
// area inflated by half the margin with the border colour.
func (c *Control) DrawFrame(bg Color, border bool, radius float32) {
	if c.display == nil || c.display.Surface == nil {
		return
	}
	s := c.display.Surface
	if border {
		half := c.margin / 2
		s.FillRect(c.area.Inflate(half, half), c.border, radius)
	}
	if bg.Alpha() > 0 {
		s.FillRect(c.area, bg, radius)
	}
}

// SetProperty implements Component.
func (c *Control) SetProperty(key string, value any) error {
	switch key {
	case "text":
		s, err := asString(key, value)
		if err != nil {
			return err
		}
		c.SetText(s)
	case "colour", "color", "foreground":
		col, err := asColor(key, value)
		if err != nil {
			return err
		}
		c.SetColour(col)
	case "background":
		col, err := asColor(key, value)
		if err != nil {
			return err
		}
		c.SetBackground(col)
	case "border_colour", "border_color":
		col, err := asColor(key, value)
		if err != nil {
			return err
		}
		c.SetBorderColour(col)
	case "align":
		values, err := asAlignments(key, value)
		if err != nil {
			return err
		}
		c.SetTextAlign(values...)
	case "h_align", "v_align":
		a, err := asAxisAlignment(key, value, key == "h_align")
		if err != nil {
			return err
		}
		c.SetTextAlign(a)
	case "font":
		name, err := asString(key, value)
		if err != nil {
			return err
		}
		c.SetFont(FontRef{Name: name, Size: c.font.Size})
	case "font_size":
		size, err := asFloat(key, value)
		if err != nil {
			return err
		}
		c.SetFont(FontRef{Name: c.font.Name, Size: size})
	case "margin":
		m, err := asFloat(key, value)
		if err != nil {
			return err
		}
		c.SetMargin(m)
	case "x", "y", "width", "height":
		n, err := asFloat(key, value)
		if err != nil {
			return err
		}
		r := c.area
		switch key {
		case "x":
			r.X = n
		case "y":
			r.Y = n
		case "width":
			r.W = n
		case "height":
			r.H = n
		}
		c.SetArea(r)
	case "disabled":
		v, err := asBool(key, value)
		if err != nil {
			return err
		}
		if v && !c.Disabled() {
			c.Disable()
		} else if !v {
			for c.Disabled() {
				c.Enable()
			}
		}
	case "on_click":
		fn, err := asClickFunc(key, value)
		if err != nil {
			return err
		}
		c.OnClick = fn
	case "on_mouse_down":
		fn, err := asMouseButtonFunc(key, value)
		if err != nil {
			return err
		}
		c.OnMouseDown = fn
	case "on_mouse_up":
		fn, err := asMouseButtonFunc(key, value)
		if err != nil {
			return err
		}
		c.OnMouseUp = fn
	case "on_mouse_over":
		fn, err := asMouseOverFunc(key, value)
		if err != nil {
			return err
		}
		c.OnMouseOver = fn
	default:
		return c.Base.SetProperty(key, value)
	}
	return nil
}

// lineOwner is implemented by controls that render their own text line
// instead of Control's single cached label.
type lineOwner interface {
	invalidateLine()
}

// relayout re-renders the text now if a display is available, otherwise
// defers it until one is.
func (c *Control) relayout() {
	if o, ok := c.self.(lineOwner); ok {
		o.invalidateLine()
		return
	}
	c.layout.invalidate()
	c.ensureLayout()
}

// ensureLayout renders the text if the cache is stale and a display exists.
func (c *Control) ensureLayout() {
	if !c.layout.dirty {
		return
	}
	d := c.display
	if d == nil || d.Surface == nil {
		return
	}
	c.layout.render(d.Surface, c.text, c.fg, c.bg, d.Font(c.font), 0)
	c.place()
}

// place positions the cached glyph inside the area.
func (c *Control) place() {
	c.layout.box = c.align.place(c.area, c.layout.size, c.margin)
	c.layout.box.X = float32(math.Round(float64(c.layout.box.X)))
	c.layout.box.Y = float32(math.Round(float64(c.layout.box.Y)))
}

func (c *Control) displayAttached() {
	c.ensureLayout()
}
