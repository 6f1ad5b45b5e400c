package gui

import (
	"fmt"
	"strings"
)

// Drawable renders itself onto its Display's surface.
type Drawable interface {
	Draw()
}

// Dispatchable reacts to one batch of input events.
type Dispatchable interface {
	Dispatch(events []Event)
}

// Hittable occupies a rectangle on screen.
type Hittable interface {
	Area() Rect
	Contains(p Vec2) bool
}

// Styled carries a line of text with a font and alignment.
type Styled interface {
	Text() string
	SetText(text string)
	Font() FontRef
	SetFont(ref FontRef)
	TextAlign() Align
	SetTextAlign(values ...Alignment)
}

// Component is a node in the widget tree.
//
// Implementations embed Base (directly or through Container, Control or a
// widget) and call its init from their constructor:
//
//	type Swatch struct {
//	    gui.Control
//	}
//
//	func NewSwatch(r gui.Rect) *Swatch {
//	    s := &Swatch{}
//	    s.InitControl(s, r)
//	    return s
//	}
type Component interface {
	Drawable
	Dispatchable

	Name() string
	SetName(name string)
	Tag() any
	SetTag(tag any)
	Visible() bool
	SetVisible(visible bool)
	Parent() Component
	Display() *Display

	// SetProperty assigns a property by key from a dynamically typed value.
	// Wrong-typed values fail with ErrTypeMismatch and unknown keys with
	// ErrUnknownProperty.
	SetProperty(key string, value any) error

	base() *Base
}

// ClickFunc handles a primary-button press inside a control.
type ClickFunc func(c Component, pos Vec2)

// MouseButtonFunc handles a button press or release inside a control.
type MouseButtonFunc func(c Component, pos Vec2, button MouseButton)

// MouseOverFunc handles pointer motion inside a control.
type MouseOverFunc func(c Component, pos, rel Vec2, buttons ButtonMask)

// ChangeFunc handles an edit that changed a text box's value.
type ChangeFunc func(c Component, before, after string)

// Base holds the identity every component shares.
type Base struct {
	name    string
	tag     any
	hidden  bool
	parent  Component
	display *Display
	self    Component
}

// InitBase records the concrete component that embeds b.
// Callbacks and parent links refer to self, never to the embedded struct.
func (b *Base) InitBase(self Component) {
	b.self = self
}

func (b *Base) base() *Base { return b }

// Name returns the component's name.
func (b *Base) Name() string { return b.name }

// SetName sets the component's name.
func (b *Base) SetName(name string) { b.name = name }

// Tag returns the application payload attached to the component.
func (b *Base) Tag() any { return b.tag }

// SetTag attaches an arbitrary application payload.
func (b *Base) SetTag(tag any) { b.tag = tag }

// Visible reports whether the component draws itself and handles pointer input.
// Children decide their own visibility.
func (b *Base) Visible() bool { return !b.hidden }

// SetVisible shows or hides the component.
func (b *Base) SetVisible(visible bool) { b.hidden = !visible }

// Show makes the component visible.
func (b *Base) Show() { b.hidden = false }

// Hide makes the component invisible.
func (b *Base) Hide() { b.hidden = true }

// Parent returns the container this component is attached to, or nil.
func (b *Base) Parent() Component { return b.parent }

// Display returns the display the component draws on, or nil.
func (b *Base) Display() *Display { return b.display }

// SetDisplay assigns d to the component and to every descendant that has
// no display of its own.
func (b *Base) SetDisplay(d *Display) {
	if b.self == nil {
		b.display = d
		return
	}
	b.display = nil
	propagateDisplay(b.self, d)
}

// SetProperty implements Component for the identity keys.
func (b *Base) SetProperty(key string, value any) error {
	switch key {
	case "name":
		s, err := asString(key, value)
		if err != nil {
			return err
		}
		b.name = s
	case "tag":
		b.tag = value
	case "visible":
		v, err := asBool(key, value)
		if err != nil {
			return err
		}
		b.hidden = !v
	default:
		return fmt.Errorf("%w: %q", ErrUnknownProperty, key)
	}
	return nil
}

// String returns a short description for logs.
func (b *Base) String() string {
	if b.self != nil {
		return fmt.Sprintf("%T(%s)", b.self, b.self.Name())
	}
	return fmt.Sprintf("component(%s)", b.name)
}

// displayAware is implemented by components that cache display-dependent
// state and must refresh it once a display becomes available.
type displayAware interface {
	displayAttached()
}

// parentNode is implemented by components that own children.
type parentNode interface {
	Children() []Component
}

// propagateDisplay hands d to c and its subtree, leaving any node that
// already has a display (and that node's subtree) untouched.
func propagateDisplay(c Component, d *Display) {
	b := c.base()
	if b.display != nil || d == nil {
		return
	}
	b.display = d
	if da, ok := c.(displayAware); ok {
		da.displayAttached()
	}
	if p, ok := c.(parentNode); ok {
		for _, child := range p.Children() {
			propagateDisplay(child, d)
		}
	}
}

// componentName returns c's name for logging.
func componentName(c Component) string {
	if c == nil {
		return "<nil>"
	}
	if n := c.Name(); n != "" {
		return n
	}
	return fmt.Sprintf("%T", c)
}

func isBlank(s string) bool {
	return strings.TrimSpace(s) == ""
}

func asString(key string, v any) (string, error) {
	s, ok := v.(string)
	if !ok {
		return "", fmt.Errorf("%w: %s wants string, got %T", ErrTypeMismatch, key, v)
	}
	return s, nil
}

func asBool(key string, v any) (bool, error) {
	b, ok := v.(bool)
	if !ok {
		return false, fmt.Errorf("%w: %s wants bool, got %T", ErrTypeMismatch, key, v)
	}
	return b, nil
}

func asFloat(key string, v any) (float32, error) {
	switch n := v.(type) {
	case int:
		return float32(n), nil
	case int64:
		return float32(n), nil
	case float32:
		return n, nil
	case float64:
		return float32(n), nil
	default:
		return 0, fmt.Errorf("%w: %s wants number, got %T", ErrTypeMismatch, key, v)
	}
}

func asInt(key string, v any) (int, error) {
	switch n := v.(type) {
	case int:
		return n, nil
	case int64:
		return int(n), nil
	default:
		return 0, fmt.Errorf("%w: %s wants integer, got %T", ErrTypeMismatch, key, v)
	}
}

func asColor(key string, v any) (Color, error) {
	c, err := ParseColor(v)
	if err != nil {
		return 0, fmt.Errorf("%s: %w", key, err)
	}
	return c, nil
}

// asAlignments accepts a single Alignment, a name, or a list of either.
func asAlignments(key string, v any) ([]Alignment, error) {
	switch a := v.(type) {
	case Alignment:
		return []Alignment{a}, nil
	case []Alignment:
		return a, nil
	case Align:
		return []Alignment{a.H, a.V}, nil
	case string:
		var out []Alignment
		for _, part := range strings.FieldsFunc(a, func(r rune) bool { return r == ',' || r == ' ' || r == '/' }) {
			al, ok := ParseAlignment(strings.ToLower(part))
			if !ok {
				return nil, fmt.Errorf("%w: %s: unknown alignment %q", ErrTypeMismatch, key, part)
			}
			out = append(out, al)
		}
		return out, nil
	case []any:
		var out []Alignment
		for _, e := range a {
			more, err := asAlignments(key, e)
			if err != nil {
				return nil, err
			}
			out = append(out, more...)
		}
		return out, nil
	default:
		return nil, fmt.Errorf("%w: %s wants alignment, got %T", ErrTypeMismatch, key, v)
	}
}

// asAxisAlignment accepts exactly one alignment belonging to the given axis.
func asAxisAlignment(key string, v any, horizontal bool) (Alignment, error) {
	values, err := asAlignments(key, v)
	if err != nil {
		return 0, err
	}
	if len(values) != 1 {
		return 0, fmt.Errorf("%w: %s wants one alignment", ErrTypeMismatch, key)
	}
	a := values[0]
	if horizontal && !a.IsHorizontal() || !horizontal && !a.IsVertical() {
		return 0, fmt.Errorf("%w: %s: %s", ErrInvalidAlignmentAxis, key, a)
	}
	return a, nil
}

func asVec2(key string, v any) (Vec2, error) {
	switch p := v.(type) {
	case Vec2:
		return p, nil
	case []any:
		if len(p) != 2 {
			return Vec2{}, fmt.Errorf("%w: %s wants [x, y]", ErrTypeMismatch, key)
		}
		x, err := asFloat(key, p[0])
		if err != nil {
			return Vec2{}, err
		}
		y, err := asFloat(key, p[1])
		if err != nil {
			return Vec2{}, err
		}
		return Vec2{X: x, Y: y}, nil
	default:
		return Vec2{}, fmt.Errorf("%w: %s wants [x, y], got %T", ErrTypeMismatch, key, v)
	}
}

func asClickFunc(key string, v any) (ClickFunc, error) {
	switch f := v.(type) {
	case ClickFunc:
		return f, nil
	case func(Component, Vec2):
		return f, nil
	case nil:
		return nil, nil
	default:
		return nil, fmt.Errorf("%w: %s wants ClickFunc, got %T", ErrTypeMismatch, key, v)
	}
}

func asMouseButtonFunc(key string, v any) (MouseButtonFunc, error) {
	switch f := v.(type) {
	case MouseButtonFunc:
		return f, nil
	case func(Component, Vec2, MouseButton):
		return f, nil
	case nil:
		return nil, nil
	default:
		return nil, fmt.Errorf("%w: %s wants MouseButtonFunc, got %T", ErrTypeMismatch, key, v)
	}
}

func asMouseOverFunc(key string, v any) (MouseOverFunc, error) {
	switch f := v.(type) {
	case MouseOverFunc:
		return f, nil
	case func(Component, Vec2, Vec2, ButtonMask):
		return f, nil
	case nil:
		return nil, nil
	default:
		return nil, fmt.Errorf("%w: %s wants MouseOverFunc, got %T", ErrTypeMismatch, key, v)
	}
}

func asChangeFunc(key string, v any) (ChangeFunc, error) {
	switch f := v.(type) {
	case ChangeFunc:
		return f, nil
	case func(Component, string, string):
		return f, nil
	case nil:
		return nil, nil
	default:
		return nil, fmt.Errorf("%w: %s wants ChangeFunc, got %T", ErrTypeMismatch, key, v)
	}
}
