package gui

// Alignment positions text inside a box (or around an anchor).
// Horizontal and vertical values share one type; each value belongs to exactly one axis.
type Alignment int

const (
	AlignLeft Alignment = iota
	AlignCenter
	AlignRight
	AlignTop
	AlignMiddle
	AlignBottom
)

// IsHorizontal reports whether a belongs to the horizontal axis.
func (a Alignment) IsHorizontal() bool {
	return a == AlignLeft || a == AlignCenter || a == AlignRight
}

// IsVertical reports whether a belongs to the vertical axis.
func (a Alignment) IsVertical() bool {
	return a == AlignTop || a == AlignMiddle || a == AlignBottom
}

func (a Alignment) String() string {
	switch a {
	case AlignLeft:
		return "left"
	case AlignCenter:
		return "center"
	case AlignRight:
		return "right"
	case AlignTop:
		return "top"
	case AlignMiddle:
		return "middle"
	case AlignBottom:
		return "bottom"
	default:
		return "invalid"
	}
}

// ParseAlignment maps a name ("left", "centre", "top", ...) to its value.
func ParseAlignment(s string) (Alignment, bool) {
	switch s {
	case "left":
		return AlignLeft, true
	case "center", "centre":
		return AlignCenter, true
	case "right":
		return AlignRight, true
	case "top":
		return AlignTop, true
	case "middle":
		return AlignMiddle, true
	case "bottom":
		return AlignBottom, true
	}
	return 0, false
}

// Align is a horizontal/vertical alignment pair.
// H only ever holds a horizontal value and V a vertical one.
type Align struct {
	H Alignment
	V Alignment
}

// DefaultAlign centres on both axes.
var DefaultAlign = Align{H: AlignCenter, V: AlignMiddle}

// SetH assigns the horizontal axis. A vertical or unknown value is ignored
// and false is returned.
func (a *Align) SetH(v Alignment) bool {
	if !v.IsHorizontal() {
		return false
	}
	a.H = v
	return true
}

// SetV assigns the vertical axis. A horizontal or unknown value is ignored
// and false is returned.
func (a *Align) SetV(v Alignment) bool {
	if !v.IsVertical() {
		return false
	}
	a.V = v
	return true
}

// Set routes each value to the axis it belongs to. Values belonging to
// neither axis are dropped.
func (a *Align) Set(values ...Alignment) {
	for _, v := range values {
		if !a.SetH(v) {
			a.SetV(v)
		}
	}
}

// With returns a copy with values applied as by Set.
func (a Align) With(values ...Alignment) Align {
	a.Set(values...)
	return a
}

func (a Align) String() string {
	return a.H.String() + "/" + a.V.String()
}

// place positions a box of the given size inside area with margin m.
// The box starts centred; each non-centre alignment pins one edge.
func (a Align) place(area Rect, size Vec2, m float32) Rect {
	box := Rect{W: size.X, H: size.Y}.WithCenter(area.Center())
	switch a.H {
	case AlignLeft:
		box.X = area.X + m
	case AlignRight:
		box.X = area.Right() - m - box.W
	}
	switch a.V {
	case AlignTop:
		box.Y = area.Y + m
	case AlignBottom:
		box.Y = area.Bottom() - m - box.H
	}
	return box
}

// anchor positions a box of the given size relative to a point.
func (a Align) anchor(p Vec2, size Vec2) Rect {
	box := Rect{X: p.X, Y: p.Y, W: size.X, H: size.Y}
	switch a.H {
	case AlignCenter:
		box.X = p.X - size.X/2
	case AlignRight:
		box.X = p.X - size.X
	}
	switch a.V {
	case AlignMiddle:
		box.Y = p.Y - size.Y/2
	case AlignBottom:
		box.Y = p.Y - size.Y
	}
	return box
}
