package gui

import (
	"fmt"
	"math"
	"slices"
)

// EditState is where a TextBox is in its editing cycle.
type EditState int

const (
	// EditInactive ignores keyboard and text input.
	EditInactive EditState = iota
	// EditDirect inserts committed text and handles editing keys.
	EditDirect
	// EditComposing shows an input method's candidate text; keys belong to the IME.
	EditComposing
)

func (s EditState) String() string {
	switch s {
	case EditInactive:
		return "inactive"
	case EditDirect:
		return "direct"
	case EditComposing:
		return "composing"
	default:
		return fmt.Sprintf("EditState(%d)", int(s))
	}
}

// TextBoxConfig configures NewTextBox. Zero Width or Height takes the theme
// size (height 48 by default). MaxLength caps the value in runes; zero
// means unlimited.
type TextBoxConfig struct {
	Name   string
	Tag    any
	Text   string
	Width  float32
	Height float32

	OnClick     ClickFunc
	OnMouseDown MouseButtonFunc
	OnMouseUp   MouseButtonFunc
	OnMouseOver MouseOverFunc

	MaxLength int
	OnChange  ChangeFunc
}

// TextBox is a single-line editable text field.
//
// Pressing inside it activates editing (and the platform text input, when
// the surface is a TextInputHost); pressing outside deactivates it. While
// active, committed text is inserted at the cursor and Backspace, Delete,
// Home, End, Left and Right edit or move. Enter stops the platform text
// input but keeps the box active; the next event it sees restarts it.
//
// Input method candidates arrive as CompositionUpdate events and are shown
// underlined at the cursor until a TextCommit replaces them.
//
// OnChange fires at most once per Dispatch batch, comparing the value
// before and after the whole batch.
type TextBox struct {
	Control

	value     []rune
	cursor    int
	maxLength int

	state       EditState
	composition []rune
	compCursor  int
	inputOn     bool

	borderOn     bool
	cursorColour Color
	inset        float32

	segments segmentCache
	segKey   segmentKey

	OnChange ChangeFunc
}

// segmentKey records the style the cached segments were rendered with.
type segmentKey struct {
	fg, bg, cursor Color
	font           FontRef
}

// NewTextBox creates a text box with its top-left corner at (x, y) using
// the default theme.
func NewTextBox(x, y float32, cfg TextBoxConfig) *TextBox {
	return newTextBox(DefaultTheme(), x, y, cfg)
}

func newTextBox(th Theme, x, y float32, cfg TextBoxConfig) *TextBox {
	t := &TextBox{
		maxLength:    max(cfg.MaxLength, 0),
		borderOn:     th.PanelBorderOn,
		cursorColour: th.TextBoxCursor,
		inset:        th.TextBoxInset,
		OnChange:     cfg.OnChange,
	}
	t.InitControl(t, panelArea(x, y, cfg.Width, cfg.Height, th.TextBoxSize))
	t.font = th.Font
	t.fg = th.TextBoxText
	t.bg = th.TextBoxBackground
	t.border = th.TextBoxBorder
	t.margin = th.PanelMargin
	t.apply(controlConfig{
		name: cfg.Name, tag: cfg.Tag,
		onClick: cfg.OnClick, onMouseDown: cfg.OnMouseDown, onMouseUp: cfg.OnMouseUp, onMouseOver: cfg.OnMouseOver,
	})
	t.SetText(cfg.Text)
	return t
}

// Text returns the committed value.
func (t *TextBox) Text() string { return string(t.value) }

// SetText replaces the value (truncated to MaxLength) and moves the cursor
// to the end. OnChange is not called.
func (t *TextBox) SetText(text string) {
	r := []rune(text)
	if t.maxLength > 0 && len(r) > t.maxLength {
		r = r[:t.maxLength]
	}
	t.value = r
	t.cursor = len(r)
	t.segments.invalidate()
}

// CursorPos returns the cursor position in runes.
func (t *TextBox) CursorPos() int { return t.cursor }

// SetCursorPos moves the cursor, clamped to the value.
func (t *TextBox) SetCursorPos(pos int) {
	t.cursor = min(max(pos, 0), len(t.value))
	t.segments.invalidate()
}

// MaxLength returns the rune limit; zero means unlimited.
func (t *TextBox) MaxLength() int { return t.maxLength }

// SetMaxLength changes the rune limit. An existing longer value is kept.
func (t *TextBox) SetMaxLength(n int) { t.maxLength = max(n, 0) }

// State returns the edit state.
func (t *TextBox) State() EditState { return t.state }

// Active reports whether the box is receiving input.
func (t *TextBox) Active() bool { return t.state != EditInactive }

// Composition returns the pending input method text and its cursor offset.
func (t *TextBox) Composition() (string, int) {
	return string(t.composition), t.compCursor
}

// CursorColour returns the cursor colour.
func (t *TextBox) CursorColour() Color { return t.cursorColour }

// SetCursorColour changes the cursor colour.
func (t *TextBox) SetCursorColour(c Color) { t.cursorColour = c }

// Inset returns the distance from the left edge to the text.
func (t *TextBox) Inset() float32 { return t.inset }

// SetInset changes the distance from the left edge to the text.
func (t *TextBox) SetInset(v float32) { t.inset = v }

// Border reports whether the border is drawn.
func (t *TextBox) Border() bool { return t.borderOn }

// SetBorder turns the border on or off.
func (t *TextBox) SetBorder(on bool) { t.borderOn = on }

// SegmentCount returns how many times the edit line has been rendered.
func (t *TextBox) SegmentCount() int { return t.segments.count }

// Dispatch runs pointer callbacks and editing for each event in order,
// reports a changed value through OnChange, then dispatches children.
func (t *TextBox) Dispatch(events []Event) {
	before := string(t.value)
	for _, ev := range events {
		t.HandlePointer(ev)
		if !t.Disabled() && t.Visible() {
			t.handleEdit(ev)
		}
	}
	t.EndBatch(events)
	if after := string(t.value); after != before && t.OnChange != nil {
		t.OnChange(t.self, before, after)
	}
	t.DispatchChildren(events)
}

func (t *TextBox) handleEdit(ev Event) {
	if ev.Kind == EventPointerDown {
		if t.area.Contains(ev.Pos) {
			if t.state == EditInactive {
				t.setState(EditDirect)
			}
			t.startInput()
		} else if t.state != EditInactive {
			t.composition = nil
			t.compCursor = 0
			t.setState(EditInactive)
			t.stopInput()
		}
		return
	}
	if t.state == EditInactive {
		return
	}
	if !t.inputOn {
		t.startInput()
	}

	switch t.state {
	case EditDirect:
		switch ev.Kind {
		case EventKeyDown:
			t.key(ev.Key)
		case EventTextCommit:
			t.insert(ev.Text)
		case EventCompositionUpdate:
			if ev.Text != "" {
				t.compose(ev.Text, ev.Cursor)
				t.setState(EditComposing)
			}
		}
	case EditComposing:
		switch ev.Kind {
		case EventKeyDown:
			if len(t.composition) == 0 {
				t.setState(EditDirect)
			}
		case EventTextCommit:
			t.composition = nil
			t.compCursor = 0
			t.insert(ev.Text)
			t.setState(EditDirect)
		case EventCompositionUpdate:
			t.compose(ev.Text, ev.Cursor)
		}
	}
}

func (t *TextBox) key(k Key) {
	switch k {
	case KeyBackspace:
		if t.cursor > 0 {
			t.value = slices.Delete(t.value, t.cursor-1, t.cursor)
			t.cursor--
		}
	case KeyDelete:
		if t.cursor < len(t.value) {
			t.value = slices.Delete(t.value, t.cursor, t.cursor+1)
		}
	case KeyHome:
		t.cursor = 0
	case KeyEnd:
		t.cursor = len(t.value)
	case KeyLeft:
		t.cursor = max(t.cursor-1, 0)
	case KeyRight:
		t.cursor = min(t.cursor+1, len(t.value))
	case KeyEnter, KeyKeypadEnter:
		t.stopInput()
	default:
		return
	}
	t.segments.invalidate()
}

func (t *TextBox) insert(text string) {
	r := []rune(text)
	if t.maxLength > 0 {
		room := t.maxLength - len(t.value)
		if room <= 0 {
			return
		}
		if len(r) > room {
			r = r[:room]
		}
	}
	if len(r) == 0 {
		return
	}
	t.value = slices.Insert(t.value, t.cursor, r...)
	t.cursor += len(r)
	t.segments.invalidate()
}

func (t *TextBox) compose(text string, cursor int) {
	t.composition = []rune(text)
	t.compCursor = min(max(cursor, 0), len(t.composition))
	t.segments.invalidate()
}

func (t *TextBox) setState(s EditState) {
	if s == t.state {
		return
	}
	guiLogger.Debug("textbox state", "name", componentName(t.self), "from", t.state, "to", s)
	t.state = s
	t.segments.invalidate()
}

func (t *TextBox) startInput() {
	if h := t.display.textInput(); h != nil {
		h.StartTextInput(t.area)
	}
	t.inputOn = true
}

func (t *TextBox) stopInput() {
	if h := t.display.textInput(); h != nil {
		h.StopTextInput()
	}
	t.inputOn = false
}

// Draw fills the box, draws the value with the cursor (while active), then
// the children.
func (t *TextBox) Draw() {
	if t.Visible() {
		t.DrawFrame(t.bg, t.borderOn, 0)
		t.drawLine()
	}
	t.DrawChildren()
}

// displayAttached replaces Control's: the edit line is rendered by drawLine.
func (t *TextBox) displayAttached() {}

func (t *TextBox) invalidateLine() { t.segments.invalidate() }

func (t *TextBox) drawLine() {
	d := t.display
	if d == nil || d.Surface == nil {
		return
	}
	key := segmentKey{fg: t.fg, bg: t.bg, cursor: t.cursorColour, font: t.font}
	if t.segments.dirty || key != t.segKey || t.segments.count == 0 {
		t.segments.render(d.Surface, t.segmentSpecs(), t.bg, d.Font(t.font))
		t.segKey = key
	}
	pos := Vec2{
		X: t.area.X + t.inset,
		Y: float32(math.Round(float64(t.area.Y + (t.area.H-t.segments.height)/2))),
	}
	t.segments.blit(d.Surface, pos)
}

func (t *TextBox) segmentSpecs() []segmentSpec {
	specs := []segmentSpec{{text: string(t.value[:t.cursor]), fg: t.fg}}
	switch t.state {
	case EditComposing:
		specs = append(specs,
			segmentSpec{text: string(t.composition[:t.compCursor]), fg: t.fg, style: TextUnderline},
			segmentSpec{text: "|", fg: t.cursorColour},
			segmentSpec{text: string(t.composition[t.compCursor:]), fg: t.fg, style: TextUnderline},
		)
	case EditDirect:
		specs = append(specs, segmentSpec{text: "|", fg: t.cursorColour, style: TextStrong})
	}
	return append(specs, segmentSpec{text: string(t.value[t.cursor:]), fg: t.fg})
}

// SetProperty implements Component.
func (t *TextBox) SetProperty(key string, value any) error {
	switch key {
	case "text":
		s, err := asString(key, value)
		if err != nil {
			return err
		}
		t.SetText(s)
	case "max_length":
		n, err := asInt(key, value)
		if err != nil {
			return err
		}
		t.SetMaxLength(n)
	case "cursor_colour", "cursor_color":
		c, err := asColor(key, value)
		if err != nil {
			return err
		}
		t.cursorColour = c
	case "inset":
		v, err := asFloat(key, value)
		if err != nil {
			return err
		}
		t.inset = v
	case "border":
		v, err := asBool(key, value)
		if err != nil {
			return err
		}
		t.borderOn = v
	case "on_change":
		fn, err := asChangeFunc(key, value)
		if err != nil {
			return err
		}
		t.OnChange = fn
	default:
		return t.Control.SetProperty(key, value)
	}
	return nil
}
