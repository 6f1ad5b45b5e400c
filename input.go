package gui

import "strings"

// MouseButton represents a mouse button.
type MouseButton int

const (
	MouseButtonLeft MouseButton = iota
	MouseButtonRight
	MouseButtonMiddle
	MouseButtonCount
)

// MouseButtonPrimary is the button that clicks.
const MouseButtonPrimary = MouseButtonLeft

func (b MouseButton) String() string {
	switch b {
	case MouseButtonLeft:
		return "left"
	case MouseButtonRight:
		return "right"
	case MouseButtonMiddle:
		return "middle"
	default:
		return "unknown"
	}
}

// ButtonMask is the set of mouse buttons held during a pointer move.
type ButtonMask uint8

// MaskOf builds a mask from buttons.
func MaskOf(buttons ...MouseButton) ButtonMask {
	var m ButtonMask
	for _, b := range buttons {
		m = m.With(b)
	}
	return m
}

// Has reports whether b is in the mask.
func (m ButtonMask) Has(b MouseButton) bool {
	if b < 0 || b >= MouseButtonCount {
		return false
	}
	return m&(1<<b) != 0
}

// With returns the mask with b added.
func (m ButtonMask) With(b MouseButton) ButtonMask {
	if b < 0 || b >= MouseButtonCount {
		return m
	}
	return m | 1<<b
}

// Without returns the mask with b removed.
func (m ButtonMask) Without(b MouseButton) ButtonMask {
	if b < 0 || b >= MouseButtonCount {
		return m
	}
	return m &^ (1 << b)
}

func (m ButtonMask) String() string {
	var parts []string
	for b := MouseButton(0); b < MouseButtonCount; b++ {
		if m.Has(b) {
			parts = append(parts, b.String())
		}
	}
	return "[" + strings.Join(parts, ",") + "]"
}

// Key represents a keyboard key.
// Printable characters arrive as EventTextCommit, not as keys.
type Key int

const (
	KeyNone Key = iota
	KeyTab
	KeyLeft
	KeyRight
	KeyUp
	KeyArrowDown
	KeyPageUp
	KeyPageDown
	KeyHome
	KeyEnd
	KeyInsert
	KeyDelete
	KeyBackspace
	KeySpace
	KeyEnter
	KeyKeypadEnter
	KeyEscape
	KeyF1
	KeyF2
	KeyF3
	KeyF4
	KeyF5
	KeyF6
	KeyF7
	KeyF8
	KeyF9
	KeyF10
	KeyF11
	KeyF12
	KeyCount
)

var keyNames = map[Key]string{
	KeyNone:        "--",
	KeyTab:         "Tab",
	KeyLeft:        "Left",
	KeyRight:       "Right",
	KeyUp:          "Up",
	KeyArrowDown:   "Down",
	KeyPageUp:      "PgUp",
	KeyPageDown:    "PgDn",
	KeyHome:        "Home",
	KeyEnd:         "End",
	KeyInsert:      "Ins",
	KeyDelete:      "Del",
	KeyBackspace:   "Backspace",
	KeySpace:       "Space",
	KeyEnter:       "Enter",
	KeyKeypadEnter: "KpEnter",
	KeyEscape:      "Esc",
	KeyF1:          "F1",
	KeyF2:          "F2",
	KeyF3:          "F3",
	KeyF4:          "F4",
	KeyF5:          "F5",
	KeyF6:          "F6",
	KeyF7:          "F7",
	KeyF8:          "F8",
	KeyF9:          "F9",
	KeyF10:         "F10",
	KeyF11:         "F11",
	KeyF12:         "F12",
}

// KeyName returns a human-readable name for a key.
func KeyName(k Key) string {
	if name, ok := keyNames[k]; ok {
		return name
	}
	return "?"
}

func (k Key) String() string { return KeyName(k) }

// EventKind tags an Event.
type EventKind int

const (
	EventNone EventKind = iota
	EventPointerDown
	EventPointerUp
	EventPointerMove
	EventKeyDown
	EventTextCommit
	EventCompositionUpdate
	EventQuit
)

func (k EventKind) String() string {
	switch k {
	case EventPointerDown:
		return "pointer-down"
	case EventPointerUp:
		return "pointer-up"
	case EventPointerMove:
		return "pointer-move"
	case EventKeyDown:
		return "key-down"
	case EventTextCommit:
		return "text-commit"
	case EventCompositionUpdate:
		return "composition-update"
	case EventQuit:
		return "quit"
	default:
		return "none"
	}
}

// Event is one input event. Only the fields relevant to Kind are set.
type Event struct {
	Kind    EventKind
	Pos     Vec2        // pointer events
	Rel     Vec2        // EventPointerMove
	Button  MouseButton // EventPointerDown, EventPointerUp
	Buttons ButtonMask  // EventPointerMove
	Key     Key         // EventKeyDown
	Text    string      // EventTextCommit, EventCompositionUpdate
	Cursor  int         // EventCompositionUpdate: cursor offset in runes within Text
}

// IsPointer reports whether the event carries a pointer position.
func (e Event) IsPointer() bool {
	return e.Kind == EventPointerDown || e.Kind == EventPointerUp || e.Kind == EventPointerMove
}

// PointerDown builds a button press event.
func PointerDown(pos Vec2, b MouseButton) Event {
	return Event{Kind: EventPointerDown, Pos: pos, Button: b}
}

// PointerUp builds a button release event.
func PointerUp(pos Vec2, b MouseButton) Event {
	return Event{Kind: EventPointerUp, Pos: pos, Button: b}
}

// PointerMove builds a motion event.
func PointerMove(pos, rel Vec2, buttons ButtonMask) Event {
	return Event{Kind: EventPointerMove, Pos: pos, Rel: rel, Buttons: buttons}
}

// KeyDown builds a key press event.
func KeyDown(k Key) Event {
	return Event{Kind: EventKeyDown, Key: k}
}

// TextCommit builds a committed text event.
func TextCommit(text string) Event {
	return Event{Kind: EventTextCommit, Text: text}
}

// CompositionUpdate builds an IME candidate event.
func CompositionUpdate(text string, cursor int) Event {
	return Event{Kind: EventCompositionUpdate, Text: text, Cursor: cursor}
}

// Quit builds a quit request.
func Quit() Event {
	return Event{Kind: EventQuit}
}

// PointerTracker turns pointer snapshots sampled once per tick into events,
// for backends that poll device state instead of receiving callbacks.
type PointerTracker struct {
	pos     Vec2
	buttons ButtonMask
	seen    bool
}

// Update returns the events leading from the previous snapshot to this one:
// a move carrying the buttons held before this tick, then a press or release
// for every button that changed.
func (p *PointerTracker) Update(pos Vec2, held ButtonMask) []Event {
	var events []Event
	if !p.seen || pos != p.pos {
		var rel Vec2
		if p.seen {
			rel = pos.Sub(p.pos)
		}
		events = append(events, PointerMove(pos, rel, p.buttons))
	}
	for b := MouseButton(0); b < MouseButtonCount; b++ {
		was, is := p.buttons.Has(b), held.Has(b)
		switch {
		case is && !was:
			events = append(events, PointerDown(pos, b))
		case was && !is:
			events = append(events, PointerUp(pos, b))
		}
	}
	p.pos, p.buttons, p.seen = pos, held, true
	return events
}

// InputState holds pointer state accumulated across event batches.
// Widgets query it during Dispatch and Draw.
type InputState struct {
	// Mouse position
	MouseX, MouseY float32

	// Mouse buttons - current state
	mouseDown [MouseButtonCount]bool
	// Edges seen in the most recent batch
	mouseClicked [MouseButtonCount]bool
	mouseUp      [MouseButtonCount]bool

	quit bool
}

// NewInputState creates a new InputState.
func NewInputState() *InputState {
	return &InputState{}
}

// Reset clears per-batch edge flags.
func (s *InputState) Reset() {
	for i := range s.mouseClicked {
		s.mouseClicked[i] = false
	}
	for i := range s.mouseUp {
		s.mouseUp[i] = false
	}
}

// Apply resets edge flags and folds a batch of events into the state.
func (s *InputState) Apply(events []Event) {
	s.Reset()
	for _, ev := range events {
		switch ev.Kind {
		case EventPointerDown:
			s.SetMousePos(ev.Pos.X, ev.Pos.Y)
			s.SetMouseButton(ev.Button, true)
		case EventPointerUp:
			s.SetMousePos(ev.Pos.X, ev.Pos.Y)
			s.SetMouseButton(ev.Button, false)
		case EventPointerMove:
			s.SetMousePos(ev.Pos.X, ev.Pos.Y)
			for b := MouseButton(0); b < MouseButtonCount; b++ {
				s.mouseDown[b] = ev.Buttons.Has(b)
			}
		case EventQuit:
			s.quit = true
		}
	}
}

// SetMousePos sets the mouse position.
func (s *InputState) SetMousePos(x, y float32) {
	s.MouseX = x
	s.MouseY = y
}

// MousePos returns the last known pointer position.
func (s *InputState) MousePos() Vec2 {
	return Vec2{X: s.MouseX, Y: s.MouseY}
}

// SetMouseButton sets mouse button state.
func (s *InputState) SetMouseButton(button MouseButton, down bool) {
	if button < 0 || button >= MouseButtonCount {
		return
	}

	wasDown := s.mouseDown[button]
	s.mouseDown[button] = down

	if down && !wasDown {
		s.mouseClicked[button] = true
	}
	if !down && wasDown {
		s.mouseUp[button] = true
	}
}

// MouseDown returns true if a mouse button is currently held.
func (s *InputState) MouseDown(button MouseButton) bool {
	if button < 0 || button >= MouseButtonCount {
		return false
	}
	return s.mouseDown[button]
}

// Buttons returns the held buttons as a mask.
func (s *InputState) Buttons() ButtonMask {
	var m ButtonMask
	for b := MouseButton(0); b < MouseButtonCount; b++ {
		if s.mouseDown[b] {
			m = m.With(b)
		}
	}
	return m
}

// MouseClicked returns true if a mouse button was pressed in the last batch.
func (s *InputState) MouseClicked(button MouseButton) bool {
	if button < 0 || button >= MouseButtonCount {
		return false
	}
	return s.mouseClicked[button]
}

// MouseReleased returns true if a mouse button was released in the last batch.
func (s *InputState) MouseReleased(button MouseButton) bool {
	if button < 0 || button >= MouseButtonCount {
		return false
	}
	return s.mouseUp[button]
}

// QuitRequested reports whether a Quit event has been seen.
func (s *InputState) QuitRequested() bool {
	return s.quit
}
