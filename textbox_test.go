package gui_test

import (
	"slices"
	"testing"

	"github.com/gooey-ui/gui"
)

type change struct{ before, after string }

// newActiveTextBox returns a box at (0,0) that has been clicked into.
func newActiveTextBox(t *testing.T, cfg gui.TextBoxConfig) (*gui.TextBox, *gui.Display, *recordingSurface, *[]change) {
	t.Helper()
	var changes []change
	cfg.OnChange = func(_ gui.Component, before, after string) {
		changes = append(changes, change{before, after})
	}
	d, s := newTestDisplay()
	tb := gui.NewTextBox(0, 0, cfg)
	tb.SetDisplay(d)
	dispatch(d, tb, down(10, 10), up(10, 10))
	if tb.State() != gui.EditDirect {
		t.Fatalf("State after click = %v, want direct", tb.State())
	}
	return tb, d, s, &changes
}

func TestTextBox_Defaults(t *testing.T) {
	tb := gui.NewTextBox(1, 2, gui.TextBoxConfig{Text: "seed"})

	if tb.Area() != (gui.Rect{X: 1, Y: 2, W: 200, H: 48}) {
		t.Errorf("Area = %v", tb.Area())
	}
	if tb.Text() != "seed" || tb.CursorPos() != 4 {
		t.Errorf("Text = %q cursor = %d", tb.Text(), tb.CursorPos())
	}
	if tb.Active() || tb.State() != gui.EditInactive {
		t.Errorf("new box is %v", tb.State())
	}
	if tb.Inset() != 25 || tb.CursorColour() != gui.ColorRed {
		t.Errorf("inset = %v cursor colour = %v", tb.Inset(), tb.CursorColour())
	}
}

func TestTextBox_Typing(t *testing.T) {
	tb, d, s, changes := newActiveTextBox(t, gui.TextBoxConfig{})
	if s.inputStarts != 1 {
		t.Errorf("StartTextInput called %d times, want 1", s.inputStarts)
	}

	dispatch(d, tb, gui.TextCommit("hello"))
	dispatch(d, tb, gui.KeyDown(gui.KeyBackspace))
	dispatch(d, tb, gui.KeyDown(gui.KeyHome), gui.KeyDown(gui.KeyDelete))
	dispatch(d, tb, gui.KeyDown(gui.KeyEnd), gui.KeyDown(gui.KeyLeft), gui.TextCommit("X"))
	dispatch(d, tb, gui.KeyDown(gui.KeyRight), gui.KeyDown(gui.KeyRight))

	if tb.Text() != "elXl" {
		t.Errorf("Text = %q, want %q", tb.Text(), "elXl")
	}
	if tb.CursorPos() != 4 {
		t.Errorf("CursorPos = %d, want 4", tb.CursorPos())
	}
	want := []change{{"", "hello"}, {"hello", "hell"}, {"hell", "ell"}, {"ell", "elXl"}}
	if !slices.Equal(*changes, want) {
		t.Errorf("changes = %v, want %v", *changes, want)
	}
}

func TestTextBox_KeysAtTheEdges(t *testing.T) {
	tests := []struct {
		name       string
		keys       []gui.Key
		wantCursor int
	}{
		{"backspace at start", []gui.Key{gui.KeyHome, gui.KeyBackspace}, 0},
		{"delete at end", []gui.Key{gui.KeyEnd, gui.KeyDelete}, 2},
		{"left at start", []gui.Key{gui.KeyHome, gui.KeyLeft}, 0},
		{"right at end", []gui.Key{gui.KeyEnd, gui.KeyRight}, 2},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tb, d, _, changes := newActiveTextBox(t, gui.TextBoxConfig{Text: "ab"})
			for _, k := range tt.keys {
				dispatch(d, tb, gui.KeyDown(k))
			}
			if tb.Text() != "ab" || tb.CursorPos() != tt.wantCursor {
				t.Errorf("Text = %q cursor = %d, want %q and %d", tb.Text(), tb.CursorPos(), "ab", tt.wantCursor)
			}
			if len(*changes) != 0 {
				t.Errorf("changes = %v, want none", *changes)
			}
		})
	}
}

func TestTextBox_OnChangeOncePerBatch(t *testing.T) {
	tb, d, _, changes := newActiveTextBox(t, gui.TextBoxConfig{})

	dispatch(d, tb, gui.TextCommit("a"), gui.TextCommit("b"), gui.TextCommit("c"))
	if !slices.Equal(*changes, []change{{"", "abc"}}) {
		t.Errorf("changes = %v", *changes)
	}

	*changes = nil
	dispatch(d, tb, gui.TextCommit("d"), gui.KeyDown(gui.KeyBackspace))
	if len(*changes) != 0 {
		t.Errorf("a batch that ends where it started reported %v", *changes)
	}

	tb.SetText("set")
	if len(*changes) != 0 {
		t.Errorf("SetText reported %v", *changes)
	}
}

func TestTextBox_MaxLength(t *testing.T) {
	tb, d, _, _ := newActiveTextBox(t, gui.TextBoxConfig{MaxLength: 5})

	dispatch(d, tb, gui.TextCommit("abcdefg"))
	if tb.Text() != "abcde" {
		t.Errorf("Text = %q, want %q", tb.Text(), "abcde")
	}
	dispatch(d, tb, gui.TextCommit("z"))
	if tb.Text() != "abcde" {
		t.Errorf("Text = %q after typing into a full box", tb.Text())
	}

	tb.SetText("héllo wörld")
	if tb.Text() != "héllo" || tb.CursorPos() != 5 {
		t.Errorf("SetText: Text = %q cursor = %d", tb.Text(), tb.CursorPos())
	}
}

func TestTextBox_InactiveIgnoresKeys(t *testing.T) {
	d, s := newTestDisplay()
	tb := gui.NewTextBox(0, 0, gui.TextBoxConfig{Text: "keep"})
	tb.SetDisplay(d)

	dispatch(d, tb, gui.TextCommit("x"), gui.KeyDown(gui.KeyBackspace), gui.CompositionUpdate("ni", 2))
	if tb.Text() != "keep" || tb.State() != gui.EditInactive {
		t.Errorf("inactive box changed: %q %v", tb.Text(), tb.State())
	}
	if s.inputStarts != 0 {
		t.Errorf("StartTextInput called %d times", s.inputStarts)
	}
}

func TestTextBox_ClickOutsideDeactivates(t *testing.T) {
	tb, d, s, _ := newActiveTextBox(t, gui.TextBoxConfig{})

	dispatch(d, tb, gui.CompositionUpdate("ka", 1))
	dispatch(d, tb, down(500, 500))
	if tb.State() != gui.EditInactive {
		t.Errorf("State = %v, want inactive", tb.State())
	}
	if comp, _ := tb.Composition(); comp != "" {
		t.Errorf("composition %q survived deactivation", comp)
	}
	if s.inputStops != 1 {
		t.Errorf("StopTextInput called %d times, want 1", s.inputStops)
	}
}

func TestTextBox_Composition(t *testing.T) {
	tb, d, _, changes := newActiveTextBox(t, gui.TextBoxConfig{Text: "ab"})

	dispatch(d, tb, gui.CompositionUpdate("", 0))
	if tb.State() != gui.EditDirect {
		t.Fatalf("empty composition left direct mode: %v", tb.State())
	}

	dispatch(d, tb, gui.CompositionUpdate("ni", 2))
	if tb.State() != gui.EditComposing {
		t.Fatalf("State = %v, want composing", tb.State())
	}
	if comp, cur := tb.Composition(); comp != "ni" || cur != 2 {
		t.Errorf("Composition = %q, %d", comp, cur)
	}

	dispatch(d, tb, gui.KeyDown(gui.KeyBackspace))
	if tb.Text() != "ab" {
		t.Errorf("key reached the value while composing: %q", tb.Text())
	}

	dispatch(d, tb, gui.CompositionUpdate("nih", 9))
	if _, cur := tb.Composition(); cur != 3 {
		t.Errorf("composition cursor = %d, want clamped to 3", cur)
	}

	dispatch(d, tb, gui.TextCommit("你"))
	if tb.State() != gui.EditDirect {
		t.Errorf("State after commit = %v, want direct", tb.State())
	}
	if tb.Text() != "ab你" || tb.CursorPos() != 3 {
		t.Errorf("Text = %q cursor = %d", tb.Text(), tb.CursorPos())
	}
	if comp, _ := tb.Composition(); comp != "" {
		t.Errorf("composition %q survived the commit", comp)
	}
	if len(*changes) != 1 || (*changes)[0] != (change{"ab", "ab你"}) {
		t.Errorf("changes = %v", *changes)
	}
}

func TestTextBox_CancelledCompositionSwallowsNextKey(t *testing.T) {
	tb, d, _, _ := newActiveTextBox(t, gui.TextBoxConfig{Text: "ab"})

	dispatch(d, tb, gui.CompositionUpdate("k", 1))
	dispatch(d, tb, gui.CompositionUpdate("", 0))
	if tb.State() != gui.EditComposing {
		t.Fatalf("State = %v, want composing until the next key", tb.State())
	}

	dispatch(d, tb, gui.KeyDown(gui.KeyLeft))
	if tb.State() != gui.EditDirect {
		t.Errorf("State = %v, want direct", tb.State())
	}
	if tb.CursorPos() != 2 {
		t.Errorf("the key that ended composition moved the cursor to %d", tb.CursorPos())
	}

	dispatch(d, tb, gui.KeyDown(gui.KeyLeft))
	if tb.CursorPos() != 1 {
		t.Errorf("CursorPos = %d, want 1", tb.CursorPos())
	}
}

func TestTextBox_EnterStopsInput(t *testing.T) {
	tb, d, s, _ := newActiveTextBox(t, gui.TextBoxConfig{})

	dispatch(d, tb, gui.TextCommit("ok"), gui.KeyDown(gui.KeyEnter))
	if s.inputStops != 1 {
		t.Errorf("StopTextInput called %d times, want 1", s.inputStops)
	}
	if !tb.Active() {
		t.Error("Enter deactivated the box")
	}

	dispatch(d, tb, gui.TextCommit("!"))
	if s.inputStarts != 2 {
		t.Errorf("StartTextInput called %d times, want 2", s.inputStarts)
	}
	if tb.Text() != "ok!" {
		t.Errorf("Text = %q", tb.Text())
	}
	if s.inputRect != tb.Area() {
		t.Errorf("input rect = %v, want the box area", s.inputRect)
	}
}

func TestTextBox_DrawSegments(t *testing.T) {
	d, s := newTestDisplay()
	tb := gui.NewTextBox(0, 0, gui.TextBoxConfig{Text: "ab"})
	tb.SetDisplay(d)

	tb.Draw()
	if got := s.renderedTexts(); !slices.Equal(got, []string{"ab"}) {
		t.Errorf("inactive segments = %q", got)
	}
	if len(s.blits) != 1 || s.blits[0].pos != pt(25, 18) {
		t.Errorf("blits = %v, want text at (25,18)", s.blits)
	}

	s.reset()
	dispatch(d, tb, down(10, 10), gui.KeyDown(gui.KeyLeft))
	tb.Draw()
	if got := s.renderedTexts(); !slices.Equal(got, []string{"a", "|", "b"}) {
		t.Errorf("direct segments = %q", got)
	}
	if s.renders[1].fg != gui.ColorRed || !s.renders[1].style.Has(gui.TextStrong) {
		t.Errorf("cursor segment = %+v", s.renders[1])
	}
	if s.blits[1].pos.X != 32 || s.blits[2].pos.X != 39 {
		t.Errorf("segment x = %v, %v", s.blits[1].pos.X, s.blits[2].pos.X)
	}

	s.reset()
	dispatch(d, tb, gui.CompositionUpdate("xy", 1))
	tb.Draw()
	if got := s.renderedTexts(); !slices.Equal(got, []string{"a", "x", "|", "y", "b"}) {
		t.Errorf("composing segments = %q", got)
	}
	if !s.renders[1].style.Has(gui.TextUnderline) || s.renders[2].style.Has(gui.TextStrong) {
		t.Errorf("composing styles = %v, %v", s.renders[1].style, s.renders[2].style)
	}
}

func TestTextBox_SegmentCache(t *testing.T) {
	tb, d, s, _ := newActiveTextBox(t, gui.TextBoxConfig{Text: "ab"})

	tb.Draw()
	tb.Draw()
	if tb.SegmentCount() != 1 {
		t.Errorf("SegmentCount = %d after two draws, want 1", tb.SegmentCount())
	}

	dispatch(d, tb, gui.TextCommit("c"))
	tb.Draw()
	if tb.SegmentCount() != 2 {
		t.Errorf("SegmentCount = %d after an edit, want 2", tb.SegmentCount())
	}

	tb.SetCursorColour(gui.ColorBlue)
	tb.Draw()
	if tb.SegmentCount() != 3 {
		t.Errorf("SegmentCount = %d after a style change, want 3", tb.SegmentCount())
	}
	if n := len(s.renders); n != 6 {
		t.Errorf("surface rendered %d runs, want 6", n)
	}
}

func TestTextBox_StyleSettersOnlyInvalidateSegments(t *testing.T) {
	tb, _, s, _ := newActiveTextBox(t, gui.TextBoxConfig{Text: "ab"})
	tb.Draw()
	s.reset()

	tb.SetColour(gui.ColorBlue)
	tb.SetBackground(gui.ColorGreen)
	tb.SetFont(gui.FontRef{Name: gui.FontMono, Size: 20})
	if len(s.renders) != 0 {
		t.Errorf("style setters rendered %q", s.renderedTexts())
	}
	if tb.LayoutCount() != 0 {
		t.Errorf("LayoutCount = %d, want 0", tb.LayoutCount())
	}

	tb.Draw()
	if got := s.renderedTexts(); !slices.Equal(got, []string{"ab", "|"}) {
		t.Fatalf("segments = %q", got)
	}
	if s.renders[0].fg != gui.ColorBlue || s.renders[0].bg != gui.ColorGreen {
		t.Errorf("value segment = %+v, want blue on green", s.renders[0])
	}
	if tb.SegmentCount() != 2 {
		t.Errorf("SegmentCount = %d, want 2", tb.SegmentCount())
	}
}

func TestTextBox_Properties(t *testing.T) {
	tb := gui.NewTextBox(0, 0, gui.TextBoxConfig{})

	called := false
	if err := tb.SetProperty("on_change", gui.ChangeFunc(func(gui.Component, string, string) { called = true })); err != nil {
		t.Fatal(err)
	}
	if err := tb.SetProperty("max_length", 3); err != nil {
		t.Fatal(err)
	}
	if err := tb.SetProperty("text", "abcdef"); err != nil {
		t.Fatal(err)
	}
	if err := tb.SetProperty("inset", 10); err != nil {
		t.Fatal(err)
	}
	if tb.Text() != "abc" || tb.MaxLength() != 3 || tb.Inset() != 10 {
		t.Errorf("text = %q max = %d inset = %v", tb.Text(), tb.MaxLength(), tb.Inset())
	}
	if called {
		t.Error("SetProperty text fired OnChange")
	}
	if err := tb.SetProperty("max_length", "3"); err == nil {
		t.Error("expected a type error for a string max_length")
	}
}
