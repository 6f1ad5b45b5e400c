package gui_test

import (
	"testing"

	"github.com/gooey-ui/gui"
)

func TestLabel_SizesToText(t *testing.T) {
	d, _ := newTestDisplay()
	l := gui.NewLabel(100, 50, gui.LabelConfig{Text: "abc"})
	l.SetDisplay(d)

	if got := l.Area(); got != (gui.Rect{X: 100, Y: 50, W: 21, H: 13}) {
		t.Fatalf("Area = %v", got)
	}

	l.SetText("abcd")
	if got := l.Area(); got != (gui.Rect{X: 100, Y: 50, W: 28, H: 13}) {
		t.Errorf("Area after SetText = %v", got)
	}
	if l.LayoutCount() != 2 {
		t.Errorf("LayoutCount = %d, want 2", l.LayoutCount())
	}
}

func TestLabel_Anchor(t *testing.T) {
	tests := []struct {
		align []gui.Alignment
		want  gui.Vec2
	}{
		{nil, pt(100, 50)},
		{[]gui.Alignment{gui.AlignCenter, gui.AlignMiddle}, pt(90, 44)},
		{[]gui.Alignment{gui.AlignRight, gui.AlignBottom}, pt(79, 37)},
		{[]gui.Alignment{gui.AlignRight}, pt(79, 50)},
	}
	for _, tt := range tests {
		d, _ := newTestDisplay()
		l := gui.NewLabel(100, 50, gui.LabelConfig{Text: "abc", Align: tt.align})
		l.SetDisplay(d)
		if got := l.Area().Pos(); got != tt.want {
			t.Errorf("align %v: pos = %v, want %v", tt.align, got, tt.want)
		}
	}
}

func TestLabel_RealignDoesNotRerender(t *testing.T) {
	d, _ := newTestDisplay()
	l := gui.NewLabel(100, 50, gui.LabelConfig{Text: "abc"})
	l.SetDisplay(d)
	_ = l.Area()

	l.SetTextAlign(gui.AlignRight)
	l.SetAnchor(pt(200, 50))
	if got := l.Area().Pos(); got != pt(179, 50) {
		t.Errorf("pos = %v, want (179,50)", got)
	}
	if l.LayoutCount() != 1 {
		t.Errorf("LayoutCount = %d, want 1", l.LayoutCount())
	}
}

func TestLabel_DefaultText(t *testing.T) {
	l := gui.NewLabel(0, 0, gui.LabelConfig{})
	if l.Text() != "label" {
		t.Errorf("Text = %q, want %q", l.Text(), "label")
	}
}

func TestLabel_DrawAndIgnoreInput(t *testing.T) {
	d, s := newTestDisplay()
	l := gui.NewLabel(3, 4, gui.LabelConfig{Text: "hi"})
	l.SetDisplay(d)

	l.Dispatch([]gui.Event{down(5, 5)})
	l.Draw()
	if len(s.blits) != 1 || s.blits[0].pos != pt(3, 4) {
		t.Errorf("blits = %v", s.blits)
	}
	if s.renders[0].fg != gui.ColorWhite {
		t.Errorf("label colour = %v, want white", s.renders[0].fg)
	}

	s.reset()
	l.Hide()
	l.Draw()
	if len(s.blits) != 0 {
		t.Error("hidden label drew")
	}
}

func TestLabel_Properties(t *testing.T) {
	d, _ := newTestDisplay()
	l := gui.NewLabel(0, 0, gui.LabelConfig{Text: "abc"})
	l.SetDisplay(d)

	if err := l.SetProperty("anchor", []any{10, 20}); err != nil {
		t.Fatal(err)
	}
	if err := l.SetProperty("h_align", "right"); err != nil {
		t.Fatal(err)
	}
	if got := l.Area().Pos(); got != pt(-11, 20) {
		t.Errorf("pos = %v, want (-11,20)", got)
	}
	if err := l.SetProperty("v_align", "left"); err == nil {
		t.Error("expected an error for a horizontal value on v_align")
	}
}
