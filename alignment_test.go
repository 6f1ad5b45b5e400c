package gui_test

import (
	"errors"
	"testing"

	"github.com/gooey-ui/gui"
)

func TestAlign_RoutesValuesToTheirAxis(t *testing.T) {
	a := gui.DefaultAlign.With(gui.AlignBottom, gui.AlignRight)
	if a != (gui.Align{H: gui.AlignRight, V: gui.AlignBottom}) {
		t.Fatalf("With = %v", a)
	}

	if a.SetH(gui.AlignTop) {
		t.Error("SetH accepted a vertical value")
	}
	if a.SetV(gui.AlignLeft) {
		t.Error("SetV accepted a horizontal value")
	}
	if a.H != gui.AlignRight || a.V != gui.AlignBottom {
		t.Errorf("rejected values changed the alignment: %v", a)
	}

	a.Set(gui.Alignment(42), gui.AlignLeft)
	if a.H != gui.AlignLeft {
		t.Errorf("H = %v, want left", a.H)
	}
}

func TestParseAlignment(t *testing.T) {
	for _, name := range []string{"left", "center", "centre", "right", "top", "middle", "bottom"} {
		if _, ok := gui.ParseAlignment(name); !ok {
			t.Errorf("ParseAlignment(%q) failed", name)
		}
	}
	if _, ok := gui.ParseAlignment("diagonal"); ok {
		t.Error("ParseAlignment accepted an unknown name")
	}
}

// The 7x13 face makes "OK" 14x13. A 100x100 panel has margin 4.
func TestControl_TextPlacement(t *testing.T) {
	tests := []struct {
		align []gui.Alignment
		want  gui.Vec2
	}{
		{nil, pt(43, 44)},
		{[]gui.Alignment{gui.AlignLeft, gui.AlignTop}, pt(4, 4)},
		{[]gui.Alignment{gui.AlignRight, gui.AlignBottom}, pt(82, 83)},
		{[]gui.Alignment{gui.AlignLeft}, pt(4, 44)},
		{[]gui.Alignment{gui.AlignBottom}, pt(43, 83)},
		{[]gui.Alignment{gui.AlignRight, gui.AlignMiddle}, pt(82, 44)},
	}
	for _, tt := range tests {
		d, _ := newTestDisplay()
		p := gui.NewPanel(0, 0, gui.PanelConfig{Text: "OK", Width: 100, Height: 100})
		p.SetDisplay(d)
		p.SetTextAlign(tt.align...)

		box := p.TextBox()
		if box.Pos() != tt.want {
			t.Errorf("align %v: text at %v, want %v", tt.align, box.Pos(), tt.want)
		}
		if box.Size() != pt(14, 13) {
			t.Errorf("align %v: text size %v", tt.align, box.Size())
		}
	}
}

func TestControl_AlignPropertyChecksAxis(t *testing.T) {
	p := gui.NewPanel(0, 0, gui.PanelConfig{})

	if err := p.SetProperty("h_align", "top"); !errors.Is(err, gui.ErrInvalidAlignmentAxis) {
		t.Errorf("h_align top: err = %v, want ErrInvalidAlignmentAxis", err)
	}
	if err := p.SetProperty("v_align", "bottom"); err != nil {
		t.Fatalf("v_align bottom: %v", err)
	}
	if err := p.SetProperty("align", "right"); err != nil {
		t.Fatalf("align right: %v", err)
	}
	if got := p.TextAlign(); got != (gui.Align{H: gui.AlignRight, V: gui.AlignBottom}) {
		t.Errorf("TextAlign = %v", got)
	}
	if err := p.SetProperty("align", 3.5); !errors.Is(err, gui.ErrTypeMismatch) {
		t.Errorf("align 3.5: err = %v, want ErrTypeMismatch", err)
	}
}
