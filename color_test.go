package gui_test

import (
	"errors"
	"image/color"
	"testing"

	"github.com/gooey-ui/gui"
)

func TestParseColor(t *testing.T) {
	tests := []struct {
		in   any
		want gui.Color
	}{
		{"red", gui.ColorRed},
		{"Dark Slate Grey", gui.RGBA(47, 79, 79, 255)},
		{"grey", gui.ColorGrey},
		{"transparent", gui.ColorTransparent},
		{"#0f0", gui.ColorGreen},
		{"#0000ff", gui.ColorBlue},
		{"#ffffff80", gui.RGBA(255, 255, 255, 128)},
		{"0xC0C0C0FF", gui.ColorSilver},
		{[]any{1, 2, 3}, gui.RGBA(1, 2, 3, 255)},
		{[4]int{1, 2, 3, 4}, gui.RGBA(1, 2, 3, 4)},
		{[]uint8{9, 8, 7}, gui.RGBA(9, 8, 7, 255)},
		{0xFF000080, gui.RGBA(255, 0, 0, 128)},
		{color.NRGBA{R: 10, G: 20, B: 30, A: 255}, gui.RGBA(10, 20, 30, 255)},
		{gui.ColorYellow, gui.ColorYellow},
	}
	for _, tt := range tests {
		got, err := gui.ParseColor(tt.in)
		if err != nil {
			t.Errorf("ParseColor(%v): %v", tt.in, err)
			continue
		}
		if got != tt.want {
			t.Errorf("ParseColor(%v) = %v, want %v", tt.in, got, tt.want)
		}
	}
}

func TestParseColor_Invalid(t *testing.T) {
	for _, in := range []any{"nocolour", "#12", "#gggggg", []int{1, 2}, []any{1, "x", 3}, [3]int{0, 300, 0}, -1, 1.5, nil} {
		if _, err := gui.ParseColor(in); !errors.Is(err, gui.ErrInvalidColor) {
			t.Errorf("ParseColor(%v): err = %v, want ErrInvalidColor", in, err)
		}
	}
}

func TestColor_Packing(t *testing.T) {
	c := gui.RGBA(0x11, 0x22, 0x33, 0x44)
	if uint32(c) != 0x44332211 {
		t.Errorf("packed = %#x, want 0x44332211", uint32(c))
	}
	if r, g, b, a := c.Unpack(); r != 0x11 || g != 0x22 || b != 0x33 || a != 0x44 {
		t.Errorf("Unpack = %x %x %x %x", r, g, b, a)
	}
	if c.String() != "#11223344" {
		t.Errorf("String = %q", c.String())
	}
	if gui.FromColor(c.NRGBA()) != c {
		t.Error("NRGBA round trip changed the colour")
	}
}
