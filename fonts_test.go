package gui_test

import (
	"slices"
	"testing"

	"golang.org/x/image/font/basicfont"

	"github.com/gooey-ui/gui"
)

func TestFaceFont_Measure(t *testing.T) {
	f := gui.NewFaceFont(gui.DefaultFont, basicfont.Face7x13)

	if got := f.Measure("hello"); got != pt(35, 13) {
		t.Errorf("Measure = %v, want (35,13)", got)
	}
	if f.LineHeight() != 13 || f.Ascent() != 11 {
		t.Errorf("LineHeight = %v Ascent = %v", f.LineHeight(), f.Ascent())
	}
	if f.Ref() != gui.DefaultFont {
		t.Errorf("Ref = %v", f.Ref())
	}
}

func TestFontCache(t *testing.T) {
	c := gui.NewFontCache()

	names := c.Names()
	slices.Sort(names)
	want := []string{gui.FontMono, gui.FontSans, gui.FontSansBold, gui.FontSansItalic}
	if !slices.Equal(names, want) {
		t.Errorf("Names = %v, want %v", names, want)
	}

	f, err := c.LoadFont(gui.DefaultFont)
	if err != nil {
		t.Fatalf("LoadFont: %v", err)
	}
	if f.LineHeight() <= 0 || f.Measure("abc").X <= 0 {
		t.Errorf("sans@16: height %v width %v", f.LineHeight(), f.Measure("abc").X)
	}
	again, _ := c.LoadFont(gui.DefaultFont)
	if again != f {
		t.Error("LoadFont did not reuse the cached face")
	}

	if _, err := c.LoadFont(gui.FontRef{Name: "comic", Size: 12}); err == nil {
		t.Error("expected an error for an unregistered font")
	}
	if _, err := c.LoadFont(gui.FontRef{Name: gui.FontSans, Size: 0}); err == nil {
		t.Error("expected an error for a zero size")
	}

	fb := c.Font(gui.FontRef{Name: "comic", Size: 12})
	if fb.LineHeight() != 13 {
		t.Errorf("fallback LineHeight = %v, want the fixed face", fb.LineHeight())
	}
	if c.Font(gui.FontRef{Name: "comic", Size: 12}) != fb {
		t.Error("fallback was not cached")
	}

	if err := c.RegisterTTF("broken", []byte("not a font")); err == nil {
		t.Error("expected RegisterTTF to reject garbage")
	}
}
