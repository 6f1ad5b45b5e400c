package gui_test

import (
	"errors"
	"strings"
	"testing"

	"github.com/gooey-ui/gui"
)

func TestLoadTheme(t *testing.T) {
	src := `
font: mono
font_size: 20
panel_background: "#ff0000"
hover_colour: navy
click_colour: [0, 255, 0]
panel_border_on: false
button_size:
  width: 80
  height: 40
textbox_inset: 12
`
	th, err := gui.LoadTheme(strings.NewReader(src))
	if err != nil {
		t.Fatalf("LoadTheme: %v", err)
	}

	if th.Font != (gui.FontRef{Name: gui.FontMono, Size: 20}) {
		t.Errorf("Font = %v", th.Font)
	}
	if th.PanelBackground != gui.ColorRed {
		t.Errorf("PanelBackground = %v", th.PanelBackground)
	}
	if th.HoverColour != gui.RGBA(0, 0, 128, 255) {
		t.Errorf("HoverColour = %v", th.HoverColour)
	}
	if th.ClickColour != gui.ColorGreen {
		t.Errorf("ClickColour = %v", th.ClickColour)
	}
	if th.PanelBorderOn {
		t.Error("PanelBorderOn should be false")
	}
	if th.ButtonSize != pt(80, 40) {
		t.Errorf("ButtonSize = %v", th.ButtonSize)
	}
	if th.TextBoxInset != 12 {
		t.Errorf("TextBoxInset = %v", th.TextBoxInset)
	}

	def := gui.DefaultTheme()
	if th.ButtonColour != def.ButtonColour || th.TextBoxSize != def.TextBoxSize {
		t.Error("keys absent from the file should keep their defaults")
	}
}

func TestLoadTheme_Empty(t *testing.T) {
	th, err := gui.LoadTheme(strings.NewReader(""))
	if err != nil {
		t.Fatalf("LoadTheme: %v", err)
	}
	if th != gui.DefaultTheme() {
		t.Error("an empty file should give the default theme")
	}
}

func TestLoadTheme_Errors(t *testing.T) {
	_, err := gui.LoadTheme(strings.NewReader("panel_colour: red\n"))
	if err == nil || !strings.Contains(err.Error(), "failed to parse theme") {
		t.Errorf("unknown key: err = %v", err)
	}

	_, err = gui.LoadTheme(strings.NewReader("panel_text: \"#12\"\n"))
	if !errors.Is(err, gui.ErrInvalidColor) {
		t.Errorf("bad colour: err = %v, want ErrInvalidColor", err)
	}
	if err != nil && !strings.Contains(err.Error(), "panel_text") {
		t.Errorf("error %q does not name the key", err)
	}
}

func TestFactory_AppliesTheme(t *testing.T) {
	dark := gui.DarkTheme()
	f := gui.NewFactory(gui.WithTheme(dark))

	p := f.Panel(0, 0, gui.PanelConfig{})
	if p.Background() != dark.PanelBackground || p.Colour() != dark.PanelText {
		t.Errorf("panel colours = %v on %v", p.Colour(), p.Background())
	}
	b := f.Button(0, 0, gui.ButtonConfig{})
	if b.ButtonColour() != dark.ButtonColour || b.Colour() != dark.ButtonText {
		t.Errorf("button colours = %v on %v", b.Colour(), b.ButtonColour())
	}
	tb := f.TextBox(0, 0, gui.TextBoxConfig{})
	if tb.Background() != dark.TextBoxBackground {
		t.Errorf("textbox background = %v", tb.Background())
	}
}
