package gui

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"
)

// Theme holds the defaults a Factory applies to the widgets it builds.
type Theme struct {
	// Font
	Font FontRef

	// Window
	WindowBackground Color

	// Panel
	PanelBackground Color
	PanelText       Color
	PanelBorder     Color
	PanelBorderOn   bool
	PanelMargin     float32
	PanelRadius     float32
	PanelSize       Vec2

	// Button
	ButtonColour Color
	HoverColour  Color
	ClickColour  Color
	ButtonText   Color
	ButtonRadius float32
	ButtonSize   Vec2

	// Label
	LabelText       Color
	LabelBackground Color
	LabelDefault    string

	// TextBox
	TextBoxBackground Color
	TextBoxText       Color
	TextBoxBorder     Color
	TextBoxCursor     Color
	TextBoxSize       Vec2
	TextBoxInset      float32
}

// DefaultTheme returns the stock look: silver panels and buttons with
// black text, white text boxes with a red cursor.
func DefaultTheme() Theme {
	return Theme{
		Font: DefaultFont,

		WindowBackground: ColorBlack,

		PanelBackground: ColorSilver,
		PanelText:       ColorBlack,
		PanelBorder:     ColorBlack,
		PanelBorderOn:   true,
		PanelMargin:     4,
		PanelRadius:     0,
		PanelSize:       Vec2{X: 100, Y: 100},

		ButtonColour: ColorSilver,
		HoverColour:  ColorGrey,
		ClickColour:  ColorWhite,
		ButtonText:   ColorBlack,
		ButtonRadius: 4,
		ButtonSize:   Vec2{X: 60, Y: 30},

		LabelText:       ColorWhite,
		LabelBackground: ColorTransparent,
		LabelDefault:    "label",

		TextBoxBackground: ColorWhite,
		TextBoxText:       ColorBlack,
		TextBoxBorder:     ColorBlack,
		TextBoxCursor:     ColorRed,
		TextBoxSize:       Vec2{X: 200, Y: 48},
		TextBoxInset:      25,
	}
}

// DarkTheme returns a dark variant of the default theme.
func DarkTheme() Theme {
	t := DefaultTheme()
	t.WindowBackground = RGBA(20, 20, 20, 255)
	t.PanelBackground = RGBA(45, 45, 45, 255)
	t.PanelText = ColorWhite
	t.PanelBorder = RGBA(80, 80, 80, 255)
	t.ButtonColour = RGBA(50, 50, 50, 255)
	t.HoverColour = RGBA(70, 70, 70, 255)
	t.ClickColour = RGBA(90, 90, 90, 255)
	t.ButtonText = ColorWhite
	t.TextBoxBackground = RGBA(30, 30, 30, 255)
	t.TextBoxText = ColorWhite
	t.TextBoxBorder = RGBA(100, 100, 100, 255)
	return t
}

// themeFile is the YAML layout of a theme. Absent keys keep the default.
type themeFile struct {
	Font     *string  `yaml:"font"`
	FontSize *float32 `yaml:"font_size"`

	WindowBackground any `yaml:"window_background"`

	PanelBackground any       `yaml:"panel_background"`
	PanelText       any       `yaml:"panel_text"`
	PanelBorder     any       `yaml:"panel_border"`
	PanelBorderOn   *bool     `yaml:"panel_border_on"`
	PanelMargin     *float32  `yaml:"panel_margin"`
	PanelRadius     *float32  `yaml:"panel_radius"`
	PanelSize       *sizeYAML `yaml:"panel_size"`

	ButtonColour any       `yaml:"button_colour"`
	HoverColour  any       `yaml:"hover_colour"`
	ClickColour  any       `yaml:"click_colour"`
	ButtonText   any       `yaml:"button_text"`
	ButtonRadius *float32  `yaml:"button_radius"`
	ButtonSize   *sizeYAML `yaml:"button_size"`

	LabelText       any     `yaml:"label_text"`
	LabelBackground any     `yaml:"label_background"`
	LabelDefault    *string `yaml:"label_default"`

	TextBoxBackground any       `yaml:"textbox_background"`
	TextBoxText       any       `yaml:"textbox_text"`
	TextBoxBorder     any       `yaml:"textbox_border"`
	TextBoxCursor     any       `yaml:"textbox_cursor"`
	TextBoxSize       *sizeYAML `yaml:"textbox_size"`
	TextBoxInset      *float32  `yaml:"textbox_inset"`
}

type sizeYAML struct {
	Width  float32 `yaml:"width"`
	Height float32 `yaml:"height"`
}

func (s *sizeYAML) vec() Vec2 { return Vec2{X: s.Width, Y: s.Height} }

// LoadTheme reads a YAML theme, overlaying it on DefaultTheme.
// Colour values accept anything ParseColor does.
func LoadTheme(r io.Reader) (Theme, error) {
	t := DefaultTheme()

	var f themeFile
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&f); err != nil && !errors.Is(err, io.EOF) {
		return t, fmt.Errorf("failed to parse theme: %w", err)
	}

	if f.Font != nil {
		t.Font.Name = *f.Font
	}
	if f.FontSize != nil {
		t.Font.Size = *f.FontSize
	}

	colours := []struct {
		key string
		src any
		dst *Color
	}{
		{"window_background", f.WindowBackground, &t.WindowBackground},
		{"panel_background", f.PanelBackground, &t.PanelBackground},
		{"panel_text", f.PanelText, &t.PanelText},
		{"panel_border", f.PanelBorder, &t.PanelBorder},
		{"button_colour", f.ButtonColour, &t.ButtonColour},
		{"hover_colour", f.HoverColour, &t.HoverColour},
		{"click_colour", f.ClickColour, &t.ClickColour},
		{"button_text", f.ButtonText, &t.ButtonText},
		{"label_text", f.LabelText, &t.LabelText},
		{"label_background", f.LabelBackground, &t.LabelBackground},
		{"textbox_background", f.TextBoxBackground, &t.TextBoxBackground},
		{"textbox_text", f.TextBoxText, &t.TextBoxText},
		{"textbox_border", f.TextBoxBorder, &t.TextBoxBorder},
		{"textbox_cursor", f.TextBoxCursor, &t.TextBoxCursor},
	}
	for _, c := range colours {
		if c.src == nil {
			continue
		}
		col, err := ParseColor(c.src)
		if err != nil {
			return t, fmt.Errorf("theme %s: %w", c.key, err)
		}
		*c.dst = col
	}

	if f.PanelBorderOn != nil {
		t.PanelBorderOn = *f.PanelBorderOn
	}
	if f.PanelMargin != nil {
		t.PanelMargin = *f.PanelMargin
	}
	if f.PanelRadius != nil {
		t.PanelRadius = *f.PanelRadius
	}
	if f.PanelSize != nil {
		t.PanelSize = f.PanelSize.vec()
	}
	if f.ButtonRadius != nil {
		t.ButtonRadius = *f.ButtonRadius
	}
	if f.ButtonSize != nil {
		t.ButtonSize = f.ButtonSize.vec()
	}
	if f.LabelDefault != nil {
		t.LabelDefault = *f.LabelDefault
	}
	if f.TextBoxSize != nil {
		t.TextBoxSize = f.TextBoxSize.vec()
	}
	if f.TextBoxInset != nil {
		t.TextBoxInset = *f.TextBoxInset
	}
	return t, nil
}

// LoadThemeFile reads a YAML theme from path.
func LoadThemeFile(path string) (Theme, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Theme{}, fmt.Errorf("failed to read theme file: %w", err)
	}
	return LoadTheme(bytes.NewReader(data))
}
