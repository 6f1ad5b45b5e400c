package gui

import (
	"fmt"
	"image/color"
	"strconv"
	"strings"

	"golang.org/x/image/colornames"
)

// Color is an RGBA colour packed as 0xAABBGGRR for OpenGL compatibility.
// It implements color.Color so it can be handed to image/draw directly.
type Color uint32

// Palette used by the widget defaults.
const (
	ColorBlack       Color = 0xFF000000
	ColorRed         Color = 0xFF0000FF
	ColorGreen       Color = 0xFF00FF00
	ColorBlue        Color = 0xFFFF0000
	ColorYellow      Color = 0xFF00FFFF
	ColorCyan        Color = 0xFFFFFF00
	ColorMagenta     Color = 0xFFFF00FF
	ColorWhite       Color = 0xFFFFFFFF
	ColorGrey        Color = 0xFF808080
	ColorSilver      Color = 0xFFC0C0C0
	ColorTransparent Color = 0x00000000
)

// RGBA creates a packed color from individual components (0-255).
func RGBA(r, g, b, a uint8) Color {
	return Color(uint32(a)<<24 | uint32(b)<<16 | uint32(g)<<8 | uint32(r))
}

// RGBAf creates a packed color from float components (0.0-1.0).
func RGBAf(r, g, b, a float32) Color {
	return RGBA(
		uint8(clampf(r, 0, 1)*255),
		uint8(clampf(g, 0, 1)*255),
		uint8(clampf(b, 0, 1)*255),
		uint8(clampf(a, 0, 1)*255),
	)
}

// Unpack extracts the straight (non-premultiplied) components.
func (c Color) Unpack() (r, g, b, a uint8) {
	return uint8(c), uint8(c >> 8), uint8(c >> 16), uint8(c >> 24)
}

// Alpha returns the alpha component.
func (c Color) Alpha() uint8 { return uint8(c >> 24) }

// RGBA implements color.Color (alpha-premultiplied, 16 bits per channel).
func (c Color) RGBA() (r, g, b, a uint32) {
	nr, ng, nb, na := c.Unpack()
	return color.NRGBA{R: nr, G: ng, B: nb, A: na}.RGBA()
}

// NRGBA converts to the standard library's non-premultiplied colour.
func (c Color) NRGBA() color.NRGBA {
	r, g, b, a := c.Unpack()
	return color.NRGBA{R: r, G: g, B: b, A: a}
}

// String formats the colour as #rrggbbaa.
func (c Color) String() string {
	r, g, b, a := c.Unpack()
	return fmt.Sprintf("#%02x%02x%02x%02x", r, g, b, a)
}

// FromColor converts any color.Color into a packed Color.
func FromColor(c color.Color) Color {
	if pc, ok := c.(Color); ok {
		return pc
	}
	n := color.NRGBAModel.Convert(c).(color.NRGBA)
	return RGBA(n.R, n.G, n.B, n.A)
}

// ParseColor accepts any of the supported colour spellings and returns the
// packed colour:
//
//   - a Color or any color.Color
//   - a colour name ("silver", "Dark Slate Grey"); SVG 1.1 names are known
//   - "#rgb", "#rrggbb" or "#rrggbbaa"
//   - an RGB or RGBA tuple: [3]int, [4]int, []int, []uint8 or []any of integers
//   - an integer laid out as 0xRRGGBBAA
//
// Anything else fails with an error wrapping ErrInvalidColor.
func ParseColor(v any) (Color, error) {
	switch val := v.(type) {
	case Color:
		return val, nil
	case color.Color:
		return FromColor(val), nil
	case string:
		return parseColorString(val)
	case [3]int:
		return colorFromInts(val[:])
	case [4]int:
		return colorFromInts(val[:])
	case []int:
		return colorFromInts(val)
	case []uint8:
		ints := make([]int, len(val))
		for i, b := range val {
			ints[i] = int(b)
		}
		return colorFromInts(ints)
	case []any:
		ints := make([]int, len(val))
		for i, e := range val {
			n, ok := e.(int)
			if !ok {
				return 0, fmt.Errorf("%w: component %d is %T", ErrInvalidColor, i, e)
			}
			ints[i] = n
		}
		return colorFromInts(ints)
	case int:
		if val < 0 || int64(val) > 0xFFFFFFFF {
			return 0, fmt.Errorf("%w: %d out of range", ErrInvalidColor, val)
		}
		return colorFromUint(uint32(val)), nil
	case uint32:
		return colorFromUint(val), nil
	default:
		return 0, fmt.Errorf("%w: unsupported type %T", ErrInvalidColor, v)
	}
}

// MustParseColor is like ParseColor but panics on error.
// Intended for package-level defaults and tests.
func MustParseColor(v any) Color {
	c, err := ParseColor(v)
	if err != nil {
		panic(err)
	}
	return c
}

func colorFromUint(v uint32) Color {
	return RGBA(uint8(v>>24), uint8(v>>16), uint8(v>>8), uint8(v))
}

func colorFromInts(c []int) (Color, error) {
	if len(c) != 3 && len(c) != 4 {
		return 0, fmt.Errorf("%w: need 3 or 4 components, got %d", ErrInvalidColor, len(c))
	}
	for i, n := range c {
		if n < 0 || n > 255 {
			return 0, fmt.Errorf("%w: component %d = %d", ErrInvalidColor, i, n)
		}
	}
	a := 255
	if len(c) == 4 {
		a = c[3]
	}
	return RGBA(uint8(c[0]), uint8(c[1]), uint8(c[2]), uint8(a)), nil
}

func parseColorString(s string) (Color, error) {
	trimmed := strings.TrimSpace(s)
	if strings.HasPrefix(trimmed, "#") {
		return parseHexColor(trimmed[1:], s)
	}
	if strings.HasPrefix(trimmed, "0x") || strings.HasPrefix(trimmed, "0X") {
		n, err := strconv.ParseUint(trimmed[2:], 16, 32)
		if err != nil {
			return 0, fmt.Errorf("%w: %q", ErrInvalidColor, s)
		}
		return colorFromUint(uint32(n)), nil
	}

	key := strings.ToLower(strings.ReplaceAll(trimmed, " ", ""))
	switch key {
	case "transparent":
		return ColorTransparent, nil
	case "grey":
		// colornames spells it "gray" at 0x808080 as well; keep the palette value.
		return ColorGrey, nil
	}
	if rgba, ok := colornames.Map[strings.ReplaceAll(key, "grey", "gray")]; ok {
		return RGBA(rgba.R, rgba.G, rgba.B, rgba.A), nil
	}
	return 0, fmt.Errorf("%w: unknown colour name %q", ErrInvalidColor, s)
}

func parseHexColor(hex, orig string) (Color, error) {
	switch len(hex) {
	case 3:
		hex = string([]byte{hex[0], hex[0], hex[1], hex[1], hex[2], hex[2]}) + "ff"
	case 6:
		hex += "ff"
	case 8:
	default:
		return 0, fmt.Errorf("%w: %q", ErrInvalidColor, orig)
	}
	n, err := strconv.ParseUint(hex, 16, 32)
	if err != nil {
		return 0, fmt.Errorf("%w: %q", ErrInvalidColor, orig)
	}
	return colorFromUint(uint32(n)), nil
}
