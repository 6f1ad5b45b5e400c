package gui

import "testing"

func TestApplyOptions_Defaults(t *testing.T) {
	o := applyOptions(nil)

	if o.fonts != nil {
		t.Error("applyOptions loaded a font cache nobody asked for")
	}
	if o.namer == nil || o.logger == nil {
		t.Error("namer or logger left unset")
	}
	if o.fps != DefaultFPS || o.size != (Vec2{X: DefaultWidth, Y: DefaultHeight}) {
		t.Errorf("fps = %d size = %v", o.fps, o.size)
	}

	o = applyOptions([]Option{WithFPS(0), nil, WithFPS(25)})
	if o.fps != 25 || o.frameInterval().Milliseconds() != 40 {
		t.Errorf("fps = %d interval = %v", o.fps, o.frameInterval())
	}
}

type nullSurface struct{}

func (nullSurface) FillRect(Rect, Color, float32) {}
func (nullSurface) StrokeRect(Rect, Color, float32, float32) {}
func (nullSurface) Blit(Glyph, Vec2) {}
func (nullSurface) RenderText(string, Color, Color, Font, TextStyle) (Glyph, Rect) {
	return nil, Rect{}
}

type nullBackend struct{ nullSurface }

func (nullBackend) Poll() []Event { return nil }
func (nullBackend) Present() error { return nil }

func TestNewWindow_LoadsFontCacheOnlyWhenMissing(t *testing.T) {
	w := NewWindow(nullBackend{})
	if _, ok := w.Display().Fonts.(*FontCache); !ok {
		t.Errorf("Fonts = %T, want the built-in *FontCache", w.Display().Fonts)
	}

	fc := NewFontCache()
	w = NewWindow(nullBackend{}, WithFonts(fc))
	if w.Display().Fonts != FontSource(fc) {
		t.Error("WithFonts was not used")
	}
}
