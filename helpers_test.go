package gui_test

import (
	"io"
	"log/slog"

	"golang.org/x/image/font/basicfont"

	"github.com/gooey-ui/gui"
)

// recordingSurface records every drawing call instead of drawing.
// Text is measured with basicfont.Face7x13: 7 pixels per rune, 13 high.
type recordingSurface struct {
	fills   []fillCall
	strokes []fillCall
	renders []renderCall
	blits   []blitCall

	inputStarts int
	inputStops  int
	inputRect   gui.Rect
}

type fillCall struct {
	r      gui.Rect
	c      gui.Color
	radius float32
}

type renderCall struct {
	text   string
	fg, bg gui.Color
	style  gui.TextStyle
}

type blitCall struct {
	text string
	pos  gui.Vec2
}

type fakeGlyph struct {
	text string
	size gui.Vec2
}

func (g *fakeGlyph) Size() gui.Vec2 { return g.size }

func (s *recordingSurface) FillRect(r gui.Rect, c gui.Color, radius float32) {
	s.fills = append(s.fills, fillCall{r: r, c: c, radius: radius})
}

func (s *recordingSurface) StrokeRect(r gui.Rect, c gui.Color, width, radius float32) {
	s.strokes = append(s.strokes, fillCall{r: r, c: c, radius: radius})
}

func (s *recordingSurface) RenderText(text string, fg, bg gui.Color, f gui.Font, style gui.TextStyle) (gui.Glyph, gui.Rect) {
	s.renders = append(s.renders, renderCall{text: text, fg: fg, bg: bg, style: style})
	size := f.Measure(text)
	return &fakeGlyph{text: text, size: size}, gui.Rect{W: size.X, H: size.Y}
}

func (s *recordingSurface) Blit(g gui.Glyph, pos gui.Vec2) {
	s.blits = append(s.blits, blitCall{text: g.(*fakeGlyph).text, pos: pos})
}

func (s *recordingSurface) StartTextInput(r gui.Rect) {
	s.inputStarts++
	s.inputRect = r
}

func (s *recordingSurface) StopTextInput() {
	s.inputStops++
}

func (s *recordingSurface) reset() {
	s.fills = nil
	s.strokes = nil
	s.renders = nil
	s.blits = nil
}

func (s *recordingSurface) renderedTexts() []string {
	out := make([]string, len(s.renders))
	for i, r := range s.renders {
		out[i] = r.text
	}
	return out
}

// fixedFonts resolves every reference to the 7x13 bitmap face.
type fixedFonts struct{}

func (fixedFonts) Font(ref gui.FontRef) gui.Font {
	return gui.NewFaceFont(ref, basicfont.Face7x13)
}

func newTestDisplay() (*gui.Display, *recordingSurface) {
	s := &recordingSurface{}
	return gui.NewDisplay(s, fixedFonts{}), s
}

// dispatch folds events into the display's input state, then dispatches.
func dispatch(d *gui.Display, c gui.Component, events ...gui.Event) {
	d.Input.Apply(events)
	c.Dispatch(events)
}

// fakeBackend is a scripted gui.Backend.
type fakeBackend struct {
	recordingSurface

	polls      [][]gui.Event
	presents   int
	presentErr error
}

func (b *fakeBackend) Poll() []gui.Event {
	if len(b.polls) == 0 {
		return nil
	}
	next := b.polls[0]
	b.polls = b.polls[1:]
	return next
}

func (b *fakeBackend) Present() error {
	b.presents++
	return b.presentErr
}

func quietLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func pt(x, y float32) gui.Vec2 { return gui.Vec2{X: x, Y: y} }

func down(x, y float32) gui.Event { return gui.PointerDown(pt(x, y), gui.MouseButtonLeft) }

func up(x, y float32) gui.Event { return gui.PointerUp(pt(x, y), gui.MouseButtonLeft) }

func move(x, y float32) gui.Event { return gui.PointerMove(pt(x, y), gui.Vec2{}, 0) }
