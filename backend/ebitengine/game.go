// Package ebitengine runs a gui.Window inside an Ebitengine game loop.
//
// Ebitengine owns the loop, so instead of Window.Run use:
//
//	g := ebitengine.New(800, 600)
//	w := gui.NewWindow(g, gui.WithSize(800, 600))
//	// build the tree on w
//	err := ebitengine.Run(ctx, w, g, "title")
package ebitengine

import (
	"context"
	"fmt"
	"image"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/gooey-ui/gui"
	"github.com/gooey-ui/gui/backend/raster"
)

// kappa places cubic control points so four curves approximate a circle.
const kappa = 0.5522847

var (
	whiteImage    = ebiten.NewImage(3, 3)
	whiteSubImage = whiteImage.SubImage(image.Rect(1, 1, 2, 2)).(*ebiten.Image)
)

func init() {
	whiteImage.Fill(color.White)
}

// glyph is a text image uploaded to Ebitengine.
type glyph struct {
	img  *ebiten.Image
	size gui.Vec2
}

func (g *glyph) Size() gui.Vec2 { return g.size }

// Game implements ebiten.Game and gui.Backend. The tree is drawn into an
// offscreen canvas during Update and copied to the screen in Draw.
type Game struct {
	canvas *ebiten.Image
	width  int
	height int

	frame func([]gui.Event) bool
	ctx   context.Context

	pointer   gui.PointerTracker
	textInput bool
	presented int
}

// New creates a game with a w×h logical screen.
func New(w, h int) *Game {
	return &Game{
		canvas: ebiten.NewImage(w, h),
		width:  w,
		height: h,
		ctx:    context.Background(),
	}
}

// Run opens the window and runs w until a Quit event, the window is
// closed or ctx is done.
func Run(ctx context.Context, w *gui.Window, g *Game, title string) error {
	g.ctx = ctx
	g.frame = w.Frame
	ebiten.SetWindowSize(g.width, g.height)
	ebiten.SetWindowTitle(title)
	ebiten.SetTPS(w.FPS())
	ebiten.SetWindowClosingHandled(true)
	if err := ebiten.RunGame(g); err != nil {
		return fmt.Errorf("run game: %w", err)
	}
	return ctx.Err()
}

// Update implements ebiten.Game.
func (g *Game) Update() error {
	if g.ctx.Err() != nil {
		return ebiten.Termination
	}
	events := g.Poll()
	if g.frame != nil && !g.frame(events) {
		return ebiten.Termination
	}
	return g.Present()
}

// Draw implements ebiten.Game.
func (g *Game) Draw(screen *ebiten.Image) {
	screen.DrawImage(g.canvas, nil)
}

// Layout implements ebiten.Game.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return g.width, g.height
}

// Canvas returns the offscreen image the tree draws into.
func (g *Game) Canvas() *ebiten.Image { return g.canvas }

// Present implements gui.Backend. The canvas is shown by the next Draw.
func (g *Game) Present() error {
	g.presented++
	return nil
}

// FillRect implements gui.Surface.
func (g *Game) FillRect(r gui.Rect, c gui.Color, radius float32) {
	if c.Alpha() == 0 || r.W <= 0 || r.H <= 0 {
		return
	}
	radius = min(radius, r.W/2, r.H/2)
	if radius <= 0 {
		vector.DrawFilledRect(g.canvas, r.X, r.Y, r.W, r.H, c, true)
		return
	}
	var p vector.Path
	roundRect(&p, r, radius, false)
	g.fillPath(&p, c)
}

// StrokeRect implements gui.Surface. The line is drawn inside r.
func (g *Game) StrokeRect(r gui.Rect, c gui.Color, width, radius float32) {
	if c.Alpha() == 0 || width <= 0 || r.W <= 0 || r.H <= 0 {
		return
	}
	radius = min(radius, r.W/2, r.H/2)
	if radius <= 0 {
		vector.StrokeRect(g.canvas, r.X+width/2, r.Y+width/2, r.W-width, r.H-width, width, c, true)
		return
	}
	var p vector.Path
	roundRect(&p, r, radius, false)
	if inner := r.Inflate(-width, -width); inner.W > 0 && inner.H > 0 {
		roundRect(&p, inner, max(radius-width, 0), true)
	}
	g.fillPath(&p, c)
}

func (g *Game) fillPath(p *vector.Path, c gui.Color) {
	vs, is := p.AppendVerticesAndIndicesForFilling(nil, nil)
	r, gr, b, a := c.Unpack()
	for i := range vs {
		vs[i].SrcX, vs[i].SrcY = 1, 1
		vs[i].ColorR = float32(r) / 0xff
		vs[i].ColorG = float32(gr) / 0xff
		vs[i].ColorB = float32(b) / 0xff
		vs[i].ColorA = float32(a) / 0xff
	}
	g.canvas.DrawTriangles(vs, is, whiteSubImage, &ebiten.DrawTrianglesOptions{
		FillRule:  ebiten.NonZero,
		AntiAlias: true,
	})
}

// RenderText implements gui.Surface.
func (g *Game) RenderText(text string, fg, bg gui.Color, f gui.Font, style gui.TextStyle) (gui.Glyph, gui.Rect) {
	img := raster.Text(text, fg, bg, f, style)
	b := img.Bounds()
	gl := &glyph{
		img:  ebiten.NewImageFromImage(img),
		size: gui.Vec2{X: float32(b.Dx()), Y: float32(b.Dy())},
	}
	return gl, gui.Rect{W: gl.size.X, H: gl.size.Y}
}

// Blit implements gui.Surface.
func (g *Game) Blit(gl gui.Glyph, pos gui.Vec2) {
	eg, ok := gl.(*glyph)
	if !ok || eg == nil {
		return
	}
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Translate(float64(pos.X), float64(pos.Y))
	g.canvas.DrawImage(eg.img, op)
}

// StartTextInput implements gui.TextInputHost.
func (g *Game) StartTextInput(gui.Rect) { g.textInput = true }

// StopTextInput implements gui.TextInputHost.
func (g *Game) StopTextInput() { g.textInput = false }

// roundRect adds a closed rounded rectangle to p. Reversed paths wind the
// other way, which cuts a hole when nested inside a forward path.
func roundRect(p *vector.Path, r gui.Rect, radius float32, reverse bool) {
	x0, y0, x1, y1 := r.X, r.Y, r.Right(), r.Bottom()
	k := radius * (1 - kappa)
	if !reverse {
		p.MoveTo(x0+radius, y0)
		p.LineTo(x1-radius, y0)
		p.CubicTo(x1-k, y0, x1, y0+k, x1, y0+radius)
		p.LineTo(x1, y1-radius)
		p.CubicTo(x1, y1-k, x1-k, y1, x1-radius, y1)
		p.LineTo(x0+radius, y1)
		p.CubicTo(x0+k, y1, x0, y1-k, x0, y1-radius)
		p.LineTo(x0, y0+radius)
		p.CubicTo(x0, y0+k, x0+k, y0, x0+radius, y0)
		p.Close()
		return
	}
	p.MoveTo(x0+radius, y0)
	p.CubicTo(x0+k, y0, x0, y0+k, x0, y0+radius)
	p.LineTo(x0, y1-radius)
	p.CubicTo(x0, y1-k, x0+k, y1, x0+radius, y1)
	p.LineTo(x1-radius, y1)
	p.CubicTo(x1-k, y1, x1, y1-k, x1, y1-radius)
	p.LineTo(x1, y0+radius)
	p.CubicTo(x1, y0+k, x1-k, y0, x1-radius, y0)
	p.Close()
}

var _ gui.Backend = (*Game)(nil)
var _ gui.TextInputHost = (*Game)(nil)
var _ ebiten.Game = (*Game)(nil)

// keyRepeat returns whether a key held for d ticks should fire this tick.
func keyRepeat(d int) bool {
	const delay, interval = 30, 3
	return d == 1 || (d >= delay && (d-delay)%interval == 0)
}

var keyMap = [...]struct {
	eb  ebiten.Key
	gui gui.Key
}{
	{ebiten.KeyTab, gui.KeyTab},
	{ebiten.KeyArrowLeft, gui.KeyLeft},
	{ebiten.KeyArrowRight, gui.KeyRight},
	{ebiten.KeyArrowUp, gui.KeyUp},
	{ebiten.KeyArrowDown, gui.KeyArrowDown},
	{ebiten.KeyPageUp, gui.KeyPageUp},
	{ebiten.KeyPageDown, gui.KeyPageDown},
	{ebiten.KeyHome, gui.KeyHome},
	{ebiten.KeyEnd, gui.KeyEnd},
	{ebiten.KeyInsert, gui.KeyInsert},
	{ebiten.KeyDelete, gui.KeyDelete},
	{ebiten.KeyBackspace, gui.KeyBackspace},
	{ebiten.KeySpace, gui.KeySpace},
	{ebiten.KeyEnter, gui.KeyEnter},
	{ebiten.KeyNumpadEnter, gui.KeyKeypadEnter},
	{ebiten.KeyEscape, gui.KeyEscape},
	{ebiten.KeyF1, gui.KeyF1},
	{ebiten.KeyF2, gui.KeyF2},
	{ebiten.KeyF3, gui.KeyF3},
	{ebiten.KeyF4, gui.KeyF4},
	{ebiten.KeyF5, gui.KeyF5},
	{ebiten.KeyF6, gui.KeyF6},
	{ebiten.KeyF7, gui.KeyF7},
	{ebiten.KeyF8, gui.KeyF8},
	{ebiten.KeyF9, gui.KeyF9},
	{ebiten.KeyF10, gui.KeyF10},
	{ebiten.KeyF11, gui.KeyF11},
	{ebiten.KeyF12, gui.KeyF12},
}

var buttonMap = [...]struct {
	eb  ebiten.MouseButton
	gui gui.MouseButton
}{
	{ebiten.MouseButtonLeft, gui.MouseButtonLeft},
	{ebiten.MouseButtonRight, gui.MouseButtonRight},
	{ebiten.MouseButtonMiddle, gui.MouseButtonMiddle},
}

// Poll implements gui.Backend. It turns this tick's Ebitengine input
// state into events: motion, then button edges, then keys, then text.
func (g *Game) Poll() []gui.Event {
	var events []gui.Event

	var held gui.ButtonMask
	for _, b := range buttonMap {
		if ebiten.IsMouseButtonPressed(b.eb) {
			held = held.With(b.gui)
		}
	}

	x, y := ebiten.CursorPosition()
	events = append(events, g.pointer.Update(gui.Vec2{X: float32(x), Y: float32(y)}, held)...)

	for _, k := range keyMap {
		if keyRepeat(inpututil.KeyPressDuration(k.eb)) {
			events = append(events, gui.KeyDown(k.gui))
		}
	}

	if chars := ebiten.AppendInputChars(nil); len(chars) > 0 {
		events = append(events, gui.TextCommit(string(chars)))
	}

	if ebiten.IsWindowBeingClosed() {
		events = append(events, gui.Quit())
	}
	return events
}
