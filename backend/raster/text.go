// Package raster draws a widget tree into an in-memory image.
// It needs no window system, which makes it the backend for tests,
// documentation screenshots and server-side rendering.
package raster

import (
	"image"

	"golang.org/x/image/draw"
	"golang.org/x/image/font"
	"golang.org/x/image/math/fixed"

	"github.com/gooey-ui/gui"
)

// Text rasterises one line of text into a new image sized to fit it.
// bg fills the image first unless it is fully transparent. TextStrong
// draws the line twice one pixel apart; TextUnderline adds a one pixel
// rule just below the baseline.
func Text(text string, fg, bg gui.Color, f gui.Font, style gui.TextStyle) *image.RGBA {
	size := f.Measure(text)
	w, h := int(size.X), int(f.LineHeight())
	if style.Has(gui.TextStrong) {
		w++
	}
	img := image.NewRGBA(image.Rect(0, 0, max(w, 1), max(h, 1)))
	if bg.Alpha() > 0 {
		draw.Draw(img, img.Bounds(), image.NewUniform(bg), image.Point{}, draw.Src)
	}

	ascent := int(f.Ascent())
	d := font.Drawer{
		Dst:  img,
		Src:  image.NewUniform(fg),
		Face: f.Face(),
		Dot:  fixed.P(0, ascent),
	}
	d.DrawString(text)
	if style.Has(gui.TextStrong) {
		d.Dot = fixed.P(1, ascent)
		d.DrawString(text)
	}
	if style.Has(gui.TextUnderline) {
		y := min(ascent+1, img.Bounds().Dy()-1)
		draw.Draw(img, image.Rect(0, y, w, y+1), image.NewUniform(fg), image.Point{}, draw.Over)
	}
	return img
}

// Glyph is a rendered line of text owned by a raster Surface.
type Glyph struct {
	img *image.RGBA
}

// NewGlyph wraps an image as a Glyph.
func NewGlyph(img *image.RGBA) *Glyph { return &Glyph{img: img} }

// Size implements gui.Glyph.
func (g *Glyph) Size() gui.Vec2 {
	b := g.img.Bounds()
	return gui.Vec2{X: float32(b.Dx()), Y: float32(b.Dy())}
}

// Image returns the pixels.
func (g *Glyph) Image() *image.RGBA { return g.img }
