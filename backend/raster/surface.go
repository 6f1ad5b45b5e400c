package raster

import (
	"image"
	"math"

	"golang.org/x/image/draw"
	"golang.org/x/image/vector"

	"github.com/gooey-ui/gui"
)

// kappa places cubic control points so four curves approximate a circle.
const kappa = 0.5522847

// Surface implements gui.Surface on top of an *image.RGBA.
type Surface struct {
	dst *image.RGBA
}

// NewSurface creates a surface drawing into dst.
func NewSurface(dst *image.RGBA) *Surface {
	return &Surface{dst: dst}
}

// Image returns the image being drawn into.
func (s *Surface) Image() *image.RGBA { return s.dst }

// Clear fills the whole image with c, replacing what was there.
func (s *Surface) Clear(c gui.Color) {
	draw.Draw(s.dst, s.dst.Bounds(), image.NewUniform(c), image.Point{}, draw.Src)
}

// FillRect implements gui.Surface.
func (s *Surface) FillRect(r gui.Rect, c gui.Color, radius float32) {
	if c.Alpha() == 0 || r.W <= 0 || r.H <= 0 {
		return
	}
	radius = min(radius, r.W/2, r.H/2)
	if radius <= 0 {
		draw.Draw(s.dst, pixelRect(r), image.NewUniform(c), image.Point{}, draw.Over)
		return
	}
	s.fill(r, c, func(z *vector.Rasterizer, off gui.Vec2) {
		roundRect(z, r.Translate(off), radius, false)
	})
}

// StrokeRect implements gui.Surface. The line is drawn inside r.
func (s *Surface) StrokeRect(r gui.Rect, c gui.Color, width, radius float32) {
	if c.Alpha() == 0 || width <= 0 || r.W <= 0 || r.H <= 0 {
		return
	}
	radius = min(radius, r.W/2, r.H/2)
	if radius <= 0 {
		width = min(width, r.W/2, r.H/2)
		s.FillRect(gui.Rect{X: r.X, Y: r.Y, W: r.W, H: width}, c, 0)
		s.FillRect(gui.Rect{X: r.X, Y: r.Bottom() - width, W: r.W, H: width}, c, 0)
		s.FillRect(gui.Rect{X: r.X, Y: r.Y + width, W: width, H: r.H - 2*width}, c, 0)
		s.FillRect(gui.Rect{X: r.Right() - width, Y: r.Y + width, W: width, H: r.H - 2*width}, c, 0)
		return
	}
	inner := r.Inflate(-width, -width)
	s.fill(r, c, func(z *vector.Rasterizer, off gui.Vec2) {
		roundRect(z, r.Translate(off), radius, false)
		if inner.W > 0 && inner.H > 0 {
			roundRect(z, inner.Translate(off), max(radius-width, 0), true)
		}
	})
}

// fill rasterises the path built by path over the pixels covered by r.
func (s *Surface) fill(r gui.Rect, c gui.Color, path func(z *vector.Rasterizer, off gui.Vec2)) {
	b := pixelRect(r).Intersect(s.dst.Bounds())
	if b.Empty() {
		return
	}
	z := vector.NewRasterizer(b.Dx(), b.Dy())
	z.DrawOp = draw.Over
	path(z, gui.Vec2{X: -float32(b.Min.X), Y: -float32(b.Min.Y)})
	z.Draw(s.dst, b, image.NewUniform(c), image.Point{})
}

// RenderText implements gui.Surface.
func (s *Surface) RenderText(text string, fg, bg gui.Color, f gui.Font, style gui.TextStyle) (gui.Glyph, gui.Rect) {
	g := NewGlyph(Text(text, fg, bg, f, style))
	size := g.Size()
	return g, gui.Rect{W: size.X, H: size.Y}
}

// Blit implements gui.Surface. Glyphs from other surfaces are ignored.
func (s *Surface) Blit(g gui.Glyph, pos gui.Vec2) {
	rg, ok := g.(*Glyph)
	if !ok || rg == nil {
		return
	}
	at := image.Pt(int(math.Round(float64(pos.X))), int(math.Round(float64(pos.Y))))
	draw.Draw(s.dst, rg.img.Bounds().Add(at), rg.img, image.Point{}, draw.Over)
}

// pixelRect rounds r outwards to whole pixels.
func pixelRect(r gui.Rect) image.Rectangle {
	return image.Rect(
		int(math.Floor(float64(r.X))),
		int(math.Floor(float64(r.Y))),
		int(math.Ceil(float64(r.Right()))),
		int(math.Ceil(float64(r.Bottom()))),
	)
}

// roundRect adds a closed rounded rectangle to z. Reversed paths wind the
// other way, which cuts a hole when nested inside a forward path.
func roundRect(z *vector.Rasterizer, r gui.Rect, radius float32, reverse bool) {
	x0, y0, x1, y1 := r.X, r.Y, r.Right(), r.Bottom()
	k := radius * (1 - kappa)
	if !reverse {
		z.MoveTo(x0+radius, y0)
		z.LineTo(x1-radius, y0)
		z.CubeTo(x1-k, y0, x1, y0+k, x1, y0+radius)
		z.LineTo(x1, y1-radius)
		z.CubeTo(x1, y1-k, x1-k, y1, x1-radius, y1)
		z.LineTo(x0+radius, y1)
		z.CubeTo(x0+k, y1, x0, y1-k, x0, y1-radius)
		z.LineTo(x0, y0+radius)
		z.CubeTo(x0, y0+k, x0+k, y0, x0+radius, y0)
		z.ClosePath()
		return
	}
	z.MoveTo(x0+radius, y0)
	z.CubeTo(x0+k, y0, x0, y0+k, x0, y0+radius)
	z.LineTo(x0, y1-radius)
	z.CubeTo(x0, y1-k, x0+k, y1, x0+radius, y1)
	z.LineTo(x1-radius, y1)
	z.CubeTo(x1-k, y1, x1, y1-k, x1, y1-radius)
	z.LineTo(x1, y0+radius)
	z.CubeTo(x1, y0+k, x1-k, y0, x1-radius, y0)
	z.ClosePath()
}
