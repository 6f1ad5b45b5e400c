package gui

// textLayout memoises a rendered line of text and where it sits.
// The glyph is only re-rendered when an input to RenderText changes;
// moving or resizing the owner only re-places the existing glyph.
type textLayout struct {
	glyph Glyph
	size  Vec2
	box   Rect
	dirty bool
	count int
}

// render rasterises text through s and records the result.
func (l *textLayout) render(s Surface, text string, fg, bg Color, f Font, style TextStyle) {
	g, bounds := s.RenderText(text, fg, bg, f, style)
	l.glyph = g
	l.size = bounds.Size()
	l.dirty = false
	l.count++
}

// invalidate marks the cached glyph stale.
func (l *textLayout) invalidate() {
	l.dirty = true
}

// textSegment is one run of a line made of separately styled parts.
type textSegment struct {
	glyph Glyph
	size  Vec2
}

// segmentCache memoises a row of styled runs drawn left to right.
type segmentCache struct {
	segments []textSegment
	width    float32
	height   float32
	dirty    bool
	count    int
}

type segmentSpec struct {
	text  string
	fg    Color
	style TextStyle
}

func (c *segmentCache) invalidate() {
	c.dirty = true
}

func (c *segmentCache) render(s Surface, specs []segmentSpec, bg Color, f Font) {
	c.segments = c.segments[:0]
	c.width, c.height = 0, f.LineHeight()
	for _, spec := range specs {
		if spec.text == "" {
			continue
		}
		g, bounds := s.RenderText(spec.text, spec.fg, bg, f, spec.style)
		size := bounds.Size()
		c.segments = append(c.segments, textSegment{glyph: g, size: size})
		c.width += size.X
		if size.Y > c.height {
			c.height = size.Y
		}
	}
	c.dirty = false
	c.count++
}

// blit draws the row with its top-left corner at pos, each run
// vertically centred on the row.
func (c *segmentCache) blit(s Surface, pos Vec2) {
	x := pos.X
	for _, seg := range c.segments {
		s.Blit(seg.glyph, Vec2{X: x, Y: pos.Y + (c.height-seg.size.Y)/2})
		x += seg.size.X
	}
}
