package gui

import (
	"math"
	"sync"
)

// drawListPool provides reuse of DrawList buffers between frames.
var drawListPool = sync.Pool{
	New: func() any {
		return &DrawList{
			VtxBuffer: make([]Vertex, 0, 1024),
			IdxBuffer: make([]uint16, 0, 2048),
			CmdBuffer: make([]DrawCmd, 0, 16),
		}
	},
}

// AcquireDrawList gets a DrawList from the pool.
// Call ReleaseDrawList when done to return it.
func AcquireDrawList() *DrawList {
	dl := drawListPool.Get().(*DrawList)
	dl.Clear()
	return dl
}

// ReleaseDrawList returns a DrawList to the pool for reuse.
func ReleaseDrawList(dl *DrawList) {
	if dl != nil {
		drawListPool.Put(dl)
	}
}

// maxCmdVertices is the most vertices one command can address with 16-bit indices.
const maxCmdVertices = 1 << 16

// cornerSegments is the number of line segments per rounded corner.
const cornerSegments = 6

// noClip is the clip rectangle of every command; the renderer clamps it to
// the viewport.
var noClip = [4]float32{-1e9, -1e9, 1e9, 1e9}

// DrawList accumulates triangles for GPU backends.
// It batches primitives by texture to minimize GPU state changes.
type DrawList struct {
	CmdBuffer []DrawCmd // Draw commands
	VtxBuffer []Vertex  // Vertex data
	IdxBuffer []uint16  // Index data

	textureID    uint32 // Current texture for batching
	cmdOffset    uint32 // Vertex offset for current command
	idxCmdOffset uint32 // Index offset for current command
}

// Clear resets the DrawList for a new frame.
// Retains allocated capacity to avoid reallocations.
func (dl *DrawList) Clear() {
	dl.CmdBuffer = dl.CmdBuffer[:0]
	dl.VtxBuffer = dl.VtxBuffer[:0]
	dl.IdxBuffer = dl.IdxBuffer[:0]
	dl.textureID = 0
	dl.cmdOffset = 0
	dl.idxCmdOffset = 0
}

// SetTexture sets the current texture for subsequent primitives.
func (dl *DrawList) SetTexture(textureID uint32) {
	if dl.textureID == textureID && len(dl.CmdBuffer) > 0 {
		return
	}
	dl.textureID = textureID
	dl.splitDraw()
}

// splitDraw finalizes the current command and starts a new one.
func (dl *DrawList) splitDraw() {
	if len(dl.CmdBuffer) > 0 {
		lastCmd := &dl.CmdBuffer[len(dl.CmdBuffer)-1]
		lastCmd.ElemCount = uint32(len(dl.IdxBuffer)) - dl.idxCmdOffset
	}

	dl.CmdBuffer = append(dl.CmdBuffer, DrawCmd{
		ClipRect:     noClip,
		TextureID:    dl.textureID,
		VertexOffset: uint32(len(dl.VtxBuffer)),
		IndexOffset:  uint32(len(dl.IdxBuffer)),
	})
	dl.cmdOffset = uint32(len(dl.VtxBuffer))
	dl.idxCmdOffset = uint32(len(dl.IdxBuffer))
}

// addVertices adds vertices and returns the starting index relative to the
// current command. A new command is started when 16-bit indices would overflow.
func (dl *DrawList) addVertices(verts ...Vertex) uint16 {
	if len(dl.CmdBuffer) == 0 || len(dl.VtxBuffer)-int(dl.cmdOffset)+len(verts) > maxCmdVertices {
		dl.splitDraw()
	}
	startIdx := uint16(len(dl.VtxBuffer) - int(dl.cmdOffset))
	dl.VtxBuffer = append(dl.VtxBuffer, verts...)
	return startIdx
}

// addIndices adds indices (relative to current command's vertex offset).
func (dl *DrawList) addIndices(indices ...uint16) {
	dl.IdxBuffer = append(dl.IdxBuffer, indices...)
}

// AddRect draws a filled rectangle.
func (dl *DrawList) AddRect(r Rect, color Color) {
	if color.Alpha() == 0 {
		return
	}
	dl.SetTexture(0)

	idx := dl.addVertices(
		Vertex{Pos: [2]float32{r.X, r.Y}, Color: color},
		Vertex{Pos: [2]float32{r.X + r.W, r.Y}, Color: color},
		Vertex{Pos: [2]float32{r.X + r.W, r.Y + r.H}, Color: color},
		Vertex{Pos: [2]float32{r.X, r.Y + r.H}, Color: color},
	)

	dl.addIndices(idx, idx+1, idx+2, idx, idx+2, idx+3)
}

// AddRoundRect draws a filled rectangle with rounded corners as a
// triangle fan around its centre.
func (dl *DrawList) AddRoundRect(r Rect, color Color, radius float32) {
	radius = clampf(radius, 0, min(r.W, r.H)/2)
	if radius < 0.5 {
		dl.AddRect(r, color)
		return
	}
	if color.Alpha() == 0 {
		return
	}
	dl.SetTexture(0)

	path := roundRectPath(r, radius)
	c := r.Center()
	verts := make([]Vertex, 0, len(path)+1)
	verts = append(verts, Vertex{Pos: [2]float32{c.X, c.Y}, Color: color})
	for _, p := range path {
		verts = append(verts, Vertex{Pos: [2]float32{p.X, p.Y}, Color: color})
	}
	idx := dl.addVertices(verts...)
	n := uint16(len(path))
	for i := uint16(0); i < n; i++ {
		dl.addIndices(idx, idx+1+i, idx+1+(i+1)%n)
	}
}

// AddRectOutline draws a rectangle outline of the given thickness.
func (dl *DrawList) AddRectOutline(r Rect, color Color, thickness, radius float32) {
	if color.Alpha() == 0 || thickness <= 0 {
		return
	}
	radius = clampf(radius, 0, min(r.W, r.H)/2)
	if radius < 0.5 {
		dl.AddRect(Rect{X: r.X, Y: r.Y, W: r.W, H: thickness}, color)
		dl.AddRect(Rect{X: r.X, Y: r.Y + r.H - thickness, W: r.W, H: thickness}, color)
		dl.AddRect(Rect{X: r.X, Y: r.Y + thickness, W: thickness, H: r.H - 2*thickness}, color)
		dl.AddRect(Rect{X: r.X + r.W - thickness, Y: r.Y + thickness, W: thickness, H: r.H - 2*thickness}, color)
		return
	}
	path := roundRectPath(r.Inflate(-thickness/2, -thickness/2), radius-thickness/2)
	for i := range path {
		a, b := path[i], path[(i+1)%len(path)]
		dl.AddLine(a, b, color, thickness)
	}
}

// AddLine draws a line between two points as a quad.
func (dl *DrawList) AddLine(a, b Vec2, color Color, thickness float32) {
	if color.Alpha() == 0 {
		return
	}
	dl.SetTexture(0)

	dx := b.X - a.X
	dy := b.Y - a.Y
	inv := float32(1)
	if dx != 0 || dy != 0 {
		inv = 1 / float32(math.Sqrt(float64(dx*dx+dy*dy)))
	}

	nx := -dy * inv * thickness * 0.5
	ny := dx * inv * thickness * 0.5

	idx := dl.addVertices(
		Vertex{Pos: [2]float32{a.X + nx, a.Y + ny}, Color: color},
		Vertex{Pos: [2]float32{b.X + nx, b.Y + ny}, Color: color},
		Vertex{Pos: [2]float32{b.X - nx, b.Y - ny}, Color: color},
		Vertex{Pos: [2]float32{a.X - nx, a.Y - ny}, Color: color},
	)

	dl.addIndices(idx, idx+1, idx+2, idx, idx+2, idx+3)
}

// AddImage draws a whole texture over r, modulated by tint.
func (dl *DrawList) AddImage(textureID uint32, r Rect, tint Color) {
	if textureID == 0 || tint.Alpha() == 0 {
		return
	}
	dl.SetTexture(textureID)

	idx := dl.addVertices(
		Vertex{Pos: [2]float32{r.X, r.Y}, TexCoord: [2]float32{0, 0}, Color: tint},
		Vertex{Pos: [2]float32{r.X + r.W, r.Y}, TexCoord: [2]float32{1, 0}, Color: tint},
		Vertex{Pos: [2]float32{r.X + r.W, r.Y + r.H}, TexCoord: [2]float32{1, 1}, Color: tint},
		Vertex{Pos: [2]float32{r.X, r.Y + r.H}, TexCoord: [2]float32{0, 1}, Color: tint},
	)
	dl.addIndices(idx, idx+1, idx+2, idx, idx+2, idx+3)
}

// Finalize prepares the DrawList for rendering.
// Must be called after all primitives are added.
func (dl *DrawList) Finalize() {
	if len(dl.CmdBuffer) > 0 {
		lastCmd := &dl.CmdBuffer[len(dl.CmdBuffer)-1]
		lastCmd.ElemCount = uint32(len(dl.IdxBuffer)) - dl.idxCmdOffset
	}

	filtered := dl.CmdBuffer[:0]
	for _, cmd := range dl.CmdBuffer {
		if cmd.ElemCount > 0 {
			filtered = append(filtered, cmd)
		}
	}
	dl.CmdBuffer = filtered
}

// roundRectPath returns the outline of a rounded rectangle, clockwise
// from the top-left corner's start.
func roundRectPath(r Rect, radius float32) []Vec2 {
	corners := [4]struct {
		c     Vec2
		start float64
	}{
		{Vec2{X: r.X + radius, Y: r.Y + radius}, math.Pi},
		{Vec2{X: r.X + r.W - radius, Y: r.Y + radius}, 1.5 * math.Pi},
		{Vec2{X: r.X + r.W - radius, Y: r.Y + r.H - radius}, 0},
		{Vec2{X: r.X + radius, Y: r.Y + r.H - radius}, 0.5 * math.Pi},
	}
	path := make([]Vec2, 0, 4*(cornerSegments+1))
	for _, k := range corners {
		for i := 0; i <= cornerSegments; i++ {
			a := k.start + float64(i)/cornerSegments*math.Pi/2
			path = append(path, Vec2{
				X: k.c.X + radius*float32(math.Cos(a)),
				Y: k.c.Y + radius*float32(math.Sin(a)),
			})
		}
	}
	return path
}
