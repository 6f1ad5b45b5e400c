package gui_test

import (
	"testing"

	"github.com/gooey-ui/gui"
)

func TestDrawList_BatchesByTexture(t *testing.T) {
	dl := gui.AcquireDrawList()
	defer gui.ReleaseDrawList(dl)

	r := gui.Rect{X: 1, Y: 2, W: 10, H: 10}
	dl.AddRect(r, gui.ColorRed)
	dl.AddRect(r, gui.ColorBlue)
	dl.AddImage(5, r, gui.ColorWhite)
	dl.AddRect(r, gui.ColorGreen)
	dl.Finalize()

	if len(dl.CmdBuffer) != 3 {
		t.Fatalf("commands = %d, want 3", len(dl.CmdBuffer))
	}
	wantTex := []uint32{0, 5, 0}
	wantElems := []uint32{12, 6, 6}
	for i, cmd := range dl.CmdBuffer {
		if cmd.TextureID != wantTex[i] || cmd.ElemCount != wantElems[i] {
			t.Errorf("cmd %d: texture %d elems %d, want %d and %d", i, cmd.TextureID, cmd.ElemCount, wantTex[i], wantElems[i])
		}
	}
	if len(dl.VtxBuffer) != 16 {
		t.Errorf("vertices = %d, want 16", len(dl.VtxBuffer))
	}
	if dl.VtxBuffer[8].TexCoord != [2]float32{0, 0} || dl.VtxBuffer[10].TexCoord != [2]float32{1, 1} {
		t.Errorf("image tex coords = %v .. %v", dl.VtxBuffer[8].TexCoord, dl.VtxBuffer[10].TexCoord)
	}
}

func TestDrawList_SkipsInvisible(t *testing.T) {
	dl := gui.AcquireDrawList()
	defer gui.ReleaseDrawList(dl)

	r := gui.Rect{W: 10, H: 10}
	dl.AddRect(r, gui.ColorTransparent)
	dl.AddRoundRect(r, gui.ColorTransparent, 3)
	dl.AddImage(0, r, gui.ColorWhite)
	dl.AddRectOutline(r, gui.ColorRed, 0, 0)
	dl.Finalize()

	if len(dl.VtxBuffer) != 0 || len(dl.CmdBuffer) != 0 {
		t.Errorf("vertices = %d commands = %d, want none", len(dl.VtxBuffer), len(dl.CmdBuffer))
	}
}

func TestDrawList_RoundRect(t *testing.T) {
	dl := gui.AcquireDrawList()
	defer gui.ReleaseDrawList(dl)

	dl.AddRoundRect(gui.Rect{W: 40, H: 20}, gui.ColorRed, 4)
	if len(dl.VtxBuffer) != 29 || len(dl.IdxBuffer) != 84 {
		t.Errorf("round rect = %d vertices %d indices, want 29 and 84", len(dl.VtxBuffer), len(dl.IdxBuffer))
	}
	if c := dl.VtxBuffer[0].Pos; c != [2]float32{20, 10} {
		t.Errorf("fan centre = %v", c)
	}

	dl.Clear()
	dl.AddRoundRect(gui.Rect{W: 40, H: 20}, gui.ColorRed, 0)
	if len(dl.VtxBuffer) != 4 {
		t.Errorf("zero radius = %d vertices, want a plain quad", len(dl.VtxBuffer))
	}
}

func TestDrawList_CommandsCoverViewport(t *testing.T) {
	dl := gui.AcquireDrawList()
	defer gui.ReleaseDrawList(dl)

	r := gui.Rect{W: 10, H: 10}
	dl.AddRect(r, gui.ColorRed)
	dl.AddImage(3, r, gui.ColorWhite)
	dl.Finalize()

	want := [4]float32{-1e9, -1e9, 1e9, 1e9}
	for i, cmd := range dl.CmdBuffer {
		if cmd.ClipRect != want {
			t.Errorf("cmd %d clip = %v, want unbounded", i, cmd.ClipRect)
		}
	}
}
