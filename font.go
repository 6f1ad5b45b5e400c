package gui

import (
	"fmt"

	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
)

// FontRef names a font and its pixel size.
type FontRef struct {
	Name string
	Size float32
}

func (r FontRef) String() string {
	return fmt.Sprintf("%s@%g", r.Name, r.Size)
}

// Font is a resolved face that can measure text.
// Backends rasterise with Face; layout code only measures.
type Font interface {
	// Ref returns the name and size this font was resolved for.
	Ref() FontRef

	// Face returns the underlying face used for rasterisation.
	Face() font.Face

	// Measure returns the pixel size of a single line of text.
	Measure(text string) Vec2

	// LineHeight returns the distance between baselines.
	LineHeight() float32

	// Ascent returns the distance from the top of a line to its baseline.
	Ascent() float32
}

// FontSource resolves font references. It never fails: unknown names or
// unloadable faces fall back to a default face.
type FontSource interface {
	Font(ref FontRef) Font
}

var fallbackFace font.Face = basicfont.Face7x13

// faceFont adapts a font.Face to Font.
type faceFont struct {
	ref     FontRef
	face    font.Face
	height  float32
	ascent  float32
	descent float32
}

// NewFaceFont wraps any font.Face as a Font.
func NewFaceFont(ref FontRef, face font.Face) Font {
	m := face.Metrics()
	f := &faceFont{
		ref:     ref,
		face:    face,
		ascent:  float32(m.Ascent.Ceil()),
		descent: float32(m.Descent.Ceil()),
		height:  float32(m.Height.Ceil()),
	}
	if f.height < f.ascent+f.descent {
		f.height = f.ascent + f.descent
	}
	return f
}

func (f *faceFont) Ref() FontRef { return f.ref }
func (f *faceFont) Face() font.Face { return f.face }
func (f *faceFont) LineHeight() float32 { return f.height }
func (f *faceFont) Ascent() float32 { return f.ascent }

func (f *faceFont) Measure(text string) Vec2 {
	w := font.MeasureString(f.face, text).Ceil()
	return Vec2{X: float32(w), Y: f.height}
}
