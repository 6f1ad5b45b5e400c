package raster

import (
	"fmt"
	"image"
	"image/png"
	"os"
	"slices"
	"sync"

	"github.com/gooey-ui/gui"
)

// Backend is a headless gui.Backend. Events are queued with Push and
// handed out by Poll; Present counts frames and calls OnPresent.
type Backend struct {
	*Surface

	// OnPresent, when set, receives the image after every frame.
	OnPresent func(img *image.RGBA) error

	mu     sync.Mutex
	queue  []gui.Event
	frames int

	inputOn   bool
	inputRect gui.Rect
}

// New creates a backend with a w×h image.
func New(w, h int) *Backend {
	return &Backend{Surface: NewSurface(image.NewRGBA(image.Rect(0, 0, w, h)))}
}

// Push queues events for the next Poll. It is safe to call from any goroutine.
func (b *Backend) Push(events ...gui.Event) {
	b.mu.Lock()
	b.queue = append(b.queue, events...)
	b.mu.Unlock()
}

// Poll implements gui.Backend.
func (b *Backend) Poll() []gui.Event {
	b.mu.Lock()
	defer b.mu.Unlock()
	out := slices.Clone(b.queue)
	b.queue = b.queue[:0]
	return out
}

// Present implements gui.Backend.
func (b *Backend) Present() error {
	b.frames++
	if b.OnPresent != nil {
		return b.OnPresent(b.dst)
	}
	return nil
}

// Frames returns how many frames were presented.
func (b *Backend) Frames() int { return b.frames }

// StartTextInput implements gui.TextInputHost.
func (b *Backend) StartTextInput(r gui.Rect) {
	b.inputOn = true
	b.inputRect = r
}

// StopTextInput implements gui.TextInputHost.
func (b *Backend) StopTextInput() {
	b.inputOn = false
}

// TextInput reports whether text input is on and where it was requested.
func (b *Backend) TextInput() (bool, gui.Rect) {
	return b.inputOn, b.inputRect
}

// SavePNG writes the current image to path.
func (b *Backend) SavePNG(path string) error {
	return SavePNG(b.dst, path)
}

// SavePNG encodes img as a PNG file.
func SavePNG(img image.Image, path string) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create %s: %w", path, err)
	}
	if err := png.Encode(f, img); err != nil {
		f.Close()
		return fmt.Errorf("failed to encode %s: %w", path, err)
	}
	return f.Close()
}
