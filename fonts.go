package gui

import (
	"fmt"
	"os"
	"sync"

	"github.com/golang/freetype/truetype"
	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/gobold"
	"golang.org/x/image/font/gofont/goitalic"
	"golang.org/x/image/font/gofont/gomono"
	"golang.org/x/image/font/gofont/goregular"
)

// Built-in font names.
const (
	FontSans       = "sans"
	FontSansBold   = "sans-bold"
	FontSansItalic = "sans-italic"
	FontMono       = "mono"
)

// DefaultFont is the face widgets use unless configured otherwise.
var DefaultFont = FontRef{Name: FontSans, Size: 16}

// FontCache is a FontSource backed by TrueType data.
// Parsed fonts and sized faces are cached; it is safe for concurrent use
// so backends may resolve fonts from their own goroutines.
type FontCache struct {
	mu       sync.Mutex
	parsed   map[string]*truetype.Font
	faces    map[FontRef]Font
	fallback map[FontRef]Font
	dpi      float64
}

// NewFontCache creates a cache preloaded with the Go font family.
func NewFontCache() *FontCache {
	c := &FontCache{
		parsed:   make(map[string]*truetype.Font),
		faces:    make(map[FontRef]Font),
		fallback: make(map[FontRef]Font),
		dpi:      72,
	}
	builtins := map[string][]byte{
		FontSans:       goregular.TTF,
		FontSansBold:   gobold.TTF,
		FontSansItalic: goitalic.TTF,
		FontMono:       gomono.TTF,
	}
	for name, data := range builtins {
		if err := c.RegisterTTF(name, data); err != nil {
			guiLogger.Warn("builtin font failed to parse", "font", name, "err", err)
		}
	}
	return c
}

// RegisterTTF parses TrueType data and makes it available under name.
// Faces already cached for that name are dropped.
func (c *FontCache) RegisterTTF(name string, data []byte) error {
	f, err := truetype.Parse(data)
	if err != nil {
		return fmt.Errorf("parse font %q: %w", name, err)
	}

	c.mu.Lock()
	defer c.mu.Unlock()
	c.parsed[name] = f
	for ref := range c.faces {
		if ref.Name == name {
			delete(c.faces, ref)
		}
	}
	for ref := range c.fallback {
		if ref.Name == name {
			delete(c.fallback, ref)
		}
	}
	return nil
}

// RegisterFile reads a .ttf file and registers it under name.
func (c *FontCache) RegisterFile(name, path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read font %q: %w", path, err)
	}
	return c.RegisterTTF(name, data)
}

// Names returns the registered font names.
func (c *FontCache) Names() []string {
	c.mu.Lock()
	defer c.mu.Unlock()
	names := make([]string, 0, len(c.parsed))
	for name := range c.parsed {
		names = append(names, name)
	}
	return names
}

// LoadFont resolves ref strictly, failing when the name is unknown
// or the size is not positive.
func (c *FontCache) LoadFont(ref FontRef) (Font, error) {
	if ref.Size <= 0 {
		return nil, fmt.Errorf("load font %s: size must be positive", ref)
	}

	c.mu.Lock()
	defer c.mu.Unlock()
	if f, ok := c.faces[ref]; ok {
		return f, nil
	}
	tt, ok := c.parsed[ref.Name]
	if !ok {
		return nil, fmt.Errorf("load font %s: not registered", ref)
	}
	face := truetype.NewFace(tt, &truetype.Options{
		Size:    float64(ref.Size),
		DPI:     c.dpi,
		Hinting: font.HintingFull,
	})
	f := NewFaceFont(ref, face)
	c.faces[ref] = f
	return f, nil
}

// Font implements FontSource. Failures are logged once per ref and answered
// with the built-in fixed face.
func (c *FontCache) Font(ref FontRef) Font {
	f, err := c.LoadFont(ref)
	if err == nil {
		return f
	}

	c.mu.Lock()
	defer c.mu.Unlock()
	if f, ok := c.fallback[ref]; ok {
		return f
	}
	guiLogger.Warn("font fallback", "font", ref.String(), "err", err)
	f = NewFaceFont(ref, fallbackFace)
	c.fallback[ref] = f
	return f
}
