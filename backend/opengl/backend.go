package opengl

import (
	"fmt"
	"runtime"
	"sync"

	"github.com/go-gl/gl/v4.1-core/gl"
	"github.com/go-gl/glfw/v3.3/glfw"

	"github.com/gooey-ui/gui"
	"github.com/gooey-ui/gui/backend/raster"
)

// glyph is a text image living in a GL texture.
type glyph struct {
	tex  uint32
	size gui.Vec2
}

func (g *glyph) Size() gui.Vec2 { return g.size }

// Backend is a gui.Backend drawing into a GLFW window through a DrawList.
// It must be created and used on the main OS thread.
type Backend struct {
	window   *glfw.Window
	renderer *Renderer
	input    *GLFWInputAdapter
	dl       *gui.DrawList

	mu       sync.Mutex
	released []uint32
}

// New initialises GLFW and OpenGL and opens a window.
func New(title string, width, height int) (*Backend, error) {
	if err := glfw.Init(); err != nil {
		return nil, fmt.Errorf("glfw init: %w", err)
	}

	glfw.WindowHint(glfw.ContextVersionMajor, 4)
	glfw.WindowHint(glfw.ContextVersionMinor, 1)
	glfw.WindowHint(glfw.OpenGLProfile, glfw.OpenGLCoreProfile)
	glfw.WindowHint(glfw.OpenGLForwardCompatible, glfw.True)
	glfw.WindowHint(glfw.Resizable, glfw.False)

	window, err := glfw.CreateWindow(width, height, title, nil, nil)
	if err != nil {
		glfw.Terminate()
		return nil, fmt.Errorf("create window: %w", err)
	}
	window.MakeContextCurrent()
	glfw.SwapInterval(1)

	if err := gl.Init(); err != nil {
		window.Destroy()
		glfw.Terminate()
		return nil, fmt.Errorf("gl init: %w", err)
	}

	fw, fh := window.GetFramebufferSize()
	gl.Viewport(0, 0, int32(fw), int32(fh))
	renderer, err := NewRenderer(width, height)
	if err != nil {
		window.Destroy()
		glfw.Terminate()
		return nil, fmt.Errorf("gui renderer: %w", err)
	}

	return &Backend{
		window:   window,
		renderer: renderer,
		input:    NewGLFWInputAdapter(window),
		dl:       gui.AcquireDrawList(),
	}, nil
}

// Close releases the renderer, the window and GLFW.
func (b *Backend) Close() {
	b.releaseTextures()
	b.renderer.Delete()
	gui.ReleaseDrawList(b.dl)
	b.window.Destroy()
	glfw.Terminate()
}

// FillRect implements gui.Surface.
func (b *Backend) FillRect(r gui.Rect, c gui.Color, radius float32) {
	b.dl.AddRoundRect(r, c, radius)
}

// StrokeRect implements gui.Surface.
func (b *Backend) StrokeRect(r gui.Rect, c gui.Color, width, radius float32) {
	b.dl.AddRectOutline(r, c, width, radius)
}

// RenderText implements gui.Surface. The texture is freed once the
// returned glyph is no longer referenced.
func (b *Backend) RenderText(text string, fg, bg gui.Color, f gui.Font, style gui.TextStyle) (gui.Glyph, gui.Rect) {
	img := raster.Text(text, fg, bg, f, style)
	g := &glyph{
		tex:  b.renderer.UploadImage(img),
		size: gui.Vec2{X: float32(img.Bounds().Dx()), Y: float32(img.Bounds().Dy())},
	}
	runtime.AddCleanup(g, b.release, g.tex)
	return g, gui.Rect{W: g.size.X, H: g.size.Y}
}

// Blit implements gui.Surface.
func (b *Backend) Blit(g gui.Glyph, pos gui.Vec2) {
	gg, ok := g.(*glyph)
	if !ok || gg == nil {
		return
	}
	b.dl.AddImage(gg.tex, gui.Rect{X: pos.X, Y: pos.Y, W: gg.size.X, H: gg.size.Y}, gui.ColorWhite)
}

// StartTextInput implements gui.TextInputHost. GLFW delivers committed
// characters whenever the window has focus, so there is nothing to switch.
func (b *Backend) StartTextInput(gui.Rect) {}

// StopTextInput implements gui.TextInputHost.
func (b *Backend) StopTextInput() {}

// Poll implements gui.Backend.
func (b *Backend) Poll() []gui.Event {
	glfw.PollEvents()
	return b.input.Drain()
}

// Present implements gui.Backend.
func (b *Backend) Present() error {
	if err := b.renderer.Render(b.dl); err != nil {
		return fmt.Errorf("render: %w", err)
	}
	b.window.SwapBuffers()
	gl.Clear(gl.COLOR_BUFFER_BIT)
	b.dl.Clear()
	b.releaseTextures()
	return nil
}

// release is called from the cleanup goroutine; textures are deleted on
// the GL thread during the next Present.
func (b *Backend) release(tex uint32) {
	b.mu.Lock()
	b.released = append(b.released, tex)
	b.mu.Unlock()
}

func (b *Backend) releaseTextures() {
	b.mu.Lock()
	released := b.released
	b.released = nil
	b.mu.Unlock()
	for _, tex := range released {
		b.renderer.DeleteTexture(tex)
	}
}
