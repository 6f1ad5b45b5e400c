// Command gen renders every widget with sample data on the headless raster
// backend and saves JPEG screenshots to doc/imgs/.
//
// Usage:
//
//	go run ./doc/gen/
package main

import (
	"flag"
	"fmt"
	"image"
	"image/jpeg"
	"os"
	"path/filepath"

	"github.com/gooey-ui/gui"
	"github.com/gooey-ui/gui/backend/raster"
)

func main() {
	outDir := flag.String("out", filepath.Join("doc", "imgs"), "output directory")
	dark := flag.Bool("dark", false, "use the dark theme")
	flag.Parse()

	if err := run(*outDir, *dark); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// screenshot defines a single widget screenshot to capture.
type screenshot struct {
	name   string              // filename without extension
	width  int                 // viewport width
	height int                 // viewport height
	build  func(w *gui.Window) // attaches the widgets to show
	events [][]gui.Event       // batches dispatched before the capture
}

func run(outDir string, dark bool) error {
	if err := os.MkdirAll(outDir, 0o755); err != nil {
		return fmt.Errorf("mkdir: %w", err)
	}

	theme := gui.DefaultTheme()
	if dark {
		theme = gui.DarkTheme()
	}
	fonts := gui.NewFontCache()

	for _, s := range buildScreenshots() {
		if err := capture(s, theme, fonts, outDir); err != nil {
			return fmt.Errorf("%s: %w", s.name, err)
		}
		fmt.Printf("  %s.jpg\n", s.name)
	}
	return nil
}

func capture(s screenshot, theme gui.Theme, fonts *gui.FontCache, outDir string) error {
	b := raster.New(s.width, s.height)
	w := gui.NewWindow(b,
		gui.WithTheme(theme),
		gui.WithFonts(fonts),
		gui.WithSize(float32(s.width), float32(s.height)),
	)
	s.build(w)
	for _, batch := range s.events {
		w.Dispatch(batch)
	}
	w.Draw()
	return saveJPEG(b.Image(), filepath.Join(outDir, s.name+".jpg"))
}

func saveJPEG(img image.Image, path string) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create: %w", err)
	}
	if err := jpeg.Encode(f, img, &jpeg.Options{Quality: 90}); err != nil {
		f.Close()
		return fmt.Errorf("encode: %w", err)
	}
	return f.Close()
}

func buildScreenshots() []screenshot {
	return []screenshot{
		{
			name: "panel", width: 240, height: 160,
			build: func(w *gui.Window) {
				f := w.Factory()
				p := f.Panel(20, 20, gui.PanelConfig{Text: "Panel", Width: 200, Height: 120})
				w.Attach(p)
			},
		},
		{
			name: "panel_align", width: 420, height: 160,
			build: func(w *gui.Window) {
				f := w.Factory()
				for i, a := range []gui.Alignment{gui.AlignLeft, gui.AlignCenter, gui.AlignRight} {
					p := f.Panel(float32(20+i*130), 20, gui.PanelConfig{Text: a.String(), Width: 120, Height: 120})
					p.SetTextAlign(a, gui.AlignBottom)
					w.Attach(p)
				}
			},
		},
		{
			name: "button", width: 240, height: 80,
			build: func(w *gui.Window) {
				f := w.Factory()
				w.Attach(f.Button(20, 25, gui.ButtonConfig{Text: "Normal", Width: 90}))
				w.Attach(f.Button(130, 25, gui.ButtonConfig{Text: "Hover", Width: 90}))
			},
			events: [][]gui.Event{
				{gui.PointerMove(gui.Vec2{X: 170, Y: 40}, gui.Vec2{}, 0)},
			},
		},
		{
			name: "button_pressed", width: 140, height: 80,
			build: func(w *gui.Window) {
				w.Attach(w.Factory().Button(20, 25, gui.ButtonConfig{Text: "Pressed", Width: 100}))
			},
			events: [][]gui.Event{
				{gui.PointerDown(gui.Vec2{X: 60, Y: 40}, gui.MouseButtonLeft)},
			},
		},
		{
			name: "label", width: 240, height: 60,
			build: func(w *gui.Window) {
				w.Attach(w.Factory().Label(20, 20, gui.LabelConfig{Text: "Hello, label"}))
			},
		},
		{
			name: "textbox", width: 260, height: 80,
			build: func(w *gui.Window) {
				w.Attach(w.Factory().TextBox(20, 16, gui.TextBoxConfig{Text: "hello", Width: 220}))
			},
			events: [][]gui.Event{
				{gui.PointerDown(gui.Vec2{X: 40, Y: 30}, gui.MouseButtonLeft)},
				{gui.KeyDown(gui.KeyLeft), gui.KeyDown(gui.KeyLeft)},
			},
		},
		{
			name: "textbox_composing", width: 260, height: 80,
			build: func(w *gui.Window) {
				w.Attach(w.Factory().TextBox(20, 16, gui.TextBoxConfig{Text: "ni", Width: 220}))
			},
			events: [][]gui.Event{
				{gui.PointerDown(gui.Vec2{X: 40, Y: 30}, gui.MouseButtonLeft)},
				{gui.CompositionUpdate("hao", 1)},
			},
		},
		{
			name: "nested", width: 320, height: 220,
			build: func(w *gui.Window) {
				f := w.Factory()
				outer := f.Panel(10, 10, gui.PanelConfig{Text: "Outer", Width: 300, Height: 200})
				outer.SetTextAlign(gui.AlignTop)
				inner := f.Panel(30, 50, gui.PanelConfig{Text: "Inner", Width: 200, Height: 140})
				inner.SetCornerRadius(8)
				inner.Attach(f.Button(60, 130, gui.ButtonConfig{Text: "OK"}))
				outer.Attach(inner)
				w.Attach(outer)
			},
		},
	}
}
