// Example shows a window with a grid of aligned buttons, a label and a
// text box.
//
//	go run ./example/                       # OpenGL + GLFW window
//	go run ./example/ -backend raster -out demo.png
//	go run ./example/ -scene scene.yaml -theme dark.yaml -verbose
//
// The raster backend runs headless: it replays a short scripted session
// and writes the last frame to -out. The same demo on Ebitengine lives in
// ./example/ebiten, since Ebitengine and go-gl/glfw each link their own GLFW.
package main

import (
	"context"
	"flag"
	"fmt"
	"image"
	"log/slog"
	"os"
	"os/signal"
	"runtime"

	"github.com/gooey-ui/gui"
	"github.com/gooey-ui/gui/backend/opengl"
	"github.com/gooey-ui/gui/backend/raster"
	"github.com/gooey-ui/gui/example/demo"
)

const (
	windowWidth  = 800
	windowHeight = 600
	windowTitle  = "gui example"
)

func init() {
	// GLFW must run on the main thread.
	runtime.LockOSThread()
}

func main() {
	backend := flag.String("backend", "opengl", "opengl or raster")
	themePath := flag.String("theme", "", "YAML theme file")
	scenePath := flag.String("scene", "", "YAML scene file replacing the built-in demo")
	out := flag.String("out", "example.png", "PNG written by the raster backend")
	fps := flag.Int("fps", gui.DefaultFPS, "frames per second")
	verbose := flag.Bool("verbose", false, "log widget events")
	flag.Parse()

	gui.SetVerbose(*verbose)
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: gui.LogLevel()}))

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if err := run(ctx, logger, *backend, *themePath, *scenePath, *out, *fps); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run(ctx context.Context, logger *slog.Logger, backend, themePath, scenePath, out string, fps int) error {
	theme := gui.DefaultTheme()
	if themePath != "" {
		t, err := gui.LoadThemeFile(themePath)
		if err != nil {
			return err
		}
		theme = t
	}
	opts := []gui.Option{
		gui.WithTheme(theme),
		gui.WithFPS(fps),
		gui.WithSize(windowWidth, windowHeight),
		gui.WithLogger(logger),
	}

	switch backend {
	case "opengl":
		b, err := opengl.New(windowTitle, windowWidth, windowHeight)
		if err != nil {
			return err
		}
		defer b.Close()
		w := gui.NewWindow(b, opts...)
		if err := demo.Populate(w, logger, scenePath); err != nil {
			return err
		}
		return w.Run(ctx)

	case "raster":
		b := raster.New(windowWidth, windowHeight)
		w := gui.NewWindow(b, opts...)
		if err := demo.Populate(w, logger, scenePath); err != nil {
			return err
		}
		b.Push(demo.Script()...)
		b.OnPresent = func(*image.RGBA) error {
			b.Push(gui.Quit())
			return nil
		}
		if err := w.Run(ctx); err != nil {
			return err
		}
		if err := b.SavePNG(out); err != nil {
			return err
		}
		logger.Info("wrote frame", "path", out, "frames", w.Frames())
		return nil

	default:
		return fmt.Errorf("unknown backend %q", backend)
	}
}
