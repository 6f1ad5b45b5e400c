// Command ebiten runs the example demo on the Ebitengine backend.
//
//	go run ./example/ebiten/ -theme dark.yaml
package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"os/signal"

	"github.com/gooey-ui/gui"
	"github.com/gooey-ui/gui/backend/ebitengine"
	"github.com/gooey-ui/gui/example/demo"
)

const (
	windowWidth  = 800
	windowHeight = 600
	windowTitle  = "gui example (ebitengine)"
)

func main() {
	themePath := flag.String("theme", "", "YAML theme file")
	scenePath := flag.String("scene", "", "YAML scene file replacing the built-in demo")
	fps := flag.Int("fps", gui.DefaultFPS, "frames per second")
	verbose := flag.Bool("verbose", false, "log widget events")
	flag.Parse()

	gui.SetVerbose(*verbose)
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: gui.LogLevel()}))

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if err := run(ctx, logger, *themePath, *scenePath, *fps); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run(ctx context.Context, logger *slog.Logger, themePath, scenePath string, fps int) error {
	theme := gui.DefaultTheme()
	if themePath != "" {
		t, err := gui.LoadThemeFile(themePath)
		if err != nil {
			return err
		}
		theme = t
	}

	g := ebitengine.New(windowWidth, windowHeight)
	w := gui.NewWindow(g,
		gui.WithTheme(theme),
		gui.WithFPS(fps),
		gui.WithSize(windowWidth, windowHeight),
		gui.WithLogger(logger),
	)
	if err := demo.Populate(w, logger, scenePath); err != nil {
		return err
	}
	return ebitengine.Run(ctx, w, g, windowTitle)
}
