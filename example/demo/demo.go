// Package demo builds the widget tree shown by the example programs.
package demo

import (
	"fmt"
	"log/slog"

	"github.com/gooey-ui/gui"
)

// Populate fills the window from a scene file or with the built-in demo.
func Populate(w *gui.Window, logger *slog.Logger, scenePath string) error {
	status := w.Factory().Label(20, w.Root().Area().H-40, gui.LabelConfig{Name: "status", Text: "ready"})

	handlers := gui.Handlers{
		"log_click": gui.ClickFunc(func(c gui.Component, p gui.Vec2) {
			logger.Info("click", "widget", c.Name(), "x", p.X, "y", p.Y)
			status.SetText("clicked " + c.Name())
		}),
		"log_change": gui.ChangeFunc(func(c gui.Component, before, after string) {
			logger.Info("change", "widget", c.Name(), "before", before, "after", after)
			status.SetText(after)
		}),
	}

	if scenePath != "" {
		widgets, err := w.Factory().LoadSceneFile(scenePath, handlers)
		if err != nil {
			return err
		}
		for _, c := range widgets {
			w.Attach(c)
		}
		w.Attach(status)
		return nil
	}

	buildDemo(w, handlers)
	w.Attach(status)
	return nil
}

// buildDemo builds a 3×3 grid of buttons, each with its text aligned to the
// matching corner, edge or centre, above a text box.
func buildDemo(w *gui.Window, handlers gui.Handlers) {
	f := w.Factory()
	onClick := handlers["log_click"].(gui.ClickFunc)
	onChange := handlers["log_change"].(gui.ChangeFunc)

	grid := f.Panel(20, 20, gui.PanelConfig{Name: "grid", Text: "Alignment", Width: 480, Height: 360})
	grid.SetTextAlign(gui.AlignTop)
	grid.SetCornerRadius(6)

	horiz := []gui.Alignment{gui.AlignLeft, gui.AlignCenter, gui.AlignRight}
	vert := []gui.Alignment{gui.AlignTop, gui.AlignMiddle, gui.AlignBottom}
	for row, v := range vert {
		for col, h := range horiz {
			b := f.Button(float32(40+col*150), float32(60+row*100), gui.ButtonConfig{
				Name:    fmt.Sprintf("%s_%s", h, v),
				Text:    fmt.Sprintf("%s %s", h, v),
				Width:   140,
				Height:  80,
				OnClick: onClick,
			})
			b.SetTextAlign(h, v)
			grid.Attach(b)
		}
	}
	w.Attach(grid)

	w.Attach(f.Label(520, 40, gui.LabelConfig{Text: "Type below:"}))
	w.Attach(f.TextBox(520, 70, gui.TextBoxConfig{
		Name:      "input",
		Width:     250,
		MaxLength: 24,
		OnChange:  onChange,
	}))
}

// Script is a short session used by the headless backend.
func Script() []gui.Event {
	at := gui.Vec2{X: 600, Y: 94}
	return []gui.Event{
		gui.PointerMove(at, gui.Vec2{}, 0),
		gui.PointerDown(at, gui.MouseButtonLeft),
		gui.PointerUp(at, gui.MouseButtonLeft),
		gui.TextCommit("hello"),
		gui.KeyDown(gui.KeyBackspace),
		gui.TextCommit("!"),
	}
}
