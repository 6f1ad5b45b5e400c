package gui

import (
	"fmt"
	"slices"
)

// Widget kinds known to every Factory.
const (
	KindPanel     = "Panel"
	KindButton    = "Button"
	KindLabel     = "Label"
	KindTextBox   = "TextBox"
	KindContainer = "Container"
)

// WidgetFactory builds a widget of one kind at (x, y). Zero width or height
// means the kind's default size.
type WidgetFactory func(f *Factory, x, y, w, h float32) Component

// Factory builds widgets with a theme and a naming policy. Widgets created
// without a name are named Kind_N by the factory's Namer. The factory also
// keeps a registry of widget kinds used by LoadScene.
type Factory struct {
	theme    Theme
	namer    *Namer
	registry map[string]WidgetFactory
}

// NewFactory creates a factory. It understands WithTheme and WithNamer.
func NewFactory(opts ...Option) *Factory {
	return newFactory(applyOptions(opts))
}

func newFactory(o options) *Factory {
	f := &Factory{
		theme:    o.theme,
		namer:    o.namer,
		registry: make(map[string]WidgetFactory),
	}
	f.registerBuiltins()
	return f
}

// Theme returns the theme applied to new widgets.
func (f *Factory) Theme() Theme { return f.theme }

// Namer returns the naming policy.
func (f *Factory) Namer() *Namer { return f.namer }

// Register adds or replaces a widget kind.
func (f *Factory) Register(kind string, build WidgetFactory) {
	f.registry[kind] = build
}

// Unregister removes a widget kind.
func (f *Factory) Unregister(kind string) {
	delete(f.registry, kind)
}

// Kinds returns the registered widget kinds, sorted.
func (f *Factory) Kinds() []string {
	kinds := make([]string, 0, len(f.registry))
	for k := range f.registry {
		kinds = append(kinds, k)
	}
	slices.Sort(kinds)
	return kinds
}

// Build creates a widget of a registered kind.
func (f *Factory) Build(kind string, x, y, w, h float32) (Component, error) {
	build, ok := f.registry[kind]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownWidget, kind)
	}
	return build(f, x, y, w, h), nil
}

func (f *Factory) registerBuiltins() {
	f.Register(KindPanel, func(f *Factory, x, y, w, h float32) Component {
		return f.Panel(x, y, PanelConfig{Width: w, Height: h})
	})
	f.Register(KindButton, func(f *Factory, x, y, w, h float32) Component {
		return f.Button(x, y, ButtonConfig{Width: w, Height: h})
	})
	f.Register(KindLabel, func(f *Factory, x, y, _, _ float32) Component {
		return f.Label(x, y, LabelConfig{})
	})
	f.Register(KindTextBox, func(f *Factory, x, y, w, h float32) Component {
		return f.TextBox(x, y, TextBoxConfig{Width: w, Height: h})
	})
	f.Register(KindContainer, func(f *Factory, _, _, _, _ float32) Component {
		c := NewContainer()
		c.SetName(f.namer.Next(KindContainer))
		return c
	})
}

func (f *Factory) name(kind, given string) string {
	if given != "" {
		return given
	}
	return f.namer.Next(kind)
}

// Panel builds a themed panel.
func (f *Factory) Panel(x, y float32, cfg PanelConfig) *Panel {
	cfg.Name = f.name(KindPanel, cfg.Name)
	return newPanel(f.theme, x, y, cfg)
}

// Button builds a themed button.
func (f *Factory) Button(x, y float32, cfg ButtonConfig) *Button {
	cfg.Name = f.name(KindButton, cfg.Name)
	return newButton(f.theme, x, y, cfg)
}

// Label builds a themed label.
func (f *Factory) Label(x, y float32, cfg LabelConfig) *Label {
	cfg.Name = f.name(KindLabel, cfg.Name)
	return newLabel(f.theme, x, y, cfg)
}

// TextBox builds a themed text box.
func (f *Factory) TextBox(x, y float32, cfg TextBoxConfig) *TextBox {
	cfg.Name = f.name(KindTextBox, cfg.Name)
	return newTextBox(f.theme, x, y, cfg)
}
