package gui

// ButtonConfig configures NewButton. Zero Width or Height takes the theme
// size (60x30 by default).
type ButtonConfig struct {
	Name   string
	Tag    any
	Text   string
	Width  float32
	Height float32

	OnClick     ClickFunc
	OnMouseDown MouseButtonFunc
	OnMouseUp   MouseButtonFunc
	OnMouseOver MouseOverFunc
}

// Button is a panel whose fill follows the pointer: the click colour while
// pressed, the hover colour while the pointer is over it and the button
// colour otherwise. The colour is chosen each time the button is drawn.
type Button struct {
	Panel

	buttonColour Color
	hoverColour  Color
	clickColour  Color
}

// NewButton creates a button with its top-left corner at (x, y) using the
// default theme.
func NewButton(x, y float32, cfg ButtonConfig) *Button {
	return newButton(DefaultTheme(), x, y, cfg)
}

func newButton(th Theme, x, y float32, cfg ButtonConfig) *Button {
	b := &Button{
		buttonColour: th.ButtonColour,
		hoverColour:  th.HoverColour,
		clickColour:  th.ClickColour,
	}
	b.initPanel(b, th, panelArea(x, y, cfg.Width, cfg.Height, th.ButtonSize))
	b.fg = th.ButtonText
	b.radius = th.ButtonRadius
	b.apply(controlConfig{
		name: cfg.Name, tag: cfg.Tag, text: cfg.Text,
		onClick: cfg.OnClick, onMouseDown: cfg.OnMouseDown, onMouseUp: cfg.OnMouseUp, onMouseOver: cfg.OnMouseOver,
	})
	return b
}

// ButtonColour returns the resting fill.
func (b *Button) ButtonColour() Color { return b.buttonColour }

// SetButtonColour changes the resting fill.
func (b *Button) SetButtonColour(c Color) { b.buttonColour = c }

// HoverColour returns the fill used while the pointer is over the button.
func (b *Button) HoverColour() Color { return b.hoverColour }

// SetHoverColour changes the hover fill.
func (b *Button) SetHoverColour(c Color) { b.hoverColour = c }

// ClickColour returns the fill used while the button is pressed.
func (b *Button) ClickColour() Color { return b.clickColour }

// SetClickColour changes the pressed fill.
func (b *Button) SetClickColour(c Color) { b.clickColour = c }

// CurrentColour returns the fill the next Draw will use.
func (b *Button) CurrentColour() Color {
	if b.Disabled() {
		return b.buttonColour
	}
	pos, ok := b.display.pointer()
	if !ok || !b.area.Contains(pos) {
		return b.buttonColour
	}
	if b.clicked {
		return b.clickColour
	}
	return b.hoverColour
}

// Draw fills the button with its current colour, draws the text, then the
// children.
func (b *Button) Draw() {
	if b.Visible() {
		b.DrawFrame(b.CurrentColour(), b.borderOn, b.radius)
		b.DrawText()
	}
	b.DrawChildren()
}

// SetProperty implements Component.
func (b *Button) SetProperty(key string, value any) error {
	var dst *Color
	switch key {
	case "button_colour", "button_color":
		dst = &b.buttonColour
	case "hover_colour", "hover_color":
		dst = &b.hoverColour
	case "click_colour", "click_color":
		dst = &b.clickColour
	default:
		return b.Panel.SetProperty(key, value)
	}
	c, err := asColor(key, value)
	if err != nil {
		return err
	}
	*dst = c
	return nil
}
