package gui

// PanelConfig configures NewPanel. Zero Width or Height takes the theme size.
type PanelConfig struct {
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

// Panel is a filled, optionally bordered control that can hold children.
type Panel struct {
	Control

	borderOn bool
	radius   float32
}

// NewPanel creates a panel with its top-left corner at (x, y) using the
// default theme.
func NewPanel(x, y float32, cfg PanelConfig) *Panel {
	return newPanel(DefaultTheme(), x, y, cfg)
}

func newPanel(th Theme, x, y float32, cfg PanelConfig) *Panel {
	p := &Panel{}
	p.initPanel(p, th, panelArea(x, y, cfg.Width, cfg.Height, th.PanelSize))
	p.bg = th.PanelBackground
	p.apply(controlConfig{
		name: cfg.Name, tag: cfg.Tag, text: cfg.Text,
		onClick: cfg.OnClick, onMouseDown: cfg.OnMouseDown, onMouseUp: cfg.OnMouseUp, onMouseOver: cfg.OnMouseOver,
	})
	return p
}

func (p *Panel) initPanel(self Component, th Theme, area Rect) {
	p.InitControl(self, area)
	p.font = th.Font
	p.fg = th.PanelText
	p.border = th.PanelBorder
	p.margin = th.PanelMargin
	p.borderOn = th.PanelBorderOn
	p.radius = th.PanelRadius
}

func panelArea(x, y, w, h float32, def Vec2) Rect {
	if w <= 0 {
		w = def.X
	}
	if h <= 0 {
		h = def.Y
	}
	return Rect{X: x, Y: y, W: w, H: h}
}

// Name returns the panel's name, or its text when no name is set.
func (p *Panel) Name() string {
	if p.name == "" {
		return p.text
	}
	return p.name
}

// Border reports whether the border is drawn.
func (p *Panel) Border() bool { return p.borderOn }

// SetBorder turns the border on or off.
func (p *Panel) SetBorder(on bool) { p.borderOn = on }

// CornerRadius returns the corner radius handed to the surface.
func (p *Panel) CornerRadius() float32 { return p.radius }

// SetCornerRadius changes the corner radius.
func (p *Panel) SetCornerRadius(r float32) { p.radius = r }

// Draw fills the panel (border first), draws its text, then its children.
// An invisible panel still draws its children.
func (p *Panel) Draw() {
	if p.Visible() {
		p.DrawFrame(p.bg, p.borderOn, p.radius)
		p.DrawText()
	}
	p.DrawChildren()
}

// SetProperty implements Component.
func (p *Panel) SetProperty(key string, value any) error {
	switch key {
	case "border":
		v, err := asBool(key, value)
		if err != nil {
			return err
		}
		p.borderOn = v
	case "corner_radius":
		r, err := asFloat(key, value)
		if err != nil {
			return err
		}
		p.radius = r
	default:
		return p.Control.SetProperty(key, value)
	}
	return nil
}
