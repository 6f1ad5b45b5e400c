package gui

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"gopkg.in/yaml.v3"
)

// Handlers maps the callback names used in a scene file to functions.
// Values must match the slot they are bound to: ClickFunc for on_click,
// MouseButtonFunc for on_mouse_down and on_mouse_up, MouseOverFunc for
// on_mouse_over and ChangeFunc for on_change.
type Handlers map[string]any

// LoadScene builds a widget tree from YAML. The document is either a list
// of widgets or a mapping with a "widgets" list. Each widget is a mapping:
//
//	- type: Button        # a kind registered with the factory
//	  x: 10
//	  y: 10
//	  width: 60           # optional, 0 = default size
//	  height: 30
//	  text: OK
//	  on_click: ok        # looked up in handlers
//	  children: [...]     # only for kinds that hold children
//
// Other keys are passed to the widget's SetProperty in file order.
// The top-level widgets are returned in file order, unattached.
func (f *Factory) LoadScene(r io.Reader, handlers Handlers) ([]Component, error) {
	var doc yaml.Node
	if err := yaml.NewDecoder(r).Decode(&doc); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to parse scene: %w", err)
	}

	root := &doc
	if root.Kind == yaml.DocumentNode && len(root.Content) > 0 {
		root = root.Content[0]
	}

	list := root
	if root.Kind == yaml.MappingNode {
		list = nil
		for i := 0; i+1 < len(root.Content); i += 2 {
			if root.Content[i].Value == "widgets" {
				list = root.Content[i+1]
			}
		}
		if list == nil {
			return nil, fmt.Errorf("scene line %d: %w: missing widgets list", root.Line, ErrTypeMismatch)
		}
	}
	if list.Kind != yaml.SequenceNode {
		return nil, fmt.Errorf("scene line %d: %w: widgets must be a list", list.Line, ErrTypeMismatch)
	}

	out := make([]Component, 0, len(list.Content))
	for _, item := range list.Content {
		c, err := f.buildSceneNode(item, handlers)
		if err != nil {
			return nil, err
		}
		out = append(out, c)
	}
	return out, nil
}

// LoadSceneFile reads a YAML scene from path.
func (f *Factory) LoadSceneFile(path string, handlers Handlers) ([]Component, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read scene file: %w", err)
	}
	return f.LoadScene(bytes.NewReader(data), handlers)
}

type sceneProp struct {
	key  string
	node *yaml.Node
}

func (f *Factory) buildSceneNode(n *yaml.Node, handlers Handlers) (Component, error) {
	if n.Kind != yaml.MappingNode {
		return nil, fmt.Errorf("scene line %d: %w: widget must be a mapping", n.Line, ErrTypeMismatch)
	}

	var (
		kind       string
		geom       [4]float32
		childNodes *yaml.Node
		props      []sceneProp
	)
	for i := 0; i+1 < len(n.Content); i += 2 {
		key, val := n.Content[i].Value, n.Content[i+1]
		switch key {
		case "type":
			kind = val.Value
		case "x", "y", "width", "height":
			var v float32
			if err := val.Decode(&v); err != nil {
				return nil, fmt.Errorf("scene line %d: %w: %s wants number", val.Line, ErrTypeMismatch, key)
			}
			geom[geomIndex(key)] = v
		case "children":
			childNodes = val
		default:
			props = append(props, sceneProp{key: key, node: val})
		}
	}
	if kind == "" {
		return nil, fmt.Errorf("scene line %d: %w: missing type", n.Line, ErrUnknownWidget)
	}

	c, err := f.Build(kind, geom[0], geom[1], geom[2], geom[3])
	if err != nil {
		return nil, fmt.Errorf("scene line %d: %w", n.Line, err)
	}

	for _, p := range props {
		var v any
		if err := p.node.Decode(&v); err != nil {
			return nil, fmt.Errorf("scene line %d: %s: %w", p.node.Line, p.key, err)
		}
		if strings.HasPrefix(p.key, "on_") {
			v, err = handlers.lookup(p.key, v)
			if err != nil {
				return nil, fmt.Errorf("scene line %d: %w", p.node.Line, err)
			}
		}
		if err := c.SetProperty(p.key, v); err != nil {
			return nil, fmt.Errorf("scene line %d: %s: %w", p.node.Line, kind, err)
		}
	}

	if childNodes != nil {
		parent, ok := c.(interface{ Attach(Component) })
		if !ok {
			return nil, fmt.Errorf("scene line %d: %w: %s cannot hold children", childNodes.Line, ErrTypeMismatch, kind)
		}
		if childNodes.Kind != yaml.SequenceNode {
			return nil, fmt.Errorf("scene line %d: %w: children must be a list", childNodes.Line, ErrTypeMismatch)
		}
		for _, item := range childNodes.Content {
			child, err := f.buildSceneNode(item, handlers)
			if err != nil {
				return nil, err
			}
			parent.Attach(child)
		}
	}

	guiLogger.Debug("scene widget", "kind", kind, "name", c.Name(), "line", n.Line)
	return c, nil
}

// geomIndex maps a geometry key to its index.
func geomIndex(key string) int {
	switch key {
	case "x":
		return 0
	case "y":
		return 1
	case "width":
		return 2
	default:
		return 3
	}
}

func (h Handlers) lookup(key string, v any) (any, error) {
	name, ok := v.(string)
	if !ok {
		return nil, fmt.Errorf("%w: %s wants a handler name, got %T", ErrTypeMismatch, key, v)
	}
	fn, ok := h[name]
	if !ok {
		return nil, fmt.Errorf("%w: %s: %q", ErrUnknownHandler, key, name)
	}
	return fn, nil
}
