package gui_test

import (
	"slices"
	"testing"

	"github.com/gooey-ui/gui"
)

func TestContainer_OverlappingChildrenAllReceive(t *testing.T) {
	var order []string
	record := func(c gui.Component, _ gui.Vec2) { order = append(order, c.Name()) }

	root := gui.NewContainer()
	a := gui.NewButton(0, 0, gui.ButtonConfig{Name: "a", Width: 50, Height: 50, OnClick: record})
	b := gui.NewButton(25, 25, gui.ButtonConfig{Name: "b", Width: 50, Height: 50, OnClick: record})
	root.Attach(a)
	root.Attach(b)

	root.Dispatch([]gui.Event{down(30, 30)})
	if !slices.Equal(order, []string{"a", "b"}) {
		t.Errorf("click order = %v, want [a b]", order)
	}
}

func TestContainer_DetachDuringDispatch(t *testing.T) {
	var order []string
	root := gui.NewContainer()
	b := gui.NewButton(0, 0, gui.ButtonConfig{Name: "b", OnClick: func(c gui.Component, _ gui.Vec2) {
		order = append(order, c.Name())
	}})
	a := gui.NewButton(0, 0, gui.ButtonConfig{Name: "a", OnClick: func(c gui.Component, _ gui.Vec2) {
		order = append(order, c.Name())
		root.Detach(b)
	}})
	root.Attach(a)
	root.Attach(b)

	root.Dispatch([]gui.Event{down(10, 10)})
	if !slices.Equal(order, []string{"a"}) {
		t.Errorf("click order = %v, want [a]", order)
	}
	if b.Parent() != nil {
		t.Error("detached child still has a parent")
	}
	if root.Len() != 1 {
		t.Errorf("Len = %d, want 1", root.Len())
	}
}

func TestContainer_AttachDuringDispatch(t *testing.T) {
	var order []string
	record := func(c gui.Component, _ gui.Vec2) { order = append(order, c.Name()) }

	root := gui.NewContainer()
	late := gui.NewButton(0, 0, gui.ButtonConfig{Name: "late", OnClick: record})
	attached := false
	a := gui.NewButton(0, 0, gui.ButtonConfig{Name: "a", OnClick: func(c gui.Component, p gui.Vec2) {
		record(c, p)
		if !attached {
			attached = true
			root.Attach(late)
		}
	}})
	root.Attach(a)

	root.Dispatch([]gui.Event{down(10, 10)})
	if !slices.Equal(order, []string{"a"}) {
		t.Fatalf("first pass = %v, want [a]", order)
	}

	order = nil
	root.Dispatch([]gui.Event{down(10, 10)})
	if !slices.Equal(order, []string{"a", "late"}) {
		t.Errorf("second pass = %v, want [a late]", order)
	}
}

func TestContainer_DrawOrder(t *testing.T) {
	d, s := newTestDisplay()
	root := gui.NewContainer()
	root.SetDisplay(d)

	first := gui.NewPanel(0, 0, gui.PanelConfig{Name: "first"})
	second := gui.NewPanel(10, 10, gui.PanelConfig{Name: "second"})
	first.SetBorder(false)
	second.SetBorder(false)
	first.SetBackground(gui.ColorRed)
	second.SetBackground(gui.ColorBlue)
	root.Attach(first)
	root.Attach(second)

	root.Draw()
	if len(s.fills) != 2 {
		t.Fatalf("fills = %d, want 2", len(s.fills))
	}
	if s.fills[0].c != gui.ColorRed || s.fills[1].c != gui.ColorBlue {
		t.Errorf("fill order = %v, %v", s.fills[0].c, s.fills[1].c)
	}
}

func TestContainer_DisplayPropagation(t *testing.T) {
	d, _ := newTestDisplay()
	other, _ := newTestDisplay()

	root := gui.NewContainer()
	group := gui.NewContainer()
	leaf := gui.NewLabel(0, 0, gui.LabelConfig{Text: "x"})
	group.Attach(leaf)

	own := gui.NewLabel(0, 0, gui.LabelConfig{Text: "y"})
	own.SetDisplay(other)

	root.SetDisplay(d)
	root.Attach(group)
	root.Attach(own)

	if group.Display() != d || leaf.Display() != d {
		t.Error("expected the subtree to inherit the container's display")
	}
	if own.Display() != other {
		t.Error("a child with its own display should keep it")
	}
	if leaf.Parent() != gui.Component(group) || group.Parent() != gui.Component(root) {
		t.Error("parent links not set")
	}
	if leaf.LayoutCount() != 1 {
		t.Errorf("leaf LayoutCount = %d, want 1 once a display arrived", leaf.LayoutCount())
	}
}

func TestContainer_InvisibleStillTraversesChildren(t *testing.T) {
	d, s := newTestDisplay()
	parent := gui.NewPanel(0, 0, gui.PanelConfig{Name: "parent"})
	child := gui.NewLabel(5, 5, gui.LabelConfig{Text: "visible"})
	parent.Attach(child)
	parent.SetDisplay(d)
	parent.Hide()

	parent.Draw()
	if len(s.fills) != 0 {
		t.Errorf("hidden panel filled %d rects", len(s.fills))
	}
	if len(s.blits) != 1 || s.blits[0].text != "visible" {
		t.Errorf("blits = %v, want the child's text", s.blits)
	}
}

func TestContainer_DetachMissing(t *testing.T) {
	root := gui.NewContainer()
	if root.Detach(gui.NewContainer()) {
		t.Error("Detach reported success for a child never attached")
	}
}
