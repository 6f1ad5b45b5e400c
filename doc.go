/*
Package gui provides a retained-mode widget toolkit. Widgets are long-lived
values arranged in a tree; once per frame the tree is handed the batch of
input events that arrived since the last frame and is then drawn.

# Overview

A Window owns the root panel, a Display (surface, fonts, input state) and
the frame loop. Widgets attached anywhere below the root inherit the
Display and draw through its Surface. Backends implement Surface and
Backend; this module ships three:

  - backend/raster: headless, draws into an *image.RGBA
  - backend/opengl: OpenGL 4.1 through a GLFW window and a DrawList
  - backend/ebitengine: runs inside an Ebitengine game

# Quick Start

	b := raster.New(800, 600)
	w := gui.NewWindow(b)
	f := w.Factory()

	ok := f.Button(20, 20, gui.ButtonConfig{Text: "OK", OnClick: func(c gui.Component, p gui.Vec2) {
	    fmt.Println("clicked", c.Name())
	}})
	ok.SetTextAlign(gui.AlignLeft, gui.AlignBottom)
	w.Attach(ok)

	w.Attach(f.TextBox(20, 80, gui.TextBoxConfig{MaxLength: 16}))

	err := w.Run(ctx) // until a Quit event or ctx is done

# Widgets

  - Container: an ordered list of children, dispatched and drawn in
    attachment order
  - Control: a container with an area, a line of aligned text, a disable
    counter and pointer callbacks
  - Panel: a control with a background and optional border
  - Button: a panel whose fill follows hover and press
  - Label: auto-sized text pinned to an anchor point
  - TextBox: single-line editing with input method composition

# Events

Every node sees every event in the batch. Overlapping siblings are not
occluded: a press over two buttons reaches both, first attached first.
Invisible or disabled nodes skip their own handling but still pass the
batch to their children.

# Text

Each widget renders its text once through Surface.RenderText and keeps the
result. The text is re-rendered only when its content, font, colours or
alignment change; moving or resizing a widget re-places the cached glyph.

# Themes and scenes

Widget defaults come from a Theme, which can be loaded from YAML with
LoadTheme. A Factory builds themed widgets, names unnamed ones Kind_N and
can build a whole tree from a YAML scene with LoadScene.

# Logging

The package logs through log/slog. SetVerbose(true) enables debug output
for attach, state changes and scene loading.
*/
package gui
