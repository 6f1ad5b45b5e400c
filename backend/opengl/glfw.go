package opengl

import (
	"sync"

	"github.com/go-gl/glfw/v3.3/glfw"

	"github.com/gooey-ui/gui"
)

// GLFWInputAdapter turns GLFW callbacks into gui events.
type GLFWInputAdapter struct {
	window *glfw.Window

	mu      sync.Mutex
	events  []gui.Event
	pos     gui.Vec2
	buttons gui.ButtonMask
}

// NewGLFWInputAdapter installs callbacks on window.
func NewGLFWInputAdapter(window *glfw.Window) *GLFWInputAdapter {
	adapter := &GLFWInputAdapter{window: window}

	x, y := window.GetCursorPos()
	adapter.pos = gui.Vec2{X: float32(x), Y: float32(y)}

	// Setup callbacks
	window.SetKeyCallback(adapter.keyCallback)
	window.SetCharCallback(adapter.charCallback)
	window.SetMouseButtonCallback(adapter.mouseButtonCallback)
	window.SetCursorPosCallback(adapter.cursorPosCallback)
	window.SetCloseCallback(adapter.closeCallback)

	return adapter
}

// Drain returns the events queued since the last call.
func (a *GLFWInputAdapter) Drain() []gui.Event {
	a.mu.Lock()
	defer a.mu.Unlock()
	out := a.events
	a.events = nil
	return out
}

func (a *GLFWInputAdapter) push(ev gui.Event) {
	a.mu.Lock()
	a.events = append(a.events, ev)
	a.mu.Unlock()
}

func (a *GLFWInputAdapter) keyCallback(w *glfw.Window, key glfw.Key, scancode int, action glfw.Action, mods glfw.ModifierKey) {
	guiKey := glfwKeyToGUIKey(key)
	if guiKey == gui.KeyNone {
		return
	}
	if action == glfw.Press || action == glfw.Repeat {
		a.push(gui.KeyDown(guiKey))
	}
}

func (a *GLFWInputAdapter) charCallback(w *glfw.Window, char rune) {
	a.push(gui.TextCommit(string(char)))
}

func (a *GLFWInputAdapter) mouseButtonCallback(w *glfw.Window, button glfw.MouseButton, action glfw.Action, mods glfw.ModifierKey) {
	guiButton := glfwMouseButtonToGUI(button)
	if guiButton < 0 {
		return
	}

	switch action {
	case glfw.Press:
		a.buttons = a.buttons.With(guiButton)
		a.push(gui.PointerDown(a.pos, guiButton))
	case glfw.Release:
		a.buttons = a.buttons.Without(guiButton)
		a.push(gui.PointerUp(a.pos, guiButton))
	}
}

func (a *GLFWInputAdapter) cursorPosCallback(w *glfw.Window, xpos, ypos float64) {
	pos := gui.Vec2{X: float32(xpos), Y: float32(ypos)}
	rel := pos.Sub(a.pos)
	a.pos = pos
	a.push(gui.PointerMove(pos, rel, a.buttons))
}

func (a *GLFWInputAdapter) closeCallback(w *glfw.Window) {
	a.push(gui.Quit())
}

// glfwKeyToGUIKey maps GLFW keys to GUI keys.
func glfwKeyToGUIKey(key glfw.Key) gui.Key {
	switch key {
	case glfw.KeyTab:
		return gui.KeyTab
	case glfw.KeyLeft:
		return gui.KeyLeft
	case glfw.KeyRight:
		return gui.KeyRight
	case glfw.KeyUp:
		return gui.KeyUp
	case glfw.KeyDown:
		return gui.KeyArrowDown
	case glfw.KeyPageUp:
		return gui.KeyPageUp
	case glfw.KeyPageDown:
		return gui.KeyPageDown
	case glfw.KeyHome:
		return gui.KeyHome
	case glfw.KeyEnd:
		return gui.KeyEnd
	case glfw.KeyInsert:
		return gui.KeyInsert
	case glfw.KeyDelete:
		return gui.KeyDelete
	case glfw.KeyBackspace:
		return gui.KeyBackspace
	case glfw.KeySpace:
		return gui.KeySpace
	case glfw.KeyEnter:
		return gui.KeyEnter
	case glfw.KeyKPEnter:
		return gui.KeyKeypadEnter
	case glfw.KeyEscape:
		return gui.KeyEscape
	case glfw.KeyF1:
		return gui.KeyF1
	case glfw.KeyF2:
		return gui.KeyF2
	case glfw.KeyF3:
		return gui.KeyF3
	case glfw.KeyF4:
		return gui.KeyF4
	case glfw.KeyF5:
		return gui.KeyF5
	case glfw.KeyF6:
		return gui.KeyF6
	case glfw.KeyF7:
		return gui.KeyF7
	case glfw.KeyF8:
		return gui.KeyF8
	case glfw.KeyF9:
		return gui.KeyF9
	case glfw.KeyF10:
		return gui.KeyF10
	case glfw.KeyF11:
		return gui.KeyF11
	case glfw.KeyF12:
		return gui.KeyF12
	default:
		return gui.KeyNone
	}
}

// glfwMouseButtonToGUI maps GLFW mouse buttons to GUI mouse buttons.
func glfwMouseButtonToGUI(button glfw.MouseButton) gui.MouseButton {
	switch button {
	case glfw.MouseButtonLeft:
		return gui.MouseButtonLeft
	case glfw.MouseButtonRight:
		return gui.MouseButtonRight
	case glfw.MouseButtonMiddle:
		return gui.MouseButtonMiddle
	default:
		return -1
	}
}
