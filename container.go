package gui

import "slices"

// Container owns an ordered list of children. Attachment order is draw and
// dispatch order, so later children paint over earlier ones.
//
// Pointer events are not captured: every child whose area contains the
// pointer reacts to it, in attachment order, including children hidden
// underneath a sibling.
//
// Traversal iterates a snapshot of the children taken when the pass starts.
// A child detached during the pass (typically by a callback) is skipped if
// it has not been visited yet; a child attached during the pass is first
// visited on the next pass.
type Container struct {
	Base
	children []Component
}

// NewContainer creates an invisible grouping node.
func NewContainer() *Container {
	c := &Container{}
	c.InitBase(c)
	return c
}

// Attach appends child, sets its parent and hands it this container's
// display unless it already has one. Attaching the same child twice is
// allowed; it is then drawn and dispatched twice.
func (c *Container) Attach(child Component) {
	if child == nil {
		return
	}
	b := child.base()
	b.parent = c.self
	c.children = append(c.children, child)
	if c.display != nil {
		propagateDisplay(child, c.display)
	}
	guiLogger.Debug("attach", "parent", componentName(c.self), "child", componentName(child), "children", len(c.children))
}

// Detach removes the first occurrence of child and clears its parent link.
// It reports whether child was found.
func (c *Container) Detach(child Component) bool {
	i := slices.Index(c.children, child)
	if i < 0 {
		return false
	}
	c.children = slices.Delete(c.children, i, i+1)
	if !slices.Contains(c.children, child) {
		child.base().parent = nil
	}
	guiLogger.Debug("detach", "parent", componentName(c.self), "child", componentName(child), "children", len(c.children))
	return true
}

// Children returns a snapshot of the children in attachment order.
func (c *Container) Children() []Component {
	return slices.Clone(c.children)
}

// Len returns the number of attached children.
func (c *Container) Len() int {
	return len(c.children)
}

// Draw draws the children in attachment order.
func (c *Container) Draw() {
	c.DrawChildren()
}

// Dispatch forwards events to the children in attachment order.
func (c *Container) Dispatch(events []Event) {
	c.DispatchChildren(events)
}

// DrawChildren draws every child once, in attachment order.
func (c *Container) DrawChildren() {
	c.each(func(child Component) { child.Draw() })
}

// DispatchChildren dispatches events to every child, in attachment order.
func (c *Container) DispatchChildren(events []Event) {
	c.each(func(child Component) { child.Dispatch(events) })
}

func (c *Container) each(fn func(Component)) {
	if len(c.children) == 0 {
		return
	}
	snapshot := slices.Clone(c.children)
	for _, child := range snapshot {
		if !slices.Contains(c.children, child) {
			continue
		}
		fn(child)
	}
}
