// Package gesture is a pointer drag-and-drop engine over surface containers.
//
// The engine is imperative: when a drag ends over a registered container it
// moves the element there itself, then tells its subscribers. A subscriber
// that owns the real state is expected to call Cancel(true) from inside the
// drop handler and re-render instead.
package gesture

import "github.com/idilsaglam/swimlane/internal/surface"

// DropEvent describes a finished drag. Sibling is the element the dragged
// one was inserted before, nil when appended.
type DropEvent struct {
	El      *surface.Element
	Target  *surface.Container
	Source  *surface.Container
	Sibling *surface.Element
}

type drag struct {
	el     *surface.Element
	source *surface.Container
	index  int
	startX int
	startY int
	x, y   int
	moved  bool
}

// Engine tracks at most one drag at a time.
type Engine struct {
	containers []*surface.Container
	handlers   map[int]func(DropEvent)
	order      []int
	nextID     int
	drag       *drag
}

func New(containers ...*surface.Container) *Engine {
	e := &Engine{handlers: map[int]func(DropEvent){}}
	e.Add(containers...)
	return e
}

// Add registers containers as drag sources and drop targets.
func (e *Engine) Add(containers ...*surface.Container) {
	for _, c := range containers {
		if c != nil && !e.has(c) {
			e.containers = append(e.containers, c)
		}
	}
}

func (e *Engine) has(c *surface.Container) bool {
	for _, x := range e.containers {
		if x == c {
			return true
		}
	}
	return false
}

// On subscribes fn to drop events. Handlers run in subscription order.
func (e *Engine) On(fn func(DropEvent)) (unsubscribe func()) {
	id := e.nextID
	e.nextID++
	e.handlers[id] = fn
	e.order = append(e.order, id)
	return func() {
		delete(e.handlers, id)
		for i, x := range e.order {
			if x == id {
				e.order = append(e.order[:i], e.order[i+1:]...)
				break
			}
		}
	}
}

// Press starts a drag if (x, y) is over an element of a registered
// container. It reports whether a drag started.
func (e *Engine) Press(x, y int) bool {
	if e.drag != nil {
		e.Cancel(true)
	}
	for _, c := range e.containers {
		if !c.Rect.Contains(x, y) {
			continue
		}
		for i, el := range c.Children() {
			if el.Rect.Contains(x, y) {
				e.drag = &drag{el: el, source: c, index: i, startX: x, startY: y, x: x, y: y}
				return true
			}
		}
	}
	return false
}

// Move updates the pointer position of the active drag.
func (e *Engine) Move(x, y int) {
	if e.drag == nil {
		return
	}
	e.drag.x, e.drag.y = x, y
	if x != e.drag.startX || y != e.drag.startY {
		e.drag.moved = true
	}
}

// Release ends the active drag at (x, y). Over a registered container the
// element is moved there and a DropEvent goes to every subscriber; anywhere
// else, or when the pointer never moved, the drag is cancelled.
func (e *Engine) Release(x, y int) {
	d := e.drag
	if d == nil {
		return
	}
	e.Move(x, y)
	target := e.containerAt(x, y)
	if target == nil || !d.moved {
		e.Cancel(true)
		return
	}

	sibling := e.siblingAt(target, d.el, x, y)
	target.Insert(d.el, sibling)

	ev := DropEvent{El: d.el, Target: target, Source: d.source, Sibling: sibling}
	for _, id := range append([]int(nil), e.order...) {
		if fn, ok := e.handlers[id]; ok {
			fn(ev)
		}
	}
	if e.drag == d {
		e.drag = nil
	}
}

// Cancel aborts the active drag. With revert, an element that was already
// moved goes back to its original position in the source container.
func (e *Engine) Cancel(revert bool) {
	d := e.drag
	if d == nil {
		return
	}
	e.drag = nil
	if revert && (d.el.Parent() != d.source || d.source.IndexOf(d.el) != d.index) {
		d.source.InsertAt(d.el, d.index)
	}
}

// Dragging returns the element being dragged.
func (e *Engine) Dragging() (*surface.Element, bool) {
	if e.drag == nil {
		return nil, false
	}
	return e.drag.el, true
}

// Over returns the registered container under the pointer during a drag.
func (e *Engine) Over() *surface.Container {
	if e.drag == nil || !e.drag.moved {
		return nil
	}
	return e.containerAt(e.drag.x, e.drag.y)
}

func (e *Engine) containerAt(x, y int) *surface.Container {
	for _, c := range e.containers {
		if c.Rect.Contains(x, y) {
			return c
		}
	}
	return nil
}

// siblingAt picks the child of target the element lands in front of: the
// first child whose top edge is below the pointer.
func (e *Engine) siblingAt(target *surface.Container, el *surface.Element, x, y int) *surface.Element {
	for _, c := range target.Children() {
		if c == el {
			continue
		}
		if c.Rect.Contains(x, y) || c.Rect.Y > y {
			return c
		}
	}
	return nil
}
