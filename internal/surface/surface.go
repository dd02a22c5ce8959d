// Package surface is the element tree shared by the board renderer and the
// gesture engine: lane containers holding card elements, each with a screen
// rectangle for hit testing.
//
// Two parties write to it. Render rebuilds it from a layout on every pass;
// the gesture engine reparents elements directly while a drag completes.
// Render refuses to run over a tree that was changed behind its back.
package surface

import "fmt"

// Rect is a screen region in terminal cells.
type Rect struct {
	X, Y, W, H int
}

func (r Rect) Contains(x, y int) bool {
	return x >= r.X && x < r.X+r.W && y >= r.Y && y < r.Y+r.H
}

// Element is one rendered card.
type Element struct {
	ID   string
	Rect Rect

	attrs  map[string]string
	parent *Container
}

// Attr returns the named attribute, or "".
func (e *Element) Attr(name string) string { return e.attrs[name] }

// Parent is the container currently holding e, if any.
func (e *Element) Parent() *Container { return e.parent }

// Container is a lane column. Handles are stable across renders for as long
// as the layout keeps producing the same container id.
type Container struct {
	ID   string
	Rect Rect

	children []*Element
}

// Children returns a copy of the child list.
func (c *Container) Children() []*Element {
	out := make([]*Element, len(c.children))
	copy(out, c.children)
	return out
}

func (c *Container) Len() int { return len(c.children) }

// IndexOf returns e's position in c, or -1.
func (c *Container) IndexOf(e *Element) int {
	for i, x := range c.children {
		if x == e {
			return i
		}
	}
	return -1
}

// Insert moves e into c before sibling. A nil sibling, or one that is not a
// child of c, appends.
func (c *Container) Insert(e, sibling *Element) {
	e.detach()
	i := len(c.children)
	if sibling != nil {
		if j := c.IndexOf(sibling); j >= 0 {
			i = j
		}
	}
	c.insertAt(e, i)
}

// InsertAt moves e into c at index i, clamped to the child range.
func (c *Container) InsertAt(e *Element, i int) {
	e.detach()
	if i < 0 {
		i = 0
	}
	if i > len(c.children) {
		i = len(c.children)
	}
	c.insertAt(e, i)
}

func (c *Container) insertAt(e *Element, i int) {
	c.children = append(c.children, nil)
	copy(c.children[i+1:], c.children[i:])
	c.children[i] = e
	e.parent = c
}

func (e *Element) detach() {
	p := e.parent
	if p == nil {
		return
	}
	if i := p.IndexOf(e); i >= 0 {
		p.children = append(p.children[:i], p.children[i+1:]...)
	}
	e.parent = nil
}

// ElementSpec and ContainerSpec describe one render pass.
type ElementSpec struct {
	ID    string
	Attrs map[string]string
	Rect  Rect
}

type ContainerSpec struct {
	ID       string
	Rect     Rect
	Elements []ElementSpec
}

// StaleElementError reports an element that is no longer where the previous
// render put it.
type StaleElementError struct {
	ElementID string
	Want      string // container id from the last render
	Got       string // container id found now, "" if detached
}

func (e *StaleElementError) Error() string {
	if e.Got == "" {
		return fmt.Sprintf("surface: element %q is missing from container %q", e.ElementID, e.Want)
	}
	return fmt.Sprintf("surface: element %q rendered into %q but found in %q", e.ElementID, e.Want, e.Got)
}

// Surface holds the containers of the last render pass.
type Surface struct {
	containers []*Container
	byID       map[string]*Container
	elements   map[string]*Element
	rendered   map[string]string
}

func New() *Surface {
	return &Surface{
		byID:     map[string]*Container{},
		elements: map[string]*Element{},
		rendered: map[string]string{},
	}
}

// Render replaces the tree with layout. Containers and elements are reused
// by id so handles held elsewhere stay valid. If any element from the
// previous pass was moved or removed by someone else, Render leaves the
// tree untouched and returns a *StaleElementError.
func (s *Surface) Render(layout []ContainerSpec) error {
	if err := s.verify(); err != nil {
		return err
	}

	containers := make([]*Container, 0, len(layout))
	byID := make(map[string]*Container, len(layout))
	elements := make(map[string]*Element)
	rendered := make(map[string]string)
	for _, cs := range layout {
		c := s.byID[cs.ID]
		if c == nil {
			c = &Container{ID: cs.ID}
		}
		c.Rect = cs.Rect
		c.children = c.children[:0]
		for _, es := range cs.Elements {
			e := s.elements[es.ID]
			if e == nil {
				e = &Element{ID: es.ID}
			}
			e.Rect = es.Rect
			e.attrs = es.Attrs
			e.parent = c
			c.children = append(c.children, e)
			elements[es.ID] = e
			rendered[es.ID] = c.ID
		}
		containers = append(containers, c)
		byID[c.ID] = c
	}
	s.containers, s.byID, s.elements, s.rendered = containers, byID, elements, rendered
	return nil
}

func (s *Surface) verify() error {
	for _, c := range s.containers {
		for _, e := range c.children {
			want, ok := s.rendered[e.ID]
			if !ok {
				return &StaleElementError{ElementID: e.ID, Got: c.ID}
			}
			if want != c.ID {
				return &StaleElementError{ElementID: e.ID, Want: want, Got: c.ID}
			}
		}
	}
	for id, want := range s.rendered {
		e := s.elements[id]
		if e == nil || e.parent == nil || e.parent.ID != want {
			got := ""
			if e != nil && e.parent != nil {
				got = e.parent.ID
			}
			return &StaleElementError{ElementID: id, Want: want, Got: got}
		}
	}
	return nil
}

// Reset drops every element and the render bookkeeping but keeps the
// container handles.
func (s *Surface) Reset() {
	for _, c := range s.containers {
		for _, e := range c.children {
			e.parent = nil
		}
		c.children = nil
	}
	s.elements = map[string]*Element{}
	s.rendered = map[string]string{}
}

// Container returns the container with the given id from the last render.
func (s *Surface) Container(id string) *Container { return s.byID[id] }

// Containers returns the containers in layout order.
func (s *Surface) Containers() []*Container {
	out := make([]*Container, len(s.containers))
	copy(out, s.containers)
	return out
}

// Element returns the element with the given id from the last render.
func (s *Surface) Element(id string) *Element { return s.elements[id] }

// ContainerAt returns the container whose rectangle holds (x, y).
func (s *Surface) ContainerAt(x, y int) *Container {
	for _, c := range s.containers {
		if c.Rect.Contains(x, y) {
			return c
		}
	}
	return nil
}

// ElementAt returns the element whose rectangle holds (x, y).
func (s *Surface) ElementAt(x, y int) *Element {
	for _, c := range s.containers {
		for _, e := range c.children {
			if e.Rect.Contains(x, y) {
				return e
			}
		}
	}
	return nil
}
