package control

import (
	"github.com/yllada/exforms/paint"
	"github.com/yllada/exforms/service"
)

// children is the ordered child list shared by containers.
type children struct {
	list []service.Widget
}

// Children returns the direct children in insertion order.
func (c *children) Children() []service.Widget {
	return c.list
}

// Add appends widgets. Nil widgets are ignored.
func (c *children) Add(ws ...service.Widget) {
	for _, w := range ws {
		if w != nil {
			c.list = append(c.list, w)
		}
	}
}

// Remove drops w from the list. It reports whether w was a child.
func (c *children) Remove(w service.Widget) bool {
	for i, x := range c.list {
		if x.Handle() == w.Handle() {
			c.list = append(c.list[:i:i], c.list[i+1:]...)
			return true
		}
	}
	return false
}

// Panel groups widgets.
type Panel struct {
	Base
	service.Core
	children
}

// NewPanel returns an empty panel.
func NewPanel(name string) *Panel {
	p := &Panel{Base: newBase(name, paint.ControlText, paint.Transparent)}
	p.SetKey(name)
	return p
}

// Register attaches decoration services to the panel and its children.
func (p *Panel) Register() { service.Register(p) }

// Walk calls fn for root and every widget below it, depth-first, children
// in insertion order. Every tab page is visited.
func Walk(root service.Widget, fn func(service.Widget)) {
	if root == nil {
		return
	}
	fn(root)
	if c, ok := root.(service.Container); ok {
		for _, child := range c.Children() {
			Walk(child, fn)
		}
	}
}

// Find returns the first widget below root, root included, whose name
// matches.
func Find(root service.Widget, name string) service.Widget {
	var found service.Widget
	Walk(root, func(w service.Widget) {
		if found != nil {
			return
		}
		if n, ok := w.(interface{ Name() string }); ok && n.Name() == name {
			found = w
		}
	})
	return found
}
