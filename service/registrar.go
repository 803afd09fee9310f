package service

import "github.com/yllada/exforms/common"

// Registrar registers widget trees. The visited set is keyed by handle and
// kept apart from the widgets' own registration flags.
type Registrar struct {
	visited map[Handle]struct{}
	cores   map[Handle]*CoreService
	focus   map[Handle]*FocusColorService
	log     common.Logger
}

// NewRegistrar returns an empty registrar logging to the default logger.
func NewRegistrar() *Registrar {
	return &Registrar{
		visited: make(map[Handle]struct{}),
		cores:   make(map[Handle]*CoreService),
		focus:   make(map[Handle]*FocusColorService),
		log:     common.GetLogger(),
	}
}

// SetLogger replaces the registrar's logger.
func (r *Registrar) SetLogger(l common.Logger) {
	r.log = l
}

var defaultRegistrar = NewRegistrar()

// Default returns the process-wide registrar used by widgets' Register entry points.
func Default() *Registrar {
	return defaultRegistrar
}

// Register registers w with the process-wide registrar.
func Register(w Decoratable) {
	defaultRegistrar.Register(w)
}

// Register binds services to root and every decoratable widget reachable
// from it, once per widget. Widgets already registered, here or by another
// registrar, are left alone.
func (r *Registrar) Register(root Decoratable) {
	if root == nil || root.Registered() {
		return
	}
	h := root.Handle()
	if _, seen := r.visited[h]; seen {
		return
	}
	r.visited[h] = struct{}{}

	r.bind(root)

	if c, ok := root.(Container); ok {
		_, strip := root.(TabStrip)
		for _, child := range c.Children() {
			r.visit(child)
			if !strip {
				continue
			}
			if page, ok := child.(TabPage); ok {
				for _, inner := range page.Children() {
					r.visit(inner)
				}
			}
		}
	}

	root.core().markRegistered()
}

func (r *Registrar) visit(w Widget) {
	d, ok := w.(Decoratable)
	if !ok || d.Registered() {
		return
	}
	// the process registrar goes through the child's own entry point
	if r == defaultRegistrar {
		d.Register()
		return
	}
	r.Register(d)
}

func (r *Registrar) bind(w Decoratable) {
	h := w.Handle()
	r.cores[h] = NewCoreService(w)
	if cs, ok := w.(ColorSwappable); ok {
		r.focus[h] = NewFocusColorService(cs)
		r.log.Debug("registered %q with focus colors", w.Key())
		return
	}
	r.log.Debug("registered %q", w.Key())
}

// Visited reports whether the registrar has processed the widget with handle h.
func (r *Registrar) Visited(h Handle) bool {
	_, ok := r.visited[h]
	return ok
}

// CoreServices returns the number of bound core services.
func (r *Registrar) CoreServices() int {
	return len(r.cores)
}

// FocusServices returns the number of bound focus-color services.
func (r *Registrar) FocusServices() int {
	return len(r.focus)
}

// FocusService returns the focus-color service bound to h, if any.
func (r *Registrar) FocusService(h Handle) (*FocusColorService, bool) {
	s, ok := r.focus[h]
	return s, ok
}

// Release drops the services bound to root and to everything below it,
// tab pages included. Registration flags stay set.
func (r *Registrar) Release(root Widget) {
	if root == nil {
		return
	}
	h := root.Handle()
	if s, ok := r.focus[h]; ok {
		s.Unbind()
		delete(r.focus, h)
	}
	delete(r.cores, h)

	if c, ok := root.(Container); ok {
		for _, child := range c.Children() {
			r.Release(child)
		}
	}
}
