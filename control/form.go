package control

import (
	"github.com/yllada/exforms/common"
	"github.com/yllada/exforms/paint"
	"github.com/yllada/exforms/position"
	"github.com/yllada/exforms/service"
)

// StartPosition selects how a form is placed when it opens.
type StartPosition int

const (
	// StartDefault leaves placement to the windowing system.
	StartDefault StartPosition = iota
	// StartManual places the form at Left, Top.
	StartManual
)

func (p StartPosition) String() string {
	if p == StartManual {
		return "manual"
	}
	return "default"
}

// Key identifies the keys a form handles itself.
type Key int

const (
	KeyOther Key = iota
	KeyEnter
	KeyEscape
	KeyTab
)

// KeyEvent is a key press delivered by a host before the focused widget
// sees it.
type KeyEvent struct {
	Key   Key
	Shift bool
	Ctrl  bool
	Alt   bool
}

// Form is a top-level window.
type Form struct {
	Base
	service.Core
	children

	Title string

	// EnableEnterTransition makes Enter move focus like Tab, and
	// Shift+Enter like Shift+Tab. Read once at load.
	EnableEnterTransition bool
	// EnableEscClose makes Escape close the form. Read once at load.
	EnableEscClose bool
	// RestorePosition restores the saved position at load and saves it
	// at close, using Positions.
	RestorePosition bool

	EnableBackgroundGradient bool
	GradientColor1           paint.Color
	GradientColor2           paint.Color
	GradientMode             paint.GradientMode

	Left, Top     int
	Width, Height int
	StartPosition StartPosition

	// Positions stores the window position when RestorePosition is set.
	Positions position.Store
	// Registrar registers the form's widget tree; nil means the
	// process-wide registrar.
	Registrar *service.Registrar

	loaded    bool
	closed    bool
	enterNav  bool
	escClose  bool
	active    Focuser
	activated observers
	closing   observers
}

// NewForm returns a form with the default behaviors: Enter navigation on,
// Escape close off, position restore off and a control-colored gradient.
func NewForm(name, title string) *Form {
	f := &Form{
		Base:                     newBase(name, paint.ControlText, paint.Control),
		Title:                    title,
		EnableEnterTransition:    true,
		EnableBackgroundGradient: true,
		GradientColor1:           paint.Control,
		GradientColor2:           paint.Control,
		GradientMode:             paint.ForwardDiagonal,
		Width:                    common.DefaultWindowWidth,
		Height:                   common.DefaultWindowHeight,
	}
	f.text = title
	f.SetKey(name)
	return f
}

func (f *Form) registrar() *service.Registrar {
	if f.Registrar != nil {
		return f.Registrar
	}
	return service.Default()
}

// Register attaches decoration services to the form and its widget tree.
func (f *Form) Register() { f.registrar().Register(f) }

// Load prepares the form for display: it restores the saved position,
// fixes the key-shortcut behavior and registers the widget tree. Only the
// first call has an effect.
func (f *Form) Load() {
	if f.loaded {
		return
	}
	f.loaded = true

	if f.RestorePosition && f.Positions != nil {
		position.Restore(f.Positions, f)
	}

	f.enterNav = f.EnableEnterTransition
	f.escClose = f.EnableEscClose

	f.Register()
	common.LogDebug("form %q loaded", f.name)
}

// Loaded reports whether Load has run.
func (f *Form) Loaded() bool { return f.loaded }

// HandleKey processes a key press ahead of the focused widget. It reports
// whether the key was consumed.
func (f *Form) HandleKey(ev KeyEvent) bool {
	switch ev.Key {
	case KeyEnter:
		if f.enterNav && !ev.Alt && !ev.Ctrl {
			f.ProcessTabKey(!ev.Shift)
			return true
		}
	case KeyEscape:
		if f.escClose {
			f.Close()
			return true
		}
	case KeyTab:
		if !ev.Alt && !ev.Ctrl {
			f.ProcessTabKey(!ev.Shift)
			return true
		}
	}
	return false
}

// ProcessTabKey moves focus to the next tab stop, or the previous one when
// forward is false. It reports whether focus moved.
func (f *Form) ProcessTabKey(forward bool) bool {
	order := f.TabOrder()
	if len(order) == 0 {
		return false
	}

	idx := -1
	if f.active != nil {
		for i, w := range order {
			if w.Handle() == f.active.Handle() {
				idx = i
				break
			}
		}
	}

	var next int
	switch {
	case idx < 0 && forward:
		next = 0
	case idx < 0:
		next = len(order) - 1
	case forward:
		next = (idx + 1) % len(order)
	default:
		next = (idx - 1 + len(order)) % len(order)
	}
	f.Activate(order[next])
	return true
}

// TabOrder returns the widgets that take focus, in tree order. Hidden
// subtrees and the unselected pages of tab controls are skipped.
func (f *Form) TabOrder() []Focuser {
	var order []Focuser
	var visit func(w service.Widget)
	visit = func(w service.Widget) {
		if v, ok := w.(interface{ Visible() bool }); ok && !v.Visible() {
			return
		}
		if fw, ok := w.(Focuser); ok && fw.TabStop() && fw.Enabled() {
			order = append(order, fw)
		}
		if tc, ok := w.(*TabControl); ok {
			if p := tc.SelectedPage(); p != nil {
				visit(p)
			}
			return
		}
		if c, ok := w.(service.Container); ok {
			for _, child := range c.Children() {
				visit(child)
			}
		}
	}
	for _, child := range f.list {
		visit(child)
	}
	return order
}

// ActiveControl returns the focused widget, or nil.
func (f *Form) ActiveControl() Focuser { return f.active }

// Activate moves focus to w. Activating the focused widget does nothing.
func (f *Form) Activate(w Focuser) {
	if w == nil || f.closed {
		return
	}
	if f.active != nil && f.active.Handle() == w.Handle() {
		return
	}
	if f.active != nil {
		f.active.Blur()
	}
	f.active = w
	w.Focus()
	f.activated.fire()
}

// OnActivate subscribes fn to focus changes made through Activate.
func (f *Form) OnActivate(fn func()) (cancel func()) { return f.activated.add(fn) }

// Close closes the form, saving its position when RestorePosition is set.
// Only the first call has an effect.
func (f *Form) Close() {
	if f.closed {
		return
	}
	f.closed = true

	if f.RestorePosition && f.Positions != nil {
		if err := position.Persist(f.Positions, f); err != nil {
			common.LogWarn("%v", err)
		}
	}
	common.LogDebug("form %q closed", f.name)
	f.closing.fire()
}

// Closed reports whether Close has run.
func (f *Form) Closed() bool { return f.closed }

// OnClosed subscribes fn to the form closing.
func (f *Form) OnClosed(fn func()) (cancel func()) { return f.closing.add(fn) }

// Dispose releases the decoration services bound to the widget tree.
func (f *Form) Dispose() {
	f.registrar().Release(f)
}

// Background returns the gradient to paint behind the form, and false when
// gradient painting is off.
func (f *Form) Background() (paint.Gradient, bool) {
	g := paint.Gradient{From: f.GradientColor1, To: f.GradientColor2, Mode: f.GradientMode}
	return g, f.EnableBackgroundGradient
}

// WindowName keys the form's saved position.
func (f *Form) WindowName() string { return f.name }

// Location returns the form's top-left corner.
func (f *Form) Location() (left, top int) { return f.Left, f.Top }

// PlaceAt moves the form and switches it to manual placement.
func (f *Form) PlaceAt(left, top int) {
	f.Left, f.Top = left, top
	f.StartPosition = StartManual
}

// Move records a position reported by the host.
func (f *Form) Move(left, top int) {
	f.Left, f.Top = left, top
}
