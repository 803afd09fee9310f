package control

import (
	"github.com/yllada/exforms/paint"
	"github.com/yllada/exforms/service"
)

// observers is an ordered list of callbacks that can be cancelled individually.
type observers struct {
	next    int
	entries []observer
}

type observer struct {
	id int
	fn func()
}

func (o *observers) add(fn func()) func() {
	id := o.next
	o.next++
	o.entries = append(o.entries, observer{id: id, fn: fn})
	return func() {
		for i, e := range o.entries {
			if e.id == id {
				o.entries = append(o.entries[:i:i], o.entries[i+1:]...)
				return
			}
		}
	}
}

func (o *observers) fire() {
	// callbacks may cancel themselves
	snapshot := append([]observer(nil), o.entries...)
	for _, e := range snapshot {
		e.fn()
	}
}

func (o *observers) len() int { return len(o.entries) }

// Base holds the state shared by every widget: identity, colors, text,
// visibility and focus notifications.
type Base struct {
	handle  service.Handle
	name    string
	text    string
	fore    paint.Color
	back    paint.Color
	visible bool
	enabled bool
	tabStop bool
	focused bool

	enter   observers
	leave   observers
	changed observers
}

func newBase(name string, fore, back paint.Color) Base {
	return Base{
		handle:  service.NewHandle(),
		name:    name,
		fore:    fore,
		back:    back,
		visible: true,
		enabled: true,
	}
}

func (b *Base) Handle() service.Handle { return b.handle }
func (b *Base) Name() string           { return b.name }
func (b *Base) Text() string           { return b.text }
func (b *Base) ForeColor() paint.Color { return b.fore }
func (b *Base) BackColor() paint.Color { return b.back }
func (b *Base) Visible() bool          { return b.visible }
func (b *Base) Enabled() bool          { return b.enabled }
func (b *Base) TabStop() bool          { return b.tabStop }
func (b *Base) Focused() bool          { return b.focused }

// SetText replaces the widget text and notifies change observers.
func (b *Base) SetText(s string) {
	if b.text == s {
		return
	}
	b.text = s
	b.changed.fire()
}

// SetForeColor sets the foreground color and notifies change observers.
func (b *Base) SetForeColor(c paint.Color) {
	if b.fore == c {
		return
	}
	b.fore = c
	b.changed.fire()
}

// SetBackColor sets the background color and notifies change observers.
func (b *Base) SetBackColor(c paint.Color) {
	if b.back == c {
		return
	}
	b.back = c
	b.changed.fire()
}

// SetVisible shows or hides the widget.
func (b *Base) SetVisible(v bool) {
	b.visible = v
	b.changed.fire()
}

// SetEnabled enables or disables the widget.
func (b *Base) SetEnabled(v bool) {
	b.enabled = v
	b.changed.fire()
}

func (b *Base) SetTabStop(v bool) { b.tabStop = v }

// Focus marks the widget focused and delivers an enter notification.
// Hosts call it for every focus-in they observe, repeated ones included.
func (b *Base) Focus() {
	b.focused = true
	b.enter.fire()
}

// Blur clears the focus mark and delivers a leave notification.
func (b *Base) Blur() {
	b.focused = false
	b.leave.fire()
}

// OnEnter subscribes fn to focus-in notifications.
func (b *Base) OnEnter(fn func()) (cancel func()) { return b.enter.add(fn) }

// OnLeave subscribes fn to focus-out notifications.
func (b *Base) OnLeave(fn func()) (cancel func()) { return b.leave.add(fn) }

// OnChange subscribes fn to text, color, visibility and state changes.
func (b *Base) OnChange(fn func()) (cancel func()) { return b.changed.add(fn) }

// Subscribers returns the number of enter and leave subscriptions.
func (b *Base) Subscribers() (enter, leave int) { return b.enter.len(), b.leave.len() }

// Focuser is a widget that can take part in the form's focus order.
type Focuser interface {
	service.Widget
	Visible() bool
	Enabled() bool
	TabStop() bool
	Focused() bool
	Focus()
	Blur()
}
