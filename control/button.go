package control

import (
	"github.com/yllada/exforms/paint"
	"github.com/yllada/exforms/service"
)

// Button is a push button.
type Button struct {
	Base
	service.Core
	ColorSwap

	click observers
}

// NewButton returns a button with the toolkit's default face.
func NewButton(name, text string) *Button {
	b := &Button{
		Base:      newBase(name, paint.ControlText, paint.ButtonFace),
		ColorSwap: newColorSwap(paint.ControlText, paint.Control),
	}
	b.text = text
	b.tabStop = true
	b.SetKey(name)
	return b
}

// DefaultBackColor is the face color of an unstyled button.
func (b *Button) DefaultBackColor() paint.Color { return paint.ButtonFace }

// Register attaches decoration services to the button.
func (b *Button) Register() { service.Register(b) }

// OnClick subscribes fn to clicks.
func (b *Button) OnClick(fn func()) (cancel func()) { return b.click.add(fn) }

// PerformClick clicks the button if it is enabled.
func (b *Button) PerformClick() {
	if !b.enabled {
		return
	}
	b.click.fire()
}
