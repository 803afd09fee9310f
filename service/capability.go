package service

import (
	"reflect"

	"github.com/google/uuid"

	"github.com/yllada/exforms/paint"
)

// Handle identifies a widget for the lifetime of the process.
type Handle = uuid.UUID

// NewHandle returns a fresh widget handle.
func NewHandle() Handle {
	return uuid.New()
}

// Widget is anything a container can hold.
type Widget interface {
	Handle() Handle
	ForeColor() paint.Color
	SetForeColor(paint.Color)
	BackColor() paint.Color
	SetBackColor(paint.Color)
}

// IsNil reports whether w is nil or wraps a nil pointer.
func IsNil(w Widget) bool {
	if w == nil {
		return true
	}
	v := reflect.ValueOf(w)
	return v.Kind() == reflect.Pointer && v.IsNil()
}

// Decoratable widgets take part in registration. The unexported method is
// promoted from Core, so only widgets embedding Core qualify.
type Decoratable interface {
	Widget
	Key() string
	Registered() bool
	// Register is the widget's own registration entry point.
	Register()

	core() *Core
}

// Focusable widgets deliver focus notifications to observers. The returned
// function cancels the subscription.
type Focusable interface {
	OnEnter(fn func()) (cancel func())
	OnLeave(fn func()) (cancel func())
}

// ColorSwappable widgets swap to their focus colors while focused.
type ColorSwappable interface {
	Decoratable
	Focusable
	ColorSwapEnabled() bool
	// CaptionWidget returns the widget whose colors follow this one, or nil.
	CaptionWidget() Widget
	FocusForeColor() paint.Color
	FocusBackColor() paint.Color
}

// PushButton is a color-swappable widget with a toolkit default background.
type PushButton interface {
	ColorSwappable
	DefaultBackColor() paint.Color
}

// Container widgets own an ordered list of children.
type Container interface {
	Widget
	Children() []Widget
}

// TabStrip is a container whose TabPage children hold a second level of
// widgets that the walk must reach.
type TabStrip interface {
	Container
	tabStrip()
}

// TabPage is a page of a TabStrip.
type TabPage interface {
	Container
	tabPage()
}

// TabStripMarker is embedded by tab strip widgets.
type TabStripMarker struct{}

func (TabStripMarker) tabStrip() {}

// TabPageMarker is embedded by tab page widgets.
type TabPageMarker struct{}

func (TabPageMarker) tabPage() {}
