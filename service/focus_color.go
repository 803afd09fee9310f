package service

import (
	"github.com/yllada/exforms/common"
	"github.com/yllada/exforms/paint"
)

// FocusState is the state of a FocusColorService.
type FocusState int

const (
	Idle FocusState = iota
	Focused
)

func (s FocusState) String() string {
	switch s {
	case Idle:
		return "Idle"
	case Focused:
		return "Focused"
	default:
		return "Unknown"
	}
}

// savedColors is the single-slot cache filled on focus gain.
type savedColors struct {
	fore, back               paint.Color
	captionFore, captionBack paint.Color
}

// FocusColorService swaps a widget (and its caption widget) to the focus
// colors on enter and restores the captured colors on leave.
//
// The cache holds one capture. A second enter before a leave overwrites it,
// so nested focus transitions on the same widget are not supported.
type FocusColorService struct {
	widget ColorSwappable
	state  FocusState
	saved  savedColors
	cancel []func()
}

// NewFocusColorService binds to w and subscribes to its focus notifications.
func NewFocusColorService(w ColorSwappable) *FocusColorService {
	s := &FocusColorService{widget: w}
	s.cancel = append(s.cancel, w.OnEnter(s.enter), w.OnLeave(s.leave))
	return s
}

// State returns the current state.
func (s *FocusColorService) State() FocusState {
	return s.state
}

// Unbind cancels the focus subscriptions. The widget keeps whatever colors
// it has at that moment.
func (s *FocusColorService) Unbind() {
	for _, cancel := range s.cancel {
		cancel()
	}
	s.cancel = nil
}

func (s *FocusColorService) enter() {
	w := s.widget
	if !w.ColorSwapEnabled() {
		return
	}

	s.saved.fore = w.ForeColor()
	s.saved.back = w.BackColor()
	if pb, ok := w.(PushButton); ok && pb.BackColor() == pb.DefaultBackColor() {
		// a button still on its default face restores to transparent
		s.saved.back = paint.Transparent
	}

	w.SetForeColor(w.FocusForeColor())
	w.SetBackColor(w.FocusBackColor())

	if caption := w.CaptionWidget(); !IsNil(caption) {
		s.saved.captionFore = caption.ForeColor()
		s.saved.captionBack = caption.BackColor()
		caption.SetForeColor(w.FocusForeColor())
		caption.SetBackColor(w.FocusBackColor())
	}

	s.state = Focused
	common.LogDebug("focus colors applied to %q", w.Key())
}

func (s *FocusColorService) leave() {
	w := s.widget
	if !w.ColorSwapEnabled() || s.state != Focused {
		return
	}

	w.SetForeColor(s.saved.fore)
	w.SetBackColor(s.saved.back)

	if caption := w.CaptionWidget(); !IsNil(caption) {
		caption.SetForeColor(s.saved.captionFore)
		caption.SetBackColor(s.saved.captionBack)
	}

	s.state = Idle
	common.LogDebug("focus colors restored on %q", w.Key())
}
