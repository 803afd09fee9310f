package control

import (
	"github.com/yllada/exforms/paint"
	"github.com/yllada/exforms/service"
)

// ColorSwap holds the declared focus-color properties of a color-swappable
// widget. The decoration service reads them on every focus notification.
type ColorSwap struct {
	swapEnabled bool
	caption     service.Widget
	focusFore   paint.Color
	focusBack   paint.Color
}

func newColorSwap(fore, back paint.Color) ColorSwap {
	return ColorSwap{swapEnabled: true, focusFore: fore, focusBack: back}
}

// ColorSwapEnabled reports whether focus changes swap colors.
func (s *ColorSwap) ColorSwapEnabled() bool { return s.swapEnabled }

// SetColorSwapEnabled toggles color swapping; it applies from the next
// focus notification on.
func (s *ColorSwap) SetColorSwapEnabled(v bool) { s.swapEnabled = v }

// CaptionWidget returns the widget whose colors follow this one, or nil.
func (s *ColorSwap) CaptionWidget() service.Widget { return s.caption }

// SetCaptionWidget sets the caption widget. The widget is not owned; pass
// nil to stop synchronizing.
func (s *ColorSwap) SetCaptionWidget(w service.Widget) {
	if service.IsNil(w) {
		w = nil
	}
	s.caption = w
}

func (s *ColorSwap) FocusForeColor() paint.Color     { return s.focusFore }
func (s *ColorSwap) SetFocusForeColor(c paint.Color) { s.focusFore = c }
func (s *ColorSwap) FocusBackColor() paint.Color     { return s.focusBack }
func (s *ColorSwap) SetFocusBackColor(c paint.Color) { s.focusBack = c }
