package control

import (
	"github.com/yllada/exforms/paint"
	"github.com/yllada/exforms/service"
)

// Orientation is the direction a split container divides in.
type Orientation int

const (
	// Vertical places the panels side by side.
	Vertical Orientation = iota
	// Horizontal stacks the panels.
	Horizontal
)

func (o Orientation) String() string {
	if o == Horizontal {
		return "horizontal"
	}
	return "vertical"
}

// SplitContainer holds two panels separated by a movable splitter.
type SplitContainer struct {
	Base
	service.Core

	Panel1 *Panel
	Panel2 *Panel

	orientation Orientation
	distance    int
}

// NewSplitContainer returns a vertical split with two empty panels.
func NewSplitContainer(name string) *SplitContainer {
	s := &SplitContainer{
		Base:     newBase(name, paint.ControlText, paint.Transparent),
		Panel1:   NewPanel(name + ".Panel1"),
		Panel2:   NewPanel(name + ".Panel2"),
		distance: 50,
	}
	s.SetKey(name)
	return s
}

// Register attaches decoration services to the split and both panels.
func (s *SplitContainer) Register() { service.Register(s) }

// Children returns the two panels.
func (s *SplitContainer) Children() []service.Widget {
	return []service.Widget{s.Panel1, s.Panel2}
}

func (s *SplitContainer) Orientation() Orientation     { return s.orientation }
func (s *SplitContainer) SetOrientation(o Orientation) { s.orientation = o }

// SplitterDistance is the first panel's extent in pixels.
func (s *SplitContainer) SplitterDistance() int { return s.distance }

// SetSplitterDistance moves the splitter. Negative distances are ignored.
func (s *SplitContainer) SetSplitterDistance(d int) {
	if d >= 0 {
		s.distance = d
	}
}
