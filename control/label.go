package control

import "github.com/yllada/exforms/paint"

// Label is a plain text widget. It is not decoratable; forms use labels as
// caption widgets for inputs.
type Label struct {
	Base
}

// NewLabel returns a label showing text.
func NewLabel(name, text string) *Label {
	l := &Label{Base: newBase(name, paint.ControlText, paint.Transparent)}
	l.text = text
	return l
}
