package control

import (
	"github.com/yllada/exforms/paint"
	"github.com/yllada/exforms/service"
)

// RadioGroup links radio buttons so that at most one is checked.
type RadioGroup struct {
	buttons []*RadioButton
}

// NewRadioGroup returns an empty group.
func NewRadioGroup() *RadioGroup {
	return &RadioGroup{}
}

// Buttons returns the group members in the order they joined.
func (g *RadioGroup) Buttons() []*RadioButton {
	return g.buttons
}

// Checked returns the checked member, or nil.
func (g *RadioGroup) Checked() *RadioButton {
	for _, b := range g.buttons {
		if b.checked {
			return b
		}
	}
	return nil
}

// RadioButton is a choice among the buttons of its group.
type RadioButton struct {
	Base
	service.Core
	ColorSwap

	group   *RadioGroup
	checked bool
}

// NewRadioButton returns an unchecked radio button joined to group. A nil
// group gives the button a group of its own.
func NewRadioButton(name, text string, group *RadioGroup) *RadioButton {
	if group == nil {
		group = NewRadioGroup()
	}
	r := &RadioButton{
		Base:      newBase(name, paint.ControlText, paint.Transparent),
		ColorSwap: newColorSwap(paint.ControlText, paint.Control),
		group:     group,
	}
	r.text = text
	r.tabStop = true
	r.SetKey(name)
	group.buttons = append(group.buttons, r)
	return r
}

// Register attaches decoration services to the radio button.
func (r *RadioButton) Register() { service.Register(r) }

// Group returns the button's group.
func (r *RadioButton) Group() *RadioGroup { return r.group }

// Checked reports whether the button is selected.
func (r *RadioButton) Checked() bool { return r.checked }

// SetChecked selects or clears the button. Selecting clears the rest of
// the group.
func (r *RadioButton) SetChecked(v bool) {
	if r.checked == v {
		return
	}
	if v {
		for _, other := range r.group.buttons {
			if other != r && other.checked {
				other.checked = false
				other.changed.fire()
			}
		}
	}
	r.checked = v
	r.changed.fire()
}
