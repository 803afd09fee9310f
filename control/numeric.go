package control

import (
	"strconv"

	"github.com/yllada/exforms/common"
	"github.com/yllada/exforms/paint"
	"github.com/yllada/exforms/service"
)

// NumericUpDown is a spin box holding a bounded number.
type NumericUpDown struct {
	Base
	service.Core
	ColorSwap

	value     float64
	min       float64
	max       float64
	increment float64
	decimals  int
}

// NewNumericUpDown returns a spin box over [0, 100] stepping by one.
func NewNumericUpDown(name string) *NumericUpDown {
	n := &NumericUpDown{
		Base:      newBase(name, paint.WindowText, paint.Window),
		ColorSwap: newColorSwap(paint.WindowText, paint.Window),
		max:       100,
		increment: 1,
	}
	n.tabStop = true
	n.text = n.format(0)
	n.SetKey(name)
	return n
}

// Register attaches decoration services to the spin box.
func (n *NumericUpDown) Register() { service.Register(n) }

func (n *NumericUpDown) Value() float64     { return n.value }
func (n *NumericUpDown) Minimum() float64   { return n.min }
func (n *NumericUpDown) Maximum() float64   { return n.max }
func (n *NumericUpDown) Increment() float64 { return n.increment }
func (n *NumericUpDown) Decimals() int      { return n.decimals }

// SetRange sets the bounds and clamps the current value into them.
func (n *NumericUpDown) SetRange(min, max float64) {
	if max < min {
		min, max = max, min
	}
	n.min, n.max = min, max
	n.SetValue(n.value)
}

// SetIncrement sets the step used by Up and Down. Non-positive steps are ignored.
func (n *NumericUpDown) SetIncrement(step float64) {
	if step > 0 {
		n.increment = step
	}
}

// SetDecimals sets how many decimal places the text shows.
func (n *NumericUpDown) SetDecimals(d int) {
	if d < 0 {
		d = 0
	}
	n.decimals = d
	n.SetText(n.format(n.value))
}

// SetValue stores v clamped to the range and refreshes the text.
func (n *NumericUpDown) SetValue(v float64) {
	if v < n.min {
		v = n.min
	}
	if v > n.max {
		v = n.max
	}
	n.value = v
	n.SetText(n.format(v))
}

// Up steps the value up by the increment.
func (n *NumericUpDown) Up() { n.SetValue(n.value + n.increment) }

// Down steps the value down by the increment.
func (n *NumericUpDown) Down() { n.SetValue(n.value - n.increment) }

// ParseText commits typed text. Text that is not a number keeps the
// current value.
func (n *NumericUpDown) ParseText(s string) {
	n.SetValue(common.ParseOr(s, n.value))
}

func (n *NumericUpDown) format(v float64) string {
	return strconv.FormatFloat(v, 'f', n.decimals, 64)
}
