package control

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yllada/exforms/paint"
	"github.com/yllada/exforms/service"
)

func TestNumericUpDown(t *testing.T) {
	n := NewNumericUpDown("qty")
	n.SetRange(0, 10)
	n.SetIncrement(3)

	n.Up()
	n.Up()
	n.Up()
	n.Up()
	assert.Equal(t, 10.0, n.Value())
	assert.Equal(t, "10", n.Text())

	tests := []struct {
		name string
		text string
		want float64
	}{
		{"plain", "4", 4},
		{"spaces", " 7 ", 7},
		{"not a number keeps value", "seven", 7},
		{"clamped high", "42", 10},
		{"clamped low", "-3", 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			n.ParseText(tt.text)
			assert.Equal(t, tt.want, n.Value())
		})
	}

	n.SetDecimals(2)
	n.SetValue(1.5)
	assert.Equal(t, "1.50", n.Text())

	n.SetRange(5, 2)
	assert.Equal(t, 2.0, n.Minimum())
	assert.Equal(t, 5.0, n.Maximum())
	assert.Equal(t, 2.0, n.Value())
}

func TestRadioGroupExclusive(t *testing.T) {
	g := NewRadioGroup()
	a := NewRadioButton("a", "A", g)
	b := NewRadioButton("b", "B", g)
	solo := NewRadioButton("solo", "Solo", nil)

	a.SetChecked(true)
	assert.Same(t, a, g.Checked())

	b.SetChecked(true)
	assert.False(t, a.Checked())
	assert.Same(t, b, g.Checked())

	solo.SetChecked(true)
	assert.True(t, b.Checked())
	assert.Len(t, solo.Group().Buttons(), 1)
}

func TestTextBoxEditing(t *testing.T) {
	tb := NewTextBox("tb")
	tb.SetPlaceholderText("type here")
	assert.True(t, tb.ShowsPlaceholder())

	tb.SetMaxLength(4)
	tb.Insert("héllo")
	assert.Equal(t, "héll", tb.Text())
	assert.False(t, tb.ShowsPlaceholder())

	tb.Backspace()
	assert.Equal(t, "hél", tb.Text())

	tb.SetReadOnly(true)
	tb.Insert("x")
	tb.Backspace()
	assert.Equal(t, "hél", tb.Text())
}

func TestChangeObservers(t *testing.T) {
	b := NewButton("b", "B")
	changes := 0
	cancel := b.OnChange(func() { changes++ })

	b.SetBackColor(paint.Highlight)
	b.SetBackColor(paint.Highlight)
	b.SetText("Go")
	assert.Equal(t, 2, changes)

	cancel()
	b.SetText("Stop")
	assert.Equal(t, 2, changes)
}

func TestButtonClick(t *testing.T) {
	b := NewButton("b", "B")
	clicks := 0
	b.OnClick(func() { clicks++ })

	b.PerformClick()
	b.SetEnabled(false)
	b.PerformClick()
	assert.Equal(t, 1, clicks)
}

func TestWalkAndFind(t *testing.T) {
	f := NewForm("f", "F")
	split := NewSplitContainer("split")
	left := NewTextBox("left")
	split.Panel1.Add(left)
	tabs := NewTabControl("tabs")
	inner := NewButton("inner", "Inner")
	tabs.AddPage("p1", "One")
	tabs.AddPage("p2", "Two").Add(inner)
	f.Add(split, tabs)

	var names []string
	Walk(f, func(w service.Widget) {
		names = append(names, w.(interface{ Name() string }).Name())
	})
	assert.Equal(t, []string{"f", "split", "split.Panel1", "left", "split.Panel2", "tabs", "p1", "p2", "inner"}, names)

	assert.Same(t, inner, Find(f, "inner"))
	assert.Nil(t, Find(f, "missing"))
}

func TestSplitContainerRegistersBothPanels(t *testing.T) {
	r := service.NewRegistrar()
	split := NewSplitContainer("split")
	box := NewTextBox("box")
	split.Panel2.Add(box)

	r.Register(split)
	assert.True(t, split.Panel1.Registered())
	assert.True(t, split.Panel2.Registered())
	assert.True(t, box.Registered())
	assert.Equal(t, 4, r.CoreServices())
}

func TestTableLayoutCells(t *testing.T) {
	tl := NewTableLayoutPanel("grid", 2, 2)
	a := NewLabel("a", "A")
	b := NewTextBox("b")
	c := NewButton("c", "C")

	tl.Add(a)
	tl.Add(b)
	tl.AddAt(c, 3, 4)

	cell, ok := tl.CellOf(b)
	require.True(t, ok)
	assert.Equal(t, Cell{Column: 1, Row: 0}, cell)

	cell, ok = tl.CellOf(c)
	require.True(t, ok)
	assert.Equal(t, Cell{Column: 3, Row: 4}, cell)
	assert.Equal(t, 4, tl.Columns())
	assert.Equal(t, 5, tl.Rows())

	_, ok = tl.CellOf(NewLabel("x", ""))
	assert.False(t, ok)
}

func TestTabControlSelection(t *testing.T) {
	tabs := NewTabControl("tabs")
	assert.Equal(t, -1, tabs.SelectedIndex())
	assert.Nil(t, tabs.SelectedPage())

	tabs.AddPage("a", "A")
	b := tabs.AddPage("b", "B")
	tabs.SetSelectedIndex(1)
	assert.Same(t, b, tabs.SelectedPage())
	assert.Equal(t, "B", b.Title())

	tabs.SetSelectedIndex(9)
	assert.Equal(t, 1, tabs.SelectedIndex())
}

func TestWidgetRegisterUsesDefaultRegistrar(t *testing.T) {
	p := NewPanel("panel")
	tb := NewTextBox("tb")
	p.Add(tb)

	p.Register()
	assert.True(t, service.Default().Visited(p.Handle()))
	assert.True(t, service.Default().Visited(tb.Handle()))
	_, ok := service.Default().FocusService(tb.Handle())
	assert.True(t, ok)
	service.Default().Release(p)
}
