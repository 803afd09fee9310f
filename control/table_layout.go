package control

import (
	"github.com/yllada/exforms/paint"
	"github.com/yllada/exforms/service"
)

// Cell is a position in a table layout.
type Cell struct {
	Column, Row int
}

// TableLayoutPanel arranges its children in a grid.
type TableLayoutPanel struct {
	Base
	service.Core
	children

	columns int
	rows    int
	cells   map[service.Handle]Cell
}

// NewTableLayoutPanel returns a grid with the given dimensions.
func NewTableLayoutPanel(name string, columns, rows int) *TableLayoutPanel {
	t := &TableLayoutPanel{
		Base:    newBase(name, paint.ControlText, paint.Transparent),
		columns: max(columns, 1),
		rows:    max(rows, 1),
		cells:   make(map[service.Handle]Cell),
	}
	t.SetKey(name)
	return t
}

// Register attaches decoration services to the grid and its children.
func (t *TableLayoutPanel) Register() { service.Register(t) }

func (t *TableLayoutPanel) Columns() int { return t.columns }
func (t *TableLayoutPanel) Rows() int    { return t.rows }

// AddAt places w in the given cell, growing the grid when needed.
func (t *TableLayoutPanel) AddAt(w service.Widget, column, row int) {
	if w == nil || column < 0 || row < 0 {
		return
	}
	t.Add(w)
	t.cells[w.Handle()] = Cell{Column: column, Row: row}
	t.columns = max(t.columns, column+1)
	t.rows = max(t.rows, row+1)
}

// CellOf returns the cell of w. Children added without a cell flow
// left to right, top to bottom, after their insertion index.
func (t *TableLayoutPanel) CellOf(w service.Widget) (Cell, bool) {
	if c, ok := t.cells[w.Handle()]; ok {
		return c, true
	}
	for i, x := range t.list {
		if x.Handle() == w.Handle() {
			return Cell{Column: i % t.columns, Row: i / t.columns}, true
		}
	}
	return Cell{}, false
}
