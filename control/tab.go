package control

import (
	"github.com/yllada/exforms/paint"
	"github.com/yllada/exforms/service"
)

// TabControl is a tab strip whose pages hold the actual content.
type TabControl struct {
	Base
	service.Core
	service.TabStripMarker

	pages    []*TabPage
	selected int
}

// NewTabControl returns a tab control without pages.
func NewTabControl(name string) *TabControl {
	t := &TabControl{Base: newBase(name, paint.ControlText, paint.Control)}
	t.tabStop = true
	t.SetKey(name)
	return t
}

// Register attaches decoration services to the tab control and the
// widgets on its pages.
func (t *TabControl) Register() { service.Register(t) }

// AddPage appends a page titled title and returns it.
func (t *TabControl) AddPage(name, title string) *TabPage {
	p := &TabPage{Base: newBase(name, paint.ControlText, paint.Window)}
	p.text = title
	t.pages = append(t.pages, p)
	return p
}

// Pages returns the pages in order.
func (t *TabControl) Pages() []*TabPage { return t.pages }

// Children returns the pages as widgets.
func (t *TabControl) Children() []service.Widget {
	out := make([]service.Widget, len(t.pages))
	for i, p := range t.pages {
		out[i] = p
	}
	return out
}

// SelectedIndex returns the index of the visible page, or -1 without pages.
func (t *TabControl) SelectedIndex() int {
	if len(t.pages) == 0 {
		return -1
	}
	return t.selected
}

// SelectedPage returns the visible page, or nil.
func (t *TabControl) SelectedPage() *TabPage {
	if i := t.SelectedIndex(); i >= 0 {
		return t.pages[i]
	}
	return nil
}

// SetSelectedIndex switches pages. Out-of-range indexes are ignored.
func (t *TabControl) SetSelectedIndex(i int) {
	if i < 0 || i >= len(t.pages) || i == t.selected {
		return
	}
	t.selected = i
	t.changed.fire()
}

// TabPage is one page of a TabControl. Pages are not decorated; the tab
// control's registration reaches their children directly.
type TabPage struct {
	Base
	service.TabPageMarker
	children
}

// Title returns the tab caption.
func (p *TabPage) Title() string { return p.text }
