package tui

import (
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/lipgloss"

	"github.com/yllada/exforms/control"
	"github.com/yllada/exforms/paint"
	"github.com/yllada/exforms/service"
)

type segment struct {
	text    string
	fore    paint.Color
	back    paint.Color
	focused bool
}

type row struct {
	indent   int
	segments []segment
}

// View implements tea.Model.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	rows := layout(m.form)
	g, gradient := m.form.Background()

	var b strings.Builder
	title := titleStyle.Foreground(color(m.form.ForeColor())).Render(m.form.Title)
	b.WriteString(title)
	b.WriteString("\n")

	for i, r := range rows {
		bg := m.form.BackColor()
		if gradient {
			bg = g.At(m.width/2, i, m.width, len(rows))
		}
		b.WriteString(renderRow(r, bg, m.width))
		b.WriteString("\n")
	}

	b.WriteString(helpStyle.Render(help.New().ShortHelpView(m.keys.ShortHelp())))
	return b.String()
}

func renderRow(r row, bg paint.Color, width int) string {
	rowStyle := lipgloss.NewStyle().Background(color(bg))
	parts := []string{rowStyle.Render(strings.Repeat("  ", r.indent))}
	for i, s := range r.segments {
		if i > 0 {
			parts = append(parts, rowStyle.Render(" "))
		}
		style := widgetStyle(s.fore, s.back, bg).Bold(s.focused)
		parts = append(parts, style.Render(s.text))
	}
	return rowStyle.Width(width).Render(lipgloss.JoinHorizontal(lipgloss.Top, parts...))
}

// layout flattens the form into rows, one widget per row except for table
// layouts, whose grid rows share a line.
func layout(f *control.Form) []row {
	var rows []row
	for _, child := range f.Children() {
		rows = appendWidget(rows, child, 0)
	}
	return rows
}

func appendWidget(rows []row, w service.Widget, indent int) []row {
	if v, ok := w.(interface{ Visible() bool }); ok && !v.Visible() {
		return rows
	}

	switch w := w.(type) {
	case *control.TabControl:
		header := row{indent: indent}
		for i, p := range w.Pages() {
			s := segment{text: " " + p.Title() + " ", fore: w.ForeColor(), back: paint.Transparent}
			if i == w.SelectedIndex() {
				s.back = w.BackColor()
				s.focused = w.Focused()
			}
			header.segments = append(header.segments, s)
		}
		rows = append(rows, header)
		if p := w.SelectedPage(); p != nil {
			for _, child := range p.Children() {
				rows = appendWidget(rows, child, indent+1)
			}
		}
	case *control.TableLayoutPanel:
		rows = appendTable(rows, w, indent)
	case service.Container:
		for _, child := range w.Children() {
			rows = appendWidget(rows, child, indent+1)
		}
	default:
		if s, ok := leaf(w); ok {
			rows = append(rows, row{indent: indent, segments: []segment{s}})
		}
	}
	return rows
}

func appendTable(rows []row, t *control.TableLayoutPanel, indent int) []row {
	grid := make([]row, t.Rows())
	for i := range grid {
		grid[i].indent = indent
	}

	var nested []service.Widget
	for _, child := range t.Children() {
		cell, _ := t.CellOf(child)
		s, ok := leaf(child)
		if !ok {
			nested = append(nested, child)
			continue
		}
		if v, ok := child.(interface{ Visible() bool }); ok && !v.Visible() {
			continue
		}
		grid[cell.Row].segments = append(grid[cell.Row].segments, s)
	}

	for _, r := range grid {
		if len(r.segments) > 0 {
			rows = append(rows, r)
		}
	}
	for _, w := range nested {
		rows = appendWidget(rows, w, indent+1)
	}
	return rows
}

// leaf renders a non-container widget.
func leaf(w service.Widget) (segment, bool) {
	s := segment{fore: w.ForeColor(), back: w.BackColor()}
	if f, ok := w.(control.Focuser); ok {
		s.focused = f.Focused()
	}

	switch w := w.(type) {
	case *control.Label:
		s.text = w.Text()
	case *control.TextBox:
		text := w.Text()
		if w.ShowsPlaceholder() {
			text = w.PlaceholderText()
			s.fore = paint.ControlDark
		}
		s.text = "[" + text + cursor(s.focused) + "]"
	case *control.NumericUpDown:
		s.text = "[" + w.Text() + cursor(s.focused) + " ±]"
	case *control.RadioButton:
		mark := "( )"
		if w.Checked() {
			mark = "(•)"
		}
		s.text = mark + " " + w.Text()
	case *control.Button:
		s.text = "< " + w.Text() + " >"
	default:
		return segment{}, false
	}
	return s, true
}

func cursor(focused bool) string {
	if focused {
		return "_"
	}
	return ""
}
