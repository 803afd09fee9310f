package tui

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"

	"github.com/yllada/exforms/paint"
)

var (
	titleStyle = lipgloss.NewStyle().Bold(true).Padding(0, 1)
	helpStyle  = lipgloss.NewStyle().Foreground(color(paint.ControlDark))
)

// color converts a widget color to a terminal color, dropping alpha.
func color(c paint.Color) lipgloss.Color {
	return lipgloss.Color(fmt.Sprintf("#%02x%02x%02x", c.R, c.G, c.B))
}

// widgetStyle styles a widget from its live colors. Transparent backgrounds
// show the row's background through.
func widgetStyle(fore, back, row paint.Color) lipgloss.Style {
	if back.IsTransparent() {
		back = row
	}
	return lipgloss.NewStyle().Foreground(color(fore)).Background(color(back))
}
