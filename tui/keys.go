package tui

import "github.com/charmbracelet/bubbles/key"

// keyMap holds the bindings the terminal host handles itself. Enter and
// Escape are not bound here: they go to the form first.
type keyMap struct {
	Next     key.Binding
	Prev     key.Binding
	Activate key.Binding
	Inc      key.Binding
	Dec      key.Binding
	PrevPage key.Binding
	NextPage key.Binding
	Quit     key.Binding
}

func defaultKeyMap() keyMap {
	return keyMap{
		Next: key.NewBinding(
			key.WithKeys("tab"),
			key.WithHelp("tab", "next"),
		),
		Prev: key.NewBinding(
			key.WithKeys("shift+tab"),
			key.WithHelp("shift+tab", "previous"),
		),
		Activate: key.NewBinding(
			key.WithKeys(" "),
			key.WithHelp("space", "press"),
		),
		Inc: key.NewBinding(
			key.WithKeys("up"),
			key.WithHelp("↑", "increase"),
		),
		Dec: key.NewBinding(
			key.WithKeys("down"),
			key.WithHelp("↓", "decrease"),
		),
		PrevPage: key.NewBinding(
			key.WithKeys("left"),
			key.WithHelp("←", "previous page"),
		),
		NextPage: key.NewBinding(
			key.WithKeys("right"),
			key.WithHelp("→", "next page"),
		),
		Quit: key.NewBinding(
			key.WithKeys("ctrl+c"),
			key.WithHelp("ctrl+c", "quit"),
		),
	}
}

// ShortHelp lists the bindings shown in the footer.
func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Next, k.Prev, k.Activate, k.Quit}
}
