// Package tui hosts a form in the terminal with bubbletea.
//
// The host translates key messages into form operations: Tab and Shift+Tab
// move focus, Enter and Escape go through Form.HandleKey, and typed runes
// edit the focused text box. Colors come straight from the widgets, so the
// focus-color swap made by the decoration services shows up on the next
// render.
package tui

import (
	"fmt"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/yllada/exforms/common"
	"github.com/yllada/exforms/control"
)

// Model is the bubbletea model wrapping a form.
type Model struct {
	form     *control.Form
	keys     keyMap
	width    int
	quitting bool
}

// NewModel loads form and returns a model hosting it.
func NewModel(form *control.Form) Model {
	form.Load()
	return Model{
		form:  form,
		keys:  defaultKeyMap(),
		width: 60,
	}
}

// Form returns the hosted form.
func (m Model) Form() *control.Form { return m.form }

// Init focuses the first tab stop.
func (m Model) Init() tea.Cmd {
	if m.form.ActiveControl() == nil {
		m.form.ProcessTabKey(true)
	}
	return nil
}

// Update implements tea.Model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		return m, nil
	case tea.KeyMsg:
		return m.handleKey(msg)
	}
	return m, nil
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if key.Matches(msg, m.keys.Quit) {
		m.form.Close()
	}

	switch msg.Type {
	case tea.KeyEnter:
		if !m.form.HandleKey(control.KeyEvent{Key: control.KeyEnter, Alt: msg.Alt}) {
			m.press()
		}
	case tea.KeyEsc:
		m.form.HandleKey(control.KeyEvent{Key: control.KeyEscape, Alt: msg.Alt})
	case tea.KeyBackspace:
		if tb, ok := m.form.ActiveControl().(*control.TextBox); ok {
			tb.Backspace()
		}
	default:
		m.handleBinding(msg)
	}

	if m.form.Closed() {
		m.quitting = true
		return m, tea.Quit
	}
	return m, nil
}

func (m Model) handleBinding(msg tea.KeyMsg) {
	active := m.form.ActiveControl()
	switch {
	case key.Matches(msg, m.keys.Next):
		m.form.HandleKey(control.KeyEvent{Key: control.KeyTab})
	case key.Matches(msg, m.keys.Prev):
		m.form.HandleKey(control.KeyEvent{Key: control.KeyTab, Shift: true})
	case (msg.Type == tea.KeyRunes || msg.Type == tea.KeySpace) && insertable(active):
		text := string(msg.Runes)
		if msg.Type == tea.KeySpace {
			text = " "
		}
		m.insert(active, text)
	case key.Matches(msg, m.keys.Activate):
		m.press()
	case key.Matches(msg, m.keys.Inc):
		if n, ok := active.(*control.NumericUpDown); ok {
			n.Up()
		}
	case key.Matches(msg, m.keys.Dec):
		if n, ok := active.(*control.NumericUpDown); ok {
			n.Down()
		}
	case key.Matches(msg, m.keys.PrevPage):
		if tc, ok := active.(*control.TabControl); ok {
			tc.SetSelectedIndex(tc.SelectedIndex() - 1)
		}
	case key.Matches(msg, m.keys.NextPage):
		if tc, ok := active.(*control.TabControl); ok {
			tc.SetSelectedIndex(tc.SelectedIndex() + 1)
		}
	}
}

func insertable(w control.Focuser) bool {
	switch w.(type) {
	case *control.TextBox, *control.NumericUpDown:
		return true
	}
	return false
}

func (m Model) insert(w control.Focuser, s string) {
	switch w := w.(type) {
	case *control.TextBox:
		w.Insert(s)
	case *control.NumericUpDown:
		w.ParseText(w.Text() + s)
	}
}

// press clicks the focused button or checks the focused radio button.
func (m Model) press() {
	switch w := m.form.ActiveControl().(type) {
	case *control.Button:
		w.PerformClick()
	case *control.RadioButton:
		w.SetChecked(true)
	}
}

// Run hosts form until it closes. The form is loaded first and closed on
// exit, so its position is saved however the program ends.
func Run(form *control.Form) error {
	p := tea.NewProgram(NewModel(form), tea.WithAltScreen())
	_, err := p.Run()
	form.Close()
	if err != nil {
		return fmt.Errorf("terminal host failed: %w", err)
	}
	common.LogDebug("terminal host exited")
	return nil
}
