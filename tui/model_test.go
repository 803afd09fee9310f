package tui

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/require"

	"github.com/yllada/exforms/control"
	"github.com/yllada/exforms/paint"
	"github.com/yllada/exforms/service"
)

type fixture struct {
	form  *control.Form
	name  *control.TextBox
	qty   *control.NumericUpDown
	ok    *control.Button
	radio *control.RadioButton
}

func newFixture(t *testing.T) fixture {
	t.Helper()
	fx := fixture{
		form:  control.NewForm("TuiForm", "Order"),
		name:  control.NewTextBox("name"),
		qty:   control.NewNumericUpDown("qty"),
		ok:    control.NewButton("ok", "OK"),
		radio: control.NewRadioButton("express", "Express", nil),
	}
	fx.form.Registrar = service.NewRegistrar()
	fx.name.SetPlaceholderText("customer name")
	fx.name.SetFocusBackColor(paint.Highlight)
	fx.form.Add(fx.name, fx.qty, fx.radio, fx.ok)
	return fx
}

func send(t *testing.T, m Model, msg tea.Msg) (Model, tea.Cmd) {
	t.Helper()
	updated, cmd := m.Update(msg)
	return updated.(Model), cmd
}

func TestInitFocusesFirstTabStop(t *testing.T) {
	fx := newFixture(t)
	m := NewModel(fx.form)
	require.True(t, fx.form.Loaded())
	require.Nil(t, m.Init())
	require.Same(t, fx.name, fx.form.ActiveControl())
	require.Equal(t, paint.Highlight, fx.name.BackColor())
}

func TestTabAndEnterMoveFocus(t *testing.T) {
	fx := newFixture(t)
	m := NewModel(fx.form)
	m.Init()

	m, _ = send(t, m, tea.KeyMsg{Type: tea.KeyTab})
	require.Same(t, fx.qty, fx.form.ActiveControl())
	require.Equal(t, paint.Window, fx.name.BackColor())

	m, _ = send(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	require.Same(t, fx.radio, fx.form.ActiveControl())

	m, _ = send(t, m, tea.KeyMsg{Type: tea.KeyShiftTab})
	require.Same(t, fx.qty, fx.form.ActiveControl())
}

func TestEnterPressesButtonWhenNavigationOff(t *testing.T) {
	fx := newFixture(t)
	fx.form.EnableEnterTransition = false
	clicks := 0
	fx.ok.OnClick(func() { clicks++ })

	m := NewModel(fx.form)
	fx.form.Activate(fx.ok)
	send(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	require.Equal(t, 1, clicks)
}

func TestTypingEditsFocusedInput(t *testing.T) {
	fx := newFixture(t)
	m := NewModel(fx.form)
	m.Init()

	m, _ = send(t, m, tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("Ann")})
	m, _ = send(t, m, tea.KeyMsg{Type: tea.KeySpace, Runes: []rune{' '}})
	m, _ = send(t, m, tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("Lee")})
	m, _ = send(t, m, tea.KeyMsg{Type: tea.KeyBackspace})
	require.Equal(t, "Ann Le", fx.name.Text())

	fx.form.Activate(fx.qty)
	m, _ = send(t, m, tea.KeyMsg{Type: tea.KeyUp})
	m, _ = send(t, m, tea.KeyMsg{Type: tea.KeyUp})
	send(t, m, tea.KeyMsg{Type: tea.KeyDown})
	require.Equal(t, 1.0, fx.qty.Value())
}

func TestSpaceChecksRadio(t *testing.T) {
	fx := newFixture(t)
	m := NewModel(fx.form)
	fx.form.Activate(fx.radio)

	send(t, m, tea.KeyMsg{Type: tea.KeySpace, Runes: []rune{' '}})
	require.True(t, fx.radio.Checked())
}

func TestEscapeClosesWhenEnabled(t *testing.T) {
	fx := newFixture(t)
	fx.form.EnableEscClose = true
	m := NewModel(fx.form)

	m, cmd := send(t, m, tea.KeyMsg{Type: tea.KeyEsc})
	require.NotNil(t, cmd)
	require.IsType(t, tea.QuitMsg{}, cmd())
	require.True(t, fx.form.Closed())
	require.Empty(t, m.View())
}

func TestEscapeIgnoredByDefault(t *testing.T) {
	fx := newFixture(t)
	m := NewModel(fx.form)

	_, cmd := send(t, m, tea.KeyMsg{Type: tea.KeyEsc})
	require.Nil(t, cmd)
	require.False(t, fx.form.Closed())
}

func TestCtrlCClosesForm(t *testing.T) {
	fx := newFixture(t)
	m := NewModel(fx.form)

	_, cmd := send(t, m, tea.KeyMsg{Type: tea.KeyCtrlC})
	require.NotNil(t, cmd)
	require.True(t, fx.form.Closed())
}

func TestViewShowsWidgets(t *testing.T) {
	fx := newFixture(t)
	tabs := control.NewTabControl("tabs")
	tabs.AddPage("main", "Main").Add(control.NewLabel("hint", "inside"))
	tabs.AddPage("more", "More")
	fx.form.Add(tabs)

	m := NewModel(fx.form)
	m, _ = send(t, m, tea.WindowSizeMsg{Width: 80, Height: 24})
	view := m.View()

	require.Contains(t, view, "Order")
	require.Contains(t, view, "customer name")
	require.Contains(t, view, "( ) Express")
	require.Contains(t, view, "< OK >")
	require.Contains(t, view, "Main")
	require.Contains(t, view, "inside")
}
