package ui

import (
	"github.com/diamondburned/gotk4/pkg/gdk/v4"
	"github.com/diamondburned/gotk4/pkg/gio/v2"
	"github.com/diamondburned/gotk4/pkg/glib/v2"
	"github.com/diamondburned/gotk4/pkg/gtk/v4"

	"github.com/yllada/exforms/common"
	"github.com/yllada/exforms/control"
	"github.com/yllada/exforms/service"
	"github.com/yllada/exforms/ui/css"
)

// FormWindow is the GTK window showing a form.
type FormWindow struct {
	app     *Application
	form    *control.Form
	window  *gtk.ApplicationWindow
	styles  *liveStyles
	widgets map[service.Handle]*gtk.Widget
	radios  map[*control.RadioGroup]*gtk.CheckButton
}

// NewFormWindow builds the window for form. The form should already be
// loaded so that its position and decoration services are in place.
func NewFormWindow(app *Application, form *control.Form) *FormWindow {
	fw := &FormWindow{
		app:     app,
		form:    form,
		styles:  newLiveStyles(),
		widgets: make(map[service.Handle]*gtk.Widget),
		radios:  make(map[*control.RadioGroup]*gtk.CheckButton),
	}

	fw.window = gtk.NewApplicationWindow(app.app)
	fw.window.SetTitle(form.Title)
	fw.window.SetDefaultSize(form.Width, form.Height)

	fw.createLayout()
	fw.connectForm()
	fw.setupActions()
	fw.styles.reload()

	return fw
}

// Present shows the window.
func (fw *FormWindow) Present() {
	fw.window.Present()
}

// createLayout maps the form's widgets onto GTK widgets.
func (fw *FormWindow) createLayout() {
	body := gtk.NewBox(gtk.OrientationVertical, 6)
	body.AddCSSClass("form-body")
	for _, child := range fw.form.Children() {
		body.Append(fw.build(child))
	}
	fw.window.SetChild(body)

	fw.track(fw.form, &fw.window.Widget, "")
}

// connectForm wires window events to the form and back.
func (fw *FormWindow) connectForm() {
	keys := gtk.NewEventControllerKey()
	keys.SetPropagationPhase(gtk.PhaseCapture)
	keys.ConnectKeyPressed(fw.onKeyPressed)
	fw.window.AddController(keys)

	fw.window.ConnectCloseRequest(func() bool {
		fw.form.Close()
		return false
	})

	fw.form.OnClosed(func() {
		fw.window.Close()
	})

	fw.form.OnActivate(func() {
		active := fw.form.ActiveControl()
		if active == nil {
			return
		}
		if w, ok := fw.widgets[active.Handle()]; ok && !w.HasFocus() {
			w.GrabFocus()
		}
	})
}

// setupActions configures application actions.
func (fw *FormWindow) setupActions() {
	// Preferences action (Ctrl+,)
	preferencesAction := gio.NewSimpleAction("preferences", nil)
	preferencesAction.ConnectActivate(func(_ *glib.Variant) {
		NewPreferencesDialog(fw).Show()
	})
	fw.app.app.AddAction(preferencesAction)
	fw.app.app.SetAccelsForAction("app.preferences", []string{"<Control>comma"})

	// Quit action (Ctrl+Q)
	quitAction := gio.NewSimpleAction("quit", nil)
	quitAction.ConnectActivate(func(_ *glib.Variant) {
		fw.form.Close()
	})
	fw.app.app.AddAction(quitAction)
	fw.app.app.SetAccelsForAction("app.quit", []string{"<Control>q"})
}

// onKeyPressed gives the form the first look at Enter and Escape.
func (fw *FormWindow) onKeyPressed(keyval, _ uint, state gdk.ModifierType) bool {
	ev := control.KeyEvent{
		Shift: state&gdk.ShiftMask != 0,
		Ctrl:  state&gdk.ControlMask != 0,
		Alt:   state&gdk.AltMask != 0,
	}

	switch keyval {
	case gdk.KEY_Return, gdk.KEY_KP_Enter:
		ev.Key = control.KeyEnter
	case gdk.KEY_Escape:
		ev.Key = control.KeyEscape
	default:
		return false
	}
	return fw.form.HandleKey(ev)
}

// build returns the GTK widget for w, building its children first.
func (fw *FormWindow) build(w service.Widget) gtk.Widgetter {
	switch w := w.(type) {
	case *control.Label:
		label := gtk.NewLabel(w.Text())
		label.SetXAlign(0)
		label.AddCSSClass("caption")
		fw.track(w, &label.Widget, "")
		w.OnChange(func() { label.SetText(w.Text()) })
		return label

	case *control.TextBox:
		entry := gtk.NewEntry()
		entry.SetPlaceholderText(w.PlaceholderText())
		entry.SetText(w.Text())
		if w.MaxLength() > 0 {
			entry.SetMaxLength(w.MaxLength())
		}
		entry.SetEditable(!w.ReadOnly())
		entry.ConnectChanged(func() { w.SetText(entry.Text()) })
		w.OnChange(func() {
			if entry.Text() != w.Text() {
				entry.SetText(w.Text())
			}
		})
		fw.focusable(w, &entry.Widget)
		fw.track(w, &entry.Widget, "text")
		return entry

	case *control.NumericUpDown:
		spin := gtk.NewSpinButtonWithRange(w.Minimum(), w.Maximum(), w.Increment())
		spin.SetDigits(uint(w.Decimals()))
		spin.SetValue(w.Value())
		spin.ConnectValueChanged(func() { w.SetValue(spin.Value()) })
		w.OnChange(func() {
			if spin.Value() != w.Value() {
				spin.SetValue(w.Value())
			}
		})
		fw.focusable(w, &spin.Widget)
		fw.track(w, &spin.Widget, "text")
		return spin

	case *control.RadioButton:
		check := gtk.NewCheckButtonWithLabel(w.Text())
		if leader, ok := fw.radios[w.Group()]; ok {
			check.SetGroup(leader)
		} else {
			fw.radios[w.Group()] = check
		}
		check.SetActive(w.Checked())
		check.ConnectToggled(func() {
			if check.Active() {
				w.SetChecked(true)
			}
		})
		w.OnChange(func() {
			if check.Active() != w.Checked() {
				check.SetActive(w.Checked())
			}
		})
		fw.focusable(w, &check.Widget)
		fw.track(w, &check.Widget, "")
		return check

	case *control.Button:
		button := gtk.NewButtonWithLabel(w.Text())
		button.ConnectClicked(w.PerformClick)
		w.OnChange(func() { button.SetLabel(w.Text()) })
		fw.focusable(w, &button.Widget)
		fw.track(w, &button.Widget, "")
		return button

	case *control.TableLayoutPanel:
		grid := gtk.NewGrid()
		grid.SetRowSpacing(6)
		grid.SetColumnSpacing(6)
		for _, child := range w.Children() {
			cell, _ := w.CellOf(child)
			grid.Attach(fw.build(child), cell.Column, cell.Row, 1, 1)
		}
		fw.track(w, &grid.Widget, "")
		return grid

	case *control.SplitContainer:
		orientation := gtk.OrientationHorizontal
		if w.Orientation() == control.Horizontal {
			orientation = gtk.OrientationVertical
		}
		paned := gtk.NewPaned(orientation)
		paned.SetStartChild(fw.build(w.Panel1))
		paned.SetEndChild(fw.build(w.Panel2))
		paned.SetPosition(w.SplitterDistance())
		fw.track(w, &paned.Widget, "")
		return paned

	case *control.TabControl:
		notebook := gtk.NewNotebook()
		for _, page := range w.Pages() {
			notebook.AppendPage(fw.build(page), gtk.NewLabel(page.Title()))
		}
		if i := w.SelectedIndex(); i >= 0 {
			notebook.SetCurrentPage(i)
		}
		notebook.ConnectSwitchPage(func(_ gtk.Widgetter, n uint) {
			w.SetSelectedIndex(int(n))
		})
		fw.focusable(w, &notebook.Widget)
		fw.track(w, &notebook.Widget, "")
		return notebook

	case service.Container:
		box := gtk.NewBox(gtk.OrientationVertical, 6)
		for _, child := range w.Children() {
			box.Append(fw.build(child))
		}
		fw.track(w, &box.Widget, "")
		return box

	default:
		common.LogWarn("no GTK mapping for %T", w)
		return gtk.NewBox(gtk.OrientationVertical, 0)
	}
}

// focusable forwards GTK focus-in to the form.
func (fw *FormWindow) focusable(w control.Focuser, gw *gtk.Widget) {
	focus := gtk.NewEventControllerFocus()
	focus.ConnectEnter(func() { fw.form.Activate(w) })
	gw.AddController(focus)
}

// track gives gw the widget's style class and keeps its colors, visibility
// and sensitivity in step with w.
func (fw *FormWindow) track(w service.Widget, gw *gtk.Widget, subnode string) {
	class := css.ClassFor(w.Handle())
	gw.AddCSSClass(class)
	fw.widgets[w.Handle()] = gw

	sync := func() {
		if f, ok := w.(*control.Form); ok {
			if g, on := f.Background(); on {
				fw.styles.sheet.SetGradient(class, f.ForeColor(), f.BackColor(), g)
				return
			}
		}
		fw.styles.sheet.SetColors(class, w.ForeColor(), w.BackColor(), subnode)
		if f, ok := w.(control.Focuser); ok {
			gw.SetVisible(f.Visible())
			gw.SetSensitive(f.Enabled())
		}
	}
	sync()

	if o, ok := w.(interface{ OnChange(func()) func() }); ok {
		o.OnChange(func() {
			sync()
			fw.styles.reload()
		})
	}
}
