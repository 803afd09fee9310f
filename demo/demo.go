// Package demo builds the sample form shown by the exforms command.
package demo

import (
	"github.com/yllada/exforms/control"
	"github.com/yllada/exforms/paint"
	"github.com/yllada/exforms/position"
	"github.com/yllada/exforms/service"
)

// FormName keys the sample form's saved position.
const FormName = "TestForm"

// Options configures the sample form.
type Options struct {
	// Positions stores the window position; nil disables restoring it.
	Positions position.Store
	// EscClose lets Escape close the form.
	EscClose bool
}

// NewForm returns the sample form: a customer entry grid with caption
// labels, a numeric quantity, a shipping choice, a split notes area and
// a tab control with nested inputs.
func NewForm(opts Options) *control.Form {
	f := control.NewForm(FormName, "exforms demo")
	f.EnableEscClose = opts.EscClose
	if opts.Positions != nil {
		f.RestorePosition = true
		f.Positions = opts.Positions
	}
	f.GradientColor1 = paint.Window
	f.GradientColor2 = paint.MustParse("#dbe7f5")

	grid := control.NewTableLayoutPanel("customerGrid", 2, 3)

	nameLabel := control.NewLabel("nameLabel", "Name")
	name := control.NewTextBox("nameBox")
	name.SetPlaceholderText("customer name")
	captioned(name, nameLabel)

	mailLabel := control.NewLabel("mailLabel", "Mail")
	mail := control.NewTextBox("mailBox")
	mail.SetPlaceholderText("name@example.com")
	captioned(mail, mailLabel)

	qtyLabel := control.NewLabel("qtyLabel", "Quantity")
	qty := control.NewNumericUpDown("qtyBox")
	qty.SetRange(1, 99)
	qty.SetValue(1)
	captioned(qty, qtyLabel)

	grid.AddAt(nameLabel, 0, 0)
	grid.AddAt(name, 1, 0)
	grid.AddAt(mailLabel, 0, 1)
	grid.AddAt(mail, 1, 1)
	grid.AddAt(qtyLabel, 0, 2)
	grid.AddAt(qty, 1, 2)

	shipping := control.NewPanel("shippingPanel")
	group := control.NewRadioGroup()
	standard := control.NewRadioButton("standardRadio", "Standard shipping", group)
	express := control.NewRadioButton("expressRadio", "Express shipping", group)
	standard.SetChecked(true)
	shipping.Add(standard, express)

	split := control.NewSplitContainer("notesSplit")
	notes := control.NewTextBox("notesBox")
	notes.SetPlaceholderText("notes")
	split.Panel1.Add(control.NewLabel("notesLabel", "Notes"), notes)
	// the swap is off here so the box keeps its own colors
	internal := control.NewTextBox("internalBox")
	internal.SetPlaceholderText("internal remarks")
	internal.SetColorSwapEnabled(false)
	split.Panel2.Add(control.NewLabel("internalLabel", "Internal"), internal)

	tabs := control.NewTabControl("detailTabs")
	gift := tabs.AddPage("giftPage", "Gift")
	giftMessage := control.NewTextBox("giftBox")
	giftMessage.SetPlaceholderText("gift message")
	gift.Add(giftMessage)
	billing := tabs.AddPage("billingPage", "Billing")
	billing.Add(control.NewTextBox("billingBox"))

	buttons := control.NewPanel("buttonPanel")
	clearButton := control.NewButton("clearButton", "Clear")
	okButton := control.NewButton("okButton", "OK")
	okButton.SetFocusBackColor(paint.Highlight)
	okButton.SetFocusForeColor(paint.HighlightText)
	buttons.Add(clearButton, okButton)

	clearButton.OnClick(func() {
		for _, tb := range []*control.TextBox{name, mail, notes, giftMessage} {
			tb.SetText("")
		}
		qty.SetValue(1)
		standard.SetChecked(true)
	})
	okButton.OnClick(f.Close)

	f.Add(grid, shipping, split, tabs, buttons)
	return f
}

// captioned highlights input and its caption together while input has focus.
func captioned(input interface {
	SetCaptionWidget(w service.Widget)
	SetFocusBackColor(c paint.Color)
	SetFocusForeColor(c paint.Color)
}, caption *control.Label) {
	input.SetCaptionWidget(caption)
	input.SetFocusForeColor(paint.HighlightText)
	input.SetFocusBackColor(paint.Highlight)
}
