package control

import (
	"github.com/yllada/exforms/paint"
	"github.com/yllada/exforms/service"
)

// TextBox is a single-line text input.
type TextBox struct {
	Base
	service.Core
	ColorSwap

	placeholder string
	readOnly    bool
	maxLength   int
}

// NewTextBox returns an empty text box.
func NewTextBox(name string) *TextBox {
	t := &TextBox{
		Base:      newBase(name, paint.WindowText, paint.Window),
		ColorSwap: newColorSwap(paint.WindowText, paint.Window),
	}
	t.tabStop = true
	t.SetKey(name)
	return t
}

// Register attaches decoration services to the text box.
func (t *TextBox) Register() { service.Register(t) }

// PlaceholderText is shown while the text box is empty.
func (t *TextBox) PlaceholderText() string { return t.placeholder }

// SetPlaceholderText sets the placeholder and asks hosts to repaint.
func (t *TextBox) SetPlaceholderText(s string) {
	t.placeholder = s
	t.changed.fire()
}

// ShowsPlaceholder reports whether hosts should draw the placeholder.
func (t *TextBox) ShowsPlaceholder() bool {
	return t.text == "" && t.placeholder != ""
}

func (t *TextBox) ReadOnly() bool     { return t.readOnly }
func (t *TextBox) SetReadOnly(v bool) { t.readOnly = v }

// MaxLength is the rune limit for typed text; zero means unlimited.
func (t *TextBox) MaxLength() int     { return t.maxLength }
func (t *TextBox) SetMaxLength(n int) { t.maxLength = n }

// Insert appends typed text, honoring read-only and max length.
func (t *TextBox) Insert(s string) {
	if t.readOnly || !t.enabled {
		return
	}
	runes := []rune(t.text + s)
	if t.maxLength > 0 && len(runes) > t.maxLength {
		runes = runes[:t.maxLength]
	}
	t.SetText(string(runes))
}

// Backspace removes the last character.
func (t *TextBox) Backspace() {
	if t.readOnly || !t.enabled || t.text == "" {
		return
	}
	runes := []rune(t.text)
	t.SetText(string(runes[:len(runes)-1]))
}
