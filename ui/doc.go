// Package ui hosts exforms forms in a GTK4 desktop window.
//
// The host maps each widget of a control.Form onto a GTK widget:
//
//   - Button: gtk.Button
//   - TextBox: gtk.Entry
//   - NumericUpDown: gtk.SpinButton
//   - RadioButton: grouped gtk.CheckButton
//   - Label: gtk.Label
//   - TableLayoutPanel: gtk.Grid
//   - SplitContainer: gtk.Paned
//   - TabControl: gtk.Notebook
//   - Panel and tab pages: gtk.Box
//
// # Events
//
// Focus controllers forward focus-in to Form.Activate, which blurs the
// previous widget and focuses the new one; the decoration services swap
// colors in response. A capture-phase key controller on the window gives
// Form.HandleKey the first look at Enter and Escape.
//
// # Styling
//
// Widget colors are mirrored into one application style sheet (see package
// ui/css). Every widget carries a class derived from its handle, and the
// sheet is regenerated whenever a widget reports a change, so color swaps
// show up immediately. The form's gradient is painted as the window's
// background image.
//
// # Thread Safety
//
// GTK operations must execute on the main thread. Widget observers run
// wherever the widget changes; all of them are triggered from GTK signal
// handlers, so they already run on the main thread.
//
// # Window Position
//
// GTK4 leaves window placement to the compositor. The form's saved
// position is still loaded and saved, but the window is not moved.
//
// # File Organization
//
//   - app.go: Application lifecycle and theme
//   - form_window.go: Form window and widget mapping
//   - preferences.go: Settings dialog
//   - styles.go: Base CSS and the live style provider
package ui
