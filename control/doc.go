// Package control provides the decorated widget set: leaf inputs that swap
// colors on focus (Button, TextBox, NumericUpDown, RadioButton), containers
// (Panel, TableLayoutPanel, SplitContainer, TabControl) and the top-level
// Form.
//
// Widgets are toolkit neutral. A host (see packages ui and tui) renders them
// and forwards focus, key, load and close notifications; decoration services
// from package service react to those notifications and update the widgets'
// colors, which hosts observe through OnChange.
//
// A minimal form:
//
//	caption := control.NewLabel("nameLabel", "Name")
//	name := control.NewTextBox("name")
//	name.SetCaptionWidget(caption)
//
//	form := control.NewForm("Main", "Customer")
//	form.Add(caption, name)
//	form.Load()
package control
