package ui

import (
	"github.com/diamondburned/gotk4/pkg/gtk/v4"

	"github.com/yllada/exforms/common"
	"github.com/yllada/exforms/config"
)

// choice is a dropdown over fixed config values.
type choice struct {
	ids      []string
	dropDown *gtk.DropDown
}

func newChoice(ids, labels []string, current string) *choice {
	c := &choice{ids: ids}
	c.dropDown = gtk.NewDropDown(gtk.NewStringList(labels), nil)
	c.dropDown.SetSelected(c.index(current))
	c.dropDown.SetVAlign(gtk.AlignCenter)
	c.dropDown.AddCSSClass("flat")
	return c
}

// index returns the index of id, or 0 if not found.
func (c *choice) index(id string) uint {
	for i, x := range c.ids {
		if x == id {
			return uint(i)
		}
	}
	return 0
}

func (c *choice) value() string {
	i := c.dropDown.Selected()
	if int(i) < len(c.ids) {
		return c.ids[i]
	}
	return c.ids[0]
}

// PreferencesDialog edits the application configuration.
type PreferencesDialog struct {
	window         *gtk.Window
	formWindow     *FormWindow
	config         *config.Config
	instanceSwitch *gtk.Switch
	host           *choice
	backend        *choice
	theme          *choice
}

// NewPreferencesDialog creates a new preferences dialog.
func NewPreferencesDialog(fw *FormWindow) *PreferencesDialog {
	pd := &PreferencesDialog{
		formWindow: fw,
		config:     fw.app.config,
	}

	pd.build()
	return pd
}

// build constructs the dialog UI.
func (pd *PreferencesDialog) build() {
	pd.window = gtk.NewWindow()
	pd.window.SetTitle("Settings")
	pd.window.SetTransientFor(&pd.formWindow.window.Window)
	pd.window.SetModal(true)
	pd.window.SetDefaultSize(460, 420)
	pd.window.SetResizable(false)

	rootBox := gtk.NewBox(gtk.OrientationVertical, 0)

	mainBox := gtk.NewBox(gtk.OrientationVertical, 20)
	mainBox.SetMarginTop(24)
	mainBox.SetMarginBottom(16)
	mainBox.SetMarginStart(24)
	mainBox.SetMarginEnd(24)

	// Startup
	startupSection := pd.createSection("Startup", "system-run-symbolic")
	startupCard := pd.createCard()

	pd.instanceSwitch = gtk.NewSwitch()
	pd.instanceSwitch.SetActive(pd.config.SingleInstance)
	pd.instanceSwitch.SetVAlign(gtk.AlignCenter)
	startupCard.Append(pd.createSettingRow(
		"Single Instance",
		"Do not start a second copy while one is running",
		pd.instanceSwitch,
	))

	startupCard.Append(pd.createSeparator())

	pd.host = newChoice(
		[]string{common.HostGTK, common.HostTUI},
		[]string{"Desktop window", "Terminal"},
		pd.config.Host,
	)
	startupCard.Append(pd.createSettingRow(
		"Host",
		"Where the form is shown on next start",
		pd.host.dropDown,
	))

	startupSection.Append(startupCard)
	mainBox.Append(startupSection)

	// Window positions
	positionSection := pd.createSection("Window Positions", "view-restore-symbolic")
	positionCard := pd.createCard()

	pd.backend = newChoice(
		[]string{common.PositionBackendFile, common.PositionBackendSQLite},
		[]string{"One file per window", "SQLite database"},
		pd.config.PositionBackend,
	)
	positionCard.Append(pd.createSettingRow(
		"Storage",
		"How saved window positions are kept",
		pd.backend.dropDown,
	))

	positionSection.Append(positionCard)
	mainBox.Append(positionSection)

	// Appearance
	appearSection := pd.createSection("Appearance", "preferences-desktop-theme-symbolic")
	appearCard := pd.createCard()

	pd.theme = newChoice(
		[]string{common.ThemeAuto, common.ThemeLight, common.ThemeDark},
		[]string{"System Default", "Light", "Dark"},
		pd.config.Theme,
	)
	appearCard.Append(pd.createSettingRow(
		"Theme",
		"Choose the visual appearance of the application",
		pd.theme.dropDown,
	))

	appearSection.Append(appearCard)
	mainBox.Append(appearSection)

	rootBox.Append(mainBox)

	// Action buttons
	buttonBar := gtk.NewBox(gtk.OrientationHorizontal, 12)
	buttonBar.SetHAlign(gtk.AlignEnd)
	buttonBar.SetMarginTop(16)
	buttonBar.SetMarginBottom(20)
	buttonBar.SetMarginStart(24)
	buttonBar.SetMarginEnd(24)

	cancelBtn := gtk.NewButtonWithLabel("Cancel")
	cancelBtn.ConnectClicked(func() {
		pd.window.Close()
	})
	buttonBar.Append(cancelBtn)

	saveBtn := gtk.NewButtonWithLabel("Save")
	saveBtn.AddCSSClass("suggested-action")
	saveBtn.ConnectClicked(func() {
		pd.savePreferences()
		pd.window.Close()
	})
	buttonBar.Append(saveBtn)

	rootBox.Append(buttonBar)

	pd.window.SetChild(rootBox)
}

// createSection creates a section with icon and title.
func (pd *PreferencesDialog) createSection(title string, iconName string) *gtk.Box {
	section := gtk.NewBox(gtk.OrientationVertical, 8)

	headerBox := gtk.NewBox(gtk.OrientationHorizontal, 8)

	icon := gtk.NewImage()
	icon.SetFromIconName(iconName)
	icon.SetPixelSize(18)
	icon.AddCSSClass("dim-label")
	headerBox.Append(icon)

	label := gtk.NewLabel(title)
	label.SetXAlign(0)
	label.AddCSSClass("heading")
	label.AddCSSClass("dim-label")
	headerBox.Append(label)

	section.Append(headerBox)

	return section
}

// createCard creates a styled card container for settings.
func (pd *PreferencesDialog) createCard() *gtk.Box {
	card := gtk.NewBox(gtk.OrientationVertical, 0)
	card.AddCSSClass("card")
	return card
}

// createSettingRow creates a row with title, description, and widget.
func (pd *PreferencesDialog) createSettingRow(title string, description string, widget gtk.Widgetter) *gtk.Box {
	row := gtk.NewBox(gtk.OrientationHorizontal, 12)
	row.SetMarginTop(14)
	row.SetMarginBottom(14)
	row.SetMarginStart(16)
	row.SetMarginEnd(16)

	textBox := gtk.NewBox(gtk.OrientationVertical, 4)
	textBox.SetHExpand(true)

	titleLabel := gtk.NewLabel(title)
	titleLabel.SetXAlign(0)
	textBox.Append(titleLabel)

	descLabel := gtk.NewLabel(description)
	descLabel.SetXAlign(0)
	descLabel.AddCSSClass("dim-label")
	descLabel.SetWrap(true)
	textBox.Append(descLabel)

	row.Append(textBox)
	row.Append(widget)

	return row
}

// createSeparator creates a styled separator for cards.
func (pd *PreferencesDialog) createSeparator() *gtk.Separator {
	sep := gtk.NewSeparator(gtk.OrientationHorizontal)
	sep.SetMarginStart(16)
	sep.SetMarginEnd(16)
	return sep
}

// savePreferences saves the current preferences to the config file. The
// theme applies at once; the other settings take effect on next start.
func (pd *PreferencesDialog) savePreferences() {
	pd.config.SingleInstance = pd.instanceSwitch.Active()
	pd.config.Host = pd.host.value()
	pd.config.PositionBackend = pd.backend.value()
	pd.config.Theme = pd.theme.value()

	if err := pd.config.Save(); err != nil {
		common.LogError("Could not save preferences: %v", err)
		return
	}

	pd.formWindow.app.ApplyTheme(pd.config.Theme)
	common.LogInfo("Settings saved")
}

// Show displays the preferences dialog.
func (pd *PreferencesDialog) Show() {
	pd.window.Show()
}
