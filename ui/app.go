package ui

import (
	"os"
	"path/filepath"

	"github.com/diamondburned/gotk4/pkg/gdk/v4"
	"github.com/diamondburned/gotk4/pkg/gio/v2"
	"github.com/diamondburned/gotk4/pkg/glib/v2"
	"github.com/diamondburned/gotk4/pkg/gtk/v4"

	"github.com/yllada/exforms/common"
	"github.com/yllada/exforms/config"
	"github.com/yllada/exforms/control"
)

// Application represents the desktop host of one form.
type Application struct {
	app    *gtk.Application
	form   *control.Form
	window *FormWindow
	config *config.Config
}

// NewApplication creates a GTK application hosting form. Instance
// uniqueness is handled by package instance, so the GTK application itself
// is non-unique.
func NewApplication(appID string, form *control.Form, cfg *config.Config) *Application {
	if cfg == nil {
		cfg = config.DefaultConfig()
	}

	application := &Application{
		app:    gtk.NewApplication(appID, gio.ApplicationNonUnique),
		form:   form,
		config: cfg,
	}

	// Connect activation signal
	application.app.ConnectActivate(application.onActivate)

	return application
}

// Run runs the application until its window closes.
func (a *Application) Run(args []string) int {
	code := a.app.Run(args)
	// the window may never have opened; closing again is harmless
	a.form.Close()
	return code
}

// onActivate is called when the application is activated
func (a *Application) onActivate() {
	if a.window != nil {
		a.window.Present()
		return
	}

	// Apply configured theme
	a.ApplyTheme(a.config.Theme)

	// Set up the application icon
	a.setupAppIcon()

	// Load base CSS styles
	LoadStyles()

	a.form.Load()
	a.window = NewFormWindow(a, a.form)
	a.window.Present()
}

// setupAppIcon sets up the application icon
func (a *Application) setupAppIcon() {
	display := gdk.DisplayGetDefault()
	if display == nil {
		return
	}

	iconTheme := gtk.IconThemeGetForDisplay(display)
	if iconTheme == nil {
		return
	}

	// From executable directory
	if execPath, err := os.Executable(); err == nil {
		iconTheme.AddSearchPath(filepath.Join(filepath.Dir(execPath), "assets", "icons"))
	}

	gtk.WindowSetDefaultIconName(common.AppName)
}

// GetConfig returns the configuration
func (a *Application) GetConfig() *config.Config {
	return a.config
}

// ApplyTheme applies the specified theme to the application.
// Supported values: "auto" (system default), "light", "dark"
func (a *Application) ApplyTheme(theme string) {
	settings := gtk.SettingsGetDefault()
	if settings == nil {
		return
	}

	switch theme {
	case common.ThemeLight:
		settings.SetObjectProperty("gtk-application-prefer-dark-theme", false)
	case common.ThemeDark:
		settings.SetObjectProperty("gtk-application-prefer-dark-theme", true)
	default: // "auto" - follow system theme
	}
}

// Shutdown closes the form and quits from any goroutine.
func (a *Application) Shutdown() {
	glib.IdleAdd(func() {
		a.form.Close()
		a.Quit()
	})
}

// Quit closes the application
func (a *Application) Quit() {
	a.app.Quit()
}
