package ui

import (
	"github.com/diamondburned/gotk4/pkg/gdk/v4"
	"github.com/diamondburned/gotk4/pkg/gtk/v4"

	"github.com/yllada/exforms/ui/css"
)

// Base styles. Colors come from the live style sheet.
const appCSS = `
/* ============================================
   exforms - Base Styles (GTK4)
   ============================================ */

.form-body {
    padding: 12px;
}

/* Caption labels sit left-aligned next to their inputs */
label.caption {
    padding: 2px 4px;
    border-radius: 4px;
}

entry, spinbutton {
    border-radius: 6px;
    min-height: 30px;
}

notebook > stack {
    padding: 8px;
}

paned > separator {
    min-width: 4px;
    min-height: 4px;
}
`

// LoadStyles loads the base CSS styles for the application.
// Should be called during application startup.
func LoadStyles() {
	display := gdk.DisplayGetDefault()
	if display == nil {
		return
	}

	provider := gtk.NewCSSProvider()
	provider.LoadFromString(appCSS)

	gtk.StyleContextAddProviderForDisplay(
		display,
		provider,
		gtk.STYLE_PROVIDER_PRIORITY_APPLICATION,
	)
}

// liveStyles owns the provider that mirrors widget colors. It sits above
// the theme so that decorated colors win.
type liveStyles struct {
	provider *gtk.CSSProvider
	sheet    *css.Sheet
}

func newLiveStyles() *liveStyles {
	s := &liveStyles{
		provider: gtk.NewCSSProvider(),
		sheet:    css.NewSheet(),
	}

	if display := gdk.DisplayGetDefault(); display != nil {
		gtk.StyleContextAddProviderForDisplay(
			display,
			s.provider,
			gtk.STYLE_PROVIDER_PRIORITY_USER,
		)
	}
	return s
}

// reload pushes the current sheet to GTK.
func (s *liveStyles) reload() {
	s.provider.LoadFromString(s.sheet.String())
}
