// Package paint holds the color and gradient values shared by widgets,
// decoration services and hosts.
package paint

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/lucasb-eyer/go-colorful"
)

// Color is an 8-bit RGBA color. The zero value is fully transparent black.
type Color struct {
	R, G, B, A uint8
}

// Transparent is the fully transparent color.
var Transparent = Color{}

// System palette. Widgets take their defaults from here.
var (
	WindowText    = RGB(0x00, 0x00, 0x00)
	Window        = RGB(0xFF, 0xFF, 0xFF)
	ControlText   = RGB(0x00, 0x00, 0x00)
	Control       = RGB(0xF0, 0xF0, 0xF0)
	ControlDark   = RGB(0xA0, 0xA0, 0xA0)
	ButtonFace    = RGB(0xF0, 0xF0, 0xF0)
	Highlight     = RGB(0x00, 0x78, 0xD7)
	HighlightText = RGB(0xFF, 0xFF, 0xFF)
)

// RGB returns an opaque color.
func RGB(r, g, b uint8) Color {
	return Color{R: r, G: g, B: b, A: 0xFF}
}

// ParseColor parses "#rgb", "#rrggbb", "#rrggbbaa" or "transparent".
func ParseColor(s string) (Color, error) {
	s = strings.TrimSpace(s)
	if strings.EqualFold(s, "transparent") {
		return Transparent, nil
	}

	alpha := uint8(0xFF)
	if len(s) == 9 && s[0] == '#' {
		a, err := strconv.ParseUint(s[7:], 16, 8)
		if err != nil {
			return Color{}, fmt.Errorf("invalid alpha in color %q: %w", s, err)
		}
		alpha = uint8(a)
		s = s[:7]
	}

	c, err := colorful.Hex(s)
	if err != nil {
		return Color{}, fmt.Errorf("invalid color %q: %w", s, err)
	}
	r, g, b := c.RGB255()
	return Color{R: r, G: g, B: b, A: alpha}, nil
}

// MustParse is like ParseColor but panics on malformed input.
// Use it for package-level literals only.
func MustParse(s string) Color {
	c, err := ParseColor(s)
	if err != nil {
		panic(err)
	}
	return c
}

// IsTransparent reports whether the color has no opacity at all.
func (c Color) IsTransparent() bool {
	return c.A == 0
}

// Hex returns "#rrggbb", or "#rrggbbaa" for translucent colors.
func (c Color) Hex() string {
	if c.A == 0xFF {
		return fmt.Sprintf("#%02x%02x%02x", c.R, c.G, c.B)
	}
	return fmt.Sprintf("#%02x%02x%02x%02x", c.R, c.G, c.B, c.A)
}

// CSS returns the color as a CSS value.
func (c Color) CSS() string {
	switch c.A {
	case 0:
		return "transparent"
	case 0xFF:
		return c.Hex()
	default:
		return fmt.Sprintf("rgba(%d,%d,%d,%.3f)", c.R, c.G, c.B, float64(c.A)/255)
	}
}

func (c Color) String() string {
	if c.IsTransparent() {
		return "transparent"
	}
	return c.Hex()
}

func (c Color) colorful() colorful.Color {
	return colorful.Color{R: float64(c.R) / 255, G: float64(c.G) / 255, B: float64(c.B) / 255}
}
