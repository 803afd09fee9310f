package css

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yllada/exforms/paint"
	"github.com/yllada/exforms/service"
)

func TestClassFor(t *testing.T) {
	h := service.NewHandle()
	c := ClassFor(h)
	assert.True(t, strings.HasPrefix(c, ClassPrefix))
	assert.Len(t, c, len(ClassPrefix)+12)
	assert.Equal(t, c, ClassFor(h))
	assert.NotEqual(t, c, ClassFor(service.NewHandle()))
}

func TestSheetRendersRulesInFirstSeenOrder(t *testing.T) {
	s := NewSheet()
	s.SetColors("exf-b", paint.ControlText, paint.Transparent, "")
	s.SetColors("exf-a", paint.WindowText, paint.Window, "text")
	s.SetColors("exf-b", paint.HighlightText, paint.Highlight, "")

	want := `.exf-b {
    color: #ffffff;
    background-color: #0078d7;
    background-image: none;
}
.exf-a {
    color: #000000;
    background-color: #ffffff;
    background-image: none;
}
.exf-a > text {
    color: #000000;
    background-color: #ffffff;
    background-image: none;
}
`
	assert.Equal(t, want, s.String())
	assert.Equal(t, 2, s.Len())
}

func TestSheetGradient(t *testing.T) {
	s := NewSheet()
	g := paint.Gradient{From: paint.RGB(255, 0, 0), To: paint.RGB(0, 0, 255), Mode: paint.Vertical}
	s.SetGradient("exf-form", paint.ControlText, paint.Control, g)

	out := s.String()
	require.Contains(t, out, "background-image: linear-gradient(to bottom, #ff0000, #0000ff);")
	require.Contains(t, out, "background-color: #f0f0f0;")
}

func TestSheetRemove(t *testing.T) {
	s := NewSheet()
	s.SetColors("exf-a", paint.ControlText, paint.Control, "")
	s.SetColors("exf-b", paint.ControlText, paint.Control, "")
	s.Remove("exf-a")
	s.Remove("exf-missing")

	assert.Equal(t, 1, s.Len())
	assert.NotContains(t, s.String(), "exf-a")
}
