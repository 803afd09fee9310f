package paint

import "fmt"

// GradientMode is the direction of a linear background gradient.
type GradientMode int

const (
	Horizontal GradientMode = iota
	Vertical
	ForwardDiagonal
	BackwardDiagonal
)

func (m GradientMode) String() string {
	switch m {
	case Horizontal:
		return "horizontal"
	case Vertical:
		return "vertical"
	case ForwardDiagonal:
		return "forward-diagonal"
	case BackwardDiagonal:
		return "backward-diagonal"
	default:
		return "unknown"
	}
}

// Gradient is a two-stop linear gradient filling a rectangle.
type Gradient struct {
	From Color
	To   Color
	Mode GradientMode
}

// At returns the color at cell (x, y) of a w*h area.
func (g Gradient) At(x, y, w, h int) Color {
	fx, fy := fraction(x, w), fraction(y, h)

	var t float64
	switch g.Mode {
	case Horizontal:
		t = fx
	case Vertical:
		t = fy
	case BackwardDiagonal:
		t = ((1 - fx) + fy) / 2
	default:
		t = (fx + fy) / 2
	}
	return blend(g.From, g.To, t)
}

// CSS returns a linear-gradient() value for the gradient.
func (g Gradient) CSS() string {
	direction := "to bottom right"
	switch g.Mode {
	case Horizontal:
		direction = "to right"
	case Vertical:
		direction = "to bottom"
	case BackwardDiagonal:
		direction = "to bottom left"
	}
	return fmt.Sprintf("linear-gradient(%s, %s, %s)", direction, g.From.CSS(), g.To.CSS())
}

func fraction(pos, size int) float64 {
	if size <= 1 {
		return 0
	}
	if pos <= 0 {
		return 0
	}
	if pos >= size-1 {
		return 1
	}
	return float64(pos) / float64(size-1)
}

func blend(from, to Color, t float64) Color {
	if from == to {
		return from
	}
	r, g, b := from.colorful().BlendRgb(to.colorful(), t).Clamped().RGB255()
	a := float64(from.A) + (float64(to.A)-float64(from.A))*t
	return Color{R: r, G: g, B: b, A: uint8(a + 0.5)}
}
