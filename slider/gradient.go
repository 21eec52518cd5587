package slider

import (
	"github.com/charmbracelet/lipgloss"
	"github.com/lucasb-eyer/go-colorful"
)

// gradientColors blends n colors from one hex color to another. It returns
// nil when either color does not parse.
func gradientColors(from, to string, n int) []lipgloss.Color {
	if n <= 0 || from == "" || to == "" {
		return nil
	}
	a, err := colorful.Hex(from)
	if err != nil {
		return nil
	}
	b, err := colorful.Hex(to)
	if err != nil {
		return nil
	}

	out := make([]lipgloss.Color, n)
	for i := range out {
		t := 0.0
		if n > 1 {
			t = float64(i) / float64(n-1)
		}
		out[i] = lipgloss.Color(a.BlendRgb(b, t).Clamped().Hex())
	}
	return out
}
