package widgets

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// Gauge is a horizontal slider track. Fraction is clamped to [0,1].
type Gauge struct {
	Label    string
	Fraction float64
	Value    string
	MinLabel string
	MaxLabel string
}

func (g Gauge) Render(width, height int) string {
	if width <= 0 || height <= 0 {
		return ""
	}
	f := min(max(g.Fraction, 0), 1)
	track := max(4, width-len([]rune(g.MinLabel))-len([]rune(g.MaxLabel))-2)
	pos := int(f * float64(track-1))
	fill := lipgloss.NewStyle().Foreground(ColorAccent).Render(strings.Repeat("━", pos))
	knob := lipgloss.NewStyle().Foreground(ColorText).Bold(true).Render("●")
	rest := lipgloss.NewStyle().Foreground(ColorBorder).Render(strings.Repeat("─", track-1-pos))
	lines := []string{
		g.Label + " " + Strong(g.Value),
		g.MinLabel + " " + fill + knob + rest + " " + g.MaxLabel,
	}
	if height < 2 {
		lines = lines[1:]
	}
	for i := range lines {
		lines[i] = padRight(lines[i], width)
	}
	return strings.Join(lines, "\n")
}
