package screens

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/jask/smartfarm/core"
	"github.com/jask/smartfarm/internal/farmdata"
	"github.com/jask/smartfarm/widgets"
)

func statusTone(s farmdata.Status) widgets.Tone {
	if s == farmdata.StatusWarning {
		return widgets.ToneWarning
	}
	return widgets.ToneSafe
}

func severityTone(s farmdata.Severity) widgets.Tone {
	switch s {
	case farmdata.SeverityCritical:
		return widgets.ToneDanger
	case farmdata.SeverityWarning:
		return widgets.ToneWarning
	default:
		return widgets.ToneSafe
	}
}

func bandTone(b farmdata.MoistureBand) widgets.Tone {
	switch b {
	case farmdata.BandOptimal:
		return widgets.ToneSafe
	case farmdata.BandGood:
		return widgets.ToneInfo
	case farmdata.BandMedium:
		return widgets.ToneWarning
	default:
		return widgets.ToneDanger
	}
}

func chartPoints(points []farmdata.Point) []widgets.ChartPoint {
	out := make([]widgets.ChartPoint, len(points))
	for i, p := range points {
		out[i] = widgets.ChartPoint{Label: p.Label, Value: p.Value}
	}
	return out
}

// wrap reflows text to width columns.
func wrap(text string, width int) string {
	return lipgloss.NewStyle().Width(max(1, width)).Render(text)
}

// tabs renders the options of a choice with the current one highlighted.
func tabs[T comparable](c *core.Choice[T], label func(T) string) string {
	on := lipgloss.NewStyle().Foreground(lipgloss.Color("#16201a")).Background(widgets.ColorAccent).Bold(true).Padding(0, 1)
	off := lipgloss.NewStyle().Foreground(widgets.ColorMuted).Padding(0, 1)
	parts := make([]string, 0, len(c.Options()))
	for i, opt := range c.Options() {
		if i == c.Index() {
			parts = append(parts, on.Render(label(opt)))
		} else {
			parts = append(parts, off.Render(label(opt)))
		}
	}
	return strings.Join(parts, " ")
}

func clampCursor(cursor, n int) int {
	if n <= 0 {
		return 0
	}
	return min(max(cursor, 0), n-1)
}
