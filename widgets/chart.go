package widgets

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

type ChartPoint struct {
	Label string
	Value float64
}

// Chart is a horizontal bar chart scaled to the largest value.
type Chart struct {
	Title string
	Data  []ChartPoint
	Unit  string
	Tone  Tone
}

func (c Chart) Render(width, height int) string {
	if width <= 0 || height <= 0 {
		return ""
	}
	lines := make([]string, 0, len(c.Data)+1)
	if c.Title != "" {
		lines = append(lines, Strong(c.Title))
	}
	if len(c.Data) == 0 {
		return strings.Join(append(lines, Muted("(no data)")), "\n")
	}
	maxV := 0.0
	labelW := 0
	for _, p := range c.Data {
		maxV = max(maxV, p.Value)
		labelW = max(labelW, len([]rune(p.Label)))
	}
	if maxV <= 0 {
		maxV = 1
	}
	tone := c.Tone
	if tone == ToneNeutral {
		tone = ToneSafe
	}
	bar := lipgloss.NewStyle().Foreground(tone.Color())
	barSpace := max(1, width-labelW-10)
	for _, p := range c.Data {
		if len(lines) >= height {
			break
		}
		w := max(1, int((p.Value/maxV)*float64(barSpace)))
		lines = append(lines, fmt.Sprintf("%-*s %s %s", labelW, p.Label, bar.Render(strings.Repeat("█", w)), formatValue(p.Value, c.Unit)))
	}
	return strings.Join(lines, "\n")
}

var sparkBlocks = []rune("▁▂▃▄▅▆▇█")

// Sparkline renders values as a single row of block glyphs.
type Sparkline struct {
	Label  string
	Values []float64
	Tone   Tone
}

func (s Sparkline) Render(width, height int) string {
	if width <= 0 || height <= 0 {
		return ""
	}
	if len(s.Values) == 0 {
		return padRight(s.Label, width)
	}
	lo, hi := s.Values[0], s.Values[0]
	for _, v := range s.Values {
		lo, hi = min(lo, v), max(hi, v)
	}
	var b strings.Builder
	for _, v := range s.Values {
		idx := len(sparkBlocks) - 1
		if hi > lo {
			idx = int((v - lo) / (hi - lo) * float64(len(sparkBlocks)-1))
		}
		b.WriteRune(sparkBlocks[idx])
	}
	tone := s.Tone
	if tone == ToneNeutral {
		tone = ToneInfo
	}
	line := b.String()
	if s.Label != "" {
		line = s.Label + " " + lipgloss.NewStyle().Foreground(tone.Color()).Render(line)
	}
	return padRight(line, width)
}

func formatValue(v float64, unit string) string {
	if v == float64(int64(v)) {
		return fmt.Sprintf("%d%s", int64(v), unit)
	}
	return fmt.Sprintf("%.1f%s", v, unit)
}
