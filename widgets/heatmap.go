package widgets

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// Heatmap draws a grid of integer cells. Tone picks each cell's colour.
type Heatmap struct {
	Title     string
	Cells     [][]int
	RowLabels []string
	Tone      func(v int) Tone
}

func (h Heatmap) Render(width, height int) string {
	if width <= 0 || height <= 0 {
		return ""
	}
	lines := make([]string, 0, len(h.Cells)+1)
	if h.Title != "" {
		lines = append(lines, Strong(h.Title))
	}
	labelW := 0
	for _, l := range h.RowLabels {
		labelW = max(labelW, len([]rune(l)))
	}
	for r, row := range h.Cells {
		if len(lines) >= height {
			break
		}
		label := ""
		if r < len(h.RowLabels) {
			label = h.RowLabels[r]
		}
		cells := make([]string, 0, len(row))
		for _, v := range row {
			tone := ToneNeutral
			if h.Tone != nil {
				tone = h.Tone(v)
			}
			style := lipgloss.NewStyle().Foreground(lipgloss.Color("#16201a")).Background(tone.Color())
			cells = append(cells, style.Render(fmt.Sprintf("%3d", v)))
		}
		line := strings.Join(cells, " ")
		if labelW > 0 {
			line = fmt.Sprintf("%-*s ", labelW, label) + line
		}
		lines = append(lines, padRight(line, width))
	}
	return strings.Join(lines, "\n")
}
