package widgets

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// List renders items with a cursor marker, scrolling to keep the cursor
// visible. Cursor < 0 hides the marker.
type List struct {
	Title  string
	Items  []string
	Cursor int
}

func (l List) Render(width, height int) string {
	if width <= 0 || height <= 0 {
		return ""
	}
	rows := make([]string, 0, height)
	if l.Title != "" {
		rows = append(rows, Strong(l.Title))
	}
	visible := height - len(rows)
	if visible <= 0 {
		return strings.Join(rows, "\n")
	}
	start := 0
	if l.Cursor >= visible {
		start = l.Cursor - visible + 1
	}
	selected := lipgloss.NewStyle().Foreground(ColorAccent).Bold(true)
	for i := start; i < len(l.Items) && len(rows) < height; i++ {
		item := l.Items[i]
		if l.Cursor < 0 {
			rows = append(rows, padRight(item, width))
			continue
		}
		if i == l.Cursor {
			item = selected.Render("▶ " + item)
		} else {
			item = "  " + item
		}
		rows = append(rows, padRight(item, width))
	}
	return strings.Join(rows, "\n")
}
