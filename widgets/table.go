package widgets

import (
	"github.com/charmbracelet/bubbles/table"
	"github.com/charmbracelet/lipgloss"
)

type Column struct {
	Title string
	Width int
}

// Table renders rows through a throwaway bubbles table. Cursor < 0 hides
// the selection highlight.
type Table struct {
	Columns []Column
	Rows    [][]string
	Cursor  int
}

func (t Table) Render(width, height int) string {
	if width <= 0 || height <= 0 {
		return ""
	}
	if len(t.Columns) == 0 {
		return Muted("No data")
	}
	cols := make([]table.Column, len(t.Columns))
	for i, c := range t.Columns {
		cols[i] = table.Column{Title: c.Title, Width: c.Width}
	}
	rows := make([]table.Row, len(t.Rows))
	for i, r := range t.Rows {
		rows[i] = table.Row(r)
	}
	m := table.New(
		table.WithColumns(cols),
		table.WithRows(rows),
		table.WithFocused(t.Cursor >= 0),
		table.WithWidth(width),
		table.WithHeight(max(1, height-1)),
	)
	styles := table.DefaultStyles()
	styles.Header = styles.Header.Bold(true).Foreground(ColorAccent).BorderForeground(ColorBorder)
	if t.Cursor >= 0 {
		styles.Selected = styles.Selected.Bold(true).Foreground(lipgloss.Color("#16201a")).Background(ColorAccent)
		m.SetCursor(min(t.Cursor, max(0, len(rows)-1)))
	} else {
		styles.Selected = lipgloss.NewStyle()
	}
	m.SetStyles(styles)
	return m.View()
}
