package widgets

import "github.com/charmbracelet/lipgloss"

type Toggle struct {
	Label    string
	On       bool
	Selected bool
}

func (t Toggle) Render(width, height int) string {
	if width <= 0 || height <= 0 {
		return ""
	}
	return padRight(t.Line(), width)
}

// Line renders the toggle as one row, for use inside lists.
func (t Toggle) Line() string {
	sw := lipgloss.NewStyle().Foreground(ColorMuted).Render("[ off]")
	if t.On {
		sw = lipgloss.NewStyle().Foreground(ColorSafe).Bold(true).Render("[on ●]")
	}
	label := t.Label
	if t.Selected {
		label = lipgloss.NewStyle().Foreground(ColorAccent).Bold(true).Render("▶ " + label)
	} else {
		label = "  " + label
	}
	return label + " " + sw
}
