package widgets

import "github.com/charmbracelet/lipgloss"

// Box is a borderless card with a bold heading, used for short stats.
type Box struct {
	Title   string
	Content string
	Tone    Tone
}

func (b Box) Render(width, height int) string {
	if width <= 0 || height <= 0 {
		return ""
	}
	head := lipgloss.NewStyle().Foreground(b.Tone.Color()).Bold(true).Render(b.Title)
	return Text(head + "\n" + b.Content).Render(width, height)
}
