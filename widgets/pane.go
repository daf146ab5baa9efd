package widgets

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
)

// Pane draws a titled rounded frame. Tone tints the border; Selected wins
// over Tone.
type Pane struct {
	Title    string
	Content  string
	Tone     Tone
	Selected bool
}

func (p Pane) Render(width, height int) string {
	if width <= 0 || height <= 0 {
		return ""
	}
	if width < 4 {
		width = 4
	}
	h := max(3, height)

	border := ColorBorder
	if p.Tone != ToneNeutral {
		border = p.Tone.Color()
	}
	if p.Selected {
		border = ColorAccent
	}
	borderStyle := lipgloss.NewStyle().Foreground(border)
	titleStyle := lipgloss.NewStyle().Foreground(ColorText).Bold(true)

	titlePrefix := ""
	if p.Selected {
		titlePrefix = "▶ "
	}

	innerWidth := width - 2
	contentWidth := max(1, innerWidth-2)

	title := strings.TrimSpace(titlePrefix + p.Title)
	titleText := ""
	if title != "" {
		titleText = " " + title + " "
		if ansi.StringWidth(titleText) > innerWidth {
			titleText = " " + ansi.Truncate(title, max(1, innerWidth-2), "") + " "
		}
	}
	dashes := max(0, innerWidth-ansi.StringWidth(titleText))
	leftDash := min(1, dashes)
	rightDash := dashes - leftDash

	v := borderStyle.Render("│")
	top := borderStyle.Render("╭") +
		borderStyle.Render(strings.Repeat("─", leftDash)) +
		titleStyle.Render(titleText) +
		borderStyle.Render(strings.Repeat("─", rightDash)) +
		borderStyle.Render("╮")

	innerHeight := h - 2
	contentLines := splitLines(p.Content)
	rows := make([]string, 0, h)
	rows = append(rows, top)
	for i := 0; i < innerHeight; i++ {
		line := ""
		if i < len(contentLines) {
			line = contentLines[i]
		}
		rows = append(rows, v+" "+padRight(line, contentWidth)+" "+v)
	}
	rows = append(rows, borderStyle.Render("╰"+strings.Repeat("─", innerWidth)+"╯"))
	return strings.Join(rows, "\n")
}

// Inner returns the content size available inside a pane of the given size.
func Inner(width, height int) (int, int) {
	return max(1, width-4), max(1, height-2)
}

func splitLines(s string) []string {
	if strings.TrimSpace(s) == "" {
		return nil
	}
	return strings.Split(s, "\n")
}
