package widgets

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

type Widget interface {
	Render(width, height int) string
}

// Text renders a fixed block clipped to the given height.
type Text string

func (t Text) Render(width, height int) string {
	if width <= 0 || height <= 0 {
		return ""
	}
	lines := strings.Split(string(t), "\n")
	if len(lines) > height {
		lines = lines[:height]
	}
	for i := range lines {
		lines[i] = padRight(lines[i], width)
	}
	return strings.Join(lines, "\n")
}

var (
	ColorText    lipgloss.Color = "#e0eadf"
	ColorMuted   lipgloss.Color = "#9aae9c"
	ColorBorder  lipgloss.Color = "#4f6552"
	ColorAccent  lipgloss.Color = "#7bd389"
	ColorSafe    lipgloss.Color = "#a6e3a1"
	ColorWarning lipgloss.Color = "#f9e2af"
	ColorDanger  lipgloss.Color = "#f38ba8"
	ColorInfo    lipgloss.Color = "#89b4fa"
)

type Tone int

const (
	ToneNeutral Tone = iota
	ToneSafe
	ToneWarning
	ToneDanger
	ToneInfo
)

func (t Tone) Color() lipgloss.Color {
	switch t {
	case ToneSafe:
		return ColorSafe
	case ToneWarning:
		return ColorWarning
	case ToneDanger:
		return ColorDanger
	case ToneInfo:
		return ColorInfo
	default:
		return ColorMuted
	}
}

// Badge renders a short coloured label such as a sensor status.
func Badge(text string, tone Tone) string {
	return lipgloss.NewStyle().Foreground(tone.Color()).Bold(true).Render("● " + text)
}

func Muted(s string) string {
	return lipgloss.NewStyle().Foreground(ColorMuted).Render(s)
}

func Strong(s string) string {
	return lipgloss.NewStyle().Foreground(ColorText).Bold(true).Render(s)
}
