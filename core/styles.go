package core

import "github.com/charmbracelet/lipgloss"

var (
	appStyle = lipgloss.NewStyle().Foreground(colorText)

	headerAppStyle = lipgloss.NewStyle().Foreground(colorAccent).Bold(true)
	headerBarStyle = lipgloss.NewStyle().
			Background(colorMantle).
			Foreground(colorText)
	headerSepStyle = lipgloss.NewStyle().
			Foreground(colorBorder).
			Background(colorMantle)
	screenTitleStyle = lipgloss.NewStyle().
				Background(colorMantle).
				Foreground(colorText).
				Bold(true)
	authOnStyle = lipgloss.NewStyle().
			Background(colorMantle).
			Foreground(colorSuccess)
	authOffStyle = lipgloss.NewStyle().
			Background(colorMantle).
			Foreground(colorMuted)

	statusBarStyle = lipgloss.NewStyle().
			Foreground(colorSuccess).
			Background(colorSurface0)
	statusErrBarStyle = lipgloss.NewStyle().
				Foreground(colorError).
				Background(colorSurface0)

	footerStyle     = lipgloss.NewStyle().Background(colorMantle)
	footerKeyStyle  = lipgloss.NewStyle().Foreground(colorAccent).Background(colorMantle).Bold(true)
	footerDescStyle = lipgloss.NewStyle().Foreground(colorMuted).Background(colorMantle)
	footerHintStyle = footerDescStyle.Italic(true)
)
