package core

import "github.com/charmbracelet/lipgloss"

// Green-leaning palette for the farm shell chrome.
var (
	colorText     lipgloss.Color = "#e0eadf"
	colorMuted    lipgloss.Color = "#9aae9c"
	colorBorder   lipgloss.Color = "#4f6552"
	colorAccent   lipgloss.Color = "#7bd389"
	colorSuccess  lipgloss.Color = "#a6e3a1"
	colorError    lipgloss.Color = "#f38ba8"
	colorMantle   lipgloss.Color = "#16201a"
	colorSurface0 lipgloss.Color = "#223127"
)
