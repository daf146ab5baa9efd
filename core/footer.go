package core

import (
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
)

// RenderFooter lists the shortcuts live in the active scope, first binding
// per action only.
func RenderFooter(m Model) string {
	width := max(1, m.width)
	var shown []key.Binding
	seen := make(map[string]bool)
	for _, b := range m.keys.BindingsForScope(m.ActiveScope()) {
		if len(b.Keys) == 0 || b.Description == "" || seen[b.Action] {
			continue
		}
		seen[b.Action] = true
		shown = append(shown, HelpBinding(b))
	}

	line := footerHintStyle.Render("no shortcuts")
	if len(shown) > 0 {
		h := help.New()
		h.Width = width
		h.ShortSeparator = "  "
		h.Styles.ShortKey = footerKeyStyle
		h.Styles.ShortDesc = footerDescStyle
		h.Styles.ShortSeparator = footerDescStyle
		h.Styles.Ellipsis = footerDescStyle
		line = h.ShortHelpView(shown)
	}
	return fillBar(footerStyle, width, line)
}

// HelpBinding converts a registry entry into a bubbles key binding.
func HelpBinding(b KeyBinding) key.Binding {
	if len(b.Keys) == 0 {
		return key.NewBinding(key.WithDisabled())
	}
	return key.NewBinding(key.WithKeys(b.Keys...), key.WithHelp(strings.Join(b.Keys, "/"), b.Description))
}

func RenderStatusBar(m Model) string {
	msg := strings.TrimSpace(m.status)
	if msg == "" {
		msg = "Ready"
	}
	style := statusBarStyle
	if m.statusErr {
		style = statusErrBarStyle
	}
	return fillBar(style, max(1, m.width), msg)
}

// fillBar flattens text to one row and pads it to exactly width cells.
func fillBar(style lipgloss.Style, width int, text string) string {
	row := ansi.Truncate(strings.ReplaceAll(text, "\n", " "), width, "")
	if pad := width - ansi.StringWidth(row); pad > 0 {
		row += strings.Repeat(" ", pad)
	}
	return style.Width(width).MaxWidth(width).Render(row)
}
