package core

import (
	"strings"

	"github.com/charmbracelet/x/ansi"

	"github.com/jask/smartfarm/widgets"
)

// View stacks header, status, body and footer. The body takes whatever rows
// the three single-line bars leave.
func (m Model) View() string {
	if m.quitting {
		return "Goodbye\n"
	}
	width, height := max(1, m.width), max(1, m.height)
	bars := []string{renderHeader(m), RenderStatusBar(m)}
	footer := RenderFooter(m)
	bodyRows := max(0, height-len(bars)-1)

	body := ""
	if bodyRows > 0 {
		if m.active != nil {
			body = m.active.View(max(1, width-2), bodyRows)
		}
		if top := m.modals.Top(); top != nil {
			popup := top.View(max(20, width-12), max(8, height-8))
			body = widgets.RenderPopup(body, popup, width-2, bodyRows)
		}
	}

	rows := bars
	if bodyRows > 0 {
		rows = append(rows, fitHeight(body, bodyRows))
	}
	rows = append(rows, footer)
	view := fitHeight(strings.Join(rows, "\n"), height)
	return appStyle.Width(width).MaxWidth(width).Render(view)
}

func renderHeader(m Model) string {
	width := max(1, m.width)
	title := ""
	if m.active != nil {
		title = m.active.Title()
	}
	auth := authOffStyle.Render("guest")
	if m.nav.State().Authenticated {
		auth = authOnStyle.Render("signed in")
	}

	left := headerAppStyle.Render(m.env.T("app.name"))
	right := ansi.Truncate(screenTitleStyle.Render(title)+headerSepStyle.Render(" │ ")+auth, width, "")
	gap := max(1, width-ansi.StringWidth(left)-ansi.StringWidth(right))
	return fillBar(headerBarStyle, width, left+strings.Repeat(" ", gap)+right)
}

// fitHeight clips or pads s to exactly height lines.
func fitHeight(s string, height int) string {
	if height <= 0 {
		return ""
	}
	lines := strings.Split(s, "\n")
	if len(lines) > height {
		lines = lines[:height]
	}
	for len(lines) < height {
		lines = append(lines, "")
	}
	return strings.Join(lines, "\n")
}
