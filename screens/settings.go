package screens

import (
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"go.uber.org/zap"

	"github.com/jask/smartfarm/core"
	"github.com/jask/smartfarm/internal/i18n"
	"github.com/jask/smartfarm/widgets"
)

var themeKeys = map[string]string{
	"light":  "settings.lightMode",
	"dark":   "settings.darkMode",
	"nature": "settings.natureGreen",
}

var nativeLanguageNames = map[i18n.Language]string{
	i18n.English: "English",
	i18n.Hindi:   "हिन्दी",
	i18n.Marathi: "मराठी",
}

const (
	rowLanguage = iota
	rowTheme
	rowNotifications
	rowOffline
	rowLogout
	settingsRows
)

type settingsScreen struct {
	env           core.Env
	language      *core.Choice[i18n.Language]
	theme         *core.Choice[string]
	notifications bool
	offline       bool
	cursor        int
}

func newSettings(env core.Env, _ core.Route) core.Screen {
	s := &settingsScreen{
		env:           env,
		language:      core.NewChoice(i18n.Languages()...),
		theme:         core.NewChoice("light", "dark", "nature"),
		notifications: true,
	}
	if env.I18n != nil {
		s.language.Set(env.I18n.Language())
	}
	if env.Theme != "" {
		s.theme.Set(strings.ToLower(env.Theme))
	}
	return s
}

func (s *settingsScreen) ID() core.ScreenID { return core.ScreenSettings }
func (s *settingsScreen) Title() string     { return s.env.T("settings.title") }

func (s *settingsScreen) Update(nav core.Nav, msg tea.Msg) tea.Cmd {
	km, ok := msg.(tea.KeyMsg)
	if !ok {
		return nil
	}
	const id = core.ScreenSettings
	switch {
	case s.env.Is(km, "logout", id):
		nav.Logout()
	case s.env.Is(km, "nav-up", id):
		s.cursor = clampCursor(s.cursor-1, settingsRows)
	case s.env.Is(km, "nav-down", id):
		s.cursor = clampCursor(s.cursor+1, settingsRows)
	case s.env.Is(km, "value-next", id):
		s.change(nav, 1)
	case s.env.Is(km, "value-prev", id):
		s.change(nav, -1)
	}
	return nil
}

func (s *settingsScreen) change(nav core.Nav, dir int) {
	switch s.cursor {
	case rowLanguage:
		lang := s.language.Next
		if dir < 0 {
			lang = s.language.Prev
		}
		s.applyLanguage(nav, lang())
	case rowTheme:
		if dir < 0 {
			s.theme.Prev()
		} else {
			s.theme.Next()
		}
	case rowNotifications:
		s.notifications = !s.notifications
	case rowOffline:
		s.offline = !s.offline
	case rowLogout:
		if dir > 0 {
			nav.Logout()
		}
	}
}

func (s *settingsScreen) applyLanguage(nav core.Nav, lang i18n.Language) {
	if s.env.I18n == nil {
		return
	}
	if err := s.env.I18n.SetLanguage(string(lang)); err != nil {
		nav.SetError(err)
		s.language.Set(s.env.I18n.Language())
		return
	}
	s.env.Metrics.LanguageChanged(string(lang))
	s.env.Log().Info("language changed", zap.String("language", string(lang)))
	nav.SetStatus(s.env.T("settings.language") + ": " + nativeLanguageNames[lang])
}

func (s *settingsScreen) View(width, height int) string {
	cursor := func(row int, text string) string {
		if row == s.cursor {
			return widgets.Strong("▶ " + text)
		}
		return "  " + text
	}
	langLabel := func(l i18n.Language) string { return nativeLanguageNames[l] }
	themeLabel := func(t string) string { return s.env.T(themeKeys[t]) }

	lines := []string{
		cursor(rowLanguage, s.env.T("settings.language")),
		"    " + tabs(s.language, langLabel),
		"",
		cursor(rowTheme, s.env.T("settings.theme")),
		"    " + tabs(s.theme, themeLabel),
		"",
		widgets.Muted(s.env.T("settings.appSettings")),
		widgets.Toggle{Label: s.env.T("settings.notifications"), On: s.notifications, Selected: s.cursor == rowNotifications}.Line() +
			"  " + widgets.Muted(s.env.T("settings.notificationsDesc")),
		widgets.Toggle{Label: s.env.T("settings.offlineMode"), On: s.offline, Selected: s.cursor == rowOffline}.Line() +
			"  " + widgets.Muted(s.env.T("settings.offlineModeDesc")),
		"",
		cursor(rowLogout, s.env.T("settings.logout")) + "  " + widgets.Muted("(L)"),
	}
	return widgets.Pane{Title: s.Title(), Content: strings.Join(lines, "\n"), Selected: true}.Render(width, height)
}
