package core

import "strings"

const (
	scopeAll       = "*"
	scopeNotLogin  = "!screen:login"
	ScopeCommand   = "modal:command"
	ScopeHelp      = "modal:help"
	scopeDashboard = "screen:dashboard"
)

func DefaultKeyBindings() []KeyBinding {
	sub := func(ids ...ScreenID) []string {
		out := make([]string, 0, len(ids))
		for _, id := range ids {
			out = append(out, id.Scope())
		}
		return out
	}
	return []KeyBinding{
		{Keys: []string{"q"}, Action: "quit", Description: "quit", Scopes: []string{scopeAll, scopeNotLogin}},
		{Keys: []string{"ctrl+k"}, Action: "open-command-palette", Description: "commands", Scopes: []string{scopeAll}},
		{Keys: []string{"?"}, Action: "help", Description: "help", Scopes: []string{scopeAll, scopeNotLogin}},
		{Keys: []string{"esc"}, Action: "back", Description: "dashboard", Scopes: sub(ScreenFieldMap, ScreenSensorDetails, ScreenAlerts, ScreenInsights, ScreenAutomation, ScreenAnalytics, ScreenSettings)},

		{Keys: []string{"enter", "right"}, Action: "next", Description: "next", Scopes: sub(ScreenOnboarding)},
		{Keys: []string{"left"}, Action: "prev", Description: "back", Scopes: sub(ScreenOnboarding)},
		{Keys: []string{"s"}, Action: "skip", Description: "skip", Scopes: sub(ScreenOnboarding)},

		{Keys: []string{"ctrl+t"}, Action: "switch-mode", Description: "login/sign up", Scopes: sub(ScreenLogin)},
		{Keys: []string{"tab", "down"}, Action: "nav-down", Description: "next field", Scopes: sub(ScreenLogin)},
		{Keys: []string{"shift+tab", "up"}, Action: "nav-up", Description: "prev field", Scopes: sub(ScreenLogin)},
		{Keys: []string{"enter"}, Action: "submit", Description: "submit", Scopes: sub(ScreenLogin)},
		{Keys: []string{"ctrl+b"}, Action: "biometric", Description: "biometric", Scopes: sub(ScreenLogin)},

		{Keys: []string{"left", "h"}, Action: "nav-left", Description: "left", Scopes: sub(ScreenDashboard)},
		{Keys: []string{"right", "l"}, Action: "nav-right", Description: "right", Scopes: sub(ScreenDashboard)},
		{Keys: []string{"up", "k"}, Action: "nav-up", Description: "up", Scopes: sub(ScreenDashboard, ScreenFieldMap, ScreenAlerts, ScreenAutomation, ScreenSettings)},
		{Keys: []string{"down", "j"}, Action: "nav-down", Description: "down", Scopes: sub(ScreenDashboard, ScreenFieldMap, ScreenAlerts, ScreenAutomation, ScreenSettings)},
		{Keys: []string{"enter"}, Action: "select", Description: "open sensor", Scopes: sub(ScreenDashboard, ScreenFieldMap)},
		{Keys: []string{"m"}, Action: "goto-fieldMap", Description: "map", Scopes: []string{scopeDashboard}},
		{Keys: []string{"a"}, Action: "goto-alerts", Description: "alerts", Scopes: []string{scopeDashboard}},
		{Keys: []string{"i"}, Action: "goto-insights", Description: "insights", Scopes: []string{scopeDashboard}},
		{Keys: []string{"c"}, Action: "goto-automation", Description: "control", Scopes: []string{scopeDashboard}},
		{Keys: []string{"r"}, Action: "goto-analytics", Description: "analytics", Scopes: []string{scopeDashboard}},
		{Keys: []string{"s"}, Action: "goto-settings", Description: "settings", Scopes: []string{scopeDashboard}},

		{Keys: []string{"tab", "r"}, Action: "range-next", Description: "range", Scopes: sub(ScreenSensorDetails, ScreenAnalytics)},
		{Keys: []string{"+", "=", "right"}, Action: "threshold-up", Description: "threshold +", Scopes: sub(ScreenSensorDetails)},
		{Keys: []string{"-", "left"}, Action: "threshold-down", Description: "threshold -", Scopes: sub(ScreenSensorDetails)},
		{Keys: []string{"w"}, Action: "threshold-save", Description: "save threshold", Scopes: sub(ScreenSensorDetails)},

		{Keys: []string{"f", "tab"}, Action: "filter-next", Description: "filter", Scopes: sub(ScreenAlerts)},

		{Keys: []string{"space"}, Action: "toggle-power", Description: "on/off", Scopes: sub(ScreenAutomation)},
		{Keys: []string{"a"}, Action: "toggle-auto", Description: "auto", Scopes: sub(ScreenAutomation)},
		{Keys: []string{"S"}, Action: "start-all", Description: "start all", Scopes: sub(ScreenAutomation)},
		{Keys: []string{"X"}, Action: "stop-all", Description: "stop all", Scopes: sub(ScreenAutomation)},
		{Keys: []string{"n"}, Action: "add-device", Description: "add device", Scopes: sub(ScreenAutomation)},

		{Keys: []string{"right", "enter", "l"}, Action: "value-next", Description: "change", Scopes: sub(ScreenSettings)},
		{Keys: []string{"left", "h"}, Action: "value-prev", Description: "change back", Scopes: sub(ScreenSettings)},
		{Keys: []string{"L"}, Action: "logout", Description: "logout", Scopes: sub(ScreenSettings)},

		{Keys: []string{"esc"}, Action: "close", Description: "close", Scopes: []string{ScopeCommand, ScopeHelp}},
		{Keys: []string{"enter"}, Action: "select", Description: "run", Scopes: []string{ScopeCommand}},
	}
}

func DefaultKeybindingsByAction(bindings []KeyBinding) map[string][]string {
	out := make(map[string][]string, len(bindings))
	for _, b := range bindings {
		if strings.TrimSpace(b.Action) == "" || len(b.Keys) == 0 {
			continue
		}
		if _, exists := out[b.Action]; exists {
			continue
		}
		out[b.Action] = append([]string(nil), b.Keys...)
	}
	return out
}

// ApplyActionKeybindings replaces the keys of every binding whose action
// appears in actionKeys. Unknown actions are ignored.
func ApplyActionKeybindings(bindings []KeyBinding, actionKeys map[string][]string) []KeyBinding {
	out := make([]KeyBinding, 0, len(bindings))
	for _, b := range bindings {
		next := KeyBinding{
			Keys:        append([]string(nil), b.Keys...),
			Action:      b.Action,
			Description: b.Description,
			Scopes:      append([]string(nil), b.Scopes...),
		}
		if keys, ok := actionKeys[b.Action]; ok && len(keys) > 0 {
			next.Keys = append([]string(nil), keys...)
		}
		out = append(out, next)
	}
	return out
}
