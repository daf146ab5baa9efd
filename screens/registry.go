package screens

import "github.com/jask/smartfarm/core"

// Registrations pairs every screen id with its factory.
func Registrations() []core.Registration {
	return []core.Registration{
		{ID: core.ScreenOnboarding, Factory: newOnboarding},
		{ID: core.ScreenLogin, Factory: newLogin},
		{ID: core.ScreenDashboard, Factory: newDashboard},
		{ID: core.ScreenFieldMap, Factory: newFieldMap},
		{ID: core.ScreenSensorDetails, Factory: newSensorDetails},
		{ID: core.ScreenAlerts, Factory: newAlerts},
		{ID: core.ScreenInsights, Factory: newInsights},
		{ID: core.ScreenAutomation, Factory: newAutomation},
		{ID: core.ScreenAnalytics, Factory: newAnalytics},
		{ID: core.ScreenSettings, Factory: newSettings},
	}
}

func NewRegistry() *core.Registry {
	return core.NewRegistry(Registrations()...)
}

// NewModel wires the production registry, commands and modals.
func NewModel(env core.Env, keys *core.KeyRegistry) core.Model {
	m := core.NewModel(NewRegistry(), keys, core.NewCommandRegistry(core.NavigationCommands()), env)
	m.OpenCommandModal = OpenCommandModal
	m.OpenHelpModal = OpenHelpModal
	return m
}
