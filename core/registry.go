package core

import "fmt"

// ScreenFactory builds a fresh screen instance for a route.
type ScreenFactory func(env Env, route Route) Screen

type Registry struct {
	factories [screenCount]ScreenFactory
}

type Registration struct {
	ID      ScreenID
	Factory ScreenFactory
}

// NewRegistry panics unless every ScreenID has exactly one factory, so a
// screen added to the enum without a handler fails at startup.
func NewRegistry(regs ...Registration) *Registry {
	r := &Registry{}
	for _, reg := range regs {
		if !reg.ID.Valid() {
			panic(fmt.Sprintf("screen registry: invalid screen id %d", int(reg.ID)))
		}
		if reg.Factory == nil {
			panic(fmt.Sprintf("screen registry: nil factory for %s", reg.ID))
		}
		if r.factories[reg.ID] != nil {
			panic(fmt.Sprintf("screen registry: duplicate factory for %s", reg.ID))
		}
		r.factories[reg.ID] = reg.Factory
	}
	for _, id := range AllScreens() {
		if r.factories[id] == nil {
			panic(fmt.Sprintf("screen registry: no factory for %s", id))
		}
	}
	return r
}

// Build instantiates the screen for route. Invalid ids render the dashboard.
func (r *Registry) Build(env Env, route Route) Screen {
	id := route.Screen()
	if !id.Valid() {
		id = ScreenDashboard
		route = Route{screen: ScreenDashboard}
	}
	return r.factories[id](env, route)
}
