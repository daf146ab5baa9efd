package core

import "strings"

// Route pairs a screen with its payload so that sensorDetails cannot exist
// without a sensor id.
type Route struct {
	screen   ScreenID
	sensorID string
}

// RouteTo builds a payload-free route. sensorDetails is refused.
func RouteTo(s ScreenID) (Route, bool) {
	if !s.Valid() || s == ScreenSensorDetails {
		return Route{}, false
	}
	return Route{screen: s}, true
}

func SensorRoute(id string) (Route, bool) {
	id = strings.TrimSpace(id)
	if id == "" {
		return Route{}, false
	}
	return Route{screen: ScreenSensorDetails, sensorID: id}, true
}

func (r Route) Screen() ScreenID { return r.screen }
func (r Route) SensorID() string { return r.sensorID }

type NavState struct {
	Screen        ScreenID
	Authenticated bool
	SensorID      string
}

// Navigator is the single source of truth for the active route and the
// auth flag. Each transition is one assignment, so no caller can observe a
// half-applied compound transition.
type Navigator struct {
	route         Route
	authenticated bool
}

func NewNavigator() Navigator {
	return Navigator{route: Route{screen: ScreenOnboarding}}
}

func (n Navigator) State() NavState {
	return NavState{Screen: n.route.screen, Authenticated: n.authenticated, SensorID: n.route.sensorID}
}

func (n Navigator) Route() Route { return n.route }

func (n *Navigator) Navigate(s ScreenID) (NavState, bool) {
	r, ok := RouteTo(s)
	if !ok {
		return n.State(), false
	}
	*n = Navigator{route: r, authenticated: n.authenticated}
	return n.State(), true
}

func (n *Navigator) Login() NavState {
	*n = Navigator{route: Route{screen: ScreenDashboard}, authenticated: true}
	return n.State()
}

func (n *Navigator) SelectSensor(id string) (NavState, bool) {
	r, ok := SensorRoute(id)
	if !ok {
		return n.State(), false
	}
	*n = Navigator{route: r, authenticated: n.authenticated}
	return n.State(), true
}

func (n *Navigator) Logout() NavState {
	*n = Navigator{route: Route{screen: ScreenLogin}}
	return n.State()
}

// Go applies a prebuilt route, such as one from DeepLink.
func (n *Navigator) Go(r Route) NavState {
	if !r.screen.Valid() {
		r = Route{screen: ScreenDashboard}
	}
	*n = Navigator{route: r, authenticated: n.authenticated}
	return n.State()
}
