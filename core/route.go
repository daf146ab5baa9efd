package core

import (
	"strings"

	"github.com/agnivade/levenshtein"
)

// ScreenID names one full-viewport screen. The set is closed.
type ScreenID int

const (
	ScreenOnboarding ScreenID = iota
	ScreenLogin
	ScreenDashboard
	ScreenFieldMap
	ScreenSensorDetails
	ScreenAlerts
	ScreenInsights
	ScreenAutomation
	ScreenAnalytics
	ScreenSettings
	screenCount
)

var screenNames = [screenCount]string{
	ScreenOnboarding:    "onboarding",
	ScreenLogin:         "login",
	ScreenDashboard:     "dashboard",
	ScreenFieldMap:      "fieldMap",
	ScreenSensorDetails: "sensorDetails",
	ScreenAlerts:        "alerts",
	ScreenInsights:      "insights",
	ScreenAutomation:    "automation",
	ScreenAnalytics:     "analytics",
	ScreenSettings:      "settings",
}

func AllScreens() []ScreenID {
	out := make([]ScreenID, 0, screenCount)
	for id := ScreenID(0); id < screenCount; id++ {
		out = append(out, id)
	}
	return out
}

func (s ScreenID) Valid() bool { return s >= 0 && s < screenCount }

func (s ScreenID) String() string {
	if !s.Valid() {
		return "unknown"
	}
	return screenNames[s]
}

// Scope is the key-binding scope used while the screen is active.
func (s ScreenID) Scope() string { return "screen:" + s.String() }

// Gated reports whether the screen sits behind login in the command palette.
func (s ScreenID) Gated() bool {
	return s != ScreenOnboarding && s != ScreenLogin
}

// ParseScreenID matches a wire name case-insensitively.
func ParseScreenID(raw string) (ScreenID, bool) {
	raw = strings.TrimSpace(raw)
	for id, name := range screenNames {
		if strings.EqualFold(raw, name) {
			return ScreenID(id), true
		}
	}
	return 0, false
}

// ResolveScreen fails closed: anything unknown lands on the dashboard.
func ResolveScreen(raw string) ScreenID {
	if id, ok := ParseScreenID(raw); ok {
		return id
	}
	return ScreenDashboard
}

// SuggestScreen returns the wire name nearest to raw.
func SuggestScreen(raw string) string {
	raw = strings.ToLower(strings.TrimSpace(raw))
	best, bestDist := "", -1
	for _, name := range screenNames {
		d := levenshtein.ComputeDistance(raw, strings.ToLower(name))
		if bestDist < 0 || d < bestDist {
			best, bestDist = name, d
		}
	}
	return best
}

// DeepLink turns external input into a route. Unknown names, and
// sensorDetails without a sensor id, resolve to the dashboard.
func DeepLink(raw, sensorID string) (Route, bool) {
	id, ok := ParseScreenID(raw)
	if !ok {
		return Route{screen: ScreenDashboard}, false
	}
	if id == ScreenSensorDetails {
		if r, ok := SensorRoute(sensorID); ok {
			return r, true
		}
		return Route{screen: ScreenDashboard}, false
	}
	return Route{screen: id}, true
}
