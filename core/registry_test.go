package core

import (
	"strings"
	"testing"
)

func expectPanic(t *testing.T, contains string, fn func()) {
	t.Helper()
	defer func() {
		r := recover()
		if r == nil {
			t.Fatalf("expected panic containing %q", contains)
		}
		if msg, _ := r.(string); !strings.Contains(msg, contains) {
			t.Fatalf("panic %v does not mention %q", r, contains)
		}
	}()
	fn()
}

func TestRegistryBuildsEveryScreen(t *testing.T) {
	reg := stubRegistry(nil)
	for _, id := range AllScreens() {
		r := Route{screen: id}
		if id == ScreenSensorDetails {
			r, _ = SensorRoute("soil")
		}
		if got := reg.Build(Env{}, r).ID(); got != id {
			t.Fatalf("Build(%v) returned %v", id, got)
		}
	}
}

func TestRegistryInvalidRouteBuildsDashboard(t *testing.T) {
	reg := stubRegistry(nil)
	if got := reg.Build(Env{}, Route{screen: ScreenID(77)}).ID(); got != ScreenDashboard {
		t.Fatalf("got %v", got)
	}
}

func TestRegistryPanicsOnMissingFactory(t *testing.T) {
	regs := make([]Registration, 0)
	for _, id := range AllScreens() {
		if id == ScreenAnalytics {
			continue
		}
		regs = append(regs, Registration{ID: id, Factory: func(Env, Route) Screen { return &stubScreen{id: id} }})
	}
	expectPanic(t, "no factory for analytics", func() { NewRegistry(regs...) })
}

func TestRegistryPanicsOnDuplicate(t *testing.T) {
	f := func(Env, Route) Screen { return &stubScreen{} }
	expectPanic(t, "duplicate factory for login", func() {
		NewRegistry(Registration{ID: ScreenLogin, Factory: f}, Registration{ID: ScreenLogin, Factory: f})
	})
}

func TestRegistryPanicsOnNilFactory(t *testing.T) {
	expectPanic(t, "nil factory", func() { NewRegistry(Registration{ID: ScreenLogin}) })
}
