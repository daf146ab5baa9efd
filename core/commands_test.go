package core

import (
	"testing"
)

func TestSearchFiltersByScopeAndDisabled(t *testing.T) {
	reg := NewCommandRegistry([]Command{
		{ID: "a", Name: "Alpha", Scopes: []string{"screen:alerts"}},
		{ID: "b", Name: "Beta", Scopes: []string{"screen:settings"}, Disabled: func(m *Model) (bool, string) { return true, "blocked" }},
	})
	m := newTestModel(nil)
	resA := reg.Search("", "screen:alerts", &m)
	if len(resA) != 1 || resA[0].CommandID != "a" {
		t.Fatalf("expected only command a in screen:alerts, got %+v", resA)
	}
	resB := reg.Search("", "screen:settings", &m)
	if len(resB) != 1 || !resB[0].Disabled || resB[0].Reason != "blocked" {
		t.Fatalf("expected disabled command in screen:settings, got %+v", resB)
	}
}

func TestNavigationCommandsExcludeSensorDetails(t *testing.T) {
	for _, c := range NavigationCommands() {
		if c.ID == "goto:sensorDetails" {
			t.Fatalf("sensorDetails must only be reachable through sensor selection")
		}
	}
}

func TestNavigationCommandsGateBeforeLogin(t *testing.T) {
	m := newTestModel(nil)
	res := m.CommandRegistry().Search("go to", ScreenOnboarding.Scope(), &m)
	byID := map[string]CommandResult{}
	for _, r := range res {
		byID[r.CommandID] = r
	}
	if r := byID["goto:dashboard"]; !r.Disabled || r.Reason != "login required" {
		t.Fatalf("dashboard should be gated, got %+v", r)
	}
	if r := byID["goto:login"]; r.Disabled {
		t.Fatalf("login should be reachable, got %+v", r)
	}

	m.Login()
	res = m.CommandRegistry().Search("go to", ScreenDashboard.Scope(), &m)
	for _, r := range res {
		if r.CommandID == "goto:dashboard" {
			if r.Reason != "already here" {
				t.Fatalf("dashboard reason %q", r.Reason)
			}
			continue
		}
		if r.Disabled {
			t.Fatalf("%s disabled after login: %s", r.CommandID, r.Reason)
		}
	}
}

func TestExecuteDisabledCommandReportsError(t *testing.T) {
	m := newTestModel(nil)
	cmd := m.CommandRegistry().Execute("goto:alerts", &m)
	msg, ok := cmd().(StatusMsg)
	if !ok || !msg.IsErr || msg.Text != "login required" {
		t.Fatalf("unexpected %+v", msg)
	}
	if m.State().Screen != ScreenOnboarding {
		t.Fatalf("disabled command navigated to %v", m.State().Screen)
	}
}

func TestSearchRequiresEveryTermAndRanksPrefix(t *testing.T) {
	reg := NewCommandRegistry([]Command{
		{ID: "x", Name: "Open alerts", Description: "go", Scopes: []string{scopeAll}},
		{ID: "y", Name: "Go to alerts", Scopes: []string{scopeAll}},
		{ID: "z", Name: "Go to map", Scopes: []string{scopeAll}},
	})
	m := newTestModel(nil)
	res := reg.Search("go alerts", "screen:dashboard", &m)
	if len(res) != 2 || res[0].CommandID != "y" || res[1].CommandID != "x" {
		t.Fatalf("got %+v", res)
	}
}

func TestRegisterReplacesInPlace(t *testing.T) {
	reg := NewCommandRegistry([]Command{
		{ID: "a", Name: "A", Scopes: []string{scopeAll}},
		{ID: "b", Name: "B", Scopes: []string{scopeAll}},
	})
	reg.Register(Command{ID: "a", Name: "A2", Scopes: []string{scopeAll}})
	m := newTestModel(nil)
	res := reg.Search("", "screen:dashboard", &m)
	if len(res) != 2 || res[0].Name != "A2" {
		t.Fatalf("got %+v", res)
	}
}
