package core

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestNavigatorDefaults(t *testing.T) {
	n := NewNavigator()
	want := NavState{Screen: ScreenOnboarding}
	if diff := cmp.Diff(want, n.State()); diff != "" {
		t.Fatalf("initial state mismatch (-want +got):\n%s", diff)
	}
}

func TestNavigateKeepsAuthAndSensorInvariant(t *testing.T) {
	n := NewNavigator()
	n.Login()
	n.SelectSensor("soil")
	got, ok := n.Navigate(ScreenAlerts)
	if !ok {
		t.Fatalf("navigate to alerts refused")
	}
	want := NavState{Screen: ScreenAlerts, Authenticated: true}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("state mismatch (-want +got):\n%s", diff)
	}
}

func TestNavigateRefusesBareSensorDetails(t *testing.T) {
	n := NewNavigator()
	n.Login()
	before := n.State()
	got, ok := n.Navigate(ScreenSensorDetails)
	if ok {
		t.Fatalf("bare sensorDetails navigation should be refused")
	}
	if diff := cmp.Diff(before, got); diff != "" {
		t.Fatalf("refused navigation changed state (-want +got):\n%s", diff)
	}
}

func TestNavigateRefusesInvalidScreen(t *testing.T) {
	n := NewNavigator()
	if _, ok := n.Navigate(ScreenID(99)); ok {
		t.Fatalf("invalid screen id accepted")
	}
	if n.State().Screen != ScreenOnboarding {
		t.Fatalf("state moved to %v", n.State().Screen)
	}
}

func TestLoginIsCompound(t *testing.T) {
	n := NewNavigator()
	n.Navigate(ScreenLogin)
	got := n.Login()
	want := NavState{Screen: ScreenDashboard, Authenticated: true}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("login state mismatch (-want +got):\n%s", diff)
	}
}

func TestSelectSensor(t *testing.T) {
	n := NewNavigator()
	n.Login()
	got, ok := n.SelectSensor("temp")
	if !ok {
		t.Fatalf("select sensor refused")
	}
	want := NavState{Screen: ScreenSensorDetails, Authenticated: true, SensorID: "temp"}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("state mismatch (-want +got):\n%s", diff)
	}
	if _, ok := n.SelectSensor("  "); ok {
		t.Fatalf("blank sensor id accepted")
	}
	if n.State().SensorID != "temp" {
		t.Fatalf("refused selection cleared sensor")
	}
}

func TestLogoutClearsSession(t *testing.T) {
	n := NewNavigator()
	n.Login()
	n.SelectSensor("ph")
	got := n.Logout()
	want := NavState{Screen: ScreenLogin}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("logout state mismatch (-want +got):\n%s", diff)
	}
}

func TestGoAppliesDeepLink(t *testing.T) {
	n := NewNavigator()
	r, ok := DeepLink("sensorDetails", "light")
	if !ok {
		t.Fatalf("deep link rejected")
	}
	got := n.Go(r)
	if got.Screen != ScreenSensorDetails || got.SensorID != "light" {
		t.Fatalf("unexpected state %+v", got)
	}
}

func TestSensorIDOnlyOnSensorDetails(t *testing.T) {
	n := NewNavigator()
	n.Login()
	ops := []func(){
		func() { n.SelectSensor("soil") },
		func() { n.Navigate(ScreenSettings) },
		func() { n.Navigate(ScreenSensorDetails) },
		func() { n.SelectSensor("temp") },
		func() { n.Navigate(ScreenDashboard) },
		func() { n.Logout() },
	}
	for i, op := range ops {
		op()
		s := n.State()
		if (s.Screen == ScreenSensorDetails) != (s.SensorID != "") {
			t.Fatalf("step %d: screen %v with sensor %q", i, s.Screen, s.SensorID)
		}
	}
}
