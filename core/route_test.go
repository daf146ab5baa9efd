package core

import "testing"

func TestScreenNamesRoundTrip(t *testing.T) {
	for _, id := range AllScreens() {
		got, ok := ParseScreenID(id.String())
		if !ok || got != id {
			t.Fatalf("ParseScreenID(%q) = %v, %v", id.String(), got, ok)
		}
	}
	if len(AllScreens()) != 10 {
		t.Fatalf("expected 10 screens, got %d", len(AllScreens()))
	}
}

func TestParseScreenIDIsCaseInsensitive(t *testing.T) {
	got, ok := ParseScreenID("  FIELDMAP ")
	if !ok || got != ScreenFieldMap {
		t.Fatalf("got %v, %v", got, ok)
	}
}

func TestResolveScreenFailsClosed(t *testing.T) {
	for _, raw := range []string{"", "admin", "dashbord", "../settings"} {
		if got := ResolveScreen(raw); got != ScreenDashboard {
			t.Fatalf("ResolveScreen(%q) = %v, want dashboard", raw, got)
		}
	}
	if got := ResolveScreen("alerts"); got != ScreenAlerts {
		t.Fatalf("ResolveScreen(alerts) = %v", got)
	}
}

func TestSuggestScreen(t *testing.T) {
	cases := map[string]string{
		"dashbord":  "dashboard",
		"setings":   "settings",
		"analitics": "analytics",
		"feildmap":  "fieldMap",
	}
	for raw, want := range cases {
		if got := SuggestScreen(raw); got != want {
			t.Fatalf("SuggestScreen(%q) = %q, want %q", raw, got, want)
		}
	}
}

func TestDeepLink(t *testing.T) {
	tests := []struct {
		raw, sensor string
		screen      ScreenID
		sensorID    string
		ok          bool
	}{
		{"alerts", "", ScreenAlerts, "", true},
		{"alerts", "soil", ScreenAlerts, "", true},
		{"sensorDetails", "soil", ScreenSensorDetails, "soil", true},
		{"sensorDetails", "", ScreenDashboard, "", false},
		{"nowhere", "soil", ScreenDashboard, "", false},
	}
	for _, tt := range tests {
		r, ok := DeepLink(tt.raw, tt.sensor)
		if ok != tt.ok || r.Screen() != tt.screen || r.SensorID() != tt.sensorID {
			t.Fatalf("DeepLink(%q, %q) = %v/%q/%v", tt.raw, tt.sensor, r.Screen(), r.SensorID(), ok)
		}
	}
}

func TestInvalidScreenString(t *testing.T) {
	if got := ScreenID(-1).String(); got != "unknown" {
		t.Fatalf("got %q", got)
	}
	if ScreenID(42).Valid() {
		t.Fatalf("42 should be invalid")
	}
}

func TestGatedScreens(t *testing.T) {
	for _, id := range AllScreens() {
		want := id != ScreenOnboarding && id != ScreenLogin
		if id.Gated() != want {
			t.Fatalf("%v gated = %v", id, id.Gated())
		}
	}
}
