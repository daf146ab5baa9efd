package core

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
)

func TestKeyRegistryScopeMatch(t *testing.T) {
	reg := NewKeyRegistry([]KeyBinding{
		{Keys: []string{"ctrl+k"}, Action: "palette", Scopes: []string{"screen:alerts"}},
		{Keys: []string{"q"}, Action: "quit", Scopes: []string{"*", "!screen:login"}},
	})
	if !reg.IsAction(tea.KeyMsg{Type: tea.KeyCtrlK}, "palette", "screen:alerts") {
		t.Fatalf("expected ctrl+k in screen:alerts")
	}
	if reg.IsAction(tea.KeyMsg{Type: tea.KeyCtrlK}, "palette", "screen:settings") {
		t.Fatalf("did not expect ctrl+k in screen:settings")
	}
	if !reg.IsAction(runes("q"), "quit", "screen:settings") {
		t.Fatalf("expected q to match wildcard scope")
	}
	if reg.IsAction(runes("q"), "quit", "screen:login") {
		t.Fatalf("q must not quit while typing on login")
	}
}

func TestKeysAreCaseSensitiveForLetters(t *testing.T) {
	reg := NewKeyRegistry(DefaultKeyBindings())
	scope := ScreenAutomation.Scope()
	if !reg.IsAction(runes("S"), "start-all", scope) {
		t.Fatalf("S should start all")
	}
	if reg.IsAction(runes("s"), "start-all", scope) {
		t.Fatalf("s should not start all")
	}
	if !reg.IsAction(tea.KeyMsg{Type: tea.KeySpace, Runes: []rune{' '}}, "toggle-power", scope) {
		t.Fatalf("space should toggle power")
	}
}

func TestApplyActionKeybindingsOverridesKeys(t *testing.T) {
	base := DefaultKeyBindings()
	out := ApplyActionKeybindings(base, map[string][]string{"threshold-save": {"ctrl+s"}})
	reg := NewKeyRegistry(out)
	scope := ScreenSensorDetails.Scope()
	if !reg.IsAction(tea.KeyMsg{Type: tea.KeyCtrlS}, "threshold-save", scope) {
		t.Fatalf("override not applied")
	}
	if reg.IsAction(runes("w"), "threshold-save", scope) {
		t.Fatalf("old key still bound")
	}
	if base[0].Keys[0] != "q" {
		t.Fatalf("input mutated")
	}
}

func TestDefaultKeybindingsByActionKeepsFirst(t *testing.T) {
	got := DefaultKeybindingsByAction(DefaultKeyBindings())
	if keys := got["nav-up"]; len(keys) == 0 || keys[0] != "shift+tab" {
		t.Fatalf("nav-up keys %v", keys)
	}
}
