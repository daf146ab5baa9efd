package core

import (
	"slices"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
)

type KeyBinding struct {
	Keys        []string
	Action      string
	Description string
	Scopes      []string
}

// KeyRegistry resolves key presses to actions per scope. Scopes are
// "screen:<id>" or "modal:<name>".
type KeyRegistry struct {
	bindings []KeyBinding
}

func NewKeyRegistry(bindings []KeyBinding) *KeyRegistry {
	return &KeyRegistry{bindings: slices.Clone(bindings)}
}

func (r *KeyRegistry) Register(binding KeyBinding) {
	r.bindings = append(r.bindings, binding)
}

func (r *KeyRegistry) BindingsForScope(scope string) []KeyBinding {
	return slices.DeleteFunc(slices.Clone(r.bindings), func(b KeyBinding) bool {
		return !scopeMatch(scope, b.Scopes)
	})
}

func (r *KeyRegistry) IsAction(msg tea.KeyMsg, action, scope string) bool {
	pressed := normalizeKey(msg.String())
	return slices.ContainsFunc(r.bindings, func(b KeyBinding) bool {
		return b.Action == action && scopeMatch(scope, b.Scopes) && b.matches(pressed)
	})
}

func (b KeyBinding) matches(pressed string) bool {
	return slices.ContainsFunc(b.Keys, func(k string) bool { return normalizeKey(k) == pressed })
}

// normalizeKey keeps case for single letters so "s" and "S" can bind
// different actions.
func normalizeKey(k string) string {
	if k == " " {
		return "space"
	}
	k = strings.TrimSpace(k)
	if len([]rune(k)) == 1 {
		return k
	}
	return strings.ToLower(k)
}

// scopeMatch accepts "*" for all scopes and "!scope" to exclude one.
func scopeMatch(scope string, scopes []string) bool {
	if len(scopes) == 0 {
		return true
	}
	if slices.Contains(scopes, "!"+scope) {
		return false
	}
	return slices.ContainsFunc(scopes, func(s string) bool { return s == scopeAll || s == scope })
}
