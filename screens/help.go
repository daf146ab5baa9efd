package screens

import (
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/jask/smartfarm/core"
)

// scopeKeyMap adapts registry bindings to the bubbles help.KeyMap contract.
type scopeKeyMap struct {
	bindings []key.Binding
}

func (k scopeKeyMap) ShortHelp() []key.Binding { return k.bindings }

func (k scopeKeyMap) FullHelp() [][]key.Binding {
	const perColumn = 6
	var cols [][]key.Binding
	for i := 0; i < len(k.bindings); i += perColumn {
		cols = append(cols, k.bindings[i:min(i+perColumn, len(k.bindings))])
	}
	return cols
}

type HelpModal struct {
	title string
	keys  scopeKeyMap
	help  help.Model
}

func NewHelpModal(title string, bindings []core.KeyBinding) *HelpModal {
	seen := map[string]bool{}
	km := scopeKeyMap{}
	for _, b := range bindings {
		if len(b.Keys) == 0 || seen[b.Action] {
			continue
		}
		seen[b.Action] = true
		km.bindings = append(km.bindings, core.HelpBinding(b))
	}
	h := help.New()
	h.ShowAll = true
	return &HelpModal{title: title, keys: km, help: h}
}

func (s *HelpModal) Title() string { return "Help" }
func (s *HelpModal) Scope() string { return core.ScopeHelp }

func (s *HelpModal) Update(msg tea.Msg) (core.Modal, tea.Cmd, bool) {
	if km, ok := msg.(tea.KeyMsg); ok {
		switch km.String() {
		case "esc", "?", "q", "enter":
			return s, nil, true
		}
	}
	return s, nil, false
}

func (s *HelpModal) View(width, height int) string {
	s.help.Width = width
	return strings.Join([]string{"Keys: " + s.title, "", s.help.View(s.keys), "", "esc close"}, "\n")
}

// OpenHelpModal lists the bindings active on the current screen.
func OpenHelpModal(m *core.Model, scope string) core.Modal {
	title := strings.TrimPrefix(scope, "screen:")
	if a := m.Active(); a != nil {
		title = a.Title()
	}
	return NewHelpModal(title, m.KeyRegistry().BindingsForScope(scope))
}
