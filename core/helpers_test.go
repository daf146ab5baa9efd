package core

import (
	tea "github.com/charmbracelet/bubbletea"
)

type stubScreen struct {
	id     ScreenID
	sensor string
	keys   []string
	onKey  func(nav Nav, msg tea.KeyMsg)
}

func (s *stubScreen) ID() ScreenID         { return s.id }
func (s *stubScreen) Title() string        { return s.id.String() }
func (s *stubScreen) View(int, int) string { return "view:" + s.id.String() }
func (s *stubScreen) Update(nav Nav, msg tea.Msg) tea.Cmd {
	if km, ok := msg.(tea.KeyMsg); ok {
		s.keys = append(s.keys, km.String())
		if s.onKey != nil {
			s.onKey(nav, km)
		}
	}
	return nil
}

func stubRegistry(built *[]Route) *Registry {
	regs := make([]Registration, 0, len(AllScreens()))
	for _, id := range AllScreens() {
		regs = append(regs, Registration{ID: id, Factory: func(_ Env, r Route) Screen {
			if built != nil {
				*built = append(*built, r)
			}
			return &stubScreen{id: r.Screen(), sensor: r.SensorID()}
		}})
	}
	return NewRegistry(regs...)
}

func newTestModel(built *[]Route) Model {
	return NewModel(stubRegistry(built), NewKeyRegistry(DefaultKeyBindings()), NewCommandRegistry(NavigationCommands()), Env{})
}

func runes(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}
