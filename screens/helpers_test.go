package screens

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"go.uber.org/zap"

	"github.com/jask/smartfarm/core"
	"github.com/jask/smartfarm/internal/farmdata"
	"github.com/jask/smartfarm/internal/i18n"
)

func testEnv(t *testing.T) core.Env {
	t.Helper()
	data, err := farmdata.Load()
	if err != nil {
		t.Fatalf("load farm data: %v", err)
	}
	tr, err := i18n.NewProvider()
	if err != nil {
		t.Fatalf("load catalogs: %v", err)
	}
	return core.Env{I18n: tr, Data: data, Hooks: core.StubHooks(nil), Logger: zap.NewNop()}
}

func newApp(t *testing.T) core.Model {
	t.Helper()
	return NewModel(testEnv(t), core.NewKeyRegistry(core.DefaultKeyBindings()))
}

func loggedIn(t *testing.T) core.Model {
	t.Helper()
	m := newApp(t)
	m.Login()
	return m
}

var namedKeys = map[string]tea.KeyType{
	"enter":  tea.KeyEnter,
	"esc":    tea.KeyEsc,
	"tab":    tea.KeyTab,
	"space":  tea.KeySpace,
	"up":     tea.KeyUp,
	"down":   tea.KeyDown,
	"left":   tea.KeyLeft,
	"right":  tea.KeyRight,
	"ctrl+k": tea.KeyCtrlK,
	"ctrl+b": tea.KeyCtrlB,
	"ctrl+t": tea.KeyCtrlT,
}

func keyMsg(k string) tea.KeyMsg {
	if t, ok := namedKeys[k]; ok {
		if t == tea.KeySpace {
			return tea.KeyMsg{Type: t, Runes: []rune{' '}}
		}
		return tea.KeyMsg{Type: t}
	}
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(k)}
}

// press feeds keys one by one and drops the returned commands.
func press(m core.Model, keys ...string) core.Model {
	for _, k := range keys {
		next, _ := m.Update(keyMsg(k))
		m = next.(core.Model)
	}
	return m
}

func typeText(m core.Model, text string) core.Model {
	for _, r := range text {
		next, _ := m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}})
		m = next.(core.Model)
	}
	return m
}
