package screens

import (
	"errors"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/list"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/jask/smartfarm/core"
	"github.com/jask/smartfarm/widgets"
)

type CommandOption struct {
	ID       string
	Name     string
	Desc     string
	Disabled bool
	Reason   string
}

func (i CommandOption) Title() string {
	if i.Disabled && i.Reason != "" {
		return fmt.Sprintf("%s (%s)", i.Name, i.Reason)
	}
	return i.Name
}
func (i CommandOption) Description() string { return i.Desc }
func (i CommandOption) FilterValue() string { return i.Name + " " + i.Desc + " " + i.ID }

// CommandModal is the ctrl+k palette. Selecting an enabled entry closes the
// modal and emits the command's execute message.
type CommandModal struct {
	scope    string
	search   func(query string) []CommandOption
	onSelect func(id string) tea.Msg
	input    textinput.Model
	list     list.Model
}

func NewCommandModal(scope string, search func(query string) []CommandOption, onSelect func(id string) tea.Msg) *CommandModal {
	inp := textinput.New()
	inp.Placeholder = "Go to screen"
	inp.Prompt = "cmd> "
	inp.Focus()
	lst := list.New(nil, list.NewDefaultDelegate(), 64, 14)
	lst.SetShowStatusBar(false)
	lst.SetFilteringEnabled(false)
	lst.SetShowHelp(false)
	lst.SetShowTitle(false)
	s := &CommandModal{scope: scope, search: search, onSelect: onSelect, input: inp, list: lst}
	s.refresh()
	return s
}

func (s *CommandModal) Title() string { return "Command Palette" }
func (s *CommandModal) Scope() string { return core.ScopeCommand }

func (s *CommandModal) Update(msg tea.Msg) (core.Modal, tea.Cmd, bool) {
	km, ok := msg.(tea.KeyMsg)
	if !ok {
		var cmd tea.Cmd
		s.input, cmd = s.input.Update(msg)
		return s, cmd, false
	}
	switch km.String() {
	case "esc":
		return s, nil, true
	case "enter":
		return s, s.run(), true
	case "up", "down", "pgup", "pgdown":
		var cmd tea.Cmd
		s.list, cmd = s.list.Update(msg)
		return s, cmd, false
	}
	// Everything else edits the query. The list never sees letters because
	// its own bindings include quit.
	before := s.input.Value()
	var cmd tea.Cmd
	s.input, cmd = s.input.Update(msg)
	if s.input.Value() != before {
		s.refresh()
	}
	return s, cmd, false
}

// run resolves the highlighted entry. Disabled entries report their reason.
func (s *CommandModal) run() tea.Cmd {
	it, ok := s.list.SelectedItem().(CommandOption)
	switch {
	case !ok:
		return nil
	case it.Disabled:
		return core.ErrorCmd(errors.New(it.Reason))
	case s.onSelect == nil:
		return nil
	}
	return func() tea.Msg { return s.onSelect(it.ID) }
}

func (s *CommandModal) refresh() {
	found := s.search(strings.TrimSpace(s.input.Value()))
	items := make([]list.Item, len(found))
	for i, it := range found {
		items[i] = it
	}
	_ = s.list.SetItems(items)
	s.list.ResetSelected()
}

// Options returns the entries currently listed.
func (s *CommandModal) Options() []CommandOption {
	out := make([]CommandOption, 0, len(s.list.Items()))
	for _, it := range s.list.Items() {
		if opt, ok := it.(CommandOption); ok {
			out = append(out, opt)
		}
	}
	return out
}

func (s *CommandModal) View(width, height int) string {
	s.list.SetWidth(width)
	s.list.SetHeight(max(6, height-4))
	head := fmt.Sprintf("%s  %s", widgets.Strong(s.Title()), widgets.Muted(fmt.Sprintf("from %s, %d found", strings.TrimPrefix(s.scope, "screen:"), len(s.list.Items()))))
	return head + "\n" + s.input.View() + "\n" + s.list.View()
}

// OpenCommandModal builds the palette over the model's command registry.
func OpenCommandModal(m *core.Model, scope string) core.Modal {
	search := func(q string) []CommandOption {
		res := m.CommandRegistry().Search(q, scope, m)
		out := make([]CommandOption, 0, len(res))
		for _, r := range res {
			out = append(out, CommandOption{ID: r.CommandID, Name: r.Name, Desc: r.Desc, Disabled: r.Disabled, Reason: r.Reason})
		}
		return out
	}
	return NewCommandModal(scope, search, func(id string) tea.Msg { return core.CommandExecuteMsg{CommandID: id} })
}
