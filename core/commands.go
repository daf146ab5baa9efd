package core

import (
	"errors"
	"slices"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
)

type Command struct {
	ID          string
	Name        string
	Description string
	Scopes      []string
	Execute     func(m *Model) tea.Cmd
	// Disabled reports whether the command is unavailable and why.
	Disabled func(m *Model) (bool, string)
}

type CommandResult struct {
	CommandID string
	Name      string
	Desc      string
	Disabled  bool
	Reason    string
}

// CommandRegistry keeps commands in registration order. Re-registering an
// id replaces the earlier entry in place.
type CommandRegistry struct {
	order []string
	byID  map[string]Command
}

func NewCommandRegistry(cmds []Command) *CommandRegistry {
	reg := &CommandRegistry{byID: make(map[string]Command, len(cmds))}
	for _, c := range cmds {
		reg.Register(c)
	}
	return reg
}

func (r *CommandRegistry) Register(c Command) {
	if c.ID == "" {
		return
	}
	if _, ok := r.byID[c.ID]; !ok {
		r.order = append(r.order, c.ID)
	}
	r.byID[c.ID] = c
}

// Search returns the commands visible in scope whose text contains every
// word of query. Enabled commands sort first, then name-prefix matches.
func (r *CommandRegistry) Search(query, scope string, m *Model) []CommandResult {
	terms := strings.Fields(strings.ToLower(query))
	type ranked struct {
		CommandResult
		prefix bool
		pos    int
	}
	var hits []ranked
	for pos, id := range r.order {
		c := r.byID[id]
		if !scopeMatch(scope, c.Scopes) || !containsAll(c, terms) {
			continue
		}
		res := CommandResult{CommandID: c.ID, Name: c.Name, Desc: c.Description}
		if c.Disabled != nil {
			res.Disabled, res.Reason = c.Disabled(m)
		}
		prefix := len(terms) > 0 && strings.HasPrefix(strings.ToLower(c.Name), terms[0])
		hits = append(hits, ranked{CommandResult: res, prefix: prefix, pos: pos})
	}
	slices.SortStableFunc(hits, func(a, b ranked) int {
		switch {
		case a.Disabled != b.Disabled:
			return boolOrder(!a.Disabled, !b.Disabled)
		case a.prefix != b.prefix:
			return boolOrder(a.prefix, b.prefix)
		}
		return a.pos - b.pos
	})
	out := make([]CommandResult, len(hits))
	for i, h := range hits {
		out[i] = h.CommandResult
	}
	return out
}

func containsAll(c Command, terms []string) bool {
	hay := strings.ToLower(c.Name + " " + c.Description + " " + c.ID)
	for _, t := range terms {
		if !strings.Contains(hay, t) {
			return false
		}
	}
	return true
}

// boolOrder sorts true before false.
func boolOrder(a, b bool) int {
	if a == b {
		return 0
	}
	if a {
		return -1
	}
	return 1
}

// Execute runs the command unless it is disabled, in which case the reason
// comes back as an error status.
func (r *CommandRegistry) Execute(id string, m *Model) tea.Cmd {
	c, ok := r.byID[id]
	if !ok {
		return StatusCmd("Unknown command: " + id)
	}
	if c.Disabled != nil {
		if off, reason := c.Disabled(m); off {
			if reason == "" {
				reason = "command is disabled"
			}
			return ErrorCmd(errors.New(reason))
		}
	}
	if c.Execute == nil {
		return nil
	}
	return c.Execute(m)
}

// NavigationCommands builds one "goto:" command per directly reachable
// screen plus logout. Gated screens stay disabled until login.
func NavigationCommands() []Command {
	cmds := make([]Command, 0, int(screenCount)+1)
	for _, id := range AllScreens() {
		if id == ScreenSensorDetails {
			continue
		}
		cmds = append(cmds, gotoCommand(id))
	}
	return append(cmds, Command{
		ID:          "logout",
		Name:        "Logout",
		Description: "sign out and return to login",
		Scopes:      []string{scopeAll},
		Execute: func(m *Model) tea.Cmd {
			m.Logout()
			return nil
		},
		Disabled: func(m *Model) (bool, string) {
			if !m.State().Authenticated {
				return true, "not signed in"
			}
			return false, ""
		},
	})
}

func gotoCommand(id ScreenID) Command {
	return Command{
		ID:          "goto:" + id.String(),
		Name:        "Go to " + id.String(),
		Description: "switch screen",
		Scopes:      []string{scopeAll},
		Execute: func(m *Model) tea.Cmd {
			m.Navigate(id)
			return nil
		},
		Disabled: func(m *Model) (bool, string) {
			switch st := m.State(); {
			case id.Gated() && !st.Authenticated:
				return true, "login required"
			case st.Screen == id:
				return true, "already here"
			}
			return false, ""
		},
	}
}
