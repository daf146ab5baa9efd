package core

import (
	tea "github.com/charmbracelet/bubbletea"
)

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		return m, nil
	case StatusMsg:
		m.status = msg.Text
		m.statusErr = msg.IsErr
		return m, nil
	case PushModalMsg:
		m.modals.Push(msg.Modal)
		return m, nil
	case PopModalMsg:
		m.modals.Pop()
		return m, nil
	case CommandExecuteMsg:
		cmd := m.commands.Execute(msg.CommandID, &m)
		return m, tea.Batch(cmd, m.takeMountCmd())
	case NavigateMsg:
		m.Navigate(msg.Screen)
		return m, m.takeMountCmd()
	case SelectSensorMsg:
		m.SelectSensor(msg.SensorID)
		return m, m.takeMountCmd()
	case tea.KeyMsg:
		if msg.String() == "ctrl+c" {
			m.quitting = true
			return m, tea.Quit
		}

		if top := m.modals.Top(); top != nil {
			return m, m.updateModal(top, msg)
		}

		scope := m.ActiveScope()
		if m.keys.IsAction(msg, "quit", scope) {
			m.quitting = true
			return m, tea.Quit
		}
		if m.keys.IsAction(msg, "open-command-palette", scope) && m.OpenCommandModal != nil {
			m.modals.Push(m.OpenCommandModal(&m, scope))
			return m, nil
		}
		if m.keys.IsAction(msg, "help", scope) && m.OpenHelpModal != nil {
			m.modals.Push(m.OpenHelpModal(&m, scope))
			return m, nil
		}
		if m.keys.IsAction(msg, "back", scope) {
			m.Navigate(ScreenDashboard)
			return m, m.takeMountCmd()
		}
		return m, m.updateScreen(msg)
	}

	if top := m.modals.Top(); top != nil {
		return m, m.updateModal(top, msg)
	}
	return m, m.updateScreen(msg)
}

func (m *Model) updateModal(top Modal, msg tea.Msg) tea.Cmd {
	next, cmd, pop := top.Update(msg)
	if pop {
		m.modals.Pop()
		return cmd
	}
	if next != nil {
		m.modals.Replace(next)
	}
	return cmd
}

// updateScreen forwards msg to the live screen. A transition made inside
// the handler mounts a new screen whose start command is batched in.
func (m *Model) updateScreen(msg tea.Msg) tea.Cmd {
	if m.active == nil {
		return nil
	}
	cmd := m.active.Update(m, msg)
	return tea.Batch(cmd, m.takeMountCmd())
}
