package core

import tea "github.com/charmbracelet/bubbletea"

type StatusMsg struct {
	Text  string
	IsErr bool
}

type PushModalMsg struct {
	Modal Modal
}

type PopModalMsg struct{}

type CommandExecuteMsg struct {
	CommandID string
}

type NavigateMsg struct {
	Screen ScreenID
}

type SelectSensorMsg struct {
	SensorID string
}

func StatusCmd(text string) tea.Cmd {
	return func() tea.Msg { return StatusMsg{Text: text} }
}

func ErrorCmd(err error) tea.Cmd {
	return func() tea.Msg {
		if err == nil {
			return StatusMsg{Text: "", IsErr: false}
		}
		return StatusMsg{Text: err.Error(), IsErr: true}
	}
}
