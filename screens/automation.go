package screens

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"go.uber.org/zap"

	"github.com/jask/smartfarm/core"
	"github.com/jask/smartfarm/widgets"
)

type automationScreen struct {
	env     core.Env
	devices *core.DeviceList
	cursor  int
}

func newAutomation(env core.Env, _ core.Route) core.Screen {
	return &automationScreen{env: env, devices: core.NewDeviceList(env.Data.CloneDevices())}
}

func (s *automationScreen) ID() core.ScreenID { return core.ScreenAutomation }
func (s *automationScreen) Title() string     { return s.env.T("automation.title") }

func (s *automationScreen) Update(nav core.Nav, msg tea.Msg) tea.Cmd {
	km, ok := msg.(tea.KeyMsg)
	if !ok {
		return nil
	}
	const id = core.ScreenAutomation
	switch {
	case s.env.Is(km, "nav-up", id):
		s.cursor = clampCursor(s.cursor-1, s.devices.Len())
	case s.env.Is(km, "nav-down", id):
		s.cursor = clampCursor(s.cursor+1, s.devices.Len())
	case s.env.Is(km, "toggle-power", id):
		s.toggle("power", s.devices.ToggleOn)
	case s.env.Is(km, "toggle-auto", id):
		s.toggle("auto", s.devices.ToggleAuto)
	case s.env.Is(km, "start-all", id):
		s.setAll(nav, true)
	case s.env.Is(km, "stop-all", id):
		s.setAll(nav, false)
	case s.env.Is(km, "add-device", id):
		if add := s.env.Hooks.Devices; add != nil {
			if err := add.AddDevice(); err != nil {
				nav.SetError(fmt.Errorf("add device: %w", err))
				return nil
			}
		}
		nav.SetStatus(s.env.T("automation.addDevice") + ": requested")
	}
	return nil
}

func (s *automationScreen) toggle(field string, flip func(id string) (bool, bool)) {
	if s.devices.Len() == 0 {
		return
	}
	d := s.devices.At(s.cursor)
	value, ok := flip(d.ID)
	if !ok {
		return
	}
	s.env.Metrics.DeviceToggled(d.ID, field)
	s.env.Log().Info("device toggled", zap.String("device", d.ID), zap.String("field", field), zap.Bool("value", value))
}

func (s *automationScreen) setAll(nav core.Nav, on bool) {
	changed := s.devices.SetAllOn(on)
	s.env.Metrics.DeviceToggled("all", "power")
	s.env.Log().Info("all devices switched", zap.Bool("on", on), zap.Int("changed", changed))
	label := s.env.T("automation.stopAll")
	if on {
		label = s.env.T("automation.startAll")
	}
	nav.SetStatus(fmt.Sprintf("%s: %d changed", label, changed))
}

func onOff(v bool) string {
	if v {
		return "ON"
	}
	return "off"
}

func (s *automationScreen) View(width, height int) string {
	sum := s.devices.Summary()
	summary := widgets.HStack{
		Widgets: []widgets.Widget{
			widgets.Pane{Title: s.env.T("automation.active"), Content: widgets.Strong(fmt.Sprint(sum.Active)), Tone: widgets.ToneSafe},
			widgets.Pane{Title: s.env.T("automation.auto"), Content: widgets.Strong(fmt.Sprint(sum.Auto)), Tone: widgets.ToneInfo},
			widgets.Pane{Title: s.env.T("automation.total"), Content: widgets.Strong(fmt.Sprint(sum.Total))},
		},
		Gap: 1,
	}
	rows := make([][]string, s.devices.Len())
	for i := range rows {
		d := s.devices.At(i)
		rows[i] = []string{d.Name, onOff(d.IsOn), onOff(d.AutoMode), d.Schedule, d.Status}
	}
	innerW, innerH := widgets.Inner(width, height)
	table := widgets.Table{
		Columns: []widgets.Column{
			{Title: "Device", Width: 20},
			{Title: "Power", Width: 6},
			{Title: "Auto", Width: 5},
			{Title: "Schedule", Width: 24},
			{Title: "Status", Width: 24},
		},
		Rows:   rows,
		Cursor: s.cursor,
	}
	actions := widgets.Muted("S " + s.env.T("automation.startAll") + "  ·  X " + s.env.T("automation.stopAll") + "  ·  n " + s.env.T("automation.addDevice"))
	return widgets.VStack{
		Widgets: []widgets.Widget{
			summary,
			widgets.Pane{Title: s.env.T("automation.devices"), Content: table.Render(innerW, max(3, min(innerH, len(rows)+2)))},
			widgets.Text(widgets.Strong(s.env.T("automation.quickActions")) + "  " + actions),
		},
		Ratios: []float64{3, float64(len(rows) + 4), 1},
	}.Render(width, height)
}
