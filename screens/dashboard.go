package screens

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/jask/smartfarm/core"
	"github.com/jask/smartfarm/internal/farmdata"
	"github.com/jask/smartfarm/widgets"
)

const sensorGridCols = 2

type quickAction struct {
	action string
	key    string
	label  string
	target core.ScreenID
}

var dashboardActions = []quickAction{
	{"goto-fieldMap", "m", "dashboard.farmMap", core.ScreenFieldMap},
	{"goto-automation", "c", "dashboard.control", core.ScreenAutomation},
	{"goto-insights", "i", "dashboard.insights", core.ScreenInsights},
	{"goto-alerts", "a", "dashboard.alerts", core.ScreenAlerts},
	{"goto-analytics", "r", "dashboard.analytics", core.ScreenAnalytics},
	{"goto-settings", "s", "dashboard.settings", core.ScreenSettings},
}

type dashboardScreen struct {
	env     core.Env
	sensors []farmdata.SensorReading
	cursor  int
}

func newDashboard(env core.Env, _ core.Route) core.Screen {
	return &dashboardScreen{env: env, sensors: env.Data.Sensors}
}

func (s *dashboardScreen) ID() core.ScreenID { return core.ScreenDashboard }
func (s *dashboardScreen) Title() string     { return s.env.T("dashboard.title") }

func (s *dashboardScreen) Update(nav core.Nav, msg tea.Msg) tea.Cmd {
	km, ok := msg.(tea.KeyMsg)
	if !ok {
		return nil
	}
	const id = core.ScreenDashboard
	switch {
	case s.env.Is(km, "nav-left", id):
		s.cursor = clampCursor(s.cursor-1, len(s.sensors))
	case s.env.Is(km, "nav-right", id):
		s.cursor = clampCursor(s.cursor+1, len(s.sensors))
	case s.env.Is(km, "nav-up", id):
		s.cursor = clampCursor(s.cursor-sensorGridCols, len(s.sensors))
	case s.env.Is(km, "nav-down", id):
		s.cursor = clampCursor(s.cursor+sensorGridCols, len(s.sensors))
	case s.env.Is(km, "select", id):
		if len(s.sensors) > 0 {
			nav.SelectSensor(s.sensors[s.cursor].ID)
		}
	default:
		for _, a := range dashboardActions {
			if s.env.Is(km, a.action, id) {
				nav.Navigate(a.target)
				break
			}
		}
	}
	return nil
}

func (s *dashboardScreen) View(width, height int) string {
	d := s.env.Data
	top := widgets.HStack{
		Widgets: []widgets.Widget{
			widgets.Box{
				Title:   s.env.T("dashboard.currentField"),
				Content: widgets.Strong(d.Field.Name) + "\n" + widgets.Muted(fmt.Sprintf("%.1f acres", d.Field.Acres)),
			},
			widgets.Box{
				Title:   s.env.T("dashboard.todayWeather"),
				Content: widgets.Strong(d.Weather.Temperature) + " " + s.env.T("dashboard.partlyCloudy") + "\n" + widgets.Muted("wind "+d.Weather.Wind),
			},
		},
		Gap: 2,
	}
	innerW, _ := widgets.Inner(width, height)
	banner := widgets.Pane{
		Title:   s.env.T("dashboard.aiRecommendation"),
		Content: wrap(s.env.T("dashboard.aiMessage"), innerW),
		Tone:    widgets.ToneWarning,
	}

	rows := make([]widgets.Widget, 0, (len(s.sensors)+1)/sensorGridCols)
	for i := 0; i < len(s.sensors); i += sensorGridCols {
		cells := make([]widgets.Widget, 0, sensorGridCols)
		for j := i; j < i+sensorGridCols; j++ {
			if j >= len(s.sensors) {
				cells = append(cells, widgets.Text(""))
				continue
			}
			cells = append(cells, s.sensorCard(j))
		}
		rows = append(rows, widgets.HStack{Widgets: cells, Gap: 1})
	}
	grid := widgets.VStack{Widgets: rows}

	actions := make([]string, 0, len(dashboardActions))
	for _, a := range dashboardActions {
		actions = append(actions, a.key+" "+s.env.T(a.label))
	}
	return widgets.VStack{
		Widgets: []widgets.Widget{
			top,
			banner,
			widgets.Text(widgets.Strong(s.env.T("dashboard.liveSensorData"))),
			grid,
			widgets.Text(widgets.Strong(s.env.T("dashboard.quickActions")) + "  " + widgets.Muted(strings.Join(actions, "  ·  "))),
		},
		Ratios: []float64{2, 4, 1, 4 * float64(len(rows)), 1},
	}.Render(width, height)
}

func (s *dashboardScreen) sensorCard(i int) widgets.Pane {
	r := s.sensors[i]
	content := widgets.Strong(r.Value) + "  " + widgets.Muted(r.Trend) + "\n" +
		widgets.Badge(s.env.T("status."+string(r.Status)), statusTone(r.Status)) + "  " + widgets.Muted(r.Range)
	return widgets.Pane{
		Title:    s.env.T(r.LabelKey),
		Content:  content,
		Tone:     statusTone(r.Status),
		Selected: i == s.cursor,
	}
}
