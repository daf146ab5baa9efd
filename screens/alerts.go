package screens

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/jask/smartfarm/core"
	"github.com/jask/smartfarm/internal/farmdata"
	"github.com/jask/smartfarm/widgets"
)

// severityAll is the filter value that keeps every alert.
const severityAll farmdata.Severity = ""

type alertsScreen struct {
	env    core.Env
	filter *core.Choice[farmdata.Severity]
	cursor int
}

func newAlerts(env core.Env, _ core.Route) core.Screen {
	return &alertsScreen{
		env:    env,
		filter: core.NewChoice(severityAll, farmdata.SeverityCritical, farmdata.SeverityWarning),
	}
}

func (s *alertsScreen) ID() core.ScreenID { return core.ScreenAlerts }
func (s *alertsScreen) Title() string     { return s.env.T("alerts.title") }

func (s *alertsScreen) visible() []farmdata.Alert {
	return farmdata.FilterAlerts(s.env.Data.Alerts, s.filter.Current())
}

func (s *alertsScreen) Update(_ core.Nav, msg tea.Msg) tea.Cmd {
	km, ok := msg.(tea.KeyMsg)
	if !ok {
		return nil
	}
	const id = core.ScreenAlerts
	switch {
	case s.env.Is(km, "filter-next", id):
		s.filter.Next()
		s.cursor = 0
	case s.env.Is(km, "nav-up", id):
		s.cursor = clampCursor(s.cursor-1, len(s.visible()))
	case s.env.Is(km, "nav-down", id):
		s.cursor = clampCursor(s.cursor+1, len(s.visible()))
	}
	return nil
}

func (s *alertsScreen) severityLabel(sev farmdata.Severity) string {
	if sev == severityAll {
		return s.env.T("alerts.all")
	}
	return s.env.T("alerts." + string(sev))
}

func (s *alertsScreen) View(width, height int) string {
	counts := farmdata.AlertSummary(s.env.Data.Alerts)
	summary := widgets.HStack{
		Widgets: []widgets.Widget{
			widgets.Pane{Title: s.env.T("alerts.critical"), Content: widgets.Strong(fmt.Sprint(counts.Critical)), Tone: widgets.ToneDanger},
			widgets.Pane{Title: s.env.T("alerts.warning"), Content: widgets.Strong(fmt.Sprint(counts.Warning)), Tone: widgets.ToneWarning},
			widgets.Pane{Title: s.env.T("alerts.safe"), Content: widgets.Strong(fmt.Sprint(counts.Safe)), Tone: widgets.ToneSafe},
		},
		Gap: 1,
	}
	alerts := s.visible()
	innerW, _ := widgets.Inner(width, height)
	var body string
	if len(alerts) == 0 {
		body = widgets.Muted(s.env.T("alerts.empty"))
	} else {
		lines := make([]string, 0, len(alerts)*2)
		for i, a := range alerts {
			head := widgets.Badge(a.Title, severityTone(a.Severity)) + "  " + widgets.Muted(a.Timestamp)
			if i != s.cursor {
				lines = append(lines, "  "+head)
				continue
			}
			lines = append(lines,
				"▶ "+head,
				"    "+wrap(a.Message, innerW-4),
				"    "+widgets.Muted(s.env.T("alerts.recommendation")+": ")+a.Recommendation,
			)
		}
		body = strings.Join(lines, "\n")
	}
	return widgets.VStack{
		Widgets: []widgets.Widget{
			summary,
			widgets.Text(tabs(s.filter, s.severityLabel)),
			widgets.Pane{Title: fmt.Sprintf("%s (%d)", s.severityLabel(s.filter.Current()), len(alerts)), Content: body},
		},
		Ratios: []float64{3, 1, 12},
	}.Render(width, height)
}
