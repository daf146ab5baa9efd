package screens

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/jask/smartfarm/core"
	"github.com/jask/smartfarm/widgets"
)

type insightsScreen struct {
	env core.Env
}

func newInsights(env core.Env, _ core.Route) core.Screen {
	return &insightsScreen{env: env}
}

func (s *insightsScreen) ID() core.ScreenID                { return core.ScreenInsights }
func (s *insightsScreen) Title() string                    { return s.env.T("insights.title") }
func (s *insightsScreen) Update(core.Nav, tea.Msg) tea.Cmd { return nil }

func (s *insightsScreen) View(width, height int) string {
	in := s.env.Data.Insights
	halfW, _ := widgets.Inner(width/2, height)

	growth := widgets.Pane{
		Title: s.env.T("insights.growth"),
		Content: widgets.Gauge{
			Label:    "Growth stage",
			Value:    fmt.Sprintf("%d%%", in.GrowthStage),
			Fraction: float64(in.GrowthStage) / 100,
			MinLabel: "0",
			MaxLabel: "100",
		}.Render(halfW, 2) + "\n" +
			widgets.Muted(s.env.T("insights.harvest")+": ") + widgets.Strong(in.Harvest) + "\n" +
			wrap(in.GrowthNote, halfW),
		Tone: widgets.ToneSafe,
	}
	yield := widgets.Pane{
		Title:   s.env.T("insights.yield") + " · " + in.YieldTotal,
		Content: widgets.Chart{Data: chartPoints(in.Yield), Tone: widgets.ToneSafe}.Render(halfW, len(in.Yield)),
	}

	risks := make([]string, 0, len(in.PestRisks)+1)
	for _, r := range in.PestRisks {
		tone := widgets.ToneSafe
		if r.Percent >= 30 {
			tone = widgets.ToneWarning
		}
		risks = append(risks, widgets.Badge(fmt.Sprintf("%-16s %-6s %3d%%", r.Name, r.Level, r.Percent), tone))
	}
	risks = append(risks, wrap(widgets.Muted(in.PestTip), halfW))
	pest := widgets.Pane{Title: s.env.T("insights.pest"), Content: strings.Join(risks, "\n"), Tone: widgets.ToneWarning}

	rows := make([][]string, len(in.Irrigation))
	for i, slot := range in.Irrigation {
		rows[i] = []string{slot.Day, slot.Time, slot.Duration, slot.Amount, slot.Status}
	}
	plan := widgets.Table{
		Columns: []widgets.Column{{Title: "Day", Width: 10}, {Title: "Time", Width: 8}, {Title: "Duration", Width: 9}, {Title: "Water", Width: 6}, {Title: "Status", Width: 10}},
		Rows:    rows,
		Cursor:  -1,
	}
	irrigation := widgets.Pane{Title: s.env.T("insights.irrigation"), Content: plan.Render(halfW, len(rows)+2)}

	shares := make([]string, 0, len(in.Resources)+1)
	for _, r := range in.Resources {
		shares = append(shares, widgets.Gauge{Label: r.Name, Value: fmt.Sprintf("%d%%", r.Value), Fraction: float64(r.Value) / 100}.Render(halfW, 2))
	}
	shares = append(shares, wrap(widgets.Muted(in.ResourceNote), halfW))
	resources := widgets.Pane{Title: s.env.T("insights.resources"), Content: strings.Join(shares, "\n")}

	return widgets.HStack{
		Widgets: []widgets.Widget{
			widgets.VStack{Widgets: []widgets.Widget{growth, yield}, Ratios: []float64{1, 1}},
			widgets.VStack{Widgets: []widgets.Widget{pest, irrigation, resources}, Ratios: []float64{1, 1, 1}},
		},
		Gap: 1,
	}.Render(width, height)
}
