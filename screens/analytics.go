package screens

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/jask/smartfarm/core"
	"github.com/jask/smartfarm/internal/farmdata"
	"github.com/jask/smartfarm/widgets"
)

var analyticsRanges = []string{"week", "month", "year"}

var heatmapRows = []string{"R1", "R2", "R3", "R4", "R5", "R6"}

type analyticsScreen struct {
	env       core.Env
	timeRange *core.Choice[string]
}

func newAnalytics(env core.Env, _ core.Route) core.Screen {
	return &analyticsScreen{env: env, timeRange: core.NewChoice(analyticsRanges...)}
}

func (s *analyticsScreen) ID() core.ScreenID { return core.ScreenAnalytics }
func (s *analyticsScreen) Title() string     { return s.env.T("analytics.title") }

func (s *analyticsScreen) Update(_ core.Nav, msg tea.Msg) tea.Cmd {
	if km, ok := msg.(tea.KeyMsg); ok && s.env.Is(km, "range-next", core.ScreenAnalytics) {
		s.timeRange.Next()
	}
	return nil
}

func (s *analyticsScreen) View(width, height int) string {
	a := s.env.Data.Analytics
	r := s.timeRange.Current()
	halfW, _ := widgets.Inner(width/2, height)

	series := a.Moisture[r]
	lines := make([]string, 0, len(series))
	for _, fs := range series {
		values := make([]float64, len(fs.Points))
		for i, p := range fs.Points {
			values[i] = p.Value
		}
		last := ""
		if n := len(values); n > 0 {
			last = fmt.Sprintf(" %d%%", int(values[n-1]))
		}
		lines = append(lines, widgets.Sparkline{Label: fmt.Sprintf("%-14s", fs.Field), Values: values}.Render(halfW-6, 1)+last)
	}
	moisture := widgets.Pane{Title: s.env.T("analytics.moisture"), Content: strings.Join(lines, "\n"), Tone: widgets.ToneInfo}
	temperature := widgets.Pane{
		Title:   s.env.T("analytics.temperature"),
		Content: widgets.Chart{Data: chartPoints(a.Temperature[r]), Unit: "°C", Tone: widgets.ToneWarning}.Render(halfW, len(a.Temperature[r])),
	}
	legend := make([]string, 0, 4)
	for _, b := range []farmdata.MoistureBand{farmdata.BandOptimal, farmdata.BandGood, farmdata.BandMedium, farmdata.BandLow} {
		legend = append(legend, widgets.Badge(s.env.T("band."+string(b)), bandTone(b)))
	}
	heat := widgets.Heatmap{
		Cells:     a.Heatmap,
		RowLabels: heatmapRows,
		Tone:      func(v int) widgets.Tone { return bandTone(farmdata.BandFor(v)) },
	}
	heatmap := widgets.Pane{
		Title:   s.env.T("analytics.heatmap"),
		Content: heat.Render(halfW, len(a.Heatmap)) + "\n\n" + strings.Join(legend, "  "),
	}
	rangeLabel := func(r string) string { return s.env.T("range." + r) }
	return widgets.VStack{
		Widgets: []widgets.Widget{
			widgets.Text(tabs(s.timeRange, rangeLabel)),
			widgets.HStack{
				Widgets: []widgets.Widget{
					widgets.VStack{Widgets: []widgets.Widget{moisture, temperature}, Ratios: []float64{float64(len(series) + 2), float64(len(a.Temperature[r]) + 2)}},
					heatmap,
				},
				Gap: 1,
			},
		},
		Ratios: []float64{1, 14},
	}.Render(width, height)
}
