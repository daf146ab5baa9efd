package screens

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"go.uber.org/zap"

	"github.com/jask/smartfarm/core"
	"github.com/jask/smartfarm/internal/farmdata"
	"github.com/jask/smartfarm/widgets"
)

var sensorRanges = []string{"24h", "weekly", "monthly"}

type sensorScreen struct {
	env       core.Env
	sensorID  string
	view      farmdata.SensorView
	known     bool
	timeRange *core.Choice[string]
	threshold *core.Slider
}

func newSensorDetails(env core.Env, route core.Route) core.Screen {
	view, ok := env.Data.Sensor(route.SensorID())
	if !ok {
		env.Log().Warn("unknown sensor selected", zap.String("sensor", route.SensorID()))
	}
	return &sensorScreen{
		env:       env,
		sensorID:  route.SensorID(),
		view:      view,
		known:     ok,
		timeRange: core.NewChoice(sensorRanges...),
		threshold: core.NewThresholdSlider(),
	}
}

func (s *sensorScreen) ID() core.ScreenID { return core.ScreenSensorDetails }
func (s *sensorScreen) Title() string     { return s.env.T("sensor.details") }

func (s *sensorScreen) Update(nav core.Nav, msg tea.Msg) tea.Cmd {
	km, ok := msg.(tea.KeyMsg)
	if !ok {
		return nil
	}
	const id = core.ScreenSensorDetails
	switch {
	case s.env.Is(km, "range-next", id):
		s.timeRange.Next()
	case s.env.Is(km, "threshold-up", id):
		s.threshold.Step(1)
	case s.env.Is(km, "threshold-down", id):
		s.threshold.Step(-1)
	case s.env.Is(km, "threshold-save", id):
		if err := s.threshold.Save(s.env.Hooks.Threshold, s.sensorID); err != nil {
			nav.SetError(err)
			return nil
		}
		nav.SetStatus(fmt.Sprintf("%s: %d%%", s.env.T("sensor.threshold"), s.threshold.Value()))
	}
	return nil
}

func (s *sensorScreen) label() string {
	if s.view.Label != "" {
		return s.view.Label
	}
	if s.view.LabelKey != "" {
		return s.env.T(s.view.LabelKey)
	}
	return s.sensorID
}

func (s *sensorScreen) View(width, height int) string {
	if !s.known {
		return widgets.Pane{
			Title:   s.Title(),
			Content: widgets.Muted(fmt.Sprintf("No readings for sensor %q", s.sensorID)),
			Tone:    widgets.ToneWarning,
		}.Render(width, height)
	}
	detail := s.env.Data.SensorDetail
	innerW, _ := widgets.Inner(width/2, height)

	current := widgets.Pane{
		Title: s.label(),
		Content: strings.Join([]string{
			widgets.Muted(s.env.T("sensor.currentValue")),
			widgets.Strong(s.view.Value) + "  " + widgets.Muted(s.view.Trend),
			widgets.Badge(s.env.T("status."+string(s.view.Status)), statusTone(s.view.Status)),
			widgets.Muted(s.env.T("sensor.optimalRange") + ": " + s.view.Range),
		}, "\n"),
		Tone: statusTone(s.view.Status),
	}
	rangeLabel := func(r string) string { return s.env.T("range." + r) }
	history := widgets.Pane{
		Title: s.env.T("sensor.history"),
		Content: tabs(s.timeRange, rangeLabel) + "\n" +
			widgets.Chart{Data: chartPoints(detail.Series[s.timeRange.Current()]), Unit: "%", Tone: widgets.ToneInfo}.Render(max(10, width/2-4), 8),
	}
	recs := make([]string, 0, len(detail.Recommendations))
	for _, r := range detail.Recommendations {
		recs = append(recs, widgets.Strong(r.Kind), wrap(r.Text, innerW))
	}
	threshold := widgets.Gauge{
		Label:    s.env.T("sensor.threshold"),
		Value:    fmt.Sprintf("%d%%", s.threshold.Value()),
		Fraction: s.threshold.Fraction(),
		MinLabel: fmt.Sprintf("%d%%", s.threshold.Min()),
		MaxLabel: fmt.Sprintf("%d%%", s.threshold.Max()),
	}
	left := widgets.VStack{
		Widgets: []widgets.Widget{
			current,
			history,
			widgets.Pane{Title: s.env.T("sensor.threshold"), Content: threshold.Render(innerW, 2) + "\n" + widgets.Muted("+/- adjust  ·  w save")},
		},
		Ratios: []float64{6, 10, 4},
	}
	right := widgets.VStack{
		Widgets: []widgets.Widget{
			widgets.Pane{Title: s.env.T("sensor.prediction"), Content: wrap(detail.Prediction, innerW), Tone: widgets.ToneWarning},
			widgets.Pane{Title: s.env.T("sensor.recommendations"), Content: strings.Join(recs, "\n")},
		},
		Ratios: []float64{1, 3},
	}
	return widgets.HStack{Widgets: []widgets.Widget{left, right}, Gap: 1}.Render(width, height)
}
