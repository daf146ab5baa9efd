package screens

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/jask/smartfarm/core"
	"github.com/jask/smartfarm/internal/farmdata"
	"github.com/jask/smartfarm/widgets"
)

var zoneShade = map[string]rune{
	string(farmdata.BandOptimal): '▓',
	string(farmdata.BandGood):    '▒',
	string(farmdata.BandMedium):  '▒',
	string(farmdata.BandLow):     '░',
}

func shadeFor(z farmdata.Zone) rune {
	if r, ok := zoneShade[z.Moisture]; ok {
		return r
	}
	return '·'
}

type fieldMapScreen struct {
	env    core.Env
	nodes  []farmdata.FieldNode
	cursor int
}

func newFieldMap(env core.Env, _ core.Route) core.Screen {
	return &fieldMapScreen{env: env, nodes: env.Data.FieldNodes}
}

func (s *fieldMapScreen) ID() core.ScreenID { return core.ScreenFieldMap }
func (s *fieldMapScreen) Title() string     { return s.env.T("fieldmap.title") }

func (s *fieldMapScreen) Update(nav core.Nav, msg tea.Msg) tea.Cmd {
	km, ok := msg.(tea.KeyMsg)
	if !ok {
		return nil
	}
	const id = core.ScreenFieldMap
	switch {
	case s.env.Is(km, "nav-up", id):
		s.cursor = clampCursor(s.cursor-1, len(s.nodes))
	case s.env.Is(km, "nav-down", id):
		s.cursor = clampCursor(s.cursor+1, len(s.nodes))
	case s.env.Is(km, "select", id):
		if len(s.nodes) > 0 {
			nav.SelectSensor(s.nodes[s.cursor].ID)
		}
	}
	return nil
}

func (s *fieldMapScreen) View(width, height int) string {
	items := make([]string, len(s.nodes))
	for i, n := range s.nodes {
		items[i] = fmt.Sprintf("%-3s %2d°C  %2d%%  %s", strings.ToUpper(n.ID), n.Temp, n.Moisture,
			widgets.Badge(s.env.T("status."+string(n.Status)), statusTone(n.Status)))
	}
	zones := make([]string, len(s.env.Data.Zones))
	for i, z := range s.env.Data.Zones {
		zones[i] = fmt.Sprintf("%c zone %d  %s", shadeFor(z), i+1, s.env.T("band."+z.Moisture))
	}
	legend := strings.Join([]string{
		widgets.Badge(s.env.T("status.safe"), widgets.ToneSafe),
		widgets.Badge(s.env.T("status.warning"), widgets.ToneWarning),
		"▓ " + s.env.T("band.optimal"),
		"▒ " + s.env.T("band.medium"),
		"░ " + s.env.T("band.low"),
	}, "  ")

	side := widgets.VStack{
		Widgets: []widgets.Widget{
			widgets.Pane{Title: s.env.T("fieldmap.nodes"), Content: widgets.List{Items: items, Cursor: s.cursor}.Render(40, len(items))},
			widgets.Pane{Title: s.env.T("fieldmap.zones"), Content: strings.Join(zones, "\n")},
		},
		Ratios: []float64{float64(len(items) + 2), float64(len(zones) + 2)},
	}
	return widgets.VStack{
		Widgets: []widgets.Widget{
			widgets.HStack{
				Widgets: []widgets.Widget{mapWidget{screen: s}, side},
				Ratios:  []float64{3, 2},
				Gap:     1,
			},
			widgets.Text(widgets.Muted(s.env.T("fieldmap.legend")+": ") + legend),
		},
		Ratios: []float64{9, 1},
	}.Render(width, height)
}

// mapWidget plots zones and sensor nodes on a character grid. Catalog
// coordinates are percentages of the field extent.
type mapWidget struct {
	screen *fieldMapScreen
}

func (w mapWidget) Render(width, height int) string {
	innerW, innerH := widgets.Inner(width, height)
	grid := make([][]string, innerH)
	for y := range grid {
		grid[y] = make([]string, innerW)
		for x := range grid[y] {
			grid[y][x] = widgets.Muted("·")
		}
	}
	col := func(pct int) int { return clampCursor(pct*innerW/100, innerW) }
	row := func(pct int) int { return clampCursor(pct*innerH/100, innerH) }
	for _, z := range w.screen.env.Data.Zones {
		shade := string(shadeFor(z))
		tone := bandTone(farmdata.MoistureBand(z.Moisture))
		cell := lipgloss.NewStyle().Foreground(tone.Color()).Render(shade)
		for y := row(z.Y); y <= row(z.Y+z.Height); y++ {
			for x := col(z.X); x <= col(z.X+z.Width); x++ {
				grid[y][x] = cell
			}
		}
	}
	for i, n := range w.screen.nodes {
		mark := "●"
		if i == w.screen.cursor {
			mark = "◉"
		}
		grid[row(n.Y)][col(n.X)] = lipgloss.NewStyle().Foreground(statusTone(n.Status).Color()).Bold(true).Render(mark)
	}
	lines := make([]string, innerH)
	for y := range grid {
		lines[y] = strings.Join(grid[y], "")
	}
	return widgets.Pane{Title: w.screen.env.Data.Field.Name, Content: strings.Join(lines, "\n"), Selected: true}.Render(width, height)
}
