package screens

import (
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/jask/smartfarm/core"
	"github.com/jask/smartfarm/widgets"
)

var onboardingPages = []string{"onboarding.page1", "onboarding.page2", "onboarding.page3"}

type onboardingScreen struct {
	env  core.Env
	step *core.Stepper
	done bool
}

func newOnboarding(env core.Env, _ core.Route) core.Screen {
	s := &onboardingScreen{env: env}
	s.step = core.NewStepper(len(onboardingPages), func() { s.done = true })
	return s
}

func (s *onboardingScreen) ID() core.ScreenID { return core.ScreenOnboarding }
func (s *onboardingScreen) Title() string     { return s.env.T("app.name") }

func (s *onboardingScreen) Update(nav core.Nav, msg tea.Msg) tea.Cmd {
	km, ok := msg.(tea.KeyMsg)
	if !ok {
		return nil
	}
	switch {
	case s.env.Is(km, "next", core.ScreenOnboarding):
		s.step.Next()
	case s.env.Is(km, "prev", core.ScreenOnboarding):
		s.step.Prev()
	case s.env.Is(km, "skip", core.ScreenOnboarding):
		s.step.Skip()
	}
	if s.done {
		s.done = false
		nav.Navigate(core.ScreenLogin)
	}
	return nil
}

func (s *onboardingScreen) View(width, height int) string {
	page := onboardingPages[s.step.Index()]
	dots := make([]string, s.step.Pages())
	for i := range dots {
		if i == s.step.Index() {
			dots[i] = lipgloss.NewStyle().Foreground(widgets.ColorAccent).Render("●")
		} else {
			dots[i] = widgets.Muted("○")
		}
	}
	next := s.env.T("onboarding.next")
	if s.step.Last() {
		next = s.env.T("onboarding.getStarted")
	}
	innerW, _ := widgets.Inner(width, height)
	body := strings.Join([]string{
		widgets.Strong(s.env.T(page + ".title")),
		"",
		wrap(s.env.T(page+".body"), innerW),
		"",
		strings.Join(dots, " "),
	}, "\n")
	hint := widgets.Muted("enter " + next + "  ·  s " + s.env.T("onboarding.skip"))
	return widgets.VStack{
		Widgets: []widgets.Widget{
			widgets.Text(widgets.Strong(s.env.T("app.name")) + "\n" + widgets.Muted(s.env.T("app.tagline"))),
			widgets.Pane{Content: body, Tone: widgets.ToneSafe},
			widgets.Text(hint),
		},
		Ratios:  []float64{2, 7, 1},
		Spacing: 1,
	}.Render(width, height)
}
