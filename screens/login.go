package screens

import (
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"go.uber.org/zap"

	"github.com/jask/smartfarm/core"
	"github.com/jask/smartfarm/widgets"
)

type loginMode string

const (
	modeLogin  loginMode = "login"
	modeSignup loginMode = "signup"
)

const (
	fieldEmail = iota
	fieldPhone
	fieldPassword
)

type loginScreen struct {
	env    core.Env
	mode   *core.Choice[loginMode]
	inputs []textinput.Model
	focus  int
}

func newLogin(env core.Env, _ core.Route) core.Screen {
	mk := func(placeholder string) textinput.Model {
		in := textinput.New()
		in.Placeholder = placeholder
		in.Prompt = "> "
		in.CharLimit = 64
		return in
	}
	email := mk("farmer@smartfarm.com")
	phone := mk("+1 (555) 123-4567")
	password := mk("••••••••")
	password.EchoMode = textinput.EchoPassword
	password.EchoCharacter = '•'
	s := &loginScreen{
		env:    env,
		mode:   core.NewChoice(modeLogin, modeSignup),
		inputs: []textinput.Model{email, phone, password},
	}
	s.inputs[fieldEmail].Focus()
	return s
}

func (s *loginScreen) ID() core.ScreenID { return core.ScreenLogin }
func (s *loginScreen) Title() string     { return s.env.T("login." + string(s.mode.Current())) }
func (s *loginScreen) Init() tea.Cmd     { return textinput.Blink }

func (s *loginScreen) Update(nav core.Nav, msg tea.Msg) tea.Cmd {
	km, ok := msg.(tea.KeyMsg)
	if !ok {
		var cmd tea.Cmd
		s.inputs[s.focus], cmd = s.inputs[s.focus].Update(msg)
		return cmd
	}
	switch {
	case s.env.Is(km, "switch-mode", core.ScreenLogin):
		s.mode.Next()
		return nil
	case s.env.Is(km, "nav-down", core.ScreenLogin):
		return s.setFocus(s.focus + 1)
	case s.env.Is(km, "nav-up", core.ScreenLogin):
		return s.setFocus(s.focus - 1)
	case s.env.Is(km, "submit", core.ScreenLogin):
		s.submit(nav)
		return nil
	case s.env.Is(km, "biometric", core.ScreenLogin):
		s.env.Log().Info("biometric login")
		nav.Login()
		return nil
	}
	var cmd tea.Cmd
	s.inputs[s.focus], cmd = s.inputs[s.focus].Update(msg)
	return cmd
}

func (s *loginScreen) setFocus(i int) tea.Cmd {
	n := len(s.inputs)
	s.inputs[s.focus].Blur()
	s.focus = (i%n + n) % n
	return s.inputs[s.focus].Focus()
}

func (s *loginScreen) submit(nav core.Nav) {
	email := strings.TrimSpace(s.inputs[fieldEmail].Value())
	phone := strings.TrimSpace(s.inputs[fieldPhone].Value())
	password := s.inputs[fieldPassword].Value()
	if auth := s.env.Hooks.Auth; auth != nil {
		if err := auth.Authenticate(email, phone, password); err != nil {
			s.env.Log().Warn("login rejected", zap.String("mode", string(s.mode.Current())), zap.Error(err))
			nav.SetError(err)
			return
		}
	}
	s.env.Log().Info("login", zap.String("mode", string(s.mode.Current())))
	nav.Login()
}

func (s *loginScreen) View(width, height int) string {
	labels := []string{s.env.T("login.email"), s.env.T("login.phone"), s.env.T("login.password")}
	mode := tabs(s.mode, func(m loginMode) string { return s.env.T("login." + string(m)) })
	lines := []string{mode, ""}
	for i, in := range s.inputs {
		label := labels[i]
		if i == s.focus {
			label = widgets.Strong(label)
		} else {
			label = widgets.Muted(label)
		}
		lines = append(lines, label, in.View(), "")
	}
	if s.mode.Current() == modeLogin {
		lines = append(lines, widgets.Muted(s.env.T("login.forgot")))
	}
	lines = append(lines,
		"",
		widgets.Strong("enter "+s.env.T("login.submit")),
		widgets.Muted("ctrl+b "+s.env.T("login.biometric")+"  ·  ctrl+t "+s.env.T("login.login")+"/"+s.env.T("login.signup")),
	)
	return widgets.VStack{
		Widgets: []widgets.Widget{
			widgets.Text(widgets.Strong(s.env.T("app.name")) + "\n" + widgets.Muted(s.env.T("app.tagline"))),
			widgets.Pane{Title: s.Title(), Content: strings.Join(lines, "\n"), Selected: true},
		},
		Ratios:  []float64{1, 6},
		Spacing: 1,
	}.Render(width, height)
}
