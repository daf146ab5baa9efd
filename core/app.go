package core

import (
	tea "github.com/charmbracelet/bubbletea"
	"go.uber.org/zap"

	"github.com/jask/smartfarm/internal/farmdata"
	"github.com/jask/smartfarm/internal/i18n"
	"github.com/jask/smartfarm/internal/telemetry"
)

// Screen is one full-viewport view. Exactly one is live at a time.
type Screen interface {
	ID() ScreenID
	Title() string
	Update(nav Nav, msg tea.Msg) tea.Cmd
	View(width, height int) string
}

// ScreenInitializer is implemented by screens that need a start command.
type ScreenInitializer interface {
	Init() tea.Cmd
}

// Modal is an overlay flow rendered above the live screen.
type Modal interface {
	Update(msg tea.Msg) (Modal, tea.Cmd, bool)
	View(width, height int) string
	Scope() string
	Title() string
}

// Nav is the set of navigation primitives injected into screens.
type Nav interface {
	State() NavState
	Navigate(s ScreenID) bool
	SelectSensor(id string) bool
	Login()
	Logout()
	SetStatus(msg string)
	SetError(err error)
}

// Localizer is the localization collaborator: lookups plus the settable
// process-wide language.
type Localizer interface {
	i18n.Translator
	SetLanguage(name string) error
}

type Env struct {
	I18n    Localizer
	Data    *farmdata.Catalog
	Hooks   Hooks
	Logger  *zap.Logger
	Metrics *telemetry.Metrics
	Keys    *KeyRegistry
	// Theme seeds the settings theme choice.
	Theme string
}

func (e Env) T(key string) string {
	if e.I18n == nil {
		return key
	}
	return e.I18n.Translate(key)
}

var fallbackKeys = NewKeyRegistry(DefaultKeyBindings())

// Is reports whether msg triggers action on screen id.
func (e Env) Is(msg tea.KeyMsg, action string, id ScreenID) bool {
	keys := e.Keys
	if keys == nil {
		keys = fallbackKeys
	}
	return keys.IsAction(msg, action, id.Scope())
}

func (e Env) Log() *zap.Logger {
	if e.Logger == nil {
		return zap.NewNop()
	}
	return e.Logger
}

type Model struct {
	width            int
	height           int
	nav              Navigator
	registry         *Registry
	env              Env
	active           Screen
	mountCmd         tea.Cmd
	modals           ModalStack
	keys             *KeyRegistry
	commands         *CommandRegistry
	status           string
	statusErr        bool
	quitting         bool
	OpenCommandModal func(m *Model, scope string) Modal
	OpenHelpModal    func(m *Model, scope string) Modal
}

func NewModel(registry *Registry, keys *KeyRegistry, commands *CommandRegistry, env Env) Model {
	if keys == nil {
		keys = NewKeyRegistry(DefaultKeyBindings())
	}
	if commands == nil {
		commands = NewCommandRegistry(nil)
	}
	env.Keys = keys
	m := Model{
		nav:      NewNavigator(),
		registry: registry,
		env:      env,
		keys:     keys,
		commands: commands,
		status:   "Ready",
		width:    100,
		height:   32,
	}
	m.mount()
	return m
}

func (m Model) Init() tea.Cmd {
	return m.takeMountCmd()
}

// StartAt replaces the initial route, for deep links.
func (m *Model) StartAt(r Route) {
	prev := m.nav.Route()
	m.nav.Go(r)
	if m.nav.Route() != prev {
		m.mount()
	}
}

func (m *Model) mount() {
	route := m.nav.Route()
	m.active = m.registry.Build(m.env, route)
	m.mountCmd = nil
	if init, ok := m.active.(ScreenInitializer); ok {
		m.mountCmd = init.Init()
	}
	m.env.Metrics.ScreenViewed(route.Screen().String())
	m.env.Log().Debug("screen mounted",
		zap.String("screen", route.Screen().String()),
		zap.String("sensor", route.SensorID()),
		zap.Bool("authenticated", m.nav.State().Authenticated))
}

func (m *Model) takeMountCmd() tea.Cmd {
	cmd := m.mountCmd
	m.mountCmd = nil
	return cmd
}

// transition mounts a fresh instance after every successful change, so
// screen-local state never survives a route change.
func (m *Model) transition(prev Route, op string) {
	m.env.Log().Info("navigation",
		zap.String("op", op),
		zap.String("from", prev.Screen().String()),
		zap.String("to", m.nav.Route().Screen().String()),
		zap.String("sensor", m.nav.Route().SensorID()))
	m.mount()
}

func (m Model) State() NavState { return m.nav.State() }

func (m *Model) Navigate(s ScreenID) bool {
	prev := m.nav.Route()
	if _, ok := m.nav.Navigate(s); !ok {
		m.env.Metrics.NavigationRefused("bare-route")
		m.env.Log().Warn("navigation refused", zap.String("to", s.String()))
		m.SetStatus("Select a sensor to open " + s.String())
		m.statusErr = true
		return false
	}
	m.transition(prev, "navigate")
	return true
}

func (m *Model) SelectSensor(id string) bool {
	prev := m.nav.Route()
	if _, ok := m.nav.SelectSensor(id); !ok {
		m.env.Metrics.NavigationRefused("empty-sensor")
		m.env.Log().Warn("sensor selection refused")
		m.SetStatus("No sensor selected")
		m.statusErr = true
		return false
	}
	m.transition(prev, "select-sensor")
	return true
}

func (m *Model) Login() {
	prev := m.nav.Route()
	m.nav.Login()
	m.SetStatus("Signed in")
	m.transition(prev, "login")
}

func (m *Model) Logout() {
	prev := m.nav.Route()
	m.nav.Logout()
	m.SetStatus("Signed out")
	m.transition(prev, "logout")
}

func (m *Model) SetStatus(msg string) {
	m.status = msg
	m.statusErr = false
}

func (m *Model) SetError(err error) {
	if err == nil {
		m.status = ""
		m.statusErr = false
		return
	}
	m.status = err.Error()
	m.statusErr = true
}

func (m Model) Active() Screen { return m.active }

func (m Model) ActiveScope() string {
	if top := m.modals.Top(); top != nil {
		return top.Scope()
	}
	return m.nav.Route().Screen().Scope()
}

func (m *Model) PushModal(s Modal) {
	m.modals.Push(s)
}

func (m *Model) CommandRegistry() *CommandRegistry {
	return m.commands
}

func (m *Model) KeyRegistry() *KeyRegistry {
	return m.keys
}
