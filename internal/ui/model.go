package ui

import (
	"reflect"
	"time"

	"github.com/atomicstack/lcdmenu/internal/engine"
	"github.com/atomicstack/lcdmenu/internal/input"
	"github.com/atomicstack/lcdmenu/internal/logging"
	"github.com/atomicstack/lcdmenu/internal/logging/events"
	"github.com/atomicstack/lcdmenu/internal/theme"
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
)

var styles = theme.Default()

type msgHandler func(tea.Msg) tea.Cmd

// Options configure the simulator model.
type Options struct {
	// Title is shown above the panel and on the idle screen.
	Title string
	// Tick is the refresh period. While the menu owns the panel every tick
	// sends an empty press so live values are repainted. Zero disables it.
	Tick time.Duration
	// ShowFooter renders key help under the panel.
	ShowFooter bool
	// Width and Height pin the terminal size; zero follows resize events.
	Width, Height int
	// Source optionally feeds presses from a hardware device.
	Source *input.Source
	// Keys overrides DefaultKeyMap.
	Keys *input.KeyMap
}

// Model implements the Bubble Tea model hosting one menu engine.
type Model struct {
	eng    *engine.Engine
	host   *Host
	keys   input.KeyMap
	help   help.Model
	source *input.Source

	title       string
	tick        time.Duration
	showFooter  bool
	width       int
	height      int
	fixedWidth  bool
	fixedHeight bool
	presses     int
	errMsg      string
	infoMsg     string

	handlers map[reflect.Type]msgHandler
}

// NewModel wires eng to the terminal. host must be the engine's lifecycle.
func NewModel(eng *engine.Engine, host *Host, opts Options) *Model {
	keys := input.DefaultKeyMap()
	if opts.Keys != nil {
		keys = *opts.Keys
	}
	m := &Model{
		eng:        eng,
		host:       host,
		keys:       keys,
		help:       help.New(),
		source:     opts.Source,
		title:      opts.Title,
		tick:       opts.Tick,
		showFooter: opts.ShowFooter,
	}
	if opts.Width > 0 {
		m.width = opts.Width
		m.fixedWidth = true
		m.help.Width = opts.Width
	}
	if opts.Height > 0 {
		m.height = opts.Height
		m.fixedHeight = true
	}
	m.registerHandlers()
	return m
}

// Init is part of the tea.Model interface.
func (m *Model) Init() tea.Cmd {
	cmds := []tea.Cmd{}
	if m.source != nil {
		cmds = append(cmds, waitForButton(m.source))
	}
	if cmd := m.tickCmd(); cmd != nil {
		cmds = append(cmds, cmd)
	}
	if len(cmds) == 0 {
		return nil
	}
	return tea.Batch(cmds...)
}

// Update responds to Bubble Tea messages.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if handler := m.handlerFor(msg); handler != nil {
		return m, handler(msg)
	}
	return m, nil
}

func (m *Model) registerHandlers() {
	m.handlers = map[reflect.Type]msgHandler{
		reflect.TypeOf(tea.KeyMsg{}):        m.handleKeyMsg,
		reflect.TypeOf(tea.WindowSizeMsg{}): m.handleWindowSizeMsg,
		reflect.TypeOf(tickMsg{}):           m.handleTickMsg,
		reflect.TypeOf(buttonMsg{}):         m.handleButtonMsg,
		reflect.TypeOf(sourceDoneMsg{}):     m.handleSourceDoneMsg,
	}
}

func (m *Model) handlerFor(msg tea.Msg) msgHandler {
	if msg == nil || m.handlers == nil {
		return nil
	}
	t := reflect.TypeOf(msg)
	if handler, ok := m.handlers[t]; ok {
		return handler
	}
	if t.Kind() == reflect.Ptr {
		if handler, ok := m.handlers[t.Elem()]; ok {
			return handler
		}
	}
	return nil
}

func (m *Model) handleKeyMsg(msg tea.Msg) tea.Cmd {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return nil
	}
	if key.Matches(keyMsg, m.keys.Quit) {
		return tea.Quit
	}
	b, ok := m.keys.Button(keyMsg)
	if !ok {
		return nil
	}
	events.Input.Key(keyMsg.String(), b.String())
	m.press(b)
	return nil
}

// press routes one button according to who owns the panel. The idle
// screen and exclusive screens both return to the menu on any press.
func (m *Model) press(b engine.Button) {
	m.presses++
	m.errMsg = ""
	switch m.host.Mode() {
	case ModeIdle:
		m.host.resume()
		m.eng.HandleInput(engine.ButtonSelect)
	case ModeScreen:
		m.host.resume()
		m.eng.HandleInput(engine.ButtonNone)
	default:
		m.eng.HandleInput(b)
	}
	m.flush()
}

func (m *Model) flush() {
	if err := m.host.Panel().Flush(); err != nil {
		m.errMsg = err.Error()
		logging.Error(err)
	}
}

type tickMsg time.Time

func (m *Model) tickCmd() tea.Cmd {
	if m.tick <= 0 {
		return nil
	}
	return tea.Tick(m.tick, func(t time.Time) tea.Msg { return tickMsg(t) })
}

func (m *Model) handleTickMsg(msg tea.Msg) tea.Cmd {
	if m.host.Mode() == ModeMenu {
		m.eng.HandleInput(engine.ButtonNone)
		m.flush()
	}
	return m.tickCmd()
}

// Engine exposes the hosted engine.
func (m *Model) Engine() *engine.Engine { return m.eng }

// Host exposes the lifecycle host.
func (m *Model) Host() *Host { return m.host }

// Presses counts buttons routed so far.
func (m *Model) Presses() int { return m.presses }
