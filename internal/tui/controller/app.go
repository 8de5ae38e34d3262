package controller

import (
	"time"

	"podpanel/internal/panes"
	"podpanel/internal/tui/model"
	"podpanel/internal/tui/view"
	"podpanel/pkg/logging"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
)

const (
	defaultWidth  = 80
	defaultHeight = 24
)

// Options wires the host to its collaborators.
type Options struct {
	Runner       Runner
	Opener       panes.Opener
	Styles       view.Styles
	PollInterval time.Duration
	LogChannel   <-chan logging.LogEntry
	Debug        bool
}

// AppModel hosts the panel inside a Bubble Tea program: it turns terminal
// messages into panel events, executes the resulting effects and shows the
// last rendered frame.
type AppModel struct {
	state  *model.State
	keys   model.KeyMap
	quit   key.Binding
	styles view.Styles

	runner       Runner
	opener       panes.Opener
	pollInterval time.Duration
	logChannel   <-chan logging.LogEntry
	debug        bool

	granted    map[model.Permission]bool
	subscribed map[model.EventType]bool
	initCmd    tea.Cmd
	listing    listingSlot
	dropped    func() uint64

	frame    []string
	viewport viewport.Model
	help     help.Model
	status   string
	width    int
	height   int
}

// NewAppModel loads the panel: it applies the load effects (permissions and
// subscriptions take effect immediately) and queues the first listing for Init.
func NewAppModel(opts Options) AppModel {
	a := AppModel{
		state:        model.NewState(),
		keys:         model.DefaultKeyMap(),
		quit:         key.NewBinding(key.WithKeys("ctrl+c"), key.WithHelp("ctrl+c", "quit")),
		styles:       opts.Styles,
		runner:       opts.Runner,
		opener:       opts.Opener,
		pollInterval: opts.PollInterval,
		logChannel:   opts.LogChannel,
		debug:        opts.Debug,
		granted:      make(map[model.Permission]bool),
		subscribed:   make(map[model.EventType]bool),
		viewport:     viewport.New(defaultWidth, defaultHeight-footerHeight),
		help:         help.New(),
		dropped:      logging.Dropped,
		width:        defaultWidth,
		height:       defaultHeight,
	}
	a.initCmd = a.runEffects(Load(a.state))
	a.render()
	return a
}

// State exposes the panel state, mainly for tests.
func (a AppModel) State() *model.State {
	return a.state
}

// Init implements tea.Model
func (a AppModel) Init() tea.Cmd {
	cmds := []tea.Cmd{a.initCmd, listenForLogEntries(a.logChannel)}
	if a.pollInterval > 0 {
		cmds = append(cmds, pollCmd(a.pollInterval))
	}
	return tea.Batch(cmds...)
}

// Update implements tea.Model
func (a AppModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		// Quitting belongs to the host; the panel itself never terminates.
		if key.Matches(msg, a.quit) {
			return a, tea.Quit
		}
		return a, a.dispatch(model.KeyEvent{Key: model.Key(msg.String())})

	case tea.WindowSizeMsg:
		handleWindowSizeMsg(&a, msg)
		return a, a.dispatch(model.PaneUpdateEvent{Rows: msg.Height, Cols: msg.Width})

	case tea.ResumeMsg:
		return a, a.dispatch(model.PaneUpdateEvent{Rows: a.height, Cols: a.width})

	case tea.FocusMsg:
		return a, a.dispatch(model.TabUpdateEvent{Focused: true})

	case tea.BlurMsg:
		return a, a.dispatch(model.TabUpdateEvent{Focused: false})

	case commandResultMsg:
		if msg.event.Kind == model.CommandList {
			return a, a.completeListing(msg.event)
		}
		return a, a.dispatch(msg.event)

	case pollTickMsg:
		cmd := a.dispatch(model.TimerEvent{At: time.Time(msg)})
		if a.pollInterval > 0 {
			cmd = tea.Batch(cmd, pollCmd(a.pollInterval))
		}
		return a, cmd

	case logEntryMsg:
		a.handleLogEntry(logging.LogEntry(msg))
		return a, listenForLogEntries(a.logChannel)
	}
	return a, nil
}

// dispatch hands a subscribed event to the panel and executes what comes back.
func (a *AppModel) dispatch(ev model.Event) tea.Cmd {
	if !a.subscribed[ev.Type()] {
		return nil
	}
	effects, render := Update(a.state, ev)
	if render {
		a.render()
	}
	return a.runEffects(effects)
}

func (a *AppModel) handleLogEntry(entry logging.LogEntry) {
	if entry.Level >= logging.LevelWarn || a.debug {
		a.status = entry.Line()
	}
}

// View implements tea.Model
func (a AppModel) View() string {
	return a.viewport.View() + "\n" + a.footer()
}
