package app

import (
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/treykane/shell-layout/internal/config"
	"github.com/treykane/shell-layout/internal/eventbus"
	"github.com/treykane/shell-layout/internal/layout"
	"github.com/treykane/shell-layout/internal/shell"
)

// appCatalog is cycled by the launch key.
var appCatalog = []struct {
	name       string
	fullScreen bool
}{
	{name: "home", fullScreen: false},
	{name: "camera", fullScreen: true},
	{name: "browser", fullScreen: false},
	{name: "video", fullScreen: true},
}

// logEntry is one notification received from the bus together with the
// geometry pulled from the layout coordinator when it arrived.
type logEntry struct {
	seq          int
	notification layout.Notification
	dims         layout.Dimensions
}

// Model holds the Bubble Tea state for the simulator.
type Model struct {
	// Settings the simulator was started with
	cfg config.Config

	// Simulated environment and the coordinator under observation
	shell  *shell.Shell
	layout *layout.Manager

	// UI widgets
	keys     keyMap
	help     help.Model
	log      viewport.Model
	status   string
	showHelp bool

	// Notification history
	entries []logEntry
	seq     int

	// Help overlay cache, keyed by render width
	helpWidth    int
	helpRendered string

	// Terminal size
	width  int
	height int

	nextApp   int
	nextEvent int
}

// New prepares the simulator model around an already started layout manager.
func New(cfg config.Config, sh *shell.Shell, lm *layout.Manager) *Model {
	return &Model{
		cfg:      cfg,
		shell:    sh,
		layout:   lm,
		keys:     defaultKeyMap(),
		help:     help.New(),
		log:      viewport.New(0, 0),
		status:   "Ready",
		showHelp: cfg.UI.ShowHelp,
		nextApp:  1,
	}
}

// Init has nothing to start; notifications arrive from the event bus.
func (m *Model) Init() tea.Cmd {
	return nil
}

// Update is the Bubble Tea update loop.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		return m.handleWindowResize(msg)
	case eventbus.NotificationMsg:
		return m.handleNotification(msg)
	case tea.KeyMsg:
		return m.handleKey(msg)
	}
	return m, nil
}

// scrollLog forwards navigation keys to the notification log.
func (m *Model) scrollLog(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.ScrollUp):
		m.log.LineUp(1)
	case key.Matches(msg, m.keys.ScrollDown):
		m.log.LineDown(1)
	}
	return m, nil
}
