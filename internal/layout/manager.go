// Package layout computes the usable screen rectangle for application windows
// in a mobile shell.
//
// The Manager is the single source of truth windows query to size themselves.
// It resolves the competing occupants of screen real estate (the on-screen
// keyboard, the software button bar, the lock screen and full-screen apps)
// into one geometry, and publishes a SystemResize notification (plus
// OrientationChange on a raw resize) whenever an environment event may have
// changed it.
//
// Geometry is pulled, never cached: Height, Width, ClientWidth and HeightFor
// read the collaborators on every call. The only state the Manager owns is
// the KeyboardEnabled flag.
//
// All collaborators are injected through Deps. Missing ones are replaced by
// null objects that produce the most conservative geometry, so a Manager is
// always safe to query.
package layout

import (
	"log/slog"

	"github.com/treykane/shell-layout/internal/logging"
)

var layoutLog = logging.New("layout")

// Deps are the collaborators a Manager reads from and publishes to.
type Deps struct {
	Screen    Screen
	Keyboard  Keyboard
	Buttons   SoftwareButtons
	Lock      LockState
	Apps      AppRegistry
	Events    EventTarget
	Publisher Publisher
}

// Manager is the viewport layout coordinator.
//
// It is not safe for concurrent use: events and geometry reads are expected
// on a single control goroutine, the way the shell dispatches them.
type Manager struct {
	// KeyboardEnabled is true while the on-screen keyboard occupies vertical
	// space. Only keyboard events and resize change it; callers may set it
	// directly to override.
	KeyboardEnabled bool

	screen    Screen
	keyboard  Keyboard
	buttons   SoftwareButtons
	lock      LockState
	apps      AppRegistry
	events    EventTarget
	publisher Publisher

	started bool
}

// New builds a Manager from deps. Nil collaborators are replaced with null
// objects.
func New(deps Deps) *Manager {
	m := &Manager{
		screen:    deps.Screen,
		keyboard:  deps.Keyboard,
		buttons:   deps.Buttons,
		lock:      deps.Lock,
		apps:      deps.Apps,
		events:    deps.Events,
		publisher: deps.Publisher,
	}
	if m.screen == nil {
		m.screen = noScreen{}
	}
	if m.keyboard == nil {
		m.keyboard = noKeyboard{}
	}
	if m.buttons == nil {
		m.buttons = noButtons{}
	}
	if m.lock == nil {
		m.lock = unlocked{}
	}
	if m.apps == nil {
		m.apps = noApps{}
	}
	if m.events == nil {
		m.events = noEvents{}
	}
	if m.publisher == nil {
		m.publisher = discard{}
	}
	return m
}

// Start registers the Manager for every recognized event kind and resets
// KeyboardEnabled. Calling Start twice without Stop is not supported.
func (m *Manager) Start() {
	m.KeyboardEnabled = false
	for _, kind := range EventKinds() {
		m.events.AddEventListener(kind, m)
	}
	m.started = true
	layoutLog.Debug("started")
}

// Stop unregisters the Manager. It is a no-op when already stopped.
func (m *Manager) Stop() {
	if !m.started {
		return
	}
	for _, kind := range EventKinds() {
		m.events.RemoveEventListener(kind, m)
	}
	m.started = false
	layoutLog.Debug("stopped")
}

// HandleEvent applies the state transition for kind and publishes the
// matching notifications. Unrecognized kinds are ignored.
func (m *Manager) HandleEvent(kind EventKind) {
	switch kind {
	case EventResize:
		m.KeyboardEnabled = false
		m.publish(SystemResize)
		m.publish(OrientationChange)
	case EventAttentionInactive:
		m.publish(SystemResize)
	case EventKeyboardChange:
		m.KeyboardEnabled = true
		m.publish(SystemResize)
	case EventKeyboardHide:
		m.KeyboardEnabled = false
		m.publish(SystemResize)
	case EventFullScreenChange:
		m.publish(SystemResize)
	case EventSoftwareButtonEnabled:
		m.publish(SystemResize)
	case EventSoftwareButtonDisabled:
		m.publish(SystemResize)
	default:
		layoutLog.Debug("ignored event", "event", int(kind))
		return
	}
	layoutLog.Debug("handled event",
		slog.String("event", kind.String()),
		slog.Bool("keyboard_enabled", m.KeyboardEnabled))
}

// HandleEventName routes a DOM event name through HandleEvent. Unknown names
// are ignored.
func (m *Manager) HandleEventName(name string) {
	kind, ok := ParseEventKind(name)
	if !ok {
		layoutLog.Debug("ignored event", "event", name)
		return
	}
	m.HandleEvent(kind)
}

func (m *Manager) publish(n Notification) {
	m.publisher.Publish(n)
}
