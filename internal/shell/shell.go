// Package shell simulates the environment the layout coordinator lives in:
// the screen, the on-screen keyboard, the software button bar, the lock
// screen, the app registry and the event target that delivers DOM-style
// events.
//
// Every mutator updates collaborator state first and then raises the event
// the real shell would raise, so listeners always observe the new state.
// Like the shell it models, a Shell is driven from a single goroutine.
package shell

import (
	"github.com/treykane/shell-layout/internal/config"
	"github.com/treykane/shell-layout/internal/layout"
	"github.com/treykane/shell-layout/internal/logging"
)

var shellLog = logging.New("shell")

// Shell bundles the simulated collaborators.
type Shell struct {
	Screen   *Screen
	Keyboard *Keyboard
	Buttons  *SoftwareButtons
	Lock     *LockScreen
	Apps     *AppRegistry
	Events   *EventTarget
}

// New builds a shell from cfg with a windowed "home" app in the foreground.
func New(cfg config.Config) *Shell {
	screen := NewScreen(cfg.Device)
	return &Shell{
		Screen:   screen,
		Keyboard: &Keyboard{height: cfg.Keyboard.Height},
		Buttons: &SoftwareButtons{
			size:    cfg.SoftwareButtons.Size,
			enabled: cfg.SoftwareButtons.Enabled,
			screen:  screen,
		},
		Lock:   &LockScreen{},
		Apps:   &AppRegistry{app: NewAppWindow("home", false)},
		Events: NewEventTarget(),
	}
}

// Deps wires the shell's collaborators into a layout.Deps.
func (s *Shell) Deps(p layout.Publisher) layout.Deps {
	return layout.Deps{
		Screen:    s.Screen,
		Keyboard:  s.Keyboard,
		Buttons:   s.Buttons,
		Lock:      s.Lock,
		Apps:      s.Apps,
		Events:    s.Events,
		Publisher: p,
	}
}

// ShowKeyboard brings up the keyboard and raises keyboardchange.
func (s *Shell) ShowKeyboard() {
	s.Keyboard.shown = true
	s.raise(layout.EventKeyboardChange)
}

// HideKeyboard dismisses the keyboard and raises keyboardhide.
func (s *Shell) HideKeyboard() {
	s.Keyboard.shown = false
	s.raise(layout.EventKeyboardHide)
}

// ToggleKeyboard shows or hides the keyboard.
func (s *Shell) ToggleKeyboard() {
	if s.Keyboard.shown {
		s.HideKeyboard()
		return
	}
	s.ShowKeyboard()
}

// SetSoftwareButtons turns the button bar on or off and raises the matching
// event. Setting the current state is a no-op.
func (s *Shell) SetSoftwareButtons(enabled bool) {
	if s.Buttons.enabled == enabled {
		return
	}
	s.Buttons.enabled = enabled
	if enabled {
		s.raise(layout.EventSoftwareButtonEnabled)
		return
	}
	s.raise(layout.EventSoftwareButtonDisabled)
}

// SetLocked changes the lock state. The layout coordinator does not listen
// for lock changes; consumers re-query geometry after locking.
func (s *Shell) SetLocked(locked bool) {
	s.Lock.locked = locked
	shellLog.Debug("lock state changed", "locked", locked)
}

// Launch replaces the foreground app.
func (s *Shell) Launch(name string, fullScreen bool) {
	s.Apps.app = NewAppWindow(name, fullScreen)
	shellLog.Debug("launched app", "app", name, "full_screen", fullScreen)
}

// ToggleFullScreen flips the foreground occupant's full-screen declaration
// and raises the native full-screen change. It does nothing when no window
// is in the foreground.
func (s *Shell) ToggleFullScreen() {
	w := s.Apps.Foreground()
	if w == nil {
		return
	}
	w.FullScreen = !w.FullScreen
	s.raise(layout.EventFullScreenChange)
}

// OpenAttention stacks a new attention window above the foreground.
func (s *Shell) OpenAttention(name string) *Window {
	w := NewAttentionWindow(name)
	s.Apps.attention = append(s.Apps.attention, w)
	shellLog.Debug("opened attention window", "window", name)
	return w
}

// CloseAttention removes the topmost attention window and raises
// attention-inactive. It reports false when none was open.
func (s *Shell) CloseAttention() bool {
	n := len(s.Apps.attention)
	if n == 0 {
		return false
	}
	s.Apps.attention[n-1] = nil
	s.Apps.attention = s.Apps.attention[:n-1]
	s.raise(layout.EventAttentionInactive)
	return true
}

// Rotate swaps the screen orientation and raises resize. A keyboard that was
// up re-announces itself with keyboardchange, as the keyboard app does after
// relayout.
func (s *Shell) Rotate() {
	s.Screen.Rotate()
	s.raise(layout.EventResize)
	if s.Keyboard.shown {
		s.raise(layout.EventKeyboardChange)
	}
}

// Raise delivers a named DOM event without changing collaborator state.
// Unknown names are ignored.
func (s *Shell) Raise(name string) {
	kind, ok := layout.ParseEventKind(name)
	if !ok {
		shellLog.Debug("raised unknown event", "event", name)
		return
	}
	s.raise(kind)
}

func (s *Shell) raise(kind layout.EventKind) {
	n := s.Events.Dispatch(kind)
	shellLog.Debug("raised event", "event", kind.String(), "listeners", n)
}
