package layout

// Screen reports the rendering surface's geometry in logical pixels.
type Screen interface {
	InnerWidth() float64
	InnerHeight() float64
	DevicePixelRatio() float64
	// ClientWidth is the document client-area width, passed through unmodified.
	ClientWidth() float64
}

// Keyboard reports the on-screen keyboard height in pixels, 0 when hidden.
type Keyboard interface {
	KeyboardHeight() int
}

// SoftwareButtons reports the space taken by the software button bar. Both
// values are 0 while the bar is disabled.
type SoftwareButtons interface {
	Height() int
	Width() int
}

// LockState reports whether the device is locked.
type LockState interface {
	Locked() bool
}

// AppRegistry exposes the current foreground occupant. ActiveApp may return
// nil when nothing is active.
type AppRegistry interface {
	ActiveApp() Window
}

// Listener receives environment events.
type Listener interface {
	HandleEvent(kind EventKind)
}

// EventTarget is where the Manager registers for environment events.
type EventTarget interface {
	AddEventListener(kind EventKind, l Listener)
	RemoveEventListener(kind EventKind, l Listener)
}

// Publisher delivers outbound notifications to the rest of the shell.
// Publish must not block.
type Publisher interface {
	Publish(n Notification)
}

// PublisherFunc adapts a function to the Publisher interface.
type PublisherFunc func(Notification)

// Publish calls f(n).
func (f PublisherFunc) Publish(n Notification) { f(n) }

// Null collaborators substituted for missing dependencies. Each one yields
// the most space-constrained geometry that is still well defined.

type noScreen struct{}

func (noScreen) InnerWidth() float64       { return 0 }
func (noScreen) InnerHeight() float64      { return 0 }
func (noScreen) DevicePixelRatio() float64 { return 1 }
func (noScreen) ClientWidth() float64      { return 0 }

type noKeyboard struct{}

func (noKeyboard) KeyboardHeight() int { return 0 }

type noButtons struct{}

func (noButtons) Height() int { return 0 }
func (noButtons) Width() int  { return 0 }

type unlocked struct{}

func (unlocked) Locked() bool { return false }

type noApps struct{}

func (noApps) ActiveApp() Window { return nil }

type noEvents struct{}

func (noEvents) AddEventListener(EventKind, Listener)    {}
func (noEvents) RemoveEventListener(EventKind, Listener) {}

type discard struct{}

func (discard) Publish(Notification) {}
