package layout

type fakeScreen struct {
	width, height, dpr, client float64
}

func (s *fakeScreen) InnerWidth() float64       { return s.width }
func (s *fakeScreen) InnerHeight() float64      { return s.height }
func (s *fakeScreen) DevicePixelRatio() float64 { return s.dpr }
func (s *fakeScreen) ClientWidth() float64      { return s.client }

type fakeKeyboard struct{ height int }

func (k *fakeKeyboard) KeyboardHeight() int { return k.height }

type fakeButtons struct{ height, width int }

func (b *fakeButtons) Height() int { return b.height }
func (b *fakeButtons) Width() int  { return b.width }

type fakeLock struct{ locked bool }

func (l *fakeLock) Locked() bool { return l.locked }

type fakeApps struct{ active Window }

func (a *fakeApps) ActiveApp() Window { return a.active }

type fakeWindow struct {
	intent FullScreenIntent
	kind   WindowKind
}

func (w fakeWindow) FullScreenLayout() FullScreenIntent { return w.intent }
func (w fakeWindow) Kind() WindowKind                   { return w.kind }

type recordingPublisher struct{ published []Notification }

func (p *recordingPublisher) Publish(n Notification) { p.published = append(p.published, n) }

type fakeTarget struct {
	listeners map[EventKind][]Listener
}

func newFakeTarget() *fakeTarget {
	return &fakeTarget{listeners: map[EventKind][]Listener{}}
}

func (t *fakeTarget) AddEventListener(kind EventKind, l Listener) {
	t.listeners[kind] = append(t.listeners[kind], l)
}

func (t *fakeTarget) RemoveEventListener(kind EventKind, l Listener) {
	kept := t.listeners[kind][:0]
	for _, existing := range t.listeners[kind] {
		if existing != l {
			kept = append(kept, existing)
		}
	}
	t.listeners[kind] = kept
}

func (t *fakeTarget) dispatch(kind EventKind) {
	for _, l := range t.listeners[kind] {
		l.HandleEvent(kind)
	}
}

// fixture mirrors a 320x545 portrait device at 1x with the active app
// windowed.
type fixture struct {
	screen    *fakeScreen
	keyboard  *fakeKeyboard
	buttons   *fakeButtons
	lock      *fakeLock
	apps      *fakeApps
	target    *fakeTarget
	publisher *recordingPublisher
	manager   *Manager
}

func newFixture() *fixture {
	f := &fixture{
		screen:    &fakeScreen{width: 320, height: 545, dpr: 1, client: 320},
		keyboard:  &fakeKeyboard{},
		buttons:   &fakeButtons{},
		lock:      &fakeLock{},
		apps:      &fakeApps{active: fakeWindow{intent: NotFullScreen, kind: AppWindow}},
		target:    newFakeTarget(),
		publisher: &recordingPublisher{},
	}
	f.manager = New(Deps{
		Screen:    f.screen,
		Keyboard:  f.keyboard,
		Buttons:   f.buttons,
		Lock:      f.lock,
		Apps:      f.apps,
		Events:    f.target,
		Publisher: f.publisher,
	})
	f.manager.Start()
	return f
}

func (f *fixture) setActiveFullScreen(on bool) {
	intent := NotFullScreen
	if on {
		intent = FullScreen
	}
	f.apps.active = fakeWindow{intent: intent, kind: AppWindow}
}
