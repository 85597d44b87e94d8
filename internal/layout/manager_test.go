package layout

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestHandleEventPublishesNotifications(t *testing.T) {
	tests := []struct {
		event        EventKind
		keyboardFrom bool
		wantKeyboard bool
		want         []Notification
	}{
		{event: EventResize, keyboardFrom: true, wantKeyboard: false, want: []Notification{SystemResize, OrientationChange}},
		{event: EventResize, keyboardFrom: false, wantKeyboard: false, want: []Notification{SystemResize, OrientationChange}},
		{event: EventAttentionInactive, keyboardFrom: true, wantKeyboard: true, want: []Notification{SystemResize}},
		{event: EventKeyboardChange, keyboardFrom: false, wantKeyboard: true, want: []Notification{SystemResize}},
		{event: EventKeyboardHide, keyboardFrom: true, wantKeyboard: false, want: []Notification{SystemResize}},
		{event: EventFullScreenChange, keyboardFrom: true, wantKeyboard: true, want: []Notification{SystemResize}},
		{event: EventSoftwareButtonEnabled, keyboardFrom: false, wantKeyboard: false, want: []Notification{SystemResize}},
		{event: EventSoftwareButtonDisabled, keyboardFrom: true, wantKeyboard: true, want: []Notification{SystemResize}},
	}

	for _, tt := range tests {
		t.Run(tt.event.String(), func(t *testing.T) {
			f := newFixture()
			f.manager.KeyboardEnabled = tt.keyboardFrom

			f.manager.HandleEvent(tt.event)

			if diff := cmp.Diff(tt.want, f.publisher.published); diff != "" {
				t.Fatalf("published notifications mismatch (-want +got):\n%s", diff)
			}
			if got := f.manager.KeyboardEnabled; got != tt.wantKeyboard {
				t.Fatalf("keyboard enabled: got %v, want %v", got, tt.wantKeyboard)
			}
		})
	}
}

func TestHandleEventIgnoresUnknownKinds(t *testing.T) {
	f := newFixture()
	f.manager.KeyboardEnabled = true

	f.manager.HandleEvent(EventKind(-1))
	f.manager.HandleEvent(numEventKinds)
	f.manager.HandleEventName("visibilitychange")

	if len(f.publisher.published) != 0 {
		t.Fatalf("expected no notifications, got %v", f.publisher.published)
	}
	if !f.manager.KeyboardEnabled {
		t.Fatal("expected keyboard state untouched by unknown events")
	}
}

func TestHandleEventNameRoutesDOMNames(t *testing.T) {
	f := newFixture()

	f.manager.HandleEventName("keyboardchange")
	if !f.manager.KeyboardEnabled {
		t.Fatal("expected keyboardchange to enable the keyboard")
	}
	f.manager.HandleEventName("resize")
	if f.manager.KeyboardEnabled {
		t.Fatal("expected resize to disable the keyboard")
	}

	want := []Notification{SystemResize, SystemResize, OrientationChange}
	if diff := cmp.Diff(want, f.publisher.published); diff != "" {
		t.Fatalf("published notifications mismatch (-want +got):\n%s", diff)
	}
}

func TestKeyboardEventsNeverPublishOrientationChange(t *testing.T) {
	f := newFixture()
	for i := 0; i < 3; i++ {
		f.manager.HandleEvent(EventKeyboardChange)
		f.manager.HandleEvent(EventKeyboardHide)
	}
	for _, n := range f.publisher.published {
		if n != SystemResize {
			t.Fatalf("expected only %q, got %q", SystemResize, n)
		}
	}
	if got := len(f.publisher.published); got != 6 {
		t.Fatalf("expected one notification per event, got %d", got)
	}
}

func TestStartRegistersForEveryEventAndResetsKeyboard(t *testing.T) {
	target := newFakeTarget()
	publisher := &recordingPublisher{}
	m := New(Deps{Events: target, Publisher: publisher})
	m.KeyboardEnabled = true

	m.Start()

	if m.KeyboardEnabled {
		t.Fatal("expected Start to reset keyboard state")
	}
	for _, kind := range EventKinds() {
		if got := len(target.listeners[kind]); got != 1 {
			t.Fatalf("listeners for %s: got %d, want 1", kind, got)
		}
	}

	target.dispatch(EventKeyboardChange)
	if !m.KeyboardEnabled {
		t.Fatal("expected dispatched keyboardchange to reach the manager")
	}
}

func TestStopUnregistersAndIsIdempotent(t *testing.T) {
	f := newFixture()

	f.manager.Stop()
	f.manager.Stop()

	for _, kind := range EventKinds() {
		if got := len(f.target.listeners[kind]); got != 0 {
			t.Fatalf("listeners for %s after stop: got %d, want 0", kind, got)
		}
	}
	f.target.dispatch(EventResize)
	if len(f.publisher.published) != 0 {
		t.Fatalf("expected no notifications after stop, got %v", f.publisher.published)
	}
}

func TestStopBeforeStartIsNoOp(t *testing.T) {
	target := newFakeTarget()
	m := New(Deps{Events: target})
	m.Stop()
	if len(target.listeners) != 0 {
		t.Fatalf("expected no listener changes, got %v", target.listeners)
	}
}

func TestParseEventKind(t *testing.T) {
	for _, kind := range EventKinds() {
		got, ok := ParseEventKind(kind.String())
		if !ok || got != kind {
			t.Fatalf("ParseEventKind(%q): got %v/%v, want %v/true", kind.String(), got, ok, kind)
		}
	}
	if _, ok := ParseEventKind("unknown"); ok {
		t.Fatal("expected unknown name to be rejected")
	}
	if got := EventKind(42).String(); got != "unknown" {
		t.Fatalf("out-of-range String: got %q, want %q", got, "unknown")
	}
}

func TestNewWithoutCollaboratorsIsQueryable(t *testing.T) {
	m := New(Deps{})
	m.Start()
	m.HandleEvent(EventResize)

	if got := m.Height(); got != 0 {
		t.Fatalf("height: got %v, want 0", got)
	}
	if got := m.HeightFor(nil); got != 0 {
		t.Fatalf("height for nil window: got %v, want 0", got)
	}
	if got := m.Width(); got != 0 {
		t.Fatalf("width: got %v, want 0", got)
	}
}
