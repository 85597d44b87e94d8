package shell

import "github.com/treykane/shell-layout/internal/layout"

// EventTarget dispatches environment events to registered listeners
// synchronously, in registration order. It implements layout.EventTarget.
type EventTarget struct {
	listeners map[layout.EventKind][]layout.Listener
}

// NewEventTarget returns an empty target.
func NewEventTarget() *EventTarget {
	return &EventTarget{listeners: make(map[layout.EventKind][]layout.Listener)}
}

func (t *EventTarget) AddEventListener(kind layout.EventKind, l layout.Listener) {
	t.listeners[kind] = append(t.listeners[kind], l)
}

// RemoveEventListener drops every registration of l for kind.
func (t *EventTarget) RemoveEventListener(kind layout.EventKind, l layout.Listener) {
	current := t.listeners[kind]
	kept := make([]layout.Listener, 0, len(current))
	for _, existing := range current {
		if existing != l {
			kept = append(kept, existing)
		}
	}
	if len(kept) == 0 {
		delete(t.listeners, kind)
		return
	}
	t.listeners[kind] = kept
}

// Dispatch delivers kind to its listeners and reports how many received it.
func (t *EventTarget) Dispatch(kind layout.EventKind) int {
	listeners := t.listeners[kind]
	for _, l := range listeners {
		l.HandleEvent(kind)
	}
	return len(listeners)
}

// Listeners reports how many listeners are registered for kind.
func (t *EventTarget) Listeners(kind layout.EventKind) int {
	return len(t.listeners[kind])
}
