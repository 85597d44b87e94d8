package layout

// EventKind identifies one of the environment events the Manager reacts to.
// The set is closed: values outside the declared constants are ignored by
// HandleEvent.
type EventKind int

const (
	// EventResize is a raw viewport resize, usually a rotation.
	EventResize EventKind = iota
	// EventAttentionInactive fires when an attention window goes away.
	EventAttentionInactive
	// EventKeyboardChange fires when the on-screen keyboard appears or changes height.
	EventKeyboardChange
	// EventKeyboardHide fires when the on-screen keyboard is dismissed.
	EventKeyboardHide
	// EventFullScreenChange is the native full-screen toggle.
	EventFullScreenChange
	// EventSoftwareButtonEnabled fires when the software button bar is turned on.
	EventSoftwareButtonEnabled
	// EventSoftwareButtonDisabled fires when the software button bar is turned off.
	EventSoftwareButtonDisabled

	numEventKinds
)

var eventNames = [numEventKinds]string{
	EventResize:                 "resize",
	EventAttentionInactive:      "attention-inactive",
	EventKeyboardChange:         "keyboardchange",
	EventKeyboardHide:           "keyboardhide",
	EventFullScreenChange:       "mozfullscreenchange",
	EventSoftwareButtonEnabled:  "software-button-enabled",
	EventSoftwareButtonDisabled: "software-button-disabled",
}

// String returns the DOM event name for k.
func (k EventKind) String() string {
	if !k.valid() {
		return "unknown"
	}
	return eventNames[k]
}

func (k EventKind) valid() bool {
	return k >= 0 && k < numEventKinds
}

// EventKinds returns every recognized event kind in declaration order.
func EventKinds() []EventKind {
	kinds := make([]EventKind, 0, numEventKinds)
	for k := EventKind(0); k < numEventKinds; k++ {
		kinds = append(kinds, k)
	}
	return kinds
}

// ParseEventKind maps a DOM event name to its EventKind. ok is false for
// names outside the recognized set.
func ParseEventKind(name string) (kind EventKind, ok bool) {
	for k, n := range eventNames {
		if n == name {
			return EventKind(k), true
		}
	}
	return 0, false
}

// Notification is an outbound, payload-free signal published by the Manager.
type Notification string

const (
	// SystemResize asks every geometry consumer to re-measure now.
	SystemResize Notification = "system-resize"
	// OrientationChange signals a device-rotation-class change.
	OrientationChange Notification = "orientationchange"
)
