package shell

// Keyboard is the simulated on-screen keyboard. It implements layout.Keyboard.
type Keyboard struct {
	height int
	shown  bool
}

// KeyboardHeight is the configured height while shown, 0 otherwise.
func (k *Keyboard) KeyboardHeight() int {
	if !k.shown {
		return 0
	}
	return k.height
}

// Shown reports whether the keyboard is up.
func (k *Keyboard) Shown() bool { return k.shown }

// SoftwareButtons is the simulated software home button bar. It sits along
// the bottom edge in portrait and along the side in landscape. It implements
// layout.SoftwareButtons.
type SoftwareButtons struct {
	size    int
	enabled bool
	screen  *Screen
}

func (b *SoftwareButtons) Height() int {
	if !b.enabled || b.screen.Orientation() == Landscape {
		return 0
	}
	return b.size
}

func (b *SoftwareButtons) Width() int {
	if !b.enabled || b.screen.Orientation() == Portrait {
		return 0
	}
	return b.size
}

// Enabled reports whether the bar is on.
func (b *SoftwareButtons) Enabled() bool { return b.enabled }

// LockScreen is the simulated lock state. It implements layout.LockState.
type LockScreen struct {
	locked bool
}

func (l *LockScreen) Locked() bool { return l.locked }
