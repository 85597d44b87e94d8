package layout

import "math"

// pixelEpsilon absorbs float error when a value is already integral in
// device pixels (e.g. 394.6666…·1.5).
const pixelEpsilon = 1e-6

// Dimensions is a snapshot of the computed geometry.
type Dimensions struct {
	Width       float64
	Height      float64
	ClientWidth float64
}

// HeightOption tunes a HeightFor query.
type HeightOption func(*heightQuery)

type heightQuery struct {
	ignoreKeyboard bool
}

// IgnoreKeyboard computes the height as if the keyboard were dismissed, for
// windows that are not the keyboard's target.
func IgnoreKeyboard() HeightOption {
	return func(q *heightQuery) { q.ignoreKeyboard = true }
}

// Height is the usable height for the active occupant. The software button
// bar is not subtracted while the device is locked or the active app is
// full-screen; the keyboard always is when enabled.
func (m *Manager) Height() float64 {
	suppress := m.lock.Locked() || m.activeAppFullScreen()
	return m.computeHeight(suppress, false)
}

// Width is the inner width minus the software button rail. Unlike Height,
// the button contribution is not gated by lock or full-screen state.
func (m *Manager) Width() float64 {
	w := m.screen.InnerWidth() - float64(m.buttons.Width())
	return floorToDevicePixels(w, m.screen.DevicePixelRatio())
}

// ClientWidth is the rendering surface's client-area width, unmodified.
func (m *Manager) ClientWidth() float64 {
	return m.screen.ClientWidth()
}

// Match reports whether width and height equal the current Width and Height.
func (m *Manager) Match(width, height float64) bool {
	return width == m.Width() && height == m.Height()
}

// Dimensions reads Width, Height and ClientWidth together.
func (m *Manager) Dimensions() Dimensions {
	return Dimensions{
		Width:       m.Width(),
		Height:      m.Height(),
		ClientWidth: m.ClientWidth(),
	}
}

// HeightFor returns the height window w should use. A nil w is treated as
// DefaultWindow. Full-screen intent comes from w unless it inherits, in which
// case the active app decides. Attention windows do not get the lock screen
// exemption for the software button bar.
func (m *Manager) HeightFor(w Window, opts ...HeightOption) float64 {
	if w == nil {
		w = DefaultWindow
	}
	var q heightQuery
	for _, opt := range opts {
		opt(&q)
	}

	fullScreen := m.activeAppFullScreen()
	switch w.FullScreenLayout() {
	case FullScreen:
		fullScreen = true
	case NotFullScreen:
		fullScreen = false
	}

	lockExempt := m.lock.Locked() && w.Kind() != AttentionWindow
	return m.computeHeight(fullScreen || lockExempt, q.ignoreKeyboard)
}

func (m *Manager) computeHeight(suppressButtons, ignoreKeyboard bool) float64 {
	h := m.screen.InnerHeight()
	if m.KeyboardEnabled && !ignoreKeyboard {
		h -= float64(m.keyboard.KeyboardHeight())
	}
	if !suppressButtons {
		h -= float64(m.buttons.Height())
	}
	return floorToDevicePixels(h, m.screen.DevicePixelRatio())
}

func (m *Manager) activeAppFullScreen() bool {
	app := m.apps.ActiveApp()
	if app == nil {
		return false
	}
	return app.FullScreenLayout() == FullScreen
}

// floorToDevicePixels rounds v down so that v·dpr is integral and the result
// never exceeds v. Negative values clamp to 0 and a non-positive ratio is
// treated as 1.
func floorToDevicePixels(v, dpr float64) float64 {
	if v <= 0 || math.IsNaN(v) {
		return 0
	}
	if dpr <= 0 || math.IsNaN(dpr) || math.IsInf(dpr, 0) {
		dpr = 1
	}
	if r := math.Floor(v*dpr+pixelEpsilon) / dpr; r <= v {
		return r
	}
	return math.Floor(v*dpr) / dpr
}
