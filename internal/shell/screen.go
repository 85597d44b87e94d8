package shell

import "github.com/treykane/shell-layout/internal/config"

// Orientation is the device rotation class.
type Orientation int

const (
	Portrait Orientation = iota
	Landscape
)

func (o Orientation) String() string {
	if o == Landscape {
		return "landscape"
	}
	return "portrait"
}

// Screen is the simulated rendering surface. It implements layout.Screen.
type Screen struct {
	portrait    config.Device
	orientation Orientation
}

// NewScreen returns a portrait screen for the given device profile.
func NewScreen(d config.Device) *Screen {
	return &Screen{portrait: d}
}

func (s *Screen) InnerWidth() float64 {
	if s.orientation == Landscape {
		return s.portrait.InnerHeight
	}
	return s.portrait.InnerWidth
}

func (s *Screen) InnerHeight() float64 {
	if s.orientation == Landscape {
		return s.portrait.InnerWidth
	}
	return s.portrait.InnerHeight
}

func (s *Screen) DevicePixelRatio() float64 { return s.portrait.DevicePixelRatio }

// ClientWidth is the inner width less the configured client inset.
func (s *Screen) ClientWidth() float64 {
	return max(0, s.InnerWidth()-s.portrait.ClientWidthInset)
}

// Orientation reports the current rotation class.
func (s *Screen) Orientation() Orientation { return s.orientation }

// Rotate toggles between portrait and landscape.
func (s *Screen) Rotate() {
	if s.orientation == Portrait {
		s.orientation = Landscape
	} else {
		s.orientation = Portrait
	}
}
