package layout

// FullScreenIntent is a window's declared full-screen layout intent.
type FullScreenIntent int

const (
	// InheritFullScreen defers to the active app's declaration.
	InheritFullScreen FullScreenIntent = iota
	// NotFullScreen declares the window keeps system chrome.
	NotFullScreen
	// FullScreen declares the window wants the entire viewport.
	FullScreen
)

// WindowKind classifies the window a height is being computed for.
type WindowKind int

const (
	// GenericWindow is any regular content window.
	GenericWindow WindowKind = iota
	// AppWindow is an application window.
	AppWindow
	// AttentionWindow is a high-priority transient window such as an alert.
	// It does not get the lock screen's software button exemption.
	AttentionWindow
)

func (k WindowKind) String() string {
	switch k {
	case AppWindow:
		return "app"
	case AttentionWindow:
		return "attention"
	default:
		return "generic"
	}
}

// Window is the window context HeightFor computes a height for.
type Window interface {
	FullScreenLayout() FullScreenIntent
	Kind() WindowKind
}

type defaultWindow struct{}

func (defaultWindow) FullScreenLayout() FullScreenIntent { return InheritFullScreen }
func (defaultWindow) Kind() WindowKind                   { return GenericWindow }

// DefaultWindow is a generic window with no full-screen declaration of its
// own. HeightFor(nil) behaves as HeightFor(DefaultWindow).
var DefaultWindow Window = defaultWindow{}
