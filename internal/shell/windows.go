package shell

import "github.com/treykane/shell-layout/internal/layout"

// Window is a simulated app or attention window. It implements layout.Window.
type Window struct {
	Name       string
	FullScreen bool
	kind       layout.WindowKind
}

// NewAppWindow returns an application window.
func NewAppWindow(name string, fullScreen bool) *Window {
	return &Window{Name: name, FullScreen: fullScreen, kind: layout.AppWindow}
}

// NewAttentionWindow returns an attention window that keeps system chrome.
func NewAttentionWindow(name string) *Window {
	return &Window{Name: name, kind: layout.AttentionWindow}
}

func (w *Window) FullScreenLayout() layout.FullScreenIntent {
	if w.FullScreen {
		return layout.FullScreen
	}
	return layout.NotFullScreen
}

func (w *Window) Kind() layout.WindowKind { return w.kind }

// AppRegistry tracks the foreground app and any attention windows stacked
// above it. It implements layout.AppRegistry.
type AppRegistry struct {
	app       *Window
	attention []*Window
}

// ActiveApp returns the topmost attention window, else the foreground app,
// else nil.
func (r *AppRegistry) ActiveApp() layout.Window {
	if w := r.Foreground(); w != nil {
		return w
	}
	return nil
}

// Foreground is ActiveApp with the concrete type.
func (r *AppRegistry) Foreground() *Window {
	if n := len(r.attention); n > 0 {
		return r.attention[n-1]
	}
	return r.app
}

// App returns the foreground application window, which may be nil.
func (r *AppRegistry) App() *Window { return r.app }

// Attention returns the open attention windows, bottom first.
func (r *AppRegistry) Attention() []*Window { return r.attention }
