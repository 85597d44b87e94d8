package app

import "github.com/charmbracelet/bubbles/key"

// keyMap lists the simulator's actions. Each binding maps to one change in
// the simulated shell; the layout coordinator only ever sees the DOM-style
// events those changes raise.
type keyMap struct {
	Keyboard       key.Binding
	Buttons        key.Binding
	Lock           key.Binding
	FullScreen     key.Binding
	Attention      key.Binding
	CloseAttention key.Binding
	Rotate         key.Binding
	Launch         key.Binding
	RawEvent       key.Binding
	Save           key.Binding
	ScrollUp       key.Binding
	ScrollDown     key.Binding
	Help           key.Binding
	Quit           key.Binding
}

func defaultKeyMap() keyMap {
	return keyMap{
		Keyboard:       key.NewBinding(key.WithKeys("k"), key.WithHelp("k", "keyboard")),
		Buttons:        key.NewBinding(key.WithKeys("b"), key.WithHelp("b", "soft buttons")),
		Lock:           key.NewBinding(key.WithKeys("l"), key.WithHelp("l", "lock")),
		FullScreen:     key.NewBinding(key.WithKeys("f"), key.WithHelp("f", "full screen")),
		Attention:      key.NewBinding(key.WithKeys("a"), key.WithHelp("a", "alert")),
		CloseAttention: key.NewBinding(key.WithKeys("x"), key.WithHelp("x", "close alert")),
		Rotate:         key.NewBinding(key.WithKeys("r"), key.WithHelp("r", "rotate")),
		Launch:         key.NewBinding(key.WithKeys("n"), key.WithHelp("n", "next app")),
		RawEvent:       key.NewBinding(key.WithKeys("e"), key.WithHelp("e", "raw event")),
		Save:           key.NewBinding(key.WithKeys("s"), key.WithHelp("s", "save settings")),
		ScrollUp:       key.NewBinding(key.WithKeys("up", "pgup"), key.WithHelp("↑", "log up")),
		ScrollDown:     key.NewBinding(key.WithKeys("down", "pgdown"), key.WithHelp("↓", "log down")),
		Help:           key.NewBinding(key.WithKeys("?"), key.WithHelp("?", "help")),
		Quit:           key.NewBinding(key.WithKeys("q", "ctrl+c"), key.WithHelp("q", "quit")),
	}
}

// ShortHelp implements help.KeyMap.
func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Keyboard, k.Buttons, k.Lock, k.FullScreen, k.Attention, k.Rotate, k.Help, k.Quit}
}

// FullHelp implements help.KeyMap.
func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Keyboard, k.Buttons, k.Lock, k.FullScreen},
		{k.Attention, k.CloseAttention, k.Rotate, k.Launch, k.RawEvent},
		{k.Save, k.ScrollUp, k.ScrollDown, k.Help, k.Quit},
	}
}
