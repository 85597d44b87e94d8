package app

import (
	"fmt"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/treykane/shell-layout/internal/config"
	"github.com/treykane/shell-layout/internal/layout"
)

// handleKey maps a key press to a change in the simulated shell.
//
// The simulator never touches the layout manager directly: every action goes
// through the shell, which raises the DOM-style event the manager listens
// for. Lock changes and app launches raise nothing, matching the real shell,
// so the panel simply re-reads geometry on the next View.
func (m *Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.showHelp {
		switch {
		case key.Matches(msg, m.keys.Quit):
			return m, tea.Quit
		case key.Matches(msg, m.keys.Help), msg.String() == "esc":
			m.showHelp = false
		}
		return m, nil
	}

	switch {
	case key.Matches(msg, m.keys.Quit):
		return m, tea.Quit
	case key.Matches(msg, m.keys.Help):
		m.showHelp = true
	case key.Matches(msg, m.keys.Keyboard):
		m.shell.ToggleKeyboard()
		if m.shell.Keyboard.Shown() {
			m.status = fmt.Sprintf("Keyboard shown (%dpx)", m.shell.Keyboard.KeyboardHeight())
		} else {
			m.status = "Keyboard hidden"
		}
	case key.Matches(msg, m.keys.Buttons):
		enabled := !m.shell.Buttons.Enabled()
		m.shell.SetSoftwareButtons(enabled)
		m.status = "Software buttons " + onOff(enabled)
	case key.Matches(msg, m.keys.Lock):
		locked := !m.shell.Lock.Locked()
		m.shell.SetLocked(locked)
		if locked {
			m.status = "Locked"
		} else {
			m.status = "Unlocked"
		}
	case key.Matches(msg, m.keys.FullScreen):
		w := m.shell.Apps.Foreground()
		if w == nil {
			m.status = "Nothing in the foreground"
			return m, nil
		}
		m.shell.ToggleFullScreen()
		m.status = fmt.Sprintf("%s full screen %s", w.Name, onOff(w.FullScreen))
	case key.Matches(msg, m.keys.Attention):
		m.shell.OpenAttention(AttentionWindowName)
		m.status = fmt.Sprintf("Attention windows open: %d", len(m.shell.Apps.Attention()))
	case key.Matches(msg, m.keys.CloseAttention):
		if !m.shell.CloseAttention() {
			m.status = "No attention window open"
			return m, nil
		}
		m.status = fmt.Sprintf("Attention windows open: %d", len(m.shell.Apps.Attention()))
	case key.Matches(msg, m.keys.Rotate):
		m.shell.Rotate()
		m.status = "Rotated to " + m.shell.Screen.Orientation().String()
	case key.Matches(msg, m.keys.Launch):
		next := appCatalog[m.nextApp%len(appCatalog)]
		m.nextApp++
		m.shell.Launch(next.name, next.fullScreen)
		m.status = "Launched " + next.name
	case key.Matches(msg, m.keys.RawEvent):
		kinds := layout.EventKinds()
		name := kinds[m.nextEvent%len(kinds)].String()
		m.nextEvent++
		m.shell.Raise(name)
		m.status = "Raised " + name
	case key.Matches(msg, m.keys.Save):
		m.saveSettings()
	case key.Matches(msg, m.keys.ScrollUp, m.keys.ScrollDown):
		return m.scrollLog(msg)
	}
	return m, nil
}

// saveSettings writes the start-up settings back to the config file, with the
// software button bar as it is now.
func (m *Model) saveSettings() {
	cfg := m.cfg
	cfg.SoftwareButtons.Enabled = m.shell.Buttons.Enabled()

	existed, err := config.Exists()
	if err != nil {
		m.setStatusError("Cannot check settings file", err)
		return
	}
	if err := config.Save(cfg); err != nil {
		m.setStatusError("Cannot save settings", err)
		return
	}
	m.cfg = cfg

	path, err := config.ConfigPath()
	if err != nil {
		m.setStatusError("Settings saved", err)
		return
	}
	if existed {
		m.status = "Updated " + path
	} else {
		m.status = "Created " + path
	}
}

func onOff(v bool) string {
	if v {
		return "on"
	}
	return "off"
}
