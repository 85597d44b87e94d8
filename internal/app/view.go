package app

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/treykane/shell-layout/internal/layout"
	"github.com/treykane/shell-layout/internal/shell"
)

// attentionProbe is the window used to show what an attention window would
// get right now, whether or not one is open.
var attentionProbe = shell.NewAttentionWindow("probe")

// View draws the full UI (phone + side panel + footer).
func (m *Model) View() string {
	if m.width == 0 || m.height == 0 {
		return "Loading..."
	}

	d := m.calculateLayout()
	var row string
	if m.showHelp {
		row = m.renderHelp(m.width, d.ContentHeight)
	} else {
		phone := lipgloss.Place(d.PhoneAreaWidth, d.ContentHeight, lipgloss.Center, lipgloss.Center, m.renderPhone(d))
		row = lipgloss.JoinHorizontal(lipgloss.Top, padBlock(phone, d.PhoneAreaWidth, d.ContentHeight), m.renderPanel(d))
	}
	row = padBlock(row, m.width, d.ContentHeight)

	view := row + "\n" + m.renderStatus(m.width)
	return padBlock(view, m.width, m.height)
}

// renderPanel draws the geometry/state summary above the notification log.
func (m *Model) renderPanel(d LayoutDimensions) string {
	innerWidth := max(0, d.PanelWidth-paneStyle.GetHorizontalFrameSize())
	innerHeight := max(0, d.ContentHeight-paneStyle.GetVerticalFrameSize())
	if innerWidth == 0 || innerHeight == 0 {
		return ""
	}

	lines := m.panelLines()
	for len(lines) < panelInfoRows {
		lines = append(lines, "")
	}
	lines = append(lines[:panelInfoRows], titleStyle.Render(fmt.Sprintf("Notifications (%d)", m.seq)))

	content := strings.Join(lines, "\n")
	if d.LogHeight > 0 {
		content += "\n" + m.log.View()
	}
	return paneStyle.Render(padBlock(content, innerWidth, innerHeight))
}

// panelLines lists the computed geometry and the shell state behind it.
func (m *Model) panelLines() []string {
	dims := m.layout.Dimensions()

	var fg layout.Window
	foreground := "none"
	if w := m.shell.Apps.Foreground(); w != nil {
		fg = w
		foreground = fmt.Sprintf("%s (%s)", w.Name, w.Kind())
		if w.FullScreen {
			foreground += " full"
		}
	}

	buttons := "off"
	switch {
	case m.shell.Buttons.Height() > 0:
		buttons = fmt.Sprintf("bar %dpx", m.shell.Buttons.Height())
	case m.shell.Buttons.Width() > 0:
		buttons = fmt.Sprintf("rail %dpx", m.shell.Buttons.Width())
	}

	keyboard := "hidden"
	if m.shell.Keyboard.Shown() {
		keyboard = fmt.Sprintf("%dpx", m.shell.Keyboard.KeyboardHeight())
	}

	return []string{
		titleStyle.Render("Geometry"),
		field("width", formatPx(dims.Width)),
		field("height", formatPx(dims.Height)),
		field("client width", formatPx(dims.ClientWidth)),
		field("foreground h", formatPx(m.layout.HeightFor(fg))),
		field("attention h", formatPx(m.layout.HeightFor(attentionProbe))),
		"",
		titleStyle.Render("Shell"),
		field("orientation", m.shell.Screen.Orientation().String()),
		field("keyboard", fmt.Sprintf("%s (enabled %s)", keyboard, yesNo(m.layout.KeyboardEnabled))),
		field("soft buttons", buttons),
		field("locked", yesNo(m.shell.Lock.Locked())),
		field("foreground", foreground),
		field("attention", fmt.Sprintf("%d open", len(m.shell.Apps.Attention()))),
	}
}

// renderStatus draws the single footer row: key help then the status message.
func (m *Model) renderStatus(width int) string {
	line := m.help.ShortHelpView(m.keys.ShortHelp())
	if m.status != "" {
		line += "  " + mutedStyle.Render("│") + " " + m.status
	}
	return statusStyle.Width(width).Render(truncate(line, width))
}
