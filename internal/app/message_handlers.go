package app

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/treykane/shell-layout/internal/eventbus"
)

// handleWindowResize records the terminal size and resizes the log viewport.
func (m *Model) handleWindowResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.width = msg.Width
	m.height = msg.Height
	m.help.Width = msg.Width
	m.applyLayout(m.calculateLayout())
	return m, nil
}

// handleNotification appends a bus notification to the log. Geometry is
// pulled from the coordinator here, the way any shell window re-measures on
// system-resize.
func (m *Model) handleNotification(msg eventbus.NotificationMsg) (tea.Model, tea.Cmd) {
	m.seq++
	m.entries = append(m.entries, logEntry{
		seq:          m.seq,
		notification: msg.Notification,
		dims:         m.layout.Dimensions(),
	})
	if over := len(m.entries) - NotificationLogLimit; over > 0 {
		m.entries = m.entries[over:]
	}
	m.refreshLog()
	return m, nil
}

func (m *Model) refreshLog() {
	lines := make([]string, 0, len(m.entries))
	for _, e := range m.entries {
		lines = append(lines, formatLogEntry(e))
	}
	m.log.SetContent(strings.Join(lines, "\n"))
	m.log.GotoBottom()
}

func formatLogEntry(e logEntry) string {
	return fmt.Sprintf("%3d %-17s %sx%s", e.seq, e.notification, formatPx(e.dims.Width), formatPx(e.dims.Height))
}

// formatPx prints whole pixels without decimals and fractional ones to two places.
func formatPx(v float64) string {
	if v == float64(int64(v)) {
		return fmt.Sprintf("%d", int64(v))
	}
	return fmt.Sprintf("%.2f", v)
}
