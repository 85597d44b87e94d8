// layout.go centralizes the terminal layout calculations for the simulator.
//
// The UI is a horizontal split: the simulated phone on the left and a side
// panel on the right with the computed geometry, the shell state and the log
// of published notifications. One footer row holds key help and status.
//
// The phone is drawn to scale. Its screen fills the available rows, and its
// column count follows the device's aspect ratio corrected by CellAspect
// because terminal cells are taller than they are wide. On narrow terminals
// the width is the limiting side instead and rows shrink to match.
package app

import "math"

// LayoutDimensions holds all calculated layout dimensions for the UI.
type LayoutDimensions struct {
	PhoneAreaWidth int // columns left of the side panel
	PanelWidth     int // side panel width including border/padding
	ContentHeight  int // terminal height minus footer
	ScreenRows     int // rows inside the phone frame
	ScreenCols     int // columns inside the phone frame
	LogHeight      int // rows available to the notification log
}

// calculateLayout computes all UI dimensions from the terminal size and the
// simulated screen's current aspect ratio.
func (m *Model) calculateLayout() LayoutDimensions {
	panelWidth := min(SidePanelWidth, m.width/SidePanelDivider)
	phoneArea := max(0, m.width-panelWidth)
	contentHeight := max(0, m.height-FooterRows)

	rows := max(0, contentHeight-phoneFrame.GetVerticalFrameSize())
	maxCols := max(0, phoneArea-phoneFrame.GetHorizontalFrameSize())
	cols := min(rows*CellAspect, maxCols)

	w := m.shell.Screen.InnerWidth()
	h := m.shell.Screen.InnerHeight()
	if w > 0 && h > 0 {
		cols = int(math.Round(w / h * float64(rows) * CellAspect))
		if cols > maxCols {
			cols = maxCols
			rows = min(rows, int(math.Round(h/w*float64(cols)/CellAspect)))
		}
	}

	logHeight := max(0, contentHeight-paneStyle.GetVerticalFrameSize()-panelHeaderRows)

	return LayoutDimensions{
		PhoneAreaWidth: phoneArea,
		PanelWidth:     panelWidth,
		ContentHeight:  contentHeight,
		ScreenRows:     rows,
		ScreenCols:     cols,
		LogHeight:      logHeight,
	}
}

// applyLayout sizes the notification log to the panel.
func (m *Model) applyLayout(d LayoutDimensions) {
	m.log.Width = max(0, d.PanelWidth-paneStyle.GetHorizontalFrameSize())
	m.log.Height = d.LogHeight
	m.log.GotoBottom()
}
