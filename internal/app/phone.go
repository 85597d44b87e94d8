package app

import (
	"fmt"
	"math"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/treykane/shell-layout/internal/layout"
)

// renderPhone draws the simulated screen to scale: the foreground window's
// area as computed by the layout coordinator, the keyboard band below it, and
// the software buttons as a bottom bar (portrait) or side rail (landscape).
func (m *Model) renderPhone(d LayoutDimensions) string {
	rows, cols := d.ScreenRows, d.ScreenCols
	if rows < MinPhoneRows || cols < MinPhoneRows {
		return mutedStyle.Render("Terminal too small")
	}

	screen := m.shell.Screen
	pxPerRow := screen.InnerHeight() / float64(rows)
	pxPerCol := screen.InnerWidth() / float64(cols)

	fg := m.shell.Apps.Foreground()
	var win layout.Window
	if fg != nil {
		win = fg
	}
	height := m.layout.HeightFor(win)
	width := m.layout.Width()

	appCols := cols
	railCols := 0
	if m.shell.Buttons.Width() > 0 {
		appCols = clamp(toCells(width, pxPerCol), 1, cols)
		railCols = cols - appCols
	}

	appRows := clamp(toCells(height, pxPerRow), 1, rows)
	kbRows := 0
	if m.layout.KeyboardEnabled {
		kbRows = clamp(toCells(float64(m.shell.Keyboard.KeyboardHeight()), pxPerRow), 0, rows-appRows)
	}
	restRows := rows - appRows - kbRows

	area := appArea
	locked := m.shell.Lock.Locked()
	switch {
	case fg != nil && fg.Kind() == layout.AttentionWindow:
		area = attentionArea
	case locked:
		area = lockArea
	}

	blocks := []string{
		area.Width(appCols).Height(appRows).Render(fitLines(m.areaLabel(height, width), appCols, appRows)),
	}
	if kbRows > 0 {
		blocks = append(blocks, keyboardBand.Width(appCols).Height(kbRows).Render(fitLines("keyboard", appCols, kbRows)))
	}
	if restRows > 0 {
		rest := area.Width(appCols).Height(restRows).Render("")
		if m.buttonBarSubtracted(win) {
			rest = buttonBar.Width(appCols).Height(restRows).Render(fitLines("◁  ○  □", appCols, restRows))
		}
		blocks = append(blocks, rest)
	}

	body := lipgloss.JoinVertical(lipgloss.Left, blocks...)
	if railCols > 0 {
		rail := buttonBar.Width(railCols).Height(rows).Render(fitLines("◁\n○\n□", railCols, rows))
		body = lipgloss.JoinHorizontal(lipgloss.Top, body, rail)
	}

	if locked {
		return lockedFrame.Render(body)
	}
	return phoneFrame.Render(body)
}

// areaLabel describes the foreground window drawn in the app area.
func (m *Model) areaLabel(height, width float64) string {
	lines := []string{}
	if fg := m.shell.Apps.Foreground(); fg != nil {
		lines = append(lines, fg.Name)
		if fg.FullScreen {
			lines = append(lines, "full screen")
		}
	}
	if m.shell.Lock.Locked() {
		lines = append(lines, "locked")
	}
	lines = append(lines, fmt.Sprintf("%s×%s", formatPx(width), formatPx(height)))
	return strings.Join(lines, "\n")
}

// buttonBarSubtracted reports whether the coordinator took the software
// button bar out of w's height.
func (m *Model) buttonBarSubtracted(w layout.Window) bool {
	bar := m.shell.Buttons.Height()
	if bar <= 0 {
		return false
	}
	withoutKeyboard := m.layout.HeightFor(w, layout.IgnoreKeyboard())
	// Device pixel rounding can shave up to one logical pixel.
	return m.shell.Screen.InnerHeight()-withoutKeyboard >= float64(bar)-1
}

func toCells(px, pxPerCell float64) int {
	if pxPerCell <= 0 {
		return 0
	}
	return int(math.Round(px / pxPerCell))
}
