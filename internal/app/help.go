package app

import (
	"os"
	"strings"

	"github.com/charmbracelet/glamour"
)

const helpMarkdown = `# Shell layout simulator

The phone on the left is drawn from the geometry the layout coordinator
computes. Every key changes the simulated shell, which raises the same
events a device would; the coordinator answers with notifications that
appear in the log on the right.

## Keys

| Key | Action | Event raised |
|-----|--------|--------------|
| k | show / hide keyboard | keyboardchange, keyboardhide |
| b | software buttons on / off | software-button-enabled, software-button-disabled |
| l | lock / unlock | none |
| f | toggle full screen on the foreground window | mozfullscreenchange |
| a | open an alert (attention window) | none |
| x | close the top alert | attention-inactive |
| r | rotate | resize, then keyboardchange if the keyboard is up |
| n | launch the next app | none |
| e | raise the next event by name, without changing the shell | each event in turn |
| s | save settings (device profile, software buttons) | none |
| ↑ ↓ | scroll the notification log | |
| ? / esc | close this help | |
| q | quit | |

## Things to try

- Lock the screen with the buttons on: regular windows get the full height,
  alerts still lose the button bar.
- Go full screen with the keyboard up: the keyboard still takes its space.
- Rotate: the button bar becomes a side rail and only the width shrinks.
`

// renderHelp draws the help overlay, rendering the markdown once per width.
func (m *Model) renderHelp(width, height int) string {
	innerWidth := max(0, width-popupStyle.GetHorizontalFrameSize())
	innerHeight := max(0, height-popupStyle.GetVerticalFrameSize())
	if innerWidth == 0 || innerHeight == 0 {
		return ""
	}

	if m.helpWidth != innerWidth || m.helpRendered == "" {
		out, err := renderMarkdown(helpMarkdown, innerWidth)
		if err != nil {
			m.setStatusError("Help rendering failed", err, "width", innerWidth)
			out = helpMarkdown
		}
		m.helpWidth = innerWidth
		m.helpRendered = strings.Trim(out, "\n")
	}
	return popupStyle.Render(padBlock(m.helpRendered, innerWidth, innerHeight))
}

// renderMarkdown renders content with glamour, word-wrapped to width. The
// style comes from SHELL_LAYOUT_GLAMOUR_STYLE, defaulting to "dark".
func renderMarkdown(content string, width int) (string, error) {
	style := strings.TrimSpace(os.Getenv(GlamourStyleEnv))
	if style == "" {
		style = "dark"
	}
	renderer, err := glamour.NewTermRenderer(
		glamour.WithStandardStyle(style),
		glamour.WithWordWrap(width),
	)
	if err != nil {
		return "", err
	}
	return renderer.Render(content)
}
