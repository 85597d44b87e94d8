package app

import "github.com/charmbracelet/lipgloss"

var (
	paneStyle   = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).Padding(0, 1)
	phoneFrame  = lipgloss.NewStyle().Border(lipgloss.ThickBorder()).BorderForeground(lipgloss.Color("62"))
	lockedFrame = phoneFrame.BorderForeground(lipgloss.Color("204"))
	popupStyle  = lipgloss.NewStyle().Border(lipgloss.ThickBorder()).Padding(0, 1)

	appArea       = lipgloss.NewStyle().Foreground(lipgloss.Color("252")).Background(lipgloss.Color("24")).Align(lipgloss.Center)
	attentionArea = appArea.Background(lipgloss.Color("130"))
	lockArea      = appArea.Background(lipgloss.Color("53"))
	keyboardBand  = lipgloss.NewStyle().Foreground(lipgloss.Color("235")).Background(lipgloss.Color("250")).Align(lipgloss.Center)
	buttonBar     = lipgloss.NewStyle().Foreground(lipgloss.Color("252")).Background(lipgloss.Color("236")).Align(lipgloss.Center)

	titleStyle  = lipgloss.NewStyle().Bold(true)
	statusStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("240"))
	mutedStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("244"))
	accentStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("211"))
)
