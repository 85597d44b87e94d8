package app

// Layout constants for the simulator's terminal UI.
const (
	// SidePanelWidth is the widest the geometry/notification panel grows.
	SidePanelWidth = 44

	// SidePanelDivider caps the panel at terminal_width / this value on
	// narrow terminals.
	SidePanelDivider = 2

	// FooterRows is the number of rows reserved for the key help and status.
	FooterRows = 1

	// CellAspect is how many terminal columns make up one row's worth of
	// physical distance; terminal cells are about twice as tall as wide.
	CellAspect = 2

	// MinPhoneRows is the smallest phone drawing that still shows every band.
	MinPhoneRows = 6
)

// NotificationLogLimit bounds how many notifications the side panel keeps.
const NotificationLogLimit = 200

// AttentionWindowName labels attention windows opened from the keyboard.
const AttentionWindowName = "alert"

// GlamourStyleEnv selects the glamour style for the help overlay.
const GlamourStyleEnv = "SHELL_LAYOUT_GLAMOUR_STYLE"

// Side panel rows above the notification log: the geometry and state
// sections plus the log title.
const (
	panelInfoRows   = 14
	panelHeaderRows = panelInfoRows + 1
	panelLabelWidth = 14
)
