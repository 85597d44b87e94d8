package app

import (
	"log/slog"

	"github.com/treykane/shell-layout/internal/logging"
)

// appLog is the package-level structured logger for the simulator UI.
//
// Output goes to stderr (see the logging package) so it never corrupts the
// Bubble Tea frame on stdout. Run with SHELL_LAYOUT_LOG_LEVEL=debug and
// redirect stderr to follow every event the simulated shell raises.
var appLog = logging.New("app")

// setStatusError shows status in the footer and logs err with attrs.
//
//	m.setStatusError("Cannot close attention window", err, "open", 0)
func (m *Model) setStatusError(status string, err error, attrs ...any) {
	m.status = status
	fields := make([]any, 0, len(attrs)+1)
	fields = append(fields, slog.Any("error", err))
	fields = append(fields, attrs...)
	appLog.Error(status, fields...)
}
