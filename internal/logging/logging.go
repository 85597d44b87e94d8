// Package logging provides the shared, structured logger for the shell layout
// coordinator and its simulator.
//
// It wraps the standard library's [log/slog] package and provides a single
// initialization point so every component shares the same output handler and
// log level. The level is read once from the SHELL_LAYOUT_LOG_LEVEL
// environment variable (debug, info, warn, error); unset or unknown values
// mean INFO.
//
// Usage:
//
//	log := logging.New("layout")   // every entry carries component=layout
//	log.Debug("handled event", "event", kind, "keyboard_enabled", true)
//
// Output goes to stderr so it never interleaves with the terminal UI that the
// simulator draws on stdout.
package logging

import (
	"log/slog"
	"os"
	"strings"
	"sync"
)

// LevelEnv names the environment variable that selects the log level.
const LevelEnv = "SHELL_LAYOUT_LOG_LEVEL"

var (
	initLogger sync.Once
	baseLogger *slog.Logger
)

// New returns a structured logger scoped to the given component name.
//
// The component is attached as a "component" attribute to every entry. An
// empty component returns the base logger unchanged. The base logger is
// created lazily on the first call and reused afterwards.
func New(component string) *slog.Logger {
	initLogger.Do(func() {
		baseLogger = slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
			Level: parseLevel(os.Getenv(LevelEnv)),
		}))
	})
	if component == "" {
		return baseLogger
	}
	return baseLogger.With("component", component)
}

// parseLevel converts a human-readable level to a [slog.Level].
//
// Recognized values (case-insensitive, whitespace-trimmed):
//   - "debug"           → slog.LevelDebug
//   - "warn", "warning" → slog.LevelWarn
//   - "error"           → slog.LevelError
//   - anything else     → slog.LevelInfo
func parseLevel(value string) slog.Level {
	switch strings.ToLower(strings.TrimSpace(value)) {
	case "debug":
		return slog.LevelDebug
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}
