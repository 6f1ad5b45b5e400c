package gui

import (
	"log/slog"
	"os"
)

// guiLogLevel controls the log level for GUI debug logging.
// Default is Info (debug logs suppressed).
// Use SetVerbose(true) to enable debug logging.
var guiLogLevel = new(slog.LevelVar)

// SetVerbose enables or disables verbose debug logging for the GUI package.
func SetVerbose(verbose bool) {
	if verbose {
		guiLogLevel.Set(slog.LevelDebug)
	} else {
		guiLogLevel.Set(slog.LevelInfo)
	}
}

// IsVerbose returns true if verbose debug logging is enabled.
func IsVerbose() bool {
	return guiLogLevel.Level() <= slog.LevelDebug
}

// LogLevel exposes the shared level so backends can build loggers that follow SetVerbose.
func LogLevel() slog.Leveler {
	return guiLogLevel
}

// guiLogger is the logger for widget tree debugging.
var guiLogger = slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: guiLogLevel}))

// Logger returns the package logger.
func Logger() *slog.Logger {
	return guiLogger
}
