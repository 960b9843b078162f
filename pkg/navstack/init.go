package navstack

import (
	"log/slog"
	"os"

	"github.com/BrandonKowalski/navstack/pkg/navstack/constants"
	"github.com/BrandonKowalski/navstack/pkg/navstack/internal"
)

// InitLogging configures the loggers from cfg.
// NAVSTACK_LOG_LEVEL overrides cfg.Level, and NAVSTACK_DEBUG turns on debug
// logging for navstack internals. Call before the first navigation is created.
func InitLogging(cfg LogConfig) {
	if cfg.Path != "" {
		internal.SetLogPath(cfg.Path)
	}

	level := cfg.Level
	if env := os.Getenv(constants.LogLevelEnvVar); env != "" {
		level = env
	}
	if level == "" {
		level = constants.DefaultLogLevel
	}
	internal.SetRawLogLevel(level)

	if constants.IsDebug() {
		internal.SetInternalLogLevel(slog.LevelDebug)
	} else {
		internal.SetInternalLogLevel(slog.LevelError)
	}
}

// CloseLogging releases the log file, if any.
func CloseLogging() {
	internal.CloseLogger()
}

// SetLogPath sets the full path for the log file, including filename.
// Creates all necessary parent directories.
func SetLogPath(path string) {
	internal.SetLogPath(path)
}

// GetLogger returns the application logger for structured logging.
func GetLogger() *slog.Logger {
	return internal.GetLogger()
}

// SetLogLevel sets the minimum log level for the application logger.
func SetLogLevel(level slog.Level) {
	internal.SetLogLevel(level)
}

// SetRawLogLevel parses and sets the log level from a string (e.g., "debug", "info", "error").
func SetRawLogLevel(level string) {
	internal.SetRawLogLevel(level)
}

// SetInternalLogLevel sets the level of the logger navstack uses for its own
// diagnostics, such as sync passes.
func SetInternalLogLevel(level slog.Level) {
	internal.SetInternalLogLevel(level)
}
