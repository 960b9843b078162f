// Package internal contains infrastructure shared by the navstack packages.
// Types and functions in this package are not part of the public API.
package internal

import (
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"sync"
)

var (
	logFile *os.File
	logPath string

	setupOnce sync.Once
	output    io.Writer

	loggerOnce sync.Once
	logger     *slog.Logger
	levelVar   *slog.LevelVar

	internalLoggerOnce sync.Once
	internalLogger     *slog.Logger
	internalLevelVar   *slog.LevelVar
)

// SetLogPath sets the full path for the log file, including filename.
// Creates all necessary parent directories. Must be called before the first
// logger is requested.
func SetLogPath(path string) {
	logPath = path
}

func setup() {
	setupOnce.Do(func() {
		output = os.Stderr
		if logPath == "" {
			return
		}

		if err := os.MkdirAll(filepath.Dir(logPath), 0755); err != nil {
			return
		}

		var err error
		logFile, err = os.OpenFile(logPath, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0666)
		if err != nil {
			// Can't open log file, fall back to stderr only
			return
		}

		output = io.MultiWriter(os.Stderr, logFile)
	})
}

func newLogger(level *slog.LevelVar) *slog.Logger {
	setup()
	handler := slog.NewJSONHandler(output, &slog.HandlerOptions{
		Level:     level,
		AddSource: false,
	})
	return slog.New(handler)
}

func GetLogger() *slog.Logger {
	loggerOnce.Do(func() {
		levelVar = &slog.LevelVar{}
		logger = newLogger(levelVar)
	})
	return logger
}

// GetInternalLogger returns the logger used by navstack itself.
// It starts at error level so library users are not flooded.
func GetInternalLogger() *slog.Logger {
	internalLoggerOnce.Do(func() {
		internalLevelVar = &slog.LevelVar{}
		internalLevelVar.Set(slog.LevelError)
		internalLogger = newLogger(internalLevelVar)
	})
	return internalLogger
}

func SetLogLevel(level slog.Level) {
	GetLogger()
	levelVar.Set(level)
}

func SetInternalLogLevel(level slog.Level) {
	GetInternalLogger()
	internalLevelVar.Set(level)
}

// ParseLevel maps "debug", "info", "warn"/"warning" and "error" to slog
// levels. Anything else is info.
func ParseLevel(rawLevel string) slog.Level {
	switch strings.ToLower(strings.TrimSpace(rawLevel)) {
	case "debug":
		return slog.LevelDebug
	case "info":
		return slog.LevelInfo
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

func SetRawLogLevel(rawLevel string) {
	SetLogLevel(ParseLevel(rawLevel))
}

func CloseLogger() {
	if logFile != nil {
		logFile.Close()
	}
}
