// Package constants defines shared constants and environment variable names
// used throughout navstack.
package constants

import "os"

// DebugEnvVar turns on debug logging for navstack internals when set to any
// non-empty value.
const DebugEnvVar = "NAVSTACK_DEBUG"

// LogLevelEnvVar overrides the configured application log level.
const LogLevelEnvVar = "NAVSTACK_LOG_LEVEL"

// ConfigPathEnvVar points the CLI at a navigation config file when --config
// is not given.
const ConfigPathEnvVar = "NAVSTACK_CONFIG"

// DefaultLogLevel is used when neither the config nor the environment name one.
const DefaultLogLevel = "info"

// IsDebug returns true if NAVSTACK_DEBUG is set.
func IsDebug() bool {
	return os.Getenv(DebugEnvVar) != ""
}
