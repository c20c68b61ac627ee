package config

import "os"

// Default values for settings.
const (
	DefaultOutput     = OutputText
	DefaultLogLevel   = "warn"
	DefaultMaxSizeMB  = 100
	DefaultMaxBackups = 3
	DefaultMaxAgeDays = 30
)

// Environment variable names.
const (
	// EnvCaseInsensitive switches to case-insensitive matching when set to
	// any value, including the empty string.
	EnvCaseInsensitive = "CASE_INSENSITIVE"
	EnvOutput          = "MINIGREP_OUTPUT"
)

// DefaultSettings returns settings with sensible defaults.
func DefaultSettings() *Settings {
	return &Settings{
		Output: DefaultOutput,
		Log: LogSettings{
			Level:      DefaultLogLevel,
			MaxSizeMB:  DefaultMaxSizeMB,
			MaxBackups: DefaultMaxBackups,
			MaxAgeDays: DefaultMaxAgeDays,
			Compress:   true,
		},
	}
}

// applyEnvironmentOverrides applies environment variable overrides to the settings.
func (s *Settings) applyEnvironmentOverrides() {
	if output := os.Getenv(EnvOutput); output != "" {
		s.Output = OutputFormat(output)
	}
}
