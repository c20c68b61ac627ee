// Package config builds the search configuration from command-line arguments
// and loads the optional settings file that controls output and logging.
package config

// Config is the input to a single search run. It is not modified after New
// returns it.
type Config struct {
	Query         string
	FilePath      string
	CaseSensitive bool
}

// LookupFunc reports the value of an environment variable and whether it is
// set. os.LookupEnv satisfies it.
type LookupFunc func(key string) (string, bool)

// OutputFormat names a match formatter.
type OutputFormat string

const (
	OutputText OutputFormat = "text"
	OutputJSON OutputFormat = "json"
)

// Settings is the optional YAML settings file.
type Settings struct {
	// Output selects the formatter (text or json).
	Output OutputFormat `yaml:"output"`

	// LineNumber prefixes each matching line with its 1-based line number.
	LineNumber bool `yaml:"line_number"`

	// Count prints only the number of matching lines.
	Count bool `yaml:"count"`

	// UnicodeFold uses full Unicode case folding in case-insensitive mode.
	UnicodeFold bool `yaml:"unicode_fold"`

	Log LogSettings `yaml:"log"`
}

// LogSettings configures diagnostic logging.
type LogSettings struct {
	// Level is a zap level name (debug, info, warn, error).
	Level string `yaml:"level"`

	// File, when set, receives a copy of every log record with rotation.
	File       string `yaml:"file,omitempty"`
	MaxSizeMB  int    `yaml:"max_size_mb,omitempty"`
	MaxBackups int    `yaml:"max_backups,omitempty"`
	MaxAgeDays int    `yaml:"max_age_days,omitempty"`
	Compress   bool   `yaml:"compress,omitempty"`
}
