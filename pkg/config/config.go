package config

import (
	"context"
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// ErrMissingArgument is returned when the query or the file path is absent.
var ErrMissingArgument = errors.New("missing argument")

// New builds a Config from the positional arguments that follow the program
// name. The first is the query and the second the file path; any further
// arguments are ignored.
func New(args []string, caseInsensitive bool) (*Config, error) {
	if len(args) < 1 {
		return nil, fmt.Errorf("%w: didn't get a query string", ErrMissingArgument)
	}
	if len(args) < 2 {
		return nil, fmt.Errorf("%w: didn't get a file path", ErrMissingArgument)
	}

	return &Config{
		Query:         args[0],
		FilePath:      args[1],
		CaseSensitive: !caseInsensitive,
	}, nil
}

// FromEnv is New with case sensitivity taken from CASE_INSENSITIVE through
// lookup. Only presence matters: an unset variable means case-sensitive, a set
// one (even to "" or "0") means case-insensitive.
func FromEnv(args []string, lookup LookupFunc) (*Config, error) {
	return New(args, CaseInsensitiveFromEnv(lookup))
}

// CaseInsensitiveFromEnv reports whether CASE_INSENSITIVE is set.
func CaseInsensitiveFromEnv(lookup LookupFunc) bool {
	_, set := lookup(EnvCaseInsensitive)
	return set
}

// LoadSettings reads and validates a settings file. An empty path yields the
// defaults with environment overrides applied.
func LoadSettings(_ context.Context, path string) (*Settings, error) {
	if path == "" {
		s := DefaultSettings()
		s.applyEnvironmentOverrides()
		if err := ValidateSettings(s); err != nil {
			return nil, fmt.Errorf("validating settings: %w", err)
		}
		return s, nil
	}

	data, err := os.ReadFile(path) // #nosec G304 -- user-provided settings path is expected
	if err != nil {
		return nil, fmt.Errorf("reading settings file: %w", err)
	}

	s := DefaultSettings()
	if err := yaml.Unmarshal(data, s); err != nil {
		return nil, fmt.Errorf("parsing settings file: %w", err)
	}

	s.applyEnvironmentOverrides()

	if err := ValidateSettings(s); err != nil {
		return nil, fmt.Errorf("validating settings: %w", err)
	}

	return s, nil
}

// ValidateSettings checks settings for errors and fills in zero-valued limits.
func ValidateSettings(s *Settings) error {
	switch s.Output {
	case OutputText, OutputJSON:
	case "":
		s.Output = DefaultOutput
	default:
		return fmt.Errorf("output: invalid format %q (must be text or json)", s.Output)
	}

	switch s.Log.Level {
	case "debug", "info", "warn", "error":
	case "":
		s.Log.Level = DefaultLogLevel
	default:
		return fmt.Errorf("log.level: invalid level %q (must be debug, info, warn, or error)", s.Log.Level)
	}

	if s.Log.MaxSizeMB < 0 || s.Log.MaxBackups < 0 || s.Log.MaxAgeDays < 0 {
		return errors.New("log: rotation limits must not be negative")
	}
	if s.Log.MaxSizeMB == 0 {
		s.Log.MaxSizeMB = DefaultMaxSizeMB
	}

	return nil
}
