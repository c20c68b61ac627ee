package output

import (
	"context"
	"io"
)

// Formatter renders search results in a specific format.
type Formatter interface {
	// Format renders the report to the given writer.
	Format(ctx context.Context, report *Report, w io.Writer) error

	// Name returns the format name (text, json).
	Name() string
}

// FormatOptions controls formatter behavior.
type FormatOptions struct {
	// LineNumber prefixes each line with its 1-based line number.
	LineNumber bool

	// Count prints only the number of matching lines.
	Count bool
}
