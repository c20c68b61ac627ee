package output

import (
	"bufio"
	"context"
	"fmt"
	"io"
)

// TextFormatter writes one matching line per output line, with no decoration
// unless line numbers or count mode are enabled.
type TextFormatter struct {
	opts FormatOptions
}

// NewTextFormatter creates a new text formatter with the given options.
func NewTextFormatter(opts FormatOptions) *TextFormatter {
	return &TextFormatter{opts: opts}
}

// Name returns the format name.
func (f *TextFormatter) Name() string {
	return "text"
}

// Format renders the report as text.
func (f *TextFormatter) Format(ctx context.Context, report *Report, w io.Writer) error {
	if f.opts.Count {
		_, err := fmt.Fprintln(w, report.Summary.Matches)
		return err
	}

	bw := bufio.NewWriter(w)
	for _, m := range report.Matches {
		if f.opts.LineNumber {
			fmt.Fprintf(bw, "%d:", m.LineNum)
		}
		bw.WriteString(m.Line)
		bw.WriteByte('\n')
	}
	return bw.Flush()
}
