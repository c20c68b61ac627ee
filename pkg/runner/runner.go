// Package runner executes one search: load the document, filter it and write
// the matches.
package runner

import (
	"context"
	"fmt"
	"io"

	"go.uber.org/zap"

	"github.com/ccollicutt/minigrep/pkg/config"
	"github.com/ccollicutt/minigrep/pkg/document"
	"github.com/ccollicutt/minigrep/pkg/output"
	"github.com/ccollicutt/minigrep/pkg/search"
)

// Option configures Run.
type Option func(*options)

type options struct {
	formatter   output.Formatter
	unicodeFold bool
	logger      *zap.Logger
}

// WithFormatter sets the formatter used to write matches. The default writes
// each matching line followed by a newline.
func WithFormatter(f output.Formatter) Option {
	return func(o *options) {
		o.formatter = f
	}
}

// WithUnicodeFold makes case-insensitive searches use Unicode case folding.
// It has no effect on case-sensitive searches.
func WithUnicodeFold(enabled bool) Option {
	return func(o *options) {
		o.unicodeFold = enabled
	}
}

// WithLogger sets the diagnostic logger.
func WithLogger(l *zap.Logger) Option {
	return func(o *options) {
		o.logger = l
	}
}

// Run searches the file named by cfg and writes the matches to w.
// Read failures wrap document.ErrIo. Zero matches is not an error.
func Run(ctx context.Context, cfg *config.Config, w io.Writer, opts ...Option) (*output.Report, error) {
	o := &options{
		formatter: output.NewTextFormatter(output.FormatOptions{}),
		logger:    zap.NewNop(),
	}
	for _, opt := range opts {
		opt(o)
	}

	doc, err := document.Load(ctx, cfg.FilePath)
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", cfg.FilePath, err)
	}

	mode := selectMode(cfg.CaseSensitive, o.unicodeFold)
	o.logger.Debug("searching",
		zap.String("query", cfg.Query),
		zap.String("file", doc.Path),
		zap.String("mode", string(mode)),
		zap.Int("bytes", len(doc.Contents)),
	)

	matches := search.Matches(mode, cfg.Query, doc.Contents)
	report := output.NewReport(cfg.Query, doc.Path, mode, len(doc.Lines()), matches)

	if err := o.formatter.Format(ctx, report, w); err != nil {
		return nil, fmt.Errorf("writing matches: %w", err)
	}

	o.logger.Debug("search complete",
		zap.Int("lines", report.Summary.Lines),
		zap.Int("matches", report.Summary.Matches),
	)

	return report, nil
}

func selectMode(caseSensitive, unicodeFold bool) search.Mode {
	switch {
	case caseSensitive:
		return search.ModeSensitive
	case unicodeFold:
		return search.ModeFold
	default:
		return search.ModeInsensitive
	}
}
