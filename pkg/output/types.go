// Package output provides formatting for search results.
package output

import (
	"github.com/ccollicutt/minigrep/pkg/search"
)

// Report is the complete result of one search.
type Report struct {
	Query         string         `json:"query"`
	File          string         `json:"file"`
	CaseSensitive bool           `json:"case_sensitive"`
	Mode          search.Mode    `json:"mode"`
	Matches       []search.Match `json:"matches"`
	Summary       Summary        `json:"summary"`
}

// Summary provides aggregate counts.
type Summary struct {
	// Lines is the number of lines in the document.
	Lines int `json:"lines"`

	// Matches is the number of matching lines.
	Matches int `json:"matches"`
}

// NewReport creates a Report for a finished search.
func NewReport(query, file string, mode search.Mode, lines int, matches []search.Match) *Report {
	if matches == nil {
		matches = []search.Match{}
	}
	return &Report{
		Query:         query,
		File:          file,
		CaseSensitive: mode == search.ModeSensitive,
		Mode:          mode,
		Matches:       matches,
		Summary: Summary{
			Lines:   lines,
			Matches: len(matches),
		},
	}
}

// Lines returns the matched lines in document order.
func (r *Report) Lines() []string {
	out := make([]string, 0, len(r.Matches))
	for _, m := range r.Matches {
		out = append(out, m.Line)
	}
	return out
}
