// Package search filters the lines of a text buffer by substring match.
//
// All filters are pure: they never fail, never read the environment and return
// slices of the input buffer rather than copies.
package search

import (
	"strings"

	"golang.org/x/text/cases"
)

// Mode selects how a line is compared against the query.
type Mode string

const (
	// ModeSensitive compares the original bytes.
	ModeSensitive Mode = "sensitive"
	// ModeInsensitive lowercases query and line with strings.ToLower.
	ModeInsensitive Mode = "insensitive"
	// ModeFold compares Unicode case-folded forms.
	ModeFold Mode = "fold"
)

// Match is a matching line with its 1-based position in the document.
type Match struct {
	LineNum int    `json:"line_num"`
	Line    string `json:"line"`
}

// Search returns every line of contents that contains query, in document order.
// An empty query matches every line.
func Search(query, contents string) []string {
	return lines(Matches(ModeSensitive, query, contents))
}

// SearchCaseInsensitive is Search with both sides lowercased for the comparison.
// The returned lines keep their original case.
//
// Lowercasing is rune by rune and locale-independent, so foldings that change
// the number of runes (German ß, for example) are not treated as equal.
func SearchCaseInsensitive(query, contents string) []string {
	return lines(Matches(ModeInsensitive, query, contents))
}

// SearchFold is SearchCaseInsensitive using full Unicode case folding.
func SearchFold(query, contents string) []string {
	return lines(Matches(ModeFold, query, contents))
}

// Matches runs the filter for mode and returns the matching lines with their
// line numbers. Unknown modes behave as ModeSensitive.
func Matches(mode Mode, query, contents string) []Match {
	contains := predicate(mode, query)

	result := []Match{}
	for i, line := range Lines(contents) {
		if contains(line) {
			result = append(result, Match{LineNum: i + 1, Line: line})
		}
	}
	return result
}

func predicate(mode Mode, query string) func(string) bool {
	switch mode {
	case ModeInsensitive:
		query = strings.ToLower(query)
		return func(line string) bool {
			return strings.Contains(strings.ToLower(line), query)
		}
	case ModeFold:
		// A Caser keeps state between calls and is not shared outside this scan.
		folder := cases.Fold()
		query = folder.String(query)
		return func(line string) bool {
			return strings.Contains(folder.String(line), query)
		}
	default:
		return func(line string) bool {
			return strings.Contains(line, query)
		}
	}
}

// Lines splits contents on '\n'. A '\r' immediately before the newline is
// dropped, and a final newline does not start an extra empty line.
func Lines(contents string) []string {
	if contents == "" {
		return nil
	}
	terminated := strings.HasSuffix(contents, "\n")
	contents = strings.TrimSuffix(contents, "\n")

	out := strings.Split(contents, "\n")
	for i, line := range out {
		if i == len(out)-1 && !terminated {
			break
		}
		out[i] = strings.TrimSuffix(line, "\r")
	}
	return out
}

func lines(matches []Match) []string {
	out := make([]string, 0, len(matches))
	for _, m := range matches {
		out = append(out, m.Line)
	}
	return out
}
