package domain

import (
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
	m "sift.dev/pkg/sift/internal/model"
)

// Matcher finds the lines of a text that contain a query.
type Matcher interface {
	// Match returns every line of contents containing query, in file order.
	// Containment is a literal substring test. An empty query matches every line.
	// With ignoreCase both operands are lowercased; no wider case folding applies.
	Match(query, contents string, ignoreCase bool) []m.MatchLine
}

type matcher struct{}

// NewMatcher constructs the default literal substring Matcher.
func NewMatcher() Matcher {
	return &matcher{}
}

func (mt *matcher) Match(query, contents string, ignoreCase bool) []m.MatchLine {
	if ignoreCase {
		// A Caser keeps internal state and must not be shared between goroutines.
		lower := cases.Lower(language.Und)
		lowerQuery := lower.String(query)

		return scanLines(contents, func(line string) bool {
			return strings.Contains(lower.String(line), lowerQuery)
		})
	}

	return scanLines(contents, func(line string) bool {
		return strings.Contains(line, query)
	})
}

// scanLines walks contents top to bottom and keeps the lines accepted by keep.
// A line ends at '\n'; a trailing '\r' is dropped and a final terminator does
// not produce an extra empty line.
func scanLines(contents string, keep func(line string) bool) []m.MatchLine {
	var matches []m.MatchLine

	lineNumber := 0

	for line := range strings.Lines(contents) {
		line = strings.TrimSuffix(line, "\n")
		line = strings.TrimSuffix(line, "\r")

		if keep(line) {
			matches = append(matches, m.MatchLine{
				LineNumber: lineNumber,
				LineText:   line,
			})
		}

		lineNumber++
	}

	return matches
}
