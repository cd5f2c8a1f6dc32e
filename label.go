package commonmark

import (
	"strings"

	"golang.org/x/text/cases"
)

// labelFolder performs Unicode case folding for reference-label
// comparison. golang.org/x/text/cases.Fold maps ß (U+00DF) to "ss", matching
// the mapping spec.md §4.1 calls out explicitly.
var labelFolder = cases.Fold()

// normalizeLabel case-folds, collapses interior whitespace runs to a single
// space, and trims a reference label for lookup in a reference map.
func normalizeLabel(s string) string {
	s = labelFolder.String(s)
	s = collapseWhitespace(s)
	return strings.TrimSpace(s)
}

func collapseWhitespace(s string) string {
	var b strings.Builder
	b.Grow(len(s))
	inSpace := false
	for _, r := range s {
		if isUnicodeSpace(r) {
			if !inSpace {
				b.WriteByte(' ')
				inSpace = true
			}
			continue
		}
		inSpace = false
		b.WriteRune(r)
	}
	return b.String()
}

func isUnicodeSpace(r rune) bool {
	switch r {
	case ' ', '\t', '\n', '\v', '\f', '\r':
		return true
	}
	return false
}
