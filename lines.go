package commonmark

import "strings"

const tabStop = 4

// normalizeNewlines rewrites CRLF and lone CR to LF, per the §3 Data Model
// requirement that all processing happens on LF-delimited lines.
func normalizeNewlines(s string) string {
	if !strings.ContainsAny(s, "\r") {
		return s
	}
	var b strings.Builder
	b.Grow(len(s))
	for i := 0; i < len(s); i++ {
		c := s[i]
		if c == '\r' {
			b.WriteByte('\n')
			if i+1 < len(s) && s[i+1] == '\n' {
				i++
			}
			continue
		}
		b.WriteByte(c)
	}
	return b.String()
}

// splitLines splits a normalized (LF-only) document into lines, dropping a
// single trailing empty line caused by a final newline.
func splitLines(s string) []string {
	if s == "" {
		return nil
	}
	lines := strings.Split(s, "\n")
	if n := len(lines); n > 0 && lines[n-1] == "" {
		lines = lines[:n-1]
	}
	return lines
}

func isBlankLine(s string) bool {
	return strings.TrimSpace(s) == ""
}

// indentWidth counts leading whitespace columns, where a space counts 1 and a
// tab advances to the next multiple of tabStop.
func indentWidth(s string) int {
	w := 0
	for i := 0; i < len(s); i++ {
		switch s[i] {
		case ' ':
			w++
		case '\t':
			w += tabStop - w%tabStop
		default:
			return w
		}
	}
	return w
}

// leadingNonSpace returns the byte offset of the first non-whitespace rune,
// or len(s) if the line is entirely whitespace.
func leadingNonSpace(s string) int {
	for i := 0; i < len(s); i++ {
		if s[i] != ' ' && s[i] != '\t' {
			return i
		}
	}
	return len(s)
}

// stripColumns removes the first n columns of indentation from s, expanding
// tabs as needed and preserving any indentation beyond n as literal spaces.
func stripColumns(s string, n int) string {
	if n <= 0 {
		return s
	}
	col := 0
	i := 0
	for i < len(s) && col < n {
		switch s[i] {
		case ' ':
			col++
		case '\t':
			col += tabStop - col%tabStop
		default:
			// Ran out of whitespace before reaching n columns; nothing left to strip.
			return s[i:]
		}
		i++
	}
	if col > n {
		// The last tab crossed the n-column boundary: keep the overshoot as spaces.
		return strings.Repeat(" ", col-n) + s[i:]
	}
	return s[i:]
}
