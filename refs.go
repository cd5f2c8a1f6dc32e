package commonmark

import "strings"

// LinkDefinition is the destination/title pair recorded for one reference
// label, mirroring the teacher's zombiezen.com/go/commonmark LinkDefinition.
type LinkDefinition struct {
	Destination  string
	Title        string
	TitlePresent bool
}

// ReferenceMap maps a normalized label (see normalizeLabel) to the first
// definition seen for it in source order.
type ReferenceMap map[string]LinkDefinition

// extractReferences implements spec.md §4.2: a single forward pass over
// lines that pulls out legal link reference definitions, folds them into a
// reference map, and returns the remaining lines for the block parser. It
// tracks just enough block-start context (fenced code, indented code,
// block-quote prefix, list-item body) to avoid starting a definition inside
// a region that would swallow the leading '['.
func extractReferences(lines []string) ([]string, ReferenceMap) {
	refs := ReferenceMap{}
	out := make([]string, 0, len(lines))

	prevBlank := true
	var fenceChar byte
	var fenceLen int
	inFence := false

	for i := 0; i < len(lines); {
		line := lines[i]

		if inFence {
			out = append(out, line)
			if matchFencedClose(line, fenceChar, fenceLen) {
				inFence = false
			}
			prevBlank = false
			i++
			continue
		}
		if ch, n, _, ok := matchFencedOpen(line); ok {
			fenceChar, fenceLen, inFence = ch, n, true
			out = append(out, line)
			prevBlank = false
			i++
			continue
		}
		if indentWidth(line) >= 4 {
			out = append(out, line)
			prevBlank = isBlankLine(line)
			i++
			continue
		}

		if label, destTitle, consumed, ok := tryParseReferenceDefinition(lines, i); ok {
			norm := normalizeLabel(label)
			if _, exists := refs[norm]; norm != "" && !exists {
				refs[norm] = destTitle
			}
			i += consumed
			prevBlank = false
			continue
		}

		out = append(out, line)
		prevBlank = isBlankLine(line)
		i++
	}

	return out, refs
}

// tryParseReferenceDefinition attempts to parse a (possibly multi-line) link
// reference definition starting at lines[i]. It returns the label text
// (unnormalized), the resolved definition, the number of source lines
// consumed, and whether a definition was found at all.
func tryParseReferenceDefinition(lines []string, i int) (label string, def LinkDefinition, consumed int, ok bool) {
	joined := lines[i]
	maxJoin := 1
	for {
		lbl, dest, title, titlePresent, rest, matched := parseReferenceFromText(joined)
		if matched && rest == "" {
			return lbl, LinkDefinition{Destination: dest, Title: title, TitlePresent: titlePresent}, maxJoin, true
		}
		if i+maxJoin >= len(lines) || isBlankLine(lines[i+maxJoin]) {
			break
		}
		joined += "\n" + lines[i+maxJoin]
		maxJoin++
	}
	return "", LinkDefinition{}, 0, false
}

// parseReferenceFromText parses "[label]: dest (title)?" possibly spanning
// embedded newlines in text, returning any unconsumed trailing text (which
// must be all-whitespace for the caller to accept the match).
func parseReferenceFromText(text string) (label, dest, title string, titlePresent bool, rest string, ok bool) {
	s := strings.TrimLeft(text, " \t")
	if indentWidth(text[:len(text)-len(s)]) > 3 {
		return "", "", "", false, "", false
	}
	if len(s) == 0 || s[0] != '[' {
		return "", "", "", false, "", false
	}
	lbl, n := scanLabel(s[1:])
	if n < 0 {
		return "", "", "", false, "", false
	}
	pos := 1 + n
	if pos >= len(s) || s[pos] != ':' {
		return "", "", "", false, "", false
	}
	pos++
	pos = skipLinkWhitespace(s, pos)
	dst, n2 := scanLinkDestination(s[pos:])
	if n2 == 0 {
		return "", "", "", false, "", false
	}
	pos += n2

	afterDest := pos
	wsEnd := skipLinkWhitespace(s, pos)
	hasGapBeforeTitle := wsEnd > afterDest || (afterDest < len(s) && s[afterDest] == '\n')

	if wsEnd < len(s) && hasGapBeforeTitle && (s[wsEnd] == '"' || s[wsEnd] == '\'' || s[wsEnd] == '(') {
		t, n3, closed := scanLinkTitle(s[wsEnd:])
		if closed {
			afterTitle := wsEnd + n3
			tail := s[afterTitle:]
			if isAllWhitespaceThroughLineEnd(tail) {
				return lbl, decodeLinkDestination(dst), decodeCharRefs(unescapeBackslashes(t)), true, "", true
			}
		}
	}

	tail := s[pos:]
	if isAllWhitespaceThroughLineEnd(tail) {
		return lbl, decodeLinkDestination(dst), "", false, "", true
	}
	return "", "", "", false, "", false
}

func isAllWhitespaceThroughLineEnd(s string) bool {
	return strings.TrimRight(s, " \t\n\r") == ""
}

func skipLinkWhitespace(s string, i int) int {
	for i < len(s) {
		switch s[i] {
		case ' ', '\t', '\n', '\r':
			i++
			continue
		}
		break
	}
	return i
}

// scanLabel scans the inside of "[...]" honoring backslash escapes and
// rejecting nested unescaped brackets. Returns the raw label text and the
// number of bytes consumed up to and including the closing ']', or -1.
func scanLabel(s string) (string, int) {
	var b strings.Builder
	i := 0
	for i < len(s) {
		c := s[i]
		switch c {
		case ']':
			if b.Len() == 0 {
				return "", -1
			}
			return b.String(), i + 1
		case '[':
			return "", -1
		case '\\':
			if i+1 < len(s) && isASCIIPunct(s[i+1]) {
				b.WriteByte(c)
				b.WriteByte(s[i+1])
				i += 2
				continue
			}
			b.WriteByte(c)
			i++
		default:
			b.WriteByte(c)
			i++
		}
		if i > 999 {
			return "", -1
		}
	}
	return "", -1
}

// scanLinkDestination scans either an angle-bracketed "<...>" destination or
// a bare run of non-whitespace characters with balanced parens.
func scanLinkDestination(s string) (string, int) {
	if s == "" {
		return "", 0
	}
	if s[0] == '<' {
		i := 1
		for i < len(s) {
			switch s[i] {
			case '>':
				return s[1:i], i + 1
			case '\\':
				i += 2
				continue
			case '\n', '<':
				return "", 0
			}
			i++
		}
		return "", 0
	}
	depth := 0
	i := 0
	for i < len(s) {
		c := s[i]
		switch {
		case c == '\\' && i+1 < len(s) && isASCIIPunct(s[i+1]):
			i += 2
			continue
		case c == '(':
			depth++
		case c == ')':
			if depth == 0 {
				return s[:i], i
			}
			depth--
		case c == ' ' || c == '\t' || c == '\n' || c == '\r':
			return s[:i], i
		case c < 0x20:
			return s[:i], i
		}
		i++
	}
	if i == 0 {
		return "", 0
	}
	return s[:i], i
}

// scanLinkTitle scans a title in "...", '...' or (...) form, honoring
// backslash escapes, returning its raw (un-decoded) interior text.
func scanLinkTitle(s string) (string, int, bool) {
	if s == "" {
		return "", 0, false
	}
	open := s[0]
	var close byte
	switch open {
	case '"':
		close = '"'
	case '\'':
		close = '\''
	case '(':
		close = ')'
	default:
		return "", 0, false
	}
	i := 1
	for i < len(s) {
		c := s[i]
		switch {
		case c == '\\' && i+1 < len(s) && isASCIIPunct(s[i+1]):
			i += 2
			continue
		case c == close:
			return s[1:i], i + 1, true
		case open == '(' && c == '(':
			return "", 0, false
		}
		i++
	}
	return "", 0, false
}

func isASCIIPunct(c byte) bool {
	switch {
	case c >= '!' && c <= '/':
		return true
	case c >= ':' && c <= '@':
		return true
	case c >= '[' && c <= '`':
		return true
	case c >= '{' && c <= '~':
		return true
	}
	return false
}

func decodeLinkDestination(s string) string {
	return decodeCharRefs(unescapeBackslashes(s))
}

func unescapeBackslashes(s string) string {
	if !strings.ContainsRune(s, '\\') {
		return s
	}
	var b strings.Builder
	b.Grow(len(s))
	for i := 0; i < len(s); i++ {
		if s[i] == '\\' && i+1 < len(s) && isASCIIPunct(s[i+1]) {
			b.WriteByte(s[i+1])
			i++
			continue
		}
		b.WriteByte(s[i])
	}
	return b.String()
}
