package commonmark

import (
	"fmt"
	"strings"
)

// placeholderStore holds fully-rendered HTML fragments produced while
// scanning inline text, each referenced in the working string by a 3-byte
// sentinel: a NUL marker byte followed by two non-zero index bytes. Real
// CommonMark source text essentially never contains NUL, so the marker byte
// alone is enough to recognize a sentinel run without inspecting its
// payload bytes. See spec.md §9 ("Placeholder sentinels").
type placeholderStore struct {
	items []string
}

const placeholderSentinelWidth = 3

func newPlaceholderStore() *placeholderStore {
	return &placeholderStore{}
}

func (ps *placeholderStore) add(html string) string {
	ps.items = append(ps.items, html)
	idx := len(ps.items) - 1
	if idx > 255*255-1 {
		panic("commonmark: placeholder store overflow")
	}
	return string([]byte{0, byte(1 + idx/255), byte(1 + idx%255)})
}

func isPlaceholderSentinel(c byte) bool {
	return c == 0
}

// restore iteratively substitutes every sentinel run in s with its stored
// HTML, bounded to a small number of passes (spec.md §4.4 stage 11) since a
// stored fragment may itself contain sentinels from recursively processed
// link or image text.
func (ps *placeholderStore) restore(s string) string {
	for pass := 0; pass < 3; pass++ {
		if !strings.ContainsRune(s, 0) {
			return s
		}
		var b strings.Builder
		i := 0
		for i < len(s) {
			if s[i] == 0 && i+2 < len(s) {
				idx := int(s[i+1]-1)*255 + int(s[i+2]-1)
				if idx >= 0 && idx < len(ps.items) {
					b.WriteString(ps.items[idx])
					i += placeholderSentinelWidth
					continue
				}
			}
			b.WriteByte(s[i])
			i++
		}
		s = b.String()
	}
	return s
}

// Options configures Convert's behavior beyond bare CommonMark semantics.
type Options struct {
	// MaxNestingDepth is a nesting limit carried in Options; Convert fills in
	// a built-in default when it is 0. Neither the block parser nor the
	// inline parser reads it, so container and inline nesting is not limited.
	MaxNestingDepth int

	// UnsafeHTML is a no-op placeholder for a future raw-HTML filtering
	// hook; CommonMark itself defines no "safe mode", and the default
	// (false) always emits raw HTML verbatim per spec.md §7.
	UnsafeHTML bool
}

// renderInlineText is the entry point for one leaf block's raw text,
// implementing spec.md §4.4 end to end.
func renderInlineText(text string, refs ReferenceMap, opts Options) string {
	ps := newPlaceholderStore()
	step1 := scanLiteralStage(text, ps)
	step2 := processLinksAndImages(step1, refs, opts, ps)
	step3 := applyEmphasis(step2)
	step4 := applyLineBreaks(step3)
	return ps.restore(step4)
}

// scanLiteralStage implements spec.md §4.4 stages 1-5 in a single
// left-to-right pass: code spans, autolinks, raw HTML, backslash escapes,
// and character references are each replaced by a placeholder; everything
// else is copied through HTML-escaped.
func scanLiteralStage(s string, ps *placeholderStore) string {
	var b strings.Builder
	i := 0
	for i < len(s) {
		c := s[i]
		switch c {
		case '`':
			if html, n, ok := matchCodeSpan(s[i:]); ok {
				b.WriteString(ps.add(html))
				i += n
				continue
			}
			b.WriteByte('`')
			i++
		case '<':
			if html, n, ok := matchAutolinkOrEmail(s[i:]); ok {
				b.WriteString(ps.add(html))
				i += n
				continue
			}
			if n := matchRawHTML(s[i:]); n > 0 && !precededByBackslashOrParen(s, i) {
				b.WriteString(ps.add(rawHTMLVerbatim(s[i : i+n])))
				i += n
				continue
			}
			b.WriteString("&lt;")
			i++
		case '\\':
			if i+1 < len(s) && isASCIIPunct(s[i+1]) {
				b.WriteString(ps.add(escapeHTML(string(s[i+1]))))
				i += 2
				continue
			}
			b.WriteByte('\\')
			i++
		case '&':
			if decoded, n := decodeCharRef(s[i:]); n > 0 {
				b.WriteString(ps.add(escapeHTML(decoded)))
				i += n
				continue
			}
			b.WriteString("&amp;")
			i++
		case '>':
			b.WriteString("&gt;")
			i++
		case '"':
			b.WriteString("&quot;")
			i++
		default:
			b.WriteByte(c)
			i++
		}
	}
	return b.String()
}

// rawHTMLVerbatim applies the Open Question decision in DESIGN.md/§9:
// raw HTML, including the short comment forms <!--> and <!--->, is emitted
// verbatim with no late '>' re-escape.
func rawHTMLVerbatim(s string) string {
	return s
}

func precededByBackslashOrParen(s string, i int) bool {
	if i == 0 {
		return false
	}
	return s[i-1] == '\\' || s[i-1] == '('
}

func matchCodeSpan(s string) (string, int, bool) {
	n0 := 0
	for n0 < len(s) && s[n0] == '`' {
		n0++
	}
	rest := s[n0:]
	idx := 0
	for idx < len(rest) {
		if rest[idx] != '`' {
			idx++
			continue
		}
		j := idx
		for j < len(rest) && rest[j] == '`' {
			j++
		}
		if j-idx == n0 {
			return renderCodeSpanContent(rest[:idx]), n0 + j, true
		}
		idx = j
	}
	return "", 0, false
}

func renderCodeSpanContent(content string) string {
	content = strings.ReplaceAll(content, "\n", " ")
	if len(content) >= 2 && content[0] == ' ' && content[len(content)-1] == ' ' && strings.TrimSpace(content) != "" {
		content = content[1 : len(content)-1]
	}
	return "<code>" + escapeHTML(content) + "</code>"
}

func matchAutolinkOrEmail(s string) (string, int, bool) {
	if len(s) < 3 || s[0] != '<' {
		return "", 0, false
	}
	i := 1
	for i < len(s) {
		c := s[i]
		if c == '>' {
			break
		}
		if c == ' ' || c == '\t' || c == '\n' || c == '<' {
			return "", 0, false
		}
		i++
	}
	if i >= len(s) {
		return "", 0, false
	}
	body := s[1:i]
	n := i + 1

	if isAbsoluteURIBody(body) {
		href := encodeHref(body)
		text := escapeHTML(body)
		return fmt.Sprintf(`<a href="%s">%s</a>`, href, text), n, true
	}
	if isEmailAutolinkBody(body) {
		href := "mailto:" + encodeHref(body)
		text := escapeHTML(body)
		return fmt.Sprintf(`<a href="%s">%s</a>`, href, text), n, true
	}
	return "", 0, false
}

func isAbsoluteURIBody(body string) bool {
	idx := strings.IndexByte(body, ':')
	if idx < 2 {
		return false
	}
	scheme := body[:idx]
	if !isASCIILetter(scheme[0]) {
		return false
	}
	if len(scheme) > 32 {
		return false
	}
	for i := 1; i < len(scheme); i++ {
		c := scheme[i]
		if !isASCIILetter(c) && !isASCIIDigit(c) && c != '+' && c != '.' && c != '-' {
			return false
		}
	}
	return true
}

func isEmailAutolinkBody(body string) bool {
	at := strings.IndexByte(body, '@')
	if at <= 0 || at == len(body)-1 {
		return false
	}
	local, domain := body[:at], body[at+1:]
	for i := 0; i < len(local); i++ {
		c := local[i]
		if !isASCIILetter(c) && !isASCIIDigit(c) && !strings.ContainsRune(".!#$%&'*+/=?^_`{|}~-", rune(c)) {
			return false
		}
	}
	labels := strings.Split(domain, ".")
	if len(labels) < 1 {
		return false
	}
	for _, lbl := range labels {
		if lbl == "" || len(lbl) > 63 {
			return false
		}
		if lbl[0] == '-' || lbl[len(lbl)-1] == '-' {
			return false
		}
		for i := 0; i < len(lbl); i++ {
			c := lbl[i]
			if !isASCIILetter(c) && !isASCIIDigit(c) && c != '-' {
				return false
			}
		}
	}
	return true
}

func isASCIILetter(c byte) bool {
	return (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z')
}

func isASCIIDigit(c byte) bool {
	return c >= '0' && c <= '9'
}

// --- Links and images (spec.md §4.4 stages 6-8) ---

type bracketOpener struct {
	builderPos int
	textStart  int
	isImage    bool
}

// processLinksAndImages scans s for '[' / '![' ... ']' constructs, resolving
// each against a direct "(...)" tail, a "[label]"/"[]" reference tail, or a
// bare shortcut-reference lookup, in that priority. A link opener nested
// inside another still-open link opener is forbidden and falls back to
// literal brackets, per CommonMark's "no links in links" rule.
func processLinksAndImages(s string, refs ReferenceMap, opts Options, ps *placeholderStore) string {
	var b strings.Builder
	var stack []bracketOpener

	i := 0
	for i < len(s) {
		c := s[i]
		switch {
		case c == '!' && i+1 < len(s) && s[i+1] == '[':
			stack = append(stack, bracketOpener{builderPos: b.Len(), textStart: i + 2, isImage: true})
			b.WriteString("![")
			i += 2
		case c == '[':
			stack = append(stack, bracketOpener{builderPos: b.Len(), textStart: i + 1, isImage: false})
			b.WriteByte('[')
			i++
		case c == ']' && len(stack) > 0:
			k := len(stack) - 1
			opener := stack[k]
			linkText := s[opener.textStart:i]

			nestedInLink := false
			for m := 0; m < k; m++ {
				if !stack[m].isImage {
					nestedInLink = true
					break
				}
			}

			if !opener.isImage && nestedInLink {
				stack = stack[:k]
				b.WriteByte(']')
				i++
				continue
			}

			html, consumed, matched := matchLinkTail(s[i+1:], linkText, refs, opts, ps, opener.isImage)
			if matched {
				stack = stack[:k]
				built := b.String()[:opener.builderPos]
				b.Reset()
				b.WriteString(built)
				b.WriteString(ps.add(html))
				i = i + 1 + consumed
				continue
			}
			stack = stack[:k]
			b.WriteByte(']')
			i++
		default:
			b.WriteByte(c)
			i++
		}
	}
	return b.String()
}

func matchLinkTail(tail, linkText string, refs ReferenceMap, opts Options, ps *placeholderStore, isImage bool) (html string, consumed int, ok bool) {
	if strings.HasPrefix(tail, "(") {
		return matchDirectTail(tail, linkText, ps, isImage)
	}
	if strings.HasPrefix(tail, "[") {
		end := strings.IndexByte(tail, ']')
		if end < 0 {
			return "", 0, false
		}
		label := tail[1:end]
		if label == "" {
			label = linkText
		}
		if def, found := lookupReference(refs, label); found {
			return buildLinkOrImageHTML(linkText, def.Destination, def.Title, def.TitlePresent, ps, isImage), end + 1, true
		}
		return "", 0, false
	}
	if def, found := lookupReference(refs, linkText); found {
		return buildLinkOrImageHTML(linkText, def.Destination, def.Title, def.TitlePresent, ps, isImage), 0, true
	}
	return "", 0, false
}

func lookupReference(refs ReferenceMap, label string) (LinkDefinition, bool) {
	def, ok := refs[normalizeLabel(label)]
	return def, ok
}

func matchDirectTail(tail, linkText string, ps *placeholderStore, isImage bool) (string, int, bool) {
	i := 1 // past '('
	i = skipLinkWhitespace(tail, i)
	if i < len(tail) && tail[i] == ')' {
		return buildLinkOrImageHTML(linkText, "", "", false, ps, isImage), i + 1, true
	}
	dest, n := scanLinkDestination(tail[i:])
	if n == 0 {
		return "", 0, false
	}
	i += n
	wsStart := i
	i = skipLinkWhitespace(tail, i)
	title, titlePresent := "", false
	const quot = "&quot;" // scanLiteralStage has already escaped a literal '"'
	if i > wsStart && i < len(tail) && (tail[i] == '"' || tail[i] == '\'' || tail[i] == '(' || strings.HasPrefix(tail[i:], quot)) {
		var t string
		var n2 int
		var closed bool
		if strings.HasPrefix(tail[i:], quot) {
			if end := strings.Index(tail[i+len(quot):], quot); end >= 0 {
				t, n2, closed = tail[i+len(quot):i+len(quot)+end], end+2*len(quot), true
			}
		} else {
			t, n2, closed = scanLinkTitle(tail[i:])
		}
		if closed {
			i += n2
			title, titlePresent = decodeCharRefs(unescapeBackslashes(t)), true
		}
	}
	i = skipLinkWhitespace(tail, i)
	if i >= len(tail) || tail[i] != ')' {
		return "", 0, false
	}
	return buildLinkOrImageHTML(linkText, decodeLinkDestination(dest), title, titlePresent, ps, isImage), i + 1, true
}

func buildLinkOrImageHTML(linkText, dest, title string, titlePresent bool, ps *placeholderStore, isImage bool) string {
	href := encodeHref(dest)
	var titleAttr string
	if titlePresent {
		titleAttr = ` title="` + escapeHTML(title) + `"`
	}
	if isImage {
		alt := stripTags(ps.restore(applyEmphasis(linkText)))
		return fmt.Sprintf(`<img src="%s" alt="%s"%s />`, href, alt, titleAttr)
	}
	body := applyEmphasis(linkText)
	return fmt.Sprintf(`<a href="%s"%s>%s</a>`, href, titleAttr, body)
}

// stripTags removes every "<...>" span from s, used to compute an image's
// alt attribute from its recursively rendered contents.
func stripTags(s string) string {
	var b strings.Builder
	depth := 0
	for i := 0; i < len(s); i++ {
		switch s[i] {
		case '<':
			depth++
		case '>':
			if depth > 0 {
				depth--
			}
		default:
			if depth == 0 {
				b.WriteByte(s[i])
			}
		}
	}
	return b.String()
}

// --- Line breaks (spec.md §4.4 stage 10) ---

func applyLineBreaks(s string) string {
	lines := strings.Split(s, "\n")
	for i := 0; i < len(lines)-1; i++ {
		line := lines[i]
		switch {
		case strings.HasSuffix(line, "\\"):
			lines[i] = line[:len(line)-1] + "<br />"
		case trailingSpaceCount(line) >= 2:
			lines[i] = strings.TrimRight(line, " \t") + "<br />"
		default:
			lines[i] = strings.TrimRight(line, " \t")
		}
	}
	if n := len(lines); n > 0 {
		lines[n-1] = strings.TrimRight(lines[n-1], " \t")
	}
	return strings.Join(lines, "\n")
}

func trailingSpaceCount(s string) int {
	n := 0
	for i := len(s) - 1; i >= 0 && s[i] == ' '; i-- {
		n++
	}
	return n
}
