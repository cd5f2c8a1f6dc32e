package commonmark

import (
	"strings"

	"golang.org/x/net/html/atom"
)

// blockLevelTagNames is the HTML block condition 6 tag set, built from
// golang.org/x/net/html/atom's canonical tag-name strings the way
// zombiezen-go-commonmark/html.go builds its htmlBlockStarters6, rather than
// a hand-typed string list.
var blockLevelTagNames = map[string]bool{
	atom.Address.String():    true,
	atom.Article.String():    true,
	atom.Aside.String():      true,
	atom.Base.String():       true,
	atom.Basefont.String():   true,
	atom.Blockquote.String(): true,
	atom.Body.String():       true,
	atom.Caption.String():    true,
	atom.Center.String():     true,
	atom.Col.String():        true,
	atom.Colgroup.String():   true,
	atom.Dd.String():         true,
	atom.Details.String():    true,
	atom.Dialog.String():     true,
	atom.Dir.String():        true,
	atom.Div.String():        true,
	atom.Dl.String():         true,
	atom.Dt.String():         true,
	atom.Fieldset.String():   true,
	atom.Figcaption.String(): true,
	atom.Figure.String():     true,
	atom.Footer.String():     true,
	atom.Form.String():       true,
	atom.Frame.String():      true,
	atom.Frameset.String():   true,
	atom.H1.String():         true,
	atom.H2.String():         true,
	atom.H3.String():         true,
	atom.H4.String():         true,
	atom.H5.String():         true,
	atom.H6.String():         true,
	atom.Head.String():       true,
	atom.Header.String():     true,
	atom.Hr.String():         true,
	atom.Html.String():       true,
	atom.Iframe.String():     true,
	atom.Legend.String():     true,
	atom.Li.String():         true,
	atom.Link.String():       true,
	atom.Main.String():       true,
	atom.Menu.String():       true,
	atom.Menuitem.String():   true,
	atom.Nav.String():        true,
	atom.Noframes.String():   true,
	atom.Ol.String():         true,
	atom.Optgroup.String():   true,
	atom.Option.String():     true,
	atom.P.String():          true,
	atom.Param.String():      true,
	atom.Section.String():    true,
	atom.Source.String():     true,
	atom.Summary.String():    true,
	atom.Table.String():      true,
	atom.Tbody.String():      true,
	atom.Td.String():         true,
	atom.Tfoot.String():      true,
	atom.Th.String():         true,
	atom.Thead.String():      true,
	atom.Title.String():      true,
	atom.Tr.String():         true,
	atom.Track.String():      true,
	atom.Ul.String():         true,
}

func isBlockLevelTagName(name string) bool {
	return blockLevelTagNames[strings.ToLower(name)]
}

// htmlBlockCondition1Tags triggers HTML block condition 1 (ends at the
// matching close tag, not a blank line).
var htmlBlockCondition1Tags = map[string]bool{
	"pre": true, "script": true, "style": true, "textarea": true,
}

func isNameStart(c byte) bool {
	return c == '_' || c == ':' || (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z')
}

func isNameChar(c byte) bool {
	return isNameStart(c) || c == '-' || (c >= '0' && c <= '9') || c == '.'
}

// tagName scans an ASCII tag/attribute name starting at s[0]; s[0] must
// satisfy isNameStart. Returns the name and the number of bytes consumed.
func tagName(s string) (string, int) {
	if s == "" || !isNameStart(s[0]) {
		return "", 0
	}
	i := 1
	for i < len(s) && isNameChar(s[i]) {
		i++
	}
	return s[:i], i
}

// matchAttribute attempts to parse one HTML attribute (name, optional
// '='-value) at the start of s, returning the number of bytes consumed or 0
// if none is present.
func matchAttribute(s string) int {
	i := skipWhitespace(s, 0)
	if i == 0 {
		return 0
	}
	_, n := tagName(s[i:])
	if n == 0 {
		return 0
	}
	i += n
	j := skipWhitespace(s, i)
	if j >= len(s) || s[j] != '=' {
		return i
	}
	j = skipWhitespace(s, j+1)
	if j >= len(s) {
		return 0
	}
	switch s[j] {
	case '\'':
		end := strings.IndexByte(s[j+1:], '\'')
		if end < 0 {
			return 0
		}
		return j + 1 + end + 1
	case '"':
		end := strings.IndexByte(s[j+1:], '"')
		if end < 0 {
			return 0
		}
		return j + 1 + end + 1
	default:
		k := j
		for k < len(s) && !isUnquotedValueTerminator(s[k]) {
			k++
		}
		if k == j {
			return 0
		}
		return k
	}
}

func isUnquotedValueTerminator(c byte) bool {
	switch c {
	case ' ', '\t', '\n', '\v', '\f', '\r', '"', '\'', '=', '<', '>', '`':
		return true
	}
	return false
}

func skipWhitespace(s string, i int) int {
	for i < len(s) {
		switch s[i] {
		case ' ', '\t', '\n', '\v', '\f', '\r':
			i++
			continue
		}
		break
	}
	return i
}

// matchOpenTag attempts to parse an HTML open tag (with optional
// self-closing slash) at the start of s (s[0] must be '<'). Returns the
// consumed length, or 0 if s does not begin a valid open tag.
func matchOpenTag(s string) int {
	if len(s) < 2 || s[0] != '<' {
		return 0
	}
	_, n := tagName(s[1:])
	if n == 0 {
		return 0
	}
	i := 1 + n
	for {
		j := matchAttribute(s[i:])
		if j == 0 {
			break
		}
		i += j
	}
	i = skipWhitespace(s, i)
	if i < len(s) && s[i] == '/' {
		i++
	}
	if i >= len(s) || s[i] != '>' {
		return 0
	}
	return i + 1
}

// matchCloseTag attempts to parse an HTML close tag at the start of s.
func matchCloseTag(s string) int {
	if len(s) < 3 || s[0] != '<' || s[1] != '/' {
		return 0
	}
	_, n := tagName(s[2:])
	if n == 0 {
		return 0
	}
	i := 2 + n
	i = skipWhitespace(s, i)
	if i >= len(s) || s[i] != '>' {
		return 0
	}
	return i + 1
}

// matchComment attempts to parse an HTML comment (including the short forms
// <!--> and <!---> that CommonMark accepts) at the start of s.
func matchComment(s string) int {
	if !strings.HasPrefix(s, "<!--") {
		return 0
	}
	if strings.HasPrefix(s, "<!-->") {
		return len("<!-->")
	}
	if strings.HasPrefix(s, "<!--->") {
		return len("<!--->")
	}
	rest := s[4:]
	if strings.HasPrefix(rest, ">") || strings.HasPrefix(rest, "->") {
		return 0
	}
	end := strings.Index(rest, "-->")
	if end < 0 {
		return 0
	}
	return 4 + end + 3
}

func matchProcessingInstruction(s string) int {
	if !strings.HasPrefix(s, "<?") {
		return 0
	}
	end := strings.Index(s[2:], "?>")
	if end < 0 {
		return 0
	}
	return 2 + end + 2
}

func matchDeclaration(s string) int {
	if !strings.HasPrefix(s, "<!") {
		return 0
	}
	rest := s[2:]
	if rest == "" || !(rest[0] >= 'A' && rest[0] <= 'Z') {
		return 0
	}
	end := strings.IndexByte(rest, '>')
	if end < 0 {
		return 0
	}
	return 2 + end + 1
}

func matchCDATA(s string) int {
	const open = "<![CDATA["
	if !strings.HasPrefix(s, open) {
		return 0
	}
	end := strings.Index(s[len(open):], "]]>")
	if end < 0 {
		return 0
	}
	return len(open) + end + 3
}

var rawHTMLMatchers = [...]func(string) int{
	matchComment, matchProcessingInstruction, matchCDATA,
	matchDeclaration, matchOpenTag, matchCloseTag,
}

// matchRawHTML tries every raw-HTML form at the start of s in recognizer
// order and returns the number of bytes consumed, or 0 if none match.
func matchRawHTML(s string) int {
	for _, m := range rawHTMLMatchers {
		if n := m(s); n > 0 {
			return n
		}
	}
	return 0
}
