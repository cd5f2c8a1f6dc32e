package commonmark

import "strings"

type htmlBlockKind int

const (
	hbNone htmlBlockKind = iota
	hbPreScriptStyleTextarea
	hbComment
	hbProcessingInstruction
	hbDeclaration
	hbCDATA
	hbBlockTag
	hbOtherTag
)

// classifyHTMLBlockStart implements the simplified seven-condition table
// from spec.md §4.3 item 7. prevBlank is only consulted for condition 7.
func classifyHTMLBlockStart(line string, prevBlank bool) (kind htmlBlockKind, openTagName string) {
	if indentWidth(line) >= 4 {
		return hbNone, ""
	}
	s := line[leadingNonSpace(line):]
	if !strings.HasPrefix(s, "<") {
		return hbNone, ""
	}
	lower := strings.ToLower(s)
	switch {
	case strings.HasPrefix(lower, "<!--"):
		return hbComment, ""
	case strings.HasPrefix(lower, "<?"):
		return hbProcessingInstruction, ""
	case strings.HasPrefix(lower, "<![cdata["):
		return hbCDATA, ""
	case strings.HasPrefix(lower, "<!") && len(s) > 2 && isNameStart(s[2]):
		return hbDeclaration, ""
	}
	isClose := strings.HasPrefix(s, "</")
	nameStart := 1
	if isClose {
		nameStart = 2
	}
	name, n := tagName(s[nameStart:])
	if n == 0 {
		return hbNone, ""
	}
	lname := strings.ToLower(name)
	if htmlBlockCondition1Tags[lname] {
		return hbPreScriptStyleTextarea, lname
	}
	if isBlockLevelTagName(lname) {
		return hbBlockTag, ""
	}
	if prevBlank {
		var consumed int
		if isClose {
			consumed = matchCloseTag(s)
		} else {
			consumed = matchOpenTag(s)
		}
		if consumed > 0 && strings.TrimSpace(s[consumed:]) == "" {
			return hbOtherTag, ""
		}
	}
	return hbNone, ""
}

// htmlBlockLineEndsBlock reports whether line contains the closing delimiter
// for an open HTML block of the given kind (conditions 1-5 only; 6 and 7 end
// at the next blank line, checked by the caller).
func htmlBlockLineEndsBlock(kind htmlBlockKind, openTagName, line string) bool {
	lower := strings.ToLower(line)
	switch kind {
	case hbPreScriptStyleTextarea:
		return strings.Contains(lower, "</"+openTagName+">")
	case hbComment:
		return strings.Contains(line, "-->")
	case hbProcessingInstruction:
		return strings.Contains(line, "?>")
	case hbDeclaration:
		return strings.Contains(line, ">")
	case hbCDATA:
		return strings.Contains(line, "]]>")
	default:
		return false
	}
}

// tryHTMLBlock attempts to parse an HTML block starting at lines[i].
func tryHTMLBlock(lines []string, i int, prevBlank bool) (*Block, int) {
	kind, openTagName := classifyHTMLBlockStart(lines[i], prevBlank)
	if kind == hbNone {
		return nil, 0
	}
	content := []string{lines[i]}
	j := i + 1
	switch kind {
	case hbBlockTag, hbOtherTag:
		for j < len(lines) && !isBlankLine(lines[j]) {
			content = append(content, lines[j])
			j++
		}
	default:
		if !htmlBlockLineEndsBlock(kind, openTagName, lines[i]) {
			for j < len(lines) {
				content = append(content, lines[j])
				ended := htmlBlockLineEndsBlock(kind, openTagName, lines[j])
				j++
				if ended {
					break
				}
			}
		}
	}
	return &Block{Kind: HTMLBlock, Text: strings.Join(content, "\n")}, j - i
}
