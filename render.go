package commonmark

import (
	"strconv"
	"strings"
)

// renderBlocks implements spec.md §4.5: a depth-first walk of the block
// tree producing the final HTML string for one container's children.
func renderBlocks(blocks []*Block, refs ReferenceMap, opts Options, tight bool) string {
	parts := make([]string, 0, len(blocks))
	for _, b := range blocks {
		parts = append(parts, renderBlock(b, refs, opts, tight))
	}
	return strings.Join(parts, "\n")
}

func renderBlock(b *Block, refs ReferenceMap, opts Options, tight bool) string {
	switch b.Kind {
	case ThematicBreak:
		return "<hr />"
	case Heading:
		tag := "h" + strconv.Itoa(b.Level)
		return "<" + tag + ">" + renderInlineText(b.Text, refs, opts) + "</" + tag + ">"
	case Paragraph:
		inline := renderInlineText(b.Text, refs, opts)
		if tight {
			return inline
		}
		return "<p>" + inline + "</p>"
	case CodeBlock:
		var classAttr string
		if b.Lang != "" {
			classAttr = ` class="language-` + escapeHTML(b.Lang) + `"`
		}
		return "<pre><code" + classAttr + ">" + escapeHTML(b.Text) + "</code></pre>"
	case BlockQuote:
		if len(b.Children) == 0 {
			return "<blockquote>\n</blockquote>"
		}
		return "<blockquote>\n" + renderBlocks(b.Children, refs, opts, false) + "\n</blockquote>"
	case List:
		return renderList(b, refs, opts)
	case HTMLBlock:
		return b.Text
	default:
		return ""
	}
}

func renderList(lst *Block, refs ReferenceMap, opts Options) string {
	tag := "ul"
	var startAttr string
	if lst.Ordered {
		tag = "ol"
		if lst.HasStart {
			startAttr = ` start="` + strconv.Itoa(lst.Start) + `"`
		}
	}
	items := make([]string, 0, len(lst.Children))
	for _, item := range lst.Children {
		items = append(items, renderListItem(item, lst.Loose, refs, opts))
	}
	return "<" + tag + startAttr + ">\n" + strings.Join(items, "\n") + "\n</" + tag + ">"
}

// renderListItem implements the tight/loose list-item table from spec.md
// §4.5.
func renderListItem(item *Block, loose bool, refs ReferenceMap, opts Options) string {
	children := item.Children
	if len(children) == 0 {
		return "<li></li>"
	}

	first := children[0]
	rest := children[1:]

	if first.Kind == Paragraph {
		firstInline := renderInlineText(first.Text, refs, opts)
		if !loose {
			if len(rest) == 0 {
				return "<li>" + firstInline + "</li>"
			}
			return "<li>" + firstInline + "\n" + renderBlocks(rest, refs, opts, true) + "\n</li>"
		}
		if len(rest) == 0 {
			return "<li>\n<p>" + firstInline + "</p>\n</li>"
		}
		return "<li>\n<p>" + firstInline + "</p>\n" + renderBlocks(rest, refs, opts, false) + "\n</li>"
	}

	body := renderBlocks(children, refs, opts, !loose)
	if loose || !endsWithTightParagraph(children) {
		return "<li>\n" + body + "\n</li>"
	}
	return "<li>\n" + body + "</li>"
}

func endsWithTightParagraph(children []*Block) bool {
	if len(children) == 0 {
		return false
	}
	return children[len(children)-1].Kind == Paragraph
}
