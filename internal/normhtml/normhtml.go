// Package normhtml normalizes rendered HTML so that renderer tests can
// compare output while ignoring whitespace differences that CommonMark
// itself treats as insignificant, following the reference test suite's own
// normalize.py.
package normhtml

import (
	"bytes"
	"regexp"
	"sort"
	"unicode"

	"go4.org/bytereplacer"
	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
)

var whitespaceRun = regexp.MustCompile(`\s+`)

var attrEscaper = bytereplacer.New(
	"&", "&amp;",
	`'`, "&apos;",
	`<`, "&lt;",
	`>`, "&gt;",
	`"`, "&quot;",
)

type attribute struct {
	key, value string
}

// Normalize collapses runs of whitespace, trims text adjacent to block-level
// tags, and canonicalizes attribute ordering so two semantically equal but
// textually different HTML fragments compare equal.
func Normalize(html_ []byte) []byte {
	tok := html.NewTokenizerFragment(bytes.NewReader(html_), "div")
	var out []byte
	last := html.StartTagToken
	lastTag := ""
	inPre := false

	for {
		tt := tok.Next()
		switch tt {
		case html.ErrorToken:
			return out

		case html.TextToken:
			data := tok.Text()
			afterTag := last == html.EndTagToken || last == html.StartTagToken
			if afterTag && lastTag == "br" {
				data = bytes.TrimLeft(data, "\n")
			}
			if !inPre {
				data = whitespaceRun.ReplaceAll(data, []byte(" "))
			}
			if afterTag && isBlockTag(lastTag) && !inPre {
				if last == html.StartTagToken {
					data = bytes.TrimLeftFunc(data, unicode.IsSpace)
				} else {
					data = bytes.TrimSpace(data)
				}
			}
			out = append(out, attrEscaper.Replace(bytes.Clone(data))...)

		case html.EndTagToken:
			tagBytes, _ := tok.TagName()
			tag := string(tagBytes)
			if tag == "pre" {
				inPre = false
			} else if isBlockTag(tag) {
				out = bytes.TrimRightFunc(out, unicode.IsSpace)
			}
			out = append(out, "</"...)
			out = append(out, tag...)
			out = append(out, ">"...)
			lastTag = tag

		case html.StartTagToken, html.SelfClosingTagToken:
			tagBytes, hasAttr := tok.TagName()
			tag := string(tagBytes)
			if tag == "pre" {
				inPre = true
			}
			if isBlockTag(tag) {
				out = bytes.TrimRightFunc(out, unicode.IsSpace)
			}
			out = append(out, "<"...)
			out = append(out, tag...)
			if hasAttr {
				out = appendSortedAttrs(out, tok)
			}
			out = append(out, ">"...)
			lastTag = tag

		case html.CommentToken:
			out = append(out, tok.Raw()...)
		}

		last = tt
		if tt == html.SelfClosingTagToken {
			last = html.EndTagToken
		}
	}
}

func appendSortedAttrs(out []byte, tok *html.Tokenizer) []byte {
	var attrs []attribute
	for {
		k, v, more := tok.TagAttr()
		attrs = append(attrs, attribute{string(k), string(v)})
		if !more {
			break
		}
	}
	sort.Slice(attrs, func(i, j int) bool { return attrs[i].key < attrs[j].key })
	for _, a := range attrs {
		out = append(out, " "...)
		out = append(out, a.key...)
		if a.value != "" {
			out = append(out, `="`...)
			out = append(out, html.EscapeString(a.value)...)
			out = append(out, `"`...)
		}
	}
	return out
}

// blockLevelTags mirrors the HTML5 block-level set used when deciding
// whether whitespace around a tag is insignificant, built from
// golang.org/x/net/html/atom the way
// zombiezen-go-commonmark/internal/normhtml/normhtml.go builds its own
// blockTags; kept separate from the parser's own HTML-block tag set
// (rawhtml.go) because this one also includes elements, like <video> and
// <button>, that never start an HTML block on their own but still affect
// whitespace significance in rendered output.
var blockLevelTags = map[string]bool{
	atom.Article.String():    true,
	atom.Header.String():     true,
	atom.Aside.String():      true,
	atom.Hgroup.String():     true,
	atom.Blockquote.String(): true,
	atom.Hr.String():         true,
	atom.Iframe.String():     true,
	atom.Body.String():       true,
	atom.Li.String():         true,
	atom.Map.String():        true,
	atom.Button.String():     true,
	atom.Object.String():     true,
	atom.Canvas.String():     true,
	atom.Ol.String():         true,
	atom.Caption.String():    true,
	atom.Output.String():     true,
	atom.Col.String():        true,
	atom.P.String():          true,
	atom.Colgroup.String():   true,
	atom.Pre.String():        true,
	atom.Dd.String():         true,
	atom.Progress.String():   true,
	atom.Div.String():        true,
	atom.Section.String():    true,
	atom.Dl.String():         true,
	atom.Table.String():      true,
	atom.Td.String():         true,
	atom.Dt.String():         true,
	atom.Tbody.String():      true,
	atom.Embed.String():      true,
	atom.Textarea.String():   true,
	atom.Fieldset.String():   true,
	atom.Tfoot.String():      true,
	atom.Figcaption.String(): true,
	atom.Th.String():         true,
	atom.Figure.String():     true,
	atom.Thead.String():      true,
	atom.Footer.String():     true,
	atom.Tr.String():         true,
	atom.Form.String():       true,
	atom.Ul.String():         true,
	atom.H1.String():         true,
	atom.H2.String():         true,
	atom.H3.String():         true,
	atom.H4.String():         true,
	atom.H5.String():         true,
	atom.H6.String():         true,
	atom.Video.String():      true,
	atom.Script.String():     true,
	atom.Style.String():      true,
}

func isBlockTag(tag string) bool {
	return blockLevelTags[tag]
}
