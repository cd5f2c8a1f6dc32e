package commonmark

import "go4.org/bytereplacer"

// htmlEscaper replaces the four characters CommonMark requires escaped in
// text/attribute content. Built with bytereplacer the way the teacher's test
// normalizer (zombiezen-go-commonmark/internal/normhtml) builds its escaper.
var htmlEscaper = bytereplacer.New(
	"&", "&amp;",
	"<", "&lt;",
	">", "&gt;",
	`"`, "&quot;",
)

// escapeHTML replaces &, <, >, " with their named entities. Callers on a
// verbatim path (raw HTML, pre-escaped code-block bytes, autolink href
// bodies) must not call this a second time.
func escapeHTML(s string) string {
	return string(htmlEscaper.Replace([]byte(s)))
}
