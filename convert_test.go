package commonmark

import (
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/inkwell-md/commonmark/internal/normhtml"
)

func TestConvertBoundaryScenarios(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"empty", "", ""},
		{"atxHeading", "# hi\n", "<h1>hi</h1>\n"},
		{"setextHeading", "a\n===\n", "<h1>a</h1>\n"},
		{"blockQuote", "> a\n> b\n", "<blockquote>\n<p>a\nb</p>\n</blockquote>\n"},
		{"tightList", "- a\n- b\n", "<ul>\n<li>a</li>\n<li>b</li>\n</ul>\n"},
		{"looseList", "- a\n\n- b\n", "<ul>\n<li>\n<p>a</p>\n</li>\n<li>\n<p>b</p>\n</li>\n</ul>\n"},
		{"reference", "[foo]: /x\n\n[foo]\n", "<p><a href=\"/x\">foo</a></p>\n"},
		{"emphasisNesting", "*foo**bar***\n", "<p><em>foo<strong>bar</strong></em></p>\n"},
		{"codeSpanSpaceTrim", "` a `\n", "<p><code>a</code></p>\n"},
		{"indentedCodeBlock", "    code\n", "<pre><code>code\n</code></pre>\n"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Convert(tt.input)
			if diff := cmp.Diff(tt.want, got); diff != "" {
				t.Errorf("Convert(%q) mismatch (-want +got):\n%s", tt.input, diff)
			}
		})
	}
}

func TestConvertThematicBreak(t *testing.T) {
	got := normhtml.Normalize([]byte(Convert("***\n")))
	want := normhtml.Normalize([]byte("<hr />\n"))
	if diff := cmp.Diff(string(want), string(got)); diff != "" {
		t.Errorf("mismatch (-want +got):\n%s", diff)
	}
}

func TestConvertFencedCodeBlockLanguage(t *testing.T) {
	got := Convert("```go\nfmt.Println(1)\n```\n")
	want := "<pre><code class=\"language-go\">fmt.Println(1)\n</code></pre>\n"
	if got != want {
		t.Errorf("Convert() = %q, want %q", got, want)
	}
}

func TestConvertLeadingNewlineIgnored(t *testing.T) {
	x := "# title\n\nbody text\n"
	got := Convert("\n" + x)
	want := Convert(x)
	if got != want {
		t.Errorf("Convert(\"\\n\"+x) = %q, want %q", got, want)
	}
}

func TestConvertCRLFNormalized(t *testing.T) {
	lf := "para one\n\npara two\n"
	crlf := "para one\r\n\r\npara two\r\n"
	if Convert(lf) != Convert(crlf) {
		t.Errorf("Convert with CRLF diverged from Convert with LF")
	}
}

func TestConvertDuplicateReferenceFirstWins(t *testing.T) {
	input := "[foo]: /a\n[foo]: /b\n\n[foo]\n"
	want := "<p><a href=\"/a\">foo</a></p>\n"
	if got := Convert(input); got != want {
		t.Errorf("Convert() = %q, want %q", got, want)
	}
}

func TestConvertImage(t *testing.T) {
	got := Convert("![alt text](/img.png \"a title\")\n")
	want := `<p><img src="/img.png" alt="alt text" title="a title" /></p>` + "\n"
	if got != want {
		t.Errorf("Convert() = %q, want %q", got, want)
	}
}

func TestConvertAutolink(t *testing.T) {
	got := Convert("<https://example.com>\n")
	want := "<p><a href=\"https://example.com\">https://example.com</a></p>\n"
	if got != want {
		t.Errorf("Convert() = %q, want %q", got, want)
	}
}

func TestConvertHardLineBreak(t *testing.T) {
	got := Convert("line one  \nline two\n")
	want := "<p>line one<br />\nline two</p>\n"
	if got != want {
		t.Errorf("Convert() = %q, want %q", got, want)
	}
}

func TestConvertBackslashEscape(t *testing.T) {
	got := Convert(`\*not emphasis\*` + "\n")
	want := "<p>*not emphasis*</p>\n"
	if got != want {
		t.Errorf("Convert() = %q, want %q", got, want)
	}
}
