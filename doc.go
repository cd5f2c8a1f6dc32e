// Package commonmark converts CommonMark Markdown to HTML.
//
// Convert is the single entry point: it takes a whole UTF-8 Markdown document
// and returns a whole UTF-8 HTML fragment. The implementation is a two-pass
// pipeline — a block-structure analyzer that segments the input into a tree
// of block nodes while harvesting link reference definitions, followed by an
// inline analyzer that turns the raw text of each leaf block into HTML — and
// is synchronous, allocates no package-level state, and is safe to call
// concurrently from independent goroutines.
package commonmark
