package commonmark

// Convert renders a CommonMark document to its HTML representation. Input
// is treated as UTF-8; CR and CRLF line endings are normalized to LF before
// any other processing. The result is terminated by a trailing newline when
// it is non-empty, or is the empty string when the input yields no blocks.
//
// Convert performs no I/O and shares no state across calls; concurrent
// calls on independent inputs are always safe.
func Convert(input string, opts ...Options) string {
	var opt Options
	if len(opts) > 0 {
		opt = opts[0]
	}
	if opt.MaxNestingDepth == 0 {
		opt.MaxNestingDepth = defaultMaxNestingDepth
	}

	normalized := normalizeNewlines(input)
	lines := splitLines(normalized)
	filtered, refs := extractReferences(lines)
	blocks := parseBlocks(filtered)

	if len(blocks) == 0 {
		return ""
	}
	return renderBlocks(blocks, refs, opt, false) + "\n"
}

const defaultMaxNestingDepth = 100
