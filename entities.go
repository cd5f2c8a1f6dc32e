package commonmark

import (
	"strconv"
	"strings"
)

const replacementChar = "�"

// decodeCharRef decodes a single character reference starting at s[0] == '&'.
// It returns the decoded text and the number of bytes of s consumed (which is
// 0 if s does not begin a valid character reference at all, signalling the
// caller to leave the input unchanged).
func decodeCharRef(s string) (decoded string, n int) {
	if len(s) < 3 || s[0] != '&' {
		return "", 0
	}
	semi := strings.IndexByte(s, ';')
	if semi < 0 {
		return "", 0
	}
	body := s[1:semi]
	switch {
	case len(body) >= 2 && body[0] == '#' && (body[1] == 'x' || body[1] == 'X'):
		hex := body[2:]
		if hex == "" || len(hex) > 6 || !allHex(hex) {
			return "", 0
		}
		v, err := strconv.ParseInt(hex, 16, 64)
		if err != nil {
			return "", 0
		}
		return codePointToString(v), semi + 1
	case len(body) >= 1 && body[0] == '#':
		dec := body[1:]
		if dec == "" || len(dec) > 7 || !allDigits(dec) {
			return "", 0
		}
		v, err := strconv.ParseInt(dec, 10, 64)
		if err != nil {
			return "", 0
		}
		return codePointToString(v), semi + 1
	default:
		if body == "" {
			return "", 0
		}
		if r, ok := namedCharRefs[body]; ok {
			return r, semi + 1
		}
		return "", 0
	}
}

func allHex(s string) bool {
	for i := 0; i < len(s); i++ {
		if !isHexDigit(s[i]) {
			return false
		}
	}
	return true
}

func allDigits(s string) bool {
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return false
		}
	}
	return true
}

// codePointToString maps a decoded numeric character reference to its
// string form, substituting U+FFFD for 0, out-of-range, and surrogate values
// per spec.md §7.
func codePointToString(v int64) string {
	if v == 0 || v > 0x10FFFF || (v >= 0xD800 && v <= 0xDFFF) {
		return replacementChar
	}
	return string(rune(v))
}

// decodeCharRefs decodes every character reference in s, leaving invalid
// forms (both '&' and ';') untouched.
func decodeCharRefs(s string) string {
	if !strings.ContainsRune(s, '&') {
		return s
	}
	var b strings.Builder
	b.Grow(len(s))
	for i := 0; i < len(s); {
		if s[i] == '&' {
			if dec, n := decodeCharRef(s[i:]); n > 0 {
				b.WriteString(dec)
				i += n
				continue
			}
		}
		b.WriteByte(s[i])
		i++
	}
	return b.String()
}
