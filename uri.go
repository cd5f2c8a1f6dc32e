package commonmark

import "strings"

const uriSafeBytes = "ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz0123456789" +
	";/?:@&=+$,-_.!~*'()#"

func isURISafeByte(c byte) bool {
	return strings.IndexByte(uriSafeBytes, c) >= 0
}

func isHexDigit(c byte) bool {
	return (c >= '0' && c <= '9') || (c >= 'a' && c <= 'f') || (c >= 'A' && c <= 'F')
}

const hexDigits = "0123456789ABCDEF"

// encodeHref percent-encodes a URI for use in an href/src attribute,
// preserving any triplet that is already a valid percent-escape so that
// round-tripping an already-encoded URL is the identity function.
func encodeHref(s string) string {
	var b strings.Builder
	b.Grow(len(s))
	for i := 0; i < len(s); i++ {
		c := s[i]
		switch {
		case c == '%' && i+2 < len(s) && isHexDigit(s[i+1]) && isHexDigit(s[i+2]):
			b.WriteByte('%')
		case isURISafeByte(c):
			b.WriteByte(c)
		default:
			b.WriteByte('%')
			b.WriteByte(hexDigits[c>>4])
			b.WriteByte(hexDigits[c&0xf])
		}
	}
	return b.String()
}
