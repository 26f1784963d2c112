package parse

import (
	"net/url"
	"strings"
	"unicode/utf8"
)

// unescape decodes percent escapes and '+' in s.  Unlike
// url.QueryUnescape it does not fail: an escape which is not followed
// by two hex digits is kept as is.  Invalid UTF-8 in the result is
// replaced with U+FFFD.
func unescape(s string) string {
	if u, err := url.QueryUnescape(s); err == nil {
		return validUTF8(u)
	}
	var buf strings.Builder
	buf.Grow(len(s))
	for i := 0; i < len(s); i++ {
		c := s[i]
		switch {
		case c == '+':
			buf.WriteByte(' ')
		case c == '%' && i+2 < len(s) && isHex(s[i+1]) && isHex(s[i+2]):
			buf.WriteByte(unhex(s[i+1])<<4 | unhex(s[i+2]))
			i += 2
		default:
			buf.WriteByte(c)
		}
	}
	return validUTF8(buf.String())
}

func validUTF8(s string) string {
	if utf8.ValidString(s) {
		return s
	}
	return strings.ToValidUTF8(s, "\uFFFD")
}

func isHex(c byte) bool {
	switch {
	case '0' <= c && c <= '9':
		return true
	case 'a' <= c && c <= 'f':
		return true
	case 'A' <= c && c <= 'F':
		return true
	}
	return false
}

func unhex(c byte) byte {
	switch {
	case '0' <= c && c <= '9':
		return c - '0'
	case 'a' <= c && c <= 'f':
		return c - 'a' + 10
	default:
		return c - 'A' + 10
	}
}
