package recognize

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
)

var ipv4Pattern = regexp.MustCompile(`^(?:(?:25[0-5]|2[0-4]\d|1\d\d|[1-9]?\d)\.){3}(?:25[0-5]|2[0-4]\d|1\d\d|[1-9]?\d)`)

func renderIPv4(v uint32) string {
	return fmt.Sprintf("%d.%d.%d.%d", v>>24, (v>>16)&0xff, (v>>8)&0xff, v&0xff)
}

// RenderIPv4 reproduces the original dotted-decimal bytes for a packed
// IPv4 value, for callers outside the package that hold a column value
// without its surrounding Token.
func RenderIPv4(v uint32) string { return renderIPv4(v) }

// matchIPv4 matches four dotted decimal octets, each 0-255, rejecting
// leading zeros beyond the literal digit "0" itself (the ipv4Pattern
// alternation already excludes multi-digit octets that start with 0).
func matchIPv4(s string) (Token, int, bool) {
	loc := ipv4Pattern.FindStringIndex(s)
	if loc == nil || loc[0] != 0 {
		return Token{}, 0, false
	}
	matched := s[:loc[1]]

	octets := strings.Split(matched, ".")
	if len(octets) != 4 {
		return Token{}, 0, false
	}

	var v uint32
	for _, o := range octets {
		n, err := strconv.Atoi(o)
		if err != nil || n < 0 || n > 255 {
			return Token{}, 0, false
		}
		v = v<<8 | uint32(n) //nolint:gosec
	}

	tok := Token{Kind: KindIPv4, Start: 0, End: loc[1], IPv4: v}

	return tok, loc[1], true
}

// ParseIPv4Literal parses a query filter literal the same way the
// recognizer would, requiring the literal to be consumed in full.
func ParseIPv4Literal(s string) (uint32, bool) {
	tok, n, ok := matchIPv4(s)
	if !ok || n != len(s) {
		return 0, false
	}

	return tok.IPv4, true
}
