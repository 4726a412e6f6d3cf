package recognize

import (
	"net/netip"
	"regexp"
)

// ipv6Pattern follows the canonical textual rules for IPv6 addresses,
// including "::" elision in any position and an optional embedded IPv4
// tail. Unlike the Rust original's ipv6 pattern (which has no elision
// support at all), this one accepts the full address grammar.
var ipv6Pattern = regexp.MustCompile(`^(` +
	`([0-9A-Fa-f]{1,4}:){7}[0-9A-Fa-f]{1,4}|` +
	`([0-9A-Fa-f]{1,4}:){1,7}:|` +
	`([0-9A-Fa-f]{1,4}:){1,6}:[0-9A-Fa-f]{1,4}|` +
	`([0-9A-Fa-f]{1,4}:){1,5}(:[0-9A-Fa-f]{1,4}){1,2}|` +
	`([0-9A-Fa-f]{1,4}:){1,4}(:[0-9A-Fa-f]{1,4}){1,3}|` +
	`([0-9A-Fa-f]{1,4}:){1,3}(:[0-9A-Fa-f]{1,4}){1,4}|` +
	`([0-9A-Fa-f]{1,4}:){1,2}(:[0-9A-Fa-f]{1,4}){1,5}|` +
	`[0-9A-Fa-f]{1,4}:((:[0-9A-Fa-f]{1,4}){1,6})|` +
	`:((:[0-9A-Fa-f]{1,4}){1,7}|:)|` +
	`::(ffff(:0{1,4})?:)?((25[0-5]|(2[0-4]|1?[0-9])?[0-9])\.){3}(25[0-5]|(2[0-4]|1?[0-9])?[0-9])|` +
	`([0-9A-Fa-f]{1,4}:){1,4}:((25[0-5]|(2[0-4]|1?[0-9])?[0-9])\.){3}(25[0-5]|(2[0-4]|1?[0-9])?[0-9])` +
	`)`)

func init() {
	// Leftmost-longest matching, so an elided address such as "2001:db8::1"
	// is not cut short after its "::" by an earlier, shorter alternative.
	ipv6Pattern.Longest()
}

// IPv6Value is the value carried by a KindIPv6 token. The normalized
// 128-bit value backs typed Eq/Ne comparisons; Text is the verbatim source
// form (preserving elision placement and letter case) and is what Render
// reproduces, since textual IPv6 forms are not canonical and a compact
// elision-index hint buys little over just keeping the bytes.
type IPv6Value struct {
	Hi, Lo uint64
	Text   string
}

func (v IPv6Value) Render() string { return v.Text }

// matchIPv6 takes the longest anchored ipv6Pattern match at the start of s
// and validates it via netip; when validation fails it reports no match and
// does not retry shorter prefixes.
func matchIPv6(s string) (Token, int, bool) {
	loc := ipv6Pattern.FindStringIndex(s)
	if loc == nil || loc[0] != 0 {
		return Token{}, 0, false
	}
	matched := s[:loc[1]]

	addr, err := netip.ParseAddr(matched)
	if err != nil {
		return Token{}, 0, false
	}

	b := addr.As16()
	hi := beUint64(b[0:8])
	lo := beUint64(b[8:16])

	tok := Token{
		Kind:  KindIPv6,
		Start: 0,
		End:   loc[1],
		IPv6:  IPv6Value{Hi: hi, Lo: lo, Text: matched},
	}

	return tok, loc[1], true
}

// ParseIPv6Literal parses a query filter literal the same way the
// recognizer would, requiring the literal to be consumed in full.
func ParseIPv6Literal(s string) (IPv6Value, bool) {
	tok, n, ok := matchIPv6(s)
	if !ok || n != len(s) {
		return IPv6Value{}, false
	}

	return tok.IPv6, true
}

func beUint64(b []byte) uint64 {
	var v uint64
	for _, c := range b {
		v = v<<8 | uint64(c)
	}

	return v
}
