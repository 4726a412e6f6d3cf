package recognize

import (
	"regexp"
	"strconv"
)

// numberPattern accepts an optional sign, integer or decimal digits, and an
// optional exponent — wider than the Rust original's `\d+(\.\d+)?`, which
// has no sign or exponent support at all.
var numberPattern = regexp.MustCompile(`^[+-]?(\d+\.?\d*|\.\d+)([eE][+-]?\d+)?`)

// NumberValue is the value carried by a KindNumber token. Repr is the
// original literal text ("42.", "1e2", "-0", "+3.50") and is always what
// Render reproduces; F64 is the parsed value used for typed comparisons.
type NumberValue struct {
	F64  float64
	Repr string
}

func matchNumber(s string) (Token, int, bool) {
	loc := numberPattern.FindStringIndex(s)
	if loc == nil || loc[0] != 0 {
		return Token{}, 0, false
	}
	matched := s[:loc[1]]

	f, err := strconv.ParseFloat(matched, 64)
	if err != nil {
		return Token{}, 0, false
	}

	tok := Token{Kind: KindNumber, Start: 0, End: loc[1], Number: NumberValue{F64: f, Repr: matched}}

	return tok, loc[1], true
}

// ParseNumberLiteral parses a query filter literal the same way the
// recognizer would, for literal coercion against a numbers column.
func ParseNumberLiteral(s string) (float64, bool) {
	loc := numberPattern.FindStringIndex(s)
	if loc == nil || loc[0] != 0 || loc[1] != len(s) {
		return 0, false
	}
	f, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, false
	}

	return f, true
}
