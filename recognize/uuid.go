package recognize

import (
	"regexp"
	"strings"

	"github.com/google/uuid"
)

var uuidPattern = regexp.MustCompile(
	`^[0-9a-fA-F]{8}-[0-9a-fA-F]{4}-[0-9a-fA-F]{4}-[0-9a-fA-F]{4}-[0-9a-fA-F]{12}`,
)

// UUIDCase records which letter case the source used, so Render can
// reproduce it without keeping the verbatim text around for the common
// (all-lower or all-upper) cases.
type UUIDCase uint8

const (
	UUIDLower UUIDCase = iota
	UUIDUpper
	UUIDMixed
)

// UUIDValue is the value carried by a KindUUID token.
type UUIDValue struct {
	Hi, Lo   uint64
	Case     UUIDCase
	Verbatim string // only populated when Case == UUIDMixed
}

func (v UUIDValue) Render() string {
	var b [16]byte
	putUint64(b[0:8], v.Hi)
	putUint64(b[8:16], v.Lo)
	u := uuid.UUID(b)

	switch v.Case {
	case UUIDUpper:
		return strings.ToUpper(u.String())
	case UUIDMixed:
		return v.Verbatim
	default:
		return u.String()
	}
}

func putUint64(b []byte, v uint64) {
	for i := 7; i >= 0; i-- {
		b[i] = byte(v)
		v >>= 8
	}
}

func matchUUID(s string) (Token, int, bool) {
	loc := uuidPattern.FindStringIndex(s)
	if loc == nil || loc[0] != 0 {
		return Token{}, 0, false
	}
	matched := s[:loc[1]]

	u, err := uuid.Parse(matched)
	if err != nil {
		return Token{}, 0, false
	}

	hi := beUint64(u[0:8])
	lo := beUint64(u[8:16])

	c := classifyUUIDCase(matched)
	val := UUIDValue{Hi: hi, Lo: lo, Case: c}
	if c == UUIDMixed {
		val.Verbatim = matched
	}

	tok := Token{Kind: KindUUID, Start: 0, End: loc[1], UUID: val}

	return tok, loc[1], true
}

// ParseUUIDLiteral parses a query filter literal the same way the
// recognizer would, requiring the literal to be consumed in full.
func ParseUUIDLiteral(s string) (UUIDValue, bool) {
	tok, n, ok := matchUUID(s)
	if !ok || n != len(s) {
		return UUIDValue{}, false
	}

	return tok.UUID, true
}

func classifyUUIDCase(s string) UUIDCase {
	hasLower, hasUpper := false, false
	for _, c := range s {
		switch {
		case c >= 'a' && c <= 'f':
			hasLower = true
		case c >= 'A' && c <= 'F':
			hasUpper = true
		}
	}

	switch {
	case hasLower && hasUpper:
		return UUIDMixed
	case hasUpper:
		return UUIDUpper
	default:
		return UUIDLower
	}
}
