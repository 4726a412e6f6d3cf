package recognize

import (
	"fmt"
	"regexp"
	"strconv"
)

var timePattern = regexp.MustCompile(`^\d{2}:\d{2}:\d{2}(\.\d+)?`)

// TimeValue is the value carried by a KindTime token. FracDigits preserves
// sub-millisecond digits exactly as written, the same role it plays on
// TimestampValue.
type TimeValue struct {
	MsFromMidnight uint32
	FracDigits     string
}

func (v TimeValue) Render() string {
	ms := v.MsFromMidnight
	h := ms / 3_600_000
	m := (ms / 60_000) % 60
	sec := (ms / 1000) % 60
	s := fmt.Sprintf("%02d:%02d:%02d", h, m, sec)
	if v.FracDigits != "" {
		s += "." + v.FracDigits
	}

	return s
}

func matchTime(s string) (Token, int, bool) {
	loc := timePattern.FindStringIndex(s)
	if loc == nil || loc[0] != 0 {
		return Token{}, 0, false
	}
	matched := s[:loc[1]]

	h, _ := strconv.Atoi(matched[0:2])
	m, _ := strconv.Atoi(matched[3:5])
	sec, _ := strconv.Atoi(matched[6:8])

	ms := 0
	frac := ""
	if len(matched) > 8 {
		frac = matched[9:]
		padded := frac
		for len(padded) < 3 {
			padded += "0"
		}
		ms, _ = strconv.Atoi(padded[:3])
	}

	total := uint32(h*3_600_000 + m*60_000 + sec*1000 + ms) //nolint:gosec

	tok := Token{Kind: KindTime, Start: 0, End: loc[1], Time: TimeValue{MsFromMidnight: total, FracDigits: frac}}

	return tok, loc[1], true
}

// ParseTimeLiteral parses a query filter literal the same way the
// recognizer would, requiring the literal to be consumed in full.
func ParseTimeLiteral(s string) (TimeValue, bool) {
	tok, n, ok := matchTime(s)
	if !ok || n != len(s) {
		return TimeValue{}, false
	}

	return tok.Time, true
}
