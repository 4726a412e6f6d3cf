package recognize

import (
	"regexp"
	"strconv"
	"time"
)

var datePattern = regexp.MustCompile(`^\d{4}-\d{2}-\d{2}`)

var epoch = time.Date(1970, 1, 1, 0, 0, 0, 0, time.UTC)

func renderDate(epochDays uint32) string {
	t := epoch.AddDate(0, 0, int(epochDays))

	return t.Format("2006-01-02")
}

// RenderDate reproduces the original "YYYY-MM-DD" bytes for an epoch-days
// value, for callers outside the package (the skeleton and query layers)
// that hold a Date column value without its surrounding Token.
func RenderDate(epochDays uint32) string { return renderDate(epochDays) }

func matchDate(s string) (Token, int, bool) {
	loc := datePattern.FindStringIndex(s)
	if loc == nil || loc[0] != 0 {
		return Token{}, 0, false
	}
	matched := s[:loc[1]]

	year, _ := strconv.Atoi(matched[0:4])
	month, _ := strconv.Atoi(matched[5:7])
	day, _ := strconv.Atoi(matched[8:10])

	t := time.Date(year, time.Month(month), day, 0, 0, 0, 0, time.UTC)
	days := uint32(t.Sub(epoch).Hours() / 24) //nolint:gosec

	tok := Token{Kind: KindDate, Start: 0, End: loc[1], Date: days}

	return tok, loc[1], true
}

// ParseDateLiteral parses a query filter literal the same way the
// recognizer would, requiring the literal to be consumed in full.
func ParseDateLiteral(s string) (uint32, bool) {
	tok, n, ok := matchDate(s)
	if !ok || n != len(s) {
		return 0, false
	}

	return tok.Date, true
}
