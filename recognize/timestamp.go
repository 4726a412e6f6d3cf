package recognize

import (
	"regexp"
	"strconv"
	"time"
)

// timestampPattern accepts ISO-8601 (`T` separator) and the space-separated
// form, both with optional fractional seconds and an optional Z/±HH:MM
// suffix. Anchored so FindStringIndex only ever reports a match starting at
// offset 0 of the slice it is given.
var timestampPattern = regexp.MustCompile(
	`^\d{4}-\d{2}-\d{2}[T ]\d{2}:\d{2}:\d{2}(\.\d+)?(Z|[+-]\d{2}:?\d{2})?`,
)

// TimestampValue is the value carried by a KindTimestamp token.
type TimestampValue struct {
	EpochMs int64
	Tz      TzSpec
	// Sep is the original date/time separator byte, 'T' or ' '.
	Sep byte
	// FracDigits holds the raw digits that followed the decimal point in
	// the source, exactly as written (e.g. "5", "450", "123456"), so
	// fractional-second precision beyond whole milliseconds still
	// round-trips even though EpochMs only carries millisecond precision.
	FracDigits string
}

// Render reproduces the original timestamp bytes exactly. EpochMs is the
// UTC-normalized instant; the original offset-local wall clock is
// recovered by adding the offset back before formatting.
func (v TimestampValue) Render() string {
	wallMs := v.EpochMs
	if v.Tz.Kind == TzOffset {
		wallMs += int64(v.Tz.OffsetMinutes) * 60000
	}

	t := time.UnixMilli(wallMs).UTC()
	s := t.Format("2006-01-02") + string(v.Sep) + t.Format("15:04:05")
	if v.FracDigits != "" {
		s += "." + v.FracDigits
	}

	return s + v.Tz.Render()
}

// matchTimestamp attempts an anchored timestamp match at the start of s.
// Returns the matched byte length, or 0 if no match.
func matchTimestamp(s string) (Token, int, bool) {
	loc := timestampPattern.FindStringIndex(s)
	if loc == nil || loc[0] != 0 {
		return Token{}, 0, false
	}
	matched := s[:loc[1]]

	sep := matched[10]

	datePart := matched[:10]
	timePart := matched[11:19]

	year, _ := strconv.Atoi(datePart[0:4])
	month, _ := strconv.Atoi(datePart[5:7])
	day, _ := strconv.Atoi(datePart[8:10])
	hour, _ := strconv.Atoi(timePart[0:2])
	minute, _ := strconv.Atoi(timePart[3:5])
	second, _ := strconv.Atoi(timePart[6:8])

	rest := matched[19:]
	var frac string
	if len(rest) > 0 && rest[0] == '.' {
		j := 1
		for j < len(rest) && rest[j] >= '0' && rest[j] <= '9' {
			j++
		}
		frac = rest[1:j]
		rest = rest[j:]
	}

	tz := TzSpec{Kind: TzNaive}
	switch {
	case rest == "Z":
		tz = TzSpec{Kind: TzUtc}
	case len(rest) >= 3 && (rest[0] == '+' || rest[0] == '-'):
		noColon := rest[len(rest)-3] != ':'
		offStr := rest[1:]
		offStr = offStr[:2] + offStr[len(offStr)-2:] // strips an optional ':' in "HH:MM"
		hh, _ := strconv.Atoi(offStr[0:2])
		mm, _ := strconv.Atoi(offStr[2:4])
		minutes := int16(hh*60 + mm)
		if rest[0] == '-' {
			minutes = -minutes
		}
		tz = TzSpec{Kind: TzOffset, OffsetMinutes: minutes, NoColon: noColon}
	}

	base := time.Date(year, time.Month(month), day, hour, minute, second, 0, time.UTC)
	ms := base.UnixMilli()
	if len(frac) > 0 {
		// first three fractional digits, zero padded, are the millisecond component
		padded := frac
		for len(padded) < 3 {
			padded += "0"
		}
		millis, _ := strconv.Atoi(padded[:3])
		ms += int64(millis)
	}
	if tz.Kind == TzOffset {
		// Normalize the wall-clock-plus-offset value to a true UTC instant.
		ms -= int64(tz.OffsetMinutes) * 60000
	}

	tok := Token{
		Kind:  KindTimestamp,
		Start: 0,
		End:   loc[1],
		Timestamp: TimestampValue{
			EpochMs:    ms,
			Tz:         tz,
			Sep:        sep,
			FracDigits: frac,
		},
	}

	return tok, loc[1], true
}

// ParseTimestampLiteral parses a query filter literal the same way the
// recognizer would, requiring the literal to be consumed in full.
func ParseTimestampLiteral(s string) (TimestampValue, bool) {
	tok, n, ok := matchTimestamp(s)
	if !ok || n != len(s) {
		return TimestampValue{}, false
	}

	return tok.Timestamp, true
}
