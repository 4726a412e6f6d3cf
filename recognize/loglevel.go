package recognize

import "regexp"

// logLevelAlphabet is the closed dictionary log_levels columns encode
// against; a level's column value is its index in this slice.
var logLevelAlphabet = []string{"TRACE", "DEBUG", "INFO", "WARN", "WARNING", "ERROR", "FATAL", "CRITICAL"}

// logLevelPattern lists longer alternatives before their prefixes (WARNING
// before WARN) so the regexp package's leftmost-alternative semantics pick
// the longest one.
var logLevelPattern = regexp.MustCompile(`^(?:WARNING|CRITICAL|DEBUG|ERROR|FATAL|TRACE|INFO|WARN)\b`)

var logLevelIndex = func() map[string]uint8 {
	m := make(map[string]uint8, len(logLevelAlphabet))
	for i, s := range logLevelAlphabet {
		m[s] = uint8(i) //nolint:gosec
	}

	return m
}()

func matchLogLevel(s string) (Token, int, bool) {
	loc := logLevelPattern.FindStringIndex(s)
	if loc == nil || loc[0] != 0 {
		return Token{}, 0, false
	}
	matched := s[:loc[1]]

	idx, ok := logLevelIndex[matched]
	if !ok {
		return Token{}, 0, false
	}

	tok := Token{Kind: KindLogLevel, Start: 0, End: loc[1], LogLevel: idx}

	return tok, loc[1], true
}

// LogLevelName renders a log_levels column index back to its canonical
// uppercase name.
func LogLevelName(idx uint8) string { return logLevelAlphabet[idx] }

// ParseLogLevel parses a query literal against the dictionary alphabet,
// case-insensitively, as spec'd for filter literal coercion.
func ParseLogLevel(s string) (uint8, bool) {
	up := make([]byte, len(s))
	for i := 0; i < len(s); i++ {
		c := s[i]
		if c >= 'a' && c <= 'z' {
			c -= 'a' - 'A'
		}
		up[i] = c
	}
	idx, ok := logLevelIndex[string(up)]

	return idx, ok
}
