package recognize

// matcher attempts an anchored match at the very start of s (s is always a
// suffix of the record being scanned). It returns the recognized token with
// Start/End left at 0/length — the caller rebases them to the record's
// coordinate space — the matched byte length, and whether a match occurred.
type matcher func(s string) (Token, int, bool)

// matchersByPriority holds one matcher per Kind, in the exact priority
// order spec'd: Timestamp, Date, Time, UUID, IPv6, IPv4, LogLevel, URL,
// Email, Path, Number.
var matchersByPriority = []matcher{
	matchTimestamp,
	matchDate,
	matchTime,
	matchUUID,
	matchIPv6,
	matchIPv4,
	matchLogLevel,
	matchURL,
	matchEmail,
	matchPath,
	matchNumber,
}

// Scan partitions record into typed Tokens and the literal gaps between
// them. It never errors: bytes that match nothing are simply left out of
// the returned token list, and the caller (the skeletonizer) treats the
// gap between consecutive tokens — or before the first / after the last —
// as literal text.
//
// Matching policy: a single left-to-right scan. At each byte position,
// every pattern in matchersByPriority is tried; the longest match wins,
// and ties are broken by priority (first in the list). This differs from
// handing the whole alternation to regexp directly, whose leftmost-first
// semantics pick the first alternative that matches at all, not the
// longest — which would violate the "longest match wins" half of the
// policy on inputs like "2024-01-15T10:30:45Z" where Date alone is also a
// valid, shorter match at the same start position.
func Scan(record string) []Token {
	var tokens []Token
	i := 0
	n := len(record)

	for i < n {
		rest := record[i:]

		var (
			bestLen int
			best    Token
			found   bool
		)

		for _, m := range matchersByPriority {
			tok, length, ok := m(rest)
			if !ok || length == 0 {
				continue
			}
			if length > bestLen {
				bestLen = length
				best = tok
				found = true
			}
		}

		if !found {
			i++
			continue
		}

		best.Start = i
		best.End = i + bestLen
		tokens = append(tokens, best)
		i += bestLen
	}

	return tokens
}
