package recognize

import "regexp"

var (
	urlPattern   = regexp.MustCompile(`^https?://[^\s<>"']+`)
	emailPattern = regexp.MustCompile(`^[a-zA-Z0-9._%+-]+@[a-zA-Z0-9.-]+\.[a-zA-Z]{2,}`)
	pathPattern  = regexp.MustCompile(`^(?:/[a-zA-Z0-9._-]+)+/?`)
)

func matchURL(s string) (Token, int, bool) {
	loc := urlPattern.FindStringIndex(s)
	if loc == nil || loc[0] != 0 {
		return Token{}, 0, false
	}

	return Token{Kind: KindURL, Start: 0, End: loc[1], Text: s[:loc[1]]}, loc[1], true
}

func matchEmail(s string) (Token, int, bool) {
	loc := emailPattern.FindStringIndex(s)
	if loc == nil || loc[0] != 0 {
		return Token{}, 0, false
	}

	return Token{Kind: KindEmail, Start: 0, End: loc[1], Text: s[:loc[1]]}, loc[1], true
}

func matchPath(s string) (Token, int, bool) {
	loc := pathPattern.FindStringIndex(s)
	if loc == nil || loc[0] != 0 {
		return Token{}, 0, false
	}

	return Token{Kind: KindPath, Start: 0, End: loc[1], Text: s[:loc[1]]}, loc[1], true
}
