package compress

import (
	"fmt"
	"strings"
)

// Level selects a speed/ratio tradeoff for the entropy coder. Only the zstd
// codec uses it; the other algorithms ignore it. It corresponds to the fast/balanced/best ladder
// the command surface exposes via --level and ALICE_TEXT_LEVEL.
type Level uint8

const (
	// LevelFast favors compression/decompression speed over ratio.
	LevelFast Level = iota
	// LevelBalanced is the default tradeoff.
	LevelBalanced
	// LevelBest favors ratio over speed.
	LevelBest
)

// String returns the lower-case name used on the command line and in ALICE_TEXT_LEVEL.
func (l Level) String() string {
	switch l {
	case LevelFast:
		return "fast"
	case LevelBalanced:
		return "balanced"
	case LevelBest:
		return "best"
	default:
		return fmt.Sprintf("Level(%d)", uint8(l))
	}
}

// ParseLevel parses a case-insensitive level name.
func ParseLevel(s string) (Level, error) {
	switch strings.ToLower(s) {
	case "fast":
		return LevelFast, nil
	case "balanced", "":
		return LevelBalanced, nil
	case "best":
		return LevelBest, nil
	default:
		return LevelBalanced, fmt.Errorf("compress: invalid level %q", s)
	}
}

// zstdLevel maps the fast/balanced/best ladder to a concrete zstd compression
// level, following the same three-point ladder the Rust original's
// CompressionMode/CompressionLevel used (3/10/19).
func (l Level) zstdLevel() int {
	switch l {
	case LevelFast:
		return 3
	case LevelBest:
		return 19
	default:
		return 10
	}
}
