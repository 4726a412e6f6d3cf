package recognize

import "fmt"

// TzKind discriminates the three timezone suffix forms a timestamp may
// carry. Preserving which one was present — not just the UTC-normalized
// instant — is a hard round-trip invariant.
type TzKind uint8

const (
	// TzUtc renders as the literal suffix "Z".
	TzUtc TzKind = iota
	// TzOffset renders as "+HH:MM" or "-HH:MM".
	TzOffset
	// TzNaive renders as no suffix at all.
	TzNaive
)

// TzSpec is the timezone half of a recognized Timestamp token.
type TzSpec struct {
	Kind          TzKind
	OffsetMinutes int16 // meaningful only when Kind == TzOffset
	// NoColon records that the source offset used the colon-less "+HHMM"
	// form rather than "+HH:MM", so Render can reproduce the original
	// separator byte-exactly.
	NoColon bool
}

// Render reproduces the original suffix bytes for this timezone spec.
func (t TzSpec) Render() string {
	switch t.Kind {
	case TzUtc:
		return "Z"
	case TzOffset:
		sign := byte('+')
		m := t.OffsetMinutes
		if m < 0 {
			sign = '-'
			m = -m
		}

		if t.NoColon {
			return fmt.Sprintf("%c%02d%02d", sign, m/60, m%60)
		}

		return fmt.Sprintf("%c%02d:%02d", sign, m/60, m%60)
	default:
		return ""
	}
}
