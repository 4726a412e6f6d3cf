package query

import (
	"fmt"

	"github.com/ext-sakamoro/ALICE-Text/column"
	"github.com/ext-sakamoro/ALICE-Text/errs"
	"github.com/ext-sakamoro/ALICE-Text/recognize"
)

// literal is a coerced filter value, carrying exactly the representation
// compareAt needs for colID's element type.
type literal struct {
	i64  int64
	u32  uint32
	u8   uint8
	f64  float64
	hi   uint64
	lo   uint64
	text string
}

// coerce parses raw using the same recognizer rules the column's own
// tokens were built from, per the design's literal-coercion requirement.
func coerce(colID column.ID, raw string) (literal, error) {
	switch colID {
	case column.Timestamps:
		tv, ok := recognize.ParseTimestampLiteral(raw)
		if !ok {
			return literal{}, typeMismatch(colID, raw)
		}

		return literal{i64: tv.EpochMs}, nil

	case column.Dates:
		d, ok := recognize.ParseDateLiteral(raw)
		if !ok {
			return literal{}, typeMismatch(colID, raw)
		}

		return literal{u32: d}, nil

	case column.Times:
		tv, ok := recognize.ParseTimeLiteral(raw)
		if !ok {
			return literal{}, typeMismatch(colID, raw)
		}

		return literal{u32: tv.MsFromMidnight}, nil

	case column.IPv4s:
		v, ok := recognize.ParseIPv4Literal(raw)
		if !ok {
			return literal{}, typeMismatch(colID, raw)
		}

		return literal{u32: v}, nil

	case column.IPv6s:
		v, ok := recognize.ParseIPv6Literal(raw)
		if !ok {
			return literal{}, typeMismatch(colID, raw)
		}

		return literal{hi: v.Hi, lo: v.Lo}, nil

	case column.UUIDs:
		v, ok := recognize.ParseUUIDLiteral(raw)
		if !ok {
			return literal{}, typeMismatch(colID, raw)
		}

		return literal{hi: v.Hi, lo: v.Lo}, nil

	case column.LogLevels:
		idx, ok := recognize.ParseLogLevel(raw)
		if !ok {
			return literal{}, typeMismatch(colID, raw)
		}

		return literal{u8: idx}, nil

	case column.Numbers:
		f, ok := recognize.ParseNumberLiteral(raw)
		if !ok {
			return literal{}, typeMismatch(colID, raw)
		}

		return literal{f64: f}, nil

	default: // Emails, URLs, Paths
		return literal{text: raw}, nil
	}
}

func typeMismatch(colID column.ID, raw string) error {
	return fmt.Errorf("query: literal %q is not a valid %s: %w", raw, colID, errs.ErrTypeMismatch)
}
