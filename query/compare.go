package query

import (
	"strings"

	"github.com/ext-sakamoro/ALICE-Text/column"
	"github.com/ext-sakamoro/ALICE-Text/errs"
)

// compareAt three-way compares the idx-th value of col against want,
// returning <0/0/>0 the way sort.Search-style comparators do. col must be
// the concrete decoded type colID's own Decode function produces.
func compareAt(colID column.ID, col column.Column, idx int, want literal) (int, error) {
	switch colID {
	case column.Timestamps:
		v := col.(*column.TimestampsColumn).EpochMs[idx]

		return cmpI64(v, want.i64), nil

	case column.Dates:
		v := col.(*column.DatesColumn).EpochDays[idx]

		return cmpU32(v, want.u32), nil

	case column.Times:
		v := col.(*column.TimesColumn).MsFromMidnight[idx]

		return cmpU32(v, want.u32), nil

	case column.IPv4s:
		v := col.(*column.IPv4Column).Values[idx]

		return cmpU32(v, want.u32), nil

	case column.IPv6s:
		c := col.(*column.IPv6Column)

		return cmpU128(c.Hi[idx], c.Lo[idx], want.hi, want.lo), nil

	case column.UUIDs:
		c := col.(*column.UUIDsColumn)

		return cmpU128(c.Hi[idx], c.Lo[idx], want.hi, want.lo), nil

	case column.LogLevels:
		v := col.(*column.LogLevelsColumn).Values[idx]

		return cmpU8(v, want.u8), nil

	case column.Numbers:
		v := col.(*column.NumbersColumn).Values[idx]

		return cmpF64(v, want.f64), nil

	case column.Emails:
		return strings.Compare(col.(*column.StringsColumn).Values[idx], want.text), nil

	case column.URLs:
		return strings.Compare(col.(*column.StringsColumn).Values[idx], want.text), nil

	case column.Paths:
		return strings.Compare(col.(*column.StringsColumn).Values[idx], want.text), nil

	default:
		return 0, errs.ErrInternal
	}
}

func cmpI64(a, b int64) int {
	switch {
	case a < b:
		return -1
	case a > b:
		return 1
	default:
		return 0
	}
}

func cmpU32(a, b uint32) int {
	switch {
	case a < b:
		return -1
	case a > b:
		return 1
	default:
		return 0
	}
}

func cmpU8(a, b uint8) int {
	switch {
	case a < b:
		return -1
	case a > b:
		return 1
	default:
		return 0
	}
}

func cmpF64(a, b float64) int {
	switch {
	case a < b:
		return -1
	case a > b:
		return 1
	default:
		return 0
	}
}

// cmpU128 compares two 128-bit values given as big-endian hi/lo halves.
func cmpU128(aHi, aLo, bHi, bLo uint64) int {
	if c := cmpU64(aHi, bHi); c != 0 {
		return c
	}

	return cmpU64(aLo, bLo)
}

func cmpU64(a, b uint64) int {
	switch {
	case a < b:
		return -1
	case a > b:
		return 1
	default:
		return 0
	}
}
