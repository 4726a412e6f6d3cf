// Package column implements the columnar encoder: per-type, densely packed
// binary encodings for each of the twelve fixed ColumnIds, built from the
// tokens the recognizer produces.
//
// Every column type exposes Encode() (canonical uncompressed bytes) and a
// package-level Decode function that reverses it; the container package
// wraps Encode's output with an entropy codec before writing it to disk and
// unwraps it with the matching codec before calling Decode.
package column

import "fmt"

// ID is the dense enum identifying one of the fixed columns spec'd for
// ALICE-Text. Values are stable across versions since they are persisted
// verbatim in ColumnEntry.ColumnID.
type ID uint32

const (
	Timestamps ID = iota
	TzSpecs
	Dates
	Times
	IPv4s
	IPv6s
	UUIDs
	LogLevels
	Numbers
	Emails
	URLs
	Paths

	// numColumnIDs is a sentinel, not itself a valid ID.
	numColumnIDs
)

// All lists every ColumnId in a stable order, used when iterating a
// container's full column set (e.g. in the v2 monolithic codec).
func All() []ID {
	ids := make([]ID, numColumnIDs)
	for i := range ids {
		ids[i] = ID(i) //nolint:gosec
	}

	return ids
}

func (id ID) String() string {
	switch id {
	case Timestamps:
		return "timestamps"
	case TzSpecs:
		return "tz_specs"
	case Dates:
		return "dates"
	case Times:
		return "times"
	case IPv4s:
		return "ipv4"
	case IPv6s:
		return "ipv6"
	case UUIDs:
		return "uuids"
	case LogLevels:
		return "log_levels"
	case Numbers:
		return "numbers"
	case Emails:
		return "emails"
	case URLs:
		return "urls"
	case Paths:
		return "paths"
	default:
		return fmt.Sprintf("ID(%d)", uint32(id))
	}
}

// ParseID parses a column's canonical name (as returned by String) back
// into its ID, for command-line column references like --where.
func ParseID(name string) (ID, bool) {
	for _, id := range All() {
		if id.String() == name {
			return id, true
		}
	}

	return 0, false
}

// RecordAligned reports whether a column's i-th element corresponds to the
// i-th input record (padded by a presence bitmap when sparse), as opposed
// to being addressed solely through skeleton placeholders.
func (id ID) RecordAligned() bool {
	return id == Timestamps || id == TzSpecs
}

// ElementType names id's logical element type, for stats/info reporting
// that shouldn't need to decompress and decode a column just to describe
// its shape.
func (id ID) ElementType() string {
	switch id {
	case Timestamps:
		return "i64"
	case TzSpecs:
		return "tz_spec"
	case Dates, Times:
		return "u32"
	case IPv4s:
		return "u32"
	case IPv6s, UUIDs:
		return "u128"
	case LogLevels:
		return "u8"
	case Numbers:
		return "f64"
	default: // Emails, URLs, Paths
		return "string"
	}
}

// DefaultEncoding names id's encoding scheme, for stats/info reporting.
func (id ID) DefaultEncoding() string {
	switch id {
	case Timestamps, Times:
		return "delta_zigzag_varint+hints"
	case Dates:
		return "delta_zigzag_varint"
	case TzSpecs:
		return "run_length+packed_offsets"
	case IPv4s:
		return "packed_le_array"
	case IPv6s:
		return "packed_le_array+hints"
	case UUIDs:
		return "packed_le_array+case_hints"
	case LogLevels:
		return "packed_byte_array"
	case Numbers:
		return "f64_array+repr_strings"
	default: // Emails, URLs, Paths
		return "length_prefixed_utf8"
	}
}
