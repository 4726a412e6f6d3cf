package container

import "github.com/ext-sakamoro/ALICE-Text/column"

// elementTypeCode and encodingCode are persisted as single bytes in each
// ColumnEntry purely for "info"/"stats" reporting without needing to
// decompress and decode a column's blob — decoding itself dispatches on
// ColumnID, which is already known and unambiguous.
func elementTypeCode(id column.ID) uint8 {
	switch id {
	case skeletonColumnID:
		return 255
	case column.Timestamps:
		return 0
	case column.TzSpecs:
		return 1
	case column.Dates, column.Times:
		return 2
	case column.IPv4s:
		return 3
	case column.IPv6s, column.UUIDs:
		return 4
	case column.LogLevels:
		return 5
	case column.Numbers:
		return 6
	default: // Emails, URLs, Paths
		return 7
	}
}

func encodingCode(id column.ID) uint8 {
	switch id {
	case skeletonColumnID:
		return 255
	case column.Timestamps, column.Dates, column.Times:
		return 0 // delta_zigzag_varint(+hints)
	case column.TzSpecs:
		return 1 // run_length+packed
	case column.IPv4s, column.IPv6s, column.UUIDs:
		return 2 // packed_le_array(+hints)
	case column.LogLevels:
		return 3 // packed_byte_array
	case column.Numbers:
		return 4 // f64_array+repr
	default: // Emails, URLs, Paths
		return 5 // length_prefixed_utf8
	}
}

// decodeColumn dispatches on id to the matching column.DecodeX function.
func decodeColumn(id column.ID, data []byte) (column.Column, error) {
	switch id {
	case column.Timestamps:
		return column.DecodeTimestamps(data)
	case column.TzSpecs:
		return column.DecodeTzSpecs(data)
	case column.Dates:
		return column.DecodeDates(data)
	case column.Times:
		return column.DecodeTimes(data)
	case column.IPv4s:
		return column.DecodeIPv4(data)
	case column.IPv6s:
		return column.DecodeIPv6(data)
	case column.UUIDs:
		return column.DecodeUUIDs(data)
	case column.LogLevels:
		return column.DecodeLogLevels(data)
	case column.Numbers:
		return column.DecodeNumbers(data)
	case column.Emails, column.URLs, column.Paths:
		return column.DecodeStrings(id, data)
	default:
		return nil, errColumnMissing(id)
	}
}
