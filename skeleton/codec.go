package skeleton

import (
	"encoding/binary"

	"github.com/ext-sakamoro/ALICE-Text/column"
)

// EncodeStreams serializes a run of per-record Streams into the canonical
// uncompressed skeleton blob: a record count header followed by, per
// record, a segment count and each segment as a tag byte plus its payload
// (a length-prefixed literal, or a column_id+index placeholder pair).
func EncodeStreams(streams []Stream) []byte {
	scratch := make([]byte, binary.MaxVarintLen64)
	buf := make([]byte, 0, len(streams)*16)

	n := binary.PutUvarint(scratch, uint64(len(streams)))
	buf = append(buf, scratch[:n]...)

	for _, st := range streams {
		n = binary.PutUvarint(scratch, uint64(len(st.Segments)))
		buf = append(buf, scratch[:n]...)

		for _, seg := range st.Segments {
			buf = append(buf, byte(seg.Kind))
			switch seg.Kind {
			case SegLiteral:
				n = binary.PutUvarint(scratch, uint64(len(seg.Literal)))
				buf = append(buf, scratch[:n]...)
				buf = append(buf, seg.Literal...)
			case SegPlaceholder:
				n = binary.PutUvarint(scratch, uint64(seg.Placeholder.ColumnID))
				buf = append(buf, scratch[:n]...)
				n = binary.PutUvarint(scratch, uint64(seg.Placeholder.Index))
				buf = append(buf, scratch[:n]...)
			}
		}
	}

	return buf
}

// DecodeStreams reverses EncodeStreams.
func DecodeStreams(data []byte) ([]Stream, error) {
	recCount64, n := binary.Uvarint(data)
	if n <= 0 {
		return nil, errTruncated
	}
	r := data[n:]

	streams := make([]Stream, 0, recCount64)
	for i := uint64(0); i < recCount64; i++ {
		segCount64, n := binary.Uvarint(r)
		if n <= 0 {
			return nil, errTruncated
		}
		r = r[n:]

		segs := make([]Segment, 0, segCount64)
		for j := uint64(0); j < segCount64; j++ {
			if len(r) < 1 {
				return nil, errTruncated
			}
			kind := SegmentKind(r[0])
			r = r[1:]

			switch kind {
			case SegLiteral:
				ln, n := binary.Uvarint(r)
				if n <= 0 {
					return nil, errTruncated
				}
				r = r[n:]
				if uint64(len(r)) < ln {
					return nil, errTruncated
				}
				segs = append(segs, Segment{Kind: SegLiteral, Literal: string(r[:ln])})
				r = r[ln:]
			case SegPlaceholder:
				colID, n := binary.Uvarint(r)
				if n <= 0 {
					return nil, errTruncated
				}
				r = r[n:]
				idx, n := binary.Uvarint(r)
				if n <= 0 {
					return nil, errTruncated
				}
				r = r[n:]
				segs = append(segs, Segment{
					Kind:        SegPlaceholder,
					Placeholder: Placeholder{ColumnID: column.ID(colID), Index: int(idx)}, //nolint:gosec
				})
			default:
				return nil, errTruncated
			}
		}

		streams = append(streams, Stream{Segments: segs})
	}

	return streams, nil
}
