// Package container implements the v3 ALICE-Text file format: a
// front-loaded directory of fixed-size column entries followed by
// independently entropy-compressed column blobs and a trailing CRC32
// footer, so a reader can open a file, inspect every column's shape, and
// fetch only the blobs a query actually touches.
package container

import (
	"github.com/ext-sakamoro/ALICE-Text/column"
	"github.com/ext-sakamoro/ALICE-Text/endian"
)

// entrySize is the fixed on-disk size of one ColumnEntry: 4+1+1+2+8+8+8+8+4
// data bytes, padded to a round 48.
const entrySize = 48

// entryFlag bits packed into ColumnEntry.Flags.
const (
	flagRecordAligned uint16 = 1 << 0
	flagHasPresence   uint16 = 1 << 1
	flagHasHints      uint16 = 1 << 2
)

// skeletonColumnID is a reserved ColumnId, outside the twelve real
// columns, that addresses the skeleton stream's own directory entry.
const skeletonColumnID column.ID = 0xFFFFFFFF

// ColumnEntry is one fixed-size directory record describing where a
// column's compressed blob lives and how to decompress and decode it.
type ColumnEntry struct {
	ColumnID        column.ID
	Encoding        uint8
	ElementType     uint8
	Flags           uint16
	RowCount        uint64
	UncompressedLen uint64
	CompressedLen   uint64
	FileOffset      uint64
	Checksum        uint32 // CRC32 of the uncompressed column bytes
}

func (e ColumnEntry) hasFlag(f uint16) bool { return e.Flags&f != 0 }

// RecordAligned reports whether this column's i-th element corresponds to
// the i-th input record.
func (e ColumnEntry) RecordAligned() bool { return e.hasFlag(flagRecordAligned) }

// HasPresence reports whether a presence bitmap immediately precedes this
// column's value bytes within its (already decompressed) blob.
func (e ColumnEntry) HasPresence() bool { return e.hasFlag(flagHasPresence) }

// HasHints reports whether this column's encoding carries ancillary
// rendering hints alongside its primary values (true for every column type
// in this format — kept as an explicit bit for forward compatibility with
// a hypothetical hint-free encoding).
func (e ColumnEntry) HasHints() bool { return e.hasFlag(flagHasHints) }

// Bytes serializes the entry to its fixed 48-byte on-disk form.
func (e ColumnEntry) Bytes(engine endian.EndianEngine) []byte {
	buf := make([]byte, entrySize)
	engine.PutUint32(buf[0:4], uint32(e.ColumnID))
	buf[4] = e.Encoding
	buf[5] = e.ElementType
	engine.PutUint16(buf[6:8], e.Flags)
	engine.PutUint64(buf[8:16], e.RowCount)
	engine.PutUint64(buf[16:24], e.UncompressedLen)
	engine.PutUint64(buf[24:32], e.CompressedLen)
	engine.PutUint64(buf[32:40], e.FileOffset)
	engine.PutUint32(buf[40:44], e.Checksum)
	// buf[44:48] reserved, zero

	return buf
}

// ParseColumnEntry reverses ColumnEntry.Bytes.
func ParseColumnEntry(data []byte, engine endian.EndianEngine) (ColumnEntry, error) {
	if len(data) < entrySize {
		return ColumnEntry{}, errHeaderCorrupt
	}

	return ColumnEntry{
		ColumnID:        column.ID(engine.Uint32(data[0:4])),
		Encoding:        data[4],
		ElementType:     data[5],
		Flags:           engine.Uint16(data[6:8]),
		RowCount:        engine.Uint64(data[8:16]),
		UncompressedLen: engine.Uint64(data[16:24]),
		CompressedLen:   engine.Uint64(data[24:32]),
		FileOffset:      engine.Uint64(data[32:40]),
		Checksum:        engine.Uint32(data[40:44]),
	}, nil
}
