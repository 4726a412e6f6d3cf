package container

import "github.com/ext-sakamoro/ALICE-Text/endian"

// Magic identifies a v3 ALICE-Text container.
var Magic = [8]byte{'A', 'L', 'I', 'C', 'E', 'T', 'X', 'T'}

// Version is the only container version this package writes.
const Version uint16 = 3

// flagHasSkeleton marks that a skeleton directory entry and blob follow the
// column directory.
const flagHasSkeleton uint16 = 1 << 0

const headerSize = 8 + 2 + 2 + 8 + 4 // magic + version + flags + row_count + column_count

// Header is the fixed-size file preamble: magic, version, flags, row
// count, and the column count that sizes the directory immediately
// following it.
type Header struct {
	Version     uint16
	Flags       uint16
	RowCount    uint64
	ColumnCount uint32
}

func (h Header) hasSkeleton() bool { return h.Flags&flagHasSkeleton != 0 }

// Bytes serializes the header to its fixed on-disk form.
func (h Header) Bytes(engine endian.EndianEngine) []byte {
	buf := make([]byte, 0, headerSize)
	buf = append(buf, Magic[:]...)
	buf = engine.AppendUint16(buf, h.Version)
	buf = engine.AppendUint16(buf, h.Flags)
	buf = engine.AppendUint64(buf, h.RowCount)
	buf = engine.AppendUint32(buf, h.ColumnCount)

	return buf
}

// ParseHeader reverses Header.Bytes, validating the magic and version.
func ParseHeader(data []byte, engine endian.EndianEngine) (Header, error) {
	if len(data) < headerSize {
		return Header{}, errHeaderCorrupt
	}
	if [8]byte(data[0:8]) != Magic {
		return Header{}, errMagicMismatch
	}

	version := engine.Uint16(data[8:10])
	if version != Version {
		return Header{}, errUnsupportedVersion(version)
	}

	return Header{
		Version:     version,
		Flags:       engine.Uint16(data[10:12]),
		RowCount:    engine.Uint64(data[12:20]),
		ColumnCount: engine.Uint32(data[20:24]),
	}, nil
}
