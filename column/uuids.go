package column

import (
	"encoding/binary"

	"github.com/ext-sakamoro/ALICE-Text/recognize"
)

// UUIDsColumn packs the 128-bit value of each recognized UUID alongside a
// per-element case hint (lower/upper/mixed) and, only for the mixed-case
// entries, the verbatim text — the one case Render can't reconstruct from
// the value plus a 2-bit hint alone.
type UUIDsColumn struct {
	Hi, Lo   []uint64
	Case     []recognize.UUIDCase
	Verbatim []string // parallel to the subsequence of entries with Case == UUIDMixed
}

func (c *UUIDsColumn) ID() ID              { return UUIDs }
func (c *UUIDsColumn) Len() int            { return len(c.Hi) }
func (c *UUIDsColumn) ElementType() string { return "u128" }
func (c *UUIDsColumn) Encoding() string    { return "packed_le_array+case_hints" }

func (c *UUIDsColumn) Encode() []byte {
	scratch := make([]byte, binary.MaxVarintLen64)
	n := binary.PutUvarint(scratch, uint64(len(c.Hi)))

	buf := append([]byte(nil), scratch[:n]...)
	for i := range c.Hi {
		buf = appendU64LE(buf, c.Hi[i])
		buf = appendU64LE(buf, c.Lo[i])
	}
	for _, cs := range c.Case {
		buf = append(buf, byte(cs))
	}

	var mixed []string
	for _, s := range c.Verbatim {
		mixed = append(mixed, s)
	}
	n = binary.PutUvarint(scratch, uint64(len(mixed)))
	buf = append(buf, scratch[:n]...)
	buf = append(buf, encodeStrings(mixed)...)

	return buf
}

// DecodeUUIDs reverses UUIDsColumn.Encode.
func DecodeUUIDs(data []byte) (*UUIDsColumn, error) {
	count64, n := binary.Uvarint(data)
	if n <= 0 {
		return nil, errTruncated
	}
	count := int(count64)
	r := data[n:]

	if len(r) < count*16 {
		return nil, errTruncated
	}
	hi := make([]uint64, count)
	lo := make([]uint64, count)
	for i := 0; i < count; i++ {
		hi[i] = binary.LittleEndian.Uint64(r[i*16:])
		lo[i] = binary.LittleEndian.Uint64(r[i*16+8:])
	}
	r = r[count*16:]

	if len(r) < count {
		return nil, errTruncated
	}
	cases := make([]recognize.UUIDCase, count)
	for i := 0; i < count; i++ {
		cases[i] = recognize.UUIDCase(r[i])
	}
	r = r[count:]

	numMixed64, n := binary.Uvarint(r)
	if n <= 0 {
		return nil, errTruncated
	}
	r = r[n:]

	verbatim, err := decodeStrings(r, int(numMixed64))
	if err != nil {
		return nil, err
	}

	return &UUIDsColumn{Hi: hi, Lo: lo, Case: cases, Verbatim: verbatim}, nil
}
