package column

import "encoding/binary"

// IPv6Column packs the normalized 128-bit value of each recognized address
// (as two u64 halves, for typed comparisons) alongside the verbatim source
// text needed to render the exact original spelling — elision placement and
// letter case are not canonical, so the compact alternative (an elision
// index + case hint) was dropped in favor of keeping the text outright.
type IPv6Column struct {
	Hi, Lo []uint64
	Text   []string
}

func (c *IPv6Column) ID() ID              { return IPv6s }
func (c *IPv6Column) Len() int            { return len(c.Hi) }
func (c *IPv6Column) ElementType() string { return "u128" }
func (c *IPv6Column) Encoding() string    { return "packed_le_array+hints" }

func (c *IPv6Column) Encode() []byte {
	scratch := make([]byte, binary.MaxVarintLen64)
	n := binary.PutUvarint(scratch, uint64(len(c.Hi)))

	buf := append([]byte(nil), scratch[:n]...)
	for i := range c.Hi {
		buf = appendU64LE(buf, c.Hi[i])
		buf = appendU64LE(buf, c.Lo[i])
	}
	buf = append(buf, encodeStrings(c.Text)...)

	return buf
}

// DecodeIPv6 reverses IPv6Column.Encode.
func DecodeIPv6(data []byte) (*IPv6Column, error) {
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

	text, err := decodeStrings(r, count)
	if err != nil {
		return nil, err
	}

	return &IPv6Column{Hi: hi, Lo: lo, Text: text}, nil
}
