package column

import "encoding/binary"

// IPv4Column packs recognized IPv4 addresses as a raw little-endian u32
// array — dense, fixed-width, nothing to delta-encode since addresses in a
// log are rarely monotonic.
type IPv4Column struct {
	Values []uint32
}

func (c *IPv4Column) ID() ID              { return IPv4s }
func (c *IPv4Column) Len() int            { return len(c.Values) }
func (c *IPv4Column) ElementType() string { return "u32" }
func (c *IPv4Column) Encoding() string    { return "packed_le_array" }

func (c *IPv4Column) Encode() []byte {
	scratch := make([]byte, binary.MaxVarintLen64)
	n := binary.PutUvarint(scratch, uint64(len(c.Values)))

	buf := append([]byte(nil), scratch[:n]...)
	for _, v := range c.Values {
		buf = appendU32LE(buf, v)
	}

	return buf
}

// DecodeIPv4 reverses IPv4Column.Encode.
func DecodeIPv4(data []byte) (*IPv4Column, error) {
	count64, n := binary.Uvarint(data)
	if n <= 0 {
		return nil, errTruncated
	}
	values, err := readU32LE(data[n:], int(count64))
	if err != nil {
		return nil, err
	}

	return &IPv4Column{Values: values}, nil
}
