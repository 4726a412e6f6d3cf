package column

import "encoding/binary"

// LogLevelsColumn packs recognized log level indices as a raw byte array,
// the tightest possible encoding for an 8-entry closed dictionary.
type LogLevelsColumn struct {
	Values []uint8
}

func (c *LogLevelsColumn) ID() ID              { return LogLevels }
func (c *LogLevelsColumn) Len() int            { return len(c.Values) }
func (c *LogLevelsColumn) ElementType() string { return "u8" }
func (c *LogLevelsColumn) Encoding() string    { return "packed_byte_array" }

func (c *LogLevelsColumn) Encode() []byte {
	scratch := make([]byte, binary.MaxVarintLen64)
	n := binary.PutUvarint(scratch, uint64(len(c.Values)))

	buf := append([]byte(nil), scratch[:n]...)

	return append(buf, c.Values...)
}

// DecodeLogLevels reverses LogLevelsColumn.Encode.
func DecodeLogLevels(data []byte) (*LogLevelsColumn, error) {
	count64, n := binary.Uvarint(data)
	if n <= 0 {
		return nil, errTruncated
	}
	count := int(count64)
	r := data[n:]
	if len(r) < count {
		return nil, errTruncated
	}

	return &LogLevelsColumn{Values: append([]byte(nil), r[:count]...)}, nil
}
