package column

import "encoding/binary"

// DatesColumn holds recognized Date tokens (epoch days), delta+zigzag
// varint encoded. Unlike timestamps/tz_specs, dates are addressed only
// through skeleton placeholders, not record position.
type DatesColumn struct {
	EpochDays []uint32
}

func (c *DatesColumn) ID() ID              { return Dates }
func (c *DatesColumn) Len() int            { return len(c.EpochDays) }
func (c *DatesColumn) ElementType() string { return "u32" }
func (c *DatesColumn) Encoding() string    { return "delta_zigzag_varint" }

func (c *DatesColumn) Encode() []byte {
	scratch := make([]byte, binary.MaxVarintLen64)
	n := binary.PutUvarint(scratch, uint64(len(c.EpochDays)))

	buf := append([]byte(nil), scratch[:n]...)
	buf = append(buf, encodeDeltaU32(c.EpochDays)...)

	return buf
}

// DecodeDates reverses DatesColumn.Encode.
func DecodeDates(data []byte) (*DatesColumn, error) {
	count64, n := binary.Uvarint(data)
	if n <= 0 {
		return nil, errTruncated
	}
	values, err := decodeDeltaU32(data[n:], int(count64))
	if err != nil {
		return nil, err
	}

	return &DatesColumn{EpochDays: values}, nil
}
