package column

import "encoding/binary"

// TimesColumn holds recognized Time tokens, delta+zigzag varint encoded on
// MsFromMidnight with a FracDigits hint vector for sub-millisecond digits.
type TimesColumn struct {
	MsFromMidnight []uint32
	FracDigits     []string
}

func (c *TimesColumn) ID() ID              { return Times }
func (c *TimesColumn) Len() int            { return len(c.MsFromMidnight) }
func (c *TimesColumn) ElementType() string { return "u32" }
func (c *TimesColumn) Encoding() string    { return "delta_zigzag_varint+hints" }

func (c *TimesColumn) Encode() []byte {
	scratch := make([]byte, binary.MaxVarintLen64)
	n := binary.PutUvarint(scratch, uint64(len(c.MsFromMidnight)))

	buf := append([]byte(nil), scratch[:n]...)
	buf = append(buf, encodeDeltaU32(c.MsFromMidnight)...)
	buf = append(buf, encodeStrings(c.FracDigits)...)

	return buf
}

// DecodeTimes reverses TimesColumn.Encode.
func DecodeTimes(data []byte) (*TimesColumn, error) {
	count64, n := binary.Uvarint(data)
	if n <= 0 {
		return nil, errTruncated
	}
	count := int(count64)
	r := data[n:]

	deltaLen := varintsByteLen(r, count)
	if deltaLen < 0 {
		return nil, errTruncated
	}
	values, err := decodeDeltaU32(r[:deltaLen], count)
	if err != nil {
		return nil, err
	}
	r = r[deltaLen:]

	frac, err := decodeStrings(r, count)
	if err != nil {
		return nil, err
	}

	return &TimesColumn{MsFromMidnight: values, FracDigits: frac}, nil
}
