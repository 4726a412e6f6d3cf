package column

import "encoding/binary"

// TimestampsColumn is the record-aligned column of recognized Timestamp
// token values. EpochMs is delta+zigzag varint encoded; Sep and FracDigits
// are the formatting hints (date/time separator byte, sub-millisecond
// fractional digits) needed to render each value back to its exact source
// bytes — they ride along in the same blob since the fixed ColumnId set has
// no separate slot for them.
type TimestampsColumn struct {
	EpochMs    []int64
	Sep        []byte
	FracDigits []string
}

func (c *TimestampsColumn) ID() ID             { return Timestamps }
func (c *TimestampsColumn) Len() int           { return len(c.EpochMs) }
func (c *TimestampsColumn) ElementType() string { return "i64" }
func (c *TimestampsColumn) Encoding() string    { return "delta_zigzag_varint+hints" }

func (c *TimestampsColumn) Encode() []byte {
	scratch := make([]byte, binary.MaxVarintLen64)
	n := binary.PutUvarint(scratch, uint64(len(c.EpochMs)))

	buf := make([]byte, 0, len(scratch[:n])+len(c.EpochMs)*3+16)
	buf = append(buf, scratch[:n]...)
	buf = append(buf, encodeDeltaI64(c.EpochMs)...)
	buf = append(buf, c.Sep...)
	buf = append(buf, encodeStrings(c.FracDigits)...)

	return buf
}

// DecodeTimestamps reverses TimestampsColumn.Encode.
func DecodeTimestamps(data []byte) (*TimestampsColumn, error) {
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
	values, err := decodeDeltaI64(r[:deltaLen], count)
	if err != nil {
		return nil, err
	}
	r = r[deltaLen:]

	if len(r) < count {
		return nil, errTruncated
	}
	sep := append([]byte(nil), r[:count]...)
	r = r[count:]

	frac, err := decodeStrings(r, count)
	if err != nil {
		return nil, err
	}

	return &TimestampsColumn{EpochMs: values, Sep: sep, FracDigits: frac}, nil
}

// varintsByteLen scans count consecutive uvarints in data and returns the
// total byte length they occupy, or -1 if data is truncated mid-sequence.
func varintsByteLen(data []byte, count int) int {
	r := data
	total := 0
	for i := 0; i < count; i++ {
		_, n := binary.Uvarint(r)
		if n <= 0 {
			return -1
		}
		r = r[n:]
		total += n
	}

	return total
}
