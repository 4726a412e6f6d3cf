package column

import (
	"encoding/binary"
	"math"
)

// NumbersColumn packs each recognized number as an IEEE-754 f64 for typed
// comparisons, with the original literal text (Repr) kept in a parallel
// side vector so formatting quirks — a trailing dot, a leading '+', an
// exponent — still round-trip exactly.
type NumbersColumn struct {
	Values []float64
	Repr   []string
}

func (c *NumbersColumn) ID() ID              { return Numbers }
func (c *NumbersColumn) Len() int            { return len(c.Values) }
func (c *NumbersColumn) ElementType() string { return "f64" }
func (c *NumbersColumn) Encoding() string    { return "f64_array+repr_strings" }

func (c *NumbersColumn) Encode() []byte {
	scratch := make([]byte, binary.MaxVarintLen64)
	n := binary.PutUvarint(scratch, uint64(len(c.Values)))

	buf := append([]byte(nil), scratch[:n]...)
	for _, v := range c.Values {
		buf = appendU64LE(buf, math.Float64bits(v))
	}
	buf = append(buf, encodeStrings(c.Repr)...)

	return buf
}

// DecodeNumbers reverses NumbersColumn.Encode.
func DecodeNumbers(data []byte) (*NumbersColumn, error) {
	count64, n := binary.Uvarint(data)
	if n <= 0 {
		return nil, errTruncated
	}
	count := int(count64)
	r := data[n:]

	bits, err := readU64LE(r, count)
	if err != nil {
		return nil, err
	}
	values := make([]float64, count)
	for i, b := range bits {
		values[i] = math.Float64frombits(b)
	}
	r = r[count*8:]

	repr, err := decodeStrings(r, count)
	if err != nil {
		return nil, err
	}

	return &NumbersColumn{Values: values, Repr: repr}, nil
}
