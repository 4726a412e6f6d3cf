package column

import (
	"encoding/binary"

	"github.com/ext-sakamoro/ALICE-Text/recognize"
)

// TzSpecsColumn holds one TzSpec per recognized timestamp, run-length
// encoded on Kind (real logs are dominated by one timezone convention) with
// OffsetMinutes packed separately for the TzOffset entries only.
type TzSpecsColumn struct {
	Specs []recognize.TzSpec
}

func (c *TzSpecsColumn) ID() ID              { return TzSpecs }
func (c *TzSpecsColumn) Len() int            { return len(c.Specs) }
func (c *TzSpecsColumn) ElementType() string { return "tz_spec" }
func (c *TzSpecsColumn) Encoding() string    { return "run_length+packed_offsets" }

func (c *TzSpecsColumn) Encode() []byte {
	scratch := make([]byte, binary.MaxVarintLen64)
	buf := make([]byte, 0, len(c.Specs)*2+8)

	n := binary.PutUvarint(scratch, uint64(len(c.Specs)))
	buf = append(buf, scratch[:n]...)

	// run-length encode the Kind sequence
	i := 0
	for i < len(c.Specs) {
		k := c.Specs[i].Kind
		run := 1
		for i+run < len(c.Specs) && c.Specs[i+run].Kind == k {
			run++
		}
		buf = append(buf, byte(k))
		n = binary.PutUvarint(scratch, uint64(run))
		buf = append(buf, scratch[:n]...)
		i += run
	}

	var offsets []int16
	for _, s := range c.Specs {
		if s.Kind == recognize.TzOffset {
			offsets = append(offsets, s.OffsetMinutes)
		}
	}
	n = binary.PutUvarint(scratch, uint64(len(offsets)))
	buf = append(buf, scratch[:n]...)
	for _, o := range offsets {
		buf = appendU32LE(buf, uint32(uint16(o))) //nolint:gosec
	}

	// one bit per TzOffset entry: whether the source omitted the ':' in
	// "+HHMM", needed to reproduce the original separator byte-exactly.
	noColonBits := make([]byte, (len(offsets)+7)/8)
	oi := 0
	for _, s := range c.Specs {
		if s.Kind != recognize.TzOffset {
			continue
		}
		if s.NoColon {
			noColonBits[oi/8] |= 1 << uint(oi%8) //nolint:gosec
		}
		oi++
	}
	buf = append(buf, noColonBits...)

	return buf
}

// DecodeTzSpecs reverses TzSpecsColumn.Encode.
func DecodeTzSpecs(data []byte) (*TzSpecsColumn, error) {
	count64, n := binary.Uvarint(data)
	if n <= 0 {
		return nil, errTruncated
	}
	count := int(count64)
	r := data[n:]

	kinds := make([]recognize.TzKind, 0, count)
	for len(kinds) < count {
		if len(r) < 1 {
			return nil, errTruncated
		}
		k := recognize.TzKind(r[0])
		r = r[1:]

		run64, n := binary.Uvarint(r)
		if n <= 0 {
			return nil, errTruncated
		}
		r = r[n:]

		for j := uint64(0); j < run64; j++ {
			kinds = append(kinds, k)
		}
	}

	numOffsets64, n := binary.Uvarint(r)
	if n <= 0 {
		return nil, errTruncated
	}
	numOffsets := int(numOffsets64)
	r = r[n:]

	offsets, err := readU32LE(r, numOffsets)
	if err != nil {
		return nil, err
	}
	r = r[numOffsets*4:]

	numColonBytes := (numOffsets + 7) / 8
	if len(r) < numColonBytes {
		return nil, errTruncated
	}
	noColonBits := r[:numColonBytes]

	specs := make([]recognize.TzSpec, count)
	oi := 0
	for i, k := range kinds {
		spec := recognize.TzSpec{Kind: k}
		if k == recognize.TzOffset {
			spec.OffsetMinutes = int16(uint16(offsets[oi])) //nolint:gosec
			spec.NoColon = noColonBits[oi/8]&(1<<uint(oi%8)) != 0
			oi++
		}
		specs[i] = spec
	}

	return &TzSpecsColumn{Specs: specs}, nil
}
