package column

import "encoding/binary"

// zigzagEncode maps a signed delta to an unsigned value so small negative
// and positive deltas both encode as few varint bytes.
func zigzagEncode(v int64) uint64 {
	return uint64((v << 1) ^ (v >> 63))
}

func zigzagDecode(v uint64) int64 {
	return int64(v>>1) ^ -int64(v&1)
}

// encodeDeltaI64 delta-encodes a monotonic-ish int64 sequence (epoch
// milliseconds, epoch days) as zigzag varints: the first element is stored
// absolute, every later one as the zigzag-encoded delta from its
// predecessor. This is the encoding spec'd for timestamps, dates and times.
func encodeDeltaI64(values []int64) []byte {
	buf := make([]byte, 0, len(values)*2+binary.MaxVarintLen64)
	scratch := make([]byte, binary.MaxVarintLen64)

	var prev int64
	for i, v := range values {
		var delta int64
		if i == 0 {
			delta = v
		} else {
			delta = v - prev
		}
		prev = v

		n := binary.PutUvarint(scratch, zigzagEncode(delta))
		buf = append(buf, scratch[:n]...)
	}

	return buf
}

func decodeDeltaI64(data []byte, count int) ([]int64, error) {
	values := make([]int64, 0, count)
	var prev int64

	r := data
	for i := 0; i < count; i++ {
		uv, n := binary.Uvarint(r)
		if n <= 0 {
			return nil, errTruncated
		}
		r = r[n:]

		delta := zigzagDecode(uv)
		var v int64
		if i == 0 {
			v = delta
		} else {
			v = prev + delta
		}
		prev = v
		values = append(values, v)
	}

	return values, nil
}

// encodeDeltaU32 is encodeDeltaI64 narrowed to uint32 domains (dates, times)
// that never go negative but still benefit from delta+zigzag packing.
func encodeDeltaU32(values []uint32) []byte {
	as64 := make([]int64, len(values))
	for i, v := range values {
		as64[i] = int64(v)
	}

	return encodeDeltaI64(as64)
}

func decodeDeltaU32(data []byte, count int) ([]uint32, error) {
	as64, err := decodeDeltaI64(data, count)
	if err != nil {
		return nil, err
	}

	out := make([]uint32, len(as64))
	for i, v := range as64 {
		out[i] = uint32(v) //nolint:gosec
	}

	return out, nil
}
