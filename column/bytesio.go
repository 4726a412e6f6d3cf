package column

import "encoding/binary"

// encodeStrings packs a slice of strings as [uvarint length][bytes]... —
// the length-prefixed UTF-8 blob encoding spec'd for emails, urls and
// paths, and reused for the ancillary hint vectors (e.g. number repr,
// verbatim ipv6 text) that ride alongside a column's primary values.
func encodeStrings(values []string) []byte {
	buf := make([]byte, 0, len(values)*8)
	scratch := make([]byte, binary.MaxVarintLen64)

	for _, s := range values {
		n := binary.PutUvarint(scratch, uint64(len(s)))
		buf = append(buf, scratch[:n]...)
		buf = append(buf, s...)
	}

	return buf
}

func decodeStrings(data []byte, count int) ([]string, error) {
	out := make([]string, 0, count)
	r := data

	for i := 0; i < count; i++ {
		ln, n := binary.Uvarint(r)
		if n <= 0 {
			return nil, errTruncated
		}
		r = r[n:]

		if uint64(len(r)) < ln {
			return nil, errTruncated
		}
		out = append(out, string(r[:ln]))
		r = r[ln:]
	}

	return out, nil
}

func appendU32LE(buf []byte, v uint32) []byte {
	var scratch [4]byte
	binary.LittleEndian.PutUint32(scratch[:], v)

	return append(buf, scratch[:]...)
}

func appendU64LE(buf []byte, v uint64) []byte {
	var scratch [8]byte
	binary.LittleEndian.PutUint64(scratch[:], v)

	return append(buf, scratch[:]...)
}

func readU32LE(data []byte, count int) ([]uint32, error) {
	if len(data) < count*4 {
		return nil, errTruncated
	}
	out := make([]uint32, count)
	for i := 0; i < count; i++ {
		out[i] = binary.LittleEndian.Uint32(data[i*4:])
	}

	return out, nil
}

func readU64LE(data []byte, count int) ([]uint64, error) {
	if len(data) < count*8 {
		return nil, errTruncated
	}
	out := make([]uint64, count)
	for i := 0; i < count; i++ {
		out[i] = binary.LittleEndian.Uint64(data[i*8:])
	}

	return out, nil
}
