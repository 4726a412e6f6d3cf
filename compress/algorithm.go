package compress

import "fmt"

// Algorithm identifies which entropy coder backs a Codec.
type Algorithm uint8

const (
	// AlgorithmNone bypasses compression entirely.
	AlgorithmNone Algorithm = iota
	// AlgorithmZstd is the default entropy coder used by the v3 container and v2 codec.
	AlgorithmZstd
	// AlgorithmS2 trades ratio for speed using klauspost/compress/s2.
	AlgorithmS2
	// AlgorithmLZ4 trades ratio for very fast decompression using pierrec/lz4.
	AlgorithmLZ4
)

// String returns the algorithm's canonical name.
func (a Algorithm) String() string {
	switch a {
	case AlgorithmNone:
		return "none"
	case AlgorithmZstd:
		return "zstd"
	case AlgorithmS2:
		return "s2"
	case AlgorithmLZ4:
		return "lz4"
	default:
		return fmt.Sprintf("Algorithm(%d)", uint8(a))
	}
}
