// Package compress provides pluggable entropy-coder codecs for ALICE-Text's
// per-column and v2 monolithic blobs.
//
// The entropy coder is a black box from the container and query engine's
// point of view: they hold a Codec and call Compress/Decompress. This
// package supplies the concrete implementations — Zstd (default), S2, LZ4,
// and a NoOp codec for tests that want to isolate columnar encoding size
// from entropy coding.
package compress

import "fmt"

// Compressor compresses a byte slice. Implementations must not retain or
// mutate the input slice; the returned slice is newly allocated, except that
// NoOpCodec returns the input slice itself.
type Compressor interface {
	Compress(data []byte) ([]byte, error)
}

// Decompressor decompresses a byte slice previously produced by the
// matching Compressor. Implementations must not retain or mutate the input.
type Decompressor interface {
	Decompress(data []byte) ([]byte, error)
}

// Codec combines Compressor and Decompressor.
type Codec interface {
	Compressor
	Decompressor
	// Algorithm reports which entropy coder this codec wraps.
	Algorithm() Algorithm
}

// CompressionStats reports the outcome of a single compression operation:
// the algorithm used and the sizes before and after.
type CompressionStats struct {
	Algorithm      Algorithm
	OriginalSize   int64
	CompressedSize int64
}

// Ratio returns compressed/original size (< 1.0 is a win). Returns 0 if
// OriginalSize is 0.
func (s CompressionStats) Ratio() float64 {
	if s.OriginalSize == 0 {
		return 0.0
	}

	return float64(s.CompressedSize) / float64(s.OriginalSize)
}

// SpaceSavings returns the space saved as a percentage (0-100).
func (s CompressionStats) SpaceSavings() float64 {
	return (1.0 - s.Ratio()) * 100.0
}

// CreateCodec builds a Codec for the given algorithm and level. Level only
// affects AlgorithmZstd; other algorithms ignore it.
func CreateCodec(algorithm Algorithm, level Level, target string) (Codec, error) {
	switch algorithm {
	case AlgorithmNone:
		return NewNoOpCodec(), nil
	case AlgorithmZstd:
		return NewZstdCodec(level), nil
	case AlgorithmS2:
		return NewS2Codec(), nil
	case AlgorithmLZ4:
		return NewLZ4Codec(), nil
	default:
		return nil, fmt.Errorf("compress: invalid %s algorithm: %s", target, algorithm)
	}
}
