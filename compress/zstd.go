package compress

import (
	"fmt"
	"sync"

	"github.com/klauspost/compress/zstd"
)

// ZstdCodec wraps klauspost/compress/zstd, the default entropy coder for the
// v3 container's per-column blobs and the v2 monolithic blob.
//
// Compression ratio vs. speed is governed by Level (fast/balanced/best),
// matching the three-point ladder the command surface exposes.
type ZstdCodec struct {
	level    Level
	encoders sync.Pool
	decoders sync.Pool
}

var _ Codec = (*ZstdCodec)(nil)

// NewZstdCodec creates a Zstd codec tuned to the given level.
func NewZstdCodec(level Level) *ZstdCodec {
	c := &ZstdCodec{level: level}
	c.encoders = sync.Pool{
		New: func() any {
			enc, err := zstd.NewWriter(nil,
				zstd.WithEncoderLevel(zstd.EncoderLevelFromZstd(level.zstdLevel())),
				zstd.WithEncoderCRC(false),
			)
			if err != nil {
				panic(fmt.Sprintf("compress: failed to create zstd encoder: %v", err))
			}

			return enc
		},
	}
	c.decoders = sync.Pool{
		New: func() any {
			dec, err := zstd.NewReader(nil,
				zstd.WithDecoderConcurrency(1),
				zstd.WithDecoderLowmem(false),
			)
			if err != nil {
				panic(fmt.Sprintf("compress: failed to create zstd decoder: %v", err))
			}

			return dec
		},
	}

	return c
}

func (c *ZstdCodec) Algorithm() Algorithm { return AlgorithmZstd }

// Compress compresses the input data using Zstandard.
func (c *ZstdCodec) Compress(data []byte) ([]byte, error) {
	enc := c.encoders.Get().(*zstd.Encoder)
	defer c.encoders.Put(enc)

	return enc.EncodeAll(data, nil), nil
}

// Decompress decompresses Zstd-compressed data.
func (c *ZstdCodec) Decompress(data []byte) ([]byte, error) {
	if len(data) == 0 {
		return nil, nil
	}

	dec := c.decoders.Get().(*zstd.Decoder)
	defer c.decoders.Put(dec)

	out, err := dec.DecodeAll(data, nil)
	if err != nil {
		return nil, fmt.Errorf("compress: zstd decompression failed: %w", err)
	}

	return out, nil
}
