package compress_test

import (
	"testing"

	"github.com/ext-sakamoro/ALICE-Text/compress"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCodecRoundTrip(t *testing.T) {
	data := []byte("2024-01-15T10:30:45Z INFO 192.168.1.100 repeated text repeated text repeated text")

	cases := []struct {
		name      string
		algorithm compress.Algorithm
	}{
		{"none", compress.AlgorithmNone},
		{"zstd", compress.AlgorithmZstd},
		{"s2", compress.AlgorithmS2},
		{"lz4", compress.AlgorithmLZ4},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			codec, err := compress.CreateCodec(tc.algorithm, compress.LevelBalanced, "test")
			require.NoError(t, err)
			assert.Equal(t, tc.algorithm, codec.Algorithm())

			compressed, err := codec.Compress(data)
			require.NoError(t, err)

			decompressed, err := codec.Decompress(compressed)
			require.NoError(t, err)
			assert.Equal(t, data, decompressed)
		})
	}
}

func TestCreateCodecInvalid(t *testing.T) {
	_, err := compress.CreateCodec(compress.Algorithm(99), compress.LevelBalanced, "column")
	assert.Error(t, err)
}

func TestCompressionStats(t *testing.T) {
	s := compress.CompressionStats{Algorithm: compress.AlgorithmZstd, OriginalSize: 1000, CompressedSize: 250}
	assert.InDelta(t, 0.25, s.Ratio(), 1e-9)
	assert.InDelta(t, 75.0, s.SpaceSavings(), 1e-9)

	empty := compress.CompressionStats{}
	assert.Equal(t, 0.0, empty.Ratio())
}

func TestParseLevel(t *testing.T) {
	for _, s := range []string{"fast", "balanced", "best", ""} {
		_, err := compress.ParseLevel(s)
		assert.NoError(t, err)
	}

	_, err := compress.ParseLevel("ludicrous")
	assert.Error(t, err)
}
