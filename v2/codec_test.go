package v2_test

import (
	"bytes"
	"context"
	"testing"

	"github.com/ext-sakamoro/ALICE-Text/compress"
	"github.com/ext-sakamoro/ALICE-Text/skeleton"
	"github.com/ext-sakamoro/ALICE-Text/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var testRecords = []string{
	"2024-01-15T10:30:45+09:00 INFO 192.168.1.100 550e8400-e29b-41d4-a716-446655440000 GET /api took 12.5ms",
	"plain literal line with no patterns at all",
	"user john.doe@example.com visited https://example.com/path?q=1",
	"2024-01-15 10:30:45",
}

func TestV2RoundTrip(t *testing.T) {
	b := skeleton.NewBuilder()
	streams := make([]skeleton.Stream, len(testRecords))
	for i, rec := range testRecords {
		streams[i] = b.AddRecord(rec)
	}
	in := v2.Input{Streams: streams, Columns: b.Finish()}

	var buf bytes.Buffer
	codec := compress.NewZstdCodec(compress.LevelBalanced)
	require.NoError(t, v2.Write(context.Background(), &buf, in, codec))

	out, err := v2.Read(context.Background(), bytes.NewReader(buf.Bytes()), codec)
	require.NoError(t, err)
	require.Len(t, out.Streams, len(testRecords))

	for i, rec := range testRecords {
		assert.Equal(t, rec, out.Columns.Render(out.Streams[i]))
	}
}

func TestV2DetectsCorruption(t *testing.T) {
	b := skeleton.NewBuilder()
	streams := []skeleton.Stream{b.AddRecord("2024-01-15T10:30:45Z hello world")}
	in := v2.Input{Streams: streams, Columns: b.Finish()}

	var buf bytes.Buffer
	codec := compress.NewNoOpCodec()
	require.NoError(t, v2.Write(context.Background(), &buf, in, codec))

	data := buf.Bytes()
	data[len(data)-1] ^= 0xFF

	_, err := v2.Read(context.Background(), bytes.NewReader(data), codec)
	assert.Error(t, err)
}
