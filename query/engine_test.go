package query_test

import (
	"bytes"
	"context"
	"testing"

	"github.com/ext-sakamoro/ALICE-Text/column"
	"github.com/ext-sakamoro/ALICE-Text/compress"
	"github.com/ext-sakamoro/ALICE-Text/container"
	"github.com/ext-sakamoro/ALICE-Text/query"
	"github.com/ext-sakamoro/ALICE-Text/skeleton"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var testRecords = []string{
	"2024-01-15T10:30:45Z INFO 192.168.1.1 request one",
	"2024-01-15T11:00:00Z ERROR 10.0.0.5 request two",
	"2024-01-15T11:30:00Z INFO 192.168.1.1 request three",
	"no structured fields in this line at all",
}

func buildEngine(t *testing.T, opts ...query.Option) *query.Engine {
	t.Helper()

	b := skeleton.NewBuilder()
	streams := make([]skeleton.Stream, len(testRecords))
	for i, rec := range testRecords {
		streams[i] = b.AddRecord(rec)
	}
	in := container.Input{Streams: streams, Columns: b.Finish()}

	var buf bytes.Buffer
	codec := compress.NewNoOpCodec()
	require.NoError(t, container.Write(context.Background(), &buf, in, codec))

	data := buf.Bytes()
	e := query.NewEngine(opts...)
	require.NoError(t, e.OpenContainer(container.NewReaderAtBytes(data), int64(len(data)), codec))

	return e
}

func TestEngineSelectAll(t *testing.T) {
	e := buildEngine(t)

	out, err := e.Select(context.Background(), 0)
	require.NoError(t, err)
	assert.ElementsMatch(t, testRecords, out)
}

func TestEngineSelectLimit(t *testing.T) {
	e := buildEngine(t)

	out, err := e.Select(context.Background(), 2)
	require.NoError(t, err)
	assert.Len(t, out, 2)
}

func TestEngineFilterLogLevel(t *testing.T) {
	e := buildEngine(t)

	out, err := e.Filter(context.Background(), column.LogLevels, query.OpEq, "ERROR", 0)
	require.NoError(t, err)
	require.Len(t, out, 1)
	assert.Contains(t, out[0], "request two")
}

func TestEngineFilterIPv4NonAlignedMultiMatch(t *testing.T) {
	e := buildEngine(t)

	out, err := e.Filter(context.Background(), column.IPv4s, query.OpEq, "192.168.1.1", 0)
	require.NoError(t, err)
	assert.Len(t, out, 2)
}

func TestEngineFilterTimestampOrdering(t *testing.T) {
	e := buildEngine(t)

	out, err := e.Filter(context.Background(), column.Timestamps, query.OpGt, "2024-01-15T11:00:00Z", 0)
	require.NoError(t, err)
	require.Len(t, out, 1)
	assert.Contains(t, out[0], "request three")
}

func TestBuilderFluentFilter(t *testing.T) {
	e := buildEngine(t)

	out, err := query.NewBuilder(e).Where(column.LogLevels, query.OpEq, "INFO").Limit(1).Run(context.Background())
	require.NoError(t, err)
	assert.Len(t, out, 1)
}

func TestEngineInvalidStateBeforeOpen(t *testing.T) {
	e := query.NewEngine()
	_, err := e.Select(context.Background(), 0)
	assert.Error(t, err)
}

func TestEngineTypeMismatchLiteral(t *testing.T) {
	e := buildEngine(t)

	_, err := e.Filter(context.Background(), column.Numbers, query.OpEq, "not-a-number", 0)
	assert.Error(t, err)
}

func TestEngineWithChunkSizeOneStillFindsAllMatches(t *testing.T) {
	e := buildEngine(t, query.WithChunkSize(1))

	out, err := e.Filter(context.Background(), column.IPv4s, query.OpEq, "192.168.1.1", 0)
	require.NoError(t, err)
	assert.Len(t, out, 2)
}
