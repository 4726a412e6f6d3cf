package container_test

import (
	"bytes"
	"context"
	"testing"

	"github.com/ext-sakamoro/ALICE-Text/column"
	"github.com/ext-sakamoro/ALICE-Text/compress"
	"github.com/ext-sakamoro/ALICE-Text/container"
	"github.com/ext-sakamoro/ALICE-Text/skeleton"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var testRecords = []string{
	"2024-01-15T10:30:45+09:00 INFO 192.168.1.100 550e8400-e29b-41d4-a716-446655440000 GET /api took 12.5ms",
	"plain literal line with no patterns at all",
	"user john.doe@example.com visited https://example.com/path?q=1",
	"2024-01-15 10:30:45",
	"no timestamp here but a date 2024-03-02 and a number 3.50",
}

func buildInput(t *testing.T) (container.Input, []skeleton.Stream) {
	t.Helper()

	b := skeleton.NewBuilder()
	streams := make([]skeleton.Stream, len(testRecords))
	for i, rec := range testRecords {
		streams[i] = b.AddRecord(rec)
	}

	return container.Input{Streams: streams, Columns: b.Finish()}, streams
}

func TestWriteOpenRoundTrip(t *testing.T) {
	in, streams := buildInput(t)

	var buf bytes.Buffer
	codec := compress.NewZstdCodec(compress.LevelFast)
	require.NoError(t, container.Write(context.Background(), &buf, in, codec))

	data := buf.Bytes()
	r, err := container.Open(container.NewReaderAtBytes(data), int64(len(data)), codec)
	require.NoError(t, err)

	assert.Equal(t, uint64(len(testRecords)), r.RowCount())
	assert.Len(t, r.Columns(), 12)

	gotStreams, err := r.Streams(context.Background())
	require.NoError(t, err)
	require.Len(t, gotStreams, len(streams))

	ts, err := r.Column(context.Background(), column.Timestamps)
	require.NoError(t, err)
	tsCol, ok := ts.(*column.TimestampsColumn)
	require.True(t, ok)

	tz, err := r.Column(context.Background(), column.TzSpecs)
	require.NoError(t, err)
	tzCol := tz.(*column.TzSpecsColumn)

	dates, err := r.Column(context.Background(), column.Dates)
	require.NoError(t, err)
	datesCol := dates.(*column.DatesColumn)

	times, err := r.Column(context.Background(), column.Times)
	require.NoError(t, err)
	timesCol := times.(*column.TimesColumn)

	ipv4, err := r.Column(context.Background(), column.IPv4s)
	require.NoError(t, err)
	ipv4Col := ipv4.(*column.IPv4Column)

	ipv6, err := r.Column(context.Background(), column.IPv6s)
	require.NoError(t, err)
	ipv6Col := ipv6.(*column.IPv6Column)

	uuids, err := r.Column(context.Background(), column.UUIDs)
	require.NoError(t, err)
	uuidsCol := uuids.(*column.UUIDsColumn)

	levels, err := r.Column(context.Background(), column.LogLevels)
	require.NoError(t, err)
	levelsCol := levels.(*column.LogLevelsColumn)

	numbers, err := r.Column(context.Background(), column.Numbers)
	require.NoError(t, err)
	numbersCol := numbers.(*column.NumbersColumn)

	emails, err := r.Column(context.Background(), column.Emails)
	require.NoError(t, err)
	emailsCol := emails.(*column.StringsColumn)

	urls, err := r.Column(context.Background(), column.URLs)
	require.NoError(t, err)
	urlsCol := urls.(*column.StringsColumn)

	paths, err := r.Column(context.Background(), column.Paths)
	require.NoError(t, err)
	pathsCol := paths.(*column.StringsColumn)

	tsPres, err := r.Presence(context.Background(), column.Timestamps)
	require.NoError(t, err)

	cols := skeleton.Columns{
		Records:        len(testRecords),
		Timestamps:     tsCol,
		TimestampsPres: tsPres,
		TzSpecs:        tzCol,
		Dates:          datesCol,
		Times:          timesCol,
		IPv4:           ipv4Col,
		IPv6:           ipv6Col,
		UUIDs:          uuidsCol,
		LogLevels:      levelsCol,
		Numbers:        numbersCol,
		Emails:         emailsCol,
		URLs:           urlsCol,
		Paths:          pathsCol,
	}

	for i, rec := range testRecords {
		assert.Equal(t, rec, cols.Render(gotStreams[i]), "record %d must round-trip exactly", i)
	}
}

func TestOpenRejectsBadMagic(t *testing.T) {
	in, _ := buildInput(t)

	var buf bytes.Buffer
	codec := compress.NewNoOpCodec()
	require.NoError(t, container.Write(context.Background(), &buf, in, codec))

	data := buf.Bytes()
	data[0] = 'X'

	_, err := container.Open(container.NewReaderAtBytes(data), int64(len(data)), codec)
	assert.Error(t, err)
}

// countingReaderAt wraps a ReaderAt and records every byte range read,
// letting a test observe exactly which parts of a container file a given
// operation touched.
type countingReaderAt struct {
	ra     container.ReaderAt
	ranges [][2]int64
}

func (c *countingReaderAt) ReadAt(p []byte, off int64) (int, error) {
	c.ranges = append(c.ranges, [2]int64{off, off + int64(len(p))})

	return c.ra.ReadAt(p, off)
}

func (c *countingReaderAt) reset() { c.ranges = nil }

func (c *countingReaderAt) totalBytes() int64 {
	var total int64
	for _, r := range c.ranges {
		total += r[1] - r[0]
	}

	return total
}

func TestColumnSelectivityTouchesOnlyRequestedColumn(t *testing.T) {
	in, _ := buildInput(t)

	var buf bytes.Buffer
	codec := compress.NewNoOpCodec()
	require.NoError(t, container.Write(context.Background(), &buf, in, codec))

	data := buf.Bytes()
	counter := &countingReaderAt{ra: container.NewReaderAtBytes(data)}

	r, err := container.Open(counter, int64(len(data)), codec)
	require.NoError(t, err)

	counter.reset()

	_, err = r.Column(context.Background(), column.LogLevels)
	require.NoError(t, err)

	firstFetchBytes := counter.totalBytes()
	assert.Less(t, firstFetchBytes, int64(len(data)),
		"fetching a single column must not read the whole file")
	firstRangeCount := len(counter.ranges)

	_, err = r.Column(context.Background(), column.Numbers)
	require.NoError(t, err)

	assert.Greater(t, len(counter.ranges), firstRangeCount,
		"fetching a second, distinct column must issue new reads")

	// Re-fetching the first column must not touch the file again: it is
	// cached, and the singleflight-gated loadColumn path is skipped.
	rangesBeforeRefetch := len(counter.ranges)
	_, err = r.Column(context.Background(), column.LogLevels)
	require.NoError(t, err)
	assert.Equal(t, rangesBeforeRefetch, len(counter.ranges),
		"re-fetching an already-cached column must not issue new reads")
}

func TestOpenDetectsCorruption(t *testing.T) {
	in, _ := buildInput(t)

	var buf bytes.Buffer
	codec := compress.NewNoOpCodec()
	require.NoError(t, container.Write(context.Background(), &buf, in, codec))

	data := buf.Bytes()
	data[len(data)-10] ^= 0xFF

	_, err := container.Open(container.NewReaderAtBytes(data), int64(len(data)), codec)
	assert.Error(t, err)
}
