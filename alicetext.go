// Package alicetext is the top-level convenience API: Compress and
// Decompress a run of log records against the v3 container format in one
// call, plus the CompressionStats summary the command surface reports.
package alicetext

import (
	"bytes"
	"context"
	"strings"

	"github.com/ext-sakamoro/ALICE-Text/compress"
	"github.com/ext-sakamoro/ALICE-Text/container"
	"github.com/ext-sakamoro/ALICE-Text/query"
	"github.com/ext-sakamoro/ALICE-Text/skeleton"
)

// CompressionStats summarizes one Compress call's outcome.
type CompressionStats struct {
	OriginalSize    int64
	CompressedSize  int64
	TokenCount      int
	ExceptionCount  int // literal-only records: zero tokens recognized
	PatternCount    int // distinct non-empty columns populated
}

// CompressionRatio returns compressed/original size (< 1.0 is a win).
func (s CompressionStats) CompressionRatio() float64 {
	if s.OriginalSize == 0 {
		return 0
	}

	return float64(s.CompressedSize) / float64(s.OriginalSize)
}

// SpaceSavings returns the space saved as a percentage (0-100).
func (s CompressionStats) SpaceSavings() float64 {
	return (1.0 - s.CompressionRatio()) * 100.0
}

// Compress splits text into records on newlines, recognizes and
// skeletonizes each one, and writes a v3 container to an in-memory buffer
// using codec for every column's (and the skeleton's) entropy coding.
func Compress(ctx context.Context, text string, codec compress.Codec) ([]byte, CompressionStats, error) {
	records := splitRecords(text)

	b := skeleton.NewBuilder()
	streams := make([]skeleton.Stream, len(records))
	tokenCount, exceptionCount := 0, 0
	for i, rec := range records {
		st := b.AddRecord(rec)
		streams[i] = st

		recordTokens := 0
		for _, seg := range st.Segments {
			if seg.Kind == skeleton.SegPlaceholder {
				recordTokens++
			}
		}
		tokenCount += recordTokens
		if recordTokens == 0 {
			exceptionCount++
		}
	}
	cols := b.Finish()

	var buf bytes.Buffer
	if err := container.Write(ctx, &buf, container.Input{Streams: streams, Columns: cols}, codec); err != nil {
		return nil, CompressionStats{}, err
	}

	stats := CompressionStats{
		OriginalSize:   int64(len(text)),
		CompressedSize: int64(buf.Len()),
		TokenCount:     tokenCount,
		ExceptionCount: exceptionCount,
		PatternCount:   populatedColumnCount(cols),
	}

	return buf.Bytes(), stats, nil
}

// Decompress opens a v3 container previously produced by Compress and
// renders every record back to its exact original text, joined with "\n".
func Decompress(ctx context.Context, data []byte, codec compress.Codec) (string, error) {
	e := query.NewEngine()
	if err := e.OpenContainer(container.NewReaderAtBytes(data), int64(len(data)), codec); err != nil {
		return "", err
	}
	defer e.Close() //nolint:errcheck

	records, err := e.Select(ctx, 0)
	if err != nil {
		return "", err
	}

	return strings.Join(records, "\n"), nil
}

func splitRecords(text string) []string {
	text = strings.TrimSuffix(text, "\n")
	if text == "" {
		return nil
	}

	return strings.Split(text, "\n")
}

func populatedColumnCount(cols skeleton.Columns) int {
	n := 0
	for _, l := range []int{
		cols.Timestamps.Len(), cols.Dates.Len(), cols.Times.Len(), cols.IPv4.Len(),
		cols.IPv6.Len(), cols.UUIDs.Len(), cols.LogLevels.Len(), cols.Numbers.Len(),
		cols.Emails.Len(), cols.URLs.Len(), cols.Paths.Len(),
	} {
		if l > 0 {
			n++
		}
	}

	return n
}
