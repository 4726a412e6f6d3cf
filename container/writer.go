package container

import (
	"context"
	"hash/crc32"
	"io"

	"golang.org/x/sync/errgroup"

	"github.com/ext-sakamoro/ALICE-Text/column"
	"github.com/ext-sakamoro/ALICE-Text/compress"
	"github.com/ext-sakamoro/ALICE-Text/endian"
	"github.com/ext-sakamoro/ALICE-Text/internal/pool"
	"github.com/ext-sakamoro/ALICE-Text/skeleton"
)

// Input is everything Write needs to serialize one v3 container: the
// skeleton streams (one per input record) plus the finished column set the
// skeleton's placeholders address.
type Input struct {
	Streams []skeleton.Stream
	Columns skeleton.Columns
}

// blob is one compressed section (a column or the skeleton) pending
// assembly into the final layout; blobs are compressed in parallel, since
// each column's entropy coding is independent of every other column's.
type blob struct {
	id         column.ID // skeletonColumnID for the skeleton blob
	uncompressed []byte
	compressed []byte
	checksum   uint32
	recordAligned bool
	hasPresence   bool
	presence   column.Bitmap
}

// Write serializes in to w as a v3 container, compressing every column
// blob with codec concurrently via an errgroup before laying out the
// front-loaded directory, the blobs themselves, and a trailing CRC32
// footer covering everything written before it.
func Write(ctx context.Context, w io.Writer, in Input, codec compress.Codec) error {
	cols := in.Columns
	blobs := []*blob{
		newColumnBlob(column.Timestamps, cols.Timestamps.Encode(), true, cols.TimestampsPres),
		newColumnBlob(column.TzSpecs, cols.TzSpecs.Encode(), true, cols.TzSpecsPres),
		newColumnBlob(column.Dates, cols.Dates.Encode(), false, nil),
		newColumnBlob(column.Times, cols.Times.Encode(), false, nil),
		newColumnBlob(column.IPv4s, cols.IPv4.Encode(), false, nil),
		newColumnBlob(column.IPv6s, cols.IPv6.Encode(), false, nil),
		newColumnBlob(column.UUIDs, cols.UUIDs.Encode(), false, nil),
		newColumnBlob(column.LogLevels, cols.LogLevels.Encode(), false, nil),
		newColumnBlob(column.Numbers, cols.Numbers.Encode(), false, nil),
		newColumnBlob(column.Emails, cols.Emails.Encode(), false, nil),
		newColumnBlob(column.URLs, cols.URLs.Encode(), false, nil),
		newColumnBlob(column.Paths, cols.Paths.Encode(), false, nil),
		newColumnBlob(skeletonColumnID, skeleton.EncodeStreams(in.Streams), false, nil),
	}

	g, gctx := errgroup.WithContext(ctx)
	for _, b := range blobs {
		b := b
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}

			compressed, err := codec.Compress(b.uncompressed)
			if err != nil {
				return err
			}
			b.compressed = compressed
			b.checksum = crc32.ChecksumIEEE(b.uncompressed)

			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return err
	}

	engine := endian.GetLittleEndianEngine()

	header := Header{
		Version:     Version,
		Flags:       flagHasSkeleton,
		RowCount:    uint64(cols.Records), //nolint:gosec
		ColumnCount: uint32(len(blobs)),   //nolint:gosec
	}

	directorySize := len(blobs) * entrySize
	offset := uint64(headerSize + directorySize) //nolint:gosec

	entries := make([]ColumnEntry, len(blobs))
	for i, b := range blobs {
		flags := uint16(flagHasHints)
		if b.recordAligned {
			flags |= flagRecordAligned
		}
		if b.hasPresence {
			flags |= flagHasPresence
		}

		rowCount := len(in.Streams)
		if b.id != skeletonColumnID {
			rowCount = columnLen(b.id, cols)
		}

		entries[i] = ColumnEntry{
			ColumnID:        b.id,
			Encoding:        encodingCode(b.id),
			ElementType:     elementTypeCode(b.id),
			Flags:           flags,
			RowCount:        uint64(rowCount), //nolint:gosec
			UncompressedLen: uint64(len(b.uncompressed)), //nolint:gosec
			CompressedLen:   uint64(len(b.compressed)),   //nolint:gosec
			FileOffset:      offset,
			Checksum:        b.checksum,
		}
		offset += uint64(len(b.compressed)) //nolint:gosec
	}

	crc := crc32.NewIEEE()
	mw := io.MultiWriter(w, crc)

	// The header and directory are small and always written together;
	// assemble them in one pooled buffer instead of issuing a separate
	// Write call per entry.
	preamble := pool.GetBlobBuffer()
	defer pool.PutBlobBuffer(preamble)
	preamble.MustWrite(header.Bytes(engine))
	for _, e := range entries {
		preamble.MustWrite(e.Bytes(engine))
	}
	if _, err := mw.Write(preamble.Bytes()); err != nil {
		return err
	}
	for _, b := range blobs {
		if _, err := mw.Write(b.compressed); err != nil {
			return err
		}
	}

	footer := engine.AppendUint32(nil, crc.Sum32())
	_, err := w.Write(footer)

	return err
}

func newColumnBlob(id column.ID, uncompressed []byte, recordAligned bool, presence column.Bitmap) *blob {
	b := &blob{id: id, uncompressed: uncompressed, recordAligned: recordAligned}
	if presence != nil {
		b.hasPresence = true
		b.presence = presence
		// presence bitmap bytes are prepended to the blob before compression
		b.uncompressed = append(append([]byte(nil), presence...), uncompressed...)
	}

	return b
}

func columnLen(id column.ID, cols skeleton.Columns) int {
	switch id {
	case column.Timestamps:
		return cols.Timestamps.Len()
	case column.TzSpecs:
		return cols.TzSpecs.Len()
	case column.Dates:
		return cols.Dates.Len()
	case column.Times:
		return cols.Times.Len()
	case column.IPv4s:
		return cols.IPv4.Len()
	case column.IPv6s:
		return cols.IPv6.Len()
	case column.UUIDs:
		return cols.UUIDs.Len()
	case column.LogLevels:
		return cols.LogLevels.Len()
	case column.Numbers:
		return cols.Numbers.Len()
	case column.Emails:
		return cols.Emails.Len()
	case column.URLs:
		return cols.URLs.Len()
	case column.Paths:
		return cols.Paths.Len()
	default:
		return 0
	}
}
