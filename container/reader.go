package container

import (
	"bytes"
	"context"
	"hash/crc32"
	"io"
	"strconv"
	"sync"

	"golang.org/x/sync/singleflight"

	"github.com/ext-sakamoro/ALICE-Text/column"
	"github.com/ext-sakamoro/ALICE-Text/compress"
	"github.com/ext-sakamoro/ALICE-Text/endian"
	"github.com/ext-sakamoro/ALICE-Text/errs"
	"github.com/ext-sakamoro/ALICE-Text/skeleton"
)

// ReaderAt is the random-access surface Reader needs; *os.File and
// bytes.Reader both satisfy it, and so does an mmap'd byte slice wrapped in
// bytes.NewReader — mmap is an optional optimization a caller may supply
// without Reader itself needing to know about it.
type ReaderAt interface {
	io.ReaderAt
}

// Reader opens a v3 container for random-access column retrieval. Open
// reads the header and directory, then reads the whole file once to check
// the CRC32 footer; column blobs are fetched and decompressed lazily, on
// demand. Only Column caches its decoded result; Presence and Streams
// re-read their blob on every call.
type Reader struct {
	ra       ReaderAt
	codec    compress.Codec
	header   Header
	entries  map[column.ID]ColumnEntry
	skeleton ColumnEntry
	engine   endian.EndianEngine

	group    singleflight.Group
	cacheMu  sync.RWMutex
	cache    map[column.ID]column.Column
}

// Open reads and validates the header, directory, and trailing CRC32
// footer of size, then returns a Reader ready to serve column lookups.
func Open(ra ReaderAt, size int64, codec compress.Codec) (*Reader, error) {
	engine := endian.GetLittleEndianEngine()

	hdrBuf := make([]byte, headerSize)
	if _, err := ra.ReadAt(hdrBuf, 0); err != nil {
		return nil, errs.ErrIO
	}
	header, err := ParseHeader(hdrBuf, engine)
	if err != nil {
		return nil, err
	}

	dirSize := int(header.ColumnCount) * entrySize
	dirBuf := make([]byte, dirSize)
	if _, err := ra.ReadAt(dirBuf, headerSize); err != nil {
		return nil, errs.ErrIO
	}

	entries := make(map[column.ID]ColumnEntry, header.ColumnCount)
	var skel ColumnEntry
	for i := 0; i < int(header.ColumnCount); i++ {
		e, err := ParseColumnEntry(dirBuf[i*entrySize:], engine)
		if err != nil {
			return nil, err
		}
		if e.ColumnID == skeletonColumnID {
			skel = e

			continue
		}
		entries[e.ColumnID] = e
	}
	if header.hasSkeleton() && skel.ColumnID != skeletonColumnID {
		return nil, errHeaderCorrupt
	}

	footer := make([]byte, 4)
	if _, err := ra.ReadAt(footer, size-4); err != nil {
		return nil, errs.ErrIO
	}
	wantCRC := engine.Uint32(footer)

	body := make([]byte, size-4)
	if _, err := ra.ReadAt(body, 0); err != nil {
		return nil, errs.ErrIO
	}
	if crc32.ChecksumIEEE(body) != wantCRC {
		return nil, errHeaderCorrupt
	}

	return &Reader{
		ra:       ra,
		codec:    codec,
		header:   header,
		entries:  entries,
		skeleton: skel,
		engine:   engine,
		cache:    make(map[column.ID]column.Column),
	}, nil
}

// RowCount returns the total number of input records the container holds.
func (r *Reader) RowCount() uint64 { return r.header.RowCount }

// Version returns the container format version (always 3 for a Reader
// that opened successfully).
func (r *Reader) Version() uint16 { return r.header.Version }

// Flags returns the header's raw flag bits (currently just flagHasSkeleton).
func (r *Reader) Flags() uint16 { return r.header.Flags }

// Verify decompresses and checksum-verifies every column and the skeleton
// blob, without decoding or caching any of them — the container-integrity
// deep check spec.md §8 requires of the verify command.
func (r *Reader) Verify(ctx context.Context) error {
	for id, e := range r.entries {
		if err := ctx.Err(); err != nil {
			return errs.ErrCancelled
		}

		raw := make([]byte, e.CompressedLen)
		if _, err := r.ra.ReadAt(raw, int64(e.FileOffset)); err != nil { //nolint:gosec
			return errs.ErrIO
		}
		uncompressed, err := r.codec.Decompress(raw)
		if err != nil {
			return errColumnCorrupt(id, "decompress failed")
		}
		if crc32.ChecksumIEEE(uncompressed) != e.Checksum {
			return errColumnCorrupt(id, "checksum mismatch")
		}
	}

	raw := make([]byte, r.skeleton.CompressedLen)
	if _, err := r.ra.ReadAt(raw, int64(r.skeleton.FileOffset)); err != nil { //nolint:gosec
		return errs.ErrIO
	}
	uncompressed, err := r.codec.Decompress(raw)
	if err != nil {
		return errColumnCorrupt(skeletonColumnID, "decompress failed")
	}
	if crc32.ChecksumIEEE(uncompressed) != r.skeleton.Checksum {
		return errColumnCorrupt(skeletonColumnID, "checksum mismatch")
	}

	return nil
}

// Columns lists the ColumnIds present in the directory.
func (r *Reader) Columns() []column.ID {
	ids := make([]column.ID, 0, len(r.entries))
	for id := range r.entries {
		ids = append(ids, id)
	}

	return ids
}

// Stats returns directory metadata for id without touching its blob.
func (r *Reader) Stats(id column.ID) (column.Stats, error) {
	e, ok := r.entries[id]
	if !ok {
		return column.Stats{}, errColumnMissing(id)
	}

	return column.Stats{
		ID:             id,
		ElementType:    id.ElementType(),
		Encoding:       id.DefaultEncoding(),
		RowCount:       int(e.RowCount),
		UncompressedSz: int(e.UncompressedLen),
		CompressedSz:   int(e.CompressedLen),
	}, nil
}

// Column fetches, decompresses, verifies, and decodes id, caching the
// result so repeated gathers against the same column pay the decode cost
// once. Concurrent callers asking for the same column collapse onto a
// single in-flight fetch via singleflight.
func (r *Reader) Column(ctx context.Context, id column.ID) (column.Column, error) {
	if c, ok := r.cachedColumn(id); ok {
		return c, nil
	}

	v, err, _ := r.group.Do(strconv.FormatUint(uint64(id), 10), func() (interface{}, error) {
		return r.loadColumn(ctx, id)
	})
	if err != nil {
		return nil, err
	}

	return v.(column.Column), nil
}

func (r *Reader) cachedColumn(id column.ID) (column.Column, bool) {
	r.cacheMu.RLock()
	defer r.cacheMu.RUnlock()

	c, ok := r.cache[id]

	return c, ok
}

func (r *Reader) loadColumn(ctx context.Context, id column.ID) (column.Column, error) {
	if err := ctx.Err(); err != nil {
		return nil, errs.ErrCancelled
	}

	e, ok := r.entries[id]
	if !ok {
		return nil, errColumnMissing(id)
	}

	raw := make([]byte, e.CompressedLen)
	if _, err := r.ra.ReadAt(raw, int64(e.FileOffset)); err != nil { //nolint:gosec
		return nil, errs.ErrIO
	}

	uncompressed, err := r.codec.Decompress(raw)
	if err != nil {
		return nil, errColumnCorrupt(id, "decompress failed")
	}

	if crc32.ChecksumIEEE(uncompressed) != e.Checksum {
		return nil, errColumnCorrupt(id, "checksum mismatch")
	}

	if e.HasPresence() {
		bmLen := int((r.header.RowCount + 7) / 8)
		if len(uncompressed) < bmLen {
			return nil, errColumnCorrupt(id, "truncated presence bitmap")
		}
		uncompressed = uncompressed[bmLen:]
	}

	col, err := decodeColumn(id, uncompressed)
	if err != nil {
		return nil, errColumnCorrupt(id, "decode failed")
	}

	r.cacheMu.Lock()
	r.cache[id] = col
	r.cacheMu.Unlock()

	return col, nil
}

// Evict drops id's decoded column from the cache, freeing its memory; the
// next Column call re-fetches and re-decodes it from the blob.
func (r *Reader) Evict(id column.ID) {
	r.cacheMu.Lock()
	delete(r.cache, id)
	r.cacheMu.Unlock()
}

// Presence returns id's presence bitmap, or nil if the column is dense
// (every record has a value).
func (r *Reader) Presence(ctx context.Context, id column.ID) (column.Bitmap, error) {
	e, ok := r.entries[id]
	if !ok {
		return nil, errColumnMissing(id)
	}
	if !e.HasPresence() {
		return nil, nil
	}

	if err := ctx.Err(); err != nil {
		return nil, errs.ErrCancelled
	}

	raw := make([]byte, e.CompressedLen)
	if _, err := r.ra.ReadAt(raw, int64(e.FileOffset)); err != nil { //nolint:gosec
		return nil, errs.ErrIO
	}
	uncompressed, err := r.codec.Decompress(raw)
	if err != nil {
		return nil, errColumnCorrupt(id, "decompress failed")
	}
	if crc32.ChecksumIEEE(uncompressed) != e.Checksum {
		return nil, errColumnCorrupt(id, "checksum mismatch")
	}

	bmLen := int((r.header.RowCount + 7) / 8)
	if len(uncompressed) < bmLen {
		return nil, errColumnCorrupt(id, "truncated presence bitmap")
	}

	return column.Bitmap(uncompressed[:bmLen]), nil
}

// Streams fetches, decompresses, and decodes the skeleton blob.
func (r *Reader) Streams(ctx context.Context) ([]skeleton.Stream, error) {
	if err := ctx.Err(); err != nil {
		return nil, errs.ErrCancelled
	}

	raw := make([]byte, r.skeleton.CompressedLen)
	if _, err := r.ra.ReadAt(raw, int64(r.skeleton.FileOffset)); err != nil { //nolint:gosec
		return nil, errs.ErrIO
	}
	uncompressed, err := r.codec.Decompress(raw)
	if err != nil {
		return nil, errColumnCorrupt(skeletonColumnID, "decompress failed")
	}
	if crc32.ChecksumIEEE(uncompressed) != r.skeleton.Checksum {
		return nil, errColumnCorrupt(skeletonColumnID, "checksum mismatch")
	}

	return skeleton.DecodeStreams(uncompressed)
}

// NewReaderAtBytes wraps an in-memory buffer as a ReaderAt, for callers
// that have already loaded (or mmap'd) a whole container into memory.
func NewReaderAtBytes(data []byte) ReaderAt {
	return bytes.NewReader(data)
}
