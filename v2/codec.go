// Package v2 implements the monolithic fallback codec: skeleton and every
// column serialized into one buffer and entropy-coded as a single blob,
// trading the v3 container's independent per-column access for a simpler
// single-pass format. Grounded on the same tuned-header shape the original
// Rust implementation used for its monolithic path, but with a full
// checksum-verified decode rather than a structural-only check.
package v2

import (
	"bytes"
	"context"
	"encoding/binary"
	"hash/crc32"
	"io"

	"github.com/ext-sakamoro/ALICE-Text/column"
	"github.com/ext-sakamoro/ALICE-Text/compress"
	"github.com/ext-sakamoro/ALICE-Text/endian"
	"github.com/ext-sakamoro/ALICE-Text/errs"
	"github.com/ext-sakamoro/ALICE-Text/skeleton"
)

// Magic is shared with the v3 format; readers discriminate on Version.
var Magic = [8]byte{'A', 'L', 'I', 'C', 'E', 'T', 'X', 'T'}

// Version is the only version this package writes.
const Version uint16 = 2

const headerSize = 8 + 2 + 2 + 8 + 8 + 8 + 4 // magic+version+flags+row_count+uncompressed_len+compressed_len+checksum

// Input mirrors container.Input: the per-record skeleton streams plus the
// finished column set they address.
type Input struct {
	Streams []skeleton.Stream
	Columns skeleton.Columns
}

// orderedColumns lists every column in the fixed order the monolithic
// blob concatenates them, matched by encodeAll/decodeAll.
func orderedColumns(cols skeleton.Columns) []column.Column {
	return []column.Column{
		cols.Timestamps, cols.TzSpecs, cols.Dates, cols.Times,
		cols.IPv4, cols.IPv6, cols.UUIDs, cols.LogLevels, cols.Numbers,
		cols.Emails, cols.URLs, cols.Paths,
	}
}

// Write serializes in as a v2 monolithic container: skeleton bytes, each
// column's bytes (length-prefixed so decode can split them back apart),
// concatenated and compressed as a single blob, following the same
// flat-buffer shape the Rust original's TunedHeader path used.
func Write(_ context.Context, w io.Writer, in Input, codec compress.Codec) error {
	var body bytes.Buffer
	scratch := make([]byte, binary.MaxVarintLen64)

	writeBlock := func(b []byte) {
		n := binary.PutUvarint(scratch, uint64(len(b)))
		body.Write(scratch[:n])
		body.Write(b)
	}

	writeBlock(skeleton.EncodeStreams(in.Streams))
	for _, c := range orderedColumns(in.Columns) {
		writeBlock(c.Encode())
	}
	writeBlock(in.Columns.TimestampsPres)
	writeBlock(in.Columns.TzSpecsPres)

	uncompressed := body.Bytes()
	compressed, err := codec.Compress(uncompressed)
	if err != nil {
		return err
	}

	engine := endian.GetLittleEndianEngine()
	header := make([]byte, 0, headerSize)
	header = append(header, Magic[:]...)
	header = engine.AppendUint16(header, Version)
	header = engine.AppendUint16(header, 0) // flags bit0 clear: not a v3 per-column split
	header = engine.AppendUint64(header, uint64(in.Columns.Records)) //nolint:gosec
	header = engine.AppendUint64(header, uint64(len(uncompressed)))  //nolint:gosec
	header = engine.AppendUint64(header, uint64(len(compressed)))    //nolint:gosec
	header = engine.AppendUint32(header, crc32.ChecksumIEEE(uncompressed))

	if _, err := w.Write(header); err != nil {
		return err
	}
	_, err = w.Write(compressed)

	return err
}

// Read decompresses and decodes a v2 monolithic container, verifying the
// checksum over the full decompressed buffer before trusting any of it —
// the "deep" verify the Rust original's structural-only check skipped.
func Read(_ context.Context, r io.Reader, codec compress.Codec) (Input, error) {
	raw, err := io.ReadAll(r)
	if err != nil {
		return Input{}, errs.ErrIO
	}
	if len(raw) < headerSize {
		return Input{}, errs.ErrHeaderCorrupt
	}
	if [8]byte(raw[0:8]) != Magic {
		return Input{}, errs.ErrMagicMismatch
	}

	engine := endian.GetLittleEndianEngine()
	version := engine.Uint16(raw[8:10])
	if version != Version {
		return Input{}, errs.ErrUnsupportedVersion
	}

	rowCount := engine.Uint64(raw[12:20])
	uncompressedLen := engine.Uint64(raw[20:28])
	compressedLen := engine.Uint64(raw[28:36])
	wantChecksum := engine.Uint32(raw[36:40])

	body := raw[headerSize:]
	if uint64(len(body)) < compressedLen { //nolint:gosec
		return Input{}, errs.ErrHeaderCorrupt
	}

	uncompressed, err := codec.Decompress(body[:compressedLen])
	if err != nil {
		return Input{}, errs.ErrDecodeError
	}
	if uint64(len(uncompressed)) != uncompressedLen { //nolint:gosec
		return Input{}, errs.ErrColumnCorrupt
	}
	if crc32.ChecksumIEEE(uncompressed) != wantChecksum {
		return Input{}, errs.ErrColumnCorrupt
	}

	return decodeAll(int(rowCount), uncompressed) //nolint:gosec
}

func decodeAll(rowCount int, data []byte) (Input, error) {
	r := data

	readBlock := func() ([]byte, error) {
		ln, n := binary.Uvarint(r)
		if n <= 0 {
			return nil, errs.ErrDecodeError
		}
		r = r[n:]
		if uint64(len(r)) < ln {
			return nil, errs.ErrDecodeError
		}
		b := r[:ln]
		r = r[ln:]

		return b, nil
	}

	skelBytes, err := readBlock()
	if err != nil {
		return Input{}, err
	}
	streams, err := skeleton.DecodeStreams(skelBytes)
	if err != nil {
		return Input{}, err
	}

	decoders := []func([]byte) (column.Column, error){
		func(b []byte) (column.Column, error) { return column.DecodeTimestamps(b) },
		func(b []byte) (column.Column, error) { return column.DecodeTzSpecs(b) },
		func(b []byte) (column.Column, error) { return column.DecodeDates(b) },
		func(b []byte) (column.Column, error) { return column.DecodeTimes(b) },
		func(b []byte) (column.Column, error) { return column.DecodeIPv4(b) },
		func(b []byte) (column.Column, error) { return column.DecodeIPv6(b) },
		func(b []byte) (column.Column, error) { return column.DecodeUUIDs(b) },
		func(b []byte) (column.Column, error) { return column.DecodeLogLevels(b) },
		func(b []byte) (column.Column, error) { return column.DecodeNumbers(b) },
		func(b []byte) (column.Column, error) { return column.DecodeStrings(column.Emails, b) },
		func(b []byte) (column.Column, error) { return column.DecodeStrings(column.URLs, b) },
		func(b []byte) (column.Column, error) { return column.DecodeStrings(column.Paths, b) },
	}

	decoded := make([]column.Column, len(decoders))
	for i, dec := range decoders {
		blk, err := readBlock()
		if err != nil {
			return Input{}, err
		}
		c, err := dec(blk)
		if err != nil {
			return Input{}, errs.ErrDecodeError
		}
		decoded[i] = c
	}

	tsPresRaw, err := readBlock()
	if err != nil {
		return Input{}, err
	}
	tzPresRaw, err := readBlock()
	if err != nil {
		return Input{}, err
	}

	var tsPres, tzPres column.Bitmap
	if len(tsPresRaw) > 0 {
		tsPres = column.Bitmap(tsPresRaw)
	}
	if len(tzPresRaw) > 0 {
		tzPres = column.Bitmap(tzPresRaw)
	}

	cols := skeleton.Columns{
		Records:        rowCount,
		Timestamps:     decoded[0].(*column.TimestampsColumn),
		TimestampsPres: tsPres,
		TzSpecs:        decoded[1].(*column.TzSpecsColumn),
		TzSpecsPres:    tzPres,
		Dates:          decoded[2].(*column.DatesColumn),
		Times:          decoded[3].(*column.TimesColumn),
		IPv4:           decoded[4].(*column.IPv4Column),
		IPv6:           decoded[5].(*column.IPv6Column),
		UUIDs:          decoded[6].(*column.UUIDsColumn),
		LogLevels:      decoded[7].(*column.LogLevelsColumn),
		Numbers:        decoded[8].(*column.NumbersColumn),
		Emails:         decoded[9].(*column.StringsColumn),
		URLs:           decoded[10].(*column.StringsColumn),
		Paths:          decoded[11].(*column.StringsColumn),
	}

	return Input{Streams: streams, Columns: cols}, nil
}
