package skeleton

import (
	"github.com/ext-sakamoro/ALICE-Text/column"
	"github.com/ext-sakamoro/ALICE-Text/recognize"
)

// Builder accumulates per-column values across however many records are
// fed to it and hands back one Stream per record. A column's element
// ordering matches the order tokens of that type were emitted across the
// whole input, which is exactly the order AddRecord appends them in.
type Builder struct {
	records int

	tsEpochMs    []int64
	tsSep        []byte
	tsFrac       []string
	tsPresent    []bool
	tzSpecs      []recognize.TzSpec
	tzPresent    []bool

	dates []uint32

	timesMs   []uint32
	timesFrac []string

	ipv4 []uint32

	ipv6Hi, ipv6Lo []uint64
	ipv6Text       []string

	uuidHi, uuidLo []uint64
	uuidCase       []recognize.UUIDCase
	uuidVerbatim   []string

	logLevels []uint8

	numbers     []float64
	numbersRepr []string

	emails []string
	urls   []string
	paths  []string
}

// NewBuilder returns an empty Builder ready to accept records.
func NewBuilder() *Builder {
	return &Builder{}
}

// AddRecord scans record, appends each recognized token's value into its
// column's accumulator, and returns the record's skeleton Stream.
func (b *Builder) AddRecord(record string) Stream {
	tokens := recognize.Scan(record)

	var segments []Segment
	pos := 0
	sawTimestamp, sawTz := false, false

	appendLiteral := func(end int) {
		if end > pos {
			segments = append(segments, Segment{Kind: SegLiteral, Literal: record[pos:end]})
		}
	}

	for _, tok := range tokens {
		appendLiteral(tok.Start)

		ph := b.append(tok)
		segments = append(segments, Segment{Kind: SegPlaceholder, Placeholder: ph})

		if tok.Kind == recognize.KindTimestamp {
			sawTimestamp = true
			sawTz = true
		}

		pos = tok.End
	}
	appendLiteral(len(record))

	b.tsPresent = append(b.tsPresent, sawTimestamp)
	b.tzPresent = append(b.tzPresent, sawTz)
	b.records++

	return Stream{Segments: segments}
}

// append pushes tok's value onto the right accumulator and returns the
// placeholder addressing it.
func (b *Builder) append(tok recognize.Token) Placeholder {
	switch tok.Kind {
	case recognize.KindTimestamp:
		idx := len(b.tsEpochMs)
		b.tsEpochMs = append(b.tsEpochMs, tok.Timestamp.EpochMs)
		b.tsSep = append(b.tsSep, tok.Timestamp.Sep)
		b.tsFrac = append(b.tsFrac, tok.Timestamp.FracDigits)
		b.tzSpecs = append(b.tzSpecs, tok.Timestamp.Tz)

		return Placeholder{ColumnID: column.Timestamps, Index: idx}

	case recognize.KindDate:
		idx := len(b.dates)
		b.dates = append(b.dates, tok.Date)

		return Placeholder{ColumnID: column.Dates, Index: idx}

	case recognize.KindTime:
		idx := len(b.timesMs)
		b.timesMs = append(b.timesMs, tok.Time.MsFromMidnight)
		b.timesFrac = append(b.timesFrac, tok.Time.FracDigits)

		return Placeholder{ColumnID: column.Times, Index: idx}

	case recognize.KindIPv4:
		idx := len(b.ipv4)
		b.ipv4 = append(b.ipv4, tok.IPv4)

		return Placeholder{ColumnID: column.IPv4s, Index: idx}

	case recognize.KindIPv6:
		idx := len(b.ipv6Hi)
		b.ipv6Hi = append(b.ipv6Hi, tok.IPv6.Hi)
		b.ipv6Lo = append(b.ipv6Lo, tok.IPv6.Lo)
		b.ipv6Text = append(b.ipv6Text, tok.IPv6.Text)

		return Placeholder{ColumnID: column.IPv6s, Index: idx}

	case recognize.KindUUID:
		idx := len(b.uuidHi)
		b.uuidHi = append(b.uuidHi, tok.UUID.Hi)
		b.uuidLo = append(b.uuidLo, tok.UUID.Lo)
		b.uuidCase = append(b.uuidCase, tok.UUID.Case)
		if tok.UUID.Case == recognize.UUIDMixed {
			b.uuidVerbatim = append(b.uuidVerbatim, tok.UUID.Verbatim)
		}

		return Placeholder{ColumnID: column.UUIDs, Index: idx}

	case recognize.KindLogLevel:
		idx := len(b.logLevels)
		b.logLevels = append(b.logLevels, tok.LogLevel)

		return Placeholder{ColumnID: column.LogLevels, Index: idx}

	case recognize.KindNumber:
		idx := len(b.numbers)
		b.numbers = append(b.numbers, tok.Number.F64)
		b.numbersRepr = append(b.numbersRepr, tok.Number.Repr)

		return Placeholder{ColumnID: column.Numbers, Index: idx}

	case recognize.KindEmail:
		idx := len(b.emails)
		b.emails = append(b.emails, tok.Text)

		return Placeholder{ColumnID: column.Emails, Index: idx}

	case recognize.KindURL:
		idx := len(b.urls)
		b.urls = append(b.urls, tok.Text)

		return Placeholder{ColumnID: column.URLs, Index: idx}

	default: // recognize.KindPath
		idx := len(b.paths)
		b.paths = append(b.paths, tok.Text)

		return Placeholder{ColumnID: column.Paths, Index: idx}
	}
}

// Columns is the finished, immutable set of column value vectors plus the
// two presence bitmaps for the record-aligned columns.
type Columns struct {
	Records int

	Timestamps      *column.TimestampsColumn
	TimestampsPres  column.Bitmap // nil when every record had a timestamp
	TzSpecs         *column.TzSpecsColumn
	TzSpecsPres     column.Bitmap // nil when every record had a tz spec

	Dates     *column.DatesColumn
	Times     *column.TimesColumn
	IPv4      *column.IPv4Column
	IPv6      *column.IPv6Column
	UUIDs     *column.UUIDsColumn
	LogLevels *column.LogLevelsColumn
	Numbers   *column.NumbersColumn
	Emails    *column.StringsColumn
	URLs      *column.StringsColumn
	Paths     *column.StringsColumn
}

// Finish materializes the accumulated values into column.Column instances.
// Presence bitmaps are only built (non-nil) when the corresponding column
// is sparse relative to the record count — a uniformly-present column
// carries no bitmap, matching ColumnEntry's has_presence flag.
func (b *Builder) Finish() Columns {
	cols := Columns{
		Records: b.records,
		Timestamps: &column.TimestampsColumn{
			EpochMs: b.tsEpochMs, Sep: b.tsSep, FracDigits: b.tsFrac,
		},
		TzSpecs:   &column.TzSpecsColumn{Specs: b.tzSpecs},
		Dates:     &column.DatesColumn{EpochDays: b.dates},
		Times:     &column.TimesColumn{MsFromMidnight: b.timesMs, FracDigits: b.timesFrac},
		IPv4:      &column.IPv4Column{Values: b.ipv4},
		IPv6:      &column.IPv6Column{Hi: b.ipv6Hi, Lo: b.ipv6Lo, Text: b.ipv6Text},
		UUIDs:     &column.UUIDsColumn{Hi: b.uuidHi, Lo: b.uuidLo, Case: b.uuidCase, Verbatim: b.uuidVerbatim},
		LogLevels: &column.LogLevelsColumn{Values: b.logLevels},
		Numbers:   &column.NumbersColumn{Values: b.numbers, Repr: b.numbersRepr},
		Emails:    column.NewStringsColumn(column.Emails, b.emails),
		URLs:      column.NewStringsColumn(column.URLs, b.urls),
		Paths:     column.NewStringsColumn(column.Paths, b.paths),
	}

	cols.TimestampsPres = presenceBitmap(b.tsPresent)
	cols.TzSpecsPres = presenceBitmap(b.tzPresent)

	return cols
}

// presenceBitmap returns nil when every flag is set (dense, no bitmap
// needed) and a packed Bitmap otherwise.
func presenceBitmap(present []bool) column.Bitmap {
	dense := true
	for _, p := range present {
		if !p {
			dense = false

			break
		}
	}
	if dense {
		return nil
	}

	bm := column.NewBitmap(len(present))
	for i, p := range present {
		if p {
			bm.Set(i)
		}
	}

	return bm
}
