package query

import (
	"context"

	"github.com/ext-sakamoro/ALICE-Text/column"
	"github.com/ext-sakamoro/ALICE-Text/errs"
	"github.com/ext-sakamoro/ALICE-Text/skeleton"
)

// recordIndexFor returns, for the given column, a slice mapping each of
// its length values to the record index that produced it. Record-aligned
// columns (timestamps, tz_specs) use the presence bitmap when sparse;
// every other column is addressed only through skeleton placeholders, so
// the map is built by walking the streams once and cached per column_id.
func (e *Engine) recordIndexFor(ctx context.Context, colID column.ID, length int) ([]int, error) {
	if colID.RecordAligned() {
		return e.recordIndexFromPresence(ctx, colID, length)
	}

	return e.placeholderMapFor(ctx, colID)
}

func (e *Engine) recordIndexFromPresence(ctx context.Context, colID column.ID, length int) ([]int, error) {
	presence, err := e.reader.Presence(ctx, colID)
	if err != nil {
		return nil, e.poison(err)
	}
	if presence == nil {
		idx := make([]int, length)
		for i := range idx {
			idx[i] = i
		}

		return idx, nil
	}

	idx := make([]int, 0, length)
	rowCount := int(e.reader.RowCount())
	for r := 0; r < rowCount; r++ {
		if presence.Get(r) {
			idx = append(idx, r)
		}
	}

	return idx, nil
}

// placeholderMapFor returns (building and caching it on first use) the
// value-index -> record-index map for a non-record-aligned column.
func (e *Engine) placeholderMapFor(ctx context.Context, colID column.ID) ([]int, error) {
	e.placeholderMu.Lock()
	defer e.placeholderMu.Unlock()

	if e.placeholders == nil {
		e.placeholders = make(map[column.ID][]int)
	}
	if m, ok := e.placeholders[colID]; ok {
		return m, nil
	}

	streams, err := e.streamsFor(ctx)
	if err != nil {
		return nil, e.poison(err)
	}

	var m []int
	for recordIdx, st := range streams {
		if recordIdx%e.chunkSize == 0 && ctx.Err() != nil {
			return nil, errs.ErrCancelled
		}
		for _, seg := range st.Segments {
			if seg.Kind != skeleton.SegPlaceholder || seg.Placeholder.ColumnID != colID {
				continue
			}
			for len(m) <= seg.Placeholder.Index {
				m = append(m, 0)
			}
			m[seg.Placeholder.Index] = recordIdx
		}
	}

	e.placeholders[colID] = m

	return m, nil
}

// valueIndexByRecord inverts recordIndexFor's value-index -> record-index
// mapping, so the composed query() gather can look up, for an arbitrary
// matched record index, which slot (if any) colID's column holds its
// value in.
func (e *Engine) valueIndexByRecord(ctx context.Context, colID column.ID, length int) (map[int]int, error) {
	idx, err := e.recordIndexFor(ctx, colID, length)
	if err != nil {
		return nil, err
	}

	inv := make(map[int]int, len(idx))
	for valueIdx, recordIdx := range idx {
		inv[recordIdx] = valueIdx
	}

	return inv, nil
}

// gatherAllColumns fetches and decodes every column needed to render full
// records, assembling them into a skeleton.Columns.
func (e *Engine) gatherAllColumns(ctx context.Context) (skeleton.Columns, error) {
	ts, err := e.reader.Column(ctx, column.Timestamps)
	if err != nil {
		return skeleton.Columns{}, e.poison(err)
	}
	tz, err := e.reader.Column(ctx, column.TzSpecs)
	if err != nil {
		return skeleton.Columns{}, e.poison(err)
	}
	dates, err := e.reader.Column(ctx, column.Dates)
	if err != nil {
		return skeleton.Columns{}, e.poison(err)
	}
	times, err := e.reader.Column(ctx, column.Times)
	if err != nil {
		return skeleton.Columns{}, e.poison(err)
	}
	ipv4, err := e.reader.Column(ctx, column.IPv4s)
	if err != nil {
		return skeleton.Columns{}, e.poison(err)
	}
	ipv6, err := e.reader.Column(ctx, column.IPv6s)
	if err != nil {
		return skeleton.Columns{}, e.poison(err)
	}
	uuids, err := e.reader.Column(ctx, column.UUIDs)
	if err != nil {
		return skeleton.Columns{}, e.poison(err)
	}
	levels, err := e.reader.Column(ctx, column.LogLevels)
	if err != nil {
		return skeleton.Columns{}, e.poison(err)
	}
	numbers, err := e.reader.Column(ctx, column.Numbers)
	if err != nil {
		return skeleton.Columns{}, e.poison(err)
	}
	emails, err := e.reader.Column(ctx, column.Emails)
	if err != nil {
		return skeleton.Columns{}, e.poison(err)
	}
	urls, err := e.reader.Column(ctx, column.URLs)
	if err != nil {
		return skeleton.Columns{}, e.poison(err)
	}
	paths, err := e.reader.Column(ctx, column.Paths)
	if err != nil {
		return skeleton.Columns{}, e.poison(err)
	}
	tsPres, err := e.reader.Presence(ctx, column.Timestamps)
	if err != nil {
		return skeleton.Columns{}, e.poison(err)
	}
	tzPres, err := e.reader.Presence(ctx, column.TzSpecs)
	if err != nil {
		return skeleton.Columns{}, e.poison(err)
	}

	return skeleton.Columns{
		Records:        int(e.reader.RowCount()), //nolint:gosec
		Timestamps:     ts.(*column.TimestampsColumn),
		TimestampsPres: tsPres,
		TzSpecs:        tz.(*column.TzSpecsColumn),
		TzSpecsPres:    tzPres,
		Dates:          dates.(*column.DatesColumn),
		Times:          times.(*column.TimesColumn),
		IPv4:           ipv4.(*column.IPv4Column),
		IPv6:           ipv6.(*column.IPv6Column),
		UUIDs:          uuids.(*column.UUIDsColumn),
		LogLevels:      levels.(*column.LogLevelsColumn),
		Numbers:        numbers.(*column.NumbersColumn),
		Emails:         emails.(*column.StringsColumn),
		URLs:           urls.(*column.StringsColumn),
		Paths:          paths.(*column.StringsColumn),
	}, nil
}
