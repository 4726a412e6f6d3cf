package query

import (
	"context"
	"fmt"
	"sort"
	"time"

	"github.com/ext-sakamoro/ALICE-Text/column"
	"github.com/ext-sakamoro/ALICE-Text/errs"
	"github.com/ext-sakamoro/ALICE-Text/recognize"
	"github.com/ext-sakamoro/ALICE-Text/skeleton"
)

// ColumnBatch is the result of SelectColumns: shared read-only views onto
// exactly the columns requested, per spec.md §4.5's "select(columns) →
// ColumnBatch: decompress each named column in full; return shared
// read-only views. Unreferenced columns are never touched." contract.
type ColumnBatch struct {
	RowCount int
	Columns  map[column.ID]column.Column
}

// SelectColumns decompresses exactly the named columns (plus the skeleton,
// decoded once per Engine and then cached), touching no other column's
// blob in the container — the §4.5 select(columns) operation and the §8
// "Column selectivity" testable property ("reads only the blobs for
// columns in X plus header and skeleton").
func (e *Engine) SelectColumns(ctx context.Context, ids ...column.ID) (ColumnBatch, error) {
	if err := e.checkQueryable(); err != nil {
		return ColumnBatch{}, err
	}

	if _, err := e.streamsFor(ctx); err != nil {
		return ColumnBatch{}, e.poison(err)
	}

	cols := make(map[column.ID]column.Column, len(ids))
	for _, id := range ids {
		if ctx.Err() != nil {
			return ColumnBatch{}, errs.ErrCancelled
		}

		col, err := e.reader.Column(ctx, id)
		if err != nil {
			return ColumnBatch{}, e.poison(err)
		}
		cols[id] = col
	}

	return ColumnBatch{RowCount: int(e.reader.RowCount()), Columns: cols}, nil
}

// ValueAt renders the idx-th value of colID's column in batch as text,
// independent of any other column — so projecting just {Timestamps}
// renders the UTC-normalized instant rather than requiring a companion
// TzSpecs column to recover the original local wall clock.
func ValueAt(colID column.ID, col column.Column, idx int) (string, error) {
	switch colID {
	case column.Timestamps:
		return time.UnixMilli(col.(*column.TimestampsColumn).EpochMs[idx]).UTC().Format("2006-01-02T15:04:05.000Z"), nil

	case column.TzSpecs:
		return col.(*column.TzSpecsColumn).Specs[idx].Render(), nil

	case column.Dates:
		return recognize.RenderDate(col.(*column.DatesColumn).EpochDays[idx]), nil

	case column.Times:
		tc := col.(*column.TimesColumn)
		tv := recognize.TimeValue{MsFromMidnight: tc.MsFromMidnight[idx], FracDigits: tc.FracDigits[idx]}

		return tv.Render(), nil

	case column.IPv4s:
		return recognize.RenderIPv4(col.(*column.IPv4Column).Values[idx]), nil

	case column.IPv6s:
		return col.(*column.IPv6Column).Text[idx], nil

	case column.UUIDs:
		return skeleton.RenderUUIDAt(col.(*column.UUIDsColumn), idx), nil

	case column.LogLevels:
		return recognize.LogLevelName(col.(*column.LogLevelsColumn).Values[idx]), nil

	case column.Numbers:
		return col.(*column.NumbersColumn).Repr[idx], nil

	case column.Emails, column.URLs, column.Paths:
		return col.(*column.StringsColumn).Values[idx], nil

	default:
		return "", fmt.Errorf("%w: column %s", errs.ErrInternal, colID)
	}
}

// QueryColumns composes Filter's predicate matching with SelectColumns'
// projection: spec.md §4.5's "query(select_cols, filter_col, op, literal,
// limit?) → RowSet: compose filter then gather from each select column at
// those indices" operation. Rows are ordered by ascending matched record
// index; a select column with no value for a given matched record renders
// as "" in that row.
func (e *Engine) QueryColumns(ctx context.Context, selectIDs []column.ID, filterCol column.ID, op Op, lit string, limit int) ([][]string, error) {
	if err := e.checkQueryable(); err != nil {
		return nil, err
	}

	want, err := coerce(filterCol, lit)
	if err != nil {
		return nil, err
	}

	filterColData, err := e.reader.Column(ctx, filterCol)
	if err != nil {
		return nil, e.poison(err)
	}

	filterRecordIdx, err := e.recordIndexFor(ctx, filterCol, filterColData.Len())
	if err != nil {
		return nil, err
	}

	matched := make(map[int]struct{})
	for i := 0; i < filterColData.Len(); i += e.chunkSize {
		if ctx.Err() != nil {
			return nil, errs.ErrCancelled
		}

		end := i + e.chunkSize
		if end > filterColData.Len() {
			end = filterColData.Len()
		}
		for j := i; j < end; j++ {
			cmp, err := compareAt(filterCol, filterColData, j, want)
			if err != nil {
				return nil, e.poison(err)
			}
			if evalOrdering(op, cmp) {
				matched[filterRecordIdx[j]] = struct{}{}
			}
		}
	}

	sortedRecords := make([]int, 0, len(matched))
	for r := range matched {
		sortedRecords = append(sortedRecords, r)
	}
	sort.Ints(sortedRecords)
	if limit > 0 && len(sortedRecords) > limit {
		sortedRecords = sortedRecords[:limit]
	}

	batch, err := e.SelectColumns(ctx, selectIDs...)
	if err != nil {
		return nil, err
	}

	invByCol := make(map[column.ID]map[int]int, len(selectIDs))
	for _, id := range selectIDs {
		inv, err := e.valueIndexByRecord(ctx, id, batch.Columns[id].Len())
		if err != nil {
			return nil, err
		}
		invByCol[id] = inv
	}

	rows := make([][]string, 0, len(sortedRecords))
	for _, r := range sortedRecords {
		row := make([]string, len(selectIDs))
		for k, id := range selectIDs {
			valueIdx, ok := invByCol[id][r]
			if !ok {
				continue
			}
			s, err := ValueAt(id, batch.Columns[id], valueIdx)
			if err != nil {
				return nil, err
			}
			row[k] = s
		}
		rows = append(rows, row)
	}

	return rows, nil
}
