// Package query implements the read path: a stateful Engine wrapping a
// container.Reader with the typed select/filter/query operations, literal
// coercion, a lazily-built placeholder map for gathering non-record-aligned
// columns back to their owning records, and cooperative cancellation.
package query

import (
	"context"
	"fmt"
	"sync"

	"github.com/ext-sakamoro/ALICE-Text/column"
	"github.com/ext-sakamoro/ALICE-Text/compress"
	"github.com/ext-sakamoro/ALICE-Text/container"
	"github.com/ext-sakamoro/ALICE-Text/errs"
	"github.com/ext-sakamoro/ALICE-Text/internal/options"
	"github.com/ext-sakamoro/ALICE-Text/skeleton"
)

// State is the Engine's lifecycle position.
type State uint8

const (
	Unopened State = iota
	Open
	Queryable
	Closed
	Poisoned
)

func (s State) String() string {
	switch s {
	case Unopened:
		return "unopened"
	case Open:
		return "open"
	case Queryable:
		return "queryable"
	case Closed:
		return "closed"
	case Poisoned:
		return "poisoned"
	default:
		return fmt.Sprintf("State(%d)", uint8(s))
	}
}

// defaultChunkSize bounds how many elements a scan processes between
// cooperative cancellation checks, matching spec.md §5's "chunk
// granularity ≈ 64 Ki elements".
const defaultChunkSize = 64 * 1024

// Engine is the query-time entry point onto one opened container. It is
// safe for concurrent read-only use once Queryable; Close is not.
type Engine struct {
	mu    sync.Mutex
	state State
	err   error

	reader    *container.Reader
	chunkSize int

	streamsOnce sync.Once
	streams     []skeleton.Stream
	streamsErr  error

	placeholderMu sync.Mutex
	placeholders  map[column.ID][]int // column value index -> owning record index
}

// Option configures an Engine at construction time.
type Option = options.Option[*Engine]

// WithChunkSize overrides the cooperative-cancellation granularity used by
// Filter/QueryColumns scans and the placeholder-map builder (Select checks
// for cancellation once per record). n must be positive;
// non-positive values are ignored.
func WithChunkSize(n int) Option {
	return options.NoError(func(e *Engine) {
		if n > 0 {
			e.chunkSize = n
		}
	})
}

// NewEngine returns an Unopened Engine, ready for OpenContainer.
func NewEngine(opts ...Option) *Engine {
	e := &Engine{state: Unopened, chunkSize: defaultChunkSize}
	_ = options.Apply(e, opts...) // NoError options never fail

	return e
}

// OpenContainer transitions Unopened -> Open -> Queryable by opening and
// validating a v3 container's header and directory.
func (e *Engine) OpenContainer(ra container.ReaderAt, size int64, codec compress.Codec) error {
	e.mu.Lock()
	defer e.mu.Unlock()

	if e.state != Unopened {
		return errs.ErrInvalidState
	}

	r, err := container.Open(ra, size, codec)
	if err != nil {
		e.state = Poisoned
		e.err = err

		return err
	}

	e.reader = r
	e.state = Queryable

	return nil
}

func (e *Engine) checkQueryable() error {
	e.mu.Lock()
	defer e.mu.Unlock()

	switch e.state {
	case Queryable:
		return nil
	case Poisoned:
		return fmt.Errorf("%w: %v", errs.ErrPoisoned, e.err)
	default:
		return errs.ErrInvalidState
	}
}

func (e *Engine) poison(err error) error {
	e.mu.Lock()
	e.state = Poisoned
	e.err = err
	e.mu.Unlock()

	return err
}

// Close transitions to the terminal Closed state. Further operations
// return ErrInvalidState.
func (e *Engine) Close() error {
	e.mu.Lock()
	defer e.mu.Unlock()

	e.state = Closed

	return nil
}

// Stats returns the container-wide row count and per-column directory
// stats, without decoding any column.
func (e *Engine) Stats(_ context.Context) (uint64, []column.Stats, error) {
	if err := e.checkQueryable(); err != nil {
		return 0, nil, err
	}

	ids := e.reader.Columns()
	stats := make([]column.Stats, 0, len(ids))
	for _, id := range ids {
		s, err := e.reader.Stats(id)
		if err != nil {
			return 0, nil, err
		}
		stats = append(stats, s)
	}

	return e.reader.RowCount(), stats, nil
}

// ColumnIDs lists the columns present in the opened container.
func (e *Engine) ColumnIDs() ([]column.ID, error) {
	if err := e.checkQueryable(); err != nil {
		return nil, err
	}

	return e.reader.Columns(), nil
}

func (e *Engine) streamsFor(ctx context.Context) ([]skeleton.Stream, error) {
	e.streamsOnce.Do(func() {
		e.streams, e.streamsErr = e.reader.Streams(ctx)
	})

	return e.streams, e.streamsErr
}

// Select renders up to limit records in full (0 means no limit).
func (e *Engine) Select(ctx context.Context, limit int) ([]string, error) {
	if err := e.checkQueryable(); err != nil {
		return nil, err
	}

	streams, err := e.streamsFor(ctx)
	if err != nil {
		return nil, e.poison(err)
	}

	cols, err := e.gatherAllColumns(ctx)
	if err != nil {
		return nil, err
	}

	out := make([]string, 0, len(streams))
	for _, st := range streams {
		if ctx.Err() != nil {
			return nil, errs.ErrCancelled
		}
		if limit > 0 && len(out) >= limit {
			break
		}
		out = append(out, cols.Render(st))
	}

	return out, nil
}

// Filter renders the records whose colID value matches `lhs op literal`,
// up to limit matches (0 means no limit).
func (e *Engine) Filter(ctx context.Context, colID column.ID, op Op, lit string, limit int) ([]string, error) {
	if err := e.checkQueryable(); err != nil {
		return nil, err
	}

	want, err := coerce(colID, lit)
	if err != nil {
		return nil, err
	}

	col, err := e.reader.Column(ctx, colID)
	if err != nil {
		return nil, e.poison(err)
	}

	recordIdx, err := e.recordIndexFor(ctx, colID, col.Len())
	if err != nil {
		return nil, err
	}

	matchedRecords := make(map[int]struct{})
	for i := 0; i < col.Len(); i += e.chunkSize {
		if ctx.Err() != nil {
			return nil, errs.ErrCancelled
		}

		end := i + e.chunkSize
		if end > col.Len() {
			end = col.Len()
		}
		for j := i; j < end; j++ {
			cmp, err := compareAt(colID, col, j, want)
			if err != nil {
				return nil, e.poison(err)
			}
			if evalOrdering(op, cmp) {
				matchedRecords[recordIdx[j]] = struct{}{}
			}
		}
	}

	streams, err := e.streamsFor(ctx)
	if err != nil {
		return nil, e.poison(err)
	}
	cols, err := e.gatherAllColumns(ctx)
	if err != nil {
		return nil, err
	}

	out := make([]string, 0, len(matchedRecords))
	for i, st := range streams {
		if _, ok := matchedRecords[i]; !ok {
			continue
		}
		if limit > 0 && len(out) >= limit {
			break
		}
		out = append(out, cols.Render(st))
	}

	return out, nil
}

// Query is the general entry point: an optional filter predicate (with
// hasFilter false, colID, op and lit are ignored and Query acts as Select)
// composed with a result limit.
func (e *Engine) Query(ctx context.Context, colID column.ID, op Op, hasFilter bool, lit string, limit int) ([]string, error) {
	if !hasFilter {
		return e.Select(ctx, limit)
	}

	return e.Filter(ctx, colID, op, lit, limit)
}

// Evict drops colID's decoded column from the cache.
func (e *Engine) Evict(colID column.ID) {
	e.reader.Evict(colID)
}
