package query

import (
	"context"

	"github.com/ext-sakamoro/ALICE-Text/column"
)

// Builder is a fluent wrapper over Engine's Select/Filter/Query, letting
// callers compose a query as a chain of method calls instead of assembling
// the raw colID/Op/literal/limit arguments by hand. It has no state of its
// own beyond the pending predicate and limit — building one is free, and it can be
// reused to issue several queries against the same Engine.
type Builder struct {
	engine    *Engine
	colID     column.ID
	op        Op
	literal   string
	hasFilter bool
	limit     int
}

// NewBuilder starts a fluent query against engine.
func NewBuilder(engine *Engine) *Builder {
	return &Builder{engine: engine}
}

// Where adds the single supported predicate: colID op literal. Calling it
// again replaces the previous predicate — the format supports exactly one
// filter column per query.
func (b *Builder) Where(colID column.ID, op Op, literal string) *Builder {
	b.colID = colID
	b.op = op
	b.literal = literal
	b.hasFilter = true

	return b
}

// Limit caps the number of records returned; 0 (the default) means no cap.
func (b *Builder) Limit(n int) *Builder {
	b.limit = n

	return b
}

// Run executes the composed query against the underlying Engine.
func (b *Builder) Run(ctx context.Context) ([]string, error) {
	return b.engine.Query(ctx, b.colID, b.op, b.hasFilter, b.literal, b.limit)
}
