// Package skeleton turns a recognized token stream into the structural
// template records share (literal runs interleaved with placeholders) plus
// the per-column value vectors those placeholders address.
package skeleton

import (
	"fmt"

	"github.com/ext-sakamoro/ALICE-Text/column"
)

// SegmentKind discriminates the two Segment variants.
type SegmentKind uint8

const (
	SegLiteral SegmentKind = iota
	SegPlaceholder
)

// Placeholder carries only the coordinates needed to gather a value back
// out of its column; any rendering hints travel with the column value
// itself, never with the placeholder.
type Placeholder struct {
	ColumnID column.ID
	Index    int
}

// Segment is one piece of a record's structural template.
type Segment struct {
	Kind        SegmentKind
	Literal     string
	Placeholder Placeholder
}

func (s Segment) String() string {
	if s.Kind == SegLiteral {
		return fmt.Sprintf("Literal(%q)", s.Literal)
	}

	return fmt.Sprintf("Placeholder(%s, %d)", s.Placeholder.ColumnID, s.Placeholder.Index)
}

// Stream is one record's full structural template: its literal text and
// placeholders, in source order.
type Stream struct {
	Segments []Segment
}

// Len reports the number of segments, used by callers chunking work at
// skeleton-stream boundaries.
func (s Stream) Len() int { return len(s.Segments) }
