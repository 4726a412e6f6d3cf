package skeleton

import (
	"strings"

	"github.com/ext-sakamoro/ALICE-Text/column"
	"github.com/ext-sakamoro/ALICE-Text/recognize"
)

// Render reconstructs a record's exact original bytes from its Stream by
// substituting each placeholder with its column value's Render output —
// the same token-level rendering the recognizer itself uses, since each
// column stores exactly the fields its token type's Render method needs.
func (c Columns) Render(s Stream) string {
	var b strings.Builder

	for _, seg := range s.Segments {
		if seg.Kind == SegLiteral {
			b.WriteString(seg.Literal)

			continue
		}
		b.WriteString(c.renderPlaceholder(seg.Placeholder))
	}

	return b.String()
}

func (c Columns) renderPlaceholder(ph Placeholder) string {
	i := ph.Index

	switch ph.ColumnID {
	case column.Timestamps:
		tv := recognize.TimestampValue{
			EpochMs:    c.Timestamps.EpochMs[i],
			Sep:        c.Timestamps.Sep[i],
			FracDigits: c.Timestamps.FracDigits[i],
			Tz:         c.TzSpecs.Specs[i],
		}

		return tv.Render()

	case column.Dates:
		return recognize.RenderDate(c.Dates.EpochDays[i])

	case column.Times:
		tv := recognize.TimeValue{MsFromMidnight: c.Times.MsFromMidnight[i], FracDigits: c.Times.FracDigits[i]}

		return tv.Render()

	case column.IPv4s:
		return recognize.RenderIPv4(c.IPv4.Values[i])

	case column.IPv6s:
		return c.IPv6.Text[i]

	case column.UUIDs:
		return RenderUUIDAt(c.UUIDs, i)

	case column.LogLevels:
		return recognize.LogLevelName(c.LogLevels.Values[i])

	case column.Numbers:
		return c.Numbers.Repr[i]

	case column.Emails:
		return c.Emails.Values[i]

	case column.URLs:
		return c.URLs.Values[i]

	case column.Paths:
		return c.Paths.Values[i]

	default:
		return ""
	}
}

// RenderUUIDAt reconstructs the i-th uuid value's text, only looking into
// Verbatim (a sparse, mixed-case-only side vector) when the case hint says
// the value isn't purely lower or upper case. Exported so callers that
// project a bare UUIDs column (without reconstructing a full record) can
// reuse the same rendering the skeleton does.
func RenderUUIDAt(c *column.UUIDsColumn, i int) string {
	val := recognize.UUIDValue{Hi: c.Hi[i], Lo: c.Lo[i], Case: c.Case[i]}
	if val.Case == recognize.UUIDMixed {
		mixedIdx := 0
		for j := 0; j < i; j++ {
			if c.Case[j] == recognize.UUIDMixed {
				mixedIdx++
			}
		}
		val.Verbatim = c.Verbatim[mixedIdx]
	}

	return val.Render()
}
