package column

import "encoding/binary"

// StringsColumn is the shared length-prefixed UTF-8 blob encoding spec'd
// for emails, urls and paths — structurally identical for all three, so one
// type backs all three ColumnIds, distinguished only by which ID it reports.
type StringsColumn struct {
	id     ID
	Values []string
}

// NewStringsColumn builds a StringsColumn for one of Emails, URLs or Paths.
func NewStringsColumn(id ID, values []string) *StringsColumn {
	return &StringsColumn{id: id, Values: values}
}

func (c *StringsColumn) ID() ID              { return c.id }
func (c *StringsColumn) Len() int            { return len(c.Values) }
func (c *StringsColumn) ElementType() string { return "string" }
func (c *StringsColumn) Encoding() string    { return "length_prefixed_utf8" }

func (c *StringsColumn) Encode() []byte {
	scratch := make([]byte, binary.MaxVarintLen64)
	n := binary.PutUvarint(scratch, uint64(len(c.Values)))

	buf := append([]byte(nil), scratch[:n]...)

	return append(buf, encodeStrings(c.Values)...)
}

// DecodeStrings reverses StringsColumn.Encode for the given ID.
func DecodeStrings(id ID, data []byte) (*StringsColumn, error) {
	count64, n := binary.Uvarint(data)
	if n <= 0 {
		return nil, errTruncated
	}

	values, err := decodeStrings(data[n:], int(count64))
	if err != nil {
		return nil, err
	}

	return &StringsColumn{id: id, Values: values}, nil
}
