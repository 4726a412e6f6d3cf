package skeleton_test

import (
	"testing"

	"github.com/ext-sakamoro/ALICE-Text/column"
	"github.com/ext-sakamoro/ALICE-Text/skeleton"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuilderSingleRecordSegments(t *testing.T) {
	b := skeleton.NewBuilder()
	stream := b.AddRecord("2024-01-15T10:30:45Z INFO 192.168.1.1 request ok")

	require.NotEmpty(t, stream.Segments)
	assert.Equal(t, skeleton.SegPlaceholder, stream.Segments[0].Kind)
	assert.Equal(t, column.Timestamps, stream.Segments[0].Placeholder.ColumnID)
	assert.Equal(t, 0, stream.Segments[0].Placeholder.Index)

	var sawLiteral, sawIPv4, sawLogLevel bool
	for _, seg := range stream.Segments {
		switch {
		case seg.Kind == skeleton.SegLiteral:
			sawLiteral = true
		case seg.Placeholder.ColumnID == column.IPv4s:
			sawIPv4 = true
		case seg.Placeholder.ColumnID == column.LogLevels:
			sawLogLevel = true
		}
	}
	assert.True(t, sawLiteral)
	assert.True(t, sawIPv4)
	assert.True(t, sawLogLevel)
}

func TestBuilderColumnOrderingAcrossRecords(t *testing.T) {
	b := skeleton.NewBuilder()
	s1 := b.AddRecord("first 192.168.1.1 line")
	s2 := b.AddRecord("second 10.0.0.1 line")

	cols := b.Finish()
	require.Equal(t, 2, cols.IPv4.Len())
	assert.Equal(t, uint32(0xC0A80101), cols.IPv4.Values[0])
	assert.Equal(t, uint32(0x0A000001), cols.IPv4.Values[1])

	ph1 := s1.Segments[1].Placeholder
	ph2 := s2.Segments[1].Placeholder
	assert.Equal(t, 0, ph1.Index)
	assert.Equal(t, 1, ph2.Index)
}

func TestBuilderPresenceBitmapOnlyWhenSparse(t *testing.T) {
	b := skeleton.NewBuilder()
	b.AddRecord("2024-01-15T10:30:45Z hello")
	b.AddRecord("no timestamp here")

	cols := b.Finish()
	require.NotNil(t, cols.TimestampsPres)
	assert.True(t, cols.TimestampsPres.Get(0))
	assert.False(t, cols.TimestampsPres.Get(1))

	b2 := skeleton.NewBuilder()
	b2.AddRecord("2024-01-15T10:30:45Z one")
	b2.AddRecord("2024-01-16T10:30:45Z two")
	cols2 := b2.Finish()
	assert.Nil(t, cols2.TimestampsPres)
}

func TestBuilderLiteralOnlyRecord(t *testing.T) {
	b := skeleton.NewBuilder()
	stream := b.AddRecord("no patterns in this line")

	require.Len(t, stream.Segments, 1)
	assert.Equal(t, skeleton.SegLiteral, stream.Segments[0].Kind)
	assert.Equal(t, "no patterns in this line", stream.Segments[0].Literal)
}
