package column_test

import (
	"testing"

	"github.com/ext-sakamoro/ALICE-Text/column"
	"github.com/ext-sakamoro/ALICE-Text/recognize"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTimestampsRoundTrip(t *testing.T) {
	c := &column.TimestampsColumn{
		EpochMs:    []int64{1_700_000_000_000, 1_700_000_001_500, 1_700_000_001_500},
		Sep:        []byte{'T', ' ', 'T'},
		FracDigits: []string{"", "5", "123456"},
	}

	decoded, err := column.DecodeTimestamps(c.Encode())
	require.NoError(t, err)
	assert.Equal(t, c, decoded)
}

func TestTzSpecsRoundTrip(t *testing.T) {
	c := &column.TzSpecsColumn{
		Specs: []recognize.TzSpec{
			{Kind: recognize.TzUtc},
			{Kind: recognize.TzUtc},
			{Kind: recognize.TzOffset, OffsetMinutes: 540},
			{Kind: recognize.TzOffset, OffsetMinutes: -300},
			{Kind: recognize.TzOffset, OffsetMinutes: 540, NoColon: true},
			{Kind: recognize.TzNaive},
		},
	}

	decoded, err := column.DecodeTzSpecs(c.Encode())
	require.NoError(t, err)
	assert.Equal(t, c, decoded)
}

func TestDatesRoundTrip(t *testing.T) {
	c := &column.DatesColumn{EpochDays: []uint32{19737, 19738, 19738, 19800}}

	decoded, err := column.DecodeDates(c.Encode())
	require.NoError(t, err)
	assert.Equal(t, c, decoded)
}

func TestTimesRoundTrip(t *testing.T) {
	c := &column.TimesColumn{
		MsFromMidnight: []uint32{37845000, 0, 86399999},
		FracDigits:     []string{"", "", "9"},
	}

	decoded, err := column.DecodeTimes(c.Encode())
	require.NoError(t, err)
	assert.Equal(t, c, decoded)
}

func TestIPv4RoundTrip(t *testing.T) {
	c := &column.IPv4Column{Values: []uint32{0xC0A80101, 0x7F000001, 0}}

	decoded, err := column.DecodeIPv4(c.Encode())
	require.NoError(t, err)
	assert.Equal(t, c, decoded)
}

func TestIPv6RoundTrip(t *testing.T) {
	c := &column.IPv6Column{
		Hi:   []uint64{0x2001_0db8_0000_0000, 0},
		Lo:   []uint64{0x0000_0000_0000_0001, 1},
		Text: []string{"2001:db8::1", "::1"},
	}

	decoded, err := column.DecodeIPv6(c.Encode())
	require.NoError(t, err)
	assert.Equal(t, c, decoded)
}

func TestUUIDsRoundTrip(t *testing.T) {
	c := &column.UUIDsColumn{
		Hi:       []uint64{0x550e8400e29b41d4, 0xaaaaaaaaaaaaaaaa},
		Lo:       []uint64{0xa716446655440000, 0xbbbbbbbbbbbbbbbb},
		Case:     []recognize.UUIDCase{recognize.UUIDLower, recognize.UUIDMixed},
		Verbatim: []string{"aaaaaaaa-aaaa-aaaa-aaaa-aaaaaaaaaaAA"},
	}

	decoded, err := column.DecodeUUIDs(c.Encode())
	require.NoError(t, err)
	assert.Equal(t, c, decoded)
}

func TestLogLevelsRoundTrip(t *testing.T) {
	c := &column.LogLevelsColumn{Values: []uint8{2, 5, 5, 0}}

	decoded, err := column.DecodeLogLevels(c.Encode())
	require.NoError(t, err)
	assert.Equal(t, c, decoded)
}

func TestNumbersRoundTrip(t *testing.T) {
	c := &column.NumbersColumn{
		Values: []float64{42, 1e2, -0, 3.5},
		Repr:   []string{"42.", "1e2", "-0", "+3.50"},
	}

	decoded, err := column.DecodeNumbers(c.Encode())
	require.NoError(t, err)
	assert.Equal(t, c, decoded)
}

func TestStringsRoundTrip(t *testing.T) {
	c := column.NewStringsColumn(column.Emails, []string{"a@example.com", "b@example.org"})

	decoded, err := column.DecodeStrings(column.Emails, c.Encode())
	require.NoError(t, err)
	assert.Equal(t, c, decoded)
}

func TestColumnIDString(t *testing.T) {
	assert.Equal(t, "timestamps", column.Timestamps.String())
	assert.Equal(t, "uuids", column.UUIDs.String())
	assert.True(t, column.Timestamps.RecordAligned())
	assert.False(t, column.UUIDs.RecordAligned())
	assert.Len(t, column.All(), 12)
}
