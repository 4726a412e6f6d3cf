package recognize_test

import (
	"testing"

	"github.com/ext-sakamoro/ALICE-Text/recognize"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTimestampEpochMsIsUtcNormalized(t *testing.T) {
	offsetTok := recognize.Scan("2024-01-15T10:30:45+09:00")[0]
	utcTok := recognize.Scan("2024-01-15T01:30:45Z")[0]

	assert.Equal(t, utcTok.Timestamp.EpochMs, offsetTok.Timestamp.EpochMs,
		"an offset timestamp's epoch_ms must equal the UTC-normalized instant")
}

func TestTimestampRenderRoundTripsOffset(t *testing.T) {
	src := "2024-01-15T10:30:45+09:00"
	tok := recognize.Scan(src)[0]
	assert.Equal(t, src, tok.Render())
}

func TestTimestampColonLessOffsetRoundTrips(t *testing.T) {
	src := "2024-01-15T10:30:45+0900"
	tok := recognize.Scan(src)[0]
	assert.Equal(t, src, tok.Render())
	assert.True(t, tok.Timestamp.Tz.NoColon)
}

func TestTimestampColonLessOffsetMatchesColonOffsetInstant(t *testing.T) {
	withColon := recognize.Scan("2024-01-15T10:30:45+09:00")[0]
	noColon := recognize.Scan("2024-01-15T10:30:45+0900")[0]

	assert.Equal(t, withColon.Timestamp.EpochMs, noColon.Timestamp.EpochMs)
}

func TestParseTimestampLiteralUtcNormalized(t *testing.T) {
	tv, ok := recognize.ParseTimestampLiteral("2024-01-15T10:30:45+09:00")
	require.True(t, ok)

	want, ok := recognize.ParseTimestampLiteral("2024-01-15T01:30:45Z")
	require.True(t, ok)

	assert.Equal(t, want.EpochMs, tv.EpochMs)
}
