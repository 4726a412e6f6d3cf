package recognize_test

import (
	"testing"

	"github.com/ext-sakamoro/ALICE-Text/recognize"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestScanPriorityTimestampOverDateTime(t *testing.T) {
	tokens := recognize.Scan("2024-01-15 10:30:45")
	require.Len(t, tokens, 1)
	assert.Equal(t, recognize.KindTimestamp, tokens[0].Kind)
	assert.Equal(t, "2024-01-15 10:30:45", tokens[0].Render())
}

func TestScanAllPatternsLine(t *testing.T) {
	line := `2024-01-15T10:30:45+09:00 INFO 192.168.1.100 550e8400-e29b-41d4-a716-446655440000 GET /api took 12.5ms`
	tokens := recognize.Scan(line)

	kinds := make([]recognize.Kind, 0, len(tokens))
	for _, tok := range tokens {
		kinds = append(kinds, tok.Kind)
		assert.Equal(t, line[tok.Start:tok.End], tok.Render(), "token %v must render back to its source span", tok.Kind)
	}

	assert.Contains(t, kinds, recognize.KindTimestamp)
	assert.Contains(t, kinds, recognize.KindLogLevel)
	assert.Contains(t, kinds, recognize.KindIPv4)
	assert.Contains(t, kinds, recognize.KindUUID)
	assert.Contains(t, kinds, recognize.KindNumber)
}

func TestScanRoundTripReassembly(t *testing.T) {
	lines := []string{
		`2024-01-15T10:30:45+09:00 INFO 192.168.1.100 550e8400-e29b-41d4-a716-446655440000 GET /api took 12.5ms`,
		"plain literal line with no patterns at all",
		"user john.doe@example.com visited https://example.com/path?q=1",
		"value is 42. or 1e2 or -0 or +3.50",
		"2024-01-15 10:30:45",
		"mixed Case-UUID 550E8400-E29B-41D4-A716-446655440000 and 550e8400-E29B-41d4-a716-446655440000",
	}

	for _, line := range lines {
		tokens := recognize.Scan(line)
		rebuilt := ""
		pos := 0
		for _, tok := range tokens {
			rebuilt += line[pos:tok.Start]
			rebuilt += tok.Render()
			pos = tok.End
		}
		rebuilt += line[pos:]

		assert.Equal(t, line, rebuilt)
	}
}

func TestIPv4RejectsLeadingZero(t *testing.T) {
	tokens := recognize.Scan("addr 192.168.001.100 end")
	for _, tok := range tokens {
		assert.NotEqual(t, recognize.KindIPv4, tok.Kind)
	}
}

func TestLogLevelDictionary(t *testing.T) {
	idx, ok := recognize.ParseLogLevel("error")
	require.True(t, ok)
	assert.Equal(t, uint8(5), idx)

	_, ok = recognize.ParseLogLevel("not_a_level")
	assert.False(t, ok)
}
