package skeleton_test

import (
	"testing"

	"github.com/ext-sakamoro/ALICE-Text/skeleton"
	"github.com/stretchr/testify/assert"
)

func TestRenderRoundTrip(t *testing.T) {
	records := []string{
		"2024-01-15T10:30:45+09:00 INFO 192.168.1.100 550e8400-e29b-41d4-a716-446655440000 GET /api took 12.5ms",
		"plain literal line with no patterns at all",
		"user john.doe@example.com visited https://example.com/path?q=1",
		"2024-01-15 10:30:45",
		"no timestamp here but a date 2024-03-02 and a number 3.50",
	}

	b := skeleton.NewBuilder()
	streams := make([]skeleton.Stream, len(records))
	for i, rec := range records {
		streams[i] = b.AddRecord(rec)
	}
	cols := b.Finish()

	for i, rec := range records {
		assert.Equal(t, rec, cols.Render(streams[i]))
	}
}
