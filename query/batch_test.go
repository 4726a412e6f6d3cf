package query_test

import (
	"context"
	"testing"

	"github.com/ext-sakamoro/ALICE-Text/column"
	"github.com/ext-sakamoro/ALICE-Text/query"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSelectColumnsTouchesOnlyRequestedColumns(t *testing.T) {
	e := buildEngine(t)

	batch, err := e.SelectColumns(context.Background(), column.LogLevels)
	require.NoError(t, err)

	assert.Len(t, batch.Columns, 1)
	levels, ok := batch.Columns[column.LogLevels]
	require.True(t, ok)
	assert.Equal(t, 3, levels.Len()) // 3 of the 4 test records carry a log level
}

func TestSelectColumnsValueAtRendersLevels(t *testing.T) {
	e := buildEngine(t)

	batch, err := e.SelectColumns(context.Background(), column.LogLevels)
	require.NoError(t, err)

	col := batch.Columns[column.LogLevels]
	values := make([]string, col.Len())
	for i := range values {
		v, err := query.ValueAt(column.LogLevels, col, i)
		require.NoError(t, err)
		values[i] = v
	}
	assert.ElementsMatch(t, []string{"INFO", "ERROR", "INFO"}, values)
}

func TestQueryColumnsGathersAlignedRows(t *testing.T) {
	e := buildEngine(t)

	rows, err := e.QueryColumns(context.Background(), []column.ID{column.LogLevels, column.IPv4s}, column.LogLevels, query.OpEq, "INFO", 0)
	require.NoError(t, err)

	require.Len(t, rows, 2)
	for _, row := range rows {
		require.Len(t, row, 2)
		assert.Equal(t, "INFO", row[0])
		assert.Equal(t, "192.168.1.1", row[1])
	}
}

func TestQueryColumnsRespectsLimit(t *testing.T) {
	e := buildEngine(t)

	rows, err := e.QueryColumns(context.Background(), []column.ID{column.LogLevels}, column.LogLevels, query.OpEq, "INFO", 1)
	require.NoError(t, err)
	assert.Len(t, rows, 1)
}
