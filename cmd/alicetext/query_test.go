package main

import (
	"testing"

	"github.com/ext-sakamoro/ALICE-Text/column"
	"github.com/ext-sakamoro/ALICE-Text/query"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseWhereEquality(t *testing.T) {
	colID, op, value, err := parseWhere("log_levels = ERROR")
	require.NoError(t, err)
	assert.Equal(t, column.LogLevels, colID)
	assert.Equal(t, query.OpEq, op)
	assert.Equal(t, "ERROR", value)
}

func TestParseWhereOrderingPrefersLongestOperator(t *testing.T) {
	_, op, value, err := parseWhere("numbers >= 12.5")
	require.NoError(t, err)
	assert.Equal(t, query.OpGe, op)
	assert.Equal(t, "12.5", value)
}

func TestParseWhereUnknownColumn(t *testing.T) {
	_, _, _, err := parseWhere("bogus = 1")
	assert.Error(t, err)
}

func TestParseWhereMalformed(t *testing.T) {
	_, _, _, err := parseWhere("no operator here")
	assert.Error(t, err)
}

func TestFormatRecordsText(t *testing.T) {
	out := formatRecords([]string{"a", "b"}, "text")
	assert.Equal(t, "a\nb\n", out)
}

func TestFormatRecordsJSON(t *testing.T) {
	out := formatRecords([]string{"a", "b"}, "json")
	assert.JSONEq(t, `["a","b"]`, out)
}

func TestParseSelectColumns(t *testing.T) {
	ids, err := parseSelectColumns("log_levels, ipv4")
	require.NoError(t, err)
	assert.Equal(t, []column.ID{column.LogLevels, column.IPv4s}, ids)
}

func TestParseSelectColumnsUnknown(t *testing.T) {
	_, err := parseSelectColumns("bogus")
	assert.Error(t, err)
}

func TestParseSelectColumnsEmpty(t *testing.T) {
	_, err := parseSelectColumns("  ")
	assert.Error(t, err)
}

func TestFormatRowsText(t *testing.T) {
	out := formatRows([]column.ID{column.LogLevels, column.IPv4s}, [][]string{{"INFO", "192.168.1.1"}}, "text")
	assert.Equal(t, "INFO\t192.168.1.1\n", out)
}

func TestFormatRowsJSON(t *testing.T) {
	out := formatRows([]column.ID{column.LogLevels}, [][]string{{"INFO"}}, "json")
	assert.JSONEq(t, `[{"log_levels":"INFO"}]`, out)
}

func TestFormatStatsText(t *testing.T) {
	stats := []column.Stats{{ID: column.IPv4s, ElementType: "u32", Encoding: "packed_le_array", RowCount: 2, UncompressedSz: 8, CompressedSz: 6}}
	out := formatStats(3, stats, "text")
	assert.Contains(t, out, "row_count: 3")
	assert.Contains(t, out, "ipv4")
}
