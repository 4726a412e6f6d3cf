package main

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/ext-sakamoro/ALICE-Text/column"
	"github.com/ext-sakamoro/ALICE-Text/container"
	"github.com/ext-sakamoro/ALICE-Text/query"
)

// parseWhere splits a "column op value" expression per spec.md §6's
// where-expression grammar: exactly one predicate, no AND/OR.
func parseWhere(expr string) (column.ID, query.Op, string, error) {
	for _, opStr := range []string{"!=", "<=", ">=", "==", "=", "<", ">"} {
		if i := strings.Index(expr, opStr); i >= 0 {
			colName := strings.TrimSpace(expr[:i])
			value := strings.TrimSpace(expr[i+len(opStr):])

			colID, ok := column.ParseID(colName)
			if !ok {
				return 0, 0, "", fmt.Errorf("query: unknown column %q", colName)
			}
			op, err := query.ParseOp(opStr)
			if err != nil {
				return 0, 0, "", err
			}

			return colID, op, value, nil
		}
	}

	return 0, 0, "", fmt.Errorf("query: malformed --where expression %q", expr)
}

func newQueryCommand() *cobra.Command {
	var (
		showStats   bool
		showColumns bool
		selectCols  string
		whereExpr   string
		limit       int
		format      string
	)

	cmd := &cobra.Command{
		Use:   "query <input>",
		Short: "Run a stats/columns/select/filter query against a v3 container",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			_, data, err := readInputArg(args)
			if err != nil {
				return err
			}

			codec, err := codecFromFlags("query")
			if err != nil {
				return err
			}

			e := query.NewEngine()
			if err := e.OpenContainer(container.NewReaderAtBytes(data), int64(len(data)), codec); err != nil {
				return withCode(exitQuery, err)
			}
			defer e.Close() //nolint:errcheck

			ctx := context.Background()

			switch {
			case showStats:
				rowCount, stats, err := e.Stats(ctx)
				if err != nil {
					return withCode(exitQuery, err)
				}

				return writeOutput([]byte(formatStats(rowCount, stats, format)))

			case showColumns:
				ids, err := e.ColumnIDs()
				if err != nil {
					return withCode(exitQuery, err)
				}

				return writeOutput([]byte(formatColumnList(ids, format)))

			case selectCols != "" && whereExpr != "":
				ids, err := parseSelectColumns(selectCols)
				if err != nil {
					return withCode(exitQuery, err)
				}
				filterCol, op, value, err := parseWhere(whereExpr)
				if err != nil {
					return withCode(exitQuery, err)
				}

				rows, err := e.QueryColumns(ctx, ids, filterCol, op, value, limit)
				if err != nil {
					return withCode(exitQuery, err)
				}

				return writeOutput([]byte(formatRows(ids, rows, format)))

			case selectCols != "":
				ids, err := parseSelectColumns(selectCols)
				if err != nil {
					return withCode(exitQuery, err)
				}

				batch, err := e.SelectColumns(ctx, ids...)
				if err != nil {
					return withCode(exitQuery, err)
				}

				out, err := formatColumnBatch(ids, batch, limit, format)
				if err != nil {
					return withCode(exitQuery, err)
				}

				return writeOutput([]byte(out))

			default:
				var records []string
				if whereExpr != "" {
					colID, op, value, err := parseWhere(whereExpr)
					if err != nil {
						return withCode(exitQuery, err)
					}
					records, err = e.Filter(ctx, colID, op, value, limit)
					if err != nil {
						return withCode(exitQuery, err)
					}
				} else {
					records, err = e.Select(ctx, limit)
					if err != nil {
						return withCode(exitQuery, err)
					}
				}

				return writeOutput([]byte(formatRecords(records, format)))
			}
		},
	}

	cmd.Flags().BoolVar(&showStats, "stats", false, "print container-wide and per-column stats")
	cmd.Flags().BoolVar(&showColumns, "columns", false, "list the columns present in the container")
	cmd.Flags().StringVar(&selectCols, "select", "", "comma-separated column names to project")
	cmd.Flags().StringVar(&whereExpr, "where", "", `filter expression: "column op value"`)
	cmd.Flags().IntVar(&limit, "limit", 0, "cap the number of records returned (0 = no cap)")
	cmd.Flags().StringVar(&format, "format", "text", "output format: text or json")

	return cmd
}

// parseSelectColumns splits a comma-separated --select value into column
// IDs, per spec.md §6's grammar.
func parseSelectColumns(csv string) ([]column.ID, error) {
	parts := strings.Split(csv, ",")
	ids := make([]column.ID, 0, len(parts))
	for _, p := range parts {
		name := strings.TrimSpace(p)
		if name == "" {
			continue
		}
		id, ok := column.ParseID(name)
		if !ok {
			return nil, fmt.Errorf("query: unknown column %q", name)
		}
		ids = append(ids, id)
	}

	if len(ids) == 0 {
		return nil, fmt.Errorf("query: --select requires at least one column name")
	}

	return ids, nil
}

// formatColumnBatch renders a bare select(columns) result: one independent
// value list per projected column (select() makes no row-alignment
// guarantee across columns; only the composed query() does).
func formatColumnBatch(ids []column.ID, batch query.ColumnBatch, limit int, format string) (string, error) {
	out := make(map[string][]string, len(ids))
	for _, id := range ids {
		col := batch.Columns[id]
		n := col.Len()
		if limit > 0 && n > limit {
			n = limit
		}
		values := make([]string, n)
		for i := 0; i < n; i++ {
			v, err := query.ValueAt(id, col, i)
			if err != nil {
				return "", err
			}
			values[i] = v
		}
		out[id.String()] = values
	}

	if format == "json" {
		b, _ := json.Marshal(out) //nolint:errcheck

		return string(b) + "\n", nil
	}

	var b strings.Builder
	for _, id := range ids {
		fmt.Fprintf(&b, "%s: %s\n", id.String(), strings.Join(out[id.String()], ", "))
	}

	return b.String(), nil
}

// formatRows renders a composed query(select_cols, filter_col, op,
// literal, limit) → RowSet result, one row per matched, filter-ordered
// record index.
func formatRows(ids []column.ID, rows [][]string, format string) string {
	if format == "json" {
		type row map[string]string
		out := make([]row, len(rows))
		for i, r := range rows {
			rr := make(row, len(ids))
			for k, id := range ids {
				rr[id.String()] = r[k]
			}
			out[i] = rr
		}
		b, _ := json.Marshal(out) //nolint:errcheck

		return string(b) + "\n"
	}

	var b strings.Builder
	for _, r := range rows {
		b.WriteString(strings.Join(r, "\t"))
		b.WriteByte('\n')
	}

	return b.String()
}

func formatRecords(records []string, format string) string {
	if format == "json" {
		b, _ := json.Marshal(records) //nolint:errcheck

		return string(b) + "\n"
	}

	return strings.Join(records, "\n") + "\n"
}

func formatColumnList(ids []column.ID, format string) string {
	names := make([]string, len(ids))
	for i, id := range ids {
		names[i] = id.String()
	}

	if format == "json" {
		b, _ := json.Marshal(names) //nolint:errcheck

		return string(b) + "\n"
	}

	return strings.Join(names, "\n") + "\n"
}

type statsReport struct {
	RowCount uint64         `json:"row_count"`
	Columns  []columnReport `json:"columns"`
}

type columnReport struct {
	ID             string `json:"id"`
	ElementType    string `json:"element_type"`
	Encoding       string `json:"encoding"`
	RowCount       int    `json:"row_count"`
	UncompressedSz int    `json:"uncompressed_size"`
	CompressedSz   int    `json:"compressed_size"`
}

func formatStats(rowCount uint64, stats []column.Stats, format string) string {
	report := statsReport{RowCount: rowCount, Columns: make([]columnReport, len(stats))}
	for i, s := range stats {
		report.Columns[i] = columnReport{
			ID: s.ID.String(), ElementType: s.ElementType, Encoding: s.Encoding,
			RowCount: s.RowCount, UncompressedSz: s.UncompressedSz, CompressedSz: s.CompressedSz,
		}
	}

	if format == "json" {
		b, _ := json.Marshal(report) //nolint:errcheck

		return string(b) + "\n"
	}

	out := fmt.Sprintf("row_count: %d\n", rowCount)
	for _, c := range report.Columns {
		out += fmt.Sprintf("  %-12s type=%-8s encoding=%-28s rows=%-8d uncompressed=%-10d compressed=%d\n",
			c.ID, c.ElementType, c.Encoding, c.RowCount, c.UncompressedSz, c.CompressedSz)
	}

	return out
}
