package core

import (
	"database/sql"
	"encoding/csv"
	"fmt"
	"io"
	"time"
)

// Table is a fully materialized query result: named, ordered columns plus
// row data. Comparison logic needs both the current and the historical
// result in memory at the same time, so results are read eagerly rather
// than streamed.
type Table struct {
	Columns []string
	Rows    [][]any
}

// ReadTable drains rows into a Table. The caller retains ownership of rows
// and must close them; ReadTable only iterates.
// []byte values are converted to string for readability.
func ReadTable(rows *sql.Rows) (*Table, error) {
	cols, err := rows.Columns()
	if err != nil {
		return nil, fmt.Errorf("failed to read columns: %w", err)
	}

	t := &Table{Columns: cols}
	for rows.Next() {
		values := make([]any, len(cols))
		valuePtrs := make([]any, len(cols))
		for i := range values {
			valuePtrs[i] = &values[i]
		}
		if err := rows.Scan(valuePtrs...); err != nil {
			return nil, fmt.Errorf("failed to scan row: %w", err)
		}
		for i, v := range values {
			if b, ok := v.([]byte); ok {
				values[i] = string(b)
			}
		}
		t.Rows = append(t.Rows, values)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating rows: %w", err)
	}

	return t, nil
}

// RowCount returns the number of data rows.
func (t *Table) RowCount() int {
	return len(t.Rows)
}

// HasColumn reports whether the table has a column with the given name.
func (t *Table) HasColumn(name string) bool {
	_, ok := t.columnIndex(name)
	return ok
}

// Column returns the values of the named column, in row order.
func (t *Table) Column(name string) ([]any, error) {
	idx, ok := t.columnIndex(name)
	if !ok {
		return nil, fmt.Errorf("column %q not found (have %v)", name, t.Columns)
	}
	values := make([]any, len(t.Rows))
	for i, row := range t.Rows {
		values[i] = row[idx]
	}
	return values, nil
}

func (t *Table) columnIndex(name string) (int, bool) {
	for i, col := range t.Columns {
		if col == name {
			return i, true
		}
	}
	return 0, false
}

// WriteCSV writes the table as CSV: header row first, then data rows.
func (t *Table) WriteCSV(w io.Writer) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(t.Columns); err != nil {
		return fmt.Errorf("failed to write CSV header: %w", err)
	}
	record := make([]string, len(t.Columns))
	for _, row := range t.Rows {
		for i, v := range row {
			record[i] = FormatValue(v)
		}
		if err := cw.Write(record); err != nil {
			return fmt.Errorf("failed to write CSV row: %w", err)
		}
	}
	cw.Flush()
	return cw.Error()
}

// FormatValue renders a single cell value as a string.
func FormatValue(v any) string {
	switch val := v.(type) {
	case nil:
		return ""
	case string:
		return val
	case time.Time:
		return val.Format(time.RFC3339)
	case float64:
		return fmt.Sprintf("%g", val)
	case float32:
		return fmt.Sprintf("%g", val)
	default:
		return fmt.Sprintf("%v", val)
	}
}
