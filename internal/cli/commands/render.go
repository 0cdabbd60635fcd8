package commands

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/jedib0t/go-pretty/v6/table"

	"github.com/snowshift-labs/snowshift/pkg/core"
)

// renderResults writes a materialized table in the requested format.
func renderResults(w io.Writer, t *core.Table, format string) error {
	switch format {
	case "json":
		return renderJSON(w, t)
	case "csv":
		return t.WriteCSV(w)
	case "md", "markdown":
		return renderMarkdown(w, t)
	case "", "table":
		return renderTable(w, t)
	default:
		return fmt.Errorf("unknown output format %q (want table, json, csv, or md)", format)
	}
}

func renderTable(w io.Writer, t *core.Table) error {
	if t.RowCount() == 0 {
		_, _ = fmt.Fprintln(w, "(0 rows)")
		return nil
	}

	tw := table.NewWriter()
	tw.SetOutputMirror(w)
	tw.SetStyle(table.StyleLight)

	headerRow := make(table.Row, len(t.Columns))
	for i, col := range t.Columns {
		headerRow[i] = col
	}
	tw.AppendHeader(headerRow)

	for _, r := range t.Rows {
		row := make(table.Row, len(r))
		for i, v := range r {
			row[i] = core.FormatValue(v)
		}
		tw.AppendRow(row)
	}

	tw.Render()
	_, _ = fmt.Fprintf(w, "(%d rows)\n", t.RowCount())
	return nil
}

func renderJSON(w io.Writer, t *core.Table) error {
	results := make([]map[string]any, t.RowCount())
	for i, row := range t.Rows {
		m := make(map[string]any, len(t.Columns))
		for j, col := range t.Columns {
			m[col] = row[j]
		}
		results[i] = m
	}
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(results)
}

func renderMarkdown(w io.Writer, t *core.Table) error {
	if t.RowCount() == 0 {
		_, _ = fmt.Fprintln(w, "(0 rows)")
		return nil
	}

	_, _ = fmt.Fprintf(w, "| %s |\n", strings.Join(t.Columns, " | "))

	separators := make([]string, len(t.Columns))
	for i := range separators {
		separators[i] = "---"
	}
	_, _ = fmt.Fprintf(w, "| %s |\n", strings.Join(separators, " | "))

	cells := make([]string, len(t.Columns))
	for _, row := range t.Rows {
		for i, v := range row {
			cells[i] = strings.ReplaceAll(core.FormatValue(v), "|", "\\|")
		}
		_, _ = fmt.Fprintf(w, "| %s |\n", strings.Join(cells, " | "))
	}
	return nil
}
