package commands

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/snowshift-labs/snowshift/pkg/core"
)

func sampleTable() *core.Table {
	return &core.Table{
		Columns: []string{"day", "orders"},
		Rows: [][]any{
			{"2026-08-01", int64(42)},
			{"2026-08-02", int64(57)},
		},
	}
}

func TestRenderResultsTable(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, renderResults(&buf, sampleTable(), "table"))

	out := buf.String()
	// StyleLight uppercases header cells.
	assert.Contains(t, out, "DAY")
	assert.Contains(t, out, "ORDERS")
	assert.Contains(t, out, "2026-08-01")
	assert.Contains(t, out, "(2 rows)")
}

func TestRenderResultsTableEmpty(t *testing.T) {
	var buf bytes.Buffer
	empty := &core.Table{Columns: []string{"day"}}
	require.NoError(t, renderResults(&buf, empty, ""))
	assert.Equal(t, "(0 rows)\n", buf.String())
}

func TestRenderResultsJSON(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, renderResults(&buf, sampleTable(), "json"))

	var rows []map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &rows))
	require.Len(t, rows, 2)
	assert.Equal(t, "2026-08-01", rows[0]["day"])
	assert.Equal(t, float64(42), rows[0]["orders"])
}

func TestRenderResultsCSV(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, renderResults(&buf, sampleTable(), "csv"))
	assert.Equal(t, "day,orders\n2026-08-01,42\n2026-08-02,57\n", buf.String())
}

func TestRenderResultsMarkdown(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, renderResults(&buf, sampleTable(), "md"))

	want := "| day | orders |\n| --- | --- |\n| 2026-08-01 | 42 |\n| 2026-08-02 | 57 |\n"
	assert.Equal(t, want, buf.String())
}

func TestRenderResultsMarkdownEscapesPipes(t *testing.T) {
	var buf bytes.Buffer
	tbl := &core.Table{
		Columns: []string{"name"},
		Rows:    [][]any{{"a|b"}},
	}
	require.NoError(t, renderResults(&buf, tbl, "markdown"))
	assert.Contains(t, buf.String(), `a\|b`)
}

func TestRenderResultsUnknownFormat(t *testing.T) {
	var buf bytes.Buffer
	err := renderResults(&buf, sampleTable(), "xml")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unknown output format")
}
