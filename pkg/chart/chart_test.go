package chart

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/snowshift-labs/snowshift/pkg/core"
)

func comparisonTables() (*core.Table, *core.Table) {
	current := &core.Table{
		Columns: []string{"PERIOD", "SUM"},
		Rows: [][]any{
			{"2023-06", 100},
			{"2023-07", 120},
		},
	}
	historical := &core.Table{
		Columns: []string{"PERIOD", "SUM"},
		Rows: [][]any{
			{"2023-06", 90},
			{"2023-07", 110},
		},
	}
	return current, historical
}

func TestComparisonDefaults(t *testing.T) {
	current, historical := comparisonTables()

	c, err := Comparison(current, historical, "PERIOD", "SUM", Options{})
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, c.Render(&buf))

	html := buf.String()
	assert.Contains(t, html, "Current Data")
	assert.Contains(t, html, "Historical Data")
	assert.Contains(t, html, "2023-06")
}

func TestComparisonKinds(t *testing.T) {
	current, historical := comparisonTables()

	for _, kind := range []Kind{KindBars, KindLines, KindBoth} {
		t.Run(string(kind), func(t *testing.T) {
			c, err := Comparison(current, historical, "PERIOD", "SUM", Options{Kind: kind})
			require.NoError(t, err)

			var buf bytes.Buffer
			require.NoError(t, c.Render(&buf))
			assert.NotEmpty(t, buf.String())
		})
	}
}

func TestComparisonCustomLabels(t *testing.T) {
	current, historical := comparisonTables()

	c, err := Comparison(current, historical, "PERIOD", "SUM", Options{
		CurrentLabel:    "Active Total Revenue",
		HistoricalLabel: "7 Days Ago Revenue",
		Title:           "Revenue Comparison",
		Kind:            KindBoth,
	})
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, c.Render(&buf))

	html := buf.String()
	assert.Contains(t, html, "Active Total Revenue")
	assert.Contains(t, html, "7 Days Ago Revenue")
	assert.Contains(t, html, "Revenue Comparison")
}

func TestComparisonErrors(t *testing.T) {
	current, historical := comparisonTables()

	tests := []struct {
		name   string
		xCol   string
		yCol   string
		opts   Options
		errMsg string
	}{
		{
			name:   "missing x column",
			xCol:   "NOPE",
			yCol:   "SUM",
			errMsg: "current table",
		},
		{
			name:   "missing y column",
			xCol:   "PERIOD",
			yCol:   "NOPE",
			errMsg: "current table",
		},
		{
			name:   "unknown kind",
			xCol:   "PERIOD",
			yCol:   "SUM",
			opts:   Options{Kind: Kind("pie")},
			errMsg: "unknown chart kind",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Comparison(current, historical, tt.xCol, tt.yCol, tt.opts)
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.errMsg)
		})
	}
}

func TestComparisonHistoricalMissingColumn(t *testing.T) {
	current, _ := comparisonTables()
	historical := &core.Table{Columns: []string{"OTHER"}, Rows: [][]any{{1}}}

	_, err := Comparison(current, historical, "PERIOD", "SUM", Options{})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "historical table")
}

func TestWriteHTML(t *testing.T) {
	current, historical := comparisonTables()

	c, err := Comparison(current, historical, "PERIOD", "SUM", Options{})
	require.NoError(t, err)

	path := t.TempDir() + "/chart.html"
	require.NoError(t, c.WriteHTML(path))

	assert.FileExists(t, path)
}
