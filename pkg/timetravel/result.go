package timetravel

import (
	"io"
	"time"

	"github.com/snowshift-labs/snowshift/pkg/core"
)

// Result is a time-shifted query result together with how it was obtained.
type Result struct {
	Table     *core.Table
	Query     string    // the rewritten SQL that was executed
	Qualifier Qualifier // the clause that was injected
	QueryTime time.Time // client-side time the result was received
}

func newResult(table *core.Table, query string, q Qualifier) *Result {
	return &Result{
		Table:     table,
		Query:     query,
		Qualifier: q,
		QueryTime: time.Now(),
	}
}

// RowCount returns the number of rows in the result.
func (r *Result) RowCount() int {
	return r.Table.RowCount()
}

// WriteCSV writes the result table as CSV.
func (r *Result) WriteCSV(w io.Writer) error {
	return r.Table.WriteCSV(w)
}
