package timetravel

import (
	"context"

	"github.com/snowshift-labs/snowshift/pkg/core"
)

// Executor runs SQL against a database and returns a materialized result.
// params are named query parameters (nil or empty means none); names are
// unique and order is irrelevant. Implementations live in pkg/adapter; any
// timeout or cancellation policy belongs to the executor, not this package.
type Executor interface {
	Execute(ctx context.Context, query string, params map[string]any) (*core.Table, error)
}

// Comparison pairs the current result of a query with its historical
// counterpart. Both tables come from the same query text and parameters;
// only the injected qualifier differs.
type Comparison struct {
	Current    *core.Table
	Historical *core.Table
	Qualifier  Qualifier
}

// Compare runs query twice against exec: once rewritten to read state as of
// daysAgo days in the past, once unmodified.
func Compare(ctx context.Context, exec Executor, query string, daysAgo int, params map[string]any) (*Comparison, error) {
	return CompareAt(ctx, exec, query, DaysAgo(daysAgo), params)
}

// CompareAt runs query twice against exec: once with q injected into its
// FROM clauses, once unmodified.
//
// The historical query is dispatched first, then the current one, as two
// sequential independent calls. There is no atomicity across them: if the
// underlying data changes in between, the current table reflects a slightly
// later state than the moment the historical query ran. That is inherent to
// comparing against a live system and is accepted, not solved.
//
// A failure on either dispatch aborts the comparison; no partial pair is
// returned. The executor's error is wrapped in *QueryError with the SQL
// that failed.
func CompareAt(ctx context.Context, exec Executor, query string, q Qualifier, params map[string]any) (*Comparison, error) {
	shifted := InjectClause(query, q.String())

	historical, err := exec.Execute(ctx, shifted, params)
	if err != nil {
		return nil, &QueryError{Query: shifted, Err: err}
	}

	current, err := exec.Execute(ctx, query, params)
	if err != nil {
		return nil, &QueryError{Query: query, Err: err}
	}

	return &Comparison{Current: current, Historical: historical, Qualifier: q}, nil
}

// QueryAt runs a single time-shifted query. timestamp takes the forms
// accepted by At: day offset, time.Time, or pre-formatted string.
func QueryAt(ctx context.Context, exec Executor, query string, timestamp any, params map[string]any) (*Result, error) {
	q, err := At(timestamp)
	if err != nil {
		return nil, err
	}
	return queryQualified(ctx, exec, query, q, params)
}

// QueryAtOffset runs a single query against the state of daysAgo days in
// the past.
func QueryAtOffset(ctx context.Context, exec Executor, query string, daysAgo int, params map[string]any) (*Result, error) {
	return queryQualified(ctx, exec, query, DaysAgo(daysAgo), params)
}

func queryQualified(ctx context.Context, exec Executor, query string, q Qualifier, params map[string]any) (*Result, error) {
	shifted := InjectClause(query, q.String())
	table, err := exec.Execute(ctx, shifted, params)
	if err != nil {
		return nil, &QueryError{Query: shifted, Err: err}
	}
	return newResult(table, shifted, q), nil
}
