package timetravel

import "fmt"

// maxErrQueryLen caps how much SQL appears in error messages. The full text
// stays available on QueryError.Query.
const maxErrQueryLen = 120

// UnsupportedTimestampError is returned when At is given a timestamp of an
// unrecognized type.
type UnsupportedTimestampError struct {
	Value any
}

func (e *UnsupportedTimestampError) Error() string {
	return fmt.Sprintf("unsupported timestamp type %T (want int days ago, time.Time, or a pre-formatted string)", e.Value)
}

// QueryError wraps an executor failure with the SQL that caused it.
// Unwrap yields the executor's error unmodified.
type QueryError struct {
	Query string
	Err   error
}

func (e *QueryError) Error() string {
	q := e.Query
	if len(q) > maxErrQueryLen {
		q = q[:maxErrQueryLen] + "..."
	}
	return fmt.Sprintf("query %q: %v", q, e.Err)
}

func (e *QueryError) Unwrap() error { return e.Err }
