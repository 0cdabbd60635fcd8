// Package timetravel rewrites SQL queries to read historical table state
// and compares the result against the live data.
//
// Snowflake's Time Travel feature lets a query read a table as of a past
// point in time by attaching an AT (TIMESTAMP => ...) clause to the table
// reference. This package builds those clauses (Qualifier), injects them
// into existing query text (InjectClause), and runs current-vs-historical
// comparisons through a caller-supplied Executor (Compare).
//
// The query rewrite is a plain text transform: it locates FROM clauses by
// pattern and appends the qualifier after the table identifier. It does not
// parse SQL, so a FROM inside a string literal or comment is rewritten too.
// Queries with no recognizable FROM clause pass through unchanged.
package timetravel
