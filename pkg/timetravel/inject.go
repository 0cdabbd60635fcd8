package timetravel

import "regexp"

// fromClausePattern matches a FROM keyword followed by a (possibly dotted)
// table identifier and trailing whitespace. It covers plain FROM clauses and
// the FROM side of joins; tables introduced by JOIN keywords are not matched.
var fromClausePattern = regexp.MustCompile(`(?i)(from\s+[\w.]+)(\s)`)

// InjectClause inserts clause after every FROM-clause table identifier in
// query, separated by a single space. The FROM keyword, the identifier, and
// the rest of the query are preserved byte for byte.
//
// Every match is qualified identically, including tables in subqueries. If
// the query contains no matching FROM clause the input is returned
// unchanged; no error is reported, and the query would execute without time
// travel.
func InjectClause(query, clause string) string {
	return fromClausePattern.ReplaceAllStringFunc(query, func(m string) string {
		parts := fromClausePattern.FindStringSubmatch(m)
		return parts[1] + " " + clause + parts[2]
	})
}
