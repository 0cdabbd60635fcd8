package timetravel

import (
	"fmt"
	"time"
)

// timestampLayout is the literal format Snowflake accepts in AT clauses:
// second precision, no timezone.
const timestampLayout = "2006-01-02 15:04:05"

// Qualifier is a Snowflake Time Travel clause, e.g.
// AT (TIMESTAMP => '2023-07-22 12:00:00'). It is built per call and never
// persisted.
type Qualifier string

func (q Qualifier) String() string { return string(q) }

// DaysAgo returns a qualifier for "now minus days". The subtraction is
// evaluated by Snowflake at execution time, so client and server clocks
// never have to agree.
func DaysAgo(days int) Qualifier {
	return Qualifier(fmt.Sprintf("AT (TIMESTAMP => DATEADD(DAY, -%d, CURRENT_TIMESTAMP()))", days))
}

// AtTime returns a qualifier for an absolute point in time. The value is
// formatted to second precision without a timezone; same input always yields
// the same clause.
func AtTime(t time.Time) Qualifier {
	return Qualifier(fmt.Sprintf("AT (TIMESTAMP => '%s')", t.Format(timestampLayout)))
}

// AtLiteral returns a qualifier embedding a pre-formatted timestamp string
// verbatim. The caller is responsible for supplying syntax Snowflake
// accepts; no validation is performed.
func AtLiteral(s string) Qualifier {
	return Qualifier(fmt.Sprintf("AT (TIMESTAMP => '%s')", s))
}

// At builds a qualifier from a dynamically typed timestamp: an integer is a
// relative day offset, a time.Time an absolute point in time, and a string a
// pre-formatted literal. Any other type fails with
// *UnsupportedTimestampError before anything is dispatched.
func At(timestamp any) (Qualifier, error) {
	switch v := timestamp.(type) {
	case int:
		return DaysAgo(v), nil
	case int32:
		return DaysAgo(int(v)), nil
	case int64:
		return DaysAgo(int(v)), nil
	case time.Time:
		return AtTime(v), nil
	case string:
		return AtLiteral(v), nil
	default:
		return "", &UnsupportedTimestampError{Value: timestamp}
	}
}
