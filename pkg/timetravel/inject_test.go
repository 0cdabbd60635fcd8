package timetravel

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestInjectClause(t *testing.T) {
	clause := "AT (TIMESTAMP => '2023-07-22 12:00:00')"

	tests := []struct {
		name     string
		query    string
		expected string
	}{
		{
			name:     "simple select",
			query:    "select * from T where x=1",
			expected: "select * from T AT (TIMESTAMP => '2023-07-22 12:00:00') where x=1",
		},
		{
			name:     "uppercase FROM preserved",
			query:    "SELECT * FROM ORDERS WHERE id = 1",
			expected: "SELECT * FROM ORDERS AT (TIMESTAMP => '2023-07-22 12:00:00') WHERE id = 1",
		},
		{
			name:     "dotted table name",
			query:    "select * from analytics.public.transactions where 1=1",
			expected: "select * from analytics.public.transactions AT (TIMESTAMP => '2023-07-22 12:00:00') where 1=1",
		},
		{
			name:     "no from clause returns input unchanged",
			query:    "select 1",
			expected: "select 1",
		},
		{
			name:     "subquery qualifies both tables",
			query:    "select * from a where id in (select id from b where x=1)",
			expected: "select * from a AT (TIMESTAMP => '2023-07-22 12:00:00') where id in (select id from b AT (TIMESTAMP => '2023-07-22 12:00:00') where x=1)",
		},
		{
			name:     "join table after JOIN keyword is not qualified",
			query:    "select * from a join b on a.id = b.id",
			expected: "select * from a AT (TIMESTAMP => '2023-07-22 12:00:00') join b on a.id = b.id",
		},
		{
			name:     "newline whitespace around identifier",
			query:    "select *\nfrom\n  transactions\nwhere x = 1",
			expected: "select *\nfrom\n  transactions AT (TIMESTAMP => '2023-07-22 12:00:00')\nwhere x = 1",
		},
		{
			// Known edge: the pattern requires whitespace after the table
			// identifier, so a query ending at the table name passes
			// through unmodified.
			name:     "table at end of query is not matched",
			query:    "select * from T",
			expected: "select * from T",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, InjectClause(tt.query, clause))
		})
	}
}

func TestInjectClauseLeavesRestByteIdentical(t *testing.T) {
	clause := "AT (TIMESTAMP => DATEADD(DAY, -7, CURRENT_TIMESTAMP()))"
	query := "select  x ,\ty from tbl_1 where s = 'odd  spacing'"

	got := InjectClause(query, clause)

	assert.Equal(t, "select  x ,\ty from tbl_1 "+clause+" where s = 'odd  spacing'", got)
}
