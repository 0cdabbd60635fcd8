package timetravel

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDaysAgo(t *testing.T) {
	q := DaysAgo(7)

	assert.Equal(t, "AT (TIMESTAMP => DATEADD(DAY, -7, CURRENT_TIMESTAMP()))", q.String())
	assert.Contains(t, q.String(), "DATEADD(DAY, -7,")
}

func TestAtTime(t *testing.T) {
	ts := time.Date(2023, 7, 22, 12, 0, 0, 0, time.UTC)

	q := AtTime(ts)

	assert.Equal(t, "AT (TIMESTAMP => '2023-07-22 12:00:00')", q.String())
	// Deterministic: same input, same clause
	assert.Equal(t, q, AtTime(ts))
	// Sub-second precision is dropped
	assert.Equal(t, q, AtTime(ts.Add(500*time.Millisecond)))
}

func TestAtLiteral(t *testing.T) {
	q := AtLiteral("2023-07-22 12:00:00")

	assert.Equal(t, "AT (TIMESTAMP => '2023-07-22 12:00:00')", q.String())
}

func TestAt(t *testing.T) {
	tests := []struct {
		name      string
		timestamp any
		expected  string
		expectErr bool
	}{
		{
			name:      "int is a day offset",
			timestamp: 7,
			expected:  "AT (TIMESTAMP => DATEADD(DAY, -7, CURRENT_TIMESTAMP()))",
		},
		{
			name:      "int64 is a day offset",
			timestamp: int64(30),
			expected:  "AT (TIMESTAMP => DATEADD(DAY, -30, CURRENT_TIMESTAMP()))",
		},
		{
			name:      "time.Time is formatted",
			timestamp: time.Date(2023, 7, 22, 12, 0, 0, 0, time.UTC),
			expected:  "AT (TIMESTAMP => '2023-07-22 12:00:00')",
		},
		{
			name:      "string passes through verbatim",
			timestamp: "2023-07-22 12:00:00",
			expected:  "AT (TIMESTAMP => '2023-07-22 12:00:00')",
		},
		{
			name:      "float is unsupported",
			timestamp: 7.5,
			expectErr: true,
		},
		{
			name:      "nil is unsupported",
			timestamp: nil,
			expectErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			q, err := At(tt.timestamp)
			if tt.expectErr {
				require.Error(t, err)
				var unsupported *UnsupportedTimestampError
				assert.True(t, errors.As(err, &unsupported))
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.expected, q.String())
		})
	}
}
