package biztime

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestAddMonths(t *testing.T) {
	tests := []struct {
		name  string
		start time.Time
		n     int
		want  time.Time
	}{
		{
			name:  "mid month",
			start: time.Date(2025, 3, 15, 10, 0, 0, 0, time.UTC),
			n:     1,
			want:  time.Date(2025, 4, 15, 10, 0, 0, 0, time.UTC),
		},
		{
			name:  "january 31 clamps to 28",
			start: time.Date(2025, 1, 31, 0, 0, 0, 0, time.UTC),
			n:     1,
			want:  time.Date(2025, 2, 28, 0, 0, 0, 0, time.UTC),
		},
		{
			name:  "march 31 into april clamps to 28",
			start: time.Date(2025, 3, 31, 0, 0, 0, 0, time.UTC),
			n:     1,
			want:  time.Date(2025, 4, 28, 0, 0, 0, 0, time.UTC),
		},
		{
			name:  "yearly from leap day",
			start: time.Date(2024, 2, 29, 8, 30, 0, 0, time.UTC),
			n:     12,
			want:  time.Date(2025, 2, 28, 8, 30, 0, 0, time.UTC),
		},
		{
			name:  "december rolls the year",
			start: time.Date(2025, 12, 5, 0, 0, 0, 0, time.UTC),
			n:     1,
			want:  time.Date(2026, 1, 5, 0, 0, 0, 0, time.UTC),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, AddMonths(tt.start, tt.n))
		})
	}
}
