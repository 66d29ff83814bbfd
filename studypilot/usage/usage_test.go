package usage

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestStartOfMonth(t *testing.T) {
	loc, err := time.LoadLocation("America/New_York")
	if err != nil {
		t.Skip("timezone database unavailable")
	}

	tests := []struct {
		name string
		in   time.Time
		want time.Time
	}{
		{
			name: "mid month",
			in:   time.Date(2025, time.March, 17, 14, 30, 12, 0, time.UTC),
			want: time.Date(2025, time.March, 1, 0, 0, 0, 0, time.UTC),
		},
		{
			name: "first instant of month",
			in:   time.Date(2025, time.July, 1, 0, 0, 0, 0, time.UTC),
			want: time.Date(2025, time.July, 1, 0, 0, 0, 0, time.UTC),
		},
		{
			name: "last instant of month",
			in:   time.Date(2025, time.February, 28, 23, 59, 59, 0, time.UTC),
			want: time.Date(2025, time.February, 1, 0, 0, 0, 0, time.UTC),
		},
		{
			name: "preserves location",
			in:   time.Date(2025, time.December, 31, 23, 0, 0, 0, loc),
			want: time.Date(2025, time.December, 1, 0, 0, 0, 0, loc),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.True(t, tt.want.Equal(StartOfMonth(tt.in)))
		})
	}
}
