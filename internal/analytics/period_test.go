package analytics

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCurrentMonth(t *testing.T) {
	loc := BusinessZone(7)

	tests := []struct {
		name      string
		now       time.Time
		wantStart string
		wantEnd   string
	}{
		{
			name:      "mid month",
			now:       time.Date(2024, 1, 15, 10, 0, 0, 0, loc),
			wantStart: "2024-01-01",
			wantEnd:   "2024-01-31",
		},
		{
			name:      "february leap year",
			now:       time.Date(2024, 2, 2, 0, 0, 0, 0, loc),
			wantStart: "2024-02-01",
			wantEnd:   "2024-02-29",
		},
		{
			name: "utc time close to midnight rolls into next business day",
			// 2024-03-31 18:00 UTC is already 2024-04-01 01:00 in UTC+7
			now:       time.Date(2024, 3, 31, 18, 0, 0, 0, time.UTC),
			wantStart: "2024-04-01",
			wantEnd:   "2024-04-30",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			start, end := CurrentMonth(tt.now, loc)
			assert.Equal(t, tt.wantStart, start.Format("2006-01-02"))
			assert.Equal(t, tt.wantEnd, end.Format("2006-01-02"))
			assert.Equal(t, loc, start.Location())
		})
	}
}

func TestPreviousPeriod(t *testing.T) {
	loc := BusinessZone(7)
	day := func(s string) time.Time {
		d, err := time.ParseInLocation("2006-01-02", s, loc)
		require.NoError(t, err)
		return d
	}

	tests := []struct {
		name      string
		start     string
		end       string
		wantStart string
		wantEnd   string
	}{
		{
			name:      "full january maps onto full december",
			start:     "2024-01-01",
			end:       "2024-01-31",
			wantStart: "2023-12-01",
			wantEnd:   "2023-12-31",
		},
		{
			name:      "single day maps onto the day before",
			start:     "2024-06-15",
			end:       "2024-06-15",
			wantStart: "2024-06-14",
			wantEnd:   "2024-06-14",
		},
		{
			name:      "one week maps onto the preceding week",
			start:     "2024-03-08",
			end:       "2024-03-14",
			wantStart: "2024-03-01",
			wantEnd:   "2024-03-07",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			prevStart, prevEnd := PreviousPeriod(day(tt.start), day(tt.end))
			assert.Equal(t, tt.wantStart, prevStart.Format("2006-01-02"))
			assert.Equal(t, tt.wantEnd, prevEnd.Format("2006-01-02"))
		})
	}
}

func TestDateKeyUsesBusinessZone(t *testing.T) {
	loc := BusinessZone(7)

	// 20:00 UTC is 03:00 the next day in UTC+7; truncating in UTC would
	// silently shift the group key back a day
	ts := time.Date(2024, 1, 5, 20, 0, 0, 0, time.UTC)
	assert.Equal(t, "2024-01-06", DateKey(ts, loc))

	assert.Equal(t, "2024-01-05", DateKey(ts, time.UTC))
}
