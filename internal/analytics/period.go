package analytics

import (
	"math"
	"time"
)

// BusinessZone returns the fixed-offset location the dashboard operates in.
// Booking timestamps are truncated to calendar days in this zone, never UTC.
func BusinessZone(offsetHours int) *time.Location {
	return time.FixedZone("business", offsetHours*3600)
}

// CurrentMonth returns the first and last calendar day of now's month as
// date-only values in loc.
func CurrentMonth(now time.Time, loc *time.Location) (time.Time, time.Time) {
	n := now.In(loc)
	start := time.Date(n.Year(), n.Month(), 1, 0, 0, 0, 0, loc)
	end := time.Date(n.Year(), n.Month()+1, 0, 0, 0, 0, 0, loc)
	return start, end
}

// PreviousPeriod returns the window of the same length in days immediately
// preceding [start, end]. Length is ceil((end-start)/1 day)+1, minimum 1.
func PreviousPeriod(start, end time.Time) (time.Time, time.Time) {
	days := int(math.Ceil(end.Sub(start).Hours()/24)) + 1
	if days < 1 {
		days = 1
	}
	prevStart := start.AddDate(0, 0, -days)
	prevEnd := start.AddDate(0, 0, -1)
	return prevStart, prevEnd
}

// DateKey truncates a timestamp to its calendar date in loc, ISO formatted
func DateKey(t time.Time, loc *time.Location) string {
	return t.In(loc).Format("2006-01-02")
}
