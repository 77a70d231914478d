package domain

import (
	"math"
	"time"
)

const day = 24 * time.Hour

// StartOfDay truncates t to midnight in t's location.
func StartOfDay(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, t.Location())
}

// DayDiff returns ceil((due - midnight(now)) / 1 day). Negative means overdue.
func DayDiff(due, now time.Time) int {
	today := StartOfDay(now)
	return int(math.Ceil(due.Sub(today).Hours() / 24))
}

// DaysSince returns the whole days elapsed between t and now.
// A zero t counts as never accessed and yields a large value.
func DaysSince(t, now time.Time) int {
	if t.IsZero() {
		return math.MaxInt32
	}
	d := now.Sub(t)
	if d < 0 {
		return 0
	}
	return int(d / day)
}

// DaysAgo returns now shifted back by n days.
func DaysAgo(now time.Time, n int) time.Time {
	return now.AddDate(0, 0, -n)
}
