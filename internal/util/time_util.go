package util

import (
	"time"
)

const layout = "2006-01-02"

func NewDate(year, month, day int) time.Time {
	return time.Date(year, time.Month(month), day, 0, 0, 0, 0, time.UTC)
}

// StripTime truncates a timestamp to its calendar day in UTC. The engine
// works at day granularity; time-of-day on transactions and prices is
// irrelevant.
func StripTime(t time.Time) time.Time {
	t = t.UTC()
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

func DateLte(t1, t2 time.Time) bool {
	return t1.Before(t2) || t1.Format(layout) == t2.Format(layout)
}

// DaysBetween returns whole calendar days from a to b, negative when b is
// before a.
func DaysBetween(a, b time.Time) int {
	return int(StripTime(b).Sub(StripTime(a)).Hours() / 24)
}
