package calendar

import "time"

// Range is a closed interval [Start, End] of instants.
type Range struct {
	Start time.Time
	End   time.Time
}

// NewRange builds a Range without validating its order.
func NewRange(start, end time.Time) Range {
	return Range{Start: start, End: end}
}

// Contains reports whether the calendar day of t lies within the days of r.
func (c Calendar) Contains(r Range, t time.Time) bool {
	day := c.StartOfDay(t)
	return !day.Before(c.StartOfDay(r.Start)) && !day.After(c.StartOfDay(r.End))
}

// DaysInRange returns the inclusive day count of r, never below zero.
func (c Calendar) DaysInRange(r Range) int {
	return max(0, c.DayDifference(r.Start, r.End)+1)
}
