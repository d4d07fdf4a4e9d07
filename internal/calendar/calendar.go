// Package calendar implements calendar-day arithmetic in a fixed location.
//
// A day is a calendar unit, not 24 hours: every step goes through time.Date so
// month lengths and daylight-saving transitions are handled by the location.
package calendar

import (
	"errors"
	"time"

	"github.com/julianstephens/habitkit/internal/constants"
)

// ErrNonAdvancingStep is returned when a day step fails to move forward.
var ErrNonAdvancingStep = errors.New("calendar step did not advance")

// Calendar evaluates instants in a single location with a configured week start.
type Calendar struct {
	loc       *time.Location
	weekStart time.Weekday
}

// New returns a Calendar for loc. A nil loc means time.Local.
func New(loc *time.Location, weekStart time.Weekday) Calendar {
	if loc == nil {
		loc = time.Local
	}
	return Calendar{loc: loc, weekStart: weekStart}
}

// Location returns the evaluation location.
func (c Calendar) Location() *time.Location {
	if c.loc == nil {
		return time.Local
	}
	return c.loc
}

// WeekStart returns the first day of the week.
func (c Calendar) WeekStart() time.Weekday {
	return c.weekStart
}

// StartOfDay truncates t to midnight in the calendar's location.
func (c Calendar) StartOfDay(t time.Time) time.Time {
	t = t.In(c.Location())
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, c.Location())
}

// SameDay reports whether a and b fall on the same calendar day.
func (c Calendar) SameDay(a, b time.Time) bool {
	return c.StartOfDay(a).Equal(c.StartOfDay(b))
}

// AddDays moves t by n calendar days and returns the start of that day.
func (c Calendar) AddDays(t time.Time, n int) time.Time {
	t = t.In(c.Location())
	return time.Date(t.Year(), t.Month(), t.Day()+n, 0, 0, 0, 0, c.Location())
}

// DayNumber returns the civil day number of t (days since 1970-01-01) in the
// calendar's location. Consecutive calendar days have consecutive numbers.
func (c Calendar) DayNumber(t time.Time) int {
	t = t.In(c.Location())
	// Civil dates in UTC have no DST, so every day is exactly 86400 seconds.
	u := time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
	return int(u.Unix() / 86400)
}

// DayDifference returns the number of calendar days from a to b.
// It is negative when b is on an earlier day than a.
func (c Calendar) DayDifference(a, b time.Time) int {
	return c.DayNumber(b) - c.DayNumber(a)
}

// DaysBetweenInclusive returns every day from a to b inclusive, ascending.
// The result is empty when a falls on a later day than b.
func (c Calendar) DaysBetweenInclusive(a, b time.Time) []time.Time {
	n := c.DayDifference(a, b)
	if n < 0 {
		return []time.Time{}
	}
	start := c.StartOfDay(a)
	days := make([]time.Time, 0, n+1)
	for i := 0; i <= n; i++ {
		days = append(days, c.AddDays(start, i))
	}
	return days
}

// LastNDays returns the n days ending at and including ref, ascending.
func (c Calendar) LastNDays(n int, ref time.Time) []time.Time {
	if n <= 0 {
		return []time.Time{}
	}
	return c.DaysBetweenInclusive(c.AddDays(ref, -(n - 1)), ref)
}

// DatesToToday returns every day from from through now. Empty if from is after now.
func (c Calendar) DatesToToday(from, now time.Time) []time.Time {
	return c.DaysBetweenInclusive(from, now)
}

// StartOfMonth returns the first day of t's month.
func (c Calendar) StartOfMonth(t time.Time) time.Time {
	t = t.In(c.Location())
	return time.Date(t.Year(), t.Month(), 1, 0, 0, 0, 0, c.Location())
}

// DatesInMonth returns every day of t's month.
func (c Calendar) DatesInMonth(t time.Time) []time.Time {
	first := c.StartOfMonth(t)
	last := c.AddDays(first.AddDate(0, 1, 0), -1)
	return c.DaysBetweenInclusive(first, last)
}

// StartOfWeek returns the most recent week-start day on or before t.
func (c Calendar) StartOfWeek(t time.Time) time.Time {
	day := c.StartOfDay(t)
	offset := (int(day.Weekday()) - int(c.weekStart) + 7) % 7
	return c.AddDays(day, -offset)
}

// Epoch returns January 1st of the fixed epoch year.
func (c Calendar) Epoch() time.Time {
	return time.Date(constants.EpochYear, time.January, 1, 0, 0, 0, 0, c.Location())
}

// DayKey formats the calendar day of t as YYYY-MM-DD.
func (c Calendar) DayKey(t time.Time) string {
	return t.In(c.Location()).Format(constants.DateFormat)
}

// Step advances t by interval days, failing loudly if the result is not later than t.
func (c Calendar) Step(t time.Time, interval int) (time.Time, error) {
	next := c.AddDays(t, interval)
	if !next.After(t) {
		return time.Time{}, ErrNonAdvancingStep
	}
	return next, nil
}
