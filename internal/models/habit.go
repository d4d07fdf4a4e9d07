package models

import (
	"sort"
	"time"

	"github.com/julianstephens/habitkit/internal/calendar"
)

// Habit represents a recurring practice and its completion history.
//
// CompletionDates is an unordered multiset: several entries on one calendar day
// count once for day-based metrics and individually for event counts.
type Habit struct {
	ID              string      `json:"id"`
	Name            string      `json:"name"`
	Icon            Icon        `json:"icon"`
	Color           Color       `json:"color"`
	CreatedAt       time.Time   `json:"created_at"`
	CompletionDates []time.Time `json:"completion_dates"`
	TargetCount     *int        `json:"target_count,omitempty"` // reserved, not used by statistics
	ArchivedAt      *time.Time  `json:"archived_at,omitempty"`
	DeletedAt       *time.Time  `json:"deleted_at,omitempty"`
}

// Clone returns a deep copy of h.
func (h *Habit) Clone() Habit {
	c := *h
	c.CompletionDates = append([]time.Time(nil), h.CompletionDates...)
	if h.TargetCount != nil {
		v := *h.TargetCount
		c.TargetCount = &v
	}
	if h.ArchivedAt != nil {
		v := *h.ArchivedAt
		c.ArchivedAt = &v
	}
	if h.DeletedAt != nil {
		v := *h.DeletedAt
		c.DeletedAt = &v
	}
	return c
}

// HasCompletions reports whether the habit was ever completed.
func (h *Habit) HasCompletions() bool {
	return len(h.CompletionDates) > 0
}

// IsCompletedOn reports whether any completion falls on date's calendar day.
func (h *Habit) IsCompletedOn(cal calendar.Calendar, date time.Time) bool {
	return h.indexOnDay(cal, date) >= 0
}

// ToggleCompletionOn removes the first completion on date's day if one exists,
// otherwise appends date. It returns whether the day is completed afterwards.
func (h *Habit) ToggleCompletionOn(cal calendar.Calendar, date time.Time) bool {
	if i := h.indexOnDay(cal, date); i >= 0 {
		h.CompletionDates = append(h.CompletionDates[:i], h.CompletionDates[i+1:]...)
		return h.IsCompletedOn(cal, date)
	}
	h.CompletionDates = append(h.CompletionDates, date)
	return true
}

// CompletionCountOn returns the number of raw completions on date's day.
func (h *Habit) CompletionCountOn(cal calendar.Calendar, date time.Time) int {
	day := cal.DayNumber(date)
	count := 0
	for _, d := range h.CompletionDates {
		if cal.DayNumber(d) == day {
			count++
		}
	}
	return count
}

// CurrentStreak counts consecutive completed days walking back from today.
// It is zero when today is not completed.
func (h *Habit) CurrentStreak(cal calendar.Calendar, now time.Time) int {
	days := h.completedDays(cal)
	anchor := cal.DayNumber(now)

	streak := 0
	for days[anchor-streak] {
		streak++
	}
	return streak
}

// LongestStreak returns the longest run of consecutive completed days.
func (h *Habit) LongestStreak(cal calendar.Calendar) int {
	sorted := h.sortedDays(cal)
	if len(sorted) == 0 {
		return 0
	}

	longest, run := 1, 1
	for i := 1; i < len(sorted); i++ {
		if sorted[i]-sorted[i-1] == 1 {
			run++
			longest = max(longest, run)
		} else {
			run = 1
		}
	}
	return longest
}

// CompletionRate returns the fraction of days in r that were completed.
// The range is clamped to [creation day, today]; an empty window yields 0.
func (h *Habit) CompletionRate(cal calendar.Calendar, r calendar.Range, now time.Time) float64 {
	lower := max(cal.DayNumber(r.Start), cal.DayNumber(h.CreatedAt))
	upper := min(cal.DayNumber(r.End), cal.DayNumber(now))
	if lower > upper {
		return 0.0
	}

	completed := 0
	for day := range h.completedDays(cal) {
		if day >= lower && day <= upper {
			completed++
		}
	}
	return float64(completed) / float64(upper-lower+1)
}

// CheckInsInRange returns the raw completions whose day falls within r.
func (h *Habit) CheckInsInRange(cal calendar.Calendar, r calendar.Range) []time.Time {
	lower, upper := cal.DayNumber(r.Start), cal.DayNumber(r.End)
	var out []time.Time
	for _, d := range h.CompletionDates {
		if day := cal.DayNumber(d); day >= lower && day <= upper {
			out = append(out, d)
		}
	}
	return out
}

// TotalCheckInDays returns the number of distinct completed days.
func (h *Habit) TotalCheckInDays(cal calendar.Calendar) int {
	return len(h.completedDays(cal))
}

// DaysSinceCreation returns whole calendar days since creation, at least 0.
func (h *Habit) DaysSinceCreation(cal calendar.Calendar, now time.Time) int {
	return max(0, cal.DayDifference(h.CreatedAt, now))
}

// Normalize drops repeated completions on the same day, keeping the first.
// It returns the number of entries removed.
func (h *Habit) Normalize(cal calendar.Calendar) int {
	seen := make(map[int]bool, len(h.CompletionDates))
	kept := h.CompletionDates[:0]
	for _, d := range h.CompletionDates {
		day := cal.DayNumber(d)
		if seen[day] {
			continue
		}
		seen[day] = true
		kept = append(kept, d)
	}
	removed := len(h.CompletionDates) - len(kept)
	h.CompletionDates = kept
	return removed
}

func (h *Habit) indexOnDay(cal calendar.Calendar, date time.Time) int {
	day := cal.DayNumber(date)
	for i, d := range h.CompletionDates {
		if cal.DayNumber(d) == day {
			return i
		}
	}
	return -1
}

// completedDays builds a day-number set from the completion list. It is
// rebuilt on every call so in-place mutation is always observed.
func (h *Habit) completedDays(cal calendar.Calendar) map[int]bool {
	days := make(map[int]bool, len(h.CompletionDates))
	for _, d := range h.CompletionDates {
		days[cal.DayNumber(d)] = true
	}
	return days
}

func (h *Habit) sortedDays(cal calendar.Calendar) []int {
	set := h.completedDays(cal)
	days := make([]int, 0, len(set))
	for d := range set {
		days = append(days, d)
	}
	sort.Ints(days)
	return days
}
