// Package stats aggregates habit records over a statistics window.
//
// Every method takes the evaluation instant explicitly and recomputes from the
// habits it was given, so mutations between calls are always observed.
package stats

import (
	"time"

	"github.com/julianstephens/habitkit/internal/calendar"
	"github.com/julianstephens/habitkit/internal/logger"
	"github.com/julianstephens/habitkit/internal/models"
)

// Statistics computes aggregate metrics over a set of habits. The habits are
// read, never modified.
type Statistics struct {
	habits []*models.Habit
	policy RangePolicy
	cal    calendar.Calendar
}

// Summary holds every aggregate metric for one evaluation instant.
type Summary struct {
	Policy                           RangePolicy
	Range                            calendar.Range
	TotalCheckIns                    int
	ActiveHabitsCount                int
	AverageCompletionRate            float64
	CurrentLongestStreak             int
	HistoricalLongestStreak          int
	HabitWithLongestCurrentStreak    *models.Habit
	HabitWithLongestHistoricalStreak *models.Habit
	DaysInRange                      int
	AverageCheckInsPerDay            float64
}

// New returns Statistics over habits for the given policy.
func New(habits []*models.Habit, policy RangePolicy, cal calendar.Calendar) *Statistics {
	logger.Debug("Statistics initialized", "habits", len(habits), "range", string(policy))
	return &Statistics{habits: habits, policy: policy, cal: cal}
}

// Habits returns the habits the statistics are computed over.
func (s *Statistics) Habits() []*models.Habit {
	return s.habits
}

// Policy returns the configured range policy.
func (s *Statistics) Policy() RangePolicy {
	return s.policy
}

// Range resolves the policy window at now.
func (s *Statistics) Range(now time.Time) calendar.Range {
	return s.policy.Resolve(s.cal, now)
}

// TotalCheckIns sums raw completions in range across habits.
func (s *Statistics) TotalCheckIns(now time.Time) int {
	r := s.Range(now)
	total := 0
	for _, h := range s.habits {
		total += len(h.CheckInsInRange(s.cal, r))
	}
	return total
}

// ActiveHabitsCount counts habits completed at least once, regardless of range.
func (s *Statistics) ActiveHabitsCount() int {
	count := 0
	for _, h := range s.habits {
		if h.HasCompletions() {
			count++
		}
	}
	return count
}

// AverageCompletionRate is the mean completion rate, 0 without habits.
func (s *Statistics) AverageCompletionRate(now time.Time) float64 {
	if len(s.habits) == 0 {
		return 0.0
	}
	r := s.Range(now)
	sum := 0.0
	for _, h := range s.habits {
		sum += h.CompletionRate(s.cal, r, now)
	}
	return sum / float64(len(s.habits))
}

// CurrentLongestStreak is the largest current streak across habits.
func (s *Statistics) CurrentLongestStreak(now time.Time) int {
	_, best := s.argmax(func(h *models.Habit) int { return h.CurrentStreak(s.cal, now) })
	return best
}

// HistoricalLongestStreak is the largest longest-streak across habits.
func (s *Statistics) HistoricalLongestStreak() int {
	_, best := s.argmax(func(h *models.Habit) int { return h.LongestStreak(s.cal) })
	return best
}

// HabitWithLongestCurrentStreak returns the first habit holding the largest
// current streak, or nil without habits.
func (s *Statistics) HabitWithLongestCurrentStreak(now time.Time) *models.Habit {
	h, _ := s.argmax(func(h *models.Habit) int { return h.CurrentStreak(s.cal, now) })
	return h
}

// HabitWithLongestHistoricalStreak returns the first habit holding the largest
// longest-streak, or nil without habits.
func (s *Statistics) HabitWithLongestHistoricalStreak() *models.Habit {
	h, _ := s.argmax(func(h *models.Habit) int { return h.LongestStreak(s.cal) })
	return h
}

// DaysInRange is the inclusive day count of the window.
func (s *Statistics) DaysInRange(now time.Time) int {
	return s.cal.DaysInRange(s.Range(now))
}

// AverageCheckInsPerDay divides TotalCheckIns by DaysInRange.
func (s *Statistics) AverageCheckInsPerDay(now time.Time) float64 {
	days := s.DaysInRange(now)
	if days == 0 {
		return 0.0
	}
	return float64(s.TotalCheckIns(now)) / float64(days)
}

// Summarize computes every metric at now.
func (s *Statistics) Summarize(now time.Time) Summary {
	currentHabit, currentBest := s.argmax(func(h *models.Habit) int { return h.CurrentStreak(s.cal, now) })
	historicalHabit, historicalBest := s.argmax(func(h *models.Habit) int { return h.LongestStreak(s.cal) })

	sum := Summary{
		Policy:                           s.policy,
		Range:                            s.Range(now),
		TotalCheckIns:                    s.TotalCheckIns(now),
		ActiveHabitsCount:                s.ActiveHabitsCount(),
		AverageCompletionRate:            s.AverageCompletionRate(now),
		CurrentLongestStreak:             currentBest,
		HistoricalLongestStreak:          historicalBest,
		HabitWithLongestCurrentStreak:    currentHabit,
		HabitWithLongestHistoricalStreak: historicalHabit,
		DaysInRange:                      s.DaysInRange(now),
	}
	if sum.DaysInRange > 0 {
		sum.AverageCheckInsPerDay = float64(sum.TotalCheckIns) / float64(sum.DaysInRange)
	}

	logger.Debug("Statistics summarized",
		"range", string(s.policy),
		"habits", len(s.habits),
		"checkIns", sum.TotalCheckIns,
		"active", sum.ActiveHabitsCount,
		"avgRate", sum.AverageCompletionRate,
	)
	return sum
}

// argmax returns the first habit with the largest key. Ties keep the earlier habit.
func (s *Statistics) argmax(key func(*models.Habit) int) (*models.Habit, int) {
	var best *models.Habit
	bestValue := 0
	for _, h := range s.habits {
		v := key(h)
		if best == nil || v > bestValue {
			best, bestValue = h, v
		}
	}
	return best, bestValue
}
