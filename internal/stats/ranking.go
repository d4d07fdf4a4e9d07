package stats

import (
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/julianstephens/habitkit/internal/models"
)

// Metric selects the value habits are ranked by.
type Metric string

const (
	MetricCompletionRate Metric = "rate"
	MetricStreak         Metric = "streak"
	MetricTotalCheckIns  Metric = "total"
)

// ParseMetric accepts "rate", "streak" or "total".
func ParseMetric(s string) (Metric, error) {
	switch Metric(strings.ToLower(strings.TrimSpace(s))) {
	case "", MetricCompletionRate:
		return MetricCompletionRate, nil
	case MetricStreak:
		return MetricStreak, nil
	case MetricTotalCheckIns:
		return MetricTotalCheckIns, nil
	default:
		return "", fmt.Errorf("invalid ranking metric %q (expected rate, streak or total)", s)
	}
}

// Label is the column title for the metric.
func (m Metric) Label() string {
	switch m {
	case MetricStreak:
		return "Current streak"
	case MetricTotalCheckIns:
		return "Check-in days"
	default:
		return "Completion rate"
	}
}

// RankedHabit pairs a habit with the value it was ranked by.
type RankedHabit struct {
	Habit *models.Habit
	Value float64
}

// TopHabitsByCompletionRate sorts habits by completion rate, highest first.
func (s *Statistics) TopHabitsByCompletionRate(now time.Time) []*models.Habit {
	return habitsOf(s.Rank(MetricCompletionRate, now))
}

// TopHabitsByStreak sorts habits by current streak, highest first.
func (s *Statistics) TopHabitsByStreak(now time.Time) []*models.Habit {
	return habitsOf(s.Rank(MetricStreak, now))
}

// TopHabitsByTotalCheckIns sorts habits by distinct check-in days, highest first.
func (s *Statistics) TopHabitsByTotalCheckIns() []*models.Habit {
	return habitsOf(s.Rank(MetricTotalCheckIns, time.Time{}))
}

// Rank returns a sorted copy of the habits, descending by metric. Equal values
// keep their input order.
func (s *Statistics) Rank(metric Metric, now time.Time) []RankedHabit {
	r := s.Range(now)
	ranked := make([]RankedHabit, len(s.habits))
	for i, h := range s.habits {
		var v float64
		switch metric {
		case MetricStreak:
			v = float64(h.CurrentStreak(s.cal, now))
		case MetricTotalCheckIns:
			v = float64(h.TotalCheckInDays(s.cal))
		default:
			v = h.CompletionRate(s.cal, r, now)
		}
		ranked[i] = RankedHabit{Habit: h, Value: v}
	}

	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].Value > ranked[j].Value
	})
	return ranked
}

// Top returns at most n leading entries and how many were left out.
func Top[T any](ranked []T, n int) ([]T, int) {
	if n < 0 || n >= len(ranked) {
		return ranked, 0
	}
	return ranked[:n], len(ranked) - n
}

func habitsOf(ranked []RankedHabit) []*models.Habit {
	out := make([]*models.Habit, len(ranked))
	for i, r := range ranked {
		out[i] = r.Habit
	}
	return out
}
