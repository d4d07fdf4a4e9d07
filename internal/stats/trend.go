package stats

import (
	"fmt"
	"time"

	"github.com/julianstephens/habitkit/internal/calendar"
	"github.com/julianstephens/habitkit/internal/logger"
	"github.com/julianstephens/habitkit/internal/models"
)

// TrendDataPoint is the number of habits completed on Date.
type TrendDataPoint struct {
	Date  time.Time `json:"date"`
	Count int       `json:"count"`
}

// Trend samples the policy window at the policy's interval.
func (s *Statistics) Trend(now time.Time) ([]TrendDataPoint, error) {
	return SampleTrend(s.habits, s.cal, s.Range(now), s.policy.SampleInterval(), now)
}

// SampleTrend walks from the first day of r to min(r.End, today) in steps of
// interval days and counts the habits completed on each sampled day.
// A step that does not advance aborts with calendar.ErrNonAdvancingStep.
func SampleTrend(habits []*models.Habit, cal calendar.Calendar, r calendar.Range, interval int, now time.Time) ([]TrendDataPoint, error) {
	current := cal.StartOfDay(r.Start)
	end := cal.StartOfDay(r.End)
	if today := cal.StartOfDay(now); today.Before(end) {
		end = today
	}

	points := []TrendDataPoint{}
	for !current.After(end) {
		count := 0
		for _, h := range habits {
			if h.IsCompletedOn(cal, current) {
				count++
			}
		}
		points = append(points, TrendDataPoint{Date: current, Count: count})

		next, err := cal.Step(current, interval)
		if err != nil {
			logger.Error("Trend sampling aborted", "at", cal.DayKey(current), "interval", interval)
			return nil, fmt.Errorf("sampling trend at %s with interval %d: %w", cal.DayKey(current), interval, err)
		}
		current = next
	}

	logger.Debug("Trend sampled", "points", len(points), "interval", interval)
	return points, nil
}
