// Package sample builds demo habits with a few weeks of history.
package sample

import (
	"math/rand"
	"time"

	"github.com/google/uuid"

	"github.com/julianstephens/habitkit/internal/calendar"
	"github.com/julianstephens/habitkit/internal/models"
)

type pattern struct {
	name       string
	icon       models.Icon
	color      models.Color
	createdAgo int
	window     int
	keep       func(rng *rand.Rand, i int) bool
}

func coinFlip(rng *rand.Rand, _ int) bool { return rng.Intn(2) == 0 }

var patterns = []pattern{
	{"Squats", "figure.strengthtraining.traditional", models.ColorRed, 30, 20, coinFlip},
	{"Cardio or walk", "figure.walk", models.ColorGreen, 25, 15, func(_ *rand.Rand, i int) bool { return i%2 == 0 }},
	{"Water before meals", "drop.fill", models.ColorBlue, 20, 18, func(_ *rand.Rand, i int) bool { return i%3 != 0 }},
	{"Pull-ups", "dumbbell.fill", models.ColorOrange, 15, 10, coinFlip},
}

// Habits returns four demo habits relative to now. Day i of a habit's
// window is i days before today; rng drives the random patterns.
func Habits(cal calendar.Calendar, now time.Time, rng *rand.Rand) []models.Habit {
	habits := make([]models.Habit, 0, len(patterns))
	for _, p := range patterns {
		h := models.Habit{
			ID:        uuid.New().String(),
			Name:      p.name,
			Icon:      p.icon,
			Color:     p.color,
			CreatedAt: cal.AddDays(now, -p.createdAgo),
		}
		for i := 0; i < p.window; i++ {
			if p.keep(rng, i) {
				h.CompletionDates = append(h.CompletionDates, cal.AddDays(now, -i))
			}
		}
		habits = append(habits, h)
	}
	return habits
}
