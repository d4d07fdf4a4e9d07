package sample

import (
	"math/rand"
	"testing"
	"time"

	"github.com/julianstephens/habitkit/internal/calendar"
)

var (
	utc = calendar.New(time.UTC, time.Monday)
	now = time.Date(2024, 3, 15, 18, 30, 0, 0, time.UTC)
)

func TestHabitsShape(t *testing.T) {
	habits := Habits(utc, now, rand.New(rand.NewSource(1)))
	if len(habits) != 4 {
		t.Fatalf("got %d habits, want 4", len(habits))
	}

	wantAgo := []int{30, 25, 20, 15}
	for i, h := range habits {
		if h.ID == "" || h.Name == "" {
			t.Errorf("habit %d missing id or name: %+v", i, h)
		}
		if got := h.DaysSinceCreation(utc, now); got != wantAgo[i] {
			t.Errorf("%s created %d days ago, want %d", h.Name, got, wantAgo[i])
		}
		for _, d := range h.CompletionDates {
			if d.After(now) || d.Before(h.CreatedAt) {
				t.Errorf("%s has completion %v outside its lifetime", h.Name, d)
			}
		}
	}
}

func TestDeterministicPatterns(t *testing.T) {
	habits := Habits(utc, now, rand.New(rand.NewSource(1)))

	cardio := habits[1]
	// Even offsets 0..14.
	if got := len(cardio.CompletionDates); got != 8 {
		t.Errorf("cardio completions = %d, want 8", got)
	}
	if got := cardio.CurrentStreak(utc, now); got != 1 {
		t.Errorf("cardio current streak = %d, want 1", got)
	}

	water := habits[2]
	// Offsets 0..17 skipping multiples of 3.
	if got := len(water.CompletionDates); got != 12 {
		t.Errorf("water completions = %d, want 12", got)
	}
	if water.IsCompletedOn(utc, now) {
		t.Error("water should skip today")
	}
	if got := water.CurrentStreak(utc, now); got != 0 {
		t.Errorf("water current streak = %d, want 0 after skipping today", got)
	}
	if got := water.LongestStreak(utc); got != 2 {
		t.Errorf("water longest streak = %d, want 2", got)
	}
}

func TestSeedIsReproducible(t *testing.T) {
	a := Habits(utc, now, rand.New(rand.NewSource(42)))
	b := Habits(utc, now, rand.New(rand.NewSource(42)))

	for i := range a {
		if len(a[i].CompletionDates) != len(b[i].CompletionDates) {
			t.Fatalf("%s differs between runs with the same seed", a[i].Name)
		}
		for j := range a[i].CompletionDates {
			if !a[i].CompletionDates[j].Equal(b[i].CompletionDates[j]) {
				t.Fatalf("%s differs between runs with the same seed", a[i].Name)
			}
		}
	}
}
