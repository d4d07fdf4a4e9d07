// Package tracker owns the in-memory habit collection and is the single
// mutation path for completions and attribute edits.
//
// A Collection is not safe for concurrent use. Callers serialize access, and
// read-only consumers work on Snapshot copies.
package tracker

import (
	"errors"
	"fmt"
	"time"

	"github.com/julianstephens/habitkit/internal/calendar"
	"github.com/julianstephens/habitkit/internal/logger"
	"github.com/julianstephens/habitkit/internal/models"
)

var (
	ErrHabitNotFound  = errors.New("habit not found")
	ErrDuplicateHabit = errors.New("habit already exists")
)

// Collection holds habits in insertion order, indexed by id.
type Collection struct {
	habits []*models.Habit
	index  map[string]int
}

// NewCollection copies habits into a new collection. Later duplicates of an
// id are dropped.
func NewCollection(habits []models.Habit) *Collection {
	c := &Collection{index: make(map[string]int, len(habits))}
	for _, h := range habits {
		if err := c.Add(h); err != nil {
			logger.Warn("Skipping duplicate habit", "id", h.ID, "name", h.Name)
		}
	}
	return c
}

// Len returns the number of habits.
func (c *Collection) Len() int {
	return len(c.habits)
}

// Add appends a copy of h.
func (c *Collection) Add(h models.Habit) error {
	if _, ok := c.index[h.ID]; ok {
		return fmt.Errorf("%w: %s", ErrDuplicateHabit, h.ID)
	}
	clone := h.Clone()
	c.index[h.ID] = len(c.habits)
	c.habits = append(c.habits, &clone)
	return nil
}

// Remove deletes the habit with id.
func (c *Collection) Remove(id string) error {
	i, ok := c.index[id]
	if !ok {
		return fmt.Errorf("%w: %s", ErrHabitNotFound, id)
	}
	c.habits = append(c.habits[:i], c.habits[i+1:]...)
	c.reindex()
	return nil
}

// Get returns a copy of the habit with id.
func (c *Collection) Get(id string) (models.Habit, bool) {
	i, ok := c.index[id]
	if !ok {
		return models.Habit{}, false
	}
	return c.habits[i].Clone(), true
}

// Toggle flips the completion of date's day for the habit with id and returns
// the updated habit.
func (c *Collection) Toggle(cal calendar.Calendar, id string, date time.Time) (models.Habit, error) {
	i, ok := c.index[id]
	if !ok {
		return models.Habit{}, fmt.Errorf("%w: %s", ErrHabitNotFound, id)
	}
	h := c.habits[i]
	done := h.ToggleCompletionOn(cal, date)
	logger.Debug("Toggled completion", "habit", h.Name, "day", cal.DayKey(date), "completed", done)
	return h.Clone(), nil
}

// Update applies edit to the habit with id. The id cannot be changed.
func (c *Collection) Update(id string, edit func(*models.Habit)) (models.Habit, error) {
	i, ok := c.index[id]
	if !ok {
		return models.Habit{}, fmt.Errorf("%w: %s", ErrHabitNotFound, id)
	}
	h := c.habits[i]
	edit(h)
	h.ID = id
	return h.Clone(), nil
}

// Snapshot returns deep copies of every habit for read-only consumers.
func (c *Collection) Snapshot() []*models.Habit {
	out := make([]*models.Habit, len(c.habits))
	for i, h := range c.habits {
		clone := h.Clone()
		out[i] = &clone
	}
	return out
}

func (c *Collection) reindex() {
	c.index = make(map[string]int, len(c.habits))
	for i, h := range c.habits {
		c.index[h.ID] = i
	}
}
