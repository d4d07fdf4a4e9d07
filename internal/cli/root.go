// Package cli holds the state shared by every habitkit command.
package cli

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/charmbracelet/huh"

	"github.com/julianstephens/habitkit/internal/backup"
	"github.com/julianstephens/habitkit/internal/calendar"
	"github.com/julianstephens/habitkit/internal/logger"
	"github.com/julianstephens/habitkit/internal/models"
	"github.com/julianstephens/habitkit/internal/storage"
	"github.com/julianstephens/habitkit/internal/tracker"
)

type Context struct {
	Store storage.Provider
	// Timezone overrides the stored timezone setting when set.
	Timezone string
	// Now is the evaluation instant source, time.Now when nil.
	Now func() time.Time
	// Out receives command output, os.Stdout when nil.
	Out io.Writer
	// Confirm asks a yes/no question, an interactive prompt when nil.
	Confirm func(title string) (bool, error)
}

// Clock returns the current evaluation instant.
func (c *Context) Clock() time.Time {
	if c.Now != nil {
		return c.Now()
	}
	return time.Now()
}

// Stdout returns the command output writer.
func (c *Context) Stdout() io.Writer {
	if c.Out != nil {
		return c.Out
	}
	return os.Stdout
}

// Printf writes formatted command output.
func (c *Context) Printf(format string, args ...any) {
	fmt.Fprintf(c.Stdout(), format, args...)
}

// Println writes a line of command output.
func (c *Context) Println(args ...any) {
	fmt.Fprintln(c.Stdout(), args...)
}

// Ask runs Confirm, falling back to a huh confirmation prompt.
func (c *Context) Ask(title string) (bool, error) {
	if c.Confirm != nil {
		return c.Confirm(title)
	}
	ok := false
	err := huh.NewConfirm().
		Title(title).
		Affirmative("Yes").
		Negative("No").
		Value(&ok).
		Run()
	if err != nil {
		return false, err
	}
	return ok, nil
}

// Settings loads the stored settings with defaults applied.
func (c *Context) Settings() (models.Settings, error) {
	settings, err := c.Store.GetSettings()
	if err != nil && !errors.Is(err, storage.ErrNotFound) {
		return models.Settings{}, fmt.Errorf("failed to get settings: %w", err)
	}
	models.ApplyDefaultSettings(&settings)
	if c.Timezone != "" {
		settings.Timezone = c.Timezone
	}
	return settings, nil
}

// Calendar builds the calendar from the settings and the timezone override.
func (c *Context) Calendar() (calendar.Calendar, models.Settings, error) {
	settings, err := c.Settings()
	if err != nil {
		return calendar.Calendar{}, models.Settings{}, err
	}
	cal, err := calendar.FromSettings(settings.Timezone, settings.WeekStart)
	if err != nil {
		return calendar.Calendar{}, models.Settings{}, err
	}
	return cal, settings, nil
}

// Collection loads the habits into a tracker collection.
func (c *Context) Collection(includeArchived bool) (*tracker.Collection, error) {
	habits, err := c.Store.GetAllHabits(includeArchived, false)
	if err != nil {
		return nil, fmt.Errorf("failed to load habits: %w", err)
	}
	return tracker.NewCollection(habits), nil
}

// FindHabit resolves ref as an id, a name or a unique id prefix among live
// and archived habits.
func (c *Context) FindHabit(ref string) (models.Habit, error) {
	if h, err := c.Store.GetHabit(ref); err == nil {
		return h, nil
	}
	if h, err := c.Store.GetHabitByName(ref); err == nil {
		return h, nil
	}

	habits, err := c.Store.GetAllHabits(true, false)
	if err != nil {
		return models.Habit{}, err
	}
	var match *models.Habit
	for i := range habits {
		if strings.HasPrefix(habits[i].ID, ref) {
			if match != nil {
				return models.Habit{}, fmt.Errorf("habit reference %q is ambiguous", ref)
			}
			match = &habits[i]
		}
	}
	if match == nil || ref == "" {
		return models.Habit{}, fmt.Errorf("%w: %s", tracker.ErrHabitNotFound, ref)
	}
	return *match, nil
}

// PerformAutomaticBackup backs up SQLite databases and only logs failures.
func (c *Context) PerformAutomaticBackup() {
	path := c.Store.GetConfigPath()
	if _, err := os.Stat(path); err != nil {
		return
	}
	if _, err := backup.NewManager(path).CreateBackup(); err != nil {
		logger.Warn("Automatic backup failed", "error", err)
	}
}
