package habits

import (
	"fmt"

	"github.com/julianstephens/habitkit/internal/cli"
	"github.com/julianstephens/habitkit/internal/models"
	"github.com/julianstephens/habitkit/internal/tracker"
)

type HabitToggleCmd struct {
	Habit string `arg:"" help:"Habit name or id."`
	Date  string `help:"Day in YYYY-MM-DD format (default: today)."`
}

func (c *HabitToggleCmd) Run(ctx *cli.Context) error {
	cal, _, err := ctx.Calendar()
	if err != nil {
		return err
	}

	habit, err := ctx.FindHabit(c.Habit)
	if err != nil {
		return err
	}

	now := ctx.Clock()
	date := now
	if c.Date != "" {
		day, err := cal.ParseDay(c.Date)
		if err != nil {
			return err
		}
		if cal.DayDifference(now, day) > 0 {
			return fmt.Errorf("cannot mark %s: it is in the future", c.Date)
		}
		date = day
	}

	coll := tracker.NewCollection([]models.Habit{habit})
	updated, err := coll.Toggle(cal, habit.ID, date)
	if err != nil {
		return err
	}
	if err := ctx.Store.UpdateHabit(updated); err != nil {
		return fmt.Errorf("failed to save habit: %w", err)
	}

	if updated.IsCompletedOn(cal, date) {
		ctx.Printf("Marked %q for %s\n", updated.Name, cal.DayKey(date))
	} else {
		ctx.Printf("Unmarked %q for %s\n", updated.Name, cal.DayKey(date))
	}
	return nil
}
