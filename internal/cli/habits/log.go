package habits

import (
	"github.com/julianstephens/habitkit/internal/cli"
	"github.com/julianstephens/habitkit/internal/models"
	"github.com/julianstephens/habitkit/internal/render"
)

type HabitLogCmd struct {
	Days  int    `help:"Number of days to show (default: log_days setting)."`
	Habit string `help:"Show the log for one habit only."`
}

func (c *HabitLogCmd) Run(ctx *cli.Context) error {
	cal, settings, err := ctx.Calendar()
	if err != nil {
		return err
	}

	days := c.Days
	if days <= 0 {
		days = settings.LogDays
	}

	var habits []*models.Habit
	if c.Habit != "" {
		h, err := ctx.FindHabit(c.Habit)
		if err != nil {
			return err
		}
		habits = []*models.Habit{&h}
	} else {
		coll, err := ctx.Collection(false)
		if err != nil {
			return err
		}
		habits = coll.Snapshot()
	}

	if len(habits) == 0 {
		ctx.Println("No habits found.")
		return nil
	}
	ctx.Println(render.LogGrid(habits, cal, ctx.Clock(), days))
	return nil
}
