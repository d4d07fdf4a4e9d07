package habits

import (
	"fmt"
	"strings"

	"github.com/julianstephens/habitkit/internal/cli"
	"github.com/julianstephens/habitkit/internal/models"
	"github.com/julianstephens/habitkit/internal/tracker"
)

type HabitEditCmd struct {
	Habit       string  `arg:"" help:"Habit name or id."`
	Name        *string `help:"New name."`
	Icon        *string `help:"New icon tag."`
	Color       *string `help:"New color."`
	Target      *int    `help:"New daily target count."`
	ClearTarget bool    `help:"Remove the daily target."`
}

func (c *HabitEditCmd) Run(ctx *cli.Context) error {
	habit, err := ctx.FindHabit(c.Habit)
	if err != nil {
		return err
	}

	var color models.Color
	if c.Color != nil {
		if color, err = models.ParseColor(*c.Color); err != nil {
			return err
		}
	}
	if c.Name != nil {
		name := strings.TrimSpace(*c.Name)
		if name == "" {
			return fmt.Errorf("habit name cannot be empty")
		}
		if other, err := ctx.Store.GetHabitByName(name); err == nil && other.ID != habit.ID {
			return fmt.Errorf("%w: %q", tracker.ErrDuplicateHabit, name)
		}
	}
	if c.Target != nil && *c.Target < 1 {
		return fmt.Errorf("target must be at least 1")
	}

	coll := tracker.NewCollection([]models.Habit{habit})
	updated, err := coll.Update(habit.ID, func(h *models.Habit) {
		if c.Name != nil {
			h.Name = strings.TrimSpace(*c.Name)
		}
		if c.Icon != nil {
			h.Icon = models.Icon(*c.Icon).OrDefault()
		}
		if c.Color != nil {
			h.Color = color
		}
		if c.Target != nil {
			h.TargetCount = c.Target
		}
		if c.ClearTarget {
			h.TargetCount = nil
		}
	})
	if err != nil {
		return err
	}

	if err := ctx.Store.UpdateHabit(updated); err != nil {
		return fmt.Errorf("failed to update habit: %w", err)
	}
	ctx.Printf("Updated habit: %s\n", updated.Name)
	return nil
}
