package habits

import (
	"fmt"

	"github.com/julianstephens/habitkit/internal/cli"
	"github.com/julianstephens/habitkit/internal/logger"
	"github.com/julianstephens/habitkit/internal/tracker"
)

type HabitArchiveCmd struct {
	Habit string `arg:"" help:"Habit name or id."`
}

func (c *HabitArchiveCmd) Run(ctx *cli.Context) error {
	habit, err := ctx.FindHabit(c.Habit)
	if err != nil {
		return err
	}
	if err := ctx.Store.ArchiveHabit(habit.ID); err != nil {
		return fmt.Errorf("failed to archive habit: %w", err)
	}
	ctx.Printf("Archived habit: %s\n", habit.Name)
	return nil
}

type HabitUnarchiveCmd struct {
	Habit string `arg:"" help:"Habit name or id."`
}

func (c *HabitUnarchiveCmd) Run(ctx *cli.Context) error {
	habit, err := ctx.FindHabit(c.Habit)
	if err != nil {
		return err
	}
	if err := ctx.Store.UnarchiveHabit(habit.ID); err != nil {
		return fmt.Errorf("failed to unarchive habit: %w", err)
	}
	ctx.Printf("Unarchived habit: %s\n", habit.Name)
	return nil
}

type HabitDeleteCmd struct {
	Habit string `arg:"" help:"Habit name or id."`
	Yes   bool   `short:"y" help:"Skip the confirmation prompt."`
}

func (c *HabitDeleteCmd) Run(ctx *cli.Context) error {
	habit, err := ctx.FindHabit(c.Habit)
	if err != nil {
		return err
	}

	if !c.Yes {
		ok, err := ctx.Ask(fmt.Sprintf("Delete habit %q?", habit.Name))
		if err != nil {
			return err
		}
		if !ok {
			ctx.Println("Cancelled.")
			return nil
		}
	}

	if err := ctx.Store.DeleteHabit(habit.ID); err != nil {
		return fmt.Errorf("failed to delete habit: %w", err)
	}
	logger.Info("Habit deleted", "id", habit.ID)
	ctx.Printf("Deleted habit: %s (restore with 'habitkit habit restore %s')\n", habit.Name, habit.ID)
	return nil
}

type HabitRestoreCmd struct {
	Habit string `arg:"" help:"Habit name or id of a deleted habit."`
}

func (c *HabitRestoreCmd) Run(ctx *cli.Context) error {
	habits, err := ctx.Store.GetAllHabits(true, true)
	if err != nil {
		return err
	}
	for _, h := range habits {
		if h.DeletedAt == nil || (h.ID != c.Habit && h.Name != c.Habit) {
			continue
		}
		if err := ctx.Store.RestoreHabit(h.ID); err != nil {
			return fmt.Errorf("failed to restore habit: %w", err)
		}
		ctx.Printf("Restored habit: %s\n", h.Name)
		return nil
	}
	return fmt.Errorf("%w: no deleted habit %q", tracker.ErrHabitNotFound, c.Habit)
}
