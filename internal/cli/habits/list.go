package habits

import (
	"fmt"

	"github.com/julianstephens/habitkit/internal/cli"
	"github.com/julianstephens/habitkit/internal/render"
)

type HabitListCmd struct {
	Archived bool `help:"Include archived habits."`
	Deleted  bool `help:"Include deleted habits."`
	All      bool `help:"Include archived and deleted habits."`
}

func (c *HabitListCmd) Run(ctx *cli.Context) error {
	cal, _, err := ctx.Calendar()
	if err != nil {
		return err
	}

	habits, err := ctx.Store.GetAllHabits(c.Archived || c.All, c.Deleted || c.All)
	if err != nil {
		return fmt.Errorf("failed to load habits: %w", err)
	}

	ctx.Println(render.HabitList(habits, cal, ctx.Clock()))
	return nil
}
