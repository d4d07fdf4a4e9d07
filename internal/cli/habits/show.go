package habits

import (
	"github.com/julianstephens/habitkit/internal/cli"
	"github.com/julianstephens/habitkit/internal/render"
)

type HabitShowCmd struct {
	Habit   string `arg:"" help:"Habit name or id."`
	Columns int    `help:"Heatmap dots per row (default: heatmap_columns setting)."`
}

func (c *HabitShowCmd) Run(ctx *cli.Context) error {
	cal, settings, err := ctx.Calendar()
	if err != nil {
		return err
	}
	habit, err := ctx.FindHabit(c.Habit)
	if err != nil {
		return err
	}

	columns := c.Columns
	if columns <= 0 {
		columns = settings.HeatmapColumns
	}
	ctx.Println(render.Detail(&habit, cal, ctx.Clock(), columns))
	return nil
}
