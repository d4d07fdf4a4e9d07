package insights

import (
	"fmt"

	"github.com/julianstephens/habitkit/internal/calendar"
	"github.com/julianstephens/habitkit/internal/cli"
	"github.com/julianstephens/habitkit/internal/models"
	"github.com/julianstephens/habitkit/internal/render"
	"github.com/julianstephens/habitkit/internal/stats"
)

type StatsCmd struct {
	Summary StatsSummaryCmd `cmd:"" default:"withargs" help:"Show aggregate statistics (default)."`
	Rank    StatsRankCmd    `cmd:"" help:"Rank habits by a metric."`
	Trend   StatsTrendCmd   `cmd:"" help:"Show how many habits were completed per sampled day."`
}

// RangeFlag selects the statistics window. Empty uses the default_range setting.
type RangeFlag struct {
	Range           string `short:"r" help:"Statistics range: all, month or week (default: default_range setting)."`
	IncludeArchived bool   `help:"Include archived habits."`
}

// load builds the statistics for the selected range over the live habits.
func (f RangeFlag) load(ctx *cli.Context) (*stats.Statistics, calendar.Calendar, models.Settings, error) {
	cal, settings, err := ctx.Calendar()
	if err != nil {
		return nil, calendar.Calendar{}, models.Settings{}, err
	}

	raw := f.Range
	if raw == "" {
		raw = settings.DefaultRange
	}
	policy, err := stats.ParseRangePolicy(raw)
	if err != nil {
		return nil, calendar.Calendar{}, models.Settings{}, err
	}

	coll, err := ctx.Collection(f.IncludeArchived)
	if err != nil {
		return nil, calendar.Calendar{}, models.Settings{}, err
	}
	return stats.New(coll.Snapshot(), policy, cal), cal, settings, nil
}

type StatsSummaryCmd struct {
	RangeFlag
}

func (c *StatsSummaryCmd) Run(ctx *cli.Context) error {
	s, cal, _, err := c.load(ctx)
	if err != nil {
		return err
	}
	if len(s.Habits()) == 0 {
		ctx.Println("No habits found. Add one with 'habitkit habit add'.")
		return nil
	}
	ctx.Println(render.Summary(s.Summarize(ctx.Clock()), cal))
	return nil
}

type StatsRankCmd struct {
	RangeFlag
	By  string `help:"Ranking metric: rate, streak or total." default:"rate" enum:"rate,streak,total"`
	Top int    `short:"n" help:"Number of habits to show (default: ranking_limit setting, negative for all)."`
}

func (c *StatsRankCmd) Run(ctx *cli.Context) error {
	metric, err := stats.ParseMetric(c.By)
	if err != nil {
		return err
	}
	s, _, settings, err := c.load(ctx)
	if err != nil {
		return err
	}

	limit := c.Top
	if limit == 0 {
		limit = settings.RankingLimit
	}
	ctx.Println(render.Ranking(s.Rank(metric, ctx.Clock()), metric, limit))
	return nil
}

type StatsTrendCmd struct {
	RangeFlag
}

func (c *StatsTrendCmd) Run(ctx *cli.Context) error {
	s, _, _, err := c.load(ctx)
	if err != nil {
		return err
	}
	points, err := s.Trend(ctx.Clock())
	if err != nil {
		return fmt.Errorf("failed to sample trend: %w", err)
	}
	ctx.Println(render.Trend(points, s.Policy()))
	return nil
}
