package settings

import (
	"errors"
	"fmt"
	"strings"

	"github.com/julianstephens/habitkit/internal/calendar"
	"github.com/julianstephens/habitkit/internal/cli"
	"github.com/julianstephens/habitkit/internal/models"
	"github.com/julianstephens/habitkit/internal/stats"
	"github.com/julianstephens/habitkit/internal/storage"
)

type SettingsCmd struct {
	List bool `help:"List current settings."`

	Timezone       *string `help:"IANA timezone used for calendar days, or 'Local'."`
	WeekStart      *string `help:"First day of the week for the 'week' range."`
	DefaultRange   *string `help:"Statistics range used when none is given: all, month or week."`
	RankingLimit   *int    `help:"Number of habits shown in rankings."`
	LogDays        *int    `help:"Number of days shown by 'habit log'."`
	HeatmapColumns *int    `help:"Dots per heatmap row."`
}

func (c *SettingsCmd) Run(ctx *cli.Context) error {
	settings, err := ctx.Store.GetSettings()
	if err != nil && !errors.Is(err, storage.ErrNotFound) {
		return fmt.Errorf("failed to get settings: %w", err)
	}
	models.ApplyDefaultSettings(&settings)

	if c.List {
		ctx.Println("Current Settings:")
		ctx.Printf("  Timezone:        %s\n", settings.Timezone)
		ctx.Printf("  Week Start:      %s\n", settings.WeekStart)
		ctx.Printf("  Default Range:   %s\n", settings.DefaultRange)
		ctx.Printf("  Ranking Limit:   %d\n", settings.RankingLimit)
		ctx.Printf("  Log Days:        %d\n", settings.LogDays)
		ctx.Printf("  Heatmap Columns: %d\n", settings.HeatmapColumns)
		return nil
	}

	updated := false
	if c.Timezone != nil {
		if !calendar.ValidateTimezone(*c.Timezone) {
			return fmt.Errorf("invalid timezone: %s", *c.Timezone)
		}
		settings.Timezone = *c.Timezone
		updated = true
	}
	if c.WeekStart != nil {
		day, err := calendar.ParseWeekday(*c.WeekStart)
		if err != nil {
			return err
		}
		settings.WeekStart = strings.ToLower(day.String())
		updated = true
	}
	if c.DefaultRange != nil {
		policy, err := stats.ParseRangePolicy(*c.DefaultRange)
		if err != nil {
			return err
		}
		settings.DefaultRange = string(policy)
		updated = true
	}
	if c.RankingLimit != nil {
		if *c.RankingLimit < 1 {
			return fmt.Errorf("ranking limit must be at least 1")
		}
		settings.RankingLimit = *c.RankingLimit
		updated = true
	}
	if c.LogDays != nil {
		if *c.LogDays < 1 {
			return fmt.Errorf("log days must be at least 1")
		}
		settings.LogDays = *c.LogDays
		updated = true
	}
	if c.HeatmapColumns != nil {
		if *c.HeatmapColumns < 1 {
			return fmt.Errorf("heatmap columns must be at least 1")
		}
		settings.HeatmapColumns = *c.HeatmapColumns
		updated = true
	}

	if updated {
		if err := ctx.Store.SaveSettings(settings); err != nil {
			return fmt.Errorf("failed to save settings: %w", err)
		}
		ctx.Println("Settings updated successfully.")
	} else {
		ctx.Println("No changes specified. Use --list to view settings or flags to update them.")
	}

	return nil
}
