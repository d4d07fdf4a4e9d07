package models

import (
	"fmt"

	"github.com/julianstephens/habitkit/internal/constants"
)

// MapToSettings converts a map of key-value pairs to a Settings struct.
func MapToSettings(data map[string]string) (Settings, error) {
	settings := Settings{}

	for key, value := range data {
		switch key {
		case constants.SettingTimezone:
			settings.Timezone = value
		case constants.SettingWeekStart:
			settings.WeekStart = value
		case constants.SettingDefaultRange:
			settings.DefaultRange = value
		case constants.SettingRankingLimit:
			if _, err := fmt.Sscanf(value, "%d", &settings.RankingLimit); err != nil {
				return Settings{}, fmt.Errorf("parsing ranking_limit: %w", err)
			}
		case constants.SettingLogDays:
			if _, err := fmt.Sscanf(value, "%d", &settings.LogDays); err != nil {
				return Settings{}, fmt.Errorf("parsing log_days: %w", err)
			}
		case constants.SettingHeatmapColumns:
			if _, err := fmt.Sscanf(value, "%d", &settings.HeatmapColumns); err != nil {
				return Settings{}, fmt.Errorf("parsing heatmap_columns: %w", err)
			}
		}
	}
	return settings, nil
}

// SettingsToMap converts a Settings struct to a map of key-value pairs.
func SettingsToMap(settings Settings) map[string]string {
	return map[string]string{
		constants.SettingTimezone:       settings.Timezone,
		constants.SettingWeekStart:      settings.WeekStart,
		constants.SettingDefaultRange:   settings.DefaultRange,
		constants.SettingRankingLimit:   fmt.Sprintf("%d", settings.RankingLimit),
		constants.SettingLogDays:        fmt.Sprintf("%d", settings.LogDays),
		constants.SettingHeatmapColumns: fmt.Sprintf("%d", settings.HeatmapColumns),
	}
}

// ApplyDefaultSettings applies default values to missing settings.
func ApplyDefaultSettings(settings *Settings) {
	if settings.Timezone == "" {
		settings.Timezone = constants.DefaultTimezone
	}
	if settings.WeekStart == "" {
		settings.WeekStart = constants.DefaultWeekStart
	}
	if settings.DefaultRange == "" {
		settings.DefaultRange = constants.DefaultRange
	}
	if settings.RankingLimit <= 0 {
		settings.RankingLimit = constants.DefaultRankingLimit
	}
	if settings.LogDays <= 0 {
		settings.LogDays = constants.DefaultLogDays
	}
	if settings.HeatmapColumns <= 0 {
		settings.HeatmapColumns = constants.DefaultHeatmapColumns
	}
}

// DefaultSettings returns a Settings value with every default applied.
func DefaultSettings() Settings {
	var s Settings
	ApplyDefaultSettings(&s)
	return s
}
