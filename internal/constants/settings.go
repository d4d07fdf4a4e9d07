package constants

const (
	SettingTimezone       = "timezone"
	SettingWeekStart      = "week_start"
	SettingDefaultRange   = "default_range"
	SettingRankingLimit   = "ranking_limit"
	SettingLogDays        = "log_days"
	SettingHeatmapColumns = "heatmap_columns"

	// Default Settings Values
	DefaultTimezone       = "Local" // Use system local timezone by default
	DefaultWeekStart      = "monday"
	DefaultRange          = "all"
	DefaultRankingLimit   = 5
	DefaultLogDays        = 5
	DefaultHeatmapColumns = 7
)
