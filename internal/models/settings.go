package models

// Settings represents application-wide settings
type Settings struct {
	Timezone       string `json:"timezone"`        // IANA timezone name (e.g. "America/New_York", or "Local" for system timezone)
	WeekStart      string `json:"week_start"`      // first day of the week for the "this week" range, e.g. "monday"
	DefaultRange   string `json:"default_range"`   // statistics range used when none is given: all, month or week
	RankingLimit   int    `json:"ranking_limit"`   // number of habits shown in rankings
	LogDays        int    `json:"log_days"`        // number of days shown by the habit log
	HeatmapColumns int    `json:"heatmap_columns"` // dots per heatmap row
}
