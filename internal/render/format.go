package render

import (
	"fmt"

	"github.com/julianstephens/habitkit/internal/stats"
)

// FormatPercent renders a 0..1 rate with one decimal, e.g. "87.5%".
func FormatPercent(rate float64) string {
	return fmt.Sprintf("%.1f%%", rate*100)
}

// FormatDays renders a day count, e.g. "1 day" or "3 days".
func FormatDays(n int) string {
	if n == 1 {
		return "1 day"
	}
	return fmt.Sprintf("%d days", n)
}

// FormatMetric renders a ranking value in the metric's unit.
func FormatMetric(metric stats.Metric, value float64) string {
	if metric == stats.MetricCompletionRate {
		return FormatPercent(value)
	}
	return FormatDays(int(value))
}

// FormatRemainder is the footer for rankings cut to a top-N prefix.
func FormatRemainder(n int) string {
	if n == 1 {
		return "1 more habit"
	}
	return fmt.Sprintf("%d more habits", n)
}
