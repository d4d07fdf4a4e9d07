package render

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/julianstephens/habitkit/internal/calendar"
	"github.com/julianstephens/habitkit/internal/stats"
)

const barWidth = 30

// Summary renders the overview cards of a statistics summary.
func Summary(sum stats.Summary, cal calendar.Calendar) string {
	card := func(title, value string) string {
		return cardStyle.Render(mutedStyle.Render(title) + "\n" + cardValueStyle.Render(value))
	}

	top := lipgloss.JoinHorizontal(lipgloss.Top,
		card("Total check-ins", fmt.Sprintf("%d", sum.TotalCheckIns)),
		card("Active habits", fmt.Sprintf("%d", sum.ActiveHabitsCount)),
	)
	middle := lipgloss.JoinHorizontal(lipgloss.Top,
		card("Average completion", FormatPercent(sum.AverageCompletionRate)),
		card("Longest current", FormatDays(sum.CurrentLongestStreak)),
	)
	bottom := lipgloss.JoinHorizontal(lipgloss.Top,
		card("Longest ever", FormatDays(sum.HistoricalLongestStreak)),
		card("Check-ins per day", fmt.Sprintf("%.2f", sum.AverageCheckInsPerDay)),
	)

	header := titleStyle.Render(sum.Policy.Label()) +
		mutedStyle.Render(fmt.Sprintf("  %s to %s (%s)", cal.DayKey(sum.Range.Start), cal.DayKey(sum.Range.End), FormatDays(sum.DaysInRange)))

	lines := []string{header, top, middle, bottom}
	if h := sum.HabitWithLongestCurrentStreak; h != nil && sum.CurrentLongestStreak > 0 {
		lines = append(lines, fmt.Sprintf("On a roll: %s (%s)", habitStyle(h).Render(h.Name), FormatDays(sum.CurrentLongestStreak)))
	}
	if h := sum.HabitWithLongestHistoricalStreak; h != nil && sum.HistoricalLongestStreak > 0 {
		lines = append(lines, fmt.Sprintf("Best run: %s (%s)", habitStyle(h).Render(h.Name), FormatDays(sum.HistoricalLongestStreak)))
	}
	return strings.Join(lines, "\n")
}

// Ranking renders the first limit ranked habits and a remainder footer.
// A non-positive limit shows every habit.
func Ranking(ranked []stats.RankedHabit, metric stats.Metric, limit int) string {
	if len(ranked) == 0 {
		return mutedStyle.Render("No habits to rank.")
	}
	if limit <= 0 {
		limit = -1
	}
	shown, rest := stats.Top(ranked, limit)

	width := 0
	for _, r := range shown {
		width = max(width, len([]rune(r.Habit.Name)))
	}

	var b strings.Builder
	b.WriteString(titleStyle.Render("Ranking by "+strings.ToLower(metric.Label())) + "\n")
	for i, r := range shown {
		rank := i + 1
		name := []rune(r.Habit.Name)
		fmt.Fprintf(&b, "%s %s%s  %s\n",
			rankStyle(rank).Render(fmt.Sprintf("%2d.", rank)),
			habitStyle(r.Habit).Render(string(name)),
			strings.Repeat(" ", width-len(name)),
			rankStyle(rank).Render(FormatMetric(metric, r.Value)),
		)
	}
	if rest > 0 {
		b.WriteString(mutedStyle.Render(FormatRemainder(rest)) + "\n")
	}
	return strings.TrimRight(b.String(), "\n")
}

// Trend renders one horizontal bar per sampled day. Bars are scaled to the
// busiest day; weekly policies label days by weekday. The all-time series
// starts at the first sample with a check-in.
func Trend(points []stats.TrendDataPoint, policy stats.RangePolicy) string {
	if policy == stats.RangeAll {
		first := 0
		for first < len(points) && points[first].Count == 0 {
			first++
		}
		points = points[first:]
	}
	if len(points) == 0 {
		return mutedStyle.Render("No data yet.")
	}

	peak := 0
	for _, p := range points {
		peak = max(peak, p.Count)
	}

	layout := "Jan 02"
	if policy == stats.RangeThisWeek {
		layout = "Mon   "
	}

	var b strings.Builder
	b.WriteString(titleStyle.Render("Check-in trend") + "\n")
	for _, p := range points {
		n := 0
		if peak > 0 {
			n = p.Count * barWidth / peak
		}
		if p.Count > 0 && n == 0 {
			n = 1
		}
		fmt.Fprintf(&b, "%s %s %d\n", mutedStyle.Render(p.Date.Format(layout)), barStyle.Render(strings.Repeat("█", n)), p.Count)
	}
	return strings.TrimRight(b.String(), "\n")
}
