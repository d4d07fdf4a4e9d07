package render

import (
	"strings"
	"testing"
	"time"

	"github.com/julianstephens/habitkit/internal/calendar"
	"github.com/julianstephens/habitkit/internal/models"
	"github.com/julianstephens/habitkit/internal/stats"
)

var (
	utc = calendar.New(time.UTC, time.Monday)
	now = time.Date(2024, 1, 10, 12, 0, 0, 0, time.UTC)
)

func day(d int) time.Time {
	return time.Date(2024, 1, d, 9, 0, 0, 0, time.UTC)
}

func TestFormatting(t *testing.T) {
	tests := []struct {
		got, want string
	}{
		{FormatPercent(0.875), "87.5%"},
		{FormatPercent(0), "0.0%"},
		{FormatPercent(1), "100.0%"},
		{FormatDays(1), "1 day"},
		{FormatDays(0), "0 days"},
		{FormatDays(3), "3 days"},
		{FormatMetric(stats.MetricCompletionRate, 0.5), "50.0%"},
		{FormatMetric(stats.MetricStreak, 4), "4 days"},
		{FormatMetric(stats.MetricTotalCheckIns, 1), "1 day"},
		{FormatRemainder(1), "1 more habit"},
		{FormatRemainder(2), "2 more habits"},
	}
	for _, tt := range tests {
		if tt.got != tt.want {
			t.Errorf("got %q, want %q", tt.got, tt.want)
		}
	}
}

func TestColorOfFallsBackToRed(t *testing.T) {
	if ColorOf("mauve") != ColorOf(models.ColorRed) {
		t.Error("unknown colors should render as red")
	}
	if ColorOf(models.ColorBlue) == ColorOf(models.ColorRed) {
		t.Error("blue should not render as red")
	}
}

func TestHeatmapLayout(t *testing.T) {
	h := &models.Habit{Name: "Read", CreatedAt: day(1), CompletionDates: []time.Time{day(1), day(10)}}

	out := Heatmap(h, utc, now, 7)
	lines := strings.Split(out, "\n")
	if len(lines) != 2 {
		t.Fatalf("got %d rows, want 2 for 10 days at 7 columns:\n%s", len(lines), out)
	}
	if got := strings.Count(out, dotDone); got != 2 {
		t.Errorf("got %d completed dots, want 2", got)
	}
	if got := strings.Count(out, dotMissing); got != 8 {
		t.Errorf("got %d missing dots, want 8", got)
	}
}

func TestHeatmapFutureCreation(t *testing.T) {
	h := &models.Habit{Name: "Later", CreatedAt: day(20)}
	if out := Heatmap(h, utc, now, 7); strings.Contains(out, dotMissing) {
		t.Errorf("expected no dots for a habit created in the future, got %q", out)
	}
}

func TestLogGrid(t *testing.T) {
	habits := []*models.Habit{
		{Name: "Read", CreatedAt: day(1), CompletionDates: []time.Time{day(10), day(8)}},
		{Name: "Run", CreatedAt: day(1)},
	}
	out := LogGrid(habits, utc, now, 5)
	lines := strings.Split(out, "\n")
	if len(lines) != 3 {
		t.Fatalf("got %d lines, want header plus 2 rows:\n%s", len(lines), out)
	}
	if !strings.Contains(lines[0], "Sat 06") || !strings.Contains(lines[0], "Wed 10") {
		t.Errorf("header = %q, want Jan 6 through Jan 10", lines[0])
	}
	if got := strings.Count(lines[1], markDone); got != 2 {
		t.Errorf("Read row has %d marks, want 2", got)
	}
	if strings.Contains(lines[2], markDone) {
		t.Errorf("Run row should have no marks: %q", lines[2])
	}
}

func TestLogGridShowsRepeatedCompletions(t *testing.T) {
	h := &models.Habit{Name: "Water", CreatedAt: day(1), CompletionDates: []time.Time{
		day(10), day(9), day(10).Add(3 * time.Hour), day(10).Add(6 * time.Hour),
	}}
	out := LogGrid([]*models.Habit{h}, utc, now, 2)
	row := strings.Split(out, "\n")[1]

	if !strings.Contains(row, markDone+"3") {
		t.Errorf("row %q should show three completions today", row)
	}
	if strings.Contains(row, markDone+"1") {
		t.Errorf("single completions should not show a count: %q", row)
	}
	if got := strings.Count(row, markDone); got != 2 {
		t.Errorf("row has %d marks, want 2", got)
	}
}

func TestMonthCalendar(t *testing.T) {
	h := &models.Habit{Name: "Read", CreatedAt: day(1), CompletionDates: []time.Time{day(9), day(10)}}

	out := MonthCalendar(h, utc, now)
	lines := strings.Split(out, "\n")
	if len(lines) != 7 {
		t.Fatalf("got %d lines, want title, weekdays and 5 weeks:\n%s", len(lines), out)
	}
	if !strings.Contains(lines[0], "January 2024") {
		t.Errorf("title = %q", lines[0])
	}
	if !strings.HasPrefix(lines[1], "Mo") || !strings.HasSuffix(lines[1], "Su") {
		t.Errorf("weekday header = %q, want Monday first", lines[1])
	}
	if got := strings.Count(out, dotDone); got != 2 {
		t.Errorf("got %d completed days, want 2", got)
	}
	// Days 1-8 are missed, the rest of the month is still ahead.
	if got := strings.Count(out, dotMissing); got != 8 {
		t.Errorf("got %d missed days, want 8", got)
	}

	sunday := calendar.New(time.UTC, time.Sunday)
	out = MonthCalendar(h, sunday, now)
	lines = strings.Split(out, "\n")
	if !strings.HasPrefix(lines[1], "Su") {
		t.Errorf("weekday header = %q, want Sunday first", lines[1])
	}
	// January 1st 2024 is a Monday, one blank cell after Sunday.
	if !strings.HasPrefix(lines[2], "   "+dotMissing) {
		t.Errorf("first week = %q, want one leading blank", lines[2])
	}
}

func TestRankingTopN(t *testing.T) {
	var ranked []stats.RankedHabit
	for i, name := range []string{"A", "B", "C", "D", "E", "F", "G"} {
		ranked = append(ranked, stats.RankedHabit{Habit: &models.Habit{Name: name}, Value: float64(7 - i)})
	}

	out := Ranking(ranked, stats.MetricStreak, 5)
	if !strings.Contains(out, "2 more habits") {
		t.Errorf("expected remainder footer:\n%s", out)
	}
	if strings.Contains(out, " F ") || strings.Contains(out, "F  ") {
		t.Errorf("F should be cut from the top 5:\n%s", out)
	}
	if !strings.Contains(out, "7 days") {
		t.Errorf("expected the leader's value:\n%s", out)
	}

	all := Ranking(ranked, stats.MetricStreak, 0)
	if strings.Contains(all, "more habit") {
		t.Errorf("no footer expected without a limit:\n%s", all)
	}
}

func TestRankingEmpty(t *testing.T) {
	if out := Ranking(nil, stats.MetricCompletionRate, 5); !strings.Contains(out, "No habits") {
		t.Errorf("Ranking(nil) = %q", out)
	}
}

func TestTrend(t *testing.T) {
	points := []stats.TrendDataPoint{
		{Date: time.Date(2024, 1, 8, 0, 0, 0, 0, time.UTC), Count: 0},
		{Date: time.Date(2024, 1, 9, 0, 0, 0, 0, time.UTC), Count: 2},
		{Date: time.Date(2024, 1, 10, 0, 0, 0, 0, time.UTC), Count: 1},
	}
	out := Trend(points, stats.RangeThisWeek)
	lines := strings.Split(out, "\n")
	if len(lines) != 4 {
		t.Fatalf("got %d lines, want title plus 3 bars:\n%s", len(lines), out)
	}
	if !strings.HasPrefix(lines[2], "Tue") {
		t.Errorf("weekly trend should label by weekday, got %q", lines[2])
	}
	if got := strings.Count(lines[2], "█"); got != barWidth {
		t.Errorf("peak bar width = %d, want %d", got, barWidth)
	}
	if got := strings.Count(lines[3], "█"); got != barWidth/2 {
		t.Errorf("half bar width = %d, want %d", got, barWidth/2)
	}
	if strings.Contains(lines[1], "█") {
		t.Errorf("zero count should have no bar: %q", lines[1])
	}

	if out := Trend(nil, stats.RangeAll); !strings.Contains(out, "No data") {
		t.Errorf("Trend(nil) = %q", out)
	}
}

func TestTrendAllSkipsLeadingEmptySamples(t *testing.T) {
	points := []stats.TrendDataPoint{
		{Date: time.Date(2000, 1, 1, 0, 0, 0, 0, time.UTC), Count: 0},
		{Date: time.Date(2000, 1, 8, 0, 0, 0, 0, time.UTC), Count: 0},
		{Date: time.Date(2000, 1, 15, 0, 0, 0, 0, time.UTC), Count: 1},
		{Date: time.Date(2000, 1, 22, 0, 0, 0, 0, time.UTC), Count: 0},
	}
	lines := strings.Split(Trend(points, stats.RangeAll), "\n")
	if len(lines) != 3 || !strings.HasPrefix(lines[1], "Jan 15") {
		t.Errorf("all-time trend = %q, want title plus Jan 15 and Jan 22", lines)
	}

	if out := Trend(points[:2], stats.RangeAll); !strings.Contains(out, "No data") {
		t.Errorf("all-empty trend = %q", out)
	}
}

func TestSummary(t *testing.T) {
	h := &models.Habit{Name: "Read", CreatedAt: day(1), CompletionDates: []time.Time{day(9), day(10)}}
	sum := stats.New([]*models.Habit{h}, stats.RangeThisWeek, utc).Summarize(now)

	out := Summary(sum, utc)
	for _, want := range []string{"2024-01-08", "2024-01-10", "3 days", "Total check-ins", "On a roll: Read (2 days)"} {
		if !strings.Contains(out, want) {
			t.Errorf("summary missing %q:\n%s", want, out)
		}
	}
}

func TestDetail(t *testing.T) {
	target := 3
	h := &models.Habit{Name: "Read", CreatedAt: day(1), CompletionDates: []time.Time{day(9), day(10)}, TargetCount: &target}
	out := Detail(h, utc, now, 7)
	for _, want := range []string{"Read", "20.0%", "Current streak", "2 days", "Target", "January 2024"} {
		if !strings.Contains(out, want) {
			t.Errorf("detail missing %q:\n%s", want, out)
		}
	}
}

func TestHabitList(t *testing.T) {
	archived := now
	habits := []models.Habit{
		{ID: "0123456789", Name: "Read", CreatedAt: day(1), CompletionDates: []time.Time{day(10)}},
		{ID: "b", Name: "Run", CreatedAt: day(1), ArchivedAt: &archived},
	}
	out := HabitList(habits, utc, now)
	if !strings.Contains(out, "01234567") || strings.Contains(out, "0123456789") {
		t.Errorf("expected shortened ids:\n%s", out)
	}
	if !strings.Contains(out, "[archived]") {
		t.Errorf("expected archived tag:\n%s", out)
	}
	if out := HabitList(nil, utc, now); !strings.Contains(out, "No habits") {
		t.Errorf("HabitList(nil) = %q", out)
	}
}
