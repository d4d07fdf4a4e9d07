package render

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/julianstephens/habitkit/internal/calendar"
	"github.com/julianstephens/habitkit/internal/models"
	"github.com/julianstephens/habitkit/internal/stats"
)

const (
	dotDone    = "●"
	dotMissing = "○"
	markDone   = "✓"
	markEmpty  = "·"
)

// Heatmap lays out one dot per day from the habit's creation to today,
// columns dots per row.
func Heatmap(h *models.Habit, cal calendar.Calendar, now time.Time, columns int) string {
	if columns <= 0 {
		columns = 7
	}
	days := cal.DatesToToday(h.CreatedAt, now)
	if len(days) == 0 {
		return mutedStyle.Render("no days yet")
	}

	done := habitStyle(h)
	missing := done.Faint(true)

	var b strings.Builder
	for i, day := range days {
		if i > 0 {
			if i%columns == 0 {
				b.WriteByte('\n')
			} else {
				b.WriteByte(' ')
			}
		}
		if h.IsCompletedOn(cal, day) {
			b.WriteString(done.Render(dotDone))
		} else {
			b.WriteString(missing.Render(dotMissing))
		}
	}
	return b.String()
}

// MonthCalendar lays out the days of now's month in week rows starting on the
// calendar's week start. Days after today are left blank.
func MonthCalendar(h *models.Habit, cal calendar.Calendar, now time.Time) string {
	done := habitStyle(h)
	missing := done.Faint(true)

	var b strings.Builder
	b.WriteString(mutedStyle.Render(now.In(cal.Location()).Format("January 2006")))
	b.WriteByte('\n')
	for i := 0; i < 7; i++ {
		if i > 0 {
			b.WriteByte(' ')
		}
		b.WriteString(mutedStyle.Render(time.Weekday((int(cal.WeekStart()) + i) % 7).String()[:2]))
	}

	days := cal.DatesInMonth(now)
	lead := (int(days[0].Weekday()) - int(cal.WeekStart()) + 7) % 7
	today := cal.DayNumber(now)
	for i := 0; i < lead+len(days); i++ {
		if i%7 == 0 {
			b.WriteByte('\n')
		} else {
			b.WriteByte(' ')
		}
		if i < lead {
			b.WriteString("  ")
			continue
		}
		d := days[i-lead]
		switch {
		case cal.DayNumber(d) > today:
			b.WriteString("  ")
		case cal.SameDay(d, now) && h.IsCompletedOn(cal, d):
			b.WriteString(done.Bold(true).Render(dotDone) + " ")
		case h.IsCompletedOn(cal, d):
			b.WriteString(done.Render(dotDone) + " ")
		default:
			b.WriteString(missing.Render(dotMissing) + " ")
		}
	}
	return strings.TrimRight(b.String(), " ")
}

// Detail renders a habit's heading, lifetime numbers and heatmap.
func Detail(h *models.Habit, cal calendar.Calendar, now time.Time, columns int) string {
	all := stats.RangeAll.Resolve(cal, now)

	var b strings.Builder
	b.WriteString(habitStyle(h).Bold(true).Render(h.Name))
	b.WriteString(mutedStyle.Render(fmt.Sprintf("  %s · since %s", h.Icon.OrDefault(), cal.DayKey(h.CreatedAt))))
	b.WriteString("\n\n")

	rows := [][2]string{
		{"Completion rate", FormatPercent(h.CompletionRate(cal, all, now))},
		{"Current streak", FormatDays(h.CurrentStreak(cal, now))},
		{"Longest streak", FormatDays(h.LongestStreak(cal))},
		{"Check-in days", fmt.Sprintf("%d", h.TotalCheckInDays(cal))},
		{"Days since creation", fmt.Sprintf("%d", h.DaysSinceCreation(cal, now))},
	}
	if h.TargetCount != nil {
		rows = append(rows, [2]string{"Target", fmt.Sprintf("%d", *h.TargetCount)})
	}
	for _, r := range rows {
		fmt.Fprintf(&b, "%-20s %s\n", r[0], cardValueStyle.Render(r[1]))
	}
	b.WriteString("\n")
	b.WriteString(Heatmap(h, cal, now, columns))
	b.WriteString("\n\n")
	b.WriteString(MonthCalendar(h, cal, now))
	return b.String()
}

// LogGrid renders the last days days for every habit, one row per habit.
func LogGrid(habits []*models.Habit, cal calendar.Calendar, now time.Time, days int) string {
	window := cal.LastNDays(days, now)

	width := len("Habit")
	for _, h := range habits {
		width = max(width, len([]rune(h.Name)))
	}

	var b strings.Builder
	b.WriteString(titleStyle.Render(fmt.Sprintf("%-*s", width, "Habit")))
	for _, d := range window {
		b.WriteString(" " + mutedStyle.Render(d.Format("Mon 02")))
	}
	b.WriteByte('\n')

	for _, h := range habits {
		name := []rune(h.Name)
		b.WriteString(habitStyle(h).Render(string(name) + strings.Repeat(" ", width-len(name))))
		for _, d := range window {
			b.WriteString("   " + logCell(h, cal, d))
		}
		b.WriteByte('\n')
	}
	return strings.TrimRight(b.String(), "\n")
}

// logCell renders one day under a six-wide day label. Days with several
// completions show their count next to the mark.
func logCell(h *models.Habit, cal calendar.Calendar, d time.Time) string {
	count := h.CompletionCountOn(cal, d)
	if count == 0 {
		return mutedStyle.Render(markEmpty) + "   "
	}
	text := markDone
	if count > 1 {
		text += strconv.Itoa(count)
	}
	return habitStyle(h).Render(text) + strings.Repeat(" ", max(1, 4-len([]rune(text))))
}

// HabitList renders one line per habit with its state tags.
func HabitList(habits []models.Habit, cal calendar.Calendar, now time.Time) string {
	if len(habits) == 0 {
		return mutedStyle.Render("No habits yet. Add one with 'habitkit habit add'.")
	}

	var b strings.Builder
	for i := range habits {
		h := &habits[i]
		var tags []string
		if h.ArchivedAt != nil {
			tags = append(tags, "archived")
		}
		if h.DeletedAt != nil {
			tags = append(tags, "deleted")
		}
		today := markEmpty
		if h.IsCompletedOn(cal, now) {
			today = markDone
		}
		fmt.Fprintf(&b, "%s %s %s", habitStyle(h).Render(today), h.Name, mutedStyle.Render(fmt.Sprintf("(%s, %s streak)", shortID(h.ID), FormatDays(h.CurrentStreak(cal, now)))))
		if len(tags) > 0 {
			b.WriteString(" " + mutedStyle.Render("["+strings.Join(tags, ", ")+"]"))
		}
		b.WriteByte('\n')
	}
	return strings.TrimRight(b.String(), "\n")
}

func shortID(id string) string {
	if len(id) > 8 {
		return id[:8]
	}
	return id
}
