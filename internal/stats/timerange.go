package stats

import (
	"fmt"
	"strings"
	"time"

	"github.com/julianstephens/habitkit/internal/calendar"
	"github.com/julianstephens/habitkit/internal/constants"
)

// RangePolicy names a statistics window that is resolved against "now" on every use.
type RangePolicy string

const (
	RangeAll       RangePolicy = "all"
	RangeThisMonth RangePolicy = "month"
	RangeThisWeek  RangePolicy = "week"
)

// Policies lists every supported range in display order.
var Policies = []RangePolicy{RangeAll, RangeThisMonth, RangeThisWeek}

// ParseRangePolicy accepts "all", "month"/"this-month" and "week"/"this-week".
func ParseRangePolicy(s string) (RangePolicy, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "all":
		return RangeAll, nil
	case "month", "this-month", "thismonth":
		return RangeThisMonth, nil
	case "week", "this-week", "thisweek":
		return RangeThisWeek, nil
	default:
		return "", fmt.Errorf("invalid range %q (expected all, month or week)", s)
	}
}

// Resolve returns the closed window [start, now] for the policy.
// Unknown policies resolve like RangeAll.
func (p RangePolicy) Resolve(cal calendar.Calendar, now time.Time) calendar.Range {
	switch p {
	case RangeThisMonth:
		return calendar.NewRange(cal.StartOfMonth(now), now)
	case RangeThisWeek:
		return calendar.NewRange(cal.StartOfWeek(now), now)
	default:
		return calendar.NewRange(cal.Epoch(), now)
	}
}

// SampleInterval returns the trend sampling step in days.
func (p RangePolicy) SampleInterval() int {
	switch p {
	case RangeThisMonth, RangeThisWeek:
		return constants.TrendDailyInterval
	default:
		return constants.TrendWeeklyInterval
	}
}

// Label is the human readable name of the policy.
func (p RangePolicy) Label() string {
	switch p {
	case RangeThisMonth:
		return "This month"
	case RangeThisWeek:
		return "This week"
	default:
		return "All time"
	}
}

// Next cycles through Policies.
func (p RangePolicy) Next() RangePolicy {
	for i, policy := range Policies {
		if policy == p {
			return Policies[(i+1)%len(Policies)]
		}
	}
	return RangeAll
}
