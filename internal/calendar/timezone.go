package calendar

import (
	"fmt"
	"strings"
	"time"

	"github.com/julianstephens/habitkit/internal/constants"
)

// LoadLocation loads a timezone location from an IANA timezone name.
// If the timezone is "Local" or empty, it returns the system's local timezone.
func LoadLocation(timezone string) (*time.Location, error) {
	if timezone == "" || timezone == "Local" {
		return time.Local, nil
	}
	return time.LoadLocation(timezone)
}

// ValidateTimezone checks if the timezone name is valid.
func ValidateTimezone(timezone string) bool {
	_, err := LoadLocation(timezone)
	return err == nil
}

// ParseWeekday parses a weekday name ("monday", "mon") or number (0=Sunday).
func ParseWeekday(s string) (time.Weekday, error) {
	s = strings.TrimSpace(strings.ToLower(s))
	for d := time.Sunday; d <= time.Saturday; d++ {
		name := strings.ToLower(d.String())
		if s == name || s == name[:3] {
			return d, nil
		}
	}
	if len(s) == 1 && s[0] >= '0' && s[0] <= '6' {
		return time.Weekday(s[0] - '0'), nil
	}
	return time.Sunday, fmt.Errorf("invalid weekday: %s", s)
}

// FromSettings builds a Calendar from a timezone name and week start name.
func FromSettings(timezone, weekStart string) (Calendar, error) {
	loc, err := LoadLocation(timezone)
	if err != nil {
		return Calendar{}, fmt.Errorf("invalid timezone %q: %w", timezone, err)
	}
	if weekStart == "" {
		weekStart = constants.DefaultWeekStart
	}
	wd, err := ParseWeekday(weekStart)
	if err != nil {
		return Calendar{}, err
	}
	return New(loc, wd), nil
}

// ParseDay parses a YYYY-MM-DD string as midnight in the calendar's location.
func (c Calendar) ParseDay(s string) (time.Time, error) {
	t, err := time.Parse(constants.DateFormat, s)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid date format: %s (expected YYYY-MM-DD)", s)
	}
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, c.Location()), nil
}
