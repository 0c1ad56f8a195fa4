package schedule

import (
	"strings"
	"time"

	"condoapp/internal/pkg/utils"
)

const dayLayout = "2006-01-02"

// DayKey is a calendar date (YYYY-MM-DD) in the reference zone. Grouping,
// display, "today" and submitted instants all use the same zone (UTC), so a
// booking filed for a day is always grouped back under that day.
type DayKey string

func DayKeyOf(t time.Time) DayKey {
	return DayKey(t.In(utils.Reference).Format(dayLayout))
}

// ParseDayKey validates a YYYY-MM-DD string.
func ParseDayKey(s string) (DayKey, error) {
	s = strings.TrimSpace(s)
	t, err := time.ParseInLocation(dayLayout, s, utils.Reference)
	if err != nil {
		return "", ErrInvalidDay
	}
	return DayKey(t.Format(dayLayout)), nil
}

// Time is midnight of the day in the reference zone.
func (k DayKey) Time() time.Time {
	t, _ := time.ParseInLocation(dayLayout, string(k), utils.Reference)
	return t
}

// Before compares keys; the fixed layout sorts lexically.
func (k DayKey) Before(other DayKey) bool {
	return k < other
}

func (k DayKey) String() string { return string(k) }
