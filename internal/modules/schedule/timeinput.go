package schedule

import (
	"regexp"

	"condoapp/internal/domain"
)

var clockPattern = regexp.MustCompile(`^(?:[01]\d|2[0-3]):[0-5]\d$`)

// ValidClock reports whether s is a strict 24-hour HH:MM time.
func ValidClock(s string) bool {
	return clockPattern.MatchString(s)
}

// Instant joins a day and an HH:MM time into a UTC ISO-8601 instant.
func Instant(day DayKey, clock string) string {
	return string(day) + "T" + clock + ":00Z"
}

// NewBookingRequest validates both times and builds the create-booking body.
// Nothing is sent when either time is malformed.
func NewBookingRequest(resourceID int64, day DayKey, start, end string) (domain.CreateBookingLog, error) {
	if !ValidClock(start) {
		return domain.CreateBookingLog{}, &InputError{Field: "start", Value: start}
	}
	if !ValidClock(end) {
		return domain.CreateBookingLog{}, &InputError{Field: "end", Value: end}
	}
	return domain.CreateBookingLog{
		ResourceID: resourceID,
		Start:      Instant(day, start),
		End:        Instant(day, end),
	}, nil
}
