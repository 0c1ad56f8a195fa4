package schedule

import (
	"errors"
	"fmt"
)

var (
	ErrInvalidDay        = errors.New("invalid day, expected YYYY-MM-DD")
	ErrDayUnavailable    = errors.New("day is before today")
	ErrCalendarHidden    = errors.New("calendar is not visible")
	ErrInvalidTransition = errors.New("invalid day-detail transition")
	ErrInvalidTime       = errors.New("invalid time, expected HH:MM")
	ErrSubmitFailed      = errors.New("booking was not created")
	ErrDisposed          = errors.New("schedule view was disposed")
	ErrNotMounted        = errors.New("schedule view is not mounted")
	ErrInvalidResource   = errors.New("resource id must be positive")
)

// InputError reports which time field failed validation.
type InputError struct {
	Field string
	Value string
}

func (e *InputError) Error() string {
	return fmt.Sprintf("%s: %q is not a valid HH:MM time", e.Field, e.Value)
}

func (e *InputError) Unwrap() error { return ErrInvalidTime }
