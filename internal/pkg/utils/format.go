package utils

import (
	"strings"
	"time"
)

// Reference is the zone every displayed date and clock time is rendered in.
var Reference = time.UTC

// FormatDate renders t as dd/mm/yyyy.
func FormatDate(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return t.In(Reference).Format("02/01/2006")
}

// FormatClock renders t as a 24-hour HH:MM.
func FormatClock(t time.Time) string {
	return t.In(Reference).Format("15:04")
}

// FirstNonEmpty returns the first value that is not blank after trimming.
func FirstNonEmpty(values ...string) string {
	for _, v := range values {
		if strings.TrimSpace(v) != "" {
			return v
		}
	}
	return ""
}

// SameDay reports whether a and b fall on the same calendar day in Reference.
func SameDay(a, b time.Time) bool {
	ay, am, ad := a.In(Reference).Date()
	by, bm, bd := b.In(Reference).Date()
	return ay == by && am == bm && ad == bd
}
