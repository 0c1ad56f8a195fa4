package schedule

import (
	"context"
	"errors"
	"log"

	"condoapp/internal/domain"
)

// MarkingStyle is how a marked day is painted on the calendar.
type MarkingStyle struct {
	ContainerColor string `json:"container_color"`
	TextColor      string `json:"text_color"`
	Bold           bool   `json:"bold"`
}

// DayMarking flags a day holding at least one building-wide booking.
type DayMarking struct {
	Style MarkingStyle `json:"style"`
}

var OfficialMarking = DayMarking{
	Style: MarkingStyle{ContainerColor: "#0058A3", TextColor: "#fff", Bold: true},
}

// Schedule is one load of a resource's booking logs together with what is
// derived from it. Days and Marks are recomputed on every load.
type Schedule struct {
	ResourceID int64
	Entries    []domain.BookingLogEntry
	Days       map[DayKey][]domain.BookingLogEntry
	Marks      map[DayKey]DayMarking
}

func emptySchedule(resourceID int64) Schedule {
	return Schedule{
		ResourceID: resourceID,
		Entries:    []domain.BookingLogEntry{},
		Days:       map[DayKey][]domain.BookingLogEntry{},
		Marks:      map[DayKey]DayMarking{},
	}
}

// EntriesOn filters the loaded entries down to one day, keeping server order.
func (s Schedule) EntriesOn(day DayKey) []domain.BookingLogEntry {
	out := []domain.BookingLogEntry{}
	for _, e := range s.Entries {
		if DayKeyOf(e.Start) == day {
			out = append(out, e)
		}
	}
	return out
}

// GroupByDay buckets entries by the DayKey of their start.
func GroupByDay(entries []domain.BookingLogEntry) map[DayKey][]domain.BookingLogEntry {
	days := make(map[DayKey][]domain.BookingLogEntry)
	for _, e := range entries {
		k := DayKeyOf(e.Start)
		days[k] = append(days[k], e)
	}
	return days
}

// MarkDays marks every day with at least one entry owned by officialUserID.
func MarkDays(days map[DayKey][]domain.BookingLogEntry, officialUserID int64) map[DayKey]DayMarking {
	marks := make(map[DayKey]DayMarking)
	for k, entries := range days {
		for _, e := range entries {
			if e.UserID == officialUserID {
				marks[k] = OfficialMarking
				break
			}
		}
	}
	return marks
}

// Loader fetches booking logs and derives the day grouping and markings.
type Loader struct {
	client         LogClient
	officialUserID int64
}

// NewLoader takes the id of the building's collective booking owner; days
// booked by that user are marked on the calendar.
func NewLoader(client LogClient, officialUserID int64) *Loader {
	return &Loader{client: client, officialUserID: officialUserID}
}

// Fetch builds the schedule for resourceID, reporting why it could not.
func (l *Loader) Fetch(ctx context.Context, resourceID int64) (Schedule, error) {
	if resourceID <= 0 {
		return emptySchedule(resourceID), ErrInvalidResource
	}

	entries, err := l.client.FetchLogs(ctx, resourceID)
	if err != nil {
		return emptySchedule(resourceID), err
	}
	if entries == nil {
		entries = []domain.BookingLogEntry{}
	}

	days := GroupByDay(entries)
	return Schedule{
		ResourceID: resourceID,
		Entries:    entries,
		Days:       days,
		Marks:      MarkDays(days, l.officialUserID),
	}, nil
}

// Load never fails: a fetch error degrades to an empty schedule and is only logged.
func (l *Loader) Load(ctx context.Context, resourceID int64) Schedule {
	sched, err := l.Fetch(ctx, resourceID)
	switch {
	case errors.Is(err, ErrInvalidResource):
		log.Printf("schedule_load_skipped resource_id=%d reason=%q", resourceID, "non-positive id")
	case err != nil:
		log.Printf("schedule_load_failed resource_id=%d error=%q", resourceID, err.Error())
	}
	return sched
}
