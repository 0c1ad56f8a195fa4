package domain

import (
	"encoding/json"
	"time"
)

// BookingLogEntry is one reserved interval of a Resource. The backend owns
// it; the client never updates or deletes one.
type BookingLogEntry struct {
	ID         int64     `json:"id"`
	Start      time.Time `json:"inicio"`
	End        time.Time `json:"fim"`
	UserID     int64     `json:"user_id"`
	Username   string    `json:"username"`
	ResourceID int64     `json:"reserva_id"`
}

func (e *BookingLogEntry) UnmarshalJSON(data []byte) error {
	type plain BookingLogEntry
	var aux struct {
		plain
		Start Timestamp `json:"inicio"`
		End   Timestamp `json:"fim"`
	}
	if err := json.Unmarshal(data, &aux); err != nil {
		return err
	}
	*e = BookingLogEntry(aux.plain)
	e.Start, e.End = aux.Start.Time, aux.End.Time
	return nil
}

// CreateBookingLog is the body of POST /reservas/logs. Start and End are
// ISO-8601 instants.
type CreateBookingLog struct {
	ResourceID int64  `json:"reservaId"`
	Start      string `json:"inicio"`
	End        string `json:"fim"`
}

// Resource is a reservable facility of the condominium.
type Resource struct {
	ID          int64  `json:"id"`
	Name        string `json:"nome"`
	ImageID     int64  `json:"image_id"`
	Description string `json:"descricao"`
}
