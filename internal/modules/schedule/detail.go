package schedule

import (
	"condoapp/internal/domain"
	"condoapp/internal/pkg/utils"
)

type DetailMode string

const (
	ModeClosed  DetailMode = "closed"
	ModeViewing DetailMode = "viewing"
	ModeAdding  DetailMode = "adding"
)

// DetailRow is one booking as shown in the day detail.
type DetailRow struct {
	Start    string `json:"start"`
	End      string `json:"end"`
	Username string `json:"username"`
}

// DayDetail is the per-day panel state machine:
//
//	closed -> viewing -> adding
//	adding -> viewing        (cancel)
//	viewing|adding -> closed (close, or a successful submit)
type DayDetail struct {
	mode  DetailMode
	day   DayKey
	items []domain.BookingLogEntry
	start string
	end   string
}

func NewDayDetail() *DayDetail {
	return &DayDetail{mode: ModeClosed}
}

func (d *DayDetail) Mode() DetailMode { return d.mode }
func (d *DayDetail) Day() DayKey { return d.day }

// Open seeds the panel with a day's bookings. Re-opening while viewing
// replaces the day.
func (d *DayDetail) Open(day DayKey, items []domain.BookingLogEntry) error {
	if d.mode == ModeAdding {
		return ErrInvalidTransition
	}
	if items == nil {
		items = []domain.BookingLogEntry{}
	}
	d.mode, d.day, d.items = ModeViewing, day, items
	d.start, d.end = "", ""
	return nil
}

// BeginAdd enters input mode with empty fields.
func (d *DayDetail) BeginAdd() error {
	if d.mode != ModeViewing {
		return ErrInvalidTransition
	}
	d.mode = ModeAdding
	d.start, d.end = "", ""
	return nil
}

// SetInputs records what the user typed; only valid while adding.
func (d *DayDetail) SetInputs(start, end string) error {
	if d.mode != ModeAdding {
		return ErrInvalidTransition
	}
	d.start, d.end = start, end
	return nil
}

func (d *DayDetail) Cancel() error {
	if d.mode != ModeAdding {
		return ErrInvalidTransition
	}
	d.mode = ModeViewing
	d.start, d.end = "", ""
	return nil
}

func (d *DayDetail) Close() error {
	if d.mode == ModeClosed {
		return ErrInvalidTransition
	}
	*d = DayDetail{mode: ModeClosed}
	return nil
}

// Items returns the bookings the panel was seeded with.
func (d *DayDetail) Items() []domain.BookingLogEntry {
	out := make([]domain.BookingLogEntry, len(d.items))
	copy(out, d.items)
	return out
}

// Empty reports the explicit "no bookings" state.
func (d *DayDetail) Empty() bool { return len(d.items) == 0 }

func (d *DayDetail) Inputs() (string, string) { return d.start, d.end }

func (d *DayDetail) Rows() []DetailRow {
	rows := make([]DetailRow, 0, len(d.items))
	for _, e := range d.items {
		rows = append(rows, DetailRow{
			Start:    utils.FormatClock(e.Start),
			End:      utils.FormatClock(e.End),
			Username: e.Username,
		})
	}
	return rows
}
