package schedule

import "condoapp/internal/domain"

const noBookingsText = "Nenhum agendamento."

// State is what the shell renders for one resource card.
type State struct {
	Resource        domain.Resource `json:"resource"`
	ImageURL        string          `json:"image_url,omitempty"`
	CalendarVisible bool            `json:"calendar_visible"`
	Calendar        *MonthGrid      `json:"calendar,omitempty"`
	Bookings        int             `json:"bookings"`
	Detail          DetailState     `json:"detail"`
}

type DetailState struct {
	Mode      DetailMode  `json:"mode"`
	Day       DayKey      `json:"day,omitempty"`
	Title     string      `json:"title,omitempty"`
	Rows      []DetailRow `json:"rows,omitempty"`
	Empty     bool        `json:"empty"`
	EmptyText string      `json:"empty_text,omitempty"`
	Start     string      `json:"start,omitempty"`
	End       string      `json:"end,omitempty"`
}

func detailState(d *DayDetail) DetailState {
	if d.Mode() == ModeClosed {
		return DetailState{Mode: ModeClosed}
	}
	start, end := d.Inputs()
	st := DetailState{
		Mode:  d.Mode(),
		Day:   d.Day(),
		Title: "Agendamentos em " + string(d.Day()),
		Rows:  d.Rows(),
		Empty: d.Empty(),
		Start: start,
		End:   end,
	}
	if st.Empty {
		st.EmptyText = noBookingsText
	}
	return st
}

type MonthRequest struct {
	Delta int `json:"delta" validate:"min=-24,max=24"`
}

type SubmitBookingRequest struct {
	Start string `json:"start"`
	End   string `json:"end"`
}
