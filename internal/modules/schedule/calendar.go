package schedule

import (
	"fmt"
	"time"

	"condoapp/internal/pkg/utils"
)

var (
	monthNames = [...]string{
		"Janeiro", "Fevereiro", "Março", "Abril", "Maio", "Junho",
		"Julho", "Agosto", "Setembro", "Outubro", "Novembro", "Dezembro",
	}
	weekdayNames = []string{"Dom.", "Seg.", "Ter.", "Qua.", "Qui.", "Sex.", "Sáb."}
)

// DayCell is one square of the month grid.
type DayCell struct {
	Date     DayKey      `json:"date"`
	Day      int         `json:"day"`
	InMonth  bool        `json:"in_month"`
	Today    bool        `json:"today"`
	Disabled bool        `json:"disabled"`
	Marking  *DayMarking `json:"marking,omitempty"`
}

// MonthGrid is a Sunday-first month rendering.
type MonthGrid struct {
	Title    string      `json:"title"`
	Year     int         `json:"year"`
	Month    int         `json:"month"`
	Weekdays []string    `json:"weekdays"`
	Weeks    [][]DayCell `json:"weeks"`
}

// Calendar holds the visibility flag and the month being shown.
type Calendar struct {
	visible bool
	month   time.Time
}

func NewCalendar(today DayKey) *Calendar {
	t := today.Time()
	return &Calendar{month: time.Date(t.Year(), t.Month(), 1, 0, 0, 0, 0, utils.Reference)}
}

// Toggle flips visibility and returns the new value.
func (c *Calendar) Toggle() bool {
	c.visible = !c.visible
	return c.visible
}

func (c *Calendar) Visible() bool { return c.visible }

func (c *Calendar) NextMonth() { c.month = c.month.AddDate(0, 1, 0) }

func (c *Calendar) PrevMonth() { c.month = c.month.AddDate(0, -1, 0) }

// ShowMonth jumps to the given month.
func (c *Calendar) ShowMonth(year int, month time.Month) error {
	if month < time.January || month > time.December {
		return fmt.Errorf("invalid month %d", month)
	}
	c.month = time.Date(year, month, 1, 0, 0, 0, 0, utils.Reference)
	return nil
}

// Selectable reports whether day may be picked: today and later only.
func Selectable(day, today DayKey) bool {
	return !day.Before(today)
}

// Grid renders the shown month. Days before today are disabled; marked days
// carry their marking.
func (c *Calendar) Grid(today DayKey, marks map[DayKey]DayMarking) MonthGrid {
	first := c.month
	last := first.AddDate(0, 1, -1)

	grid := MonthGrid{
		Title:    fmt.Sprintf("%s %d", monthNames[first.Month()-1], first.Year()),
		Year:     first.Year(),
		Month:    int(first.Month()),
		Weekdays: weekdayNames,
	}

	cursor := first.AddDate(0, 0, -int(first.Weekday()))
	for !cursor.After(last) {
		week := make([]DayCell, 0, 7)
		for i := 0; i < 7; i++ {
			key := DayKeyOf(cursor)
			cell := DayCell{
				Date:     key,
				Day:      cursor.Day(),
				InMonth:  cursor.Month() == first.Month(),
				Today:    key == today,
				Disabled: !Selectable(key, today),
			}
			if m, ok := marks[key]; ok {
				cell.Marking = &m
			}
			week = append(week, cell)
			cursor = cursor.AddDate(0, 0, 1)
		}
		grid.Weeks = append(grid.Weeks, week)
	}

	return grid
}
