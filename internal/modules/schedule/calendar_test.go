package schedule

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSelectable(t *testing.T) {
	today := DayKey("2024-05-01")

	assert.False(t, Selectable("2024-04-30", today))
	assert.False(t, Selectable("2023-12-31", today))
	assert.True(t, Selectable("2024-05-01", today))
	assert.True(t, Selectable("2024-05-02", today))
	assert.True(t, Selectable("2025-01-01", today))
}

func TestCalendar_Toggle(t *testing.T) {
	cal := NewCalendar("2024-05-01")
	assert.False(t, cal.Visible())
	assert.True(t, cal.Toggle())
	assert.True(t, cal.Visible())
	assert.False(t, cal.Toggle())
}

func TestCalendar_Grid(t *testing.T) {
	cal := NewCalendar("2024-05-10")
	marks := map[DayKey]DayMarking{"2024-05-20": OfficialMarking}

	grid := cal.Grid("2024-05-10", marks)

	assert.Equal(t, "Maio 2024", grid.Title)
	assert.Equal(t, []string{"Dom.", "Seg.", "Ter.", "Qua.", "Qui.", "Sex.", "Sáb."}, grid.Weekdays)
	require.Len(t, grid.Weeks, 5)

	// May 2024 starts on a Wednesday.
	first := grid.Weeks[0]
	require.Len(t, first, 7)
	assert.Equal(t, DayKey("2024-04-28"), first[0].Date)
	assert.False(t, first[0].InMonth)
	assert.Equal(t, DayKey("2024-05-01"), first[3].Date)
	assert.True(t, first[3].InMonth)

	cells := map[DayKey]DayCell{}
	for _, week := range grid.Weeks {
		for _, c := range week {
			cells[c.Date] = c
		}
	}

	assert.True(t, cells["2024-05-09"].Disabled)
	assert.False(t, cells["2024-05-10"].Disabled)
	assert.True(t, cells["2024-05-10"].Today)
	assert.False(t, cells["2024-05-11"].Disabled)

	require.NotNil(t, cells["2024-05-20"].Marking)
	assert.Equal(t, "#0058A3", cells["2024-05-20"].Marking.Style.ContainerColor)
	assert.Nil(t, cells["2024-05-21"].Marking)
}

func TestCalendar_Navigate(t *testing.T) {
	cal := NewCalendar("2024-12-15")

	cal.NextMonth()
	assert.Equal(t, "Janeiro 2025", cal.Grid("2024-12-15", nil).Title)

	cal.PrevMonth()
	cal.PrevMonth()
	assert.Equal(t, "Novembro 2024", cal.Grid("2024-12-15", nil).Title)

	require.NoError(t, cal.ShowMonth(2024, time.February))
	grid := cal.Grid("2024-12-15", nil)
	assert.Equal(t, 2, grid.Month)
	for _, week := range grid.Weeks {
		for _, c := range week {
			assert.True(t, c.Disabled, "every day of a past month is disabled: %s", c.Date)
		}
	}

	assert.Error(t, cal.ShowMonth(2024, 13))
}
