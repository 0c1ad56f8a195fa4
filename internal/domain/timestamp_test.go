package domain

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseTimestamp(t *testing.T) {
	cases := map[string]time.Time{
		"2024-05-02T09:00:00Z":      time.Date(2024, 5, 2, 9, 0, 0, 0, time.UTC),
		"2024-05-02T09:00:00.5Z":    time.Date(2024, 5, 2, 9, 0, 0, 5e8, time.UTC),
		"2024-05-01T23:30:00-03:00": time.Date(2024, 5, 2, 2, 30, 0, 0, time.UTC),
		"2024-05-02T09:00:00":       time.Date(2024, 5, 2, 9, 0, 0, 0, time.UTC),
		"2024-05-02T09:00":          time.Date(2024, 5, 2, 9, 0, 0, 0, time.UTC),
		"2024-05-02 09:00:00+00:00": time.Date(2024, 5, 2, 9, 0, 0, 0, time.UTC),
		"2024-05-10":                time.Date(2024, 5, 10, 0, 0, 0, 0, time.UTC),
	}
	for in, want := range cases {
		t.Run(in, func(t *testing.T) {
			got, err := ParseTimestamp(in)
			require.NoError(t, err)
			assert.True(t, want.Equal(got), "got %s", got)
		})
	}

	_, err := ParseTimestamp("02/05/2024")
	assert.Error(t, err)
}

func TestBookingLogEntry_DecodesZonelessTimes(t *testing.T) {
	var entries []BookingLogEntry
	err := json.Unmarshal([]byte(`[
		{"id":1,"inicio":"2024-05-01T09:00:00Z","fim":"2024-05-01T10:00:00Z","user_id":15,"username":"Adm","reserva_id":3},
		{"id":2,"inicio":"2024-05-02T09:00:00","fim":"2024-05-02T10:30:00","user_id":7,"username":"Ana","reserva_id":3}
	]`), &entries)
	require.NoError(t, err)
	require.Len(t, entries, 2)

	assert.Equal(t, int64(15), entries[0].UserID)
	assert.Equal(t, "Ana", entries[1].Username)
	assert.Equal(t, int64(3), entries[1].ResourceID)
	assert.True(t, time.Date(2024, 5, 2, 10, 30, 0, 0, time.UTC).Equal(entries[1].End))
}

func TestInstallment_DecodesDateOnly(t *testing.T) {
	var list []Installment
	err := json.Unmarshal([]byte(`[
		{"code":"05/2024","valor":450,"vencimento":"2024-05-10","pago_em":null},
		{"code":"04/2024","valor":450,"vencimento":"2024-04-10T00:00:00Z","pago_em":"2024-04-08"}
	]`), &list)
	require.NoError(t, err)
	require.Len(t, list, 2)

	assert.True(t, time.Date(2024, 5, 10, 0, 0, 0, 0, time.UTC).Equal(list[0].DueDate))
	assert.Nil(t, list[0].PaidAt)
	require.NotNil(t, list[1].PaidAt)
	assert.True(t, time.Date(2024, 4, 8, 0, 0, 0, 0, time.UTC).Equal(*list[1].PaidAt))
}

func TestTimestamp_RejectsGarbage(t *testing.T) {
	var e BookingLogEntry
	assert.Error(t, json.Unmarshal([]byte(`{"inicio":"amanhã","fim":"2024-05-02"}`), &e))
	assert.Error(t, json.Unmarshal([]byte(`{"inicio":12,"fim":"2024-05-02"}`), &e))
}
