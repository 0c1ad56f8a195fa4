package home

import (
	"testing"

	"condoapp/internal/domain"
	"condoapp/internal/session"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var (
	syndic   = session.NewContext(session.Record{Token: "t", UserID: 1, Username: "Ana", Role: domain.RoleSyndic})
	resident = session.NewContext(session.Record{Token: "t", UserID: 2, Username: "Bruno", Role: domain.RoleResident})
)

func TestState_Initial(t *testing.T) {
	st := NewService(nil).State(resident)

	assert.Equal(t, "Olá, Bruno", st.Greeting)
	require.Len(t, st.Menu, 6)
	assert.Equal(t, "Reservas", st.Menu[0].Label)
	assert.Equal(t, "calendar", st.Menu[0].Icon)
	assert.Equal(t, "Regras", st.Menu[5].Label)
	assert.Empty(t, st.Selected)
	assert.False(t, st.ShowFAB)
	assert.Equal(t, "all", st.NoticesFilter)
}

func TestSelect_UnknownLabel(t *testing.T) {
	svc := NewService(nil)
	assert.ErrorIs(t, svc.Select("Piscina"), ErrUnknownScreen)
	assert.Empty(t, svc.State(resident).Selected)
}

func TestBell_SetsTodayFilterUntilAvisosSelected(t *testing.T) {
	svc := NewService(nil)

	svc.Bell()
	st := svc.State(resident)
	assert.Equal(t, ScreenNotices, st.Selected)
	assert.Equal(t, "today", st.NoticesFilter)
	assert.True(t, st.Menu[2].Selected)

	require.NoError(t, svc.Select(ScreenRules))
	assert.Equal(t, "today", svc.State(resident).NoticesFilter)

	require.NoError(t, svc.Select(ScreenNotices))
	assert.Equal(t, "all", svc.State(resident).NoticesFilter)
}

func TestFAB_Visibility(t *testing.T) {
	cases := []struct {
		screen   string
		syndic   bool
		resident bool
	}{
		{ScreenReservations, false, false},
		{ScreenCameras, false, false},
		{ScreenNotices, true, false},
		{ScreenOccurrences, true, true},
		{ScreenFinance, true, false},
		{ScreenRules, true, false},
	}
	for _, tc := range cases {
		t.Run(tc.screen, func(t *testing.T) {
			svc := NewService(nil)
			require.NoError(t, svc.Select(tc.screen))
			assert.Equal(t, tc.syndic, svc.State(syndic).ShowFAB)
			assert.Equal(t, tc.resident, svc.State(resident).ShowFAB)
		})
	}
}

func TestPressFAB(t *testing.T) {
	svc := NewService(nil)

	_, err := svc.PressFAB(syndic)
	assert.ErrorIs(t, err, ErrNoCreate)

	require.NoError(t, svc.Select(ScreenNotices))
	cmd, err := svc.PressFAB(syndic)
	require.NoError(t, err)
	assert.Equal(t, Command{Action: "open_create", Screen: ScreenNotices}, cmd)

	_, err = svc.PressFAB(resident)
	assert.ErrorIs(t, err, ErrNoCreate)
}

func TestCamerasAndReset(t *testing.T) {
	svc := NewService([]string{"http://cam/1"})
	assert.Nil(t, svc.State(resident).CameraFeeds)

	require.NoError(t, svc.Select(ScreenCameras))
	assert.Equal(t, []string{"http://cam/1"}, svc.State(resident).CameraFeeds)

	svc.Bell()
	svc.Reset()
	st := svc.State(resident)
	assert.Empty(t, st.Selected)
	assert.Equal(t, "all", st.NoticesFilter)
}
