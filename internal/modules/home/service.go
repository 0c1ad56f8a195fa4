package home

import (
	"fmt"
	"sync"

	"condoapp/internal/session"
)

var menu = []struct{ label, icon string }{
	{ScreenReservations, "calendar"},
	{ScreenCameras, "video"},
	{ScreenNotices, "bell"},
	{ScreenOccurrences, "alert-circle"},
	{ScreenFinance, "currency-usd"},
	{ScreenRules, "book"},
}

// Service holds the home screen selection. Zero or one entry is selected.
type Service struct {
	cameras []string

	mu          sync.Mutex
	selected    string
	filterToday bool
}

func NewService(cameraFeeds []string) *Service {
	return &Service{cameras: append([]string(nil), cameraFeeds...)}
}

func known(label string) bool {
	for _, m := range menu {
		if m.label == label {
			return true
		}
	}
	return false
}

// Select opens a menu entry. Opening Avisos from the menu shows every notice.
func (s *Service) Select(label string) error {
	if !known(label) {
		return fmt.Errorf("%w: %q", ErrUnknownScreen, label)
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.selected = label
	if label == ScreenNotices {
		s.filterToday = false
	}
	return nil
}

// Bell opens Avisos restricted to today's notices.
func (s *Service) Bell() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.selected = ScreenNotices
	s.filterToday = true
}

func (s *Service) Reset() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.selected = ""
	s.filterToday = false
}

func (s *Service) State(sess session.Context) State {
	s.mu.Lock()
	selected, today := s.selected, s.filterToday
	s.mu.Unlock()

	st := State{
		Greeting:      "Olá, " + sess.Username(),
		Menu:          make([]MenuItem, 0, len(menu)),
		Selected:      selected,
		NoticesFilter: filterAll,
		ShowFAB:       fabVisible(selected, sess),
	}
	for _, m := range menu {
		st.Menu = append(st.Menu, MenuItem{Label: m.label, Icon: m.icon, Selected: m.label == selected})
	}
	if today {
		st.NoticesFilter = filterToday
	}
	if selected == ScreenCameras {
		st.CameraFeeds = s.cameras
	}
	return st
}

// PressFAB returns the create command for the selected screen.
func (s *Service) PressFAB(sess session.Context) (Command, error) {
	s.mu.Lock()
	selected := s.selected
	s.mu.Unlock()

	if !fabVisible(selected, sess) {
		return Command{}, ErrNoCreate
	}
	return Command{Action: ActionOpenCreate, Screen: selected}, nil
}

func fabVisible(selected string, sess session.Context) bool {
	switch selected {
	case ScreenOccurrences:
		return true
	case ScreenNotices, ScreenRules, ScreenFinance:
		return sess.IsSyndic()
	}
	return false
}
