package schedule

import (
	"context"
	"fmt"
	"log"
	"sync"
	"time"

	"condoapp/internal/domain"
)

// View is the reservation schedule of one resource: the loaded booking logs,
// the calendar and the day-detail panel. Network calls run without holding
// the lock; their results are dropped once the view is disposed.
type View struct {
	resource domain.Resource
	imageURL string
	loader   *Loader
	client   LogClient
	now      func() time.Time

	mu       sync.Mutex
	schedule Schedule
	calendar *Calendar
	detail   *DayDetail
	loadSeq  uint64
	disposed bool
}

func NewView(resource domain.Resource, imageURL string, loader *Loader, client LogClient, now func() time.Time) *View {
	if now == nil {
		now = time.Now
	}
	return &View{
		resource: resource,
		imageURL: imageURL,
		loader:   loader,
		client:   client,
		now:      now,
		schedule: emptySchedule(resource.ID),
		calendar: NewCalendar(DayKeyOf(now())),
		detail:   NewDayDetail(),
	}
}

func (v *View) today() DayKey {
	return DayKeyOf(v.now())
}

// Reload fetches the booking logs again. Only the most recently started load
// is applied, and a failed fetch leaves the current schedule in place.
func (v *View) Reload(ctx context.Context) error {
	v.mu.Lock()
	if v.disposed {
		v.mu.Unlock()
		return ErrDisposed
	}
	v.loadSeq++
	seq := v.loadSeq
	v.mu.Unlock()

	sched, err := v.loader.Fetch(ctx, v.resource.ID)

	v.mu.Lock()
	defer v.mu.Unlock()
	if v.disposed {
		return ErrDisposed
	}
	if err != nil {
		// the last good schedule stays on screen
		log.Printf("schedule_reload_failed resource_id=%d error=%q", v.resource.ID, err.Error())
		return nil
	}
	if seq == v.loadSeq {
		v.schedule = sched
	}
	return nil
}

// ToggleCalendar flips calendar visibility without reloading.
func (v *View) ToggleCalendar() (bool, error) {
	v.mu.Lock()
	defer v.mu.Unlock()
	if v.disposed {
		return false, ErrDisposed
	}
	return v.calendar.Toggle(), nil
}

// ShowMonth moves the calendar by delta months from the one shown.
func (v *View) ShowMonth(delta int) error {
	v.mu.Lock()
	defer v.mu.Unlock()
	if v.disposed {
		return ErrDisposed
	}
	for ; delta > 0; delta-- {
		v.calendar.NextMonth()
	}
	for ; delta < 0; delta++ {
		v.calendar.PrevMonth()
	}
	return nil
}

// SelectDay opens the day detail with the loaded bookings of date. An empty
// result still opens the panel.
func (v *View) SelectDay(date string) ([]domain.BookingLogEntry, error) {
	day, err := ParseDayKey(date)
	if err != nil {
		return nil, err
	}

	v.mu.Lock()
	defer v.mu.Unlock()
	if v.disposed {
		return nil, ErrDisposed
	}
	if !v.calendar.Visible() {
		return nil, ErrCalendarHidden
	}
	if !Selectable(day, v.today()) {
		return nil, ErrDayUnavailable
	}

	items := v.schedule.EntriesOn(day)
	if err := v.detail.Open(day, items); err != nil {
		return nil, err
	}
	return v.detail.Items(), nil
}

func (v *View) BeginAddBooking() error {
	v.mu.Lock()
	defer v.mu.Unlock()
	if v.disposed {
		return ErrDisposed
	}
	return v.detail.BeginAdd()
}

func (v *View) CancelAddBooking() error {
	v.mu.Lock()
	defer v.mu.Unlock()
	if v.disposed {
		return ErrDisposed
	}
	return v.detail.Cancel()
}

func (v *View) CloseDetail() error {
	v.mu.Lock()
	defer v.mu.Unlock()
	if v.disposed {
		return ErrDisposed
	}
	return v.detail.Close()
}

// ValidateAndSubmit validates both HH:MM inputs and creates the booking for
// the selected day. Invalid input returns an *InputError and sends nothing.
// A failed request is logged, returned as ErrSubmitFailed and leaves the
// panel in adding mode. On success the schedule is reloaded after the
// acknowledgment and the panel closes.
func (v *View) ValidateAndSubmit(ctx context.Context, start, end string) error {
	v.mu.Lock()
	if v.disposed {
		v.mu.Unlock()
		return ErrDisposed
	}
	if err := v.detail.SetInputs(start, end); err != nil {
		v.mu.Unlock()
		return err
	}
	day := v.detail.Day()
	v.mu.Unlock()

	req, err := NewBookingRequest(v.resource.ID, day, start, end)
	if err != nil {
		return err
	}

	if err := v.client.CreateLog(ctx, req); err != nil {
		log.Printf("schedule_create_failed resource_id=%d day=%s start=%s end=%s error=%q",
			v.resource.ID, day, req.Start, req.End, err.Error())
		return fmt.Errorf("%w: %w", ErrSubmitFailed, err)
	}

	if err := v.Reload(ctx); err != nil {
		return err
	}

	v.mu.Lock()
	defer v.mu.Unlock()
	if v.disposed {
		return ErrDisposed
	}
	if v.detail.Mode() != ModeClosed {
		_ = v.detail.Close()
	}
	return nil
}

// Dispose tears the view down; in-flight results are discarded afterwards.
func (v *View) Dispose() {
	v.mu.Lock()
	v.disposed = true
	v.mu.Unlock()
}

func (v *View) Disposed() bool {
	v.mu.Lock()
	defer v.mu.Unlock()
	return v.disposed
}

// Schedule returns the last applied load.
func (v *View) Schedule() Schedule {
	v.mu.Lock()
	defer v.mu.Unlock()
	return v.schedule
}

// State renders the view for the shell.
func (v *View) State() State {
	v.mu.Lock()
	defer v.mu.Unlock()

	st := State{
		Resource:        v.resource,
		ImageURL:        v.imageURL,
		CalendarVisible: v.calendar.Visible(),
		Bookings:        len(v.schedule.Entries),
		Detail:          detailState(v.detail),
	}
	if st.CalendarVisible {
		grid := v.calendar.Grid(v.today(), v.schedule.Marks)
		st.Calendar = &grid
	}
	return st
}
