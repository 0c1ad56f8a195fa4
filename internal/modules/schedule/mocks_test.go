package schedule

import (
	"context"
	"time"

	"condoapp/internal/domain"

	"github.com/stretchr/testify/mock"
)

type MockLogClient struct {
	mock.Mock
}

func (m *MockLogClient) FetchLogs(ctx context.Context, resourceID int64) ([]domain.BookingLogEntry, error) {
	args := m.Called(ctx, resourceID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.BookingLogEntry), args.Error(1)
}

func (m *MockLogClient) CreateLog(ctx context.Context, req domain.CreateBookingLog) error {
	args := m.Called(ctx, req)
	return args.Error(0)
}

type MockResourceFinder struct {
	mock.Mock
}

func (m *MockResourceFinder) FindResource(ctx context.Context, id int64) (domain.Resource, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(domain.Resource), args.Error(1)
}

func mustTime(s string) time.Time {
	t, err := time.Parse(time.RFC3339, s)
	if err != nil {
		panic(err)
	}
	return t
}

func entry(id int64, start, end string, userID int64, username string) domain.BookingLogEntry {
	return domain.BookingLogEntry{
		ID:         id,
		Start:      mustTime(start),
		End:        mustTime(end),
		UserID:     userID,
		Username:   username,
		ResourceID: 3,
	}
}

// fixedNow is 2024-05-01 10:00 UTC.
func fixedNow() time.Time {
	return time.Date(2024, 5, 1, 10, 0, 0, 0, time.UTC)
}
