package schedule

import (
	"context"

	"condoapp/internal/domain"
)

// LogClient is the slice of the backend the schedule view talks to.
type LogClient interface {
	FetchLogs(ctx context.Context, resourceID int64) ([]domain.BookingLogEntry, error)
	CreateLog(ctx context.Context, req domain.CreateBookingLog) error
}

// Requester is the subset of the API client used here.
type Requester interface {
	Get(ctx context.Context, endpoint string, out any) error
	Post(ctx context.Context, endpoint string, body, out any) error
}

// ResourceFinder resolves the resource a view is mounted for.
type ResourceFinder interface {
	FindResource(ctx context.Context, id int64) (domain.Resource, error)
}
