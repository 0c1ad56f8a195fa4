package schedule

import (
	"context"
	"fmt"

	"condoapp/internal/domain"
)

// APIClient implements LogClient over the shared fetch helper.
type APIClient struct {
	api Requester
}

func NewAPIClient(api Requester) *APIClient {
	return &APIClient{api: api}
}

func (c *APIClient) FetchLogs(ctx context.Context, resourceID int64) ([]domain.BookingLogEntry, error) {
	var out []domain.BookingLogEntry
	if err := c.api.Get(ctx, fmt.Sprintf("/reservas/logs/%d", resourceID), &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *APIClient) CreateLog(ctx context.Context, req domain.CreateBookingLog) error {
	return c.api.Post(ctx, "/reservas/logs", req, nil)
}
