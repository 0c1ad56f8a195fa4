package reservations

import "context"

// API is the part of the shared fetch helper this screen uses.
type API interface {
	Get(ctx context.Context, endpoint string, out any) error
	Post(ctx context.Context, endpoint string, body, out any) error
	ImageURL(imageID int64) string
}
