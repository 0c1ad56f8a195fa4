package auth

import (
	"context"

	"condoapp/internal/session"
)

// API is the part of the shared fetch helper auth uses.
type API interface {
	Get(ctx context.Context, endpoint string, out any) error
	Post(ctx context.Context, endpoint string, body, out any) error
}

// SessionStore is the writable session cache.
type SessionStore interface {
	Current() (session.Context, bool)
	Save(ctx context.Context, rec session.Record) (session.Context, error)
	Clear(ctx context.Context) error
}

// Resetter drops per-user screen state on logout.
type Resetter interface {
	Reset()
}
