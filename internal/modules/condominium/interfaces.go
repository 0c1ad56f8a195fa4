package condominium

import (
	"context"

	"condoapp/internal/domain"
	"condoapp/internal/session"
)

type API interface {
	Post(ctx context.Context, endpoint string, body, out any) error
}

type SessionStore interface {
	LinkCondominium(ctx context.Context, cond domain.Condominium) (session.Context, error)
}
