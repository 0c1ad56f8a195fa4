package notices

import "context"

type API interface {
	Get(ctx context.Context, endpoint string, out any) error
	Post(ctx context.Context, endpoint string, body, out any) error
	Delete(ctx context.Context, endpoint string) error
}
