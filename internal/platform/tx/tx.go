package tx

import "context"

// Manager brackets operations that touch the canonical store and the
// search index together.
type Manager interface {
	Within(ctx context.Context, fn func(context.Context) error) error
}

type NoopManager struct{}

func (NoopManager) Within(ctx context.Context, fn func(context.Context) error) error {
	return fn(ctx)
}
