package out

import (
	"context"
	"time"

	"hourly/internal/modules/task/domain"
)

// TaskStore is the canonical persistence of the ordered task collection.
// Load tolerates malformed payloads by returning an empty collection.
type TaskStore interface {
	Load(ctx context.Context) ([]domain.Task, error)
	Save(ctx context.Context, tasks []domain.Task) error
}

// TaskIndexProjector mirrors the collection into a queryable index. The
// canonical store stays authoritative; the index is rebuilt after every
// mutation and on demand via reindex.
type TaskIndexProjector interface {
	Rebuild(ctx context.Context, tasks []domain.Task) error
	ListMonth(ctx context.Context, month time.Month) ([]domain.Task, error)
}
