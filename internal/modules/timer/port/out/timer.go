package out

import (
	"context"

	"hourly/internal/modules/timer/domain"
)

// ActiveTimerStore persists the single running timer. Load returns
// apperrors.ErrNoActiveTimer when nothing is stored or the stored payload
// is structurally invalid.
type ActiveTimerStore interface {
	SaveActive(ctx context.Context, timer domain.RunningTimer) error
	LoadActive(ctx context.Context) (domain.RunningTimer, error)
	ClearActive(ctx context.Context) error
}
