package in

import (
	"context"
	"time"

	"hourly/internal/modules/task/dto"
)

type Usecase interface {
	Add(ctx context.Context, input dto.AddInput) (dto.TaskOutput, error)
	Remove(ctx context.Context, id string) (dto.TaskOutput, error)
	ToggleCompleted(ctx context.Context, id string) (dto.TaskOutput, error)
	Clear(ctx context.Context, input dto.ClearInput) (dto.ClearOutput, error)
	List(ctx context.Context) ([]dto.TaskOutput, error)
	ListMonth(ctx context.Context, month time.Month) ([]dto.TaskOutput, error)
	Reindex(ctx context.Context) error
}
