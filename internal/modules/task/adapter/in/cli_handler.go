package in

import (
	"context"
	"time"

	"hourly/internal/modules/task/dto"
	taskin "hourly/internal/modules/task/port/in"
)

type CLIHandler struct {
	usecase taskin.Usecase
}

func NewCLIHandler(usecase taskin.Usecase) CLIHandler {
	return CLIHandler{usecase: usecase}
}

func (h CLIHandler) Add(ctx context.Context, input dto.AddInput) (dto.TaskOutput, error) {
	return h.usecase.Add(ctx, input)
}

func (h CLIHandler) Remove(ctx context.Context, id string) (dto.TaskOutput, error) {
	return h.usecase.Remove(ctx, id)
}

func (h CLIHandler) ToggleCompleted(ctx context.Context, id string) (dto.TaskOutput, error) {
	return h.usecase.ToggleCompleted(ctx, id)
}

func (h CLIHandler) Clear(ctx context.Context, month *time.Month) (dto.ClearOutput, error) {
	return h.usecase.Clear(ctx, dto.ClearInput{Month: month})
}

func (h CLIHandler) List(ctx context.Context) ([]dto.TaskOutput, error) {
	return h.usecase.List(ctx)
}

func (h CLIHandler) ListMonth(ctx context.Context, month time.Month) ([]dto.TaskOutput, error) {
	return h.usecase.ListMonth(ctx, month)
}

func (h CLIHandler) Reindex(ctx context.Context) error {
	return h.usecase.Reindex(ctx)
}
