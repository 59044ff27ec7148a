package usecase

import (
	"context"
	"fmt"
	"strings"
	"time"

	"hourly/internal/modules/task/domain"
	"hourly/internal/modules/task/dto"
	taskin "hourly/internal/modules/task/port/in"
	"hourly/internal/modules/task/service"
	apperrors "hourly/internal/platform/errors"
)

type Interactor struct {
	svc           *service.TaskService
	defaultClient string
}

func NewInteractor(svc *service.TaskService, defaultClient string) taskin.Usecase {
	if strings.TrimSpace(defaultClient) == "" {
		defaultClient = domain.DefaultClient
	}
	return &Interactor{svc: svc, defaultClient: defaultClient}
}

func (i *Interactor) Add(ctx context.Context, input dto.AddInput) (dto.TaskOutput, error) {
	if strings.TrimSpace(input.Title) == "" {
		return dto.TaskOutput{}, fmt.Errorf("%w: title is required", apperrors.ErrInvalidInput)
	}
	if input.Date.IsZero() {
		return dto.TaskOutput{}, fmt.Errorf("%w: date is required", apperrors.ErrInvalidInput)
	}
	if input.Hours < 0 {
		return dto.TaskOutput{}, fmt.Errorf("%w: hours must be non-negative", apperrors.ErrInvalidInput)
	}
	estimation := input.Hours
	if input.EstimationHours != nil {
		estimation = *input.EstimationHours
	}
	client := input.Client
	if strings.TrimSpace(client) == "" {
		client = i.defaultClient
	}
	task, err := i.svc.Add(ctx, domain.Task{
		Title:           strings.TrimSpace(input.Title),
		Client:          client,
		Date:            input.Date,
		StartDate:       input.StartDate,
		EndDate:         input.EndDate,
		Hours:           input.Hours,
		EstimationDate:  input.EstimationDate,
		EstimationHours: estimation,
		Notes:           input.Notes,
		Billable:        input.Billable,
	})
	if err != nil {
		return dto.TaskOutput{}, err
	}
	return toOutput(task), nil
}

func (i *Interactor) Remove(ctx context.Context, id string) (dto.TaskOutput, error) {
	task, err := i.svc.Remove(ctx, id)
	if err != nil {
		return dto.TaskOutput{}, err
	}
	return toOutput(task), nil
}

func (i *Interactor) ToggleCompleted(ctx context.Context, id string) (dto.TaskOutput, error) {
	task, err := i.svc.ToggleCompleted(ctx, id)
	if err != nil {
		return dto.TaskOutput{}, err
	}
	return toOutput(task), nil
}

func (i *Interactor) Clear(ctx context.Context, input dto.ClearInput) (dto.ClearOutput, error) {
	removed, err := i.svc.Clear(ctx, input.Month)
	if err != nil {
		return dto.ClearOutput{}, err
	}
	return dto.ClearOutput{Removed: removed}, nil
}

func (i *Interactor) List(ctx context.Context) ([]dto.TaskOutput, error) {
	tasks, err := i.svc.List(ctx)
	if err != nil {
		return nil, err
	}
	return toOutputs(tasks), nil
}

func (i *Interactor) ListMonth(ctx context.Context, month time.Month) ([]dto.TaskOutput, error) {
	tasks, err := i.svc.ListMonth(ctx, month)
	if err != nil {
		return nil, err
	}
	return toOutputs(tasks), nil
}

func (i *Interactor) Reindex(ctx context.Context) error {
	return i.svc.Reindex(ctx)
}

func toOutput(task domain.Task) dto.TaskOutput {
	return dto.TaskOutput{
		ID:              task.ID,
		Title:           task.Title,
		Client:          task.Client,
		Date:            task.Date,
		StartDate:       task.StartDate,
		EndDate:         task.EndDate,
		Hours:           task.Hours,
		EstimationDate:  task.EstimationDate,
		EstimationHours: task.EstimationHours,
		Notes:           task.Notes,
		Billable:        task.Billable,
		Completed:       task.Completed,
		CreatedAt:       task.CreatedAt,
	}
}

func toOutputs(tasks []domain.Task) []dto.TaskOutput {
	out := make([]dto.TaskOutput, 0, len(tasks))
	for _, task := range tasks {
		out = append(out, toOutput(task))
	}
	return out
}
