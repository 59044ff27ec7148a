package usecase

import (
	"context"
	"errors"

	taskin "hourly/internal/modules/task/port/in"
	"hourly/internal/modules/timer/dto"
	timerin "hourly/internal/modules/timer/port/in"
	timerout "hourly/internal/modules/timer/port/out"
	"hourly/internal/modules/timer/service"
	apperrors "hourly/internal/platform/errors"
)

type Interactor struct {
	svc         *service.TimerService
	tasks       taskin.Usecase
	activeStore timerout.ActiveTimerStore
}

func NewInteractor(svc *service.TimerService, tasks taskin.Usecase, activeStore timerout.ActiveTimerStore) timerin.Usecase {
	return &Interactor{svc: svc, tasks: tasks, activeStore: activeStore}
}

func (i *Interactor) Start(ctx context.Context, input dto.StartInput) (dto.StartOutput, error) {
	_, err := i.activeStore.LoadActive(ctx)
	if err == nil {
		return dto.StartOutput{}, apperrors.ErrTimerAlreadyRunning
	}
	if !errors.Is(err, apperrors.ErrNoActiveTimer) {
		return dto.StartOutput{}, err
	}
	timer, err := i.svc.Start(input.TaskName, input.Client, input.Billable)
	if err != nil {
		return dto.StartOutput{}, err
	}
	if err := i.activeStore.SaveActive(ctx, timer); err != nil {
		return dto.StartOutput{}, err
	}
	return dto.StartOutput{
		TaskName:  timer.TaskName,
		Client:    timer.Client,
		Billable:  timer.Billable,
		StartedAt: timer.StartedAt,
	}, nil
}

// Stop materializes the running timer into a task. A stop below the
// minimum run duration fails and leaves the timer running so the operator
// can retry.
func (i *Interactor) Stop(ctx context.Context) (dto.StopOutput, error) {
	timer, err := i.activeStore.LoadActive(ctx)
	if err != nil {
		return dto.StopOutput{}, err
	}
	draft, elapsed, err := i.svc.Materialize(timer)
	if err != nil {
		return dto.StopOutput{}, err
	}
	task, err := i.tasks.Add(ctx, draft)
	if err != nil {
		return dto.StopOutput{}, err
	}
	if err := i.activeStore.ClearActive(ctx); err != nil {
		return dto.StopOutput{}, err
	}
	return dto.StopOutput{
		TaskID:   task.ID,
		Title:    task.Title,
		Hours:    task.Hours,
		Elapsed:  elapsed,
		Notes:    task.Notes,
		Billable: task.Billable,
	}, nil
}

// Reset discards a running timer without recording a task. Confirmation is
// the caller's responsibility; when idle this is a no-op on persisted
// state.
func (i *Interactor) Reset(ctx context.Context) (dto.ResetOutput, error) {
	timer, err := i.activeStore.LoadActive(ctx)
	if errors.Is(err, apperrors.ErrNoActiveTimer) {
		return dto.ResetOutput{Discarded: false}, nil
	}
	if err != nil {
		return dto.ResetOutput{}, err
	}
	if err := i.activeStore.ClearActive(ctx); err != nil {
		return dto.ResetOutput{}, err
	}
	return dto.ResetOutput{Discarded: true, TaskName: timer.TaskName}, nil
}

func (i *Interactor) Status(ctx context.Context) (dto.StatusOutput, error) {
	timer, err := i.activeStore.LoadActive(ctx)
	if err != nil {
		return dto.StatusOutput{}, err
	}
	return dto.StatusOutput{
		TaskName:  timer.TaskName,
		Client:    timer.Client,
		Billable:  timer.Billable,
		StartedAt: timer.StartedAt,
		Elapsed:   i.svc.Elapsed(timer),
	}, nil
}
