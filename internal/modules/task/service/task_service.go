package service

import (
	"context"
	"time"

	"hourly/internal/modules/task/domain"
	taskout "hourly/internal/modules/task/port/out"
	"hourly/internal/platform/clock"
	apperrors "hourly/internal/platform/errors"
	"hourly/internal/platform/id"
	"hourly/internal/platform/tx"
)

// TaskService owns the ordered task collection. Every mutator loads the
// canonical store, applies the change in memory, and persists store and
// index before returning, so the store never lags the collection.
type TaskService struct {
	clock     clock.Clock
	idGen     id.Generator
	store     taskout.TaskStore
	projector taskout.TaskIndexProjector
	tx        tx.Manager
}

func NewTaskService(clock clock.Clock, idGen id.Generator, store taskout.TaskStore, projector taskout.TaskIndexProjector, txm tx.Manager) *TaskService {
	return &TaskService{clock: clock, idGen: idGen, store: store, projector: projector, tx: txm}
}

func (s *TaskService) Add(ctx context.Context, draft domain.Task) (domain.Task, error) {
	draft.ID = s.idGen.New()
	draft.CreatedAt = s.clock.Now()
	draft.Completed = false
	draft.Normalize()
	if err := draft.Validate(); err != nil {
		return domain.Task{}, err
	}
	tasks, err := s.store.Load(ctx)
	if err != nil {
		return domain.Task{}, err
	}
	tasks = append([]domain.Task{draft}, tasks...)
	if err := s.persist(ctx, tasks); err != nil {
		return domain.Task{}, err
	}
	return draft, nil
}

func (s *TaskService) Remove(ctx context.Context, taskID string) (domain.Task, error) {
	tasks, err := s.store.Load(ctx)
	if err != nil {
		return domain.Task{}, err
	}
	for i, task := range tasks {
		if task.ID == taskID {
			tasks = append(tasks[:i], tasks[i+1:]...)
			if err := s.persist(ctx, tasks); err != nil {
				return domain.Task{}, err
			}
			return task, nil
		}
	}
	return domain.Task{}, apperrors.ErrNotFound
}

func (s *TaskService) ToggleCompleted(ctx context.Context, taskID string) (domain.Task, error) {
	tasks, err := s.store.Load(ctx)
	if err != nil {
		return domain.Task{}, err
	}
	for i := range tasks {
		if tasks[i].ID == taskID {
			tasks[i].Completed = !tasks[i].Completed
			if err := s.persist(ctx, tasks); err != nil {
				return domain.Task{}, err
			}
			return tasks[i], nil
		}
	}
	return domain.Task{}, apperrors.ErrNotFound
}

// Clear removes every task matching the month scope, or all tasks when no
// scope is given. It reports how many records were removed.
func (s *TaskService) Clear(ctx context.Context, month *time.Month) (int, error) {
	tasks, err := s.store.Load(ctx)
	if err != nil {
		return 0, err
	}
	kept := tasks[:0:0]
	for _, task := range tasks {
		if month == nil || task.InMonth(*month) {
			continue
		}
		kept = append(kept, task)
	}
	removed := len(tasks) - len(kept)
	if removed == 0 {
		return 0, nil
	}
	if err := s.persist(ctx, kept); err != nil {
		return 0, err
	}
	return removed, nil
}

func (s *TaskService) List(ctx context.Context) ([]domain.Task, error) {
	return s.store.Load(ctx)
}

func (s *TaskService) ListMonth(ctx context.Context, month time.Month) ([]domain.Task, error) {
	return s.projector.ListMonth(ctx, month)
}

func (s *TaskService) Reindex(ctx context.Context) error {
	tasks, err := s.store.Load(ctx)
	if err != nil {
		return err
	}
	return s.projector.Rebuild(ctx, tasks)
}

func (s *TaskService) persist(ctx context.Context, tasks []domain.Task) error {
	return s.tx.Within(ctx, func(ctx context.Context) error {
		if err := s.store.Save(ctx, tasks); err != nil {
			return err
		}
		return s.projector.Rebuild(ctx, tasks)
	})
}
