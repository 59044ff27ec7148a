package usecase_test

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	taskout "hourly/internal/modules/task/adapter/out"
	"hourly/internal/modules/task/domain"
	"hourly/internal/modules/task/dto"
	taskin "hourly/internal/modules/task/port/in"
	"hourly/internal/modules/task/service"
	"hourly/internal/modules/task/usecase"
	"hourly/internal/platform/day"
	apperrors "hourly/internal/platform/errors"
	"hourly/internal/platform/tx"
)

type fakeClock struct {
	now time.Time
}

func (f *fakeClock) Now() time.Time { return f.now }

type seqID struct {
	n int
}

func (s *seqID) New() string {
	s.n++
	return fmt.Sprintf("task-%d", s.n)
}

// fakeProjector records rebuilds in memory so usecase tests stay off SQLite.
type fakeProjector struct {
	rebuilt  [][]domain.Task
	rebuilds int
}

func (f *fakeProjector) Rebuild(_ context.Context, tasks []domain.Task) error {
	f.rebuilds++
	f.rebuilt = append(f.rebuilt, append([]domain.Task(nil), tasks...))
	return nil
}

func (f *fakeProjector) ListMonth(_ context.Context, month time.Month) ([]domain.Task, error) {
	if len(f.rebuilt) == 0 {
		return nil, nil
	}
	latest := f.rebuilt[len(f.rebuilt)-1]
	subset := []domain.Task{}
	for _, task := range latest {
		if task.InMonth(month) {
			subset = append(subset, task)
		}
	}
	return subset, nil
}

func newTaskUsecase(t *testing.T) (taskin.Usecase, *fakeProjector) {
	t.Helper()
	projector := &fakeProjector{}
	svc := service.NewTaskService(
		&fakeClock{now: time.Date(2026, 4, 10, 9, 0, 0, 0, time.Local)},
		&seqID{},
		taskout.NewFileTaskStore(t.TempDir()),
		projector,
		tx.NoopManager{},
	)
	return usecase.NewInteractor(svc, "General"), projector
}

func TestAddResolvesFallbacksAndPrepends(t *testing.T) {
	t.Parallel()
	uc, projector := newTaskUsecase(t)
	ctx := context.Background()

	first, err := uc.Add(ctx, dto.AddInput{
		Title: "  Write proposal  ",
		Date:  day.New(2026, time.April, 10),
		Hours: 3,
	})
	if err != nil {
		t.Fatalf("add first task: %v", err)
	}
	if first.Title != "Write proposal" {
		t.Fatalf("title should be trimmed, got %q", first.Title)
	}
	if first.Client != "General" {
		t.Fatalf("blank client should resolve to default, got %q", first.Client)
	}
	if first.EstimationHours != 3 {
		t.Fatalf("absent estimation should mirror hours, got %.2f", first.EstimationHours)
	}
	if first.StartDate.String() != "2026-04-10" || first.EndDate.String() != "2026-04-10" || first.EstimationDate.String() != "2026-04-10" {
		t.Fatalf("missing dates should fall back to task date, got %+v", first)
	}
	if first.Completed {
		t.Fatalf("new tasks start open")
	}

	second, err := uc.Add(ctx, dto.AddInput{
		Title:  "Fix login",
		Client: "Acme",
		Date:   day.New(2026, time.April, 11),
		Hours:  1.5,
	})
	if err != nil {
		t.Fatalf("add second task: %v", err)
	}

	tasks, err := uc.List(ctx)
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(tasks) != 2 {
		t.Fatalf("expected 2 tasks, got %d", len(tasks))
	}
	if tasks[0].ID != second.ID || tasks[1].ID != first.ID {
		t.Fatalf("most recent task must come first, got %s then %s", tasks[0].ID, tasks[1].ID)
	}
	if projector.rebuilds != 2 {
		t.Fatalf("every mutation must rebuild the index, got %d rebuilds", projector.rebuilds)
	}
}

func TestAddKeepsExplicitZeroEstimation(t *testing.T) {
	t.Parallel()
	uc, _ := newTaskUsecase(t)
	zero := 0.0
	out, err := uc.Add(context.Background(), dto.AddInput{
		Title:           "Spike",
		Date:            day.New(2026, time.April, 10),
		Hours:           2,
		EstimationHours: &zero,
	})
	if err != nil {
		t.Fatalf("add: %v", err)
	}
	if out.EstimationHours != 0 {
		t.Fatalf("explicit zero estimate must not fall back to hours, got %.2f", out.EstimationHours)
	}
}

func TestAddRejectsMissingTitleDateAndNegativeHours(t *testing.T) {
	t.Parallel()
	uc, _ := newTaskUsecase(t)
	ctx := context.Background()
	cases := []dto.AddInput{
		{Title: "   ", Date: day.New(2026, time.April, 10), Hours: 1},
		{Title: "No date", Hours: 1},
		{Title: "Negative", Date: day.New(2026, time.April, 10), Hours: -2},
	}
	for _, input := range cases {
		if _, err := uc.Add(ctx, input); !errors.Is(err, apperrors.ErrInvalidInput) {
			t.Fatalf("expected invalid input for %+v, got %v", input, err)
		}
	}
}

func TestToggleAndRemoveReportMissingTasks(t *testing.T) {
	t.Parallel()
	uc, _ := newTaskUsecase(t)
	ctx := context.Background()

	added, err := uc.Add(ctx, dto.AddInput{Title: "Deploy", Date: day.New(2026, time.April, 10), Hours: 1})
	if err != nil {
		t.Fatalf("add: %v", err)
	}

	toggled, err := uc.ToggleCompleted(ctx, added.ID)
	if err != nil {
		t.Fatalf("toggle: %v", err)
	}
	if !toggled.Completed {
		t.Fatalf("first toggle should complete the task")
	}
	toggled, err = uc.ToggleCompleted(ctx, added.ID)
	if err != nil {
		t.Fatalf("toggle back: %v", err)
	}
	if toggled.Completed {
		t.Fatalf("second toggle should reopen the task")
	}

	if _, err := uc.ToggleCompleted(ctx, "missing"); !errors.Is(err, apperrors.ErrNotFound) {
		t.Fatalf("expected not found for unknown toggle id, got %v", err)
	}
	if _, err := uc.Remove(ctx, "missing"); !errors.Is(err, apperrors.ErrNotFound) {
		t.Fatalf("expected not found for unknown remove id, got %v", err)
	}

	removed, err := uc.Remove(ctx, added.ID)
	if err != nil {
		t.Fatalf("remove: %v", err)
	}
	if removed.ID != added.ID {
		t.Fatalf("remove should return the deleted task, got %s", removed.ID)
	}
	tasks, err := uc.List(ctx)
	if err != nil {
		t.Fatalf("list after remove: %v", err)
	}
	if len(tasks) != 0 {
		t.Fatalf("expected empty collection, got %d tasks", len(tasks))
	}
}

func TestClearScopedByMonthSpansYears(t *testing.T) {
	t.Parallel()
	uc, _ := newTaskUsecase(t)
	ctx := context.Background()

	for _, d := range []day.Day{
		day.New(2025, time.March, 5),
		day.New(2026, time.March, 20),
		day.New(2026, time.April, 2),
	} {
		if _, err := uc.Add(ctx, dto.AddInput{Title: "Task " + d.String(), Date: d, Hours: 1}); err != nil {
			t.Fatalf("add %s: %v", d, err)
		}
	}

	march := time.March
	out, err := uc.Clear(ctx, dto.ClearInput{Month: &march})
	if err != nil {
		t.Fatalf("clear march: %v", err)
	}
	if out.Removed != 2 {
		t.Fatalf("expected 2 march tasks removed across years, got %d", out.Removed)
	}

	remaining, err := uc.List(ctx)
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(remaining) != 1 || remaining[0].Date.Month() != time.April {
		t.Fatalf("only the april task should remain, got %+v", remaining)
	}

	out, err = uc.Clear(ctx, dto.ClearInput{})
	if err != nil {
		t.Fatalf("clear all: %v", err)
	}
	if out.Removed != 1 {
		t.Fatalf("expected 1 removed, got %d", out.Removed)
	}
}

func TestListMonthServedByIndex(t *testing.T) {
	t.Parallel()
	uc, _ := newTaskUsecase(t)
	ctx := context.Background()

	if _, err := uc.Add(ctx, dto.AddInput{Title: "May work", Date: day.New(2026, time.May, 1), Hours: 2}); err != nil {
		t.Fatalf("add: %v", err)
	}
	if _, err := uc.Add(ctx, dto.AddInput{Title: "June work", Date: day.New(2026, time.June, 1), Hours: 2}); err != nil {
		t.Fatalf("add: %v", err)
	}

	may, err := uc.ListMonth(ctx, time.May)
	if err != nil {
		t.Fatalf("list month: %v", err)
	}
	if len(may) != 1 || may[0].Title != "May work" {
		t.Fatalf("expected only the may task, got %+v", may)
	}
	if err := uc.Reindex(ctx); err != nil {
		t.Fatalf("reindex: %v", err)
	}
}
