package out_test

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	taskout "hourly/internal/modules/task/adapter/out"
	"hourly/internal/modules/task/domain"
	"hourly/internal/platform/day"
)

func TestLoadMissingFileReturnsEmptyCollection(t *testing.T) {
	t.Parallel()
	store := taskout.NewFileTaskStore(t.TempDir())
	tasks, err := store.Load(context.Background())
	if err != nil {
		t.Fatalf("load from empty dir: %v", err)
	}
	if len(tasks) != 0 {
		t.Fatalf("expected no tasks, got %d", len(tasks))
	}
}

func TestLoadMalformedPayloadDegradesToEmpty(t *testing.T) {
	t.Parallel()
	dir := t.TempDir()
	if err := os.WriteFile(filepath.Join(dir, "tasks.json"), []byte(`{"not":"an array"`), 0o644); err != nil {
		t.Fatalf("seed corrupt file: %v", err)
	}
	store := taskout.NewFileTaskStore(dir)
	tasks, err := store.Load(context.Background())
	if err != nil {
		t.Fatalf("corrupt payload must not error: %v", err)
	}
	if len(tasks) != 0 {
		t.Fatalf("expected empty collection, got %d", len(tasks))
	}
}

func TestSaveLoadRoundTripPreservesOrder(t *testing.T) {
	t.Parallel()
	dir := t.TempDir()
	store := taskout.NewFileTaskStore(dir)
	ctx := context.Background()

	in := []domain.Task{
		newStoredTask("t2", "Newest", day.New(2026, time.May, 2)),
		newStoredTask("t1", "Oldest", day.New(2026, time.May, 1)),
	}
	if err := store.Save(ctx, in); err != nil {
		t.Fatalf("save: %v", err)
	}
	out, err := store.Load(ctx)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if len(out) != 2 || out[0].ID != "t2" || out[1].ID != "t1" {
		t.Fatalf("stored order must survive the round trip, got %+v", out)
	}
	if out[0].Title != "Newest" || !out[0].Date.Equal(in[0].Date.Time) {
		t.Fatalf("fields must survive the round trip, got %+v", out[0])
	}
	if _, err := os.Stat(filepath.Join(dir, "tasks.json.tmp")); !os.IsNotExist(err) {
		t.Fatalf("temp file must be renamed away after save")
	}
}

// Records written by earlier versions of the format may omit the optional
// fields entirely; loading resolves the documented fallbacks exactly once.
func TestLoadResolvesFallbacksForSparseRecords(t *testing.T) {
	t.Parallel()
	dir := t.TempDir()
	payload := `[
  {"id":"sparse","title":"Old entry","date":"2026-02-03","hours":2.5,"createdAt":"2026-02-03T10:00:00Z"},
  {"id":"zeroest","title":"Explicit zero","date":"2026-02-04","hours":4,"estimationHours":0,"createdAt":"2026-02-04T10:00:00Z"}
]`
	if err := os.WriteFile(filepath.Join(dir, "tasks.json"), []byte(payload), 0o644); err != nil {
		t.Fatalf("seed tasks file: %v", err)
	}
	store := taskout.NewFileTaskStore(dir)
	tasks, err := store.Load(context.Background())
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if len(tasks) != 2 {
		t.Fatalf("expected 2 tasks, got %d", len(tasks))
	}

	sparse := tasks[0]
	if sparse.Client != domain.DefaultClient {
		t.Fatalf("missing client should default, got %q", sparse.Client)
	}
	if sparse.StartDate.String() != "2026-02-03" || sparse.EndDate.String() != "2026-02-03" || sparse.EstimationDate.String() != "2026-02-03" {
		t.Fatalf("missing dates should fall back to the task date, got %+v", sparse)
	}
	if sparse.EstimationHours != 2.5 {
		t.Fatalf("absent estimation should mirror hours, got %.2f", sparse.EstimationHours)
	}

	if tasks[1].EstimationHours != 0 {
		t.Fatalf("explicit zero estimation must stay zero, got %.2f", tasks[1].EstimationHours)
	}
}

func newStoredTask(id, title string, d day.Day) domain.Task {
	task := domain.Task{
		ID:        id,
		Title:     title,
		Client:    "Acme",
		Date:      d,
		Hours:     2,
		Billable:  true,
		CreatedAt: d.Time,
	}
	task.Normalize()
	task.EstimationHours = task.Hours
	return task
}
