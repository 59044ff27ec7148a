package out

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"hourly/internal/modules/task/domain"
	taskout "hourly/internal/modules/task/port/out"
	"hourly/internal/platform/day"
)

// record is the stored shape of a task. Optional fields are pointers so a
// missing value is distinguishable from an explicit zero; Load resolves the
// fallback chain once, handing fully-populated tasks to the rest of the app.
type record struct {
	ID              string   `json:"id"`
	Title           string   `json:"title"`
	Client          string   `json:"client,omitempty"`
	Date            day.Day  `json:"date"`
	StartDate       *day.Day `json:"startDate,omitempty"`
	EndDate         *day.Day `json:"endDate,omitempty"`
	Hours           float64  `json:"hours"`
	EstimationDate  *day.Day `json:"estimationDate,omitempty"`
	EstimationHours *float64 `json:"estimationHours,omitempty"`
	Notes           string   `json:"notes,omitempty"`
	Billable        bool     `json:"billable"`
	Completed       bool     `json:"completed"`
	CreatedAt       time.Time `json:"createdAt"`
}

type FileTaskStore struct {
	path string
}

func NewFileTaskStore(dataDir string) taskout.TaskStore {
	return &FileTaskStore{path: filepath.Join(dataDir, "tasks.json")}
}

// Load returns the stored collection in stored order. A missing file or a
// payload that does not decode to an array degrades to an empty collection;
// durability of a corrupted file is traded for availability.
func (s *FileTaskStore) Load(_ context.Context) ([]domain.Task, error) {
	payload, err := os.ReadFile(s.path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("read tasks: %w", err)
	}
	records := []record{}
	if err := json.Unmarshal(payload, &records); err != nil {
		return nil, nil
	}
	tasks := make([]domain.Task, 0, len(records))
	for _, r := range records {
		tasks = append(tasks, r.toTask())
	}
	return tasks, nil
}

func (s *FileTaskStore) Save(_ context.Context, tasks []domain.Task) error {
	records := make([]record, 0, len(tasks))
	for _, task := range tasks {
		records = append(records, toRecord(task))
	}
	payload, err := json.MarshalIndent(records, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal tasks: %w", err)
	}
	if err := os.MkdirAll(filepath.Dir(s.path), 0o755); err != nil {
		return fmt.Errorf("create data dir: %w", err)
	}
	// Write-then-rename so a crash mid-write never leaves a torn file.
	tmp := s.path + ".tmp"
	if err := os.WriteFile(tmp, payload, 0o644); err != nil {
		return fmt.Errorf("write tasks: %w", err)
	}
	if err := os.Rename(tmp, s.path); err != nil {
		return fmt.Errorf("replace tasks: %w", err)
	}
	return nil
}

func (r record) toTask() domain.Task {
	task := domain.Task{
		ID:        r.ID,
		Title:     r.Title,
		Client:    r.Client,
		Date:      r.Date,
		Hours:     r.Hours,
		Notes:     r.Notes,
		Billable:  r.Billable,
		Completed: r.Completed,
		CreatedAt: r.CreatedAt,
	}
	if r.StartDate != nil {
		task.StartDate = *r.StartDate
	}
	if r.EndDate != nil {
		task.EndDate = *r.EndDate
	}
	if r.EstimationDate != nil {
		task.EstimationDate = *r.EstimationDate
	}
	if r.EstimationHours != nil {
		task.EstimationHours = *r.EstimationHours
	} else {
		task.EstimationHours = r.Hours
	}
	task.Normalize()
	return task
}

func toRecord(task domain.Task) record {
	return record{
		ID:              task.ID,
		Title:           task.Title,
		Client:          task.Client,
		Date:            task.Date,
		StartDate:       &task.StartDate,
		EndDate:         &task.EndDate,
		Hours:           task.Hours,
		EstimationDate:  &task.EstimationDate,
		EstimationHours: &task.EstimationHours,
		Notes:           task.Notes,
		Billable:        task.Billable,
		Completed:       task.Completed,
		CreatedAt:       task.CreatedAt,
	}
}
