package out

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"hourly/internal/modules/task/domain"
	taskout "hourly/internal/modules/task/port/out"
	"hourly/internal/platform/day"

	_ "modernc.org/sqlite"
)

// SQLiteTaskProjector mirrors the task collection into a queryable index.
// Position preserves the canonical most-recent-first order so month queries
// come back in the same order the repository iterates.
type SQLiteTaskProjector struct {
	db *sql.DB
}

func NewSQLiteTaskProjector(dbPath string) (taskout.TaskIndexProjector, error) {
	if err := os.MkdirAll(filepath.Dir(dbPath), 0o755); err != nil {
		return nil, fmt.Errorf("create db dir: %w", err)
	}
	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("open sqlite: %w", err)
	}
	projector := &SQLiteTaskProjector{db: db}
	if err := projector.ensureSchema(context.Background()); err != nil {
		return nil, err
	}
	return projector, nil
}

func (s *SQLiteTaskProjector) ensureSchema(ctx context.Context) error {
	const ddl = `
CREATE TABLE IF NOT EXISTS tasks (
  position INTEGER NOT NULL,
  id TEXT PRIMARY KEY,
  title TEXT NOT NULL,
  client TEXT NOT NULL,
  date TEXT NOT NULL,
  start_date TEXT NOT NULL,
  end_date TEXT NOT NULL,
  hours REAL NOT NULL,
  estimation_date TEXT NOT NULL,
  estimation_hours REAL NOT NULL,
  notes TEXT,
  billable INTEGER NOT NULL,
  completed INTEGER NOT NULL,
  created_at TEXT NOT NULL
);
`
	if _, err := s.db.ExecContext(ctx, ddl); err != nil {
		return fmt.Errorf("create tasks table: %w", err)
	}
	return nil
}

func (s *SQLiteTaskProjector) Rebuild(ctx context.Context, tasks []domain.Task) error {
	dbTx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin rebuild: %w", err)
	}
	defer func() { _ = dbTx.Rollback() }()

	if _, err := dbTx.ExecContext(ctx, `DELETE FROM tasks`); err != nil {
		return fmt.Errorf("reset tasks index: %w", err)
	}
	const stmt = `
INSERT INTO tasks (position, id, title, client, date, start_date, end_date, hours, estimation_date, estimation_hours, notes, billable, completed, created_at)
VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?);
`
	for position, task := range tasks {
		_, err := dbTx.ExecContext(ctx, stmt,
			position,
			task.ID,
			task.Title,
			task.Client,
			task.Date.String(),
			task.StartDate.String(),
			task.EndDate.String(),
			task.Hours,
			task.EstimationDate.String(),
			task.EstimationHours,
			task.Notes,
			boolToInt(task.Billable),
			boolToInt(task.Completed),
			task.CreatedAt.Format(time.RFC3339Nano),
		)
		if err != nil {
			return fmt.Errorf("index task %s: %w", task.ID, err)
		}
	}
	if err := dbTx.Commit(); err != nil {
		return fmt.Errorf("commit rebuild: %w", err)
	}
	return nil
}

func (s *SQLiteTaskProjector) ListMonth(ctx context.Context, month time.Month) ([]domain.Task, error) {
	const query = `
SELECT id, title, client, date, start_date, end_date, hours, estimation_date, estimation_hours, notes, billable, completed, created_at
FROM tasks
WHERE CAST(strftime('%m', date) AS INTEGER) = ?
ORDER BY position;
`
	rows, err := s.db.QueryContext(ctx, query, int(month))
	if err != nil {
		return nil, fmt.Errorf("query month index: %w", err)
	}
	defer rows.Close()

	tasks := []domain.Task{}
	for rows.Next() {
		var (
			task                                              domain.Task
			date, startDate, endDate, estimationDate, created string
			notes                                             sql.NullString
			billable, completed                               int
		)
		if err := rows.Scan(&task.ID, &task.Title, &task.Client, &date, &startDate, &endDate, &task.Hours, &estimationDate, &task.EstimationHours, &notes, &billable, &completed, &created); err != nil {
			return nil, fmt.Errorf("scan task row: %w", err)
		}
		if task.Date, err = day.Parse(date); err != nil {
			return nil, err
		}
		if task.StartDate, err = day.Parse(startDate); err != nil {
			return nil, err
		}
		if task.EndDate, err = day.Parse(endDate); err != nil {
			return nil, err
		}
		if task.EstimationDate, err = day.Parse(estimationDate); err != nil {
			return nil, err
		}
		if task.CreatedAt, err = time.Parse(time.RFC3339Nano, created); err != nil {
			return nil, fmt.Errorf("parse created_at: %w", err)
		}
		task.Notes = notes.String
		task.Billable = billable != 0
		task.Completed = completed != 0
		tasks = append(tasks, task)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate task rows: %w", err)
	}
	return tasks, nil
}

func boolToInt(v bool) int {
	if v {
		return 1
	}
	return 0
}
