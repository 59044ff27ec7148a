package out

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"hourly/internal/modules/timer/domain"
	timerout "hourly/internal/modules/timer/port/out"
	apperrors "hourly/internal/platform/errors"
)

type FileActiveTimerStore struct {
	path string
}

func NewFileActiveTimerStore(dataDir string) timerout.ActiveTimerStore {
	return &FileActiveTimerStore{path: filepath.Join(dataDir, "active-timer.json")}
}

func (s *FileActiveTimerStore) SaveActive(_ context.Context, timer domain.RunningTimer) error {
	if err := os.MkdirAll(filepath.Dir(s.path), 0o755); err != nil {
		return fmt.Errorf("create timer dir: %w", err)
	}
	payload, err := json.MarshalIndent(timer, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal active timer: %w", err)
	}
	if err := os.WriteFile(s.path, payload, 0o644); err != nil {
		return fmt.Errorf("write active timer: %w", err)
	}
	return nil
}

// LoadActive treats a missing file, undecodable payload, or a payload
// without the required fields as "no timer" rather than an error, so a
// corrupted record can never wedge the start/stop state machine.
func (s *FileActiveTimerStore) LoadActive(_ context.Context) (domain.RunningTimer, error) {
	payload, err := os.ReadFile(s.path)
	if err != nil {
		if os.IsNotExist(err) {
			return domain.RunningTimer{}, apperrors.ErrNoActiveTimer
		}
		return domain.RunningTimer{}, fmt.Errorf("read active timer: %w", err)
	}
	timer := domain.RunningTimer{}
	if err := json.Unmarshal(payload, &timer); err != nil {
		return domain.RunningTimer{}, apperrors.ErrNoActiveTimer
	}
	if timer.TaskName == "" || timer.StartedAt.IsZero() {
		return domain.RunningTimer{}, apperrors.ErrNoActiveTimer
	}
	return timer, nil
}

func (s *FileActiveTimerStore) ClearActive(_ context.Context) error {
	if err := os.Remove(s.path); err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return fmt.Errorf("clear active timer: %w", err)
	}
	return nil
}
