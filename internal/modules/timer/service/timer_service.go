package service

import (
	"fmt"
	"math"
	"strings"
	"time"

	taskdto "hourly/internal/modules/task/dto"
	"hourly/internal/modules/timer/domain"
	"hourly/internal/platform/clock"
	"hourly/internal/platform/day"
	apperrors "hourly/internal/platform/errors"
)

const trackedLayout = "2006-01-02 15:04"

// TimerService builds timer state and converts an elapsed run into a task
// draft. It holds no persistent state of its own.
type TimerService struct {
	clock clock.Clock
}

func NewTimerService(clk clock.Clock) *TimerService {
	return &TimerService{clock: clk}
}

func (s *TimerService) Start(taskName, client string, billable bool) (domain.RunningTimer, error) {
	if strings.TrimSpace(taskName) == "" {
		return domain.RunningTimer{}, fmt.Errorf("%w: task name is required", apperrors.ErrInvalidInput)
	}
	if strings.TrimSpace(client) == "" {
		return domain.RunningTimer{}, fmt.Errorf("%w: client is required", apperrors.ErrInvalidInput)
	}
	return domain.RunningTimer{
		TaskName:  strings.TrimSpace(taskName),
		Client:    strings.TrimSpace(client),
		Billable:  billable,
		StartedAt: s.clock.Now(),
	}, nil
}

// Materialize turns a finished run into the task draft the repository will
// record. Hours are the elapsed wall-clock time rounded to two decimals;
// the estimate mirrors the actuals since a tracked run has no prior
// estimate of its own.
func (s *TimerService) Materialize(timer domain.RunningTimer) (taskdto.AddInput, time.Duration, error) {
	now := s.clock.Now()
	elapsed := domain.Elapsed(timer.StartedAt, now)
	if elapsed < domain.MinimumRun {
		return taskdto.AddInput{}, elapsed, apperrors.ErrTimerTooShort
	}
	hours := math.Round(elapsed.Hours()*100) / 100
	today := day.Of(now)
	return taskdto.AddInput{
		Title:           timer.TaskName,
		Client:          timer.Client,
		Date:            today,
		StartDate:       day.Of(timer.StartedAt),
		EndDate:         today,
		Hours:           hours,
		EstimationDate:  today,
		EstimationHours: &hours,
		Notes:           fmt.Sprintf("Tracked %s - %s", timer.StartedAt.Format(trackedLayout), now.Format(trackedLayout)),
		Billable:        timer.Billable,
	}, elapsed, nil
}

func (s *TimerService) Elapsed(timer domain.RunningTimer) time.Duration {
	return domain.Elapsed(timer.StartedAt, s.clock.Now())
}
