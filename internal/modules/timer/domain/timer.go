package domain

import "time"

// RunningTimer is the single in-progress, not-yet-committed task. At most
// one exists process-wide; it persists across restarts until stopped or
// reset.
type RunningTimer struct {
	TaskName  string    `json:"task_name"`
	Client    string    `json:"client"`
	Billable  bool      `json:"billable"`
	StartedAt time.Time `json:"started_at"`
}

// MinimumRun guards against an accidental instant stop; a stop before this
// elapses leaves the timer running.
const MinimumRun = time.Second

// Elapsed never reports a negative duration, even under clock skew.
func Elapsed(startedAt, now time.Time) time.Duration {
	if now.Before(startedAt) {
		return 0
	}
	return now.Sub(startedAt)
}
