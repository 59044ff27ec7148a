package domain

import (
	"fmt"
	"strings"
	"time"

	"hourly/internal/platform/day"
)

const DefaultClient = "General"

// Task is a recorded unit of work. A fully-populated record has every date
// set and EstimationHours resolved; Normalize is the only place the
// documented fallback chain is applied, downstream code never re-applies it.
type Task struct {
	ID              string
	Title           string
	Client          string
	Date            day.Day
	StartDate       day.Day
	EndDate         day.Day
	Hours           float64
	EstimationDate  day.Day
	EstimationHours float64
	Notes           string
	Billable        bool
	Completed       bool
	CreatedAt       time.Time
}

// Normalize fills the optional fields from their documented fallbacks:
// start/end/estimation date from Date and client from DefaultClient.
// EstimationHours falls back to Hours at the storage and input boundaries,
// where absence is still observable.
func (t *Task) Normalize() {
	if strings.TrimSpace(t.Client) == "" {
		t.Client = DefaultClient
	}
	if t.StartDate.IsZero() {
		t.StartDate = t.Date
	}
	if t.EndDate.IsZero() {
		t.EndDate = t.Date
	}
	if t.EstimationDate.IsZero() {
		t.EstimationDate = t.Date
	}
}

func (t Task) Validate() error {
	if strings.TrimSpace(t.ID) == "" {
		return fmt.Errorf("id is required")
	}
	if strings.TrimSpace(t.Title) == "" {
		return fmt.Errorf("title is required")
	}
	if t.Date.IsZero() {
		return fmt.Errorf("date is required")
	}
	if t.StartDate.IsZero() || t.EndDate.IsZero() || t.EstimationDate.IsZero() {
		return fmt.Errorf("task %q is not normalized", t.ID)
	}
	if t.EndDate.Before(t.StartDate.Time) {
		return fmt.Errorf("start date cannot be after end date")
	}
	if t.Hours < 0 {
		return fmt.Errorf("hours must be non-negative")
	}
	if t.EstimationHours < 0 {
		return fmt.Errorf("estimation hours must be non-negative")
	}
	return nil
}

// InMonth reports whether the task's date falls in the given calendar
// month-of-year, regardless of year. Year-agnostic grouping is the
// documented reporting behavior.
func (t Task) InMonth(month time.Month) bool {
	return t.Date.Month() == month
}
