package dto

import (
	"time"

	"hourly/internal/platform/day"
)

type AddInput struct {
	Title          string
	Client         string
	Date           day.Day
	StartDate      day.Day
	EndDate        day.Day
	Hours          float64
	EstimationDate day.Day
	// EstimationHours is nil when the caller supplied no estimate; the
	// usecase resolves it to Hours.
	EstimationHours *float64
	Notes           string
	Billable        bool
}

type ClearInput struct {
	// Month limits the clear to tasks in this month-of-year when set.
	Month *time.Month
}

type ClearOutput struct {
	Removed int
}

type TaskOutput struct {
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
