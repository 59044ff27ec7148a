package dto

import (
	"time"

	"hourly/internal/platform/day"
)

type EntryOutput struct {
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
}

type AggregateOutput struct {
	TotalTasks           int
	Completed            int
	TotalHours           float64
	TotalEstimationHours float64
	BillableHours        float64
	NonBillableHours     float64
}

// ReportOutput carries the selected subset plus its summary. Exactly one
// of the week bounds or the month scope is populated.
type ReportOutput struct {
	WeekStart time.Time
	WeekEnd   time.Time
	Month     time.Month
	MonthName string
	Entries   []EntryOutput
	Totals    AggregateOutput
}
