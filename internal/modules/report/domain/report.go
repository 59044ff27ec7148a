package domain

import (
	"time"

	"hourly/internal/platform/day"
)

// Entry is the reporting view of a recorded task: fully-populated, in
// repository order (most recent first).
type Entry struct {
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

// Aggregate is the six-field summary over a task subset. A zero Aggregate
// is also the summary of an empty subset; callers distinguish "no data"
// by subset emptiness.
type Aggregate struct {
	TotalTasks           int
	Completed            int
	TotalHours           float64
	TotalEstimationHours float64
	BillableHours        float64
	NonBillableHours     float64
}

// Summarize accumulates in collection order with no intermediate rounding;
// two-decimal formatting happens only at display and export time.
func Summarize(entries []Entry) Aggregate {
	agg := Aggregate{}
	for _, e := range entries {
		agg.TotalTasks++
		if e.Completed {
			agg.Completed++
		}
		agg.TotalHours += e.Hours
		agg.TotalEstimationHours += e.EstimationHours
		if e.Billable {
			agg.BillableHours += e.Hours
		} else {
			agg.NonBillableHours += e.Hours
		}
	}
	return agg
}

// WeekRange returns the Sunday-to-Saturday local-calendar window holding
// the reference instant: the most recent Sunday at local midnight on or
// before ref's local day, through start+6d at local end-of-day.
func WeekRange(ref time.Time) (start, end time.Time) {
	local := ref.Local()
	midnight := time.Date(local.Year(), local.Month(), local.Day(), 0, 0, 0, 0, time.Local)
	start = midnight.AddDate(0, 0, -int(midnight.Weekday()))
	end = start.AddDate(0, 0, 6).Add(24*time.Hour - time.Millisecond)
	return start, end
}

// InWeek reports whether the entry's date falls inside [start, end].
func InWeek(e Entry, start, end time.Time) bool {
	d := e.Date.Time
	return !d.Before(start) && !d.After(end)
}

// WeekPartition keeps the entries dated within the window, order preserved.
func WeekPartition(entries []Entry, start, end time.Time) []Entry {
	subset := []Entry{}
	for _, e := range entries {
		if InWeek(e, start, end) {
			subset = append(subset, e)
		}
	}
	return subset
}

// MonthPartition groups by calendar month-of-year only, ignoring the year.
// Tasks from different years in the same month are merged; this mirrors
// the recorded reporting behavior and is intentional.
func MonthPartition(entries []Entry, month time.Month) []Entry {
	subset := []Entry{}
	for _, e := range entries {
		if e.Date.Month() == month {
			subset = append(subset, e)
		}
	}
	return subset
}
