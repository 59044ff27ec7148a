package domain_test

import (
	"math"
	"testing"
	"time"

	"hourly/internal/modules/report/domain"
	"hourly/internal/platform/day"
)

func entry(d day.Day, hours, estimation float64, billable, completed bool) domain.Entry {
	return domain.Entry{
		Title:           "work on " + d.String(),
		Client:          "Acme",
		Date:            d,
		StartDate:       d,
		EndDate:         d,
		Hours:           hours,
		EstimationDate:  d,
		EstimationHours: estimation,
		Billable:        billable,
		Completed:       completed,
	}
}

func TestWeekRangeRunsSundayThroughSaturday(t *testing.T) {
	t.Parallel()
	// 2026-04-08 is a Wednesday; its week is Sunday the 5th through
	// Saturday the 11th.
	ref := time.Date(2026, 4, 8, 15, 30, 0, 0, time.Local)
	start, end := domain.WeekRange(ref)

	if start.Weekday() != time.Sunday {
		t.Fatalf("week must start on Sunday, got %s", start.Weekday())
	}
	if !start.Equal(time.Date(2026, 4, 5, 0, 0, 0, 0, time.Local)) {
		t.Fatalf("expected Sunday midnight, got %v", start)
	}
	if !end.Equal(time.Date(2026, 4, 11, 23, 59, 59, 999000000, time.Local)) {
		t.Fatalf("expected Saturday end of day, got %v", end)
	}

	// A Sunday reference is its own week start.
	sunStart, _ := domain.WeekRange(time.Date(2026, 4, 5, 8, 0, 0, 0, time.Local))
	if !sunStart.Equal(start) {
		t.Fatalf("Sunday must anchor its own week, got %v", sunStart)
	}
}

func TestWeekPartitionKeepsBoundaryDaysAndOrder(t *testing.T) {
	t.Parallel()
	start, end := domain.WeekRange(time.Date(2026, 4, 8, 12, 0, 0, 0, time.Local))
	entries := []domain.Entry{
		entry(day.New(2026, time.April, 11), 1, 1, false, false), // Saturday, in
		entry(day.New(2026, time.April, 5), 2, 2, false, false),  // Sunday, in
		entry(day.New(2026, time.April, 4), 3, 3, false, false),  // prior Saturday, out
		entry(day.New(2026, time.April, 12), 4, 4, false, false), // next Sunday, out
	}
	subset := domain.WeekPartition(entries, start, end)
	if len(subset) != 2 {
		t.Fatalf("expected the two boundary days, got %d entries", len(subset))
	}
	if !subset[0].Date.Equal(day.New(2026, time.April, 11).Time) || !subset[1].Date.Equal(day.New(2026, time.April, 5).Time) {
		t.Fatalf("partition must preserve input order, got %+v", subset)
	}
}

func TestMonthPartitionMergesYears(t *testing.T) {
	t.Parallel()
	entries := []domain.Entry{
		entry(day.New(2026, time.March, 28), 1, 1, false, false),
		entry(day.New(2024, time.March, 3), 2, 2, false, false),
		entry(day.New(2026, time.April, 1), 3, 3, false, false),
	}
	march := domain.MonthPartition(entries, time.March)
	if len(march) != 2 {
		t.Fatalf("march must merge across years, got %d entries", len(march))
	}
	if len(domain.MonthPartition(entries, time.December)) != 0 {
		t.Fatalf("december has no entries")
	}
}

func TestSummarizeSplitsHoursByBillingStatus(t *testing.T) {
	t.Parallel()
	entries := []domain.Entry{
		entry(day.New(2026, time.April, 6), 4, 5, true, true),
		entry(day.New(2026, time.April, 7), 3, 3, true, false),
		entry(day.New(2026, time.April, 8), 3, 3, false, true),
	}
	agg := domain.Summarize(entries)
	if agg.TotalTasks != 3 || agg.Completed != 2 {
		t.Fatalf("expected 3 tasks with 2 completed, got %+v", agg)
	}
	if agg.TotalHours != 10 || agg.TotalEstimationHours != 11 {
		t.Fatalf("expected 10h actual and 11h estimated, got %+v", agg)
	}
	if agg.BillableHours != 7 || agg.NonBillableHours != 3 {
		t.Fatalf("expected 7h billable and 3h non-billable, got %+v", agg)
	}
	if agg.BillableHours+agg.NonBillableHours != agg.TotalHours {
		t.Fatalf("billing split must cover all hours, got %+v", agg)
	}
}

// Summaries of disjoint subsets add up to the summary of their union, so
// per-scope reports never disagree with the full collection.
func TestSummarizeIsAdditiveOverPartitions(t *testing.T) {
	t.Parallel()
	a := []domain.Entry{
		entry(day.New(2026, time.April, 6), 1.25, 2, true, true),
		entry(day.New(2026, time.April, 7), 0.5, 0.5, false, false),
	}
	b := []domain.Entry{
		entry(day.New(2026, time.May, 1), 7.75, 6, true, false),
	}
	union := domain.Summarize(append(append([]domain.Entry{}, a...), b...))
	partA, partB := domain.Summarize(a), domain.Summarize(b)

	if union.TotalTasks != partA.TotalTasks+partB.TotalTasks {
		t.Fatalf("task counts must add, got %+v vs %+v + %+v", union, partA, partB)
	}
	if union.Completed != partA.Completed+partB.Completed {
		t.Fatalf("completed counts must add")
	}
	for name, pair := range map[string][2]float64{
		"total hours":      {union.TotalHours, partA.TotalHours + partB.TotalHours},
		"estimation hours": {union.TotalEstimationHours, partA.TotalEstimationHours + partB.TotalEstimationHours},
		"billable":         {union.BillableHours, partA.BillableHours + partB.BillableHours},
		"non-billable":     {union.NonBillableHours, partA.NonBillableHours + partB.NonBillableHours},
	} {
		if math.Abs(pair[0]-pair[1]) > 1e-9 {
			t.Fatalf("%s must add, got %.6f vs %.6f", name, pair[0], pair[1])
		}
	}
}

func TestSummarizeEmptySubsetIsZero(t *testing.T) {
	t.Parallel()
	if agg := domain.Summarize(nil); agg != (domain.Aggregate{}) {
		t.Fatalf("empty subset must summarize to zero, got %+v", agg)
	}
}
