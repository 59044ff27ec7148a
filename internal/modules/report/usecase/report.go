package usecase

import (
	"context"
	"time"

	reportdomain "hourly/internal/modules/report/domain"
	"hourly/internal/modules/report/dto"
	reportin "hourly/internal/modules/report/port/in"
	taskdto "hourly/internal/modules/task/dto"
	taskin "hourly/internal/modules/task/port/in"
)

type Interactor struct {
	tasks taskin.Usecase
}

func NewInteractor(tasks taskin.Usecase) reportin.Usecase {
	return &Interactor{tasks: tasks}
}

func (i *Interactor) Weekly(ctx context.Context, ref time.Time) (dto.ReportOutput, error) {
	tasks, err := i.tasks.List(ctx)
	if err != nil {
		return dto.ReportOutput{}, err
	}
	start, end := reportdomain.WeekRange(ref)
	subset := reportdomain.WeekPartition(toEntries(tasks), start, end)
	return dto.ReportOutput{
		WeekStart: start,
		WeekEnd:   end,
		Entries:   toEntryOutputs(subset),
		Totals:    toAggregateOutput(reportdomain.Summarize(subset)),
	}, nil
}

func (i *Interactor) Monthly(ctx context.Context, month time.Month) (dto.ReportOutput, error) {
	// The month partition is served by the task index, which stores the
	// same year-agnostic month attribution the report domain defines.
	tasks, err := i.tasks.ListMonth(ctx, month)
	if err != nil {
		return dto.ReportOutput{}, err
	}
	subset := toEntries(tasks)
	return dto.ReportOutput{
		Month:     month,
		MonthName: month.String(),
		Entries:   toEntryOutputs(subset),
		Totals:    toAggregateOutput(reportdomain.Summarize(subset)),
	}, nil
}

func toEntries(tasks []taskdto.TaskOutput) []reportdomain.Entry {
	entries := make([]reportdomain.Entry, 0, len(tasks))
	for _, t := range tasks {
		entries = append(entries, reportdomain.Entry{
			Title:           t.Title,
			Client:          t.Client,
			Date:            t.Date,
			StartDate:       t.StartDate,
			EndDate:         t.EndDate,
			Hours:           t.Hours,
			EstimationDate:  t.EstimationDate,
			EstimationHours: t.EstimationHours,
			Notes:           t.Notes,
			Billable:        t.Billable,
			Completed:       t.Completed,
		})
	}
	return entries
}

func toEntryOutputs(entries []reportdomain.Entry) []dto.EntryOutput {
	out := make([]dto.EntryOutput, 0, len(entries))
	for _, e := range entries {
		out = append(out, dto.EntryOutput(e))
	}
	return out
}

func toAggregateOutput(agg reportdomain.Aggregate) dto.AggregateOutput {
	return dto.AggregateOutput(agg)
}
