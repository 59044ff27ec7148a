package usecase

import (
	"context"
	"fmt"
	"time"

	exportdomain "hourly/internal/modules/export/domain"
	"hourly/internal/modules/export/dto"
	exportin "hourly/internal/modules/export/port/in"
	exportout "hourly/internal/modules/export/port/out"
	reportin "hourly/internal/modules/report/port/in"
	apperrors "hourly/internal/platform/errors"
)

type Interactor struct {
	reports  reportin.Usecase
	delivery exportout.Delivery
}

func NewInteractor(reports reportin.Usecase, delivery exportout.Delivery) exportin.Usecase {
	return &Interactor{reports: reports, delivery: delivery}
}

func (i *Interactor) ExportWeekly(ctx context.Context, ref time.Time) (dto.ExportOutput, error) {
	report, err := i.reports.Weekly(ctx, ref)
	if err != nil {
		return dto.ExportOutput{}, err
	}
	if len(report.Entries) == 0 {
		return dto.ExportOutput{}, fmt.Errorf("%w: no tasks in this week", apperrors.ErrNotFound)
	}
	name := exportdomain.WeeklyFileName(report.WeekStart)
	return i.deliver(ctx, name, exportdomain.WeeklyDocument(report), len(report.Entries))
}

func (i *Interactor) ExportMonthly(ctx context.Context, month time.Month) (dto.ExportOutput, error) {
	report, err := i.reports.Monthly(ctx, month)
	if err != nil {
		return dto.ExportOutput{}, err
	}
	if len(report.Entries) == 0 {
		return dto.ExportOutput{}, fmt.Errorf("%w: no tasks in %s", apperrors.ErrNotFound, report.MonthName)
	}
	name := exportdomain.MonthlyFileName(month)
	return i.deliver(ctx, name, exportdomain.MonthlyDocument(report), len(report.Entries))
}

func (i *Interactor) deliver(ctx context.Context, name string, rows [][]string, taskCount int) (dto.ExportOutput, error) {
	payload := []byte(exportdomain.Render(rows))
	path, err := i.delivery.Deliver(ctx, name, exportdomain.MIMEType, payload)
	if err != nil {
		return dto.ExportOutput{}, err
	}
	return dto.ExportOutput{Name: name, Path: path, TaskCount: taskCount}, nil
}
