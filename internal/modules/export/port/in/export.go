package in

import (
	"context"
	"time"

	"hourly/internal/modules/export/dto"
)

type Usecase interface {
	ExportWeekly(ctx context.Context, ref time.Time) (dto.ExportOutput, error)
	ExportMonthly(ctx context.Context, month time.Month) (dto.ExportOutput, error)
}
