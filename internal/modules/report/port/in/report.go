package in

import (
	"context"
	"time"

	"hourly/internal/modules/report/dto"
)

type Usecase interface {
	Weekly(ctx context.Context, ref time.Time) (dto.ReportOutput, error)
	Monthly(ctx context.Context, month time.Month) (dto.ReportOutput, error)
}
