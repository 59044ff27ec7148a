package in

import (
	"context"
	"time"

	"hourly/internal/modules/export/dto"
	exportin "hourly/internal/modules/export/port/in"
)

type CLIHandler struct {
	usecase exportin.Usecase
}

func NewCLIHandler(usecase exportin.Usecase) CLIHandler {
	return CLIHandler{usecase: usecase}
}

func (h CLIHandler) ExportWeekly(ctx context.Context, ref time.Time) (dto.ExportOutput, error) {
	return h.usecase.ExportWeekly(ctx, ref)
}

func (h CLIHandler) ExportMonthly(ctx context.Context, month time.Month) (dto.ExportOutput, error) {
	return h.usecase.ExportMonthly(ctx, month)
}
