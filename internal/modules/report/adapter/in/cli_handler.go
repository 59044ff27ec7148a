package in

import (
	"context"
	"time"

	"hourly/internal/modules/report/dto"
	reportin "hourly/internal/modules/report/port/in"
)

type CLIHandler struct {
	usecase reportin.Usecase
}

func NewCLIHandler(usecase reportin.Usecase) CLIHandler {
	return CLIHandler{usecase: usecase}
}

func (h CLIHandler) Weekly(ctx context.Context, ref time.Time) (dto.ReportOutput, error) {
	return h.usecase.Weekly(ctx, ref)
}

func (h CLIHandler) Monthly(ctx context.Context, month time.Month) (dto.ReportOutput, error) {
	return h.usecase.Monthly(ctx, month)
}
