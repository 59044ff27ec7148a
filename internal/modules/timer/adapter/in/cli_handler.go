package in

import (
	"context"

	"hourly/internal/modules/timer/dto"
	timerin "hourly/internal/modules/timer/port/in"
)

type CLIHandler struct {
	usecase timerin.Usecase
}

func NewCLIHandler(usecase timerin.Usecase) CLIHandler {
	return CLIHandler{usecase: usecase}
}

func (h CLIHandler) Start(ctx context.Context, taskName, client string, billable bool) (dto.StartOutput, error) {
	return h.usecase.Start(ctx, dto.StartInput{TaskName: taskName, Client: client, Billable: billable})
}

func (h CLIHandler) Stop(ctx context.Context) (dto.StopOutput, error) {
	return h.usecase.Stop(ctx)
}

func (h CLIHandler) Reset(ctx context.Context) (dto.ResetOutput, error) {
	return h.usecase.Reset(ctx)
}

func (h CLIHandler) Status(ctx context.Context) (dto.StatusOutput, error) {
	return h.usecase.Status(ctx)
}
