package in

import (
	"context"

	"hourly/internal/modules/timer/dto"
)

type Usecase interface {
	Start(ctx context.Context, input dto.StartInput) (dto.StartOutput, error)
	Stop(ctx context.Context) (dto.StopOutput, error)
	Reset(ctx context.Context) (dto.ResetOutput, error)
	Status(ctx context.Context) (dto.StatusOutput, error)
}
