package in

import (
	"context"

	"timearena/internal/modules/progress/dto"
)

type Usecase interface {
	Rollover(ctx context.Context) (dto.RolloverOutput, error)
	Status(ctx context.Context) (dto.StatusOutput, error)
	CompleteMission(ctx context.Context, input dto.CompleteMissionInput) (dto.CompleteMissionOutput, error)
	ApplyPenalty(ctx context.Context, input dto.ApplyPenaltyInput) (dto.ApplyPenaltyOutput, error)
	History(ctx context.Context, limit int) ([]dto.EventOutput, error)
	ResetDay(ctx context.Context) (dto.StatusOutput, error)
	ToggleTheme(ctx context.Context) (string, error)
	SetUserName(ctx context.Context, name string) (dto.StatusOutput, error)
}
