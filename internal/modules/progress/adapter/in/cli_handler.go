package in

import (
	"context"

	progressdto "timearena/internal/modules/progress/dto"
	progressin "timearena/internal/modules/progress/port/in"
)

type CLIHandler struct {
	usecase progressin.Usecase
}

func NewCLIHandler(usecase progressin.Usecase) CLIHandler {
	return CLIHandler{usecase: usecase}
}

func (h CLIHandler) Rollover(ctx context.Context) (progressdto.RolloverOutput, error) {
	return h.usecase.Rollover(ctx)
}

func (h CLIHandler) Status(ctx context.Context) (progressdto.StatusOutput, error) {
	return h.usecase.Status(ctx)
}

func (h CLIHandler) CompleteMission(ctx context.Context, missionID string) (progressdto.CompleteMissionOutput, error) {
	return h.usecase.CompleteMission(ctx, progressdto.CompleteMissionInput{MissionID: missionID})
}

func (h CLIHandler) CompleteFreeText(ctx context.Context, title, reward string) (progressdto.CompleteMissionOutput, error) {
	return h.usecase.CompleteMission(ctx, progressdto.CompleteMissionInput{Title: title, Reward: reward})
}

func (h CLIHandler) ApplyPenalty(ctx context.Context, penalty string) (progressdto.ApplyPenaltyOutput, error) {
	return h.usecase.ApplyPenalty(ctx, progressdto.ApplyPenaltyInput{Penalty: penalty})
}

func (h CLIHandler) History(ctx context.Context, limit int) ([]progressdto.EventOutput, error) {
	return h.usecase.History(ctx, limit)
}

func (h CLIHandler) ResetDay(ctx context.Context) (progressdto.StatusOutput, error) {
	return h.usecase.ResetDay(ctx)
}

func (h CLIHandler) ToggleTheme(ctx context.Context) (string, error) {
	return h.usecase.ToggleTheme(ctx)
}

func (h CLIHandler) SetUserName(ctx context.Context, name string) (progressdto.StatusOutput, error) {
	return h.usecase.SetUserName(ctx, name)
}
