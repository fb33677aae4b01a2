package in

import (
	"context"

	catalogdto "timearena/internal/modules/catalog/dto"
	catalogin "timearena/internal/modules/catalog/port/in"
)

type CLIHandler struct {
	usecase catalogin.Usecase
}

func NewCLIHandler(usecase catalogin.Usecase) CLIHandler {
	return CLIHandler{usecase: usecase}
}

func (h CLIHandler) ListMissions(ctx context.Context) ([]catalogdto.MissionOutput, error) {
	return h.usecase.ListMissions(ctx)
}

func (h CLIHandler) ListPenalties(ctx context.Context) ([]catalogdto.PenaltyOutput, error) {
	return h.usecase.ListPenalties(ctx)
}

func (h CLIHandler) ListQuests(ctx context.Context) ([]catalogdto.QuestOutput, error) {
	return h.usecase.ListQuests(ctx)
}

func (h CLIHandler) ListShop(ctx context.Context) ([]catalogdto.ShopItemOutput, error) {
	return h.usecase.ListShop(ctx)
}

func (h CLIHandler) Rules(ctx context.Context) (catalogdto.RulesOutput, error) {
	return h.usecase.GetRules(ctx)
}
