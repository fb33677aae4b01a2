package in

import (
	"context"

	"timearena/internal/modules/catalog/dto"
)

type Usecase interface {
	ListMissions(ctx context.Context) ([]dto.MissionOutput, error)
	GetMission(ctx context.Context, id string) (dto.MissionOutput, error)
	ListPenalties(ctx context.Context) ([]dto.PenaltyOutput, error)
	ResolvePenalty(ctx context.Context, key string) (dto.PenaltyOutput, error)
	ListQuests(ctx context.Context) ([]dto.QuestOutput, error)
	ListShop(ctx context.Context) ([]dto.ShopItemOutput, error)
	GetRules(ctx context.Context) (dto.RulesOutput, error)
}
