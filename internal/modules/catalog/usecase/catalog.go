package usecase

import (
	"context"
	"fmt"
	"strings"

	"timearena/internal/modules/catalog/domain"
	catalogdto "timearena/internal/modules/catalog/dto"
	catalogin "timearena/internal/modules/catalog/port/in"
	"timearena/internal/modules/catalog/service"
	apperrors "timearena/internal/platform/errors"
)

type Interactor struct {
	svc *service.CatalogService
}

func NewInteractor(svc *service.CatalogService) catalogin.Usecase {
	return &Interactor{svc: svc}
}

func (i *Interactor) ListMissions(ctx context.Context) ([]catalogdto.MissionOutput, error) {
	c, err := i.svc.Catalog(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]catalogdto.MissionOutput, 0, len(c.Missions))
	for _, m := range c.Missions {
		out = append(out, toMissionOutput(m))
	}
	return out, nil
}

func (i *Interactor) GetMission(ctx context.Context, id string) (catalogdto.MissionOutput, error) {
	if strings.TrimSpace(id) == "" {
		return catalogdto.MissionOutput{}, fmt.Errorf("%w: mission id is required", apperrors.ErrInvalidInput)
	}
	c, err := i.svc.Catalog(ctx)
	if err != nil {
		return catalogdto.MissionOutput{}, err
	}
	m, ok := c.FindMission(id)
	if !ok {
		return catalogdto.MissionOutput{}, fmt.Errorf("mission %q: %w", id, apperrors.ErrNotFound)
	}
	return toMissionOutput(m), nil
}

func (i *Interactor) ListPenalties(ctx context.Context) ([]catalogdto.PenaltyOutput, error) {
	c, err := i.svc.Catalog(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]catalogdto.PenaltyOutput, 0, len(c.Penalties))
	for _, p := range c.Penalties {
		out = append(out, toPenaltyOutput(p))
	}
	return out, nil
}

func (i *Interactor) ResolvePenalty(ctx context.Context, key string) (catalogdto.PenaltyOutput, error) {
	if strings.TrimSpace(key) == "" {
		return catalogdto.PenaltyOutput{}, fmt.Errorf("%w: penalty name is required", apperrors.ErrInvalidInput)
	}
	c, err := i.svc.Catalog(ctx)
	if err != nil {
		return catalogdto.PenaltyOutput{}, err
	}
	p, ok := c.ResolvePenalty(key)
	if !ok {
		return catalogdto.PenaltyOutput{}, fmt.Errorf("penalty %q: %w", key, apperrors.ErrNotFound)
	}
	return toPenaltyOutput(p), nil
}

func (i *Interactor) ListQuests(ctx context.Context) ([]catalogdto.QuestOutput, error) {
	c, err := i.svc.Catalog(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]catalogdto.QuestOutput, 0, len(c.Quests))
	for _, q := range c.Quests {
		out = append(out, catalogdto.QuestOutput{ID: q.ID, Kind: string(q.Kind), Title: q.Title, Desc: q.Desc})
	}
	return out, nil
}

func (i *Interactor) ListShop(ctx context.Context) ([]catalogdto.ShopItemOutput, error) {
	c, err := i.svc.Catalog(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]catalogdto.ShopItemOutput, 0, len(c.Shop))
	for _, item := range c.Shop {
		out = append(out, catalogdto.ShopItemOutput{ID: item.ID, Title: item.Title, CostMinutes: item.CostMinutes, Desc: item.Desc})
	}
	return out, nil
}

func (i *Interactor) GetRules(ctx context.Context) (catalogdto.RulesOutput, error) {
	c, err := i.svc.Catalog(ctx)
	if err != nil {
		return catalogdto.RulesOutput{}, err
	}
	return catalogdto.RulesOutput{Title: c.Rules.Title, Body: c.Rules.Body}, nil
}

func toMissionOutput(m domain.Mission) catalogdto.MissionOutput {
	effects := make([]catalogdto.EffectOutput, 0, len(m.Effects))
	for _, e := range m.Effects {
		effects = append(effects, catalogdto.EffectOutput{Kind: e.Kind, Amount: e.Amount})
	}
	return catalogdto.MissionOutput{ID: m.ID, Title: m.Title, Reward: m.Reward, Effects: effects}
}

func toPenaltyOutput(p domain.Penalty) catalogdto.PenaltyOutput {
	return catalogdto.PenaltyOutput{ID: p.ID, Name: p.Name, Level: p.Level, DurationSeconds: p.DurationSeconds, Desc: p.Desc}
}
