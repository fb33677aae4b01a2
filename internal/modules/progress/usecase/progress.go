package usecase

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/sirupsen/logrus"

	catalogdto "timearena/internal/modules/catalog/dto"
	catalogin "timearena/internal/modules/catalog/port/in"
	"timearena/internal/modules/progress/domain"
	progressdto "timearena/internal/modules/progress/dto"
	progressin "timearena/internal/modules/progress/port/in"
	"timearena/internal/modules/progress/service"
	apperrors "timearena/internal/platform/errors"
)

type Interactor struct {
	svc     *service.ProgressService
	catalog catalogin.Usecase
	log     logrus.FieldLogger
}

func NewInteractor(svc *service.ProgressService, catalog catalogin.Usecase, log logrus.FieldLogger) progressin.Usecase {
	return &Interactor{svc: svc, catalog: catalog, log: log}
}

func (i *Interactor) Rollover(ctx context.Context) (progressdto.RolloverOutput, error) {
	changed := false
	rec, _, err := i.svc.Update(ctx, func(rec *domain.Record, now time.Time) (bool, error) {
		changed = rec.Rollover(now)
		return changed, nil
	})
	if err != nil {
		return progressdto.RolloverOutput{}, err
	}
	if changed {
		i.log.WithFields(logrus.Fields{"day": rec.LastSeenDayKey, "streak": rec.Streak}).Info("new day")
	}
	return progressdto.RolloverOutput{Changed: changed, Streak: rec.Streak, DayKey: rec.LastSeenDayKey}, nil
}

func (i *Interactor) Status(ctx context.Context) (progressdto.StatusOutput, error) {
	rec, now, err := i.svc.Update(ctx, nil)
	if err != nil {
		return progressdto.StatusOutput{}, err
	}
	return toStatus(rec, now), nil
}

func (i *Interactor) CompleteMission(ctx context.Context, input progressdto.CompleteMissionInput) (progressdto.CompleteMissionOutput, error) {
	title, rewardText, reward, err := i.resolveMission(ctx, input)
	if err != nil {
		return progressdto.CompleteMissionOutput{}, err
	}

	result := domain.RewardResult{}
	rec, now, err := i.svc.Update(ctx, func(rec *domain.Record, now time.Time) (bool, error) {
		if !rec.GuardReward(title, now) {
			return true, fmt.Errorf("mission %q: %w", title, apperrors.ErrBlocked)
		}
		result = rec.ApplyReward(reward, title, rewardText, now)
		return true, nil
	})
	if err != nil {
		if rec.ActiveBan != nil {
			i.log.WithFields(logrus.Fields{"mission": title, "ban": rec.ActiveBan.Name}).Warn("reward blocked")
		}
		return progressdto.CompleteMissionOutput{}, err
	}
	return progressdto.CompleteMissionOutput{
		Title:        title,
		Reward:       rewardText,
		MinutesAdded: result.MinutesAdded,
		XPAdded:      result.XPAdded,
		ImplicitXP:   result.ImplicitXP,
		Status:       toStatus(rec, now),
	}, nil
}

func (i *Interactor) resolveMission(ctx context.Context, input progressdto.CompleteMissionInput) (string, string, domain.Reward, error) {
	if strings.TrimSpace(input.MissionID) == "" {
		if strings.TrimSpace(input.Title) == "" {
			return "", "", domain.Reward{}, fmt.Errorf("%w: mission id or title is required", apperrors.ErrInvalidInput)
		}
		return input.Title, input.Reward, domain.ParseReward(input.Reward), nil
	}
	if i.catalog == nil {
		return "", "", domain.Reward{}, fmt.Errorf("catalog usecase is not configured")
	}
	mission, err := i.catalog.GetMission(ctx, input.MissionID)
	if err != nil {
		return "", "", domain.Reward{}, err
	}
	if len(mission.Effects) == 0 {
		return mission.Title, mission.Reward, domain.ParseReward(mission.Reward), nil
	}
	return mission.Title, mission.Reward, toReward(mission.Effects), nil
}

func (i *Interactor) ApplyPenalty(ctx context.Context, input progressdto.ApplyPenaltyInput) (progressdto.ApplyPenaltyOutput, error) {
	if i.catalog == nil {
		return progressdto.ApplyPenaltyOutput{}, fmt.Errorf("catalog usecase is not configured")
	}
	penalty, err := i.catalog.ResolvePenalty(ctx, input.Penalty)
	if err != nil {
		return progressdto.ApplyPenaltyOutput{}, err
	}

	result := domain.PenaltyResult{}
	rec, now, err := i.svc.Update(ctx, func(rec *domain.Record, now time.Time) (bool, error) {
		result = rec.ApplyPenalty(domain.Penalty{
			Name:            penalty.Name,
			Level:           penalty.Level,
			DurationSeconds: penalty.DurationSeconds,
			Desc:            penalty.Desc,
		}, now)
		return true, nil
	})
	if err != nil {
		return progressdto.ApplyPenaltyOutput{}, err
	}

	out := progressdto.ApplyPenaltyOutput{
		PenaltyID:      penalty.ID,
		PenaltyName:    penalty.Name,
		Level:          penalty.Level,
		MinutesDebited: result.MinutesDebited,
		Status:         toStatus(rec, now),
	}
	if result.Ban != nil {
		out.Ban = toBan(rec, now)
		i.log.WithFields(logrus.Fields{"ban": penalty.Name, "ends_at": out.Ban.EndsAt.Format(time.RFC3339)}).Info("ban installed")
	}
	return out, nil
}

func (i *Interactor) History(ctx context.Context, limit int) ([]progressdto.EventOutput, error) {
	rec, _, err := i.svc.Update(ctx, nil)
	if err != nil {
		return nil, err
	}
	events := rec.History
	if limit > 0 && limit < len(events) {
		events = events[:limit]
	}
	out := make([]progressdto.EventOutput, 0, len(events))
	for _, e := range events {
		out = append(out, progressdto.EventOutput{At: e.Time(), Kind: string(e.Kind), Title: e.Title, Details: e.Details})
	}
	return out, nil
}

func (i *Interactor) ResetDay(ctx context.Context) (progressdto.StatusOutput, error) {
	rec, now, err := i.svc.Update(ctx, func(rec *domain.Record, now time.Time) (bool, error) {
		rec.ResetDay(now)
		return true, nil
	})
	if err != nil {
		return progressdto.StatusOutput{}, err
	}
	return toStatus(rec, now), nil
}

func (i *Interactor) ToggleTheme(ctx context.Context) (string, error) {
	rec, _, err := i.svc.Update(ctx, func(rec *domain.Record, _ time.Time) (bool, error) {
		rec.ToggleTheme()
		return true, nil
	})
	if err != nil {
		return "", err
	}
	return rec.Theme, nil
}

func (i *Interactor) SetUserName(ctx context.Context, name string) (progressdto.StatusOutput, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return progressdto.StatusOutput{}, fmt.Errorf("%w: user name is required", apperrors.ErrInvalidInput)
	}
	rec, now, err := i.svc.Update(ctx, func(rec *domain.Record, _ time.Time) (bool, error) {
		rec.UserName = name
		return true, nil
	})
	if err != nil {
		return progressdto.StatusOutput{}, err
	}
	return toStatus(rec, now), nil
}

func toReward(effects []catalogdto.EffectOutput) domain.Reward {
	reward := domain.Reward{Effects: make([]domain.Effect, 0, len(effects))}
	for _, e := range effects {
		reward.Effects = append(reward.Effects, domain.Effect{Kind: domain.EffectKind(e.Kind), Amount: e.Amount})
	}
	return reward
}

func toStatus(rec domain.Record, now time.Time) progressdto.StatusOutput {
	out := progressdto.StatusOutput{
		UserName:        rec.UserName,
		Theme:           rec.Theme,
		Greeting:        domain.DailyMessage(now, rec.Streak),
		MinutesMax:      rec.MinutesMax,
		MinutesEarned:   rec.MinutesEarned,
		MinutesLocked:   rec.LockedMinutes(),
		ProgressPercent: rec.ProgressPercent(),
		XP:              rec.XP,
		Level:           domain.LevelForXP(rec.XP),
		Streak:          rec.Streak,
		LastSeenDayKey:  rec.LastSeenDayKey,
		At:              now,
	}
	out.Ban = toBan(rec, now)
	return out
}

// toBan maps the active ban, nil when none applies at now.
func toBan(rec domain.Record, now time.Time) *progressdto.BanOutput {
	if !rec.BanActive(now) {
		return nil
	}
	ban := rec.ActiveBan
	remaining := rec.BanRemaining(now)
	return &progressdto.BanOutput{
		Level:            ban.Level,
		Name:             ban.Name,
		EndsAt:           ban.EndsAt(),
		Remaining:        remaining,
		RemainingSeconds: int64(remaining / time.Second),
	}
}
