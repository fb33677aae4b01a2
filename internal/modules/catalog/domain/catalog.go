package domain

import (
	"fmt"
	"strings"

	apperrors "timearena/internal/platform/errors"
	"timearena/internal/platform/slug"
)

type Effect struct {
	Kind   string `yaml:"kind"`
	Amount int    `yaml:"amount"`
}

type Mission struct {
	ID      string   `yaml:"id"`
	Title   string   `yaml:"title"`
	Reward  string   `yaml:"reward"`
	Effects []Effect `yaml:"effects"`
}

type Penalty struct {
	ID              string `yaml:"id"`
	Name            string `yaml:"name"`
	Level           int    `yaml:"level"`
	DurationSeconds int    `yaml:"durationSeconds"`
	Desc            string `yaml:"desc"`
}

type QuestKind string

const (
	QuestBanRedemption QuestKind = "ban_redemption"
	QuestReentry       QuestKind = "reentry"
	QuestSystemBreach  QuestKind = "system_breach"
)

func (k QuestKind) Valid() bool {
	switch k {
	case QuestBanRedemption, QuestReentry, QuestSystemBreach:
		return true
	default:
		return false
	}
}

// Quest is a special penalty-side quest shown next to the penalty ladder.
type Quest struct {
	ID    string    `yaml:"id"`
	Kind  QuestKind `yaml:"kind"`
	Title string    `yaml:"title"`
	Desc  string    `yaml:"desc"`
}

type ShopItem struct {
	ID          string `yaml:"id"`
	Title       string `yaml:"title"`
	CostMinutes int    `yaml:"costMinutes"`
	Desc        string `yaml:"desc"`
}

type Rules struct {
	Title string
	Body  string
}

type Catalog struct {
	Missions  []Mission  `yaml:"missions"`
	Penalties []Penalty  `yaml:"penalties"`
	Quests    []Quest    `yaml:"quests"`
	Shop      []ShopItem `yaml:"shop"`
	Rules     Rules      `yaml:"-"`
}

// Normalize derives missing ids from names and rejects entries the engine
// cannot use.
func (c *Catalog) Normalize() error {
	missionIDs := map[string]bool{}
	for i := range c.Missions {
		m := &c.Missions[i]
		if strings.TrimSpace(m.Title) == "" {
			return fmt.Errorf("%w: mission %d has no title", apperrors.ErrInvalidInput, i)
		}
		if m.ID == "" {
			m.ID = slug.Make(m.Title)
		}
		if err := claim(missionIDs, "mission", m.ID); err != nil {
			return err
		}
		for _, e := range m.Effects {
			if e.Kind != "minutes" && e.Kind != "xp" {
				return fmt.Errorf("%w: mission %s has unknown effect kind %q", apperrors.ErrInvalidInput, m.ID, e.Kind)
			}
			if e.Amount < 0 {
				return fmt.Errorf("%w: mission %s has negative %s amount", apperrors.ErrInvalidInput, m.ID, e.Kind)
			}
		}
	}

	penaltyIDs := map[string]bool{}
	for i := range c.Penalties {
		p := &c.Penalties[i]
		if strings.TrimSpace(p.Name) == "" {
			return fmt.Errorf("%w: penalty %d has no name", apperrors.ErrInvalidInput, i)
		}
		if p.ID == "" {
			p.ID = slug.Make(p.Name)
		}
		if p.Level < 0 {
			return fmt.Errorf("%w: penalty %s has negative level", apperrors.ErrInvalidInput, p.ID)
		}
		if p.DurationSeconds < 0 {
			return fmt.Errorf("%w: penalty %s has negative duration", apperrors.ErrInvalidInput, p.ID)
		}
		if err := claim(penaltyIDs, "penalty", p.ID); err != nil {
			return err
		}
	}

	questIDs := map[string]bool{}
	for i := range c.Quests {
		q := &c.Quests[i]
		if q.ID == "" {
			q.ID = slug.Make(q.Title)
		}
		if !q.Kind.Valid() {
			return fmt.Errorf("%w: quest %s has unknown kind %q", apperrors.ErrInvalidInput, q.ID, q.Kind)
		}
		if err := claim(questIDs, "quest", q.ID); err != nil {
			return err
		}
	}

	shopIDs := map[string]bool{}
	for i := range c.Shop {
		item := &c.Shop[i]
		if item.ID == "" {
			item.ID = slug.Make(item.Title)
		}
		if item.CostMinutes < 0 {
			return fmt.Errorf("%w: shop item %s has negative cost", apperrors.ErrInvalidInput, item.ID)
		}
		if err := claim(shopIDs, "shop item", item.ID); err != nil {
			return err
		}
	}
	return nil
}

func claim(seen map[string]bool, what, id string) error {
	if id == "" {
		return fmt.Errorf("%w: %s id cannot be derived", apperrors.ErrInvalidInput, what)
	}
	if seen[id] {
		return fmt.Errorf("%w: duplicate %s id %q", apperrors.ErrInvalidInput, what, id)
	}
	seen[id] = true
	return nil
}

func (c Catalog) FindMission(id string) (Mission, bool) {
	for _, m := range c.Missions {
		if m.ID == id {
			return m, true
		}
	}
	return Mission{}, false
}

// ResolvePenalty matches key against penalty ids, then exact names, then
// the legacy heuristic kept for free-text callers: the first penalty whose
// leading name token occurs anywhere in key.
func (c Catalog) ResolvePenalty(key string) (Penalty, bool) {
	for _, p := range c.Penalties {
		if p.ID == key {
			return p, true
		}
	}
	for _, p := range c.Penalties {
		if p.Name == key {
			return p, true
		}
	}
	for _, p := range c.Penalties {
		fields := strings.Fields(p.Name)
		if len(fields) > 0 && strings.Contains(key, fields[0]) {
			return p, true
		}
	}
	return Penalty{}, false
}
