package out

import (
	"context"

	"timearena/internal/modules/catalog/domain"
)

// CatalogStore supplies missions, penalties, quests and shop items.
type CatalogStore interface {
	Load(ctx context.Context) (domain.Catalog, error)
}

type RulesStore interface {
	LoadRules(ctx context.Context) (domain.Rules, error)
}
