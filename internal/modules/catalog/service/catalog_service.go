package service

import (
	"context"
	"fmt"
	"sync"

	"timearena/internal/modules/catalog/domain"
	catalogout "timearena/internal/modules/catalog/port/out"
)

// CatalogService loads the catalog once and serves it read-only.
type CatalogService struct {
	store catalogout.CatalogStore
	rules catalogout.RulesStore

	mu     sync.Mutex
	loaded bool
	cached domain.Catalog
}

func NewCatalogService(store catalogout.CatalogStore, rules catalogout.RulesStore) *CatalogService {
	return &CatalogService{store: store, rules: rules}
}

func (s *CatalogService) Catalog(ctx context.Context) (domain.Catalog, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.loaded {
		return s.cached, nil
	}
	catalog, err := s.store.Load(ctx)
	if err != nil {
		return domain.Catalog{}, err
	}
	if err := catalog.Normalize(); err != nil {
		return domain.Catalog{}, fmt.Errorf("normalize catalog: %w", err)
	}
	if s.rules != nil {
		rules, err := s.rules.LoadRules(ctx)
		if err != nil {
			return domain.Catalog{}, err
		}
		catalog.Rules = rules
	}
	s.cached = catalog
	s.loaded = true
	return catalog, nil
}
