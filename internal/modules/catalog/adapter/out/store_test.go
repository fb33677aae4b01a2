package out_test

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	catalogout "timearena/internal/modules/catalog/adapter/out"
)

func TestYAMLCatalogStoreFallsBackToEmbeddedDefault(t *testing.T) {
	t.Parallel()
	store := catalogout.NewYAMLCatalogStore(filepath.Join(t.TempDir(), "catalog.yaml"))
	c, err := store.Load(context.Background())
	if err != nil {
		t.Fatalf("load default catalog: %v", err)
	}
	if len(c.Missions) == 0 || len(c.Penalties) != 3 || len(c.Quests) != 3 || len(c.Shop) == 0 {
		t.Fatalf("unexpected default catalog sizes: %d missions, %d penalties, %d quests, %d shop",
			len(c.Missions), len(c.Penalties), len(c.Quests), len(c.Shop))
	}
	if err := c.Normalize(); err != nil {
		t.Fatalf("default catalog must normalize: %v", err)
	}
	if p, ok := c.ResolvePenalty("Daily Ban"); !ok || p.DurationSeconds != 86400 {
		t.Fatalf("expected Daily Ban to resolve to the 24h penalty, got %+v %t", p, ok)
	}
}

func TestYAMLCatalogStoreReadsFile(t *testing.T) {
	t.Parallel()
	path := filepath.Join(t.TempDir(), "catalog.yaml")
	raw := `missions:
  - title: Walk the dog
    reward: "+5 min"
penalties:
  - name: Timeout ⏱️
    level: 1
    durationSeconds: 600
`
	if err := os.WriteFile(path, []byte(raw), 0o644); err != nil {
		t.Fatalf("write catalog: %v", err)
	}
	c, err := catalogout.NewYAMLCatalogStore(path).Load(context.Background())
	if err != nil {
		t.Fatalf("load catalog: %v", err)
	}
	if len(c.Missions) != 1 || c.Missions[0].Reward != "+5 min" || len(c.Penalties) != 1 || c.Penalties[0].DurationSeconds != 600 {
		t.Fatalf("unexpected catalog %+v", c)
	}
}

func TestYAMLCatalogStoreRejectsUnknownField(t *testing.T) {
	t.Parallel()
	path := filepath.Join(t.TempDir(), "catalog.yaml")
	if err := os.WriteFile(path, []byte("missions:\n  - title: x\n    bonus: 3\n"), 0o644); err != nil {
		t.Fatalf("write catalog: %v", err)
	}
	if _, err := catalogout.NewYAMLCatalogStore(path).Load(context.Background()); err == nil {
		t.Fatalf("expected unknown field error")
	}
}

func TestMarkdownRulesStoreDefaultAndOverride(t *testing.T) {
	t.Parallel()
	dir := t.TempDir()
	path := filepath.Join(dir, "rules.md")
	rules, err := catalogout.NewMarkdownRulesStore(path).LoadRules(context.Background())
	if err != nil {
		t.Fatalf("load default rules: %v", err)
	}
	if rules.Title != "Arena Rules" || !strings.HasPrefix(rules.Body, "1.") {
		t.Fatalf("unexpected default rules %+v", rules)
	}

	if err := os.WriteFile(path, []byte("No frontmatter here.\n"), 0o644); err != nil {
		t.Fatalf("write rules: %v", err)
	}
	rules, err = catalogout.NewMarkdownRulesStore(path).LoadRules(context.Background())
	if err != nil {
		t.Fatalf("load rules: %v", err)
	}
	if rules.Title != "Rules" || rules.Body != "No frontmatter here." {
		t.Fatalf("unexpected rules %+v", rules)
	}
}
