package bootstrap_test

import (
	"context"
	"os"
	"testing"

	"timearena/internal/bootstrap"
	"timearena/internal/platform/config"
	"timearena/internal/platform/logging"
)

func TestAppWiringPersistsAcrossRestarts(t *testing.T) {
	t.Parallel()
	for _, store := range []string{config.StoreFile, config.StoreSQLite} {
		store := store
		t.Run(store, func(t *testing.T) {
			t.Parallel()
			cfg, err := config.LoadFrom(t.TempDir(), map[string]string{"TIMEARENA_STORE": store})
			if err != nil {
				t.Fatalf("load config: %v", err)
			}
			ctx := context.Background()

			app, err := bootstrap.New(cfg, logging.Discard())
			if err != nil {
				t.Fatalf("new app: %v", err)
			}
			if _, err := app.ProgressCLI.Rollover(ctx); err != nil {
				t.Fatalf("rollover: %v", err)
			}
			out, err := app.ProgressCLI.CompleteMission(ctx, "homework")
			if err != nil {
				t.Fatalf("complete mission: %v", err)
			}
			if out.MinutesAdded != 15 || out.XPAdded != 10 {
				t.Fatalf("unexpected reward: %+v", out)
			}
			if err := app.Close(); err != nil {
				t.Fatalf("close: %v", err)
			}

			reopened, err := bootstrap.New(cfg, logging.Discard())
			if err != nil {
				t.Fatalf("reopen app: %v", err)
			}
			defer func() { _ = reopened.Close() }()
			status, err := reopened.ProgressCLI.Status(ctx)
			if err != nil {
				t.Fatalf("status: %v", err)
			}
			if status.MinutesEarned != 15 || status.XP != 10 || status.Streak != 1 {
				t.Fatalf("state not persisted: %+v", status)
			}
		})
	}
}

func TestFileStoreWritesStateBlob(t *testing.T) {
	t.Parallel()
	cfg, err := config.LoadFrom(t.TempDir(), map[string]string{})
	if err != nil {
		t.Fatalf("load config: %v", err)
	}
	app, err := bootstrap.New(cfg, logging.Discard())
	if err != nil {
		t.Fatalf("new app: %v", err)
	}
	defer func() { _ = app.Close() }()
	if _, err := app.ProgressCLI.Rollover(context.Background()); err != nil {
		t.Fatalf("rollover: %v", err)
	}
	if _, err := os.Stat(cfg.StatePath); err != nil {
		t.Fatalf("expected state blob at %s: %v", cfg.StatePath, err)
	}
}

func TestApplyPenaltyByLegacyNameUsesEmbeddedCatalog(t *testing.T) {
	t.Parallel()
	cfg, err := config.LoadFrom(t.TempDir(), map[string]string{})
	if err != nil {
		t.Fatalf("load config: %v", err)
	}
	app, err := bootstrap.New(cfg, logging.Discard())
	if err != nil {
		t.Fatalf("new app: %v", err)
	}
	defer func() { _ = app.Close() }()
	ctx := context.Background()

	out, err := app.ProgressCLI.ApplyPenalty(ctx, "Daily Ban for lying")
	if err != nil {
		t.Fatalf("apply penalty: %v", err)
	}
	if out.PenaltyID != "daily-ban" || out.Ban == nil || out.Ban.RemainingSeconds != 86400 {
		t.Fatalf("expected the 24h daily ban, got %+v", out)
	}
	if _, err := app.ProgressCLI.CompleteMission(ctx, "homework"); err == nil {
		t.Fatalf("rewards must be blocked during the ban")
	}
}
