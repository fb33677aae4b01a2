package out_test

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	progressout "timearena/internal/modules/progress/adapter/out"
	progressport "timearena/internal/modules/progress/port/out"
	"timearena/internal/platform/clock"
	apperrors "timearena/internal/platform/errors"
)

var stamp = clock.Fixed(time.Date(2026, 3, 10, 12, 0, 0, 0, time.UTC))

func exerciseStore(t *testing.T, store progressport.RecordStore) {
	t.Helper()
	ctx := context.Background()
	if _, err := store.Load(ctx); !errors.Is(err, apperrors.ErrNotFound) {
		t.Fatalf("expected not found on empty store, got %v", err)
	}
	if err := store.Save(ctx, []byte(`{"xp":10}`)); err != nil {
		t.Fatalf("save: %v", err)
	}
	if err := store.Save(ctx, []byte(`{"xp":20}`)); err != nil {
		t.Fatalf("overwrite: %v", err)
	}
	raw, err := store.Load(ctx)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if string(raw) != `{"xp":20}` {
		t.Fatalf("expected last write to win, got %s", raw)
	}
}

func TestFileRecordStore(t *testing.T) {
	t.Parallel()
	path := filepath.Join(t.TempDir(), ".timearena", "timearena_uxui_state_v1.json")
	exerciseStore(t, progressout.NewFileRecordStore(path))
	if _, err := os.Stat(path + ".tmp"); !os.IsNotExist(err) {
		t.Fatalf("temporary file should be renamed away, stat err=%v", err)
	}
}

func TestSQLiteRecordStore(t *testing.T) {
	t.Parallel()
	dbPath := filepath.Join(t.TempDir(), ".timearena", "timearena.db")
	store, err := progressout.NewSQLiteRecordStore(dbPath, "timearena_uxui_state_v1", stamp)
	if err != nil {
		t.Fatalf("open sqlite store: %v", err)
	}
	t.Cleanup(func() { _ = store.Close() })
	exerciseStore(t, store)

	other, err := progressout.NewSQLiteRecordStore(dbPath, "other_user", stamp)
	if err != nil {
		t.Fatalf("open second key: %v", err)
	}
	t.Cleanup(func() { _ = other.Close() })
	if _, err := other.Load(context.Background()); !errors.Is(err, apperrors.ErrNotFound) {
		t.Fatalf("keys must be isolated, got %v", err)
	}
}

func TestSQLiteRecordStoreRequiresKey(t *testing.T) {
	t.Parallel()
	if _, err := progressout.NewSQLiteRecordStore(filepath.Join(t.TempDir(), "x.db"), "", stamp); !errors.Is(err, apperrors.ErrInvalidInput) {
		t.Fatalf("expected invalid input, got %v", err)
	}
}
