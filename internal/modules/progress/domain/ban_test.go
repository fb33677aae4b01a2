package domain_test

import (
	"testing"
	"time"

	"timearena/internal/modules/progress/domain"
)

func TestIsExpiredAtBoundary(t *testing.T) {
	t.Parallel()
	ban := domain.Ban{EndsAtMs: 1_000}
	if domain.IsExpired(ban, time.UnixMilli(999)) {
		t.Fatalf("ban must be active before endsAtMs")
	}
	if !domain.IsExpired(ban, time.UnixMilli(1_000)) {
		t.Fatalf("ban must be expired at endsAtMs")
	}
}

func TestReconcileClearsExpiredBanOnce(t *testing.T) {
	t.Parallel()
	now := time.Date(2026, 3, 10, 12, 0, 0, 0, time.Local)
	rec := domain.DefaultRecord()
	rec.ActiveBan = &domain.Ban{Level: 2, Name: "Penalty Zone 🟠", EndsAtMs: now.Add(-time.Minute).UnixMilli()}

	if rec.BanActive(now) {
		t.Fatalf("expired ban must not be active")
	}
	if !rec.Reconcile(now) {
		t.Fatalf("first reconcile should clear the ban")
	}
	for i := 0; i < 3; i++ {
		if rec.Reconcile(now.Add(time.Duration(i) * time.Second)) {
			t.Fatalf("repeat reconcile must be a no-op")
		}
	}
	if rec.ActiveBan != nil {
		t.Fatalf("ban should be cleared")
	}
	banEvents := 0
	for _, e := range rec.History {
		if e.Kind == domain.EventBan {
			banEvents++
			if e.Details != "Penalty Zone 🟠" {
				t.Fatalf("unexpected expiry details %q", e.Details)
			}
		}
	}
	if banEvents != 1 {
		t.Fatalf("expected exactly one ban event, got %d", banEvents)
	}
}

func TestReconcileKeepsActiveBan(t *testing.T) {
	t.Parallel()
	now := time.Date(2026, 3, 10, 12, 0, 0, 0, time.Local)
	rec := domain.DefaultRecord()
	rec.InstallBan(3, "Daily Ban 🔴", 24*time.Hour, now)
	if rec.Reconcile(now.Add(time.Hour)) {
		t.Fatalf("active ban must not be reconciled")
	}
	if got := rec.BanRemaining(now.Add(time.Hour)); got != 23*time.Hour {
		t.Fatalf("expected 23h remaining, got %s", got)
	}
	if got := rec.BanRemaining(now.Add(25 * time.Hour)); got != 0 {
		t.Fatalf("expected no remaining time after expiry, got %s", got)
	}
}

func TestInstallBanReplacesExisting(t *testing.T) {
	t.Parallel()
	now := time.Date(2026, 3, 10, 12, 0, 0, 0, time.Local)
	rec := domain.DefaultRecord()
	rec.InstallBan(3, "Daily Ban 🔴", 24*time.Hour, now)
	rec.InstallBan(2, "Penalty Zone 🟠", time.Hour, now)
	if rec.ActiveBan.Name != "Penalty Zone 🟠" || !rec.ActiveBan.EndsAt().Equal(now.Add(time.Hour)) {
		t.Fatalf("new ban must replace the old one unconditionally: %+v", rec.ActiveBan)
	}
}
