package domain_test

import (
	"fmt"
	"strings"
	"testing"
	"time"

	"timearena/internal/modules/progress/domain"
)

func TestDecodeRecordMergesOverDefaults(t *testing.T) {
	t.Parallel()
	rec, err := domain.DecodeRecord([]byte(`{"xp":260,"level":1,"streak":4,"history":null,"unknown":true}`))
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	if rec.MinutesMax != 120 || rec.Theme != "dark" || rec.UserName != domain.DefaultUserName {
		t.Fatalf("missing fields should keep defaults: %+v", rec)
	}
	if rec.XP != 260 || rec.Streak != 4 {
		t.Fatalf("known fields should overwrite defaults: %+v", rec)
	}
	if rec.Level != 3 {
		t.Fatalf("stored level must be recomputed from xp, got %d", rec.Level)
	}
	if rec.History == nil || len(rec.History) != 0 {
		t.Fatalf("null history should decode as empty, got %#v", rec.History)
	}
}

func TestDecodeRecordClampsStoredMinutes(t *testing.T) {
	t.Parallel()
	rec, err := domain.DecodeRecord([]byte(`{"minutesMax":60,"minutesEarned":90}`))
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	if rec.MinutesEarned != 60 {
		t.Fatalf("expected earned clamped to 60, got %d", rec.MinutesEarned)
	}
}

func TestDecodeRecordMalformedReturnsDefault(t *testing.T) {
	t.Parallel()
	rec, err := domain.DecodeRecord([]byte(`{"xp":`))
	if err == nil {
		t.Fatalf("expected decode error")
	}
	if rec.MinutesMax != domain.DefaultMinutesMax || rec.Level != 1 || rec.ActiveBan != nil {
		t.Fatalf("expected default record on error, got %+v", rec)
	}
}

func TestEncodeRecordUsesPersistedKeys(t *testing.T) {
	t.Parallel()
	rec := domain.DefaultRecord()
	rec.ActiveBan = &domain.Ban{Level: 3, Name: "Daily Ban 🔴", EndsAtMs: 42}
	rec.AddEvent(time.UnixMilli(7), domain.EventSystem, "New Day 🌅", "Streak: 1")
	raw, err := domain.EncodeRecord(rec)
	if err != nil {
		t.Fatalf("encode: %v", err)
	}
	back, err := domain.DecodeRecord(raw)
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	if back.ActiveBan == nil || back.ActiveBan.EndsAtMs != 42 || back.History[0].Kind != domain.EventSystem {
		t.Fatalf("unexpected decoded record: %+v", back)
	}
	for _, key := range []string{`"minutesEarned"`, `"lastSeenDayKey"`, `"activeBan"`, `"endsAtMs"`, `"type":"system"`, `"at":7`} {
		if !strings.Contains(string(raw), key) {
			t.Fatalf("encoded record missing %s: %s", key, raw)
		}
	}
}

func TestHistoryKeepsSixtyNewestFirst(t *testing.T) {
	t.Parallel()
	rec := domain.DefaultRecord()
	base := time.Date(2026, 3, 10, 9, 0, 0, 0, time.Local)
	for i := 0; i < 100; i++ {
		rec.AddEvent(base.Add(time.Duration(i)*time.Second), domain.EventMission, fmt.Sprintf("event %d", i), "")
	}
	if len(rec.History) != domain.MaxHistory {
		t.Fatalf("expected %d events, got %d", domain.MaxHistory, len(rec.History))
	}
	for i, e := range rec.History {
		want := fmt.Sprintf("event %d", 99-i)
		if e.Title != want {
			t.Fatalf("history[%d] = %q, want %q", i, e.Title, want)
		}
	}
}

func TestLockedMinutesAndProgressPercent(t *testing.T) {
	t.Parallel()
	rec := domain.DefaultRecord()
	rec.MinutesEarned = 45
	if rec.LockedMinutes() != 75 {
		t.Fatalf("expected 75 locked minutes, got %d", rec.LockedMinutes())
	}
	if rec.ProgressPercent() != 38 {
		t.Fatalf("expected 38%%, got %d", rec.ProgressPercent())
	}
	rec.MinutesMax = 0
	rec.MinutesEarned = 0
	if rec.ProgressPercent() != 0 || rec.LockedMinutes() != 0 {
		t.Fatalf("zero capacity should report 0%% and 0 locked")
	}
}

func TestResetDayAndToggleTheme(t *testing.T) {
	t.Parallel()
	rec := domain.DefaultRecord()
	rec.MinutesEarned = 80
	rec.ResetDay(time.Date(2026, 3, 10, 9, 0, 0, 0, time.Local))
	if rec.MinutesEarned != 0 || rec.History[0].Kind != domain.EventSystem {
		t.Fatalf("reset day should zero minutes and log a system event: %+v", rec)
	}
	if rec.ToggleTheme() != "light" || rec.ToggleTheme() != "dark" {
		t.Fatalf("theme toggle should alternate dark/light")
	}
}
