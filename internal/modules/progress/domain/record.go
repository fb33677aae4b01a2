package domain

import (
	"encoding/json"
	"fmt"
	"time"
)

const (
	DefaultMinutesMax = 120
	DefaultTheme      = "dark"
	DefaultUserName   = "Player"

	// MaxHistory caps the newest-first event log.
	MaxHistory = 60
)

type EventKind string

const (
	EventSystem  EventKind = "system"
	EventMission EventKind = "mission"
	EventPenalty EventKind = "penalty"
	EventBan     EventKind = "ban"
	EventBlocked EventKind = "blocked"
)

type Event struct {
	At      int64     `json:"at"`
	Kind    EventKind `json:"type"`
	Title   string    `json:"title"`
	Details string    `json:"details"`
}

func (e Event) Time() time.Time {
	return time.UnixMilli(e.At)
}

type Ban struct {
	Level    int    `json:"level"`
	Name     string `json:"name"`
	EndsAtMs int64  `json:"endsAtMs"`
}

func (b Ban) EndsAt() time.Time {
	return time.UnixMilli(b.EndsAtMs)
}

// Record is the single persisted progress aggregate.
type Record struct {
	UserName       string  `json:"userName"`
	MinutesMax     int     `json:"minutesMax"`
	MinutesEarned  int     `json:"minutesEarned"`
	XP             int     `json:"xp"`
	Level          int     `json:"level"`
	Streak         int     `json:"streak"`
	LastSeenDayKey string  `json:"lastSeenDayKey"`
	History        []Event `json:"history"`
	ActiveBan      *Ban    `json:"activeBan"`
	Theme          string  `json:"theme"`
}

func DefaultRecord() Record {
	return Record{
		UserName:   DefaultUserName,
		MinutesMax: DefaultMinutesMax,
		Level:      1,
		History:    []Event{},
		Theme:      DefaultTheme,
	}
}

// DecodeRecord merges raw over the default record: fields present in raw
// overwrite defaults, missing ones keep them. Derived and bounded fields
// are normalized afterwards.
func DecodeRecord(raw []byte) (Record, error) {
	rec := DefaultRecord()
	if err := json.Unmarshal(raw, &rec); err != nil {
		return DefaultRecord(), fmt.Errorf("decode record: %w", err)
	}
	rec.normalize()
	return rec, nil
}

func EncodeRecord(rec Record) ([]byte, error) {
	rec.normalize()
	raw, err := json.Marshal(rec)
	if err != nil {
		return nil, fmt.Errorf("encode record: %w", err)
	}
	return raw, nil
}

func (r *Record) normalize() {
	if r.History == nil {
		r.History = []Event{}
	}
	if len(r.History) > MaxHistory {
		r.History = r.History[:MaxHistory]
	}
	if r.MinutesMax < 0 {
		r.MinutesMax = 0
	}
	if r.XP < 0 {
		r.XP = 0
	}
	if r.Streak < 0 {
		r.Streak = 0
	}
	r.clampMinutes()
	r.Level = LevelForXP(r.XP)
}

func (r *Record) clampMinutes() {
	if r.MinutesEarned > r.MinutesMax {
		r.MinutesEarned = r.MinutesMax
	}
	if r.MinutesEarned < 0 {
		r.MinutesEarned = 0
	}
}

// AddEvent prepends an event and evicts the oldest beyond MaxHistory.
func (r *Record) AddEvent(now time.Time, kind EventKind, title, details string) {
	event := Event{At: now.UnixMilli(), Kind: kind, Title: title, Details: details}
	history := make([]Event, 0, min(len(r.History)+1, MaxHistory))
	history = append(history, event)
	for _, e := range r.History {
		if len(history) == MaxHistory {
			break
		}
		history = append(history, e)
	}
	r.History = history
}

// LockedMinutes is the capacity not yet earned.
func (r Record) LockedMinutes() int {
	return max(0, r.MinutesMax-r.MinutesEarned)
}

// ProgressPercent is earned/max rounded to the nearest percent.
func (r Record) ProgressPercent() int {
	denominator := max(1, r.MinutesMax)
	return (r.MinutesEarned*100 + denominator/2) / denominator
}

// ResetDay zeroes earned minutes.
func (r *Record) ResetDay(now time.Time) {
	r.MinutesEarned = 0
	r.AddEvent(now, EventSystem, "Day reset 🔄", "Minutes earned = 0")
}

// ToggleTheme flips between the dark and light themes.
func (r *Record) ToggleTheme() string {
	if r.Theme == "dark" {
		r.Theme = "light"
	} else {
		r.Theme = "dark"
	}
	return r.Theme
}
