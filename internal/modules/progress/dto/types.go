package dto

import "time"

type BanOutput struct {
	Level            int           `json:"level"`
	Name             string        `json:"name"`
	EndsAt           time.Time     `json:"ends_at"`
	Remaining        time.Duration `json:"-"`
	RemainingSeconds int64         `json:"remaining_seconds"`
}

type StatusOutput struct {
	UserName        string     `json:"user_name"`
	Theme           string     `json:"theme"`
	Greeting        string     `json:"greeting"`
	MinutesMax      int        `json:"minutes_max"`
	MinutesEarned   int        `json:"minutes_earned"`
	MinutesLocked   int        `json:"minutes_locked"`
	ProgressPercent int        `json:"progress_percent"`
	XP              int        `json:"xp"`
	Level           int        `json:"level"`
	Streak          int        `json:"streak"`
	LastSeenDayKey  string     `json:"last_seen_day_key"`
	Ban             *BanOutput `json:"ban,omitempty"`
	At              time.Time  `json:"at"`
}

type EventOutput struct {
	At      time.Time `json:"at"`
	Kind    string    `json:"kind"`
	Title   string    `json:"title"`
	Details string    `json:"details"`
}

type RolloverOutput struct {
	Changed bool
	Streak  int
	DayKey  string
}

// CompleteMissionInput names a catalog mission by MissionID, or carries a
// legacy free-text Reward with its Title.
type CompleteMissionInput struct {
	MissionID string
	Title     string
	Reward    string
}

type CompleteMissionOutput struct {
	Title        string
	Reward       string
	MinutesAdded int
	XPAdded      int
	ImplicitXP   bool
	Status       StatusOutput
}

type ApplyPenaltyInput struct {
	Penalty string
}

type ApplyPenaltyOutput struct {
	PenaltyID      string
	PenaltyName    string
	Level          int
	MinutesDebited int
	Ban            *BanOutput
	Status         StatusOutput
}
