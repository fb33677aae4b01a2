package domain

import "time"

// Penalty is the catalog view the engine needs to apply a penalty.
type Penalty struct {
	Name            string
	Level           int
	DurationSeconds int
	Desc            string
}

// DebitMinutes is the flat time debit for a penalty severity level.
func DebitMinutes(level int) int {
	switch {
	case level >= 2:
		return 20
	case level == 1:
		return 10
	default:
		return 0
	}
}

type PenaltyResult struct {
	Ban            *Ban
	MinutesDebited int
}

// ApplyPenalty installs a ban for timed penalties, debits minutes by
// severity and records the penalty.
func (r *Record) ApplyPenalty(p Penalty, now time.Time) PenaltyResult {
	result := PenaltyResult{}
	if p.DurationSeconds > 0 {
		ban := r.InstallBan(p.Level, p.Name, time.Duration(p.DurationSeconds)*time.Second, now)
		result.Ban = &ban
	}
	before := r.MinutesEarned
	r.MinutesEarned = max(0, r.MinutesEarned-DebitMinutes(p.Level))
	r.clampMinutes()
	result.MinutesDebited = before - r.MinutesEarned
	r.AddEvent(now, EventPenalty, "⚠️ "+p.Name, p.Desc)
	return result
}
