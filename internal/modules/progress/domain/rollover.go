package domain

import (
	"fmt"
	"time"
)

// Rollover advances the streak when now falls on a different calendar day
// than the last rollover. It reports whether the record changed.
//
// A one day gap extends the streak; any other gap, including a negative
// one after the clock moved backward, restarts it at 1.
func (r *Record) Rollover(now time.Time) bool {
	today := DayKey(now)
	if r.LastSeenDayKey == today {
		return false
	}
	switch {
	case r.LastSeenDayKey == "":
		r.Streak = 1
	default:
		diff, err := DaysBetween(r.LastSeenDayKey, today, now.Location())
		if err == nil && diff == 1 {
			r.Streak = max(0, r.Streak) + 1
		} else {
			r.Streak = 1
		}
	}
	r.LastSeenDayKey = today
	r.AddEvent(now, EventSystem, "New Day 🌅", fmt.Sprintf("Streak: %d", r.Streak))
	return true
}
