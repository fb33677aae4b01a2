package domain

import "time"

var dailyMessages = []string{
	"Welcome to the arena. Today we make progress! ⚔️",
	"Today's quests are waiting. Let's go! 🚀",
	"We earn clean time, no bargaining! 🛡️",
	"The streak is on fire. Keep it burning! 🔥",
	"A small step today = Level up tomorrow! 🆙",
}

// DailyMessage picks the greeting for now's day of month and the streak.
func DailyMessage(now time.Time, streak int) string {
	idx := (now.Day() + streak) % len(dailyMessages)
	if idx < 0 {
		idx += len(dailyMessages)
	}
	return dailyMessages[idx]
}
