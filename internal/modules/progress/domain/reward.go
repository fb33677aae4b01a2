package domain

import (
	"math"
	"strconv"
	"strings"
	"time"
)

// ImplicitXPBonus is granted for a completed mission whose reward carries no
// xp effect.
const ImplicitXPBonus = 10

type EffectKind string

const (
	EffectMinutes EffectKind = "minutes"
	EffectXP      EffectKind = "xp"
)

type Effect struct {
	Kind   EffectKind
	Amount int
}

type Reward struct {
	Effects []Effect
}

func (rw Reward) hasXP() bool {
	for _, e := range rw.Effects {
		if e.Kind == EffectXP {
			return true
		}
	}
	return false
}

// ParseReward converts a legacy free-text reward such as "+15 min" or
// "+20 XP" into effects. Both markers may match the same string; each then
// takes the first run of digits in it.
func ParseReward(text string) Reward {
	amount := firstNumber(text)
	reward := Reward{}
	if strings.Contains(text, "min") {
		reward.Effects = append(reward.Effects, Effect{Kind: EffectMinutes, Amount: amount})
	}
	if strings.Contains(strings.ToUpper(text), "XP") {
		reward.Effects = append(reward.Effects, Effect{Kind: EffectXP, Amount: amount})
	}
	return reward
}

func firstNumber(text string) int {
	start := strings.IndexAny(text, "0123456789")
	if start < 0 {
		return 0
	}
	end := start
	for end < len(text) && text[end] >= '0' && text[end] <= '9' {
		end++
	}
	n, err := strconv.Atoi(text[start:end])
	if err != nil {
		return 0
	}
	return n
}

// RewardResult describes what a reward application changed.
type RewardResult struct {
	MinutesAdded int
	XPAdded      int
	ImplicitXP   bool
}

// ApplyReward credits a mission reward. The caller must have checked the
// ban guard; see GuardReward.
func (r *Record) ApplyReward(reward Reward, title, rewardText string, now time.Time) RewardResult {
	result := RewardResult{}
	for _, e := range reward.Effects {
		amount := max(0, e.Amount)
		switch e.Kind {
		case EffectMinutes:
			added := min(amount, max(0, r.MinutesMax-r.MinutesEarned))
			r.MinutesEarned += added
			result.MinutesAdded += added
		case EffectXP:
			result.XPAdded = addSaturating(result.XPAdded, r.addXP(amount))
		}
	}
	if !reward.hasXP() {
		result.XPAdded = addSaturating(result.XPAdded, r.addXP(ImplicitXPBonus))
		result.ImplicitXP = true
	}
	r.clampMinutes()
	r.Level = LevelForXP(r.XP)
	r.AddEvent(now, EventMission, "✅ "+title, "Reward: "+rewardText)
	return result
}

// addXP credits amount, stopping at math.MaxInt, and returns what was added.
func (r *Record) addXP(amount int) int {
	before := r.XP
	r.XP = addSaturating(r.XP, amount)
	return r.XP - before
}

// addSaturating adds two non-negative ints without wrapping.
func addSaturating(a, b int) int {
	if b > math.MaxInt-a {
		return math.MaxInt
	}
	return a + b
}

// GuardReward records a blocked attempt and reports false while a ban is
// active. Nothing else on the record changes.
func (r *Record) GuardReward(title string, now time.Time) bool {
	if !r.BanActive(now) {
		return true
	}
	r.AddEvent(now, EventBlocked, "Reward blocked (BAN) 🔴", title)
	return false
}
