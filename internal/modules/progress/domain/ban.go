package domain

import "time"

// IsExpired reports whether ban no longer applies at now.
func IsExpired(ban Ban, now time.Time) bool {
	return now.UnixMilli() >= ban.EndsAtMs
}

// BanActive reports whether an unexpired ban is present. It never mutates
// the record; callers run Reconcile first.
func (r Record) BanActive(now time.Time) bool {
	return r.ActiveBan != nil && !IsExpired(*r.ActiveBan, now)
}

// BanRemaining is the time left on the active ban, zero when none applies.
func (r Record) BanRemaining(now time.Time) time.Duration {
	if !r.BanActive(now) {
		return 0
	}
	return time.Duration(r.ActiveBan.EndsAtMs-now.UnixMilli()) * time.Millisecond
}

// Reconcile clears an expired ban and records its expiry. It reports
// whether the record changed; repeated calls after expiry are no-ops.
func (r *Record) Reconcile(now time.Time) bool {
	if r.ActiveBan == nil || !IsExpired(*r.ActiveBan, now) {
		return false
	}
	name := r.ActiveBan.Name
	r.ActiveBan = nil
	r.AddEvent(now, EventBan, "Ban expired ✅", name)
	return true
}

// InstallBan replaces any current ban.
func (r *Record) InstallBan(level int, name string, duration time.Duration, now time.Time) Ban {
	ban := Ban{Level: level, Name: name, EndsAtMs: now.Add(duration).UnixMilli()}
	r.ActiveBan = &ban
	return ban
}
