package domain

import (
	"fmt"
	"math"
	"time"
)

const dayKeyLayout = "2006-01-02"

// DayKey is the calendar date signature of t in t's own location.
func DayKey(t time.Time) string {
	return t.Format(dayKeyLayout)
}

// DaysBetween returns the rounded number of days from one day key to
// another, both interpreted as local midnight in loc. Rounding absorbs
// daylight saving shifts.
func DaysBetween(from, to string, loc *time.Location) (int, error) {
	start, err := time.ParseInLocation(dayKeyLayout, from, loc)
	if err != nil {
		return 0, fmt.Errorf("parse day key %q: %w", from, err)
	}
	end, err := time.ParseInLocation(dayKeyLayout, to, loc)
	if err != nil {
		return 0, fmt.Errorf("parse day key %q: %w", to, err)
	}
	return int(math.Round(end.Sub(start).Hours() / 24)), nil
}
