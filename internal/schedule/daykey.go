package schedule

import (
	"fmt"
	"regexp"
	"strconv"
	"time"
)

// DayKey identifies a calendar day as "{year}-{month}-{day}" with no
// zero padding, e.g. "2024-3-4". It is the map key of the entry store.
type DayKey string

var dayKeyPattern = regexp.MustCompile(`^(\d{4})-(\d{1,2})-(\d{1,2})$`)

// KeyFor builds the day key for a point in time.
func KeyFor(t time.Time) DayKey {
	return DayKey(fmt.Sprintf("%d-%d-%d", t.Year(), int(t.Month()), t.Day()))
}

// MakeKey builds a day key from components. Month and day are 1-indexed.
func MakeKey(year, month, day int) DayKey {
	return DayKey(fmt.Sprintf("%d-%d-%d", year, month, day))
}

// Parse returns the midnight (UTC) date the key names. Keys failing the
// pattern report ok=false; callers treat that as "no match" in recurrence
// math and as "keep as-is" in retention filtering, never as a hard error.
// Out-of-range components normalise the way calendar arithmetic does
// (e.g. "2024-2-31" rolls into March), matching how the keys were minted.
func (k DayKey) Parse() (time.Time, bool) {
	m := dayKeyPattern.FindStringSubmatch(string(k))
	if m == nil {
		return time.Time{}, false
	}
	year, _ := strconv.Atoi(m[1])
	month, _ := strconv.Atoi(m[2])
	day, _ := strconv.Atoi(m[3])
	return time.Date(year, time.Month(month), day, 0, 0, 0, 0, time.UTC), true
}

// Valid reports whether the key matches the day-key pattern.
func (k DayKey) Valid() bool {
	return dayKeyPattern.MatchString(string(k))
}

// Before compares two keys by parsed date, never lexically. Keys that do
// not parse are never "before" anything.
func (k DayKey) Before(other DayKey) bool {
	a, ok := k.Parse()
	if !ok {
		return false
	}
	b, ok := other.Parse()
	if !ok {
		return false
	}
	return a.Before(b)
}

// AddDays shifts the key by n calendar days. Invalid keys are returned
// unchanged.
func (k DayKey) AddDays(n int) DayKey {
	t, ok := k.Parse()
	if !ok {
		return k
	}
	return KeyFor(t.AddDate(0, 0, n))
}

// daysBetween counts whole days from a to b, both at midnight.
func daysBetween(a, b time.Time) int {
	return int(b.Sub(a).Hours() / 24)
}

// midnightUTC normalises any timestamp to its calendar day at midnight UTC
// so day arithmetic never crosses DST boundaries.
func midnightUTC(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}
