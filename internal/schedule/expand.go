package schedule

import (
	"sort"
	"time"
)

// Occurrence is the appearance of an entry on one specific date: either
// the stored entry on its own origin day, or a generated instance of a
// recurring entry. OriginDayKey/OriginIndex locate the stored entry so a
// later edit or delete can find what it must mutate.
type Occurrence struct {
	Entry        Entry  `json:"entry"`
	OriginDayKey DayKey `json:"originDayKey"`
	OriginIndex  int    `json:"originIndex"`
	IsRepeated   bool   `json:"isRepeated"`
}

// OccurrencesOn expands the store for one target date: direct entries
// stored under the date's own key first, then instances of recurring
// entries anchored on other days. No ordering beyond that is applied;
// presentation sorts by time separately.
func OccurrencesOn(store Store, date time.Time) []Occurrence {
	day := midnightUTC(date)
	key := KeyFor(day)

	out := make([]Occurrence, 0, len(store[key]))
	for i, entry := range store[key] {
		out = append(out, Occurrence{Entry: entry, OriginDayKey: key, OriginIndex: i})
	}

	for _, originKey := range store.sortedKeys() {
		if originKey == key {
			continue
		}
		origin, ok := originKey.Parse()
		if !ok {
			continue
		}
		for i, entry := range store[originKey] {
			if !entry.Recurring() {
				continue
			}
			if !occursOn(entry, origin, day, key) {
				continue
			}
			out = append(out, Occurrence{
				Entry:        entry,
				OriginDayKey: originKey,
				OriginIndex:  i,
				IsRepeated:   true,
			})
		}
	}

	return out
}

// occursOn applies the frequency rule, the repeat-until cutoff and the
// skip-date exclusions for a single recurring entry.
func occursOn(entry Entry, origin, day time.Time, key DayKey) bool {
	daysDiff := daysBetween(origin, day)
	if daysDiff < 0 {
		return false
	}

	switch entry.Repeat {
	case RepeatDaily:
		if len(entry.RepeatDays) > 0 && !containsWeekday(entry.RepeatDays, int(day.Weekday())) {
			return false
		}
	case RepeatWeekly:
		if daysDiff%7 != 0 {
			return false
		}
	case RepeatBiweekly:
		if daysDiff%14 != 0 {
			return false
		}
	case RepeatMonthly:
		if day.Day() != origin.Day() {
			return false
		}
	default:
		return false
	}

	if entry.RepeatUntil != "" {
		if until, ok := entry.RepeatUntil.Parse(); ok && day.After(until) {
			return false
		}
	}

	return !entry.skips(key)
}

func containsWeekday(days []int, weekday int) bool {
	for _, d := range days {
		if d == weekday {
			return true
		}
	}
	return false
}

// SortByTime orders occurrences by start time ascending for display.
// The sort is stable so direct entries keep their stored order within
// equal times.
func SortByTime(occurrences []Occurrence) {
	sort.SliceStable(occurrences, func(i, j int) bool {
		return occurrences[i].Entry.Time < occurrences[j].Entry.Time
	})
}
