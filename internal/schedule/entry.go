package schedule

import "sort"

// Repeat names a recurrence frequency.
type Repeat string

const (
	RepeatNone     Repeat = ""
	RepeatDaily    Repeat = "daily"
	RepeatWeekly   Repeat = "weekly"
	RepeatBiweekly Repeat = "biweekly"
	RepeatMonthly  Repeat = "monthly"
)

// Entry is a schedule item stored under its origin day key.
//
// RepeatDays restricts daily repeats to a set of weekdays (0=Sun..6=Sat);
// an empty set on a daily entry means every day. Weekly, biweekly and
// monthly entries never carry RepeatDays. RepeatUntil is an inclusive
// cutoff; SkipDates suppresses single occurrences of a recurring entry.
type Entry struct {
	Time        string   `json:"time"`
	EndTime     string   `json:"endTime,omitempty"`
	Title       string   `json:"title"`
	Color       string   `json:"color,omitempty"`
	Repeat      Repeat   `json:"repeat,omitempty"`
	RepeatUntil DayKey   `json:"repeatUntil,omitempty"`
	RepeatDays  []int    `json:"repeatDays,omitempty"`
	SkipDates   []DayKey `json:"skipDates,omitempty"`
}

// Recurring reports whether the entry generates occurrences beyond its
// origin day.
func (e Entry) Recurring() bool {
	return e.Repeat != RepeatNone
}

// skips reports whether the entry suppresses the given day.
func (e Entry) skips(key DayKey) bool {
	for _, s := range e.SkipDates {
		if s == key {
			return true
		}
	}
	return false
}

// clone returns a deep copy so mutations never alias the source slices.
func (e Entry) clone() Entry {
	out := e
	if e.RepeatDays != nil {
		out.RepeatDays = append([]int(nil), e.RepeatDays...)
	}
	if e.SkipDates != nil {
		out.SkipDates = append([]DayKey(nil), e.SkipDates...)
	}
	return out
}

// Store maps day keys to the ordered entries created on that day.
type Store map[DayKey][]Entry

// Clone deep-copies the store. Mutating operations work on a copy and
// hand the caller a replacement snapshot.
func (s Store) Clone() Store {
	out := make(Store, len(s))
	for key, entries := range s {
		list := make([]Entry, len(entries))
		for i, e := range entries {
			list[i] = e.clone()
		}
		out[key] = list
	}
	return out
}

// sortedKeys returns the store's day keys in chronological order, with
// unparseable keys last in lexical order. Deterministic iteration keeps
// expansion output stable.
func (s Store) sortedKeys() []DayKey {
	keys := make([]DayKey, 0, len(s))
	for key := range s {
		keys = append(keys, key)
	}
	sort.Slice(keys, func(i, j int) bool {
		a, aok := keys[i].Parse()
		b, bok := keys[j].Parse()
		if aok && bok {
			return a.Before(b)
		}
		if aok != bok {
			return aok
		}
		return keys[i] < keys[j]
	})
	return keys
}
