package schedule

import (
	"encoding/json"
	"sort"
	"time"
)

// Row is the flat, storage-shaped form of one entry: the day key becomes
// an explicit column and the slice-valued fields are serialised to JSON
// strings. Position preserves the order of entries within a day.
type Row struct {
	DayKey      string `json:"dayKey"`
	Position    int    `json:"position"`
	Time        string `json:"time"`
	EndTime     string `json:"endTime,omitempty"`
	Title       string `json:"title"`
	Color       string `json:"color,omitempty"`
	Repeat      string `json:"repeat,omitempty"`
	RepeatUntil string `json:"repeatUntil,omitempty"`
	RepeatDays  string `json:"repeatDays,omitempty"`
	SkipDates   string `json:"skipDates,omitempty"`
}

// ToRows flattens the store for persistence. Rows whose day key parses
// and falls before the cutoff are dropped, unless the entry's recurrence
// is still live past the cutoff. Malformed day keys are kept as-is: the
// retention filter never discards what it cannot date.
func ToRows(store Store, cutoff *time.Time) []Row {
	keys := store.sortedKeys()
	var rows []Row
	for _, key := range keys {
		if cutoff != nil && expired(store[key], key, *cutoff) {
			continue
		}
		for i, entry := range store[key] {
			rows = append(rows, Row{
				DayKey:      string(key),
				Position:    i,
				Time:        entry.Time,
				EndTime:     entry.EndTime,
				Title:       entry.Title,
				Color:       entry.Color,
				Repeat:      string(entry.Repeat),
				RepeatUntil: string(entry.RepeatUntil),
				RepeatDays:  marshalInts(entry.RepeatDays),
				SkipDates:   marshalKeys(entry.SkipDates),
			})
		}
	}
	return rows
}

// expired reports whether a whole day bucket is past retention. A bucket
// survives when any of its entries still recurs at or beyond the cutoff.
func expired(entries []Entry, key DayKey, cutoff time.Time) bool {
	day, ok := key.Parse()
	if !ok {
		return false
	}
	if !day.Before(cutoff) {
		return false
	}
	for _, entry := range entries {
		if !entry.Recurring() {
			continue
		}
		if entry.RepeatUntil == "" {
			return false
		}
		if until, ok := entry.RepeatUntil.Parse(); ok && !until.Before(cutoff) {
			return false
		}
	}
	return true
}

// FromRows regroups flat rows into the day-keyed store. Rows are ordered
// by position within each day; the stored order of days does not matter.
func FromRows(rows []Row) Store {
	ordered := make([]Row, len(rows))
	copy(ordered, rows)
	sort.SliceStable(ordered, func(i, j int) bool {
		if ordered[i].DayKey != ordered[j].DayKey {
			return ordered[i].DayKey < ordered[j].DayKey
		}
		return ordered[i].Position < ordered[j].Position
	})

	store := make(Store)
	for _, row := range ordered {
		entry := Entry{
			Time:        row.Time,
			EndTime:     row.EndTime,
			Title:       row.Title,
			Color:       row.Color,
			Repeat:      Repeat(row.Repeat),
			RepeatUntil: DayKey(row.RepeatUntil),
			RepeatDays:  unmarshalInts(row.RepeatDays),
			SkipDates:   unmarshalKeys(row.SkipDates),
		}
		key := DayKey(row.DayKey)
		store[key] = append(store[key], entry)
	}
	return store
}

func marshalInts(values []int) string {
	if len(values) == 0 {
		return ""
	}
	raw, err := json.Marshal(values)
	if err != nil {
		return ""
	}
	return string(raw)
}

func unmarshalInts(raw string) []int {
	if raw == "" {
		return nil
	}
	var values []int
	if err := json.Unmarshal([]byte(raw), &values); err != nil {
		return nil
	}
	return values
}

func marshalKeys(values []DayKey) string {
	if len(values) == 0 {
		return ""
	}
	raw, err := json.Marshal(values)
	if err != nil {
		return ""
	}
	return string(raw)
}

func unmarshalKeys(raw string) []DayKey {
	if raw == "" {
		return nil
	}
	var values []DayKey
	if err := json.Unmarshal([]byte(raw), &values); err != nil {
		return nil
	}
	return values
}
