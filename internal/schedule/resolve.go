package schedule

// Scope selects how far an edit or delete on a recurring occurrence
// reaches.
type Scope string

const (
	// ScopeSingle affects only the targeted occurrence.
	ScopeSingle Scope = "single"
	// ScopeFuture affects the targeted occurrence and everything after it.
	ScopeFuture Scope = "future"
)

// Meta carries the back-reference from an occurrence to its stored entry.
// A zero OriginDayKey means the occurrence is a direct entry on its own
// day.
type Meta struct {
	OriginDayKey DayKey `json:"originDayKey,omitempty"`
	OriginIndex  int    `json:"originIndex"`
}

// Resolution is the outcome of resolving a mutation target. When Found
// is false the source entry no longer exists and the caller must treat
// the mutation as a no-op; Store is then the input store unchanged.
type Resolution struct {
	Store        Store
	TargetDayKey DayKey
	TargetIndex  int
	Found        bool
}

// Resolve locates the entry a mutation on an occurrence must touch.
//
// A direct occurrence resolves to itself. A virtual occurrence of a
// recurring entry is split according to scope: "single" suppresses the
// one date via a skip date and materialises a standalone copy there;
// "future" caps the origin's recurrence at the day before the occurrence
// and starts a fresh recurrence origin on the occurrence's day. Once a
// "single" split has run, the clone is an ordinary entry and a repeat
// resolve on it takes the direct path, so the operation is idempotent.
//
// The input store is never mutated; the returned Resolution carries a
// replacement snapshot whenever a split happened.
func Resolve(store Store, occKey DayKey, occIndex int, meta Meta, scope Scope) Resolution {
	if meta.OriginDayKey == "" {
		return Resolution{Store: store, TargetDayKey: occKey, TargetIndex: occIndex, Found: true}
	}

	entries, exists := store[meta.OriginDayKey]
	if !exists || meta.OriginIndex < 0 || meta.OriginIndex >= len(entries) {
		return Resolution{Store: store, TargetIndex: -1}
	}

	if occKey == meta.OriginDayKey {
		return Resolution{Store: store, TargetDayKey: meta.OriginDayKey, TargetIndex: meta.OriginIndex, Found: true}
	}

	next := store.Clone()
	origin := next[meta.OriginDayKey][meta.OriginIndex]

	switch scope {
	case ScopeFuture:
		capped := origin
		capped.RepeatUntil = occKey.AddDays(-1)
		next[meta.OriginDayKey][meta.OriginIndex] = capped

		// New recurrence origin: keeps the frequency and any weekday
		// restriction, starts with no skip dates of its own.
		branch := origin.clone()
		branch.SkipDates = nil
		next[occKey] = append(next[occKey], branch)
	default:
		if !origin.skips(occKey) {
			origin.SkipDates = append(append([]DayKey(nil), origin.SkipDates...), occKey)
			next[meta.OriginDayKey][meta.OriginIndex] = origin
		}

		// The materialised copy is a plain one-off entry.
		oneOff := origin.clone()
		oneOff.Repeat = RepeatNone
		oneOff.RepeatUntil = ""
		oneOff.RepeatDays = nil
		oneOff.SkipDates = nil
		next[occKey] = append(next[occKey], oneOff)
	}

	return Resolution{
		Store:        next,
		TargetDayKey: occKey,
		TargetIndex:  len(next[occKey]) - 1,
		Found:        true,
	}
}

// DeleteOccurrence removes one occurrence. Deleting a virtual recurrence
// instance only records a skip date on the origin entry; deleting a
// direct entry removes it from its day list, dropping the day key when
// the list empties. A stale back-reference is a silent no-op.
func DeleteOccurrence(store Store, occKey DayKey, occIndex int, meta Meta) Store {
	if meta.OriginDayKey == "" || meta.OriginDayKey == occKey {
		key := occKey
		index := occIndex
		if meta.OriginDayKey == occKey {
			index = meta.OriginIndex
		}
		entries, exists := store[key]
		if !exists || index < 0 || index >= len(entries) {
			return store
		}
		next := store.Clone()
		next[key] = append(next[key][:index], next[key][index+1:]...)
		if len(next[key]) == 0 {
			delete(next, key)
		}
		return next
	}

	entries, exists := store[meta.OriginDayKey]
	if !exists || meta.OriginIndex < 0 || meta.OriginIndex >= len(entries) {
		return store
	}
	next := store.Clone()
	origin := next[meta.OriginDayKey][meta.OriginIndex]
	if !origin.skips(occKey) {
		origin.SkipDates = append(origin.SkipDates, occKey)
		next[meta.OriginDayKey][meta.OriginIndex] = origin
	}
	return next
}

// DeleteFuture ends a recurrence at the day before the given occurrence.
// Deleting "this and future" on the origin day itself removes the entry
// entirely.
func DeleteFuture(store Store, occKey DayKey, occIndex int, meta Meta) Store {
	if meta.OriginDayKey == "" || meta.OriginDayKey == occKey {
		return DeleteOccurrence(store, occKey, occIndex, meta)
	}
	entries, exists := store[meta.OriginDayKey]
	if !exists || meta.OriginIndex < 0 || meta.OriginIndex >= len(entries) {
		return store
	}
	next := store.Clone()
	origin := next[meta.OriginDayKey][meta.OriginIndex]
	origin.RepeatUntil = occKey.AddDays(-1)
	next[meta.OriginDayKey][meta.OriginIndex] = origin
	return next
}
