package schedule

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func weeklyStandupStore() Store {
	return Store{
		"2024-3-4": {{Time: "09:00", Title: "Standup", Repeat: RepeatWeekly}},
	}
}

func TestResolveDirectEntryIsPassthrough(t *testing.T) {
	store := Store{"2024-3-4": {{Time: "09:00", Title: "Standup"}}}

	res := Resolve(store, "2024-3-4", 0, Meta{}, ScopeSingle)
	require.True(t, res.Found)
	assert.Equal(t, DayKey("2024-3-4"), res.TargetDayKey)
	assert.Equal(t, 0, res.TargetIndex)
	assert.Len(t, res.Store["2024-3-4"], 1)
}

func TestResolveMissingSourceIsNoOp(t *testing.T) {
	store := weeklyStandupStore()

	res := Resolve(store, "2024-3-11", 0, Meta{OriginDayKey: "2024-3-4", OriginIndex: 5}, ScopeSingle)
	assert.False(t, res.Found)
	assert.Equal(t, -1, res.TargetIndex)
	assert.Len(t, res.Store["2024-3-4"], 1)

	res = Resolve(store, "2024-3-11", 0, Meta{OriginDayKey: "2024-2-1", OriginIndex: 0}, ScopeFuture)
	assert.False(t, res.Found)
}

func TestResolveSameDayNeedsNoSplit(t *testing.T) {
	store := weeklyStandupStore()

	res := Resolve(store, "2024-3-4", 3, Meta{OriginDayKey: "2024-3-4", OriginIndex: 0}, ScopeFuture)
	require.True(t, res.Found)
	assert.Equal(t, 0, res.TargetIndex)
	assert.Empty(t, res.Store["2024-3-4"][0].SkipDates)
}

func TestResolveSingleScopeSplitsOutOneOff(t *testing.T) {
	store := weeklyStandupStore()

	res := Resolve(store, "2024-3-11", 0, Meta{OriginDayKey: "2024-3-4", OriginIndex: 0}, ScopeSingle)
	require.True(t, res.Found)
	assert.Equal(t, DayKey("2024-3-11"), res.TargetDayKey)

	origin := res.Store["2024-3-4"][0]
	assert.Equal(t, []DayKey{"2024-3-11"}, origin.SkipDates)
	assert.Equal(t, RepeatWeekly, origin.Repeat)

	clone := res.Store["2024-3-11"][res.TargetIndex]
	assert.Equal(t, "Standup", clone.Title)
	assert.Equal(t, RepeatNone, clone.Repeat)
	assert.Empty(t, clone.RepeatDays)
	assert.Empty(t, clone.SkipDates)
	assert.Empty(t, clone.RepeatUntil)

	// Input snapshot untouched.
	assert.Empty(t, store["2024-3-4"][0].SkipDates)
	assert.Empty(t, store["2024-3-11"])

	// The recurrence no longer produces 3-11 but keeps every other week.
	assert.Len(t, OccurrencesOn(res.Store, date(2024, time.March, 11)), 1) // the one-off itself
	assert.Len(t, OccurrencesOn(res.Store, date(2024, time.March, 18)), 1)
}

func TestResolveSingleScopeIdempotent(t *testing.T) {
	store := weeklyStandupStore()

	first := Resolve(store, "2024-3-11", 0, Meta{OriginDayKey: "2024-3-4", OriginIndex: 0}, ScopeSingle)
	require.True(t, first.Found)

	// A repeat resolve now names the clone itself: same-day path, no
	// second clone appears.
	second := Resolve(first.Store, "2024-3-11", first.TargetIndex,
		Meta{OriginDayKey: "2024-3-11", OriginIndex: first.TargetIndex}, ScopeSingle)
	require.True(t, second.Found)
	assert.Equal(t, first.TargetIndex, second.TargetIndex)
	assert.Len(t, second.Store["2024-3-11"], 1)
}

func TestResolveFutureScopeCapsAndRestarts(t *testing.T) {
	store := Store{
		"2024-3-4": {{Time: "09:00", Title: "Standup", Repeat: RepeatWeekly, SkipDates: []DayKey{"2024-3-11"}}},
	}

	res := Resolve(store, "2024-3-18", 0, Meta{OriginDayKey: "2024-3-4", OriginIndex: 0}, ScopeFuture)
	require.True(t, res.Found)

	origin := res.Store["2024-3-4"][0]
	assert.Equal(t, DayKey("2024-3-17"), origin.RepeatUntil)

	branch := res.Store["2024-3-18"][res.TargetIndex]
	assert.Equal(t, RepeatWeekly, branch.Repeat)
	assert.Empty(t, branch.SkipDates, "new recurrence origin starts with fresh skip dates")

	// Old recurrence ended on the 17th; the branch covers the 18th on.
	assert.Empty(t, OccurrencesOn(res.Store, date(2024, time.March, 11)))
	got := OccurrencesOn(res.Store, date(2024, time.March, 18))
	require.Len(t, got, 1)
	assert.False(t, got[0].IsRepeated)
	assert.Len(t, OccurrencesOn(res.Store, date(2024, time.March, 25)), 1)
}

func TestResolveFutureScopeKeepsWeekdayRestriction(t *testing.T) {
	store := Store{
		"2024-3-4": {{Time: "07:00", Title: "Run", Repeat: RepeatDaily, RepeatDays: []int{1, 3, 5}}},
	}

	res := Resolve(store, "2024-3-13", 0, Meta{OriginDayKey: "2024-3-4", OriginIndex: 0}, ScopeFuture)
	require.True(t, res.Found)
	branch := res.Store["2024-3-13"][res.TargetIndex]
	assert.Equal(t, RepeatDaily, branch.Repeat)
	assert.Equal(t, []int{1, 3, 5}, branch.RepeatDays)
}

func TestDeleteOccurrenceOfRecurringRecordsSkipOnly(t *testing.T) {
	store := weeklyStandupStore()

	next := DeleteOccurrence(store, "2024-3-11", 0, Meta{OriginDayKey: "2024-3-4", OriginIndex: 0})
	origin := next["2024-3-4"][0]
	assert.Equal(t, []DayKey{"2024-3-11"}, origin.SkipDates)
	assert.NotContains(t, next, DayKey("2024-3-11"))

	// Spec §8 example: the skip only affects the one date.
	assert.Empty(t, OccurrencesOn(next, date(2024, time.March, 11)))
	assert.Len(t, OccurrencesOn(next, date(2024, time.March, 18)), 1)
}

func TestDeleteDirectEntryRemovesEmptyDay(t *testing.T) {
	store := Store{"2024-3-4": {{Time: "09:00", Title: "One-off"}}}

	next := DeleteOccurrence(store, "2024-3-4", 0, Meta{})
	assert.NotContains(t, next, DayKey("2024-3-4"))
	// Input untouched.
	assert.Len(t, store["2024-3-4"], 1)
}

func TestDeleteOccurrenceStaleReferenceIsNoOp(t *testing.T) {
	store := weeklyStandupStore()
	next := DeleteOccurrence(store, "2024-3-11", 0, Meta{OriginDayKey: "2024-3-4", OriginIndex: 9})
	assert.Equal(t, store, next)
}

func TestDeleteFutureCapsRecurrence(t *testing.T) {
	store := weeklyStandupStore()
	next := DeleteFuture(store, "2024-3-18", 0, Meta{OriginDayKey: "2024-3-4", OriginIndex: 0})
	assert.Equal(t, DayKey("2024-3-17"), next["2024-3-4"][0].RepeatUntil)
	assert.Len(t, OccurrencesOn(next, date(2024, time.March, 11)), 1)
	assert.Empty(t, OccurrencesOn(next, date(2024, time.March, 18)))
}
