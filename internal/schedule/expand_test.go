package schedule

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func date(year int, month time.Month, day int) time.Time {
	return time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
}

func TestOccurrencesOnDirectEntries(t *testing.T) {
	store := Store{
		"2024-3-4": {
			{Time: "09:00", Title: "Standup"},
			{Time: "14:00", Title: "Review"},
		},
	}

	got := OccurrencesOn(store, date(2024, time.March, 4))
	require.Len(t, got, 2)
	assert.Equal(t, "Standup", got[0].Entry.Title)
	assert.Equal(t, DayKey("2024-3-4"), got[0].OriginDayKey)
	assert.Equal(t, 0, got[0].OriginIndex)
	assert.False(t, got[0].IsRepeated)
	assert.Equal(t, 1, got[1].OriginIndex)
}

func TestWeeklyRecurrence(t *testing.T) {
	// 2024-3-4 is a Monday.
	store := Store{
		"2024-3-4": {{Time: "09:00", Title: "Standup", Repeat: RepeatWeekly}},
	}

	got := OccurrencesOn(store, date(2024, time.March, 11))
	require.Len(t, got, 1)
	assert.True(t, got[0].IsRepeated)
	assert.Equal(t, "Standup", got[0].Entry.Title)
	assert.Equal(t, DayKey("2024-3-4"), got[0].OriginDayKey)

	assert.Empty(t, OccurrencesOn(store, date(2024, time.March, 12)))
	assert.Len(t, OccurrencesOn(store, date(2024, time.March, 25)), 1)

	// Never before the origin.
	assert.Empty(t, OccurrencesOn(store, date(2024, time.February, 26)))
}

func TestWeeklyRecurrenceHonorsRepeatUntil(t *testing.T) {
	store := Store{
		"2024-3-4": {{Time: "09:00", Title: "Standup", Repeat: RepeatWeekly, RepeatUntil: "2024-3-18"}},
	}

	// Inclusive cutoff: the 18th still occurs, the 25th does not.
	assert.Len(t, OccurrencesOn(store, date(2024, time.March, 18)), 1)
	assert.Empty(t, OccurrencesOn(store, date(2024, time.March, 25)))
}

func TestDailyWithRestrictedWeekdays(t *testing.T) {
	// Mon/Wed/Fri only.
	store := Store{
		"2024-3-4": {{Time: "07:00", Title: "Run", Repeat: RepeatDaily, RepeatDays: []int{1, 3, 5}}},
	}

	for day := 4; day <= 17; day++ {
		target := date(2024, time.March, day)
		got := OccurrencesOn(store, target)
		want := 0
		switch target.Weekday() {
		case time.Monday, time.Wednesday, time.Friday:
			want = 1
		}
		if day == 4 {
			// Origin day emits a direct occurrence, not a repeated one.
			require.Len(t, got, want)
			assert.False(t, got[0].IsRepeated)
			continue
		}
		assert.Len(t, got, want, "day %d (%s)", day, target.Weekday())
	}
}

func TestDailyWithoutRepeatDaysMeansEveryDay(t *testing.T) {
	store := Store{
		"2024-3-4": {{Time: "07:00", Title: "Journal", Repeat: RepeatDaily}},
	}
	for day := 5; day <= 11; day++ {
		assert.Len(t, OccurrencesOn(store, date(2024, time.March, day)), 1, "day %d", day)
	}
}

func TestBiweeklyRecurrence(t *testing.T) {
	store := Store{
		"2024-3-4": {{Time: "10:00", Title: "Sprint planning", Repeat: RepeatBiweekly}},
	}
	assert.Empty(t, OccurrencesOn(store, date(2024, time.March, 11)))
	assert.Len(t, OccurrencesOn(store, date(2024, time.March, 18)), 1)
	assert.Empty(t, OccurrencesOn(store, date(2024, time.March, 25)))
	assert.Len(t, OccurrencesOn(store, date(2024, time.April, 1)), 1)
}

func TestMonthlyRecurrence(t *testing.T) {
	store := Store{
		"2024-1-31": {{Time: "12:00", Title: "Invoices", Repeat: RepeatMonthly}},
	}
	// Only months with a 31st produce an occurrence.
	assert.Len(t, OccurrencesOn(store, date(2024, time.March, 31)), 1)
	assert.Empty(t, OccurrencesOn(store, date(2024, time.February, 29)))
	assert.Empty(t, OccurrencesOn(store, date(2024, time.April, 30)))
	assert.Len(t, OccurrencesOn(store, date(2024, time.May, 31)), 1)
}

func TestSkipDateSuppressesExactlyOneDate(t *testing.T) {
	store := Store{
		"2024-3-4": {{Time: "09:00", Title: "Standup", Repeat: RepeatWeekly, SkipDates: []DayKey{"2024-3-11"}}},
	}
	assert.Empty(t, OccurrencesOn(store, date(2024, time.March, 11)))
	assert.Len(t, OccurrencesOn(store, date(2024, time.March, 18)), 1)
	assert.Len(t, OccurrencesOn(store, date(2024, time.March, 25)), 1)
}

func TestOriginDayNotDuplicatedByRecurrence(t *testing.T) {
	store := Store{
		"2024-3-4": {{Time: "09:00", Title: "Standup", Repeat: RepeatDaily}},
	}
	got := OccurrencesOn(store, date(2024, time.March, 4))
	require.Len(t, got, 1)
	assert.False(t, got[0].IsRepeated)
}

func TestMalformedOriginKeysAreSkipped(t *testing.T) {
	store := Store{
		"not-a-date": {{Time: "09:00", Title: "Ghost", Repeat: RepeatDaily}},
		"2024-3-4":   {{Time: "10:00", Title: "Real", Repeat: RepeatDaily}},
	}
	got := OccurrencesOn(store, date(2024, time.March, 5))
	require.Len(t, got, 1)
	assert.Equal(t, "Real", got[0].Entry.Title)
}

func TestSortByTime(t *testing.T) {
	occs := []Occurrence{
		{Entry: Entry{Time: "14:00", Title: "b"}},
		{Entry: Entry{Time: "09:00", Title: "a"}},
		{Entry: Entry{Time: "09:00", Title: "c"}},
	}
	SortByTime(occs)
	assert.Equal(t, "a", occs[0].Entry.Title)
	assert.Equal(t, "c", occs[1].Entry.Title)
	assert.Equal(t, "b", occs[2].Entry.Title)
}
