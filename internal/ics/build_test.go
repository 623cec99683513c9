package ics

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/serdarsalim/timespent-sub000/internal/schedule"
)

func TestBuildEmitsOneEventPerEntry(t *testing.T) {
	store := schedule.Store{
		"2024-3-4": {
			{Time: "09:00", EndTime: "09:30", Title: "Standup"},
			{Time: "18:00", Title: "Gym"},
		},
		"2024-3-5": {
			{Title: "Travel day"},
		},
	}

	out, err := Build(store, "My Schedule", time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC))
	require.NoError(t, err)

	assert.Equal(t, 3, strings.Count(out, "BEGIN:VEVENT"))
	assert.Contains(t, out, "SUMMARY:Standup")
	assert.Contains(t, out, "UID:2024-3-4-0@timespent")
	assert.Contains(t, out, "X-WR-CALNAME:My Schedule")
}

func TestBuildRecurringEntryCarriesRule(t *testing.T) {
	store := schedule.Store{
		"2024-3-4": {
			{Time: "09:00", Title: "Standup", Repeat: schedule.RepeatWeekly,
				SkipDates: []schedule.DayKey{"2024-3-11"}},
		},
	}

	out, err := Build(store, "", time.Now())
	require.NoError(t, err)

	assert.Contains(t, out, "RRULE:FREQ=WEEKLY")
	assert.Contains(t, out, "EXDATE:20240311T090000Z")
}

func TestBuildBiweeklyUsesInterval(t *testing.T) {
	store := schedule.Store{
		"2024-3-4": {
			{Time: "10:00", Title: "Payday review", Repeat: schedule.RepeatBiweekly, RepeatUntil: "2024-6-1"},
		},
	}

	out, err := Build(store, "", time.Now())
	require.NoError(t, err)

	assert.Contains(t, out, "FREQ=WEEKLY")
	assert.Contains(t, out, "INTERVAL=2")
	assert.Contains(t, out, "UNTIL=")
}

func TestBuildDailyWeekdayRestrictionBecomesByday(t *testing.T) {
	store := schedule.Store{
		"2024-3-4": {
			{Time: "07:00", Title: "Run", Repeat: schedule.RepeatDaily, RepeatDays: []int{1, 3, 5}},
		},
	}

	out, err := Build(store, "", time.Now())
	require.NoError(t, err)

	assert.Contains(t, out, "BYDAY=MO,WE,FR")
}

func TestBuildSkipsMalformedDayKeys(t *testing.T) {
	store := schedule.Store{
		"not-a-day": {{Time: "09:00", Title: "Lost"}},
		"2024-3-4":  {{Time: "09:00", Title: "Kept"}},
	}

	out, err := Build(store, "", time.Now())
	require.NoError(t, err)

	assert.NotContains(t, out, "Lost")
	assert.Contains(t, out, "Kept")
}
