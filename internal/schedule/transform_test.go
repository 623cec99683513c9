package schedule

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRowsRoundTrip(t *testing.T) {
	store := Store{
		"2024-3-4": {
			{Time: "09:00", Title: "Standup", Repeat: RepeatWeekly, SkipDates: []DayKey{"2024-3-11"}},
			{Time: "07:00", Title: "Run", Repeat: RepeatDaily, RepeatDays: []int{1, 3, 5}},
		},
		"2024-3-6": {
			{Time: "18:00", EndTime: "19:00", Title: "Gym", Color: "#aadd88"},
		},
	}

	rows := ToRows(store, nil)
	require.Len(t, rows, 3)
	assert.Equal(t, "[1,3,5]", rows[1].RepeatDays)
	assert.Equal(t, `["2024-3-11"]`, rows[0].SkipDates)

	back := FromRows(rows)
	assert.Equal(t, store, back)
}

func TestToRowsRetentionCutoff(t *testing.T) {
	cutoff := date(2024, time.January, 1)
	store := Store{
		"2023-6-1": {{Time: "08:00", Title: "Old one-off"}},
		"2024-2-1": {{Time: "08:00", Title: "Recent"}},
	}

	rows := ToRows(store, &cutoff)
	require.Len(t, rows, 1)
	assert.Equal(t, "2024-2-1", rows[0].DayKey)
}

func TestToRowsKeepsMalformedKeys(t *testing.T) {
	cutoff := date(2024, time.January, 1)
	store := Store{
		"garbage":  {{Time: "08:00", Title: "Unparseable"}},
		"2023-6-1": {{Time: "08:00", Title: "Old"}},
	}

	rows := ToRows(store, &cutoff)
	require.Len(t, rows, 1)
	assert.Equal(t, "garbage", rows[0].DayKey)
}

func TestToRowsKeepsLiveRecurrences(t *testing.T) {
	cutoff := date(2024, time.January, 1)
	store := Store{
		// Origin predates the cutoff but the recurrence is open-ended.
		"2023-6-5": {{Time: "09:00", Title: "Standup", Repeat: RepeatWeekly}},
		// This one ended before the cutoff.
		"2023-6-6": {{Time: "10:00", Title: "Retired", Repeat: RepeatWeekly, RepeatUntil: "2023-9-1"}},
	}

	rows := ToRows(store, &cutoff)
	require.Len(t, rows, 1)
	assert.Equal(t, "2023-6-5", rows[0].DayKey)
}

func TestFromRowsOrdersByPosition(t *testing.T) {
	rows := []Row{
		{DayKey: "2024-3-4", Position: 1, Time: "14:00", Title: "Second"},
		{DayKey: "2024-3-4", Position: 0, Time: "09:00", Title: "First"},
	}
	store := FromRows(rows)
	require.Len(t, store["2024-3-4"], 2)
	assert.Equal(t, "First", store["2024-3-4"][0].Title)
	assert.Equal(t, "Second", store["2024-3-4"][1].Title)
}

func TestFromRowsToleratesBadJSON(t *testing.T) {
	rows := []Row{
		{DayKey: "2024-3-4", Time: "09:00", Title: "Standup", Repeat: "weekly", RepeatDays: "{broken", SkipDates: "also broken"},
	}
	store := FromRows(rows)
	entry := store["2024-3-4"][0]
	assert.Nil(t, entry.RepeatDays)
	assert.Nil(t, entry.SkipDates)
}
