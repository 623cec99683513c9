package schedule

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDayKeyParse(t *testing.T) {
	day, ok := DayKey("2024-3-4").Parse()
	require.True(t, ok)
	assert.Equal(t, date(2024, time.March, 4), day)

	// Zero padding is accepted even though keys are minted without it.
	day, ok = DayKey("2024-03-04").Parse()
	require.True(t, ok)
	assert.Equal(t, date(2024, time.March, 4), day)

	for _, bad := range []string{"", "24-3-4", "2024-3", "2024-3-4-5", "2024-003-4", "march 4th"} {
		_, ok := DayKey(bad).Parse()
		assert.False(t, ok, "key %q", bad)
	}
}

func TestKeyFor(t *testing.T) {
	assert.Equal(t, DayKey("2024-3-4"), KeyFor(date(2024, time.March, 4)))
	assert.Equal(t, DayKey("2024-12-31"), KeyFor(date(2024, time.December, 31)))
	assert.Equal(t, DayKey("2024-1-1"), MakeKey(2024, 1, 1))
}

func TestDayKeyBefore(t *testing.T) {
	// Comparison is by parsed date, never lexical: "2024-10-1" sorts
	// after "2024-9-1" even though the string compares lower.
	assert.True(t, DayKey("2024-9-1").Before("2024-10-1"))
	assert.False(t, DayKey("2024-10-1").Before("2024-9-1"))
	assert.False(t, DayKey("bogus").Before("2024-1-1"))
	assert.False(t, DayKey("2024-1-1").Before("bogus"))
}

func TestDayKeyAddDays(t *testing.T) {
	assert.Equal(t, DayKey("2024-3-1"), DayKey("2024-2-29").AddDays(1))
	assert.Equal(t, DayKey("2024-2-29"), DayKey("2024-3-1").AddDays(-1))
	assert.Equal(t, DayKey("2023-12-31"), DayKey("2024-1-1").AddDays(-1))
	assert.Equal(t, DayKey("junk"), DayKey("junk").AddDays(-1))
}
