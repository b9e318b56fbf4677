package schedule

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func localDate(y int, mo time.Month, d, h, min, sec, ms int) time.Time {
	return time.Date(y, mo, d, h, min, sec, ms*int(time.Millisecond), time.Local)
}

func TestIsOverdue_DateOnlyBoundary(t *testing.T) {
	// A date-only task is late only once its whole day has elapsed.
	due := "2024-01-15"

	notYet := localDate(2024, time.January, 15, 23, 59, 59, 0)
	assert.False(t, IsOverdue(due, "", notYet))

	justPast := localDate(2024, time.January, 16, 0, 0, 0, 1)
	assert.True(t, IsOverdue(due, "", justPast))
}

func TestIsOverdue_DateTimeBoundary(t *testing.T) {
	due, at := "2024-01-15", "14:00"

	before := localDate(2024, time.January, 15, 13, 59, 59, 0)
	assert.False(t, IsOverdue(due, at, before))

	after := localDate(2024, time.January, 15, 14, 0, 1, 0)
	assert.True(t, IsOverdue(due, at, after))

	exactly := localDate(2024, time.January, 15, 14, 0, 0, 0)
	assert.False(t, IsOverdue(due, at, exactly), "not overdue at the deadline itself")
}

func TestIsOverdue_NoDueDateNeverOverdue(t *testing.T) {
	nows := []time.Time{
		localDate(1970, time.January, 1, 0, 0, 0, 0),
		localDate(2024, time.June, 1, 12, 0, 0, 0),
		localDate(2999, time.December, 31, 23, 59, 59, 999),
	}
	for _, now := range nows {
		assert.False(t, IsOverdue("", "", now))
		assert.False(t, IsOverdue("", "09:00", now), "time without date is meaningless")
	}
}

func TestIsOverdue_MalformedInputsDegrade(t *testing.T) {
	now := localDate(2024, time.January, 16, 12, 0, 0, 0)

	// Unparseable date: no deadline at all.
	assert.False(t, IsOverdue("not-a-date", "09:00", now))

	// Unparseable time on a valid date: falls back to end of day.
	assert.True(t, IsOverdue("2024-01-15", "not-a-time", now))
	assert.False(t, IsOverdue("2024-01-16", "not-a-time", now))
}

func TestDeadline_EndOfDayForDateOnly(t *testing.T) {
	deadline, ok := Deadline("2024-01-15", "", time.Local)
	require.True(t, ok)
	assert.Equal(t, localDate(2024, time.January, 15, 23, 59, 59, 999), deadline)
}

func TestDueInstant_DateOnlyIsMidnight(t *testing.T) {
	due, ok := DueInstant("2024-01-15", "", time.Local)
	require.True(t, ok)
	assert.Equal(t, localDate(2024, time.January, 15, 0, 0, 0, 0), due)
}

func TestDueWithin_WindowBoundaries(t *testing.T) {
	now := localDate(2024, time.January, 15, 9, 5, 0, 0)
	window := 5 * time.Minute

	// Due exactly 5 minutes ago: included.
	assert.True(t, DueWithin("2024-01-15", "09:00", now, window))
	// Due right now: included.
	assert.True(t, DueWithin("2024-01-15", "09:05", now, window))
	// Due 5m1s ago: excluded.
	assert.False(t, DueWithin("2024-01-15", "09:00", now.Add(time.Second), window))
	// Still in the future: excluded.
	assert.False(t, DueWithin("2024-01-15", "09:06", now, window))
	// No due date: excluded.
	assert.False(t, DueWithin("", "", now, window))
}
