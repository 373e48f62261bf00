package recurrence

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func TestParse(t *testing.T) {
	p, err := Parse("quarterly")
	require.NoError(t, err)
	assert.Equal(t, Quarterly, p)

	_, err = Parse("fortnightly")
	assert.ErrorIs(t, err, ErrInvalidPattern)
}

func TestNext_DayBased(t *testing.T) {
	next, err := Next(Daily, date(2026, time.March, 31))
	require.NoError(t, err)
	assert.Equal(t, date(2026, time.April, 1), next)

	next, err = Next(Weekly, date(2026, time.February, 25))
	require.NoError(t, err)
	assert.Equal(t, date(2026, time.March, 4), next)
}

func TestNext_MonthlyClampsToShortMonth(t *testing.T) {
	next, err := Next(Monthly, date(2026, time.January, 31))
	require.NoError(t, err)
	assert.Equal(t, date(2026, time.February, 28), next)

	// Leap year keeps the 29th.
	next, err = Next(Monthly, date(2028, time.January, 31))
	require.NoError(t, err)
	assert.Equal(t, date(2028, time.February, 29), next)
}

func TestNext_MonthlyClampDoesNotDrift(t *testing.T) {
	next, err := Next(Monthly, date(2026, time.February, 28))
	require.NoError(t, err)
	assert.Equal(t, date(2026, time.March, 31), next)

	// A full year starting at Jan 31 must come back to Jan 31.
	cur := date(2026, time.January, 31)
	for i := 0; i < 12; i++ {
		var err error
		cur, err = Next(Monthly, cur)
		require.NoError(t, err)
	}
	assert.Equal(t, date(2027, time.January, 31), cur)
}

func TestNext_QuarterlyAndYearly(t *testing.T) {
	next, err := Next(Quarterly, date(2026, time.January, 31))
	require.NoError(t, err)
	assert.Equal(t, date(2026, time.April, 30), next)

	next, err = Next(HalfYearly, date(2026, time.April, 15))
	require.NoError(t, err)
	assert.Equal(t, date(2026, time.October, 15), next)

	next, err = Next(Yearly, date(2028, time.February, 29))
	require.NoError(t, err)
	assert.Equal(t, date(2029, time.February, 28), next)
}

func TestNext_InvalidPattern(t *testing.T) {
	_, err := Next(Pattern("hourly"), date(2026, time.January, 1))
	assert.ErrorIs(t, err, ErrInvalidPattern)
}

func TestInRange(t *testing.T) {
	got, err := InRange(Monthly, date(2026, time.January, 31), date(2026, time.April, 30))
	require.NoError(t, err)
	assert.Equal(t, []time.Time{
		date(2026, time.January, 31),
		date(2026, time.February, 28),
		date(2026, time.March, 31),
		date(2026, time.April, 30),
	}, got)
}

func TestInRange_EmptyWhenStartAfterEnd(t *testing.T) {
	got, err := InRange(Daily, date(2026, time.May, 2), date(2026, time.May, 1))
	require.NoError(t, err)
	assert.Empty(t, got)
}

func TestInRange_InvalidPattern(t *testing.T) {
	_, err := InRange(Pattern(""), date(2026, time.May, 1), date(2026, time.May, 2))
	assert.ErrorIs(t, err, ErrInvalidPattern)
}

func TestCount_MatchesRangeLength(t *testing.T) {
	cases := []struct {
		pattern    Pattern
		start, end time.Time
	}{
		{Daily, date(2026, time.January, 1), date(2026, time.March, 31)},
		{Weekly, date(2026, time.January, 5), date(2026, time.June, 29)},
		{Monthly, date(2026, time.January, 31), date(2027, time.January, 31)},
		{Quarterly, date(2026, time.April, 1), date(2028, time.March, 31)},
		{Yearly, date(2024, time.February, 29), date(2030, time.March, 1)},
	}
	for _, tc := range cases {
		seq, err := InRange(tc.pattern, tc.start, tc.end)
		require.NoError(t, err)
		n, err := Count(tc.pattern, tc.start, tc.end)
		require.NoError(t, err)
		assert.Equal(t, len(seq), n, "pattern %s", tc.pattern)
	}
}

func TestCount_ZeroWhenStartAfterEnd(t *testing.T) {
	n, err := Count(Weekly, date(2026, time.May, 2), date(2026, time.May, 1))
	require.NoError(t, err)
	assert.Zero(t, n)
}

func TestIsOccurrence(t *testing.T) {
	anchor := date(2026, time.January, 31)

	ok, err := IsOccurrence(Monthly, anchor, date(2026, time.February, 28))
	require.NoError(t, err)
	assert.True(t, ok)

	// Feb 27 is not on the clamped schedule.
	ok, err = IsOccurrence(Monthly, anchor, date(2026, time.February, 27))
	require.NoError(t, err)
	assert.False(t, ok)

	// Mar 31, reached through the Feb clamp, is.
	ok, err = IsOccurrence(Monthly, anchor, date(2026, time.March, 31))
	require.NoError(t, err)
	assert.True(t, ok)

	// Before the anchor is never an occurrence.
	ok, err = IsOccurrence(Monthly, anchor, date(2025, time.December, 31))
	require.NoError(t, err)
	assert.False(t, ok)

	// The anchor itself is.
	ok, err = IsOccurrence(Weekly, anchor, anchor)
	require.NoError(t, err)
	assert.True(t, ok)
}
