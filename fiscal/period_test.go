package fiscal

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"taskdesk/recurrence"
)

func TestPeriodKey(t *testing.T) {
	assert.Equal(t, "2026-04", PeriodKey(time.Date(2026, time.April, 17, 10, 0, 0, 0, time.UTC)))
	assert.Equal(t, "2027-01", PeriodKey(time.Date(2027, time.January, 1, 0, 0, 0, 0, time.UTC)))
}

func TestParsePeriodKey(t *testing.T) {
	got, err := ParsePeriodKey("2026-07")
	require.NoError(t, err)
	assert.Equal(t, time.Date(2026, time.July, 1, 0, 0, 0, 0, time.UTC), got)

	_, err = ParsePeriodKey("2026/07")
	assert.Error(t, err)
}

func TestFiscalYear(t *testing.T) {
	assert.Equal(t, 2026, FiscalYear(time.Date(2026, time.April, 1, 0, 0, 0, 0, time.UTC)))
	assert.Equal(t, 2026, FiscalYear(time.Date(2027, time.March, 31, 0, 0, 0, 0, time.UTC)))
	assert.Equal(t, 2025, FiscalYear(time.Date(2026, time.January, 15, 0, 0, 0, 0, time.UTC)))

	fy, err := FiscalYearOf("2027-01")
	require.NoError(t, err)
	assert.Equal(t, 2026, fy)
}

func TestFiscalYearMonths(t *testing.T) {
	months := FiscalYearMonths(2026)
	require.Len(t, months, 12)
	assert.Equal(t, "2026-04", months[0])
	assert.Equal(t, "2026-12", months[8])
	assert.Equal(t, "2027-01", months[9])
	assert.Equal(t, "2027-03", months[11])
}

func TestApplicablePeriods(t *testing.T) {
	quarterly, err := ApplicablePeriods(recurrence.Quarterly, 2026)
	require.NoError(t, err)
	assert.Equal(t, []string{"2026-04", "2026-07", "2026-10", "2027-01"}, quarterly)

	half, err := ApplicablePeriods(recurrence.HalfYearly, 2026)
	require.NoError(t, err)
	assert.Equal(t, []string{"2026-04", "2026-10"}, half)

	yearly, err := ApplicablePeriods(recurrence.Yearly, 2026)
	require.NoError(t, err)
	assert.Equal(t, []string{"2026-04"}, yearly)

	monthly, err := ApplicablePeriods(recurrence.Monthly, 2026)
	require.NoError(t, err)
	assert.Len(t, monthly, 12)
}

func TestApplicablePeriods_SubsetOfFiscalYear(t *testing.T) {
	months := map[string]bool{}
	for _, m := range FiscalYearMonths(2026) {
		months[m] = true
	}
	for _, p := range []recurrence.Pattern{
		recurrence.Monthly, recurrence.Quarterly, recurrence.HalfYearly, recurrence.Yearly,
	} {
		keys, err := ApplicablePeriods(p, 2026)
		require.NoError(t, err)
		for _, key := range keys {
			assert.True(t, months[key], "%s produced %s outside the fiscal year", p, key)
		}
	}
}

func TestApplicablePeriods_DayBasedPatternsRejected(t *testing.T) {
	_, err := ApplicablePeriods(recurrence.Daily, 2026)
	assert.ErrorIs(t, err, ErrNotPeriodAddressable)

	_, err = ApplicablePeriods(recurrence.Weekly, 2026)
	assert.ErrorIs(t, err, ErrNotPeriodAddressable)

	_, err = ApplicablePeriods(recurrence.Pattern("never"), 2026)
	assert.ErrorIs(t, err, recurrence.ErrInvalidPattern)
}

func TestDisplayPeriods(t *testing.T) {
	now := time.Date(2026, time.June, 15, 0, 0, 0, 0, time.UTC)

	keys, err := DisplayPeriods(recurrence.Quarterly, now, 1)
	require.NoError(t, err)
	// 2026-04 is already past; the fiscal year's remaining quarters show.
	assert.Equal(t, []string{"2026-07", "2026-10", "2027-01"}, keys)

	keys, err = DisplayPeriods(recurrence.Yearly, now, 0)
	require.NoError(t, err)
	// Default horizon: five fiscal years, current April already gone.
	assert.Equal(t, []string{"2027-04", "2028-04", "2029-04", "2030-04"}, keys)
}

func TestDisplayPeriods_CurrentMonthIncluded(t *testing.T) {
	now := time.Date(2026, time.April, 1, 0, 0, 0, 0, time.UTC)
	keys, err := DisplayPeriods(recurrence.Monthly, now, 1)
	require.NoError(t, err)
	require.Len(t, keys, 12)
	assert.Equal(t, "2026-04", keys[0])
}
