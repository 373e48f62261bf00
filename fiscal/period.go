// Package fiscal buckets calendar dates into the April–March fiscal year used
// for completion tracking. Periods are addressed by "YYYY-MM" keys naming the
// calendar month the period anchors on.
package fiscal

import (
	"errors"
	"fmt"
	"time"

	"taskdesk/recurrence"
)

const (
	periodKeyLayout = "2006-01"

	// StartMonth is the first month of the fiscal year.
	StartMonth = time.April

	// DefaultHorizonYears bounds how far forward period pickers reach.
	DefaultHorizonYears = 5
)

// ErrNotPeriodAddressable marks patterns (daily, weekly) that are tracked by
// occurrence date rather than by month bucket.
var ErrNotPeriodAddressable = errors.New("pattern is not period-addressable")

// PeriodKey returns the "YYYY-MM" key of the calendar month containing t.
func PeriodKey(t time.Time) string {
	return t.Format(periodKeyLayout)
}

// ParsePeriodKey returns the first instant of the month a period key names.
func ParsePeriodKey(key string) (time.Time, error) {
	t, err := time.Parse(periodKeyLayout, key)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid period key %q: %w", key, err)
	}
	return t, nil
}

// FiscalYear returns the calendar year the fiscal year containing t starts in.
// January–March belong to the fiscal year that started the previous April.
func FiscalYear(t time.Time) int {
	if t.Month() < StartMonth {
		return t.Year() - 1
	}
	return t.Year()
}

// FiscalYearOf is FiscalYear for a period key.
func FiscalYearOf(key string) (int, error) {
	t, err := ParsePeriodKey(key)
	if err != nil {
		return 0, err
	}
	return FiscalYear(t), nil
}

// FiscalYearMonths returns the 12 period keys of the fiscal year starting in
// April of startYear, ending with March of the following year.
func FiscalYearMonths(startYear int) []string {
	keys := make([]string, 0, 12)
	cur := time.Date(startYear, StartMonth, 1, 0, 0, 0, 0, time.UTC)
	for i := 0; i < 12; i++ {
		keys = append(keys, PeriodKey(cur))
		cur = cur.AddDate(0, 1, 0)
	}
	return keys
}

// ApplicablePeriods returns the subset of a fiscal year's months a pattern is
// tracked against: every month for monthly, the quarter starts for quarterly,
// April and October for half-yearly, April alone for yearly.
func ApplicablePeriods(p recurrence.Pattern, startYear int) ([]string, error) {
	if !p.Valid() {
		return nil, fmt.Errorf("%w: %q", recurrence.ErrInvalidPattern, p)
	}
	step := p.MonthStep()
	if step == 0 {
		return nil, fmt.Errorf("%w: %q", ErrNotPeriodAddressable, p)
	}
	months := FiscalYearMonths(startYear)
	keys := make([]string, 0, 12/step)
	for i := 0; i < len(months); i += step {
		keys = append(keys, months[i])
	}
	return keys, nil
}

// DisplayPeriods returns the applicable period keys from the current fiscal
// month forward, spanning horizonYears fiscal years (DefaultHorizonYears when
// horizonYears <= 0). Past periods are excluded from new-entry surfaces even
// though records persisted for them stay retrievable by direct key.
func DisplayPeriods(p recurrence.Pattern, now time.Time, horizonYears int) ([]string, error) {
	if horizonYears <= 0 {
		horizonYears = DefaultHorizonYears
	}
	currentKey := PeriodKey(now)
	startFY := FiscalYear(now)

	var keys []string
	for fy := startFY; fy < startFY+horizonYears; fy++ {
		periods, err := ApplicablePeriods(p, fy)
		if err != nil {
			return nil, err
		}
		for _, key := range periods {
			// Period keys are zero-padded, so string order is date order.
			if key >= currentKey {
				keys = append(keys, key)
			}
		}
	}
	return keys, nil
}
