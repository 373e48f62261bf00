package recurrence

import (
	"errors"
	"fmt"
	"time"
)

// Pattern is the repetition cadence of a recurring task.
type Pattern string

const (
	Daily      Pattern = "daily"
	Weekly     Pattern = "weekly"
	Monthly    Pattern = "monthly"
	Quarterly  Pattern = "quarterly"
	HalfYearly Pattern = "half-yearly"
	Yearly     Pattern = "yearly"
)

var ErrInvalidPattern = errors.New("invalid recurrence pattern")

// Parse validates a raw pattern string coming from a request or a stored document.
func Parse(s string) (Pattern, error) {
	p := Pattern(s)
	if !p.Valid() {
		return "", fmt.Errorf("%w: %q", ErrInvalidPattern, s)
	}
	return p, nil
}

func (p Pattern) Valid() bool {
	switch p {
	case Daily, Weekly, Monthly, Quarterly, HalfYearly, Yearly:
		return true
	}
	return false
}

// MonthStep returns the month stride for month-based patterns, 0 for day-based ones.
func (p Pattern) MonthStep() int {
	switch p {
	case Monthly:
		return 1
	case Quarterly:
		return 3
	case HalfYearly:
		return 6
	case Yearly:
		return 12
	}
	return 0
}

func (p Pattern) dayStep() int {
	switch p {
	case Daily:
		return 1
	case Weekly:
		return 7
	}
	return 0
}

// Next returns the occurrence one pattern step after from.
//
// Month-based steps clamp the day-of-month to the last valid day of the target
// month instead of rolling over (Jan 31 + 1 month = Feb 28/29). A date that is
// the last day of its month advances to the last day of the target month, so a
// clamped schedule returns to day 31 as soon as the months are long enough
// (Feb 28 + 1 month = Mar 31).
func Next(p Pattern, from time.Time) (time.Time, error) {
	if d := p.dayStep(); d > 0 {
		return from.AddDate(0, 0, d), nil
	}
	if m := p.MonthStep(); m > 0 {
		return addMonthsClamped(from, m), nil
	}
	return time.Time{}, fmt.Errorf("%w: %q", ErrInvalidPattern, p)
}

// InRange enumerates every occurrence in [start, end], starting at start itself.
// start after end yields an empty sequence, not an error.
func InRange(p Pattern, start, end time.Time) ([]time.Time, error) {
	if !p.Valid() {
		return nil, fmt.Errorf("%w: %q", ErrInvalidPattern, p)
	}
	if start.After(end) {
		return nil, nil
	}
	var out []time.Time
	for cur := start; !cur.After(end); {
		out = append(out, cur)
		next, err := Next(p, cur)
		if err != nil {
			return nil, err
		}
		cur = next
	}
	return out, nil
}

// IsOccurrence reports whether candidate falls on the schedule anchored at
// anchor. Clamping near month-end is non-uniform, so month-based patterns are
// checked by stepping forward from the anchor rather than by month arithmetic.
func IsOccurrence(p Pattern, anchor, candidate time.Time) (bool, error) {
	if !p.Valid() {
		return false, fmt.Errorf("%w: %q", ErrInvalidPattern, p)
	}
	a := dateOnly(anchor)
	c := dateOnly(candidate)
	if c.Before(a) {
		return false, nil
	}
	for cur := a; !cur.After(c); {
		if cur.Equal(c) {
			return true, nil
		}
		next, err := Next(p, cur)
		if err != nil {
			return false, err
		}
		cur = dateOnly(next)
	}
	return false, nil
}

// Count returns the number of occurrences in [start, end]. Day-based patterns
// are computed arithmetically; month-based ones step at most twelve times a
// year so iteration is cheap enough.
func Count(p Pattern, start, end time.Time) (int, error) {
	if !p.Valid() {
		return 0, fmt.Errorf("%w: %q", ErrInvalidPattern, p)
	}
	if start.After(end) {
		return 0, nil
	}
	if d := p.dayStep(); d > 0 {
		days := int(dateOnly(end).Sub(dateOnly(start)).Hours() / 24)
		return days/d + 1, nil
	}
	n := 0
	for cur := start; !cur.After(end); {
		n++
		next, err := Next(p, cur)
		if err != nil {
			return 0, err
		}
		cur = next
	}
	return n, nil
}

func addMonthsClamped(d time.Time, months int) time.Time {
	day := d.Day()
	if day == daysInMonth(d.Year(), d.Month()) {
		// Last day of the source month tracks the last day of the target month.
		day = 31
	}
	year, month := d.Year(), int(d.Month())+months
	for month > 12 {
		month -= 12
		year++
	}
	if dim := daysInMonth(year, time.Month(month)); day > dim {
		day = dim
	}
	return time.Date(year, time.Month(month), day,
		d.Hour(), d.Minute(), d.Second(), d.Nanosecond(), d.Location())
}

func daysInMonth(year int, month time.Month) int {
	// Day zero of the next month is the last day of this one.
	return time.Date(year, month+1, 0, 0, 0, 0, 0, time.UTC).Day()
}

func dateOnly(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}
