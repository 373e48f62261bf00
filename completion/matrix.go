// Package completion tracks the (task, client, period) completion matrix.
// Writes are validated against the task's applicable fiscal periods and the
// actor's visible client set before they reach the store.
package completion

import (
	"context"
	"errors"
	"fmt"
	"math"
	"slices"
	"time"

	"taskdesk/assignment"
	"taskdesk/fiscal"
	"taskdesk/model"
	"taskdesk/store"
)

var (
	// ErrInapplicablePeriod marks a write for a period the task's pattern
	// does not track (e.g. 2026-06 on a quarterly task).
	ErrInapplicablePeriod = errors.New("period is not applicable to the task's pattern")

	// ErrUnauthorized marks a write for a client outside the actor's
	// visible set.
	ErrUnauthorized = errors.New("actor is not assigned this client")
)

type Status string

const (
	StatusCompleted  Status = "completed"
	StatusIncomplete Status = "incomplete"
	StatusNotYetDue  Status = "not-yet-due"
)

// Summary aggregates a viewer's completion progress over non-future periods.
type Summary struct {
	CompletedCount int `json:"completedCount"`
	TotalExpected  int `json:"totalExpected"`
	Percentage     int `json:"percentage"`
}

type Matrix struct {
	completions store.CompletionStore

	// Now is swappable so tests can pin the current fiscal month.
	Now func() time.Time
}

func NewMatrix(completions store.CompletionStore) *Matrix {
	return &Matrix{completions: completions, Now: time.Now}
}

// SetCompletion upserts the record for (task, clientID, periodKey) after
// validating the period against the task's pattern and the client against the
// viewer's visible set. Unmarking keeps the record with who/when cleared so
// the cell's history stays inspectable; only the latest state is retained.
func (m *Matrix) SetCompletion(ctx context.Context, task *model.RecurringTask, clientID, periodKey string, completed bool, viewer model.Viewer) (*model.CompletionRecord, error) {
	if err := m.checkApplicable(task, periodKey); err != nil {
		return nil, err
	}
	if !slices.Contains(assignment.VisibleClientIDs(task, viewer), clientID) {
		return nil, fmt.Errorf("%w: client %s", ErrUnauthorized, clientID)
	}

	rec := &model.CompletionRecord{
		TaskID:      task.TaskID,
		ClientID:    clientID,
		PeriodKey:   periodKey,
		IsCompleted: completed,
		UpdatedAt:   m.Now(),
	}
	if completed {
		now := m.Now()
		rec.CompletedBy = viewer.ActorID
		rec.CompletedAt = &now
	}
	if err := m.completions.Put(ctx, rec); err != nil {
		return nil, err
	}
	return rec, nil
}

// Status classifies one matrix cell. Future periods report not-yet-due
// regardless of any stored record; a stray completed flag on a future period
// does not override due-date semantics.
func (m *Matrix) Status(ctx context.Context, task *model.RecurringTask, clientID, periodKey string) (Status, error) {
	if _, err := fiscal.ParsePeriodKey(periodKey); err != nil {
		return "", err
	}
	if periodKey > fiscal.PeriodKey(m.Now()) {
		return StatusNotYetDue, nil
	}
	rec, err := m.completions.Get(ctx, task.TaskID, clientID, periodKey)
	if errors.Is(err, store.ErrNotFound) {
		return StatusIncomplete, nil
	}
	if err != nil {
		return "", err
	}
	if rec.IsCompleted {
		return StatusCompleted, nil
	}
	return StatusIncomplete, nil
}

// Summary counts completed cells over visible clients and the applicable
// periods from the task's start period through the current one. Future
// periods stay out of the denominator.
func (m *Matrix) Summary(ctx context.Context, task *model.RecurringTask, viewer model.Viewer) (Summary, error) {
	visible := assignment.VisibleClientIDs(task, viewer)
	due, err := m.duePeriods(task)
	if err != nil {
		return Summary{}, err
	}

	total := len(visible) * len(due)
	if total == 0 {
		return Summary{}, nil
	}

	recs, err := m.completions.Query(ctx, task.TaskID)
	if err != nil {
		return Summary{}, err
	}
	completed := 0
	for _, rec := range recs {
		if rec.IsCompleted && slices.Contains(visible, rec.ClientID) && slices.Contains(due, rec.PeriodKey) {
			completed++
		}
	}

	return Summary{
		CompletedCount: completed,
		TotalExpected:  total,
		Percentage:     int(math.Round(100 * float64(completed) / float64(total))),
	}, nil
}

// duePeriods lists the applicable periods from the task's start period up to
// and including the current fiscal month.
func (m *Matrix) duePeriods(task *model.RecurringTask) ([]string, error) {
	startKey := fiscal.PeriodKey(task.StartDate)
	currentKey := fiscal.PeriodKey(m.Now())
	if currentKey < startKey {
		return nil, nil
	}

	var due []string
	for fy := fiscal.FiscalYear(task.StartDate); fy <= fiscal.FiscalYear(m.Now()); fy++ {
		periods, err := fiscal.ApplicablePeriods(task.Pattern, fy)
		if err != nil {
			return nil, err
		}
		for _, key := range periods {
			if key >= startKey && key <= currentKey {
				due = append(due, key)
			}
		}
	}
	return due, nil
}

func (m *Matrix) checkApplicable(task *model.RecurringTask, periodKey string) error {
	fy, err := fiscal.FiscalYearOf(periodKey)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrInapplicablePeriod, err)
	}
	periods, err := fiscal.ApplicablePeriods(task.Pattern, fy)
	if errors.Is(err, fiscal.ErrNotPeriodAddressable) {
		return fmt.Errorf("%w: %s tasks are tracked by occurrence date", ErrInapplicablePeriod, task.Pattern)
	}
	if err != nil {
		return err
	}
	if !slices.Contains(periods, periodKey) {
		return fmt.Errorf("%w: %s for %s pattern", ErrInapplicablePeriod, periodKey, task.Pattern)
	}
	return nil
}
