// Package store defines the narrow persistence interfaces the recurring task
// engine depends on, with Firestore-backed and in-memory implementations.
package store

import (
	"context"
	"errors"

	"taskdesk/model"
)

var ErrNotFound = errors.New("not found")

// TaskFilter narrows List results.
type TaskFilter struct {
	// IncludePaused keeps soft-deleted tasks in the result.
	IncludePaused bool
}

type TaskStore interface {
	Load(ctx context.Context, taskID string) (*model.RecurringTask, error)
	Save(ctx context.Context, task *model.RecurringTask) error
	List(ctx context.Context, filter TaskFilter) ([]model.RecurringTask, error)
}

type CompletionStore interface {
	// Get returns ErrNotFound when no record exists for the key.
	Get(ctx context.Context, taskID, clientID, periodKey string) (*model.CompletionRecord, error)
	Put(ctx context.Context, rec *model.CompletionRecord) error
	Query(ctx context.Context, taskID string) ([]model.CompletionRecord, error)
}
