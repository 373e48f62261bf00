package store

import (
	"context"
	"fmt"

	"cloud.google.com/go/firestore"
	"google.golang.org/api/iterator"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"taskdesk/model"
)

const (
	tasksCollection       = "RecurringTasks"
	completionsCollection = "RecurringCompletions"
)

// FirestoreTaskStore persists tasks in the RecurringTasks collection with the
// task id as document id.
type FirestoreTaskStore struct {
	client *firestore.Client
}

func NewFirestoreTaskStore(client *firestore.Client) *FirestoreTaskStore {
	return &FirestoreTaskStore{client: client}
}

func (s *FirestoreTaskStore) Load(ctx context.Context, taskID string) (*model.RecurringTask, error) {
	snap, err := s.client.Collection(tasksCollection).Doc(taskID).Get(ctx)
	if status.Code(err) == codes.NotFound {
		return nil, fmt.Errorf("task %s: %w", taskID, ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("load task %s: %w", taskID, err)
	}
	var task model.RecurringTask
	if err := snap.DataTo(&task); err != nil {
		return nil, fmt.Errorf("parse task %s: %w", taskID, err)
	}
	return &task, nil
}

func (s *FirestoreTaskStore) Save(ctx context.Context, task *model.RecurringTask) error {
	_, err := s.client.Collection(tasksCollection).Doc(task.TaskID).Set(ctx, task)
	if err != nil {
		return fmt.Errorf("save task %s: %w", task.TaskID, err)
	}
	return nil
}

func (s *FirestoreTaskStore) List(ctx context.Context, filter TaskFilter) ([]model.RecurringTask, error) {
	query := s.client.Collection(tasksCollection).Query
	if !filter.IncludePaused {
		query = query.Where("paused", "==", false)
	}
	iter := query.Documents(ctx)
	defer iter.Stop()

	var out []model.RecurringTask
	for {
		snap, err := iter.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("list tasks: %w", err)
		}
		var task model.RecurringTask
		if err := snap.DataTo(&task); err != nil {
			return nil, fmt.Errorf("parse task %s: %w", snap.Ref.ID, err)
		}
		out = append(out, task)
	}
	return out, nil
}

// FirestoreCompletionStore persists completion records with a composite
// document id (taskid_clientid_periodkey) so repeated writes for the same
// cell upsert in place.
type FirestoreCompletionStore struct {
	client *firestore.Client
}

func NewFirestoreCompletionStore(client *firestore.Client) *FirestoreCompletionStore {
	return &FirestoreCompletionStore{client: client}
}

func (s *FirestoreCompletionStore) Get(ctx context.Context, taskID, clientID, periodKey string) (*model.CompletionRecord, error) {
	docID := completionKey(taskID, clientID, periodKey)
	snap, err := s.client.Collection(completionsCollection).Doc(docID).Get(ctx)
	if status.Code(err) == codes.NotFound {
		return nil, fmt.Errorf("completion %s: %w", docID, ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("load completion %s: %w", docID, err)
	}
	var rec model.CompletionRecord
	if err := snap.DataTo(&rec); err != nil {
		return nil, fmt.Errorf("parse completion %s: %w", docID, err)
	}
	return &rec, nil
}

func (s *FirestoreCompletionStore) Put(ctx context.Context, rec *model.CompletionRecord) error {
	docID := completionKey(rec.TaskID, rec.ClientID, rec.PeriodKey)
	_, err := s.client.Collection(completionsCollection).Doc(docID).Set(ctx, rec)
	if err != nil {
		return fmt.Errorf("save completion %s: %w", docID, err)
	}
	return nil
}

func (s *FirestoreCompletionStore) Query(ctx context.Context, taskID string) ([]model.CompletionRecord, error) {
	iter := s.client.Collection(completionsCollection).
		Where("taskid", "==", taskID).
		Documents(ctx)
	defer iter.Stop()

	var out []model.CompletionRecord
	for {
		snap, err := iter.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("query completions for %s: %w", taskID, err)
		}
		var rec model.CompletionRecord
		if err := snap.DataTo(&rec); err != nil {
			return nil, fmt.Errorf("parse completion %s: %w", snap.Ref.ID, err)
		}
		out = append(out, rec)
	}
	return out, nil
}
