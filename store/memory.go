package store

import (
	"context"
	"fmt"
	"sort"
	"sync"

	"taskdesk/model"
)

// MemoryTaskStore keeps tasks in a map. Used by tests and local runs.
type MemoryTaskStore struct {
	mu    sync.RWMutex
	tasks map[string]model.RecurringTask
}

func NewMemoryTaskStore() *MemoryTaskStore {
	return &MemoryTaskStore{tasks: map[string]model.RecurringTask{}}
}

func (s *MemoryTaskStore) Load(_ context.Context, taskID string) (*model.RecurringTask, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	t, ok := s.tasks[taskID]
	if !ok {
		return nil, fmt.Errorf("task %s: %w", taskID, ErrNotFound)
	}
	return &t, nil
}

func (s *MemoryTaskStore) Save(_ context.Context, task *model.RecurringTask) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.tasks[task.TaskID] = *task
	return nil
}

func (s *MemoryTaskStore) List(_ context.Context, filter TaskFilter) ([]model.RecurringTask, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]model.RecurringTask, 0, len(s.tasks))
	for _, t := range s.tasks {
		if t.Paused && !filter.IncludePaused {
			continue
		}
		out = append(out, t)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].TaskID < out[j].TaskID })
	return out, nil
}

// MemoryCompletionStore keys records by (task, client, period).
type MemoryCompletionStore struct {
	mu   sync.RWMutex
	recs map[string]model.CompletionRecord
}

func NewMemoryCompletionStore() *MemoryCompletionStore {
	return &MemoryCompletionStore{recs: map[string]model.CompletionRecord{}}
}

func completionKey(taskID, clientID, periodKey string) string {
	return taskID + "_" + clientID + "_" + periodKey
}

func (s *MemoryCompletionStore) Get(_ context.Context, taskID, clientID, periodKey string) (*model.CompletionRecord, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	r, ok := s.recs[completionKey(taskID, clientID, periodKey)]
	if !ok {
		return nil, fmt.Errorf("completion %s/%s/%s: %w", taskID, clientID, periodKey, ErrNotFound)
	}
	return &r, nil
}

func (s *MemoryCompletionStore) Put(_ context.Context, rec *model.CompletionRecord) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.recs[completionKey(rec.TaskID, rec.ClientID, rec.PeriodKey)] = *rec
	return nil
}

func (s *MemoryCompletionStore) Query(_ context.Context, taskID string) ([]model.CompletionRecord, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	var out []model.CompletionRecord
	for _, r := range s.recs {
		if r.TaskID == taskID {
			out = append(out, r)
		}
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].ClientID != out[j].ClientID {
			return out[i].ClientID < out[j].ClientID
		}
		return out[i].PeriodKey < out[j].PeriodKey
	})
	return out, nil
}
