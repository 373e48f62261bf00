package store

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"taskdesk/model"
)

func TestMemoryTaskStore_LoadMissing(t *testing.T) {
	s := NewMemoryTaskStore()
	_, err := s.Load(context.Background(), "nope")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestMemoryTaskStore_SaveAndList(t *testing.T) {
	ctx := context.Background()
	s := NewMemoryTaskStore()

	require.NoError(t, s.Save(ctx, &model.RecurringTask{TaskID: "b"}))
	require.NoError(t, s.Save(ctx, &model.RecurringTask{TaskID: "a"}))
	require.NoError(t, s.Save(ctx, &model.RecurringTask{TaskID: "c", Paused: true}))

	tasks, err := s.List(ctx, TaskFilter{})
	require.NoError(t, err)
	require.Len(t, tasks, 2)
	assert.Equal(t, "a", tasks[0].TaskID)

	all, err := s.List(ctx, TaskFilter{IncludePaused: true})
	require.NoError(t, err)
	assert.Len(t, all, 3)
}

func TestMemoryCompletionStore_UpsertOverwrites(t *testing.T) {
	ctx := context.Background()
	s := NewMemoryCompletionStore()

	rec := &model.CompletionRecord{TaskID: "t", ClientID: "c", PeriodKey: "2026-04", IsCompleted: true}
	require.NoError(t, s.Put(ctx, rec))

	rec.IsCompleted = false
	require.NoError(t, s.Put(ctx, rec))

	got, err := s.Get(ctx, "t", "c", "2026-04")
	require.NoError(t, err)
	assert.False(t, got.IsCompleted)

	_, err = s.Get(ctx, "t", "c", "2026-05")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestMemoryCompletionStore_QueryByTask(t *testing.T) {
	ctx := context.Background()
	s := NewMemoryCompletionStore()

	require.NoError(t, s.Put(ctx, &model.CompletionRecord{TaskID: "t1", ClientID: "c1", PeriodKey: "2026-04"}))
	require.NoError(t, s.Put(ctx, &model.CompletionRecord{TaskID: "t1", ClientID: "c2", PeriodKey: "2026-04"}))
	require.NoError(t, s.Put(ctx, &model.CompletionRecord{TaskID: "t2", ClientID: "c1", PeriodKey: "2026-04"}))

	recs, err := s.Query(ctx, "t1")
	require.NoError(t, err)
	assert.Len(t, recs, 2)
}
