package services

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"taskdesk/assignment"
	"taskdesk/completion"
	"taskdesk/fiscal"
	"taskdesk/model"
	"taskdesk/recurrence"
	"taskdesk/store"
)

// CreateTaskSpec carries everything needed to create a recurring task.
type CreateTaskSpec struct {
	TaskName          string
	Description       string
	Pattern           recurrence.Pattern
	StartDate         time.Time
	EndDate           *time.Time
	AssignedClientIDs []string
	Mappings          []model.TeamMemberMapping
	CreatedBy         string
}

// TaskView is a task paired with the client subset the viewer may see.
type TaskView struct {
	Task             model.RecurringTask `json:"task"`
	VisibleClientIDs []string            `json:"visibleClientIds"`
}

// RecurringTaskService is the façade over the scheduler, the period indexer,
// the assignment mapper and the completion matrix. It sequences loads and
// saves; all business rules live in the components it delegates to.
type RecurringTaskService struct {
	tasks  store.TaskStore
	matrix *completion.Matrix
	log    zerolog.Logger
}

func NewRecurringTaskService(tasks store.TaskStore, completions store.CompletionStore, log zerolog.Logger) *RecurringTaskService {
	return &RecurringTaskService{
		tasks:  tasks,
		matrix: completion.NewMatrix(completions),
		log:    log,
	}
}

// Matrix exposes the underlying completion matrix, mainly so callers can pin
// its clock in tests.
func (s *RecurringTaskService) Matrix() *completion.Matrix {
	return s.matrix
}

func (s *RecurringTaskService) CreateTask(ctx context.Context, spec CreateTaskSpec) (*model.RecurringTask, error) {
	if _, err := recurrence.Parse(string(spec.Pattern)); err != nil {
		return nil, err
	}

	now := time.Now()
	task := &model.RecurringTask{
		TaskID:             uuid.New().String(),
		TaskName:           spec.TaskName,
		Description:        spec.Description,
		Pattern:            spec.Pattern,
		StartDate:          spec.StartDate,
		EndDate:            spec.EndDate,
		AssignedClientIDs:  spec.AssignedClientIDs,
		TeamMemberMappings: []model.TeamMemberMapping{},
		CreatedBy:          spec.CreatedBy,
		CreatedAt:          now,
		UpdatedAt:          now,
	}
	if err := assignment.ValidateMappings(task, spec.Mappings); err != nil {
		return nil, err
	}
	task.TeamMemberMappings = spec.Mappings

	if err := s.tasks.Save(ctx, task); err != nil {
		return nil, err
	}
	s.log.Info().Str("taskId", task.TaskID).Str("pattern", string(task.Pattern)).Msg("recurring task created")
	return task, nil
}

// UpdateMappings replaces the task's whole mapping list. Concurrent updates
// are last-writer-wins at list granularity; there is no field-level merge.
func (s *RecurringTaskService) UpdateMappings(ctx context.Context, taskID string, mappings []model.TeamMemberMapping) (*model.RecurringTask, error) {
	task, err := s.tasks.Load(ctx, taskID)
	if err != nil {
		return nil, err
	}
	if err := assignment.ValidateMappings(task, mappings); err != nil {
		return nil, err
	}
	task.TeamMemberMappings = mappings
	task.UpdatedAt = time.Now()
	if err := s.tasks.Save(ctx, task); err != nil {
		return nil, err
	}
	s.log.Info().Str("taskId", taskID).Int("mappings", len(mappings)).Msg("task mappings replaced")
	return task, nil
}

// RemoveMapping drops one employee's mapping entry; removing an absent entry
// is a no-op.
func (s *RecurringTaskService) RemoveMapping(ctx context.Context, taskID, employeeID string) (*model.RecurringTask, error) {
	task, err := s.tasks.Load(ctx, taskID)
	if err != nil {
		return nil, err
	}
	assignment.RemoveMapping(task, employeeID)
	task.UpdatedAt = time.Now()
	if err := s.tasks.Save(ctx, task); err != nil {
		return nil, err
	}
	return task, nil
}

// GetVisibleTasksForViewer lists active tasks the viewer can see, each with
// its visible client subset attached.
func (s *RecurringTaskService) GetVisibleTasksForViewer(ctx context.Context, viewer model.Viewer) ([]TaskView, error) {
	tasks, err := s.tasks.List(ctx, store.TaskFilter{})
	if err != nil {
		return nil, err
	}
	views := make([]TaskView, 0, len(tasks))
	for i := range tasks {
		if !assignment.IsTaskVisible(&tasks[i], viewer) {
			continue
		}
		views = append(views, TaskView{
			Task:             tasks[i],
			VisibleClientIDs: assignment.VisibleClientIDs(&tasks[i], viewer),
		})
	}
	return views, nil
}

func (s *RecurringTaskService) RecordCompletion(ctx context.Context, taskID, clientID, periodKey string, completed bool, viewer model.Viewer) (*model.CompletionRecord, error) {
	task, err := s.tasks.Load(ctx, taskID)
	if err != nil {
		return nil, err
	}
	rec, err := s.matrix.SetCompletion(ctx, task, clientID, periodKey, completed, viewer)
	if err != nil {
		return nil, err
	}
	s.log.Info().
		Str("taskId", taskID).Str("clientId", clientID).Str("period", periodKey).
		Bool("completed", completed).Str("actor", viewer.ActorID).
		Msg("completion recorded")
	return rec, nil
}

func (s *RecurringTaskService) CompletionStatus(ctx context.Context, taskID, clientID, periodKey string) (completion.Status, error) {
	task, err := s.tasks.Load(ctx, taskID)
	if err != nil {
		return "", err
	}
	return s.matrix.Status(ctx, task, clientID, periodKey)
}

func (s *RecurringTaskService) CompletionSummary(ctx context.Context, taskID string, viewer model.Viewer) (completion.Summary, error) {
	task, err := s.tasks.Load(ctx, taskID)
	if err != nil {
		return completion.Summary{}, err
	}
	return s.matrix.Summary(ctx, task, viewer)
}

// DisplayPeriods returns the period keys a completion picker should offer for
// the task: current fiscal month forward over the default horizon.
func (s *RecurringTaskService) DisplayPeriods(ctx context.Context, taskID string) ([]string, error) {
	task, err := s.tasks.Load(ctx, taskID)
	if err != nil {
		return nil, err
	}
	return fiscal.DisplayPeriods(task.Pattern, s.matrix.Now(), fiscal.DefaultHorizonYears)
}

// UpcomingOccurrences enumerates the task's occurrence dates from the given
// date over the window, bounded by the task's end date when one is set.
func (s *RecurringTaskService) UpcomingOccurrences(ctx context.Context, taskID string, from time.Time, window time.Duration) ([]time.Time, error) {
	task, err := s.tasks.Load(ctx, taskID)
	if err != nil {
		return nil, err
	}
	until := from.Add(window)
	if task.EndDate != nil && task.EndDate.Before(until) {
		until = *task.EndDate
	}

	var upcoming []time.Time
	cur := task.StartDate
	for !cur.After(until) {
		if !cur.Before(from) {
			upcoming = append(upcoming, cur)
		}
		next, err := recurrence.Next(task.Pattern, cur)
		if err != nil {
			return nil, fmt.Errorf("task %s: %w", taskID, err)
		}
		cur = next
	}
	return upcoming, nil
}

// PauseTask soft-deletes the task. Completion history is kept; the task just
// stops showing up in listings.
func (s *RecurringTaskService) PauseTask(ctx context.Context, taskID string) (*model.RecurringTask, error) {
	task, err := s.tasks.Load(ctx, taskID)
	if err != nil {
		return nil, err
	}
	task.Paused = true
	task.UpdatedAt = time.Now()
	if err := s.tasks.Save(ctx, task); err != nil {
		return nil, err
	}
	s.log.Info().Str("taskId", taskID).Msg("recurring task paused")
	return task, nil
}
