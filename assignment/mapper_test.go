package assignment

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"taskdesk/model"
)

func unmappedTask() *model.RecurringTask {
	return &model.RecurringTask{
		TaskID:            "t1",
		AssignedClientIDs: []string{"C1", "C2"},
	}
}

func mappedTask() *model.RecurringTask {
	return &model.RecurringTask{
		TaskID:            "t2",
		AssignedClientIDs: []string{"C1", "C2", "C3"},
		TeamMemberMappings: []model.TeamMemberMapping{
			{EmployeeID: "E1", ClientIDs: []string{"C1", "C3"}},
			{EmployeeID: "E2", ClientIDs: []string{"C2"}},
		},
	}
}

func TestVisibleClientIDs_UnmappedFallback(t *testing.T) {
	task := unmappedTask()
	viewer := model.Viewer{ActorID: "E9", Role: model.RoleEmployee}

	assert.Equal(t, []string{"C1", "C2"}, VisibleClientIDs(task, viewer))
	assert.True(t, IsTaskVisible(task, viewer))
}

func TestVisibleClientIDs_MappedEmployees(t *testing.T) {
	task := mappedTask()

	assert.Equal(t, []string{"C1", "C3"},
		VisibleClientIDs(task, model.Viewer{ActorID: "E1", Role: model.RoleEmployee}))
	assert.Equal(t, []string{"C2"},
		VisibleClientIDs(task, model.Viewer{ActorID: "E2", Role: model.RoleEmployee}))
}

func TestVisibleClientIDs_UnmappedEmployeeSeesNothing(t *testing.T) {
	task := mappedTask()
	e3 := model.Viewer{ActorID: "E3", Role: model.RoleEmployee}

	assert.Empty(t, VisibleClientIDs(task, e3))
	assert.False(t, IsTaskVisible(task, e3))
}

func TestVisibleClientIDs_ElevatedRolesBypassMappings(t *testing.T) {
	task := mappedTask()

	for _, role := range []model.Role{model.RoleAdmin, model.RoleManager} {
		v := model.Viewer{ActorID: "boss", Role: role}
		assert.Equal(t, []string{"C1", "C2", "C3"}, VisibleClientIDs(task, v))
		assert.True(t, IsTaskVisible(task, v))
	}
}

func TestIsTaskVisible_ManagerSeesZeroClientTask(t *testing.T) {
	task := &model.RecurringTask{TaskID: "t3"}
	assert.True(t, IsTaskVisible(task, model.Viewer{ActorID: "m", Role: model.RoleManager}))
	assert.False(t, IsTaskVisible(task, model.Viewer{ActorID: "e", Role: model.RoleEmployee}))
}

func TestVisibilityPartition(t *testing.T) {
	task := mappedTask()
	e1 := VisibleClientIDs(task, model.Viewer{ActorID: "E1", Role: model.RoleEmployee})
	e2 := VisibleClientIDs(task, model.Viewer{ActorID: "E2", Role: model.RoleEmployee})

	for _, c := range e1 {
		assert.NotContains(t, e2, c)
	}
}

func TestAddOrUpdateMapping(t *testing.T) {
	task := mappedTask()

	require.NoError(t, AddOrUpdateMapping(task, "E3", []string{"C2"}))
	assert.Len(t, task.TeamMemberMappings, 3)

	// Upsert replaces the existing entry instead of appending.
	require.NoError(t, AddOrUpdateMapping(task, "E1", []string{"C1"}))
	assert.Len(t, task.TeamMemberMappings, 3)
	assert.Equal(t, []string{"C1"},
		VisibleClientIDs(task, model.Viewer{ActorID: "E1", Role: model.RoleEmployee}))
}

func TestAddOrUpdateMapping_SharedClientAllowed(t *testing.T) {
	task := mappedTask()
	require.NoError(t, AddOrUpdateMapping(task, "E3", []string{"C1"}))

	e1 := VisibleClientIDs(task, model.Viewer{ActorID: "E1", Role: model.RoleEmployee})
	e3 := VisibleClientIDs(task, model.Viewer{ActorID: "E3", Role: model.RoleEmployee})
	assert.Contains(t, e1, "C1")
	assert.Contains(t, e3, "C1")
}

func TestAddOrUpdateMapping_RejectsUnassignedClient(t *testing.T) {
	task := mappedTask()
	err := AddOrUpdateMapping(task, "E1", []string{"C1", "C9"})
	assert.ErrorIs(t, err, ErrInvalidClientReference)
}

func TestRemoveMapping_Idempotent(t *testing.T) {
	task := mappedTask()

	RemoveMapping(task, "E1")
	assert.Len(t, task.TeamMemberMappings, 1)

	RemoveMapping(task, "E1")
	assert.Len(t, task.TeamMemberMappings, 1)
}

func TestValidateMappings(t *testing.T) {
	task := unmappedTask()

	err := ValidateMappings(task, []model.TeamMemberMapping{
		{EmployeeID: "E1", ClientIDs: []string{"C1"}},
		{EmployeeID: "E2", ClientIDs: []string{"C7"}},
	})
	assert.ErrorIs(t, err, ErrInvalidClientReference)

	assert.NoError(t, ValidateMappings(task, []model.TeamMemberMapping{
		{EmployeeID: "E1", ClientIDs: []string{"C1", "C2"}},
	}))
}
