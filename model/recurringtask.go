package model

import (
	"time"

	"taskdesk/recurrence"
)

// TeamMemberMapping assigns a subset of a task's clients to one employee.
// The same client may appear under several employees; shared responsibility
// is a valid business state and is not deduplicated.
type TeamMemberMapping struct {
	EmployeeID string   `firestore:"employeeid,omitempty" json:"employeeId"`
	ClientIDs  []string `firestore:"clientids" json:"clientIds"`
}

type RecurringTask struct {
	TaskID      string             `firestore:"taskid,omitempty" json:"taskId"`
	TaskName    string             `firestore:"taskname,omitempty" json:"taskName"`
	Description string             `firestore:"description,omitempty" json:"description,omitempty"`
	Pattern     recurrence.Pattern `firestore:"pattern,omitempty" json:"pattern"`
	StartDate   time.Time          `firestore:"startdate,omitempty" json:"startDate"`
	EndDate     *time.Time         `firestore:"enddate,omitempty" json:"endDate,omitempty"` // nil = indefinite

	// AssignedClientIDs is the task-wide superset of work items.
	AssignedClientIDs []string `firestore:"clientids" json:"assignedClientIds"`

	// TeamMemberMappings is the per-employee visibility filter. An empty list
	// means unmapped: every viewer with read access sees the full client set.
	TeamMemberMappings []TeamMemberMapping `firestore:"mappings" json:"teamMemberMappings"`

	// Paused soft-deletes the task while completion history exists.
	Paused bool `firestore:"paused" json:"paused"`

	CreatedBy string    `firestore:"createdby,omitempty" json:"createdBy"`
	CreatedAt time.Time `firestore:"createdat,omitempty" json:"createdAt"`
	UpdatedAt time.Time `firestore:"updatedat,omitempty" json:"updatedAt"`
}
