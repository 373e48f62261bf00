// Package assignment resolves which of a recurring task's clients a given
// viewer may see and act on. Filtering happens here, at the data-serving
// boundary, against a trusted Viewer context; role claims carried in request
// bodies are never consulted.
package assignment

import (
	"errors"
	"fmt"
	"slices"

	"taskdesk/model"
)

// ErrInvalidClientReference marks a mapping that references a client outside
// the task's assigned set.
var ErrInvalidClientReference = errors.New("client is not in the task's assigned set")

// VisibleClientIDs returns the client subset viewer is authorized to see.
//
// Admins and managers always get the full assigned set. Employees get their
// mapping entry's clients; if the task has no mappings at all the full set
// (mapping is opt-in per task); and the empty set when the task is mapped but
// has no entry for them.
func VisibleClientIDs(task *model.RecurringTask, viewer model.Viewer) []string {
	if viewer.Elevated() {
		return slices.Clone(task.AssignedClientIDs)
	}
	if len(task.TeamMemberMappings) == 0 {
		return slices.Clone(task.AssignedClientIDs)
	}
	for _, m := range task.TeamMemberMappings {
		if m.EmployeeID == viewer.ActorID {
			return slices.Clone(m.ClientIDs)
		}
	}
	return nil
}

// IsTaskVisible reports whether the task shows up for the viewer at all.
// Elevated viewers see zero-client tasks for administrative purposes.
func IsTaskVisible(task *model.RecurringTask, viewer model.Viewer) bool {
	if viewer.Elevated() {
		return true
	}
	return len(VisibleClientIDs(task, viewer)) > 0
}

// AddOrUpdateMapping upserts the mapping entry for employeeID. Every client
// must belong to the task's assigned set; duplicates across employees are
// allowed (shared responsibility).
func AddOrUpdateMapping(task *model.RecurringTask, employeeID string, clientIDs []string) error {
	if err := validateSubset(task, clientIDs); err != nil {
		return err
	}
	for i, m := range task.TeamMemberMappings {
		if m.EmployeeID == employeeID {
			task.TeamMemberMappings[i].ClientIDs = slices.Clone(clientIDs)
			return nil
		}
	}
	task.TeamMemberMappings = append(task.TeamMemberMappings, model.TeamMemberMapping{
		EmployeeID: employeeID,
		ClientIDs:  slices.Clone(clientIDs),
	})
	return nil
}

// RemoveMapping deletes the entry for employeeID. Removing an absent mapping
// is a no-op.
func RemoveMapping(task *model.RecurringTask, employeeID string) {
	task.TeamMemberMappings = slices.DeleteFunc(task.TeamMemberMappings,
		func(m model.TeamMemberMapping) bool { return m.EmployeeID == employeeID })
}

// ValidateMappings checks a whole replacement mapping list before it is
// written (mapping updates replace the list wholesale, last writer wins).
func ValidateMappings(task *model.RecurringTask, mappings []model.TeamMemberMapping) error {
	for _, m := range mappings {
		if err := validateSubset(task, m.ClientIDs); err != nil {
			return fmt.Errorf("mapping for employee %s: %w", m.EmployeeID, err)
		}
	}
	return nil
}

func validateSubset(task *model.RecurringTask, clientIDs []string) error {
	for _, id := range clientIDs {
		if !slices.Contains(task.AssignedClientIDs, id) {
			return fmt.Errorf("%w: %s", ErrInvalidClientReference, id)
		}
	}
	return nil
}
