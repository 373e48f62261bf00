package dto

type MappingEntry struct {
	EmployeeID string   `json:"employeeId" binding:"required"`
	ClientIDs  []string `json:"clientIds"`
}

type CreateRecurringTaskRequest struct {
	TaskName          string         `json:"taskname" binding:"required"`
	Description       string         `json:"description"`
	Pattern           string         `json:"pattern" binding:"required"`
	StartDate         string         `json:"startdate" binding:"required"` // RFC 3339
	EndDate           string         `json:"enddate"`                      // optional, RFC 3339
	AssignedClientIDs []string       `json:"assignedClientIds" binding:"required"`
	Mappings          []MappingEntry `json:"teamMemberMappings"`
}

type UpdateMappingsRequest struct {
	Mappings []MappingEntry `json:"teamMemberMappings" binding:"required"`
}

type RecordCompletionRequest struct {
	ClientID  string `json:"clientId" binding:"required"`
	PeriodKey string `json:"periodKey" binding:"required"`
	Completed *bool  `json:"completed" binding:"required"`
}
