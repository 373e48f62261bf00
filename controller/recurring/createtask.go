package recurring

import (
	"net/http"
	"time"

	"cloud.google.com/go/firestore"
	"github.com/gin-gonic/gin"

	"taskdesk/dto"
	"taskdesk/model"
	"taskdesk/recurrence"
	"taskdesk/services"
)

func CreateRecurringTask(c *gin.Context, firestoreClient *firestore.Client, svc *services.RecurringTaskService) {
	viewer, ok := currentViewer(c, firestoreClient)
	if !ok {
		return
	}

	var request dto.CreateRecurringTaskRequest
	if err := c.ShouldBindJSON(&request); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input"})
		return
	}

	startDate, err := time.Parse(time.RFC3339, request.StartDate)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid startdate format"})
		return
	}
	var endDate *time.Time
	if request.EndDate != "" {
		parsed, err := time.Parse(time.RFC3339, request.EndDate)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid enddate format"})
			return
		}
		endDate = &parsed
	}

	mappings := make([]model.TeamMemberMapping, 0, len(request.Mappings))
	for _, m := range request.Mappings {
		mappings = append(mappings, model.TeamMemberMapping{
			EmployeeID: m.EmployeeID,
			ClientIDs:  m.ClientIDs,
		})
	}

	task, err := svc.CreateTask(c.Request.Context(), services.CreateTaskSpec{
		TaskName:          request.TaskName,
		Description:       request.Description,
		Pattern:           recurrence.Pattern(request.Pattern),
		StartDate:         startDate,
		EndDate:           endDate,
		AssignedClientIDs: request.AssignedClientIDs,
		Mappings:          mappings,
		CreatedBy:         viewer.ActorID,
	})
	if err != nil {
		respondEngineError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"message": "Recurring task created successfully",
		"taskId":  task.TaskID,
	})
}
