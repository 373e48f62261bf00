package recurring

import (
	"net/http"

	"cloud.google.com/go/firestore"
	"github.com/gin-gonic/gin"

	"taskdesk/dto"
	"taskdesk/services"
)

func RecordCompletion(c *gin.Context, firestoreClient *firestore.Client, svc *services.RecurringTaskService) {
	viewer, ok := currentViewer(c, firestoreClient)
	if !ok {
		return
	}
	taskID := c.Param("taskId")

	var request dto.RecordCompletionRequest
	if err := c.ShouldBindJSON(&request); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input"})
		return
	}

	rec, err := svc.RecordCompletion(c.Request.Context(), taskID, request.ClientID, request.PeriodKey, *request.Completed, viewer)
	if err != nil {
		respondEngineError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Completion recorded",
		"record":  rec,
	})
}

// GetCompletion returns the status of one (client, period) cell together with
// the viewer's overall summary for the task.
func GetCompletion(c *gin.Context, firestoreClient *firestore.Client, svc *services.RecurringTaskService) {
	viewer, ok := currentViewer(c, firestoreClient)
	if !ok {
		return
	}
	taskID := c.Param("taskId")
	clientID := c.Query("clientId")
	periodKey := c.Query("periodKey")

	response := gin.H{}
	if clientID != "" && periodKey != "" {
		status, err := svc.CompletionStatus(c.Request.Context(), taskID, clientID, periodKey)
		if err != nil {
			respondEngineError(c, err)
			return
		}
		response["status"] = status
	}

	summary, err := svc.CompletionSummary(c.Request.Context(), taskID, viewer)
	if err != nil {
		respondEngineError(c, err)
		return
	}
	response["summary"] = summary

	c.JSON(http.StatusOK, response)
}
