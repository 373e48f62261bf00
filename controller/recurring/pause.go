package recurring

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"taskdesk/services"
)

// PauseTask soft-deletes a task. Completion history stays in place so past
// records remain retrievable.
func PauseTask(c *gin.Context, svc *services.RecurringTaskService) {
	taskID := c.Param("taskId")

	task, err := svc.PauseTask(c.Request.Context(), taskID)
	if err != nil {
		respondEngineError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Recurring task paused",
		"taskId":  task.TaskID,
	})
}
