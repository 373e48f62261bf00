package recurring

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"taskdesk/dto"
	"taskdesk/model"
	"taskdesk/services"
)

func UpdateMappings(c *gin.Context, svc *services.RecurringTaskService) {
	taskID := c.Param("taskId")

	var request dto.UpdateMappingsRequest
	if err := c.ShouldBindJSON(&request); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input"})
		return
	}

	mappings := make([]model.TeamMemberMapping, 0, len(request.Mappings))
	for _, m := range request.Mappings {
		mappings = append(mappings, model.TeamMemberMapping{
			EmployeeID: m.EmployeeID,
			ClientIDs:  m.ClientIDs,
		})
	}

	task, err := svc.UpdateMappings(c.Request.Context(), taskID, mappings)
	if err != nil {
		respondEngineError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message":            "Mappings updated successfully",
		"taskId":             task.TaskID,
		"teamMemberMappings": task.TeamMemberMappings,
	})
}

func RemoveMapping(c *gin.Context, svc *services.RecurringTaskService) {
	taskID := c.Param("taskId")
	employeeID := c.Param("employeeId")

	task, err := svc.RemoveMapping(c.Request.Context(), taskID, employeeID)
	if err != nil {
		respondEngineError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message":            "Mapping removed",
		"taskId":             task.TaskID,
		"teamMemberMappings": task.TeamMemberMappings,
	})
}
