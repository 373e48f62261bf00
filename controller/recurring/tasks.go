package recurring

import (
	"context"
	"net/http"
	"time"

	"cloud.google.com/go/firestore"
	"github.com/gin-gonic/gin"

	"taskdesk/services"
)

const nameCacheTTL = 30 * time.Second

// ListVisibleTasks returns the tasks the viewer may see, each with its
// visible client subset and, for elevated viewers, the mapped employees'
// display names.
func ListVisibleTasks(c *gin.Context, firestoreClient *firestore.Client, svc *services.RecurringTaskService) {
	viewer, ok := currentViewer(c, firestoreClient)
	if !ok {
		return
	}

	views, err := svc.GetVisibleTasksForViewer(c.Request.Context(), viewer)
	if err != nil {
		respondEngineError(c, err)
		return
	}

	// Name lookups go through a cache scoped to this request; the same
	// employee mapped on many tasks is fetched once.
	names := services.NewNameCache(func(ctx context.Context, employeeID string) (string, error) {
		user, err := services.GetUserByID(ctx, firestoreClient, employeeID)
		if err != nil {
			return "", err
		}
		return user.Name, nil
	}, nameCacheTTL)

	type mappingView struct {
		EmployeeID   string   `json:"employeeId"`
		EmployeeName string   `json:"employeeName,omitempty"`
		ClientIDs    []string `json:"clientIds"`
	}
	type taskView struct {
		services.TaskView
		MappingDetails []mappingView `json:"mappingDetails,omitempty"`
	}

	out := make([]taskView, 0, len(views))
	for _, v := range views {
		tv := taskView{TaskView: v}
		if viewer.Elevated() {
			for _, m := range v.Task.TeamMemberMappings {
				name, err := names.Get(c.Request.Context(), m.EmployeeID)
				if err != nil {
					name = "" // unknown employee id; keep the mapping visible
				}
				tv.MappingDetails = append(tv.MappingDetails, mappingView{
					EmployeeID:   m.EmployeeID,
					EmployeeName: name,
					ClientIDs:    m.ClientIDs,
				})
			}
		}
		out = append(out, tv)
	}

	c.JSON(http.StatusOK, gin.H{"tasks": out})
}
