// Package recurring exposes the recurring task engine over HTTP. Every
// handler resolves the acting viewer from the Users collection before calling
// into the engine, so visibility filtering always runs server side against a
// trusted role.
package recurring

import (
	"context"
	"errors"
	"net/http"

	"cloud.google.com/go/firestore"
	"github.com/gin-gonic/gin"

	"taskdesk/assignment"
	"taskdesk/completion"
	"taskdesk/fiscal"
	"taskdesk/middleware"
	"taskdesk/model"
	"taskdesk/recurrence"
	"taskdesk/services"
	"taskdesk/store"
)

func RecurringController(router *gin.Engine, firestoreClient *firestore.Client, svc *services.RecurringTaskService) {
	routes := router.Group("/recurring", middleware.AccessTokenMiddleware())
	{
		routes.GET("", func(c *gin.Context) {
			ListVisibleTasks(c, firestoreClient, svc)
		})
		routes.GET("/:taskId/periods", func(c *gin.Context) {
			GetDisplayPeriods(c, svc)
		})
		routes.GET("/:taskId/occurrences", func(c *gin.Context) {
			GetUpcomingOccurrences(c, svc)
		})
		routes.POST("/:taskId/completion", func(c *gin.Context) {
			RecordCompletion(c, firestoreClient, svc)
		})
		routes.GET("/:taskId/completion", func(c *gin.Context) {
			GetCompletion(c, firestoreClient, svc)
		})
	}

	admin := router.Group("/recurring", middleware.AccessTokenMiddleware(), middleware.AdminMiddleware())
	{
		admin.POST("", func(c *gin.Context) {
			CreateRecurringTask(c, firestoreClient, svc)
		})
		admin.PUT("/:taskId/mappings", func(c *gin.Context) {
			UpdateMappings(c, svc)
		})
		admin.DELETE("/:taskId/mappings/:employeeId", func(c *gin.Context) {
			RemoveMapping(c, svc)
		})
		admin.POST("/:taskId/pause", func(c *gin.Context) {
			PauseTask(c, svc)
		})
	}
}

// currentViewer builds the trusted viewer context for the request. The role
// comes from the user document, never from the request.
func currentViewer(c *gin.Context, firestoreClient *firestore.Client) (model.Viewer, bool) {
	userID := c.MustGet("userId").(string)
	viewer, err := services.ResolveViewer(context.Background(), firestoreClient, userID)
	if err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Failed to resolve user"})
		return model.Viewer{}, false
	}
	return viewer, true
}

func respondEngineError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, store.ErrNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": "Task not found"})
	case errors.Is(err, completion.ErrUnauthorized):
		c.JSON(http.StatusForbidden, gin.H{"error": "You are not assigned this client"})
	case errors.Is(err, completion.ErrInapplicablePeriod):
		c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
	case errors.Is(err, assignment.ErrInvalidClientReference),
		errors.Is(err, recurrence.ErrInvalidPattern),
		errors.Is(err, fiscal.ErrNotPeriodAddressable):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal error"})
	}
}
