package recurring

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"taskdesk/services"
)

const defaultOccurrenceWindow = 90 * 24 * time.Hour

// GetDisplayPeriods lists the period keys a completion picker should offer:
// current fiscal month forward, default five-year horizon.
func GetDisplayPeriods(c *gin.Context, svc *services.RecurringTaskService) {
	taskID := c.Param("taskId")

	periods, err := svc.DisplayPeriods(c.Request.Context(), taskID)
	if err != nil {
		respondEngineError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"periods": periods})
}

// GetUpcomingOccurrences previews the task's occurrence dates over the next
// window (90 days by default). This is the surface day-based patterns are
// tracked on, since they have no fiscal period buckets.
func GetUpcomingOccurrences(c *gin.Context, svc *services.RecurringTaskService) {
	taskID := c.Param("taskId")

	window := defaultOccurrenceWindow
	if raw := c.Query("days"); raw != "" {
		days, err := strconv.Atoi(raw)
		if err != nil || days <= 0 {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid days parameter"})
			return
		}
		window = time.Duration(days) * 24 * time.Hour
	}

	occurrences, err := svc.UpcomingOccurrences(c.Request.Context(), taskID, time.Now(), window)
	if err != nil {
		respondEngineError(c, err)
		return
	}

	dates := make([]string, 0, len(occurrences))
	for _, occ := range occurrences {
		dates = append(dates, occ.Format("2006-01-02"))
	}
	c.JSON(http.StatusOK, gin.H{"occurrences": dates})
}
