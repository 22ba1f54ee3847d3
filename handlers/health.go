package handlers

import (
	"net/http"
	"time"

	"tailortalk/services/calendar"
	"tailortalk/utils"

	"github.com/gin-gonic/gin"
)

// HealthHandler reports service health.
type HealthHandler struct {
	Calendar calendar.Service
}

func NewHealthHandler(cal calendar.Service) *HealthHandler {
	return &HealthHandler{Calendar: cal}
}

// Health handles GET /health.
func (h *HealthHandler) Health(c *gin.Context) {
	snapshot := utils.GetHealthStatus()
	c.JSON(http.StatusOK, gin.H{
		"status":    "healthy",
		"timestamp": time.Now().UTC(),
		"services": gin.H{
			"database": snapshot.Mongo,
			"redis":    snapshot.Redis,
			"calendar": h.Calendar.CheckConnection(),
		},
	})
}
