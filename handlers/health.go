package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/forhad-fhj/SkillBridge/models"
)

// Version is reported by the health endpoint
const Version = "1.0.0"

// HealthCheck returns the server health status
// @Summary Health check
// @Description Check if the server is running
// @Tags Health
// @Produce json
// @Success 200 {object} models.HealthResponse "Server is healthy"
// @Router /health [get]
func HealthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, models.HealthResponse{
		Status:    "healthy",
		Service:   "SkillBridge API",
		Version:   Version,
		Timestamp: time.Now().UTC().Format(time.RFC3339),
	})
}
