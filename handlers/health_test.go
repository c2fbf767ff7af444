package handlers

import (
	"net/http"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/forhad-fhj/SkillBridge/models"
)

func TestHealthCheck(t *testing.T) {
	router := gin.New()
	router.GET("/health", HealthCheck)

	w := doJSON(router, http.MethodGet, "/health", nil, "")
	require.Equal(t, http.StatusOK, w.Code)

	var resp models.HealthResponse
	decodeBody(t, w, &resp)
	assert.Equal(t, "healthy", resp.Status)
	assert.Equal(t, Version, resp.Version)
	_, err := time.Parse(time.RFC3339, resp.Timestamp)
	assert.NoError(t, err)
}
