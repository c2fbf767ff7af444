package handlers

import (
	"log"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/forhad-fhj/SkillBridge/auth"
	"github.com/forhad-fhj/SkillBridge/models"
	"github.com/forhad-fhj/SkillBridge/storage"
)

// ProgressHandler serves a user's analysis history
type ProgressHandler struct {
	results storage.ResultStore
}

// NewProgressHandler creates a new progress handler
func NewProgressHandler(results storage.ResultStore) *ProgressHandler {
	return &ProgressHandler{results: results}
}

// GetProgress returns recent readiness snapshots and summary stats
// @Summary Get progress
// @Description Get the authenticated user's last 10 readiness snapshots with summary statistics
// @Tags Progress
// @Produce json
// @Security BearerAuth
// @Success 200 {object} models.ProgressResponse "Progress history"
// @Failure 401 {object} models.ErrorResponse "Unauthorized"
// @Failure 500 {object} models.ErrorResponse "Failed to load progress"
// @Router /progress [get]
func (h *ProgressHandler) GetProgress(c *gin.Context) {
	claims := auth.GetAuthClaims(c)
	if claims == nil {
		unauthorized(c)
		return
	}

	history, err := h.results.ListProgress(c.Request.Context(), claims.UserID, storage.DefaultHistoryLimit)
	if err != nil {
		log.Printf("[ProgressHandler] Failed to list progress for %s: %v", claims.UserID, err)
		c.JSON(http.StatusInternalServerError, models.ErrorResponse{
			Error: "Failed to load progress",
			Code:  http.StatusInternalServerError,
		})
		return
	}

	c.JSON(http.StatusOK, models.ProgressResponse{
		History: history,
		Stats:   models.SummarizeProgress(history),
	})
}

// SaveProgress stores a readiness snapshot
// @Summary Save progress
// @Description Save a readiness snapshot for the authenticated user
// @Tags Progress
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body models.SaveProgressRequest true "Progress snapshot"
// @Success 201 {object} models.SaveProgressResponse "Progress saved"
// @Failure 400 {object} models.ErrorResponse "Invalid request body"
// @Failure 401 {object} models.ErrorResponse "Unauthorized"
// @Failure 500 {object} models.ErrorResponse "Failed to save progress"
// @Router /progress/save [post]
func (h *ProgressHandler) SaveProgress(c *gin.Context) {
	claims := auth.GetAuthClaims(c)
	if claims == nil {
		unauthorized(c)
		return
	}

	var req models.SaveProgressRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, "Invalid request body", err)
		return
	}
	if req.ReadinessScore < 0 || req.ReadinessScore > 100 || req.SkillCount < 0 {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{
			Error:   "Invalid progress",
			Code:    http.StatusBadRequest,
			Details: "readinessScore must be 0-100 and skillCount must not be negative",
		})
		return
	}

	entry := &models.ProgressEntry{
		UserID:         claims.UserID,
		ReadinessScore: req.ReadinessScore,
		SkillCount:     req.SkillCount,
		Domain:         strings.TrimSpace(req.Domain),
		AnalyzedAt:     time.Now().UTC(),
	}
	if err := h.results.SaveProgress(c.Request.Context(), entry); err != nil {
		log.Printf("[ProgressHandler] Failed to save progress for %s: %v", claims.UserID, err)
		c.JSON(http.StatusInternalServerError, models.ErrorResponse{
			Error: "Failed to save progress",
			Code:  http.StatusInternalServerError,
		})
		return
	}

	c.JSON(http.StatusCreated, models.SaveProgressResponse{
		ID:      entry.ID,
		Message: "Progress saved successfully",
	})
}

// ListAnalyses returns the user's recent analyses
// @Summary List analyses
// @Description Get the authenticated user's last 10 gap analyses
// @Tags Progress
// @Produce json
// @Security BearerAuth
// @Success 200 {object} models.AnalysesResponse "Analyses"
// @Failure 401 {object} models.ErrorResponse "Unauthorized"
// @Failure 500 {object} models.ErrorResponse "Failed to load analyses"
// @Router /analyses [get]
func (h *ProgressHandler) ListAnalyses(c *gin.Context) {
	claims := auth.GetAuthClaims(c)
	if claims == nil {
		unauthorized(c)
		return
	}

	analyses, err := h.results.ListAnalyses(c.Request.Context(), claims.UserID, storage.DefaultHistoryLimit)
	if err != nil {
		log.Printf("[ProgressHandler] Failed to list analyses for %s: %v", claims.UserID, err)
		c.JSON(http.StatusInternalServerError, models.ErrorResponse{
			Error: "Failed to load analyses",
			Code:  http.StatusInternalServerError,
		})
		return
	}

	c.JSON(http.StatusOK, models.AnalysesResponse{Analyses: analyses})
}

func unauthorized(c *gin.Context) {
	c.JSON(http.StatusUnauthorized, models.ErrorResponse{
		Error: "Unauthorized",
		Code:  http.StatusUnauthorized,
	})
}
