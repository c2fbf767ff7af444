package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"log"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/forhad-fhj/SkillBridge/auth"
	"github.com/forhad-fhj/SkillBridge/engine"
	"github.com/forhad-fhj/SkillBridge/events"
	"github.com/forhad-fhj/SkillBridge/models"
	"github.com/forhad-fhj/SkillBridge/storage"
)

// AnalysisHandler handles gap analysis requests
type AnalysisHandler struct {
	engine        *engine.Engine
	jobs          storage.JobRepository
	results       storage.ResultStore
	publisher     events.Publisher
	defaultDomain string
}

// NewAnalysisHandler creates a new analysis handler. jobs, results and
// publisher may be nil.
func NewAnalysisHandler(
	eng *engine.Engine,
	jobs storage.JobRepository,
	results storage.ResultStore,
	publisher events.Publisher,
	defaultDomain string,
) *AnalysisHandler {
	if publisher == nil {
		publisher = events.NoopPublisher{}
	}
	if defaultDomain == "" {
		defaultDomain = engine.DefaultDomain
	}
	return &AnalysisHandler{
		engine:        eng,
		jobs:          jobs,
		results:       results,
		publisher:     publisher,
		defaultDomain: defaultDomain,
	}
}

// AnalyzeGap scores the user's skills against market demand
// @Summary Analyze skill gap
// @Description Compare the user's skills with job market data and return a readiness score, matched and missing skills, and a learning roadmap. When jobDescriptions is omitted, stored jobs for the domain are used, then the built-in market dataset.
// @Tags Analysis
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body models.AnalyzeGapRequest true "Gap analysis request"
// @Success 200 {object} models.AnalysisResult "Analysis result"
// @Failure 400 {object} models.ErrorResponse "Invalid skills"
// @Failure 500 {object} models.ErrorResponse "Analysis failed"
// @Router /analyze-gap [post]
func (h *AnalysisHandler) AnalyzeGap(c *gin.Context) {
	raw, err := c.GetRawData()
	if err != nil {
		badRequest(c, "Invalid request body", err)
		return
	}
	if err := models.ValidatePayload(models.SchemaAnalyzeGap, raw); err != nil {
		badRequest(c, "Invalid request body", err)
		return
	}

	var req models.AnalyzeGapRequest
	if err := json.Unmarshal(raw, &req); err != nil {
		badRequest(c, "Invalid request body", err)
		return
	}

	ctx := c.Request.Context()
	domain := strings.TrimSpace(req.Domain)
	if domain == "" {
		domain = h.defaultDomain
	}

	jobs := req.JobDescriptions
	if len(jobs) == 0 {
		jobs = h.storedJobs(ctx, domain)
	}

	result, err := h.engine.AnalyzeWithFallback(req.UserSkills, jobs, domain)
	if err != nil {
		var inputErr *models.InputError
		if errors.As(err, &inputErr) {
			badRequest(c, "Invalid skills", err)
			return
		}
		log.Printf("[AnalysisHandler] Analysis failed: %v", err)
		c.JSON(http.StatusInternalServerError, models.ErrorResponse{
			Error: "Analysis failed",
			Code:  http.StatusInternalServerError,
		})
		return
	}

	log.Printf("[AnalysisHandler] Analyzed %d skills against %d jobs (%s): score %d",
		result.UserSkillCount, result.JobCount, result.Domain, result.ReadinessScore)

	analysisID := ""
	userID := ""
	if claims := auth.GetAuthClaims(c); claims != nil {
		userID = claims.UserID
		analysisID = h.persist(ctx, userID, result)
	}
	h.publish(ctx, analysisID, userID, result)

	c.JSON(http.StatusOK, result)
}

// storedJobs loads repository jobs for the domain. Failures degrade to the
// built-in market.
func (h *AnalysisHandler) storedJobs(ctx context.Context, domain string) []models.JobRecord {
	if h.jobs == nil {
		return nil
	}
	jobs, err := h.jobs.ListJobs(ctx, domain)
	if err != nil {
		log.Printf("[AnalysisHandler] Failed to load jobs for %s, using built-in market: %v", domain, err)
		return nil
	}
	return jobs
}

// persist stores the analysis and a progress snapshot for the user
func (h *AnalysisHandler) persist(ctx context.Context, userID string, result *models.AnalysisResult) string {
	if h.results == nil {
		return ""
	}

	roadmap, err := json.Marshal(result.GeneratedRoadmap)
	if err != nil {
		log.Printf("[AnalysisHandler] Failed to encode roadmap: %v", err)
		return ""
	}

	now := time.Now().UTC()
	record := &models.AnalysisRecord{
		UserID:           userID,
		Domain:           result.Domain,
		ReadinessScore:   result.ReadinessScore,
		SkillCount:       result.UserSkillCount,
		MatchedSkills:    result.MatchedSkills,
		MissingSkills:    result.MissingSkills,
		GeneratedRoadmap: string(roadmap),
		AnalyzedAt:       now,
	}
	if err := h.results.SaveAnalysis(ctx, record); err != nil {
		log.Printf("[AnalysisHandler] Failed to save analysis for %s: %v", userID, err)
		return ""
	}

	entry := &models.ProgressEntry{
		UserID:         userID,
		ReadinessScore: result.ReadinessScore,
		SkillCount:     result.UserSkillCount,
		Domain:         result.Domain,
		AnalyzedAt:     now,
	}
	if err := h.results.SaveProgress(ctx, entry); err != nil {
		log.Printf("[AnalysisHandler] Failed to save progress for %s: %v", userID, err)
	}
	return record.ID
}

func (h *AnalysisHandler) publish(ctx context.Context, analysisID, userID string, result *models.AnalysisResult) {
	event := events.AnalysisCompleted{
		AnalysisID:     analysisID,
		UserID:         userID,
		Domain:         result.Domain,
		ReadinessScore: result.ReadinessScore,
		MatchedCount:   len(result.MatchedSkills),
		MissingCount:   len(result.MissingSkills),
		JobCount:       result.JobCount,
		UsedFallback:   result.UsedFallback,
		OccurredAt:     time.Now().UTC(),
	}
	if err := h.publisher.Publish(ctx, events.RoutingAnalysisCompleted, event); err != nil {
		log.Printf("[AnalysisHandler] Failed to publish analysis event: %v", err)
	}
}

// badRequest writes a 400 with the error as details
func badRequest(c *gin.Context, message string, err error) {
	c.JSON(http.StatusBadRequest, models.ErrorResponse{
		Error:   message,
		Code:    http.StatusBadRequest,
		Details: err.Error(),
	})
}
