package handlers

import (
	"log"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/forhad-fhj/SkillBridge/engine"
	"github.com/forhad-fhj/SkillBridge/models"
	"github.com/forhad-fhj/SkillBridge/storage"
)

// JobsHandler serves the job postings used as market data
type JobsHandler struct {
	jobs storage.JobRepository
}

// NewJobsHandler creates a new jobs handler
func NewJobsHandler(jobs storage.JobRepository) *JobsHandler {
	return &JobsHandler{jobs: jobs}
}

// ListJobs returns stored jobs, optionally filtered by domain. An empty
// repository serves the built-in market dataset instead.
// @Summary List jobs
// @Description List job postings and the domains they cover
// @Tags Jobs
// @Produce json
// @Param domain query string false "Filter by domain" example(Backend Developer)
// @Success 200 {object} models.JobsResponse "Jobs"
// @Failure 500 {object} models.ErrorResponse "Failed to load jobs"
// @Router /jobs [get]
func (h *JobsHandler) ListJobs(c *gin.Context) {
	ctx := c.Request.Context()
	domain := strings.TrimSpace(c.Query("domain"))

	domains, err := h.jobs.ListDomains(ctx)
	if err != nil {
		log.Printf("[JobsHandler] Failed to list domains: %v", err)
		c.JSON(http.StatusInternalServerError, models.ErrorResponse{
			Error: "Failed to load jobs",
			Code:  http.StatusInternalServerError,
		})
		return
	}

	if len(domains) == 0 {
		c.JSON(http.StatusOK, builtinJobs(domain))
		return
	}

	jobs, err := h.jobs.ListJobs(ctx, domain)
	if err != nil {
		log.Printf("[JobsHandler] Failed to list jobs: %v", err)
		c.JSON(http.StatusInternalServerError, models.ErrorResponse{
			Error: "Failed to load jobs",
			Code:  http.StatusInternalServerError,
		})
		return
	}

	c.JSON(http.StatusOK, models.JobsResponse{
		Jobs:    jobs,
		Domains: domains,
		Total:   len(jobs),
	})
}

// builtinJobs lists the built-in market for one domain, or all of it
func builtinJobs(domain string) models.JobsResponse {
	domains := engine.FallbackDomains()
	jobs := []models.JobRecord{}
	for _, d := range domains {
		if domain != "" && !strings.EqualFold(d, domain) {
			continue
		}
		market, _ := engine.FallbackMarket(d)
		jobs = append(jobs, market...)
	}
	return models.JobsResponse{
		Jobs:    jobs,
		Domains: domains,
		Total:   len(jobs),
	}
}

// CreateJob stores a job posting
// @Summary Create job
// @Description Add a job posting with its extracted skills to the market data
// @Tags Jobs
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body models.CreateJobRequest true "Job posting"
// @Success 201 {object} models.JobRecord "Created job"
// @Failure 400 {object} models.ErrorResponse "Invalid request body"
// @Failure 401 {object} models.ErrorResponse "Unauthorized"
// @Failure 500 {object} models.ErrorResponse "Failed to save job"
// @Router /jobs [post]
func (h *JobsHandler) CreateJob(c *gin.Context) {
	var req models.CreateJobRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, "Invalid request body", err)
		return
	}
	if err := req.ExtractedSkills.Validate("extractedSkills"); err != nil {
		badRequest(c, "Invalid skills", err)
		return
	}

	job := &models.JobRecord{
		Title:           strings.TrimSpace(req.Title),
		Company:         strings.TrimSpace(req.Company),
		Domain:          strings.TrimSpace(req.Domain),
		ExtractedSkills: req.ExtractedSkills,
		DescriptionText: req.DescriptionText,
		SourceURL:       req.SourceURL,
	}
	if err := h.jobs.SaveJob(c.Request.Context(), job); err != nil {
		log.Printf("[JobsHandler] Failed to save job: %v", err)
		c.JSON(http.StatusInternalServerError, models.ErrorResponse{
			Error: "Failed to save job",
			Code:  http.StatusInternalServerError,
		})
		return
	}

	log.Printf("[JobsHandler] Job saved: %s (%s)", job.Title, job.Domain)
	c.JSON(http.StatusCreated, job)
}
