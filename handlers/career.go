package handlers

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/forhad-fhj/SkillBridge/engine"
	"github.com/forhad-fhj/SkillBridge/extract"
	"github.com/forhad-fhj/SkillBridge/feedback"
	"github.com/forhad-fhj/SkillBridge/models"
)

// CareerHandler serves the single-document career checks: job fit, role
// recommendations and resume feedback
type CareerHandler struct {
	engine *engine.Engine
	skills extract.SkillExtractor
	roles  []models.Role
}

// NewCareerHandler creates a new career handler
func NewCareerHandler(eng *engine.Engine, skills extract.SkillExtractor, roles []models.Role) *CareerHandler {
	return &CareerHandler{
		engine: eng,
		skills: skills,
		roles:  roles,
	}
}

// bindValidated checks raw against the named schema and decodes it into out
func bindValidated(c *gin.Context, schema string, out interface{}) bool {
	raw, err := c.GetRawData()
	if err != nil {
		badRequest(c, "Invalid request body", err)
		return false
	}
	if err := models.ValidatePayload(schema, raw); err != nil {
		badRequest(c, "Invalid request body", err)
		return false
	}
	if err := json.Unmarshal(raw, out); err != nil {
		badRequest(c, "Invalid request body", err)
		return false
	}
	return true
}

// inputFailure writes a 400 for input errors and a 500 otherwise
func inputFailure(c *gin.Context, component, message string, err error) {
	var inputErr *models.InputError
	if errors.As(err, &inputErr) {
		badRequest(c, message, err)
		return
	}
	log.Printf("[%s] %s: %v", component, message, err)
	c.JSON(http.StatusInternalServerError, models.ErrorResponse{
		Error: message,
		Code:  http.StatusInternalServerError,
	})
}

// AnalyzeJobFit compares the user's skills with one job description
// @Summary Analyze job fit
// @Description Extract skills from a job description and compare them with the user's skills. Returns matched, missing and extra skills, a fit level and resources for the missing skills. With resumeText an ATS compatibility score is included.
// @Tags Career
// @Accept json
// @Produce json
// @Param request body models.JobFitRequest true "Job fit request"
// @Success 200 {object} models.JobFitResult "Job fit"
// @Failure 400 {object} models.ErrorResponse "Invalid request"
// @Failure 500 {object} models.ErrorResponse "Analysis failed"
// @Router /analyze-job-fit [post]
func (h *CareerHandler) AnalyzeJobFit(c *gin.Context) {
	var req models.JobFitRequest
	if !bindValidated(c, models.SchemaJobFit, &req) {
		return
	}
	if err := req.Validate(); err != nil {
		badRequest(c, "Invalid request", err)
		return
	}

	jobSkills, err := h.skills.ExtractSkills(c.Request.Context(), req.JobDescription)
	if err != nil {
		log.Printf("[CareerHandler] Skill extraction failed: %v", err)
		c.JSON(http.StatusInternalServerError, models.ErrorResponse{
			Error: "Failed to extract skills",
			Code:  http.StatusInternalServerError,
		})
		return
	}

	result, err := h.engine.FitJob(req.UserSkills, jobSkills)
	if err != nil {
		inputFailure(c, "CareerHandler", "Job fit analysis failed", err)
		return
	}
	result.Domain = strings.TrimSpace(req.Domain)
	if strings.TrimSpace(req.ResumeText) != "" {
		result.ATSScore = feedback.ATS(req.ResumeText, req.JobDescription)
	}

	log.Printf("[CareerHandler] Job fit %.1f%% (%d/%d skills)",
		result.MatchPercentage, result.MatchedCount, result.JDSkillCount)
	c.JSON(http.StatusOK, result)
}

// RecommendRoles suggests entry-level roles for the user's skills
// @Summary Recommend roles
// @Description Rank entry-level roles by how well the user's skills cover their required and preferred skills. Roles whose minimum readiness is more than 20 points above the user's readiness are left out.
// @Tags Career
// @Accept json
// @Produce json
// @Param request body models.RecommendRolesRequest true "Role recommendation request"
// @Success 200 {object} models.RecommendRolesResponse "Recommended roles"
// @Failure 400 {object} models.ErrorResponse "Invalid request"
// @Failure 500 {object} models.ErrorResponse "Recommendation failed"
// @Router /recommend-roles [post]
func (h *CareerHandler) RecommendRoles(c *gin.Context) {
	var req models.RecommendRolesRequest
	if !bindValidated(c, models.SchemaRecommendRoles, &req) {
		return
	}
	if err := req.Validate(); err != nil {
		badRequest(c, "Invalid request", err)
		return
	}

	recs, err := h.engine.RecommendRoles(req.UserSkills, req.ReadinessScore, h.roles, req.MaxRoles)
	if err != nil {
		inputFailure(c, "CareerHandler", "Role recommendation failed", err)
		return
	}

	c.JSON(http.StatusOK, models.RecommendRolesResponse{
		Recommendations: recs,
		Count:           len(recs),
	})
}

// ResumeFeedback grades the writing quality of a resume
// @Summary Resume feedback
// @Description Score a resume on action verbs, soft skills, quantified achievements and bullet structure, with the top priorities to improve.
// @Tags Career
// @Accept json
// @Produce json
// @Param request body models.ResumeFeedbackRequest true "Resume text"
// @Success 200 {object} models.ResumeFeedback "Resume feedback"
// @Failure 400 {object} models.ErrorResponse "Resume too short"
// @Router /resume-feedback [post]
func (h *CareerHandler) ResumeFeedback(c *gin.Context) {
	var req models.ResumeFeedbackRequest
	if !bindValidated(c, models.SchemaResumeFeedback, &req) {
		return
	}
	if err := req.Validate(); err != nil {
		badRequest(c, "Invalid request", err)
		return
	}

	report := feedback.Analyze(req.ResumeText)
	log.Printf("[CareerHandler] Resume feedback: %d (%s)", report.OverallScore, report.QualityLevel)
	c.JSON(http.StatusOK, report)
}
