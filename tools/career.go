package tools

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/forhad-fhj/SkillBridge/engine"
	"github.com/forhad-fhj/SkillBridge/extract"
	"github.com/forhad-fhj/SkillBridge/feedback"
	"github.com/forhad-fhj/SkillBridge/models"
)

// JobFitTool compares a user's skills with one job description
type JobFitTool struct {
	engine    *engine.Engine
	extractor extract.SkillExtractor
}

// NewJobFitTool creates a new job fit tool
func NewJobFitTool(eng *engine.Engine, extractor extract.SkillExtractor) *JobFitTool {
	return &JobFitTool{engine: eng, extractor: extractor}
}

func (t *JobFitTool) Name() string {
	return "analyze_job_fit"
}

func (t *JobFitTool) Description() string {
	return `Check how well a user fits a single job posting.
Input is the user's categorized skills and the job description text, optionally with resume text.
Returns the match percentage, matched, missing and extra skills, and an ATS score when resume text is given.`
}

func (t *JobFitTool) Schema() string {
	return models.SchemaJobFit
}

func (t *JobFitTool) Run(ctx context.Context, input json.RawMessage) (interface{}, error) {
	var req models.JobFitRequest
	if err := decode(input, &req); err != nil {
		return nil, err
	}
	if err := req.Validate(); err != nil {
		return nil, err
	}

	jobSkills, err := t.extractor.ExtractSkills(ctx, req.JobDescription)
	if err != nil {
		return nil, fmt.Errorf("failed to extract job skills: %w", err)
	}
	result, err := t.engine.FitJob(req.UserSkills, jobSkills)
	if err != nil {
		return nil, err
	}
	result.Domain = strings.TrimSpace(req.Domain)
	if strings.TrimSpace(req.ResumeText) != "" {
		result.ATSScore = feedback.ATS(req.ResumeText, req.JobDescription)
	}
	return result, nil
}

// RecommendRolesTool ranks entry-level roles for a user
type RecommendRolesTool struct {
	engine *engine.Engine
	roles  []models.Role
}

// NewRecommendRolesTool creates a new role recommendation tool
func NewRecommendRolesTool(eng *engine.Engine, roles []models.Role) *RecommendRolesTool {
	return &RecommendRolesTool{engine: eng, roles: roles}
}

func (t *RecommendRolesTool) Name() string {
	return "recommend_roles"
}

func (t *RecommendRolesTool) Description() string {
	return `Suggest entry-level roles that fit a user's skills.
Input is the user's categorized skills and their readiness score from analyze_gap.
Returns roles ranked by fit score with required skill coverage and a Ready or Stretch Goal status.`
}

func (t *RecommendRolesTool) Schema() string {
	return models.SchemaRecommendRoles
}

func (t *RecommendRolesTool) Run(ctx context.Context, input json.RawMessage) (interface{}, error) {
	var req models.RecommendRolesRequest
	if err := decode(input, &req); err != nil {
		return nil, err
	}
	if err := req.Validate(); err != nil {
		return nil, err
	}

	recs, err := t.engine.RecommendRoles(req.UserSkills, req.ReadinessScore, t.roles, req.MaxRoles)
	if err != nil {
		return nil, err
	}
	return models.RecommendRolesResponse{Recommendations: recs, Count: len(recs)}, nil
}

// ResumeFeedbackTool grades resume writing
type ResumeFeedbackTool struct{}

// NewResumeFeedbackTool creates a new resume feedback tool
func NewResumeFeedbackTool() *ResumeFeedbackTool {
	return &ResumeFeedbackTool{}
}

func (t *ResumeFeedbackTool) Name() string {
	return "resume_feedback"
}

func (t *ResumeFeedbackTool) Description() string {
	return `Review the writing quality of a resume.
Input is the resume as plain text (at least 100 characters).
Returns scores for action verbs, soft skills, quantified achievements and bullet points, with the top priorities to fix.`
}

func (t *ResumeFeedbackTool) Schema() string {
	return models.SchemaResumeFeedback
}

func (t *ResumeFeedbackTool) Run(ctx context.Context, input json.RawMessage) (interface{}, error) {
	var req models.ResumeFeedbackRequest
	if err := decode(input, &req); err != nil {
		return nil, err
	}
	if err := req.Validate(); err != nil {
		return nil, err
	}
	return feedback.Analyze(req.ResumeText), nil
}
