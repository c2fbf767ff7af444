package tools

import (
	"context"
	"encoding/json"
	"log"
	"strings"

	"github.com/forhad-fhj/SkillBridge/engine"
	"github.com/forhad-fhj/SkillBridge/models"
	"github.com/forhad-fhj/SkillBridge/storage"
)

// AnalyzeGapTool runs a skill gap analysis
type AnalyzeGapTool struct {
	engine        *engine.Engine
	jobs          storage.JobRepository
	defaultDomain string
}

// NewAnalyzeGapTool creates a new gap analysis tool. jobs may be nil, in
// which case only the built-in market is used when no jobs are supplied.
func NewAnalyzeGapTool(eng *engine.Engine, jobs storage.JobRepository, defaultDomain string) *AnalyzeGapTool {
	if defaultDomain == "" {
		defaultDomain = engine.DefaultDomain
	}
	return &AnalyzeGapTool{
		engine:        eng,
		jobs:          jobs,
		defaultDomain: defaultDomain,
	}
}

func (t *AnalyzeGapTool) Name() string {
	return "analyze_gap"
}

func (t *AnalyzeGapTool) Description() string {
	return `Compare a user's categorized skills with job market demand.
Input is the user's skills grouped by category, plus optional job postings or a domain.
Returns a readiness score (0-100), matched and missing skills, and a prioritized learning roadmap.`
}

func (t *AnalyzeGapTool) Schema() string {
	return models.SchemaAnalyzeGap
}

func (t *AnalyzeGapTool) Run(ctx context.Context, input json.RawMessage) (interface{}, error) {
	var req models.AnalyzeGapRequest
	if err := decode(input, &req); err != nil {
		return nil, err
	}

	domain := strings.TrimSpace(req.Domain)
	if domain == "" {
		domain = t.defaultDomain
	}

	jobs := req.JobDescriptions
	if len(jobs) == 0 && t.jobs != nil {
		stored, err := t.jobs.ListJobs(ctx, domain)
		if err != nil {
			log.Printf("[AnalyzeGapTool] Failed to load jobs for %s: %v", domain, err)
		}
		jobs = stored
	}

	return t.engine.AnalyzeWithFallback(req.UserSkills, jobs, domain)
}
