package tools

import (
	"context"
	"encoding/json"
	"strings"

	"github.com/forhad-fhj/SkillBridge/engine"
	"github.com/forhad-fhj/SkillBridge/models"
)

// LearningResourcesTool looks up learning material for a skill
type LearningResourcesTool struct {
	catalog engine.ResourceCatalog
	limit   int
}

// NewLearningResourcesTool creates a new learning resources tool. limit is
// the default number of resources returned.
func NewLearningResourcesTool(catalog engine.ResourceCatalog, limit int) *LearningResourcesTool {
	if limit <= 0 {
		limit = engine.DefaultMaxResources
	}
	return &LearningResourcesTool{
		catalog: catalog,
		limit:   limit,
	}
}

// learningResourcesInput is the tool input; Limit overrides the default
type learningResourcesInput struct {
	Skill string `json:"skill"`
	Limit int    `json:"limit,omitempty"`
}

func (t *LearningResourcesTool) Name() string {
	return "get_learning_resources"
}

func (t *LearningResourcesTool) Description() string {
	return `Find learning resources for a technical skill.
Input should be the skill name and optionally how many resources to return.
Returns courses, documentation and tutorials for the skill.`
}

func (t *LearningResourcesTool) Schema() string {
	return models.SchemaLearningResources
}

func (t *LearningResourcesTool) Run(ctx context.Context, input json.RawMessage) (interface{}, error) {
	var req learningResourcesInput
	if err := decode(input, &req); err != nil {
		return nil, err
	}
	skill := strings.TrimSpace(req.Skill)
	if skill == "" {
		return nil, &models.InputError{Field: "skill", Message: "is required"}
	}
	limit := t.limit
	if req.Limit > 0 {
		limit = req.Limit
	}

	response := models.ResourcesResponse{
		Skill:     skill,
		Resources: []models.Resource{},
	}
	if t.catalog == nil {
		return response, nil
	}

	entry, err := t.catalog.Lookup(skill)
	if err != nil {
		return nil, err
	}
	if entry != nil {
		resources := entry.Resources
		if len(resources) > limit {
			resources = resources[:limit]
		}
		response.Resources = append(response.Resources, resources...)
	}
	return response, nil
}
