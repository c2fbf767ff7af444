package tools

import (
	"context"
	"encoding/json"
	"strings"

	"github.com/forhad-fhj/SkillBridge/extract"
	"github.com/forhad-fhj/SkillBridge/models"
)

// ExtractSkillsTool extracts categorized skills from text
type ExtractSkillsTool struct {
	extractor extract.SkillExtractor
}

// NewExtractSkillsTool creates a new skill extraction tool
func NewExtractSkillsTool(extractor extract.SkillExtractor) *ExtractSkillsTool {
	return &ExtractSkillsTool{extractor: extractor}
}

func (t *ExtractSkillsTool) Name() string {
	return "extract_skills"
}

func (t *ExtractSkillsTool) Description() string {
	return `Extract technical skills from resume or job description text.
Input should be the plain text content.
Returns skills grouped by category (languages, frameworks, databases, tools, concepts).`
}

func (t *ExtractSkillsTool) Schema() string {
	return models.SchemaExtractSkills
}

func (t *ExtractSkillsTool) Run(ctx context.Context, input json.RawMessage) (interface{}, error) {
	var req models.ExtractSkillsRequest
	if err := decode(input, &req); err != nil {
		return nil, err
	}
	if strings.TrimSpace(req.Text) == "" {
		return nil, &models.InputError{Field: "text", Message: "is required"}
	}

	skills, err := t.extractor.ExtractSkills(ctx, req.Text)
	if err != nil {
		return nil, err
	}
	return models.ExtractSkillsResponse{
		Skills:      skills,
		TotalSkills: skills.Count(),
	}, nil
}
