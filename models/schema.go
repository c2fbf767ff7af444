package models

import (
	"encoding/json"
	"fmt"
	"sync"

	"github.com/santhosh-tekuri/jsonschema/v6"
)

// Schema names for boundary validation. The same documents are advertised
// as tool input schemas.
const (
	SchemaAnalyzeGap        = "analyze-gap"
	SchemaSkillSet          = "skill-set"
	SchemaJobFit            = "job-fit"
	SchemaRecommendRoles    = "recommend-roles"
	SchemaResumeFeedback    = "resume-feedback"
	SchemaExtractSkills     = "extract-skills"
	SchemaLearningResources = "learning-resources"
)

var skillSetDefinition = map[string]any{
	"type":        "object",
	"description": "Skills grouped by category, e.g. {\"languages\": [\"Go\"]}",
	"additionalProperties": map[string]any{
		"type":  []any{"array", "null"},
		"items": map[string]any{"type": "string"},
	},
}

func textProperty(description string) map[string]any {
	return map[string]any{"type": "string", "description": description}
}

var schemaDefinitions = map[string]map[string]any{
	SchemaSkillSet: skillSetDefinition,
	SchemaAnalyzeGap: {
		"type":     "object",
		"required": []any{"userSkills"},
		"properties": map[string]any{
			"userSkills": skillSetDefinition,
			"jobDescriptions": map[string]any{
				"type":        []any{"array", "null"},
				"description": "Job postings with extractedSkills. Omit to use stored or built-in market data.",
				"items": map[string]any{
					"type": "object",
					"properties": map[string]any{
						"id":              map[string]any{"type": "string"},
						"title":           map[string]any{"type": "string"},
						"company":         map[string]any{"type": "string"},
						"domain":          map[string]any{"type": "string"},
						"extractedSkills": skillSetDefinition,
					},
				},
			},
			"domain": map[string]any{
				"type":        []any{"string", "null"},
				"description": "Target role, e.g. Backend Developer",
			},
		},
	},
	SchemaJobFit: {
		"type":     "object",
		"required": []any{"userSkills", "jobDescription"},
		"properties": map[string]any{
			"userSkills":     skillSetDefinition,
			"jobDescription": textProperty("Full text of the job description"),
			"resumeText":     textProperty("Resume text, enables the ATS score"),
			"domain":         textProperty("Optional domain label echoed in the result"),
		},
	},
	SchemaRecommendRoles: {
		"type":     "object",
		"required": []any{"userSkills", "readinessScore"},
		"properties": map[string]any{
			"userSkills": skillSetDefinition,
			"readinessScore": map[string]any{
				"type":        "integer",
				"minimum":     0,
				"maximum":     100,
				"description": "Readiness score from a gap analysis",
			},
			"maxRoles": map[string]any{
				"type":        "integer",
				"minimum":     0,
				"maximum":     MaxRoles,
				"description": "Maximum roles to return, default 5",
			},
		},
	},
	SchemaResumeFeedback: {
		"type":     "object",
		"required": []any{"resumeText"},
		"properties": map[string]any{
			"resumeText": textProperty("Plain text of the resume"),
		},
	},
	SchemaExtractSkills: {
		"type":     "object",
		"required": []any{"text"},
		"properties": map[string]any{
			"text": textProperty("Resume or job description text"),
		},
	},
	SchemaLearningResources: {
		"type":     "object",
		"required": []any{"skill"},
		"properties": map[string]any{
			"skill": textProperty("Skill name, e.g. React"),
			"limit": map[string]any{
				"type":        "integer",
				"minimum":     1,
				"description": "Maximum resources to return",
			},
		},
	},
}

// SchemaDocument returns a copy of a named schema as plain JSON values
func SchemaDocument(name string) (map[string]any, error) {
	definition, ok := schemaDefinitions[name]
	if !ok {
		return nil, fmt.Errorf("unknown schema %q", name)
	}

	// round-trip so callers get plain JSON values they may modify
	raw, err := json.Marshal(definition)
	if err != nil {
		return nil, fmt.Errorf("marshal schema %q: %w", name, err)
	}
	var doc map[string]any
	if err := json.Unmarshal(raw, &doc); err != nil {
		return nil, fmt.Errorf("parse schema %q: %w", name, err)
	}
	return doc, nil
}

// compiled schemas by name
var schemaCache sync.Map

// ValidatePayload checks raw JSON against a named schema. Failures are
// returned as *InputError with field set to the schema name.
func ValidatePayload(name string, raw []byte) error {
	compiled, err := compiledSchema(name)
	if err != nil {
		return err
	}

	var parsed any
	if err := json.Unmarshal(raw, &parsed); err != nil {
		return &InputError{Field: name, Message: fmt.Sprintf("invalid JSON: %v", err)}
	}

	if err := compiled.Validate(parsed); err != nil {
		return &InputError{Field: name, Message: err.Error()}
	}
	return nil
}

func compiledSchema(name string) (*jsonschema.Schema, error) {
	if cached, ok := schemaCache.Load(name); ok {
		return cached.(*jsonschema.Schema), nil
	}

	defParsed, err := SchemaDocument(name)
	if err != nil {
		return nil, err
	}

	c := jsonschema.NewCompiler()
	url := fmt.Sprintf("schema://%s.json", name)
	if err := c.AddResource(url, defParsed); err != nil {
		return nil, fmt.Errorf("add schema %q: %w", name, err)
	}
	compiled, err := c.Compile(url)
	if err != nil {
		return nil, fmt.Errorf("compile schema %q: %w", name, err)
	}

	schemaCache.Store(name, compiled)
	return compiled, nil
}
