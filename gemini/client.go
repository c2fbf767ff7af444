package gemini

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"strings"

	"cloud.google.com/go/vertexai/genai"

	"github.com/forhad-fhj/SkillBridge/config"
	"github.com/forhad-fhj/SkillBridge/models"
)

// Client wraps the Vertex AI Gemini client and extracts skills from documents
type Client struct {
	client    *genai.Client
	model     *genai.GenerativeModel
	modelName string
}

// NewClient creates a new Gemini client
func NewClient(ctx context.Context, cfg *config.Config) (*Client, error) {
	client, err := genai.NewClient(ctx, cfg.ProjectID, cfg.Location)
	if err != nil {
		return nil, fmt.Errorf("failed to create Gemini client: %w", err)
	}

	model := client.GenerativeModel(cfg.GeminiModel)
	model.SetTemperature(0.1)
	model.SetTopP(0.8)
	model.SetMaxOutputTokens(2048)
	model.ResponseMIMEType = "application/json"

	return &Client{
		client:    client,
		model:     model,
		modelName: cfg.GeminiModel,
	}, nil
}

// Close closes the Gemini client
func (c *Client) Close() error {
	return c.client.Close()
}

const skillPrompt = `Extract the technical skills mentioned in the document.
Return a JSON object whose keys are categories and whose values are arrays of skill names:

{
  "languages": ["Python", "Go"],
  "frameworks": ["React"],
  "databases": ["PostgreSQL"],
  "tools": ["Docker", "Git"],
  "concepts": ["Microservices"]
}

Only list skills the document actually mentions. Use the usual spelling of each skill.
Return ONLY the JSON object, no markdown formatting, no explanation.`

// ExtractSkills finds technical skills in plain text
func (c *Client) ExtractSkills(ctx context.Context, text string) (models.SkillSet, error) {
	prompt := fmt.Sprintf("%s\n\nDOCUMENT:\n%s", skillPrompt, text)

	resp, err := c.model.GenerateContent(ctx, genai.Text(prompt))
	if err != nil {
		return nil, fmt.Errorf("failed to generate content: %w", err)
	}

	skills, err := parseSkillSet(extractText(resp))
	if err != nil {
		return nil, err
	}
	log.Printf("[Gemini] Extracted %d skills with %s", skills.Count(), c.modelName)
	return skills, nil
}

// ExtractSkillsFromPDF sends the PDF itself to the model
func (c *Client) ExtractSkillsFromPDF(ctx context.Context, pdfData []byte) (models.SkillSet, error) {
	blob := genai.Blob{
		MIMEType: "application/pdf",
		Data:     pdfData,
	}

	resp, err := c.model.GenerateContent(ctx, blob, genai.Text(skillPrompt))
	if err != nil {
		return nil, fmt.Errorf("failed to generate content: %w", err)
	}
	return parseSkillSet(extractText(resp))
}

// parseSkillSet decodes a model reply into a clean SkillSet: blank
// categories and entries are dropped, duplicates removed per category.
func parseSkillSet(text string) (models.SkillSet, error) {
	text = cleanJSON(text)
	if text == "" {
		return nil, fmt.Errorf("no response from Gemini")
	}

	var raw map[string][]string
	if err := json.Unmarshal([]byte(text), &raw); err != nil {
		log.Printf("[Gemini] Failed to parse skills response: %s", text)
		return nil, fmt.Errorf("failed to parse skills JSON: %w", err)
	}

	skills := make(models.SkillSet, len(raw))
	for category, list := range raw {
		category = strings.ToLower(strings.TrimSpace(category))
		if category == "" {
			continue
		}
		seen := make(map[string]bool)
		for _, s := range skills[category] {
			seen[strings.ToLower(s)] = true
		}
		cleaned := skills[category]
		if cleaned == nil {
			cleaned = []string{}
		}
		for _, skill := range list {
			skill = strings.TrimSpace(skill)
			if skill == "" || seen[strings.ToLower(skill)] {
				continue
			}
			seen[strings.ToLower(skill)] = true
			cleaned = append(cleaned, skill)
		}
		skills[category] = cleaned
	}
	return skills, nil
}

func extractText(resp *genai.GenerateContentResponse) string {
	if resp == nil || len(resp.Candidates) == 0 || resp.Candidates[0].Content == nil {
		return ""
	}

	var sb strings.Builder
	for _, part := range resp.Candidates[0].Content.Parts {
		if textPart, ok := part.(genai.Text); ok {
			sb.WriteString(string(textPart))
		}
	}
	return sb.String()
}

func cleanJSON(text string) string {
	// Remove markdown code blocks if present
	text = strings.TrimSpace(text)
	text = strings.TrimPrefix(text, "```json")
	text = strings.TrimPrefix(text, "```")
	text = strings.TrimSuffix(text, "```")
	return strings.TrimSpace(text)
}
