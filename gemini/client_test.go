package gemini

import (
	"testing"

	"cloud.google.com/go/vertexai/genai"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/forhad-fhj/SkillBridge/models"
)

func TestParseSkillSet(t *testing.T) {
	reply := "```json\n{\"Languages\": [\"Go\", \" go \", \"Python\", \"\"], \" \": [\"Ignored\"], \"tools\": []}\n```"

	skills, err := parseSkillSet(reply)
	require.NoError(t, err)
	assert.Equal(t, models.SkillSet{
		"languages": {"Go", "Python"},
		"tools":     {},
	}, skills)
	assert.NoError(t, skills.Validate("skills"))
}

func TestParseSkillSet_Errors(t *testing.T) {
	_, err := parseSkillSet("")
	assert.ErrorContains(t, err, "no response")

	_, err = parseSkillSet(`["Go"]`)
	assert.ErrorContains(t, err, "failed to parse skills JSON")
}

func TestExtractText(t *testing.T) {
	assert.Equal(t, "", extractText(nil))
	assert.Equal(t, "", extractText(&genai.GenerateContentResponse{}))

	resp := &genai.GenerateContentResponse{
		Candidates: []*genai.Candidate{{
			Content: &genai.Content{Parts: []genai.Part{genai.Text(`{"a":`), genai.Text(`["b"]}`)}},
		}},
	}
	assert.Equal(t, `{"a":["b"]}`, extractText(resp))
}
