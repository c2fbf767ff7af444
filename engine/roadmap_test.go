package engine

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/forhad-fhj/SkillBridge/models"
)

type stubCatalog struct {
	entries map[string]*models.SkillResources
	failFor map[string]bool
	calls   []string
}

func (c *stubCatalog) Lookup(skill string) (*models.SkillResources, error) {
	c.calls = append(c.calls, skill)
	if c.failFor[skill] {
		return nil, errors.New("catalog unavailable")
	}
	return c.entries[skill], nil
}

func resources(n int) []models.Resource {
	out := make([]models.Resource, n)
	for i := range out {
		out[i] = models.Resource{Title: fmt.Sprintf("Resource %d", i+1), URL: fmt.Sprintf("https://example.com/%d", i+1)}
	}
	return out
}

func TestGenerateRoadmap_OrderAndDefaults(t *testing.T) {
	missing := []models.MissingSkill{
		{Skill: "Figma", Frequency: 1, Priority: models.PriorityMedium},
		{Skill: "Redux", Frequency: 2, Priority: models.PriorityHigh},
		{Skill: "TypeScript", Frequency: 4, Priority: models.PriorityCritical},
		{Skill: "Jest", Frequency: 3, Priority: models.PriorityHigh},
	}

	steps := GenerateRoadmap(missing, 5, nil, RoadmapOptions{})

	require.Len(t, steps, 4)
	assert.Equal(t, []string{"TypeScript", "Jest", "Redux", "Figma"},
		[]string{steps[0].Skill, steps[1].Skill, steps[2].Skill, steps[3].Skill})
	for i, step := range steps {
		assert.Equal(t, i+1, step.Order)
		assert.NotNil(t, step.Resources)
		assert.Empty(t, step.Resources)
	}

	assert.Equal(t, "3-4 weeks", steps[0].EstimatedTime)
	assert.Equal(t, "2-3 weeks", steps[1].EstimatedTime)
	assert.Equal(t, "1-2 weeks", steps[3].EstimatedTime)
	assert.Equal(t, "Learn the fundamentals of TypeScript and build a small project.", steps[0].Description)

	// input slice is left untouched
	assert.Equal(t, "Figma", missing[0].Skill)
}

func TestGenerateRoadmap_CatalogResourcesAndOverrides(t *testing.T) {
	catalog := &stubCatalog{
		entries: map[string]*models.SkillResources{
			"React": {
				Skill:         "React",
				EstimatedTime: "2-3 weeks",
				Description:   "Learn Components, Hooks, and State Management.",
				Resources:     resources(5),
			},
			"Docker": {Skill: "Docker", Resources: resources(1)},
		},
		failFor: map[string]bool{"Kafka": true},
	}
	missing := []models.MissingSkill{
		{Skill: "React", Frequency: 3, Priority: models.PriorityCritical},
		{Skill: "Kafka", Frequency: 2, Priority: models.PriorityHigh},
		{Skill: "Docker", Frequency: 1, Priority: models.PriorityMedium},
		{Skill: "Unknown", Frequency: 1, Priority: models.PriorityMedium},
	}

	steps := GenerateRoadmap(missing, 3, catalog, RoadmapOptions{MaxResources: 2})

	require.Len(t, steps, 4)
	assert.Equal(t, "2-3 weeks", steps[0].EstimatedTime)
	assert.Equal(t, "Learn Components, Hooks, and State Management.", steps[0].Description)
	assert.Len(t, steps[0].Resources, 2)

	// failed lookup still yields a step
	assert.Equal(t, "Kafka", steps[1].Skill)
	assert.Empty(t, steps[1].Resources)
	assert.Equal(t, "2-3 weeks", steps[1].EstimatedTime)

	assert.Len(t, steps[2].Resources, 1)
	assert.Equal(t, "1-2 weeks", steps[2].EstimatedTime)
	assert.Empty(t, steps[3].Resources)

	assert.Equal(t, []string{"React", "Kafka", "Docker", "Unknown"}, catalog.calls)
}

func TestGenerateRoadmap_DefaultResourceCap(t *testing.T) {
	catalog := &stubCatalog{entries: map[string]*models.SkillResources{
		"Go": {Skill: "Go", Resources: resources(10)},
	}}

	steps := GenerateRoadmap([]models.MissingSkill{{Skill: "Go", Frequency: 1, Priority: models.PriorityCritical}}, 1, catalog, RoadmapOptions{})

	require.Len(t, steps, 1)
	assert.Len(t, steps[0].Resources, DefaultMaxResources)
}

func TestGenerateRoadmap_TopK(t *testing.T) {
	missing := []models.MissingSkill{
		{Skill: "C", Frequency: 1, Priority: models.PriorityMedium},
		{Skill: "A", Frequency: 3, Priority: models.PriorityCritical},
		{Skill: "B", Frequency: 2, Priority: models.PriorityHigh},
	}

	steps := GenerateRoadmap(missing, 3, nil, RoadmapOptions{TopK: 2})

	require.Len(t, steps, 2)
	assert.Equal(t, "A", steps[0].Skill)
	assert.Equal(t, "B", steps[1].Skill)
}

func TestGenerateRoadmap_Empty(t *testing.T) {
	steps := GenerateRoadmap(nil, 0, nil, RoadmapOptions{})
	assert.NotNil(t, steps)
	assert.Empty(t, steps)
}

func TestScoreImpact(t *testing.T) {
	assert.Equal(t, "+10-15%", ScoreImpact(5, 10))
	assert.Equal(t, "+5-10%", ScoreImpact(3, 10))
	assert.Equal(t, "+3-5%", ScoreImpact(1, 10))
	assert.Equal(t, "+1-3%", ScoreImpact(1, 20))
	assert.Equal(t, "+1-3%", ScoreImpact(0, 0))
}

func TestEstimatedTime(t *testing.T) {
	assert.Equal(t, "3-4 weeks", EstimatedTime(models.PriorityCritical))
	assert.Equal(t, "2-3 weeks", EstimatedTime(models.PriorityHigh))
	assert.Equal(t, "1-2 weeks", EstimatedTime(models.PriorityMedium))
	assert.Equal(t, "1-2 weeks", EstimatedTime("Someday"))
}
