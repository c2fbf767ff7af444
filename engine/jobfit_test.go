package engine

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/forhad-fhj/SkillBridge/models"
)

func TestFitJob_PartitionsSkills(t *testing.T) {
	catalog := &stubCatalog{
		entries: map[string]*models.SkillResources{"Jest": {Skill: "Jest", Resources: resources(3)}},
		failFor: map[string]bool{"TypeScript": true},
	}
	e := New(Options{Catalog: catalog})

	user := models.SkillSet{"languages": {"JavaScript", "Go"}, "frameworks": {"React"}}
	job := models.SkillSet{
		"languages":  {"JavaScript", "TypeScript"},
		"frameworks": {"React"},
		"tools":      {"Jest"},
	}

	result, err := e.FitJob(user, job)
	require.NoError(t, err)

	assert.Equal(t, 50.0, result.MatchPercentage)
	assert.Equal(t, models.FitModerate, result.FitLevel)
	assert.Equal(t, "yellow", result.FitColor)
	assert.Equal(t, []string{"JavaScript", "React"}, result.MatchedSkills)
	assert.Equal(t, []string{"Jest", "TypeScript"}, result.MissingSkills)
	assert.Equal(t, []string{"Go"}, result.ExtraSkills)
	assert.Equal(t, 2, result.MatchedCount)
	assert.Equal(t, 2, result.MissingCount)
	assert.Equal(t, 1, result.ExtraCount)
	assert.Equal(t, []string{"React", "JavaScript", "TypeScript", "Jest"}, result.JDSkillsExtracted)
	assert.Equal(t, 4, result.JDSkillCount)
	assert.Nil(t, result.ATSScore)

	require.Len(t, result.MissingWithResources, 2)
	assert.Equal(t, "Jest", result.MissingWithResources[0].Skill)
	assert.Len(t, result.MissingWithResources[0].Resources, 2)
	assert.Equal(t, "TypeScript", result.MissingWithResources[1].Skill)
	assert.NotNil(t, result.MissingWithResources[1].Resources)
	assert.Empty(t, result.MissingWithResources[1].Resources)
}

func TestFitJob_PercentageRoundsToOneDecimal(t *testing.T) {
	e := New(DefaultOptions())

	result, err := e.FitJob(
		models.SkillSet{"languages": {"Go", "SQL"}},
		models.SkillSet{"languages": {"Go", "SQL", "Rust"}},
	)
	require.NoError(t, err)
	assert.Equal(t, 66.7, result.MatchPercentage)
	assert.Equal(t, models.FitGood, result.FitLevel)
}

func TestFitJob_UsesAliases(t *testing.T) {
	e := New(Options{Aliases: DefaultAliases()})

	result, err := e.FitJob(
		models.SkillSet{"frameworks": {"ReactJS"}},
		models.SkillSet{"frameworks": {"React.js"}},
	)
	require.NoError(t, err)
	assert.Equal(t, 100.0, result.MatchPercentage)
	assert.Equal(t, []string{"ReactJS"}, result.MatchedSkills)
}

func TestFitJob_NoJobSkills(t *testing.T) {
	e := New(DefaultOptions())

	result, err := e.FitJob(models.SkillSet{"languages": {"Go"}}, models.SkillSet{})
	require.NoError(t, err)
	assert.Equal(t, 100.0, result.MatchPercentage)
	assert.Equal(t, models.FitExcellent, result.FitLevel)
	assert.Empty(t, result.MatchedSkills)
	assert.Equal(t, []string{"Go"}, result.ExtraSkills)
	assert.NotNil(t, result.MissingSkills)
	assert.NotNil(t, result.JDSkillsExtracted)
}

func TestFitJob_CapsResourceList(t *testing.T) {
	e := New(DefaultOptions())

	var required []string
	for i := 0; i < 14; i++ {
		required = append(required, fmt.Sprintf("Skill %02d", i))
	}
	result, err := e.FitJob(models.SkillSet{}, models.SkillSet{"tools": required})
	require.NoError(t, err)

	assert.Equal(t, 0.0, result.MatchPercentage)
	assert.Equal(t, models.FitNeedsWork, result.FitLevel)
	assert.Equal(t, 14, result.MissingCount)
	require.Len(t, result.MissingWithResources, 10)
	assert.Equal(t, "Skill 09", result.MissingWithResources[9].Skill)
}

func TestFitJob_MalformedInput(t *testing.T) {
	e := New(DefaultOptions())

	_, err := e.FitJob(models.SkillSet{" ": {"Go"}}, models.SkillSet{})
	var inputErr *models.InputError
	require.True(t, errors.As(err, &inputErr))
	assert.Equal(t, "userSkills", inputErr.Field)
}

func TestFitLevel(t *testing.T) {
	tests := []struct {
		percentage float64
		want       string
	}{
		{100, models.FitExcellent},
		{80, models.FitExcellent},
		{79.9, models.FitGood},
		{60, models.FitGood},
		{40, models.FitModerate},
		{39.9, models.FitNeedsWork},
		{0, models.FitNeedsWork},
	}
	for _, tt := range tests {
		level, _, message := FitLevel(tt.percentage)
		assert.Equal(t, tt.want, level, "%v", tt.percentage)
		assert.NotEmpty(t, message)
	}
}
