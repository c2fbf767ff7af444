package engine

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/forhad-fhj/SkillBridge/models"
)

func TestFitRole_WeightsRequiredAndPreferred(t *testing.T) {
	n := NewNormalizer(DefaultAliases())
	user := n.Normalize(models.SkillSet{"languages": {"Go", "SQL"}, "tools": {"Git", "Kubernetes"}})

	fit := FitRole(user, n, models.Role{
		RequiredSkills:  []string{"Go", "SQL", "Docker", "Git", "go"},
		PreferredSkills: []string{"K8s", "AWS"},
	})

	// 3/4 * 70 + 1/2 * 30 = 67.5
	assert.Equal(t, 68, fit.FitScore)
	assert.Equal(t, []string{"Go", "SQL", "Git"}, fit.RequiredMatched)
	assert.Equal(t, []string{"Docker"}, fit.RequiredMissing)
	assert.Equal(t, []string{"K8s"}, fit.PreferredMatched)
	assert.Equal(t, 4, fit.RequiredTotal)
	assert.Equal(t, 2, fit.PreferredTotal)
}

func TestFitRole_NoSkillsListed(t *testing.T) {
	n := NewNormalizer(nil)
	fit := FitRole(n.Normalize(models.SkillSet{"languages": {"Go"}}), n, models.Role{})

	assert.Equal(t, 0, fit.FitScore)
	assert.NotNil(t, fit.RequiredMatched)
	assert.NotNil(t, fit.RequiredMissing)
	assert.NotNil(t, fit.PreferredMatched)
}

func TestRoleStatus(t *testing.T) {
	status, color, ok := RoleStatus(50, 50)
	assert.True(t, ok)
	assert.Equal(t, models.RoleReady, status)
	assert.Equal(t, "green", color)

	status, _, ok = RoleStatus(50, 70)
	assert.True(t, ok)
	assert.Equal(t, models.RoleStretch, status)

	_, _, ok = RoleStatus(50, 71)
	assert.False(t, ok)
}

func TestRecommendRoles_RanksAndFilters(t *testing.T) {
	e := New(DefaultOptions())
	roles := []models.Role{
		{ID: "go-only", RequiredSkills: []string{"Go"}, MinReadiness: 40},
		{ID: "stretch", RequiredSkills: []string{"Go"}, PreferredSkills: []string{"SQL"}, MinReadiness: 65},
		{ID: "out-of-reach", RequiredSkills: []string{"Go"}, MinReadiness: 71},
		{ID: "ready", RequiredSkills: []string{"Go"}, PreferredSkills: []string{"SQL"}, MinReadiness: 0},
	}
	user := models.SkillSet{"languages": {"Go", "SQL"}}

	recs, err := e.RecommendRoles(user, 50, roles, 0)
	require.NoError(t, err)

	var ids []string
	for _, r := range recs {
		ids = append(ids, r.ID)
	}
	assert.Equal(t, []string{"ready", "stretch", "go-only"}, ids)
	assert.Equal(t, 100, recs[0].FitScore)
	assert.Equal(t, models.RoleReady, recs[0].Status)
	assert.Equal(t, models.RoleStretch, recs[1].Status)
	assert.Equal(t, "yellow", recs[1].StatusColor)
	assert.Equal(t, 70, recs[2].FitScore)
	assert.Equal(t, "1/1", recs[2].SkillCoverage)

	recs, err = e.RecommendRoles(user, 50, roles, 2)
	require.NoError(t, err)
	assert.Len(t, recs, 2)
}

func TestRecommendRoles_EmptyAndInvalid(t *testing.T) {
	e := New(DefaultOptions())

	recs, err := e.RecommendRoles(models.SkillSet{}, 10, nil, 5)
	require.NoError(t, err)
	assert.NotNil(t, recs)
	assert.Empty(t, recs)

	_, err = e.RecommendRoles(models.SkillSet{}, 101, nil, 5)
	var inputErr *models.InputError
	require.True(t, errors.As(err, &inputErr))
	assert.Equal(t, "readinessScore", inputErr.Field)
}
