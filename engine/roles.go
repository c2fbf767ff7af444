package engine

import (
	"fmt"
	"math"
	"sort"

	"github.com/forhad-fhj/SkillBridge/models"
)

// Roles more than this many points above the user's readiness are not
// suggested; roles within it are stretch goals.
const stretchWindow = 20

// Fit score weights for required and preferred skills
const (
	requiredWeight  = 70
	preferredWeight = 30
)

// RoleFit is the skill overlap between a user and one role.
type RoleFit struct {
	FitScore         int
	RequiredMatched  []string
	RequiredMissing  []string
	PreferredMatched []string
	RequiredTotal    int
	PreferredTotal   int
}

// FitRole scores a user against a role: required skills carry 70 points and
// preferred skills 30, each scaled by the share the user has. Skills are
// reported as the role lists them.
func FitRole(user *NormalizedSet, normalizer *Normalizer, role models.Role) RoleFit {
	fit := RoleFit{
		RequiredMatched:  []string{},
		RequiredMissing:  []string{},
		PreferredMatched: []string{},
	}

	for _, skill := range uniqueSkills(normalizer, role.RequiredSkills) {
		fit.RequiredTotal++
		if user.Contains(normalizer.Canonical(skill)) {
			fit.RequiredMatched = append(fit.RequiredMatched, skill)
		} else {
			fit.RequiredMissing = append(fit.RequiredMissing, skill)
		}
	}
	for _, skill := range uniqueSkills(normalizer, role.PreferredSkills) {
		fit.PreferredTotal++
		if user.Contains(normalizer.Canonical(skill)) {
			fit.PreferredMatched = append(fit.PreferredMatched, skill)
		}
	}

	score := share(len(fit.RequiredMatched), fit.RequiredTotal)*requiredWeight +
		share(len(fit.PreferredMatched), fit.PreferredTotal)*preferredWeight
	fit.FitScore = int(math.Round(score))
	return fit
}

// uniqueSkills drops blank and duplicate skills, keeping the first spelling.
func uniqueSkills(normalizer *Normalizer, skills []string) []string {
	seen := make(map[string]bool, len(skills))
	out := make([]string, 0, len(skills))
	for _, skill := range skills {
		token := normalizer.Canonical(skill)
		if token == "" || seen[token] {
			continue
		}
		seen[token] = true
		out = append(out, skill)
	}
	return out
}

func share(n, total int) float64 {
	if total <= 0 {
		return 0
	}
	return float64(n) / float64(total)
}

// RoleStatus classifies a role against the user's readiness. ok is false
// when the role is out of reach.
func RoleStatus(readiness, minReadiness int) (status, color string, ok bool) {
	switch {
	case readiness >= minReadiness:
		return models.RoleReady, "green", true
	case minReadiness <= readiness+stretchWindow:
		return models.RoleStretch, "yellow", true
	default:
		return "", "", false
	}
}

// RecommendRoles ranks roles for the user by fit score, then Ready before
// Stretch Goal, then catalog order. At most limit roles are returned;
// limit <= 0 returns all reachable roles.
func (e *Engine) RecommendRoles(userSkills models.SkillSet, readiness int, roles []models.Role, limit int) ([]models.RoleRecommendation, error) {
	if err := userSkills.Validate("userSkills"); err != nil {
		return nil, err
	}
	if readiness < 0 || readiness > 100 {
		return nil, &models.InputError{Field: "readinessScore", Message: "must be between 0 and 100"}
	}

	user := e.normalizer.Normalize(userSkills)
	recommendations := make([]models.RoleRecommendation, 0, len(roles))
	for _, role := range roles {
		status, color, ok := RoleStatus(readiness, role.MinReadiness)
		if !ok {
			continue
		}

		fit := FitRole(user, e.normalizer, role)
		recommendations = append(recommendations, models.RoleRecommendation{
			Role:             role,
			FitScore:         fit.FitScore,
			RequiredMatched:  fit.RequiredMatched,
			RequiredMissing:  fit.RequiredMissing,
			PreferredMatched: fit.PreferredMatched,
			SkillCoverage:    fmt.Sprintf("%d/%d", len(fit.RequiredMatched), fit.RequiredTotal),
			Status:           status,
			StatusColor:      color,
		})
	}

	sort.SliceStable(recommendations, func(i, j int) bool {
		a, b := recommendations[i], recommendations[j]
		if a.FitScore != b.FitScore {
			return a.FitScore > b.FitScore
		}
		return a.Status == models.RoleReady && b.Status != models.RoleReady
	})

	if limit > 0 && len(recommendations) > limit {
		recommendations = recommendations[:limit]
	}
	return recommendations, nil
}
