package engine

import (
	"sort"

	"github.com/forhad-fhj/SkillBridge/models"
)

// TierOptions tunes priority assignment for missing skills.
//
// By default a skill is Critical when at least two thirds of the jobs ask
// for it, High when at least one third do, and Medium otherwise. The absolute
// thresholds, when non-zero, promote a skill once its raw frequency reaches them.
type TierOptions struct {
	CriticalFrequency int
	HighFrequency     int
}

// PriorityFor assigns a priority tier to a missing skill.
func PriorityFor(frequency, jobCount int, opts TierOptions) string {
	switch {
	case jobCount > 0 && 3*frequency >= 2*jobCount:
		return models.PriorityCritical
	case opts.CriticalFrequency > 0 && frequency >= opts.CriticalFrequency:
		return models.PriorityCritical
	case jobCount > 0 && 3*frequency >= jobCount:
		return models.PriorityHigh
	case opts.HighFrequency > 0 && frequency >= opts.HighFrequency:
		return models.PriorityHigh
	default:
		return models.PriorityMedium
	}
}

// demandFor labels a matched skill by how much of the market asks for it.
func demandFor(frequency, jobCount int) string {
	if jobCount > 0 && 2*frequency >= jobCount {
		return "High"
	}
	return "Medium"
}

// roundPercent returns round-half-up(100*num/den), or 0 when den is 0.
func roundPercent(num, den int) int {
	if den <= 0 {
		return 0
	}
	return (200*num + den) / (2 * den)
}

// ScoreResult is the scored partition of the market against the user.
type ScoreResult struct {
	ReadinessScore    int
	WeightedScore     int
	Matched           []models.MatchedSkill
	Missing           []models.MissingSkill
	TotalMarketSkills int
}

// Score partitions the market into skills the user has and skills they lack.
//
// The readiness score is the rounded share of market skills the user has;
// with an empty market it is 0. The weighted score is the same share weighted
// by each skill's frequency.
func Score(user *NormalizedSet, market *Market, opts TierOptions) ScoreResult {
	result := ScoreResult{
		Matched:           []models.MatchedSkill{},
		Missing:           []models.MissingSkill{},
		TotalMarketSkills: market.Size(),
	}

	matchedWeight := 0
	for _, token := range user.Tokens {
		entry, ok := market.Entries[token]
		if !ok {
			continue
		}
		matchedWeight += entry.Frequency
		result.Matched = append(result.Matched, models.MatchedSkill{
			Skill:     user.Display[token],
			Frequency: entry.Frequency,
			Demand:    demandFor(entry.Frequency, market.JobCount),
		})
	}

	for _, token := range market.Order {
		if user.Contains(token) {
			continue
		}
		entry := market.Entries[token]
		result.Missing = append(result.Missing, models.MissingSkill{
			Skill:     entry.Display,
			Frequency: entry.Frequency,
			Priority:  PriorityFor(entry.Frequency, market.JobCount, opts),
		})
	}

	// stable sorts keep user order / market first-seen order on ties
	sort.SliceStable(result.Matched, func(i, j int) bool {
		return result.Matched[i].Frequency > result.Matched[j].Frequency
	})
	sortMissing(result.Missing)

	result.ReadinessScore = roundPercent(len(result.Matched), len(result.Matched)+len(result.Missing))
	result.WeightedScore = roundPercent(matchedWeight, market.TotalFrequency())
	return result
}

// sortMissing orders by priority tier, then frequency descending, keeping
// the existing order on ties.
func sortMissing(missing []models.MissingSkill) {
	sort.SliceStable(missing, func(i, j int) bool {
		ri, rj := models.PriorityRank(missing[i].Priority), models.PriorityRank(missing[j].Priority)
		if ri != rj {
			return ri < rj
		}
		return missing[i].Frequency > missing[j].Frequency
	})
}
