package engine

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/forhad-fhj/SkillBridge/models"
)

func job(id string, skills models.SkillSet) models.JobRecord {
	return models.JobRecord{ID: id, ExtractedSkills: skills}
}

func TestAggregateMarket(t *testing.T) {
	n := NewNormalizer(nil)
	market := AggregateMarket(n, []models.JobRecord{
		job("1", models.SkillSet{"languages": {"Go", "SQL"}, "tools": {"go"}}),
		job("2", models.SkillSet{"languages": {"go", "Python"}}),
	})

	require.Equal(t, 2, market.JobCount)
	assert.Equal(t, []string{"go", "sql", "python"}, market.Order)
	assert.Equal(t, 3, market.Size())

	// counted once per job even when listed twice in the same job
	assert.Equal(t, 2, market.Entries["go"].Frequency)
	assert.Equal(t, "Go", market.Entries["go"].Display)
	assert.Equal(t, 1, market.Entries["python"].Frequency)
	assert.Equal(t, 4, market.TotalFrequency())
}

func TestAggregateMarket_Empty(t *testing.T) {
	market := AggregateMarket(NewNormalizer(nil), nil)

	assert.Equal(t, 0, market.JobCount)
	assert.Equal(t, 0, market.Size())
	assert.Equal(t, 0, market.TotalFrequency())
}

func TestPriorityFor(t *testing.T) {
	tests := []struct {
		name      string
		frequency int
		jobs      int
		opts      TierOptions
		want      string
	}{
		{"every job", 2, 2, TierOptions{}, models.PriorityCritical},
		{"two thirds", 2, 3, TierOptions{}, models.PriorityCritical},
		{"one third", 1, 3, TierOptions{}, models.PriorityHigh},
		{"just under a third", 1, 4, TierOptions{}, models.PriorityMedium},
		{"half", 5, 10, TierOptions{}, models.PriorityHigh},
		{"absolute critical", 7, 100, TierOptions{CriticalFrequency: 7}, models.PriorityCritical},
		{"absolute high", 4, 100, TierOptions{CriticalFrequency: 7, HighFrequency: 4}, models.PriorityHigh},
		{"below absolute", 3, 100, TierOptions{CriticalFrequency: 7, HighFrequency: 4}, models.PriorityMedium},
		{"no jobs", 0, 0, TierOptions{}, models.PriorityMedium},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, PriorityFor(tt.frequency, tt.jobs, tt.opts))
		})
	}
}

func TestRoundPercent(t *testing.T) {
	assert.Equal(t, 0, roundPercent(0, 0))
	assert.Equal(t, 33, roundPercent(1, 3))
	assert.Equal(t, 67, roundPercent(2, 3))
	assert.Equal(t, 50, roundPercent(1, 2))
	assert.Equal(t, 13, roundPercent(1, 8)) // 12.5 rounds up
	assert.Equal(t, 100, roundPercent(4, 4))
}

func TestScore_ExampleScenario(t *testing.T) {
	n := NewNormalizer(nil)
	market := AggregateMarket(n, []models.JobRecord{
		job("1", models.SkillSet{"languages": {"JavaScript", "TypeScript"}, "frameworks": {"React"}}),
		job("2", models.SkillSet{"languages": {"JavaScript", "TypeScript"}, "frameworks": {"React"}}),
	})
	user := n.Normalize(models.SkillSet{"languages": {"JavaScript", "HTML"}})

	result := Score(user, market, TierOptions{})

	assert.Equal(t, []models.MatchedSkill{{Skill: "JavaScript", Frequency: 2, Demand: "High"}}, result.Matched)
	assert.Equal(t, []models.MissingSkill{
		{Skill: "React", Frequency: 2, Priority: models.PriorityCritical},
		{Skill: "TypeScript", Frequency: 2, Priority: models.PriorityCritical},
	}, result.Missing)
	assert.Equal(t, 33, result.ReadinessScore)
	assert.Equal(t, 33, result.WeightedScore)
	assert.Equal(t, 3, result.TotalMarketSkills)
}

func TestScore_MissingOrderedByPriorityThenFrequency(t *testing.T) {
	n := NewNormalizer(nil)
	market := AggregateMarket(n, []models.JobRecord{
		job("1", models.SkillSet{"s": {"Rare", "Docker", "Go"}}),
		job("2", models.SkillSet{"s": {"Docker", "Go", "Kafka"}}),
		job("3", models.SkillSet{"s": {"Go", "Kafka"}}),
		job("4", models.SkillSet{"s": {"Go"}}),
		job("5", models.SkillSet{"s": {"Go", "Docker"}}),
		job("6", models.SkillSet{"s": {"Go"}}),
	})
	user := n.Normalize(models.SkillSet{})

	result := Score(user, market, TierOptions{})

	require.Len(t, result.Missing, 4)
	assert.Equal(t, "Go", result.Missing[0].Skill)
	assert.Equal(t, models.PriorityCritical, result.Missing[0].Priority)
	assert.Equal(t, "Docker", result.Missing[1].Skill) // 3/6 -> High
	assert.Equal(t, models.PriorityHigh, result.Missing[1].Priority)
	assert.Equal(t, "Kafka", result.Missing[2].Skill) // 2/6 -> High
	assert.Equal(t, models.PriorityHigh, result.Missing[2].Priority)
	assert.Equal(t, "Rare", result.Missing[3].Skill)
	assert.Equal(t, models.PriorityMedium, result.Missing[3].Priority)
	assert.Equal(t, 0, result.ReadinessScore)
}

func TestScore_MatchedOrderedByFrequency(t *testing.T) {
	n := NewNormalizer(nil)
	market := AggregateMarket(n, []models.JobRecord{
		job("1", models.SkillSet{"s": {"SQL", "Go"}}),
		job("2", models.SkillSet{"s": {"Go"}}),
		job("3", models.SkillSet{"s": {"Go", "Git"}}),
	})
	user := n.Normalize(models.SkillSet{"s": {"Git", "SQL", "Go"}})

	result := Score(user, market, TierOptions{})

	require.Len(t, result.Matched, 3)
	assert.Equal(t, "Go", result.Matched[0].Skill)
	assert.Equal(t, "High", result.Matched[0].Demand)
	// ties keep the user's order
	assert.Equal(t, "Git", result.Matched[1].Skill)
	assert.Equal(t, "SQL", result.Matched[2].Skill)
	assert.Equal(t, "Medium", result.Matched[2].Demand)
	assert.Equal(t, 100, result.ReadinessScore)
}

func TestScore_WeightedScoreUsesFrequency(t *testing.T) {
	n := NewNormalizer(nil)
	market := AggregateMarket(n, []models.JobRecord{
		job("1", models.SkillSet{"s": {"Go", "Rust"}}),
		job("2", models.SkillSet{"s": {"Go"}}),
		job("3", models.SkillSet{"s": {"Go"}}),
	})
	user := n.Normalize(models.SkillSet{"s": {"Go"}})

	result := Score(user, market, TierOptions{})

	assert.Equal(t, 50, result.ReadinessScore)
	assert.Equal(t, 75, result.WeightedScore)
}

func TestScore_MonotoneInMatchedShare(t *testing.T) {
	n := NewNormalizer(nil)
	skills := []string{"A", "B", "C", "D", "E", "F", "G"}
	market := AggregateMarket(n, []models.JobRecord{job("1", models.SkillSet{"s": skills})})

	previous := -1
	for k := 0; k <= len(skills); k++ {
		user := n.Normalize(models.SkillSet{"s": skills[:k]})
		result := Score(user, market, TierOptions{})

		assert.GreaterOrEqual(t, result.ReadinessScore, previous)
		assert.GreaterOrEqual(t, result.ReadinessScore, 0)
		assert.LessOrEqual(t, result.ReadinessScore, 100)
		previous = result.ReadinessScore
	}
	assert.Equal(t, 100, previous)
}
