package engine

import (
	"encoding/json"
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/forhad-fhj/SkillBridge/models"
)

func exampleJobs() []models.JobRecord {
	skills := func() models.SkillSet {
		return models.SkillSet{"languages": {"JavaScript", "TypeScript"}, "frameworks": {"React"}}
	}
	return []models.JobRecord{job("1", skills()), job("2", skills())}
}

func TestAnalyze_ExampleScenario(t *testing.T) {
	e := New(DefaultOptions())

	result, err := e.Analyze(models.SkillSet{"languages": {"JavaScript", "HTML"}}, exampleJobs())
	require.NoError(t, err)

	assert.Equal(t, 33, result.ReadinessScore)
	assert.Equal(t, []models.MatchedSkill{{Skill: "JavaScript", Frequency: 2, Demand: "High"}}, result.MatchedSkills)
	require.Len(t, result.MissingSkills, 2)
	assert.Equal(t, models.MissingSkill{Skill: "React", Frequency: 2, Priority: models.PriorityCritical}, result.MissingSkills[0])
	assert.Equal(t, models.MissingSkill{Skill: "TypeScript", Frequency: 2, Priority: models.PriorityCritical}, result.MissingSkills[1])
	assert.Len(t, result.GeneratedRoadmap, 2)
	assert.Equal(t, 3, result.TotalMarketSkills)
	assert.Equal(t, 2, result.UserSkillCount)
	assert.Equal(t, 2, result.JobCount)
}

func TestAnalyze_ExactMatch(t *testing.T) {
	e := New(DefaultOptions())

	result, err := e.Analyze(models.SkillSet{"all": {"react", "TYPESCRIPT", "JavaScript"}}, exampleJobs())
	require.NoError(t, err)

	assert.Equal(t, 100, result.ReadinessScore)
	assert.Empty(t, result.MissingSkills)
	assert.Empty(t, result.GeneratedRoadmap)
}

func TestAnalyze_EmptyUserSkills(t *testing.T) {
	e := New(DefaultOptions())

	for _, user := range []models.SkillSet{nil, {}, {"languages": {}}} {
		result, err := e.Analyze(user, exampleJobs())
		require.NoError(t, err)
		assert.Equal(t, 0, result.ReadinessScore)
		assert.Empty(t, result.MatchedSkills)
		assert.Len(t, result.MissingSkills, 3)
	}
}

func TestAnalyze_EmptyMarket(t *testing.T) {
	e := New(DefaultOptions())

	result, err := e.Analyze(models.SkillSet{"languages": {"Go"}}, nil)
	require.NoError(t, err)

	assert.Equal(t, 0, result.ReadinessScore)
	assert.Equal(t, 0, result.WeightedScore)
	assert.Equal(t, 0, result.TotalMarketSkills)
	assert.NotNil(t, result.MatchedSkills)
	assert.NotNil(t, result.MissingSkills)
	assert.NotNil(t, result.GeneratedRoadmap)

	result, err = e.Analyze(nil, nil)
	require.NoError(t, err)
	assert.Equal(t, 0, result.ReadinessScore)
}

func TestAnalyze_MalformedInput(t *testing.T) {
	e := New(DefaultOptions())

	_, err := e.Analyze(models.SkillSet{"": {"Go"}}, nil)
	var inputErr *models.InputError
	require.True(t, errors.As(err, &inputErr))
	assert.Equal(t, "userSkills", inputErr.Field)

	jobs := exampleJobs()
	jobs = append(jobs, job("3", models.SkillSet{"  ": {"Go"}}))
	_, err = e.Analyze(models.SkillSet{"languages": {"Go"}}, jobs)
	require.True(t, errors.As(err, &inputErr))
	assert.Equal(t, "jobDescriptions[2].extractedSkills", inputErr.Field)
}

func TestAnalyze_PartitionCoversMarket(t *testing.T) {
	e := New(Options{Aliases: DefaultAliases()})
	jobs, _ := FallbackMarket(models.DomainFullStack)
	user := models.SkillSet{"languages": {"JavaScript", "PHP", "Go"}, "frameworks": {"React.js", "Vue.js"}}

	result, err := e.Analyze(user, jobs)
	require.NoError(t, err)

	n := e.Normalizer()
	market := AggregateMarket(n, jobs)

	seen := map[string]string{}
	for _, m := range result.MatchedSkills {
		seen[n.Canonical(m.Skill)] = "matched"
		assert.LessOrEqual(t, m.Frequency, len(jobs))
	}
	for _, m := range result.MissingSkills {
		token := n.Canonical(m.Skill)
		_, dup := seen[token]
		assert.False(t, dup, "%s in both buckets", m.Skill)
		seen[token] = "missing"
		assert.LessOrEqual(t, m.Frequency, len(jobs))
		assert.GreaterOrEqual(t, m.Frequency, 1)
	}

	assert.Len(t, seen, market.Size())
	for _, token := range market.Order {
		assert.Contains(t, seen, token)
	}
	assert.Len(t, result.GeneratedRoadmap, len(result.MissingSkills))
}

func TestAnalyze_RoadmapOrderingProperty(t *testing.T) {
	e := New(DefaultOptions())

	for _, domain := range FallbackDomains() {
		jobs, _ := FallbackMarket(domain)
		result, err := e.Analyze(models.SkillSet{"languages": {"Python", "SQL"}}, jobs)
		require.NoError(t, err)

		steps := result.GeneratedRoadmap
		for i := 1; i < len(steps); i++ {
			prev, cur := steps[i-1], steps[i]
			pr, cr := models.PriorityRank(prev.Priority), models.PriorityRank(cur.Priority)
			assert.LessOrEqual(t, pr, cr, "%s: step %d", domain, i)
			if pr == cr {
				assert.GreaterOrEqual(t, prev.Frequency, cur.Frequency, "%s: step %d", domain, i)
			}
		}
	}
}

func TestAnalyze_Deterministic(t *testing.T) {
	e := New(Options{Aliases: DefaultAliases(), Roadmap: RoadmapOptions{TopK: 5}})
	jobs, _ := FallbackMarket(models.DomainBackend)
	user := models.SkillSet{"tools": {"Docker", "Git"}, "languages": {"Python", "Go"}, "databases": {"PostgreSQL"}}

	var outputs []string
	for i := 0; i < 5; i++ {
		result, err := e.Analyze(user, jobs)
		require.NoError(t, err)
		raw, err := json.Marshal(result)
		require.NoError(t, err)
		outputs = append(outputs, string(raw))
	}
	for _, out := range outputs[1:] {
		assert.Equal(t, outputs[0], out)
	}
}

func TestAnalyze_ConcurrentUse(t *testing.T) {
	e := New(Options{Aliases: DefaultAliases()})
	jobs, _ := FallbackMarket(models.DomainMobile)

	want, err := e.Analyze(models.SkillSet{"languages": {"Dart"}}, jobs)
	require.NoError(t, err)

	errs := make(chan error, 8)
	for i := 0; i < 8; i++ {
		go func() {
			got, err := e.Analyze(models.SkillSet{"languages": {"Dart"}}, jobs)
			if err == nil && got.ReadinessScore != want.ReadinessScore {
				err = fmt.Errorf("score %d, want %d", got.ReadinessScore, want.ReadinessScore)
			}
			errs <- err
		}()
	}
	for i := 0; i < 8; i++ {
		assert.NoError(t, <-errs)
	}
}

func TestAnalyzeWithFallback(t *testing.T) {
	e := New(DefaultOptions())

	result, err := e.AnalyzeWithFallback(models.SkillSet{"languages": {"Go"}}, nil, models.DomainBackend)
	require.NoError(t, err)
	assert.True(t, result.UsedFallback)
	assert.Equal(t, models.DomainBackend, result.Domain)
	assert.Equal(t, 5, result.JobCount)
	assert.Greater(t, result.ReadinessScore, 0)

	result, err = e.AnalyzeWithFallback(models.SkillSet{"languages": {"Go"}}, nil, "Astronaut")
	require.NoError(t, err)
	assert.Equal(t, DefaultDomain, result.Domain)

	result, err = e.AnalyzeWithFallback(models.SkillSet{"languages": {"JavaScript"}}, exampleJobs(), "ignored")
	require.NoError(t, err)
	assert.False(t, result.UsedFallback)
	assert.Equal(t, "ignored", result.Domain)
	assert.Equal(t, 2, result.JobCount)
}

func TestFallbackMarket(t *testing.T) {
	jobs, domain := FallbackMarket("")
	assert.Equal(t, DefaultDomain, domain)
	require.Len(t, jobs, 5)
	assert.Equal(t, "fallback-frontend-developer-1", jobs[0].ID)

	// callers get their own copy
	jobs[0].ExtractedSkills["skills"][0] = "Mutated"
	again, _ := FallbackMarket("")
	assert.Equal(t, "React", again[0].ExtractedSkills["skills"][0])

	for _, d := range FallbackDomains() {
		jobs, got := FallbackMarket(d)
		assert.Equal(t, d, got)
		assert.Len(t, jobs, 5)
	}
}
