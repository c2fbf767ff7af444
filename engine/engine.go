package engine

import (
	"fmt"

	"github.com/forhad-fhj/SkillBridge/models"
)

// Options configures an Engine.
type Options struct {
	Aliases AliasTable
	Tiers   TierOptions
	Roadmap RoadmapOptions
	Catalog ResourceCatalog
}

// DefaultOptions returns options with no aliasing, share-based tiers, and
// up to DefaultMaxResources resources per roadmap step.
func DefaultOptions() Options {
	return Options{
		Roadmap: RoadmapOptions{MaxResources: DefaultMaxResources},
	}
}

// Engine runs gap analyses. It holds only immutable configuration.
type Engine struct {
	normalizer *Normalizer
	opts       Options
}

// New creates an engine.
func New(opts Options) *Engine {
	return &Engine{
		normalizer: NewNormalizer(opts.Aliases),
		opts:       opts,
	}
}

// Normalizer exposes the engine's normalizer.
func (e *Engine) Normalizer() *Normalizer {
	return e.normalizer
}

// Analyze compares the user's skills with the market described by jobs.
// An empty market produces a valid result with a score of 0. Malformed
// input returns a *models.InputError naming the offending field.
func (e *Engine) Analyze(userSkills models.SkillSet, jobs []models.JobRecord) (*models.AnalysisResult, error) {
	if err := userSkills.Validate("userSkills"); err != nil {
		return nil, err
	}
	for i, job := range jobs {
		if err := job.ExtractedSkills.Validate(fmt.Sprintf("jobDescriptions[%d].extractedSkills", i)); err != nil {
			return nil, err
		}
	}

	user := e.normalizer.Normalize(userSkills)
	market := AggregateMarket(e.normalizer, jobs)
	scored := Score(user, market, e.opts.Tiers)
	roadmap := GenerateRoadmap(scored.Missing, market.JobCount, e.opts.Catalog, e.opts.Roadmap)

	return &models.AnalysisResult{
		ReadinessScore:    scored.ReadinessScore,
		WeightedScore:     scored.WeightedScore,
		MatchedSkills:     scored.Matched,
		MissingSkills:     scored.Missing,
		GeneratedRoadmap:  roadmap,
		TotalMarketSkills: scored.TotalMarketSkills,
		UserSkillCount:    user.Len(),
		JobCount:          market.JobCount,
	}, nil
}

// AnalyzeWithFallback behaves like Analyze but substitutes the built-in
// market for domain when jobs is empty.
func (e *Engine) AnalyzeWithFallback(userSkills models.SkillSet, jobs []models.JobRecord, domain string) (*models.AnalysisResult, error) {
	usedFallback := false
	if len(jobs) == 0 {
		jobs, domain = FallbackMarket(domain)
		usedFallback = true
	}

	result, err := e.Analyze(userSkills, jobs)
	if err != nil {
		return nil, err
	}
	result.Domain = domain
	result.UsedFallback = usedFallback
	return result, nil
}
