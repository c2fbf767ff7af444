package engine

import (
	"fmt"
	"log"

	"github.com/forhad-fhj/SkillBridge/models"
)

// DefaultMaxResources caps the resources attached to each roadmap step.
const DefaultMaxResources = 3

// ResourceCatalog looks up learning material for a skill. Lookup returns nil
// when the catalog knows nothing about the skill.
type ResourceCatalog interface {
	Lookup(skill string) (*models.SkillResources, error)
}

// RoadmapOptions controls roadmap size.
type RoadmapOptions struct {
	MaxResources int // per step; 0 means DefaultMaxResources
	TopK         int // keep only the first K steps; 0 keeps all
}

// Estimated learning time per tier, used when the catalog has no estimate
var estimatedTimeByPriority = map[string]string{
	models.PriorityCritical: "3-4 weeks",
	models.PriorityHigh:     "2-3 weeks",
	models.PriorityMedium:   "1-2 weeks",
}

// EstimatedTime returns the default learning time for a priority tier.
func EstimatedTime(priority string) string {
	if t, ok := estimatedTimeByPriority[priority]; ok {
		return t
	}
	return estimatedTimeByPriority[models.PriorityMedium]
}

// ScoreImpact estimates how much learning a skill could lift the readiness
// score, based on the share of jobs asking for it.
func ScoreImpact(frequency, jobCount int) string {
	switch {
	case jobCount <= 0:
		return "+1-3%"
	case 2*frequency >= jobCount:
		return "+10-15%"
	case 4*frequency >= jobCount:
		return "+5-10%"
	case 10*frequency >= jobCount:
		return "+3-5%"
	default:
		return "+1-3%"
	}
}

// GenerateRoadmap builds one step per missing skill, ordered Critical >
// High > Medium and then by frequency. A failing catalog lookup leaves the
// step with no resources.
func GenerateRoadmap(missing []models.MissingSkill, jobCount int, catalog ResourceCatalog, opts RoadmapOptions) []models.RoadmapStep {
	ordered := make([]models.MissingSkill, len(missing))
	copy(ordered, missing)
	sortMissing(ordered)

	if opts.TopK > 0 && len(ordered) > opts.TopK {
		ordered = ordered[:opts.TopK]
	}

	maxResources := opts.MaxResources
	if maxResources <= 0 {
		maxResources = DefaultMaxResources
	}

	steps := make([]models.RoadmapStep, 0, len(ordered))
	for i, skill := range ordered {
		step := models.RoadmapStep{
			Order:         i + 1,
			Skill:         skill.Skill,
			Priority:      skill.Priority,
			Frequency:     skill.Frequency,
			EstimatedTime: EstimatedTime(skill.Priority),
			Description:   fmt.Sprintf("Learn the fundamentals of %s and build a small project.", skill.Skill),
			ScoreImpact:   ScoreImpact(skill.Frequency, jobCount),
			Resources:     []models.Resource{},
		}

		if catalog != nil {
			entry, err := catalog.Lookup(skill.Skill)
			if err != nil {
				log.Printf("[Roadmap] Resource lookup failed for %q: %v", skill.Skill, err)
			} else if entry != nil {
				if entry.EstimatedTime != "" {
					step.EstimatedTime = entry.EstimatedTime
				}
				if entry.Description != "" {
					step.Description = entry.Description
				}
				resources := entry.Resources
				if len(resources) > maxResources {
					resources = resources[:maxResources]
				}
				step.Resources = append(step.Resources, resources...)
			}
		}

		steps = append(steps, step)
	}

	return steps
}
