package engine

import (
	"log"
	"math"
	"sort"

	"github.com/forhad-fhj/SkillBridge/models"
)

const (
	// missing skills that get learning resources in a job fit
	fitResourceSkills = 10
	// resources listed per missing skill in a job fit
	fitResourcesPerSkill = 2
)

type fitBand struct {
	min     float64
	level   string
	color   string
	message string
}

// checked top down; the last band catches everything
var fitBands = []fitBand{
	{80, models.FitExcellent, "green", "You're a strong match for this role!"},
	{60, models.FitGood, "blue", "You have most of the required skills"},
	{40, models.FitModerate, "yellow", "Consider upskilling in the missing areas"},
	{0, models.FitNeedsWork, "red", "Focus on building the core required skills"},
}

// FitLevel returns the level, display color and message for a match percentage.
func FitLevel(percentage float64) (level, color, message string) {
	for _, b := range fitBands {
		if percentage >= b.min {
			return b.level, b.color, b.message
		}
	}
	last := fitBands[len(fitBands)-1]
	return last.level, last.color, last.message
}

// FitJob compares the user's skills with the skills one job description asks
// for. A job with no recognizable skills is a 100% match with nothing matched.
func (e *Engine) FitJob(userSkills, jobSkills models.SkillSet) (*models.JobFitResult, error) {
	if err := userSkills.Validate("userSkills"); err != nil {
		return nil, err
	}
	if err := jobSkills.Validate("jobDescription.skills"); err != nil {
		return nil, err
	}

	user := e.normalizer.Normalize(userSkills)
	job := e.normalizer.Normalize(jobSkills)

	var matched, missing, extra []string
	for _, token := range job.Tokens {
		if user.Contains(token) {
			matched = append(matched, token)
		} else {
			missing = append(missing, token)
		}
	}
	for _, token := range user.Tokens {
		if !job.Contains(token) {
			extra = append(extra, token)
		}
	}

	percentage := 100.0
	if job.Len() > 0 {
		percentage = math.Round(1000*float64(len(matched))/float64(job.Len())) / 10
	}
	level, color, message := FitLevel(percentage)

	result := &models.JobFitResult{
		MatchPercentage:      percentage,
		FitLevel:             level,
		FitColor:             color,
		FitMessage:           message,
		MatchedSkills:        displaySorted(matched, user),
		MatchedCount:         len(matched),
		MissingSkills:        displaySorted(missing, job),
		MissingCount:         len(missing),
		MissingWithResources: []models.MissingSkillResources{},
		ExtraSkills:          displaySorted(extra, user),
		ExtraCount:           len(extra),
		JDSkillsExtracted:    displayAll(job),
		JDSkillCount:         job.Len(),
	}

	for i, skill := range result.MissingSkills {
		if i == fitResourceSkills {
			break
		}
		result.MissingWithResources = append(result.MissingWithResources, models.MissingSkillResources{
			Skill:     skill,
			Resources: e.resourcesFor(skill, fitResourcesPerSkill),
		})
	}

	return result, nil
}

// resourcesFor returns up to limit catalog resources for a skill, never nil.
func (e *Engine) resourcesFor(skill string, limit int) []models.Resource {
	resources := []models.Resource{}
	if e.opts.Catalog == nil {
		return resources
	}

	entry, err := e.opts.Catalog.Lookup(skill)
	if err != nil {
		log.Printf("[JobFit] Resource lookup failed for %q: %v", skill, err)
		return resources
	}
	if entry == nil {
		return resources
	}
	found := entry.Resources
	if len(found) > limit {
		found = found[:limit]
	}
	return append(resources, found...)
}

// displaySorted returns the display names of tokens ordered by token.
func displaySorted(tokens []string, set *NormalizedSet) []string {
	sorted := append([]string(nil), tokens...)
	sort.Strings(sorted)
	out := make([]string, 0, len(sorted))
	for _, token := range sorted {
		out = append(out, set.Display[token])
	}
	return out
}

// displayAll returns every display name in first-seen order.
func displayAll(set *NormalizedSet) []string {
	out := make([]string, 0, set.Len())
	for _, token := range set.Tokens {
		out = append(out, set.Display[token])
	}
	return out
}
