package feedback

import (
	"math"
	"strings"

	"github.com/forhad-fhj/SkillBridge/models"
)

// ATS component weights
const (
	keywordWeight = 0.4
	verbWeight    = 0.2
	impactWeight  = 0.2
	metricWeight  = 0.2
)

// ATS scores how well a resume would pass an applicant tracking system
// screening for a job description: keyword overlap, action verbs, impact
// words and quantified results.
func ATS(resumeText, jobDescription string) *models.ATSScore {
	resumeLower := strings.ToLower(resumeText)

	jdWords := wordSet(keywordPattern.FindAllString(strings.ToLower(jobDescription), -1))
	resumeWords := wordSet(keywordPattern.FindAllString(resumeLower, -1))
	overlap := 0
	for w := range jdWords {
		if resumeWords[w] {
			overlap++
		}
	}

	keyword := capped(float64(overlap) / float64(max(len(jdWords), 1)) * 150)
	verbs := capped(float64(countContained(resumeLower, atsActionVerbs)) / 5 * 100)
	impact := capped(float64(countContained(resumeLower, atsImpactWords)) / 3 * 100)

	metrics := 0
	for _, re := range atsMetricPatterns {
		if re.MatchString(resumeText) {
			metrics++
		}
	}
	metric := capped(float64(metrics) / 2 * 100)

	overall := keyword*keywordWeight + verbs*verbWeight + impact*impactWeight + metric*metricWeight

	return &models.ATSScore{
		OverallScore: round(overall),
		Breakdown: models.ATSBreakdown{
			KeywordMatch:        round(keyword),
			ActionVerbs:         round(verbs),
			ImpactWords:         round(impact),
			QuantifiableResults: round(metric),
		},
		Tips: atsTips(keyword, verbs, impact, metric),
	}
}

func atsTips(keyword, verbs, impact, metric float64) []string {
	var tips []string
	if keyword < 60 {
		tips = append(tips, "Add more keywords from the job description to your resume")
	}
	if verbs < 50 {
		tips = append(tips, "Start bullet points with strong action verbs (developed, implemented, led)")
	}
	if impact < 50 {
		tips = append(tips, "Include more impact words (improved, increased, reduced)")
	}
	if metric < 50 {
		tips = append(tips, "Add quantifiable achievements (percentages, numbers, metrics)")
	}
	if len(tips) == 0 {
		tips = append(tips, "Great job! Your resume is well-optimized for ATS")
	}
	return tips
}

// countContained counts the words that appear anywhere in text
func countContained(text string, words []string) int {
	n := 0
	for _, w := range words {
		if strings.Contains(text, w) {
			n++
		}
	}
	return n
}

func wordSet(words []string) map[string]bool {
	set := make(map[string]bool, len(words))
	for _, w := range words {
		set[w] = true
	}
	return set
}

func capped(score float64) float64 {
	return math.Min(100, score)
}

func round(f float64) int {
	return int(math.Round(f))
}
