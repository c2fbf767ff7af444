// Package feedback grades resume writing: action verbs, soft skills,
// quantified achievements, bullet structure and ATS keyword coverage.
package feedback

import (
	"fmt"
	"sort"
	"strings"
	"unicode/utf8"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/forhad-fhj/SkillBridge/models"
)

// Section weights in the overall resume score
const (
	verbSectionWeight        = 0.25
	softSkillSectionWeight   = 0.20
	achievementSectionWeight = 0.30
	bulletSectionWeight      = 0.25
)

const (
	maxBulletsAnalyzed  = 10
	maxSentenceBullets  = 15
	maxBulletText       = 100
	maxMetricsReported  = 10
	maxEvidencePerSkill = 5
)

// Analyze produces the full quality report for a resume.
func Analyze(resumeText string) *models.ResumeFeedback {
	sections := models.FeedbackSections{
		ActionVerbs:            ActionVerbs(resumeText),
		SoftSkills:             SoftSkills(resumeText),
		QuantifiedAchievements: Achievements(resumeText),
		BulletPoints:           Bullets(resumeText),
	}

	overall := round(float64(sections.ActionVerbs.Score)*verbSectionWeight +
		float64(sections.SoftSkills.Score)*softSkillSectionWeight +
		float64(sections.QuantifiedAchievements.Score)*achievementSectionWeight +
		float64(sections.BulletPoints.OverallScore)*bulletSectionWeight)

	level, message := qualityLevel(overall)
	return &models.ResumeFeedback{
		OverallScore:   overall,
		QualityLevel:   level,
		QualityMessage: message,
		Sections:       sections,
		TopPriorities:  topPriorities(sections),
	}
}

func qualityLevel(score int) (string, string) {
	switch {
	case score >= 80:
		return "Excellent", "Your resume is well-optimized and impactful!"
	case score >= 60:
		return "Good", "Your resume is solid with room for improvement."
	case score >= 40:
		return "Needs Work", "Consider the suggestions below to strengthen your resume."
	default:
		return "Weak", "Your resume needs significant improvements."
	}
}

// topPriorities suggests up to three improvements, weakest section first
func topPriorities(s models.FeedbackSections) []string {
	areas := []struct {
		score      int
		suggestion string
	}{
		{s.ActionVerbs.Score, "Add more powerful action verbs to demonstrate impact"},
		{s.SoftSkills.Score, "Highlight soft skills with concrete examples"},
		{s.QuantifiedAchievements.Score, "Quantify your achievements with numbers and metrics"},
		{s.BulletPoints.OverallScore, "Restructure bullet points for clarity and impact"},
	}
	sort.SliceStable(areas, func(i, j int) bool { return areas[i].score < areas[j].score })

	priorities := []string{}
	for _, a := range areas[:3] {
		if a.score < 70 {
			priorities = append(priorities, a.suggestion)
		}
	}
	if len(priorities) == 0 {
		priorities = append(priorities, "Your resume is in great shape! Consider tailoring it to specific roles.")
	}
	return priorities
}

// ActionVerbs scores the variety of action verbs; ten distinct verbs earn
// the full score.
func ActionVerbs(text string) models.ActionVerbFeedback {
	words := wordSet(wordPattern.FindAllString(strings.ToLower(text), -1))

	result := models.ActionVerbFeedback{
		ByCategory:     make([]models.VerbCategory, 0, len(actionVerbs)),
		WeakCategories: []string{},
	}
	for _, category := range actionVerbs {
		var found []string
		for _, verb := range category.verbs {
			if words[verb] {
				found = append(found, verb)
			}
		}
		examples := found
		if len(examples) > 3 {
			examples = examples[:3]
		}
		result.ByCategory = append(result.ByCategory, models.VerbCategory{
			Category: category.name,
			Count:    len(found),
			Examples: append([]string{}, examples...),
		})
		result.TotalFound += len(found)
		if len(found) < 2 {
			result.WeakCategories = append(result.WeakCategories, category.name)
		}
	}

	result.Score = round(capped(float64(result.TotalFound) / 10 * 100))
	result.Feedback = verbFeedback(result.Score, result.WeakCategories)
	return result
}

func verbFeedback(score int, weak []string) []string {
	var feedback []string
	switch {
	case score < 30:
		feedback = append(feedback, "Your resume lacks strong action verbs. Start bullet points with powerful verbs like 'Led', 'Developed', 'Achieved'.")
	case score < 60:
		feedback = append(feedback, "Good use of some action verbs. Try to diversify with more leadership and achievement verbs.")
	default:
		feedback = append(feedback, "Excellent use of action verbs throughout your resume!")
	}

	for _, category := range weak {
		switch category {
		case "leadership":
			feedback = append(feedback, "Add leadership verbs: Led, Managed, Mentored, Coordinated")
		case "achievement":
			feedback = append(feedback, "Highlight achievements: Achieved, Delivered, Exceeded, Accomplished")
		case "technical":
			feedback = append(feedback, "Include technical verbs: Implemented, Developed, Engineered, Deployed")
		}
	}
	return feedback
}

// SoftSkills looks for evidence of each soft skill; the score is the share
// of soft skills with any evidence.
func SoftSkills(text string) models.SoftSkillFeedback {
	lower := strings.ToLower(text)

	result := models.SoftSkillFeedback{
		TotalPossible: len(softSkills),
		Skills:        make([]models.SoftSkillEvidence, 0, len(softSkills)),
	}
	var missing []string
	for _, skill := range softSkills {
		var matches []string
		for _, re := range skill.patterns {
			matches = append(matches, re.FindAllString(lower, -1)...)
		}

		evidence := models.SoftSkillEvidence{Skill: skill.name, Evidence: []string{}, Strength: "Not Found"}
		if len(matches) > 0 {
			evidence.Found = true
			evidence.Evidence = firstUnique(matches, maxEvidencePerSkill)
			evidence.Strength = "Moderate"
			if len(matches) >= 3 {
				evidence.Strength = "Strong"
			}
			result.TotalDetected++
		} else {
			missing = append(missing, skill.name)
		}
		result.Skills = append(result.Skills, evidence)
	}

	result.Score = round(float64(result.TotalDetected) / float64(len(softSkills)) * 100)
	result.Feedback = softSkillFeedback(missing)
	return result
}

func softSkillFeedback(missing []string) []string {
	var feedback []string
	switch {
	case len(missing) == 0:
		feedback = append(feedback, "Excellent! You've demonstrated all key soft skills.")
	case len(missing) <= 2:
		feedback = append(feedback, "Good soft skills coverage. Consider adding evidence for: "+strings.Join(labels(missing), ", "))
	default:
		shown := missing
		if len(shown) > 4 {
			shown = shown[:4]
		}
		feedback = append(feedback, "Missing key soft skills: "+strings.Join(labels(shown), ", "))
	}

	for i, skill := range missing {
		if i == 2 {
			break
		}
		if suggestion, ok := softSkillSuggestions[skill]; ok {
			feedback = append(feedback, fmt.Sprintf("%s: %s", label(skill), suggestion))
		}
	}
	return feedback
}

// label turns a soft skill key such as problem_solving into "Problem Solving"
func label(key string) string {
	return cases.Title(language.English).String(strings.ReplaceAll(key, "_", " "))
}

func labels(keys []string) []string {
	out := make([]string, 0, len(keys))
	for _, k := range keys {
		out = append(out, label(k))
	}
	return out
}

// Achievements finds quantified results; five earn the full score.
func Achievements(text string) models.AchievementFeedback {
	var found []models.Metric
	for _, p := range metricPatterns {
		for _, m := range p.re.FindAllStringSubmatch(text, -1) {
			found = append(found, models.Metric{Type: p.kind, Value: m[1]})
		}
	}

	reported := found
	if len(reported) > maxMetricsReported {
		reported = reported[:maxMetricsReported]
	}
	return models.AchievementFeedback{
		Score:      round(capped(float64(len(found)) / 5 * 100)),
		TotalFound: len(found),
		Metrics:    append([]models.Metric{}, reported...),
		Feedback:   achievementFeedback(len(found)),
	}
}

func achievementFeedback(count int) []string {
	switch {
	case count == 0:
		return []string{
			"No quantified achievements found! Add numbers to demonstrate impact.",
			"Examples: 'Increased performance by 40%', 'Led team of 5', 'Reduced costs by $10K'",
		}
	case count < 3:
		return []string{
			"Some metrics found. Add more numbers to strengthen impact.",
			"Try to include at least one metric per job experience.",
		}
	default:
		return []string{"Good use of quantified achievements!"}
	}
}

// Bullets grades the first ten bullet points. Text without bullet markers
// falls back to sentences of five or more words.
func Bullets(text string) models.BulletFeedback {
	var bullets []string
	for _, m := range bulletPattern.FindAllStringSubmatch(text, -1) {
		bullets = append(bullets, m[1])
	}
	if len(bullets) == 0 {
		for _, sentence := range sentencePattern.FindAllString(text, -1) {
			if len(strings.Fields(sentence)) >= 5 {
				bullets = append(bullets, sentence)
			}
			if len(bullets) == maxSentenceBullets {
				break
			}
		}
	}

	analyzed := bullets
	if len(analyzed) > maxBulletsAnalyzed {
		analyzed = analyzed[:maxBulletsAnalyzed]
	}

	result := models.BulletFeedback{
		TotalBullets: len(bullets),
		Quality:      make([]models.BulletQuality, 0, len(analyzed)),
	}
	good := 0
	for _, bullet := range analyzed {
		q := gradeBullet(bullet)
		if q.Score >= 70 {
			good++
		}
		result.Quality = append(result.Quality, q)
	}

	result.OverallScore = round(float64(good) / float64(max(len(analyzed), 1)) * 100)
	result.Feedback = bulletFeedback(result.OverallScore, result.Quality)
	return result
}

func gradeBullet(bullet string) models.BulletQuality {
	q := models.BulletQuality{Issues: []string{}}
	score := 100

	words := strings.Fields(bullet)
	switch {
	case len(words) < 5:
		q.Issues = append(q.Issues, "Too short")
		score -= 20
	case len(words) > 25:
		q.Issues = append(q.Issues, "Too long")
		score -= 10
	}

	if len(words) == 0 || !isActionVerb(strings.ToLower(words[0])) {
		q.Issues = append(q.Issues, "Doesn't start with action verb")
		score -= 20
	}

	q.HasMetrics = digitPattern.MatchString(bullet)
	if q.HasMetrics {
		score += 10
	}

	q.Score = min(100, max(0, score))
	q.Text = truncate(bullet, maxBulletText)
	return q
}

func bulletFeedback(score int, quality []models.BulletQuality) []string {
	var feedback []string
	switch {
	case score >= 70:
		feedback = append(feedback, "Your bullet points are well-structured!")
	case score >= 50:
		feedback = append(feedback, "Bullet points are decent but could be improved.")
	default:
		feedback = append(feedback, "Bullet points need significant improvement.")
	}

	issues := map[string]int{}
	withMetrics := 0
	for _, q := range quality {
		for _, issue := range q.Issues {
			issues[issue]++
		}
		if q.HasMetrics {
			withMetrics++
		}
	}

	if issues["Doesn't start with action verb"] > 2 {
		feedback = append(feedback, "Start each bullet with a strong action verb (Developed, Led, Created)")
	}
	if issues["Too short"] > 2 {
		feedback = append(feedback, "Expand short bullets with more context and results")
	}
	if 2*withMetrics < len(quality) {
		feedback = append(feedback, "Add more quantifiable results (numbers, percentages, metrics)")
	}
	return feedback
}

// truncate shortens s to n runes, marking the cut with "..."
func truncate(s string, n int) string {
	if utf8.RuneCountInString(s) <= n {
		return s
	}
	return string([]rune(s)[:n]) + "..."
}

func firstUnique(values []string, limit int) []string {
	seen := make(map[string]bool, len(values))
	out := []string{}
	for _, v := range values {
		if seen[v] {
			continue
		}
		seen[v] = true
		out = append(out, v)
		if len(out) == limit {
			break
		}
	}
	return out
}
