package feedback

import "regexp"

// verbCategory is a named group of resume action verbs
type verbCategory struct {
	name  string
	verbs []string
}

var actionVerbs = []verbCategory{
	{"leadership", []string{"led", "managed", "directed", "coordinated", "supervised", "mentored", "guided", "headed", "oversaw", "orchestrated", "spearheaded"}},
	{"achievement", []string{"achieved", "accomplished", "exceeded", "delivered", "completed", "earned", "attained", "won", "secured", "obtained"}},
	{"creation", []string{"created", "designed", "developed", "built", "established", "founded", "initiated", "invented", "launched", "pioneered"}},
	{"improvement", []string{"improved", "enhanced", "optimized", "streamlined", "accelerated", "increased", "boosted", "strengthened", "upgraded", "refined"}},
	{"analysis", []string{"analyzed", "evaluated", "assessed", "researched", "investigated", "examined", "studied", "reviewed", "identified", "discovered"}},
	{"technical", []string{"implemented", "engineered", "programmed", "automated", "integrated", "deployed", "configured", "architected", "debugged", "refactored"}},
	{"communication", []string{"presented", "communicated", "negotiated", "collaborated", "partnered", "facilitated", "liaised", "advocated", "persuaded", "influenced"}},
}

// isActionVerb reports whether word (lower-case) is in any verb category
func isActionVerb(word string) bool {
	for _, c := range actionVerbs {
		for _, v := range c.verbs {
			if v == word {
				return true
			}
		}
	}
	return false
}

// softSkill is a soft skill and the patterns that evidence it
type softSkill struct {
	name     string
	patterns []*regexp.Regexp
}

var softSkills = []softSkill{
	{"communication", compileAll(
		`\b(communicated?|presented?|collaborated?|teamwork|verbal|written)\b`,
		`\b(interpersonal|public.?speaking|articulate|listening)\b`,
	)},
	{"leadership", compileAll(
		`\b(led|lead|managed?|supervised?|mentored?|coached?)\b`,
		`\b(leadership|team.?lead|decision.?making|delegat\w+)\b`,
	)},
	{"problem_solving", compileAll(
		`\b(solved?|problem.?solving|troubleshoot\w*|debugg\w+)\b`,
		`\b(critical.?thinking|analytical|solution\w*|resolv\w+)\b`,
	)},
	{"adaptability", compileAll(
		`\b(adapt\w+|flexible|versatile|quick.?learn\w*|agile)\b`,
		`\b(cross.?functional|multi.?task\w*|fast.?paced)\b`,
	)},
	{"time_management", compileAll(
		`\b(deadline|time.?management|prioritiz\w+|organization)\b`,
		`\b(efficient|productivity|schedul\w+|punctual)\b`,
	)},
	{"creativity", compileAll(
		`\b(creative?|innovate?\w*|design\w*|ideation)\b`,
		`\b(brainstorm\w*|original|novel|inventive)\b`,
	)},
	{"teamwork", compileAll(
		`\b(team\w*|collaborat\w+|cooperat\w+|partner\w*)\b`,
		`\b(cross.?team|group.?project|collective)\b`,
	)},
}

var softSkillSuggestions = map[string]string{
	"communication":   "Add examples of presentations, documentation, or stakeholder interactions",
	"leadership":      "Mention times you led projects, mentored others, or made key decisions",
	"problem_solving": "Describe specific problems you solved and the approach used",
	"teamwork":        "Highlight collaborative projects and cross-team work",
}

// metricPattern finds one kind of quantified achievement; group 1 is the value
type metricPattern struct {
	kind string
	re   *regexp.Regexp
}

var metricPatterns = []metricPattern{
	{"percentage", regexp.MustCompile(`(?i)(\d+)\s*%`)},
	{"monetary", regexp.MustCompile(`(?i)\$\s*(\d+[\d,]*)`)},
	{"users", regexp.MustCompile(`(?i)(\d+[\d,]*)\s*(users?|customers?|clients?|visitors?)`)},
	{"projects", regexp.MustCompile(`(?i)(\d+[\d,]*)\s*(projects?|applications?|features?)`)},
	{"multiplier", regexp.MustCompile(`(?i)(\d+)x\s*`)},
	{"time", regexp.MustCompile(`(?i)(\d+)\s*(hours?|days?|weeks?|months?)`)},
	{"ranking", regexp.MustCompile(`(?i)top\s*(\d+)`)},
	{"team_size", regexp.MustCompile(`(?i)(\d+)\s*(team|members?|people)`)},
}

// ATS keyword lists
var (
	atsActionVerbs = []string{
		"developed", "implemented", "designed", "created", "built", "managed",
		"led", "achieved", "improved", "optimized", "analyzed", "collaborated",
		"launched", "delivered", "architected", "deployed", "automated",
	}
	atsImpactWords = []string{
		"increased", "reduced", "saved", "generated", "grew", "improved",
		"accelerated", "streamlined", "enhanced", "maximized", "minimized",
	}
	atsMetricPatterns = compileAll(
		`\d+%`,
		`\$\d+`,
		`\d+\s*(users|customers|clients)`,
		`\d+x`,
		`\d+\s*(times|months|years|weeks|days)`,
	)
)

var (
	wordPattern     = regexp.MustCompile(`\b[a-z]+\b`)
	keywordPattern  = regexp.MustCompile(`\b[a-z]{3,}\b`)
	bulletPattern   = regexp.MustCompile(`[•\-*]\s*(.+)`)
	sentencePattern = regexp.MustCompile(`[A-Z][^.!?]*[.!?]`)
	digitPattern    = regexp.MustCompile(`\d+`)
)

func compileAll(patterns ...string) []*regexp.Regexp {
	out := make([]*regexp.Regexp, 0, len(patterns))
	for _, p := range patterns {
		out = append(out, regexp.MustCompile(p))
	}
	return out
}
