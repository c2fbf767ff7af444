package models

import "time"

// Priority tiers for missing skills, highest first
const (
	PriorityCritical = "Critical"
	PriorityHigh     = "High"
	PriorityMedium   = "Medium"
)

// PriorityRank orders tiers: lower rank sorts first. Unknown tiers sort last.
func PriorityRank(priority string) int {
	switch priority {
	case PriorityCritical:
		return 0
	case PriorityHigh:
		return 1
	case PriorityMedium:
		return 2
	default:
		return 3
	}
}

// MatchedSkill is a skill the user has that the market asks for
type MatchedSkill struct {
	Skill     string `json:"skill" firestore:"skill"`
	Frequency int    `json:"frequency" firestore:"frequency"`
	Demand    string `json:"demand" firestore:"demand"` // High, Medium
}

// MissingSkill is a market skill absent from the user's set
type MissingSkill struct {
	Skill     string `json:"skill" firestore:"skill"`
	Frequency int    `json:"frequency" firestore:"frequency"`
	Priority  string `json:"priority" firestore:"priority"`
}

// Resource is a single learning resource for a skill
type Resource struct {
	Title      string `json:"title" yaml:"title"`
	URL        string `json:"url" yaml:"url"`
	Platform   string `json:"platform,omitempty" yaml:"platform,omitempty"`
	Difficulty string `json:"difficulty,omitempty" yaml:"difficulty,omitempty"`
	Duration   string `json:"duration,omitempty" yaml:"duration,omitempty"`
	Type       string `json:"type,omitempty" yaml:"type,omitempty"`
}

// RoadmapStep is one learning step for a missing skill
type RoadmapStep struct {
	Order         int        `json:"order"`
	Skill         string     `json:"skill"`
	Priority      string     `json:"priority"`
	Frequency     int        `json:"frequency"`
	EstimatedTime string     `json:"estimatedTime"`
	Description   string     `json:"description"`
	ScoreImpact   string     `json:"scoreImpact"`
	Resources     []Resource `json:"resources"`
}

// AnalysisResult is the engine output consumed by the dashboard
type AnalysisResult struct {
	ReadinessScore    int            `json:"readinessScore"`
	WeightedScore     int            `json:"weightedScore"`
	MatchedSkills     []MatchedSkill `json:"matchedSkills"`
	MissingSkills     []MissingSkill `json:"missingSkills"`
	GeneratedRoadmap  []RoadmapStep  `json:"generatedRoadmap"`
	TotalMarketSkills int            `json:"totalMarketSkills"`
	UserSkillCount    int            `json:"userSkillCount"`
	JobCount          int            `json:"jobCount"`
	Domain            string         `json:"domain,omitempty"`
	UsedFallback      bool           `json:"usedFallback,omitempty"`
}

// AnalysisRecord is a persisted AnalysisResult owned by a user
type AnalysisRecord struct {
	ID               string         `json:"id" firestore:"-"`
	UserID           string         `json:"userId" firestore:"userId"`
	Domain           string         `json:"domain" firestore:"domain"`
	ReadinessScore   int            `json:"readinessScore" firestore:"readinessScore"`
	SkillCount       int            `json:"skillCount" firestore:"skillCount"`
	MatchedSkills    []MatchedSkill `json:"matchedSkills" firestore:"matchedSkills"`
	MissingSkills    []MissingSkill `json:"missingSkills" firestore:"missingSkills"`
	GeneratedRoadmap string         `json:"generatedRoadmap" firestore:"generatedRoadmap"` // JSON text
	AnalyzedAt       time.Time      `json:"analyzedAt" firestore:"analyzedAt"`
}

// ProgressEntry is a readiness snapshot used by the progress view
type ProgressEntry struct {
	ID             string    `json:"id" firestore:"-"`
	UserID         string    `json:"-" firestore:"userId"`
	ReadinessScore int       `json:"readinessScore" firestore:"readinessScore"`
	SkillCount     int       `json:"skillCount" firestore:"skillCount"`
	Domain         string    `json:"domain,omitempty" firestore:"domain"`
	AnalyzedAt     time.Time `json:"date" firestore:"analyzedAt"`
}

// ProgressStats summarizes a user's progress history
type ProgressStats struct {
	TotalAnalyses int `json:"totalAnalyses"`
	AverageScore  int `json:"averageScore"`
	HighestScore  int `json:"highestScore"`
}

// SummarizeProgress computes stats over the given entries
func SummarizeProgress(entries []ProgressEntry) ProgressStats {
	stats := ProgressStats{TotalAnalyses: len(entries)}
	if len(entries) == 0 {
		return stats
	}

	total := 0
	for _, e := range entries {
		total += e.ReadinessScore
		if e.ReadinessScore > stats.HighestScore {
			stats.HighestScore = e.ReadinessScore
		}
	}
	// round half up
	stats.AverageScore = (2*total + len(entries)) / (2 * len(entries))
	return stats
}

// SkillResources is what a resource catalog knows about one skill
type SkillResources struct {
	Skill         string     `json:"skill" yaml:"skill"`
	EstimatedTime string     `json:"estimatedTime,omitempty" yaml:"estimatedTime,omitempty"`
	Description   string     `json:"description,omitempty" yaml:"description,omitempty"`
	Resources     []Resource `json:"resources" yaml:"resources"`
}
