package models

import (
	"strings"
)

// Minimum text lengths for the single-document analyses
const (
	MinJobDescriptionText = 50
	MinResumeText         = 100
	DefaultMaxRoles       = 5
	MaxRoles              = 20
)

// JobFitRequest represents a request to compare a user with one job description
// @Description Job fit request. resumeText enables the ATS score.
type JobFitRequest struct {
	UserSkills     SkillSet `json:"userSkills"`
	JobDescription string   `json:"jobDescription" example:"We are hiring a frontend developer with React, TypeScript and Jest experience..."`
	ResumeText     string   `json:"resumeText,omitempty"`
	Domain         string   `json:"domain,omitempty" example:"Frontend Developer"`
}

// Validate checks the request before any extraction runs
func (r *JobFitRequest) Validate() error {
	if err := r.UserSkills.Validate("userSkills"); err != nil {
		return err
	}
	if len(strings.TrimSpace(r.JobDescription)) < MinJobDescriptionText {
		return &InputError{Field: "jobDescription", Message: "job description is too short, please provide more details"}
	}
	return nil
}

// Fit levels for job fit, best first
const (
	FitExcellent = "Excellent"
	FitGood      = "Good"
	FitModerate  = "Moderate"
	FitNeedsWork = "Needs Work"
)

// MissingSkillResources pairs a missing job skill with learning material
type MissingSkillResources struct {
	Skill     string     `json:"skill"`
	Resources []Resource `json:"resources"`
}

// ATSBreakdown holds the component scores of an ATS check
type ATSBreakdown struct {
	KeywordMatch        int `json:"keywordMatch"`
	ActionVerbs         int `json:"actionVerbs"`
	ImpactWords         int `json:"impactWords"`
	QuantifiableResults int `json:"quantifiableResults"`
}

// ATSScore is the applicant-tracking compatibility of a resume for a job
type ATSScore struct {
	OverallScore int          `json:"overallScore"`
	Breakdown    ATSBreakdown `json:"breakdown"`
	Tips         []string     `json:"tips"`
}

// JobFitResult describes how well a user matches one job description
type JobFitResult struct {
	MatchPercentage      float64                 `json:"matchPercentage" example:"66.7"`
	FitLevel             string                  `json:"fitLevel" example:"Good"`
	FitColor             string                  `json:"fitColor" example:"blue"`
	FitMessage           string                  `json:"fitMessage"`
	MatchedSkills        []string                `json:"matchedSkills"`
	MatchedCount         int                     `json:"matchedCount"`
	MissingSkills        []string                `json:"missingSkills"`
	MissingCount         int                     `json:"missingCount"`
	MissingWithResources []MissingSkillResources `json:"missingWithResources"`
	ExtraSkills          []string                `json:"extraSkills"`
	ExtraCount           int                     `json:"extraCount"`
	JDSkillsExtracted    []string                `json:"jdSkillsExtracted"`
	JDSkillCount         int                     `json:"jdSkillCount"`
	ATSScore             *ATSScore               `json:"atsScore"`
	Domain               string                  `json:"domain"`
}

// Role is an entry-level role the recommender can suggest
type Role struct {
	ID              string   `json:"id" yaml:"id"`
	Title           string   `json:"title" yaml:"title"`
	Difficulty      string   `json:"difficulty" yaml:"difficulty"`
	Description     string   `json:"description" yaml:"description"`
	CompanyTypes    []string `json:"companyTypes" yaml:"companyTypes"`
	AvgSalary       string   `json:"avgSalary" yaml:"avgSalary"`
	GrowthPath      string   `json:"growthPath" yaml:"growthPath"`
	RequiredSkills  []string `json:"requiredSkills" yaml:"requiredSkills"`
	PreferredSkills []string `json:"preferredSkills" yaml:"preferredSkills"`
	MinReadiness    int      `json:"minReadiness" yaml:"minReadiness"`
}

// Role readiness status
const (
	RoleReady   = "Ready"
	RoleStretch = "Stretch Goal"
)

// RoleRecommendation is a role with the user's fit for it
type RoleRecommendation struct {
	Role
	FitScore         int      `json:"fitScore"`
	RequiredMatched  []string `json:"requiredMatched"`
	RequiredMissing  []string `json:"requiredMissing"`
	PreferredMatched []string `json:"preferredMatched"`
	SkillCoverage    string   `json:"skillCoverage" example:"3/5"`
	Status           string   `json:"status" example:"Ready"`
	StatusColor      string   `json:"statusColor" example:"green"`
}

// RecommendRolesRequest represents a role recommendation request
type RecommendRolesRequest struct {
	UserSkills     SkillSet `json:"userSkills"`
	ReadinessScore int      `json:"readinessScore" example:"62"`
	MaxRoles       int      `json:"maxRoles,omitempty" example:"5"`
}

// Validate checks the request and applies the default role count
func (r *RecommendRolesRequest) Validate() error {
	if err := r.UserSkills.Validate("userSkills"); err != nil {
		return err
	}
	if r.ReadinessScore < 0 || r.ReadinessScore > 100 {
		return &InputError{Field: "readinessScore", Message: "must be between 0 and 100"}
	}
	if r.MaxRoles < 0 || r.MaxRoles > MaxRoles {
		return &InputError{Field: "maxRoles", Message: "must be between 1 and 20"}
	}
	if r.MaxRoles == 0 {
		r.MaxRoles = DefaultMaxRoles
	}
	return nil
}

// RecommendRolesResponse lists recommended roles
type RecommendRolesResponse struct {
	Recommendations []RoleRecommendation `json:"recommendations"`
	Count           int                  `json:"count"`
}

// ResumeFeedbackRequest represents a resume quality request
type ResumeFeedbackRequest struct {
	ResumeText string `json:"resumeText"`
}

// Validate checks the resume is long enough to analyse
func (r *ResumeFeedbackRequest) Validate() error {
	if len(strings.TrimSpace(r.ResumeText)) < MinResumeText {
		return &InputError{Field: "resumeText", Message: "resume text is too short for meaningful analysis"}
	}
	return nil
}

// VerbCategory counts the action verbs found for one category
type VerbCategory struct {
	Category string   `json:"category"`
	Count    int      `json:"count"`
	Examples []string `json:"examples"`
}

// ActionVerbFeedback scores action verb usage
type ActionVerbFeedback struct {
	Score          int            `json:"score"`
	TotalFound     int            `json:"totalFound"`
	ByCategory     []VerbCategory `json:"byCategory"`
	WeakCategories []string       `json:"weakCategories"`
	Feedback       []string       `json:"feedback"`
}

// SoftSkillEvidence is what was found for one soft skill
type SoftSkillEvidence struct {
	Skill    string   `json:"skill"`
	Found    bool     `json:"found"`
	Evidence []string `json:"evidence"`
	Strength string   `json:"strength"`
}

// SoftSkillFeedback scores soft skill coverage
type SoftSkillFeedback struct {
	Score         int                 `json:"score"`
	TotalDetected int                 `json:"totalDetected"`
	TotalPossible int                 `json:"totalPossible"`
	Skills        []SoftSkillEvidence `json:"skills"`
	Feedback      []string            `json:"feedback"`
}

// Metric is one quantified achievement found in a resume
type Metric struct {
	Type  string `json:"type"`
	Value string `json:"value"`
}

// AchievementFeedback scores quantified achievements
type AchievementFeedback struct {
	Score      int      `json:"score"`
	TotalFound int      `json:"totalFound"`
	Metrics    []Metric `json:"metrics"`
	Feedback   []string `json:"feedback"`
}

// BulletQuality is the assessment of a single bullet point
type BulletQuality struct {
	Text       string   `json:"text"`
	Score      int      `json:"score"`
	Issues     []string `json:"issues"`
	HasMetrics bool     `json:"hasMetrics"`
}

// BulletFeedback scores bullet point structure
type BulletFeedback struct {
	TotalBullets int             `json:"totalBullets"`
	OverallScore int             `json:"overallScore"`
	Quality      []BulletQuality `json:"quality"`
	Feedback     []string        `json:"feedback"`
}

// FeedbackSections groups the individual resume checks
type FeedbackSections struct {
	ActionVerbs            ActionVerbFeedback  `json:"actionVerbs"`
	SoftSkills             SoftSkillFeedback   `json:"softSkills"`
	QuantifiedAchievements AchievementFeedback `json:"quantifiedAchievements"`
	BulletPoints           BulletFeedback      `json:"bulletPoints"`
}

// ResumeFeedback is the full resume quality report
type ResumeFeedback struct {
	OverallScore   int              `json:"overallScore"`
	QualityLevel   string           `json:"qualityLevel" example:"Good"`
	QualityMessage string           `json:"qualityMessage"`
	Sections       FeedbackSections `json:"sections"`
	TopPriorities  []string         `json:"topPriorities"`
}
