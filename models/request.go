package models

// AnalyzeGapRequest represents the API request for gap analysis
// @Description Gap analysis request. Omit jobDescriptions to use stored or built-in market data.
type AnalyzeGapRequest struct {
	UserSkills      SkillSet    `json:"userSkills"`
	JobDescriptions []JobRecord `json:"jobDescriptions,omitempty"`
	Domain          string      `json:"domain,omitempty" example:"Frontend Developer"`
}

// ParseDocumentResponse represents the skills extracted from an uploaded resume
// @Description Skills extracted from a resume document
type ParseDocumentResponse struct {
	Skills      SkillSet `json:"skills"`
	TotalSkills int      `json:"totalSkills" example:"12"`
	ResumeURL   string   `json:"resumeUrl,omitempty"`
}

// ExtractSkillsRequest represents a plain-text skill extraction request
// @Description Plain-text skill extraction request
type ExtractSkillsRequest struct {
	Text string `json:"text" example:"Built dashboards with React, TypeScript and PostgreSQL"`
}

// ExtractSkillsResponse represents extracted skills
type ExtractSkillsResponse struct {
	Skills      SkillSet `json:"skills"`
	TotalSkills int      `json:"totalSkills" example:"3"`
}

// JobsResponse represents the job listing response
// @Description Stored job postings and the distinct domains they cover
type JobsResponse struct {
	Jobs    []JobRecord `json:"jobs"`
	Domains []string    `json:"domains"`
	Total   int         `json:"total" example:"25"`
}

// CreateJobRequest represents a request to store a job posting
type CreateJobRequest struct {
	Title           string   `json:"title" binding:"required" example:"Frontend Developer"`
	Company         string   `json:"company" example:"Tech Solutions BD"`
	Domain          string   `json:"domain" binding:"required" example:"Frontend Developer"`
	ExtractedSkills SkillSet `json:"extractedSkills" binding:"required"`
	DescriptionText string   `json:"descriptionText,omitempty"`
	SourceURL       string   `json:"sourceUrl,omitempty"`
}

// ResourcesResponse represents learning resources for a skill
type ResourcesResponse struct {
	Skill     string     `json:"skill" example:"React"`
	Resources []Resource `json:"resources"`
}

// SkillListResponse lists the skills the resource catalog has entries for
type SkillListResponse struct {
	Skills []string `json:"skills"`
	Total  int      `json:"total" example:"40"`
}

// SaveProgressRequest represents a progress snapshot submitted by the client
type SaveProgressRequest struct {
	ReadinessScore int    `json:"readinessScore" example:"67"`
	SkillCount     int    `json:"skillCount" example:"14"`
	Domain         string `json:"domain,omitempty" example:"Backend Developer"`
}

// SaveProgressResponse represents the saved progress entry
type SaveProgressResponse struct {
	ID      string `json:"id"`
	Message string `json:"message" example:"Progress saved successfully"`
}

// ProgressResponse represents the progress history view
type ProgressResponse struct {
	History []ProgressEntry `json:"history"`
	Stats   ProgressStats   `json:"stats"`
}

// AnalysesResponse represents stored analysis history
type AnalysesResponse struct {
	Analyses []AnalysisRecord `json:"analyses"`
}

// ErrorResponse represents an API error response
// @Description Standard error response
type ErrorResponse struct {
	Error   string `json:"error" example:"Invalid request body"`
	Code    int    `json:"code" example:"400"`
	Details string `json:"details,omitempty" example:"userSkills: category name must not be blank"`
}

// HealthResponse represents health check response
// @Description Server health status
type HealthResponse struct {
	Status    string `json:"status" example:"healthy"`
	Service   string `json:"service" example:"SkillBridge API"`
	Version   string `json:"version" example:"1.0.0"`
	Timestamp string `json:"timestamp" example:"2024-01-15T10:30:00Z"`
}
