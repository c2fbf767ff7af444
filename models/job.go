package models

import "time"

// JobRecord is one market data point: a posting and the skills extracted from it
type JobRecord struct {
	ID              string    `json:"id" firestore:"-"`
	Title           string    `json:"title" firestore:"title"`
	Company         string    `json:"company" firestore:"company"`
	Domain          string    `json:"domain" firestore:"domain"`
	ExtractedSkills SkillSet  `json:"extractedSkills" firestore:"extractedSkills"`
	DescriptionText string    `json:"descriptionText,omitempty" firestore:"descriptionText,omitempty"`
	SourceURL       string    `json:"sourceUrl,omitempty" firestore:"sourceUrl,omitempty"`
	CreatedAt       time.Time `json:"createdAt,omitempty" firestore:"createdAt"`
}

// Domain constants for the built-in market data
const (
	DomainFrontend  = "Frontend Developer"
	DomainBackend   = "Backend Developer"
	DomainData      = "Data Analyst"
	DomainFullStack = "Full Stack Developer"
	DomainMobile    = "Mobile Developer"
)
