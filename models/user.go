package models

import "time"

// User represents a SkillBridge account
// @Description User account information
type User struct {
	ID        string    `json:"id" firestore:"-" example:"user@example.com"`
	Email     string    `json:"email" firestore:"email" example:"user@example.com"`
	Name      string    `json:"name" firestore:"name" example:"Nadia Rahman"`
	Password  string    `json:"-" firestore:"password"` // bcrypt hash, never sent to client
	ResumeURL string    `json:"resumeUrl,omitempty" firestore:"resumeUrl"`
	Provider  string    `json:"provider" firestore:"provider" example:"email"` // "email" or "google"
	GoogleID  string    `json:"-" firestore:"googleId,omitempty"`
	CreatedAt time.Time `json:"createdAt" firestore:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt" firestore:"updatedAt"`
}

// Auth providers
const (
	ProviderEmail  = "email"
	ProviderGoogle = "google"
)

// RegisterRequest represents registration request
type RegisterRequest struct {
	Email    string `json:"email" binding:"required,email" example:"user@example.com"`
	Password string `json:"password" binding:"required,min=6" example:"password123"`
	Name     string `json:"name" binding:"required" example:"Nadia Rahman"`
}

// LoginRequest represents login request
type LoginRequest struct {
	Email    string `json:"email" binding:"required,email" example:"user@example.com"`
	Password string `json:"password" binding:"required" example:"password123"`
}

// GoogleAuthRequest represents Google SSO authentication request
type GoogleAuthRequest struct {
	IDToken string `json:"idToken" binding:"required"`
}

// AuthResponse represents authentication response with JWT token
type AuthResponse struct {
	Token   string `json:"token"`
	User    *User  `json:"user"`
	Message string `json:"message,omitempty" example:"Login successful"`
}

// UpdateProfileRequest represents profile update request
type UpdateProfileRequest struct {
	Name string `json:"name" binding:"required" example:"Nadia Rahman"`
}

// ProfileResponse represents user profile response
type ProfileResponse struct {
	User    *User  `json:"user"`
	Message string `json:"message,omitempty" example:"Profile updated successfully"`
}
