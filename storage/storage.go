package storage

import (
	"context"
	"errors"
	"sort"
	"strings"
	"time"

	"github.com/forhad-fhj/SkillBridge/models"
)

var (
	// ErrNotFound is returned when a requested record does not exist
	ErrNotFound = errors.New("not found")
	// ErrAlreadyExists is returned when creating a record whose key is taken
	ErrAlreadyExists = errors.New("already exists")
)

// DefaultHistoryLimit is the number of records history queries return
const DefaultHistoryLimit = 10

// JobRepository stores job postings used as market data
type JobRepository interface {
	// ListJobs returns jobs for a domain, or all jobs when domain is empty
	ListJobs(ctx context.Context, domain string) ([]models.JobRecord, error)
	ListDomains(ctx context.Context) ([]string, error)
	SaveJob(ctx context.Context, job *models.JobRecord) error
}

// ResultStore keeps analysis history and progress snapshots per user.
// List methods return newest first.
type ResultStore interface {
	SaveAnalysis(ctx context.Context, record *models.AnalysisRecord) error
	ListAnalyses(ctx context.Context, userID string, limit int) ([]models.AnalysisRecord, error)
	SaveProgress(ctx context.Context, entry *models.ProgressEntry) error
	ListProgress(ctx context.Context, userID string, limit int) ([]models.ProgressEntry, error)
}

// UserStore persists accounts. Users are keyed by email.
type UserStore interface {
	CreateUser(ctx context.Context, user *models.User) error
	GetUserByEmail(ctx context.Context, email string) (*models.User, error)
	GetUserByGoogleID(ctx context.Context, googleID string) (*models.User, error)
	LinkGoogleAccount(ctx context.Context, email, googleID string) error
	UpdateUserName(ctx context.Context, email, name string) error
	UpdateResumeURL(ctx context.Context, email, resumeURL string) error
}

// Store bundles every repository a backend provides
type Store interface {
	JobRepository
	ResultStore
	UserStore
	Close() error
}

// BlobStore keeps uploaded resume files
type BlobStore interface {
	UploadResume(ctx context.Context, userEmail, filename, contentType string, data []byte) (string, error)
	Close() error
}

// normalizeEmail is the user key used by every backend
func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

// resumeObjectName builds the object key for an uploaded resume
func resumeObjectName(userEmail, ext string, now time.Time) string {
	sanitized := strings.ReplaceAll(normalizeEmail(userEmail), "@", "_at_")
	sanitized = strings.ReplaceAll(sanitized, ".", "_")
	return "resumes/" + sanitized + "/" + now.UTC().Format("20060102T150405") + strings.ToLower(ext)
}

// sortedDomains returns the distinct non-empty domains of jobs
func sortedDomains(jobs []models.JobRecord) []string {
	seen := make(map[string]bool)
	domains := []string{}
	for _, j := range jobs {
		if j.Domain != "" && !seen[j.Domain] {
			seen[j.Domain] = true
			domains = append(domains, j.Domain)
		}
	}
	sort.Strings(domains)
	return domains
}

func historyLimit(limit int) int {
	if limit <= 0 {
		return DefaultHistoryLimit
	}
	return limit
}
