package storage

import (
	"context"
	"fmt"
	"time"

	"cloud.google.com/go/firestore"
	"github.com/google/uuid"
	"google.golang.org/api/iterator"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"github.com/forhad-fhj/SkillBridge/config"
	"github.com/forhad-fhj/SkillBridge/models"
)

const (
	usersCollection    = "users"
	jobsCollection     = "jobs"
	analysesCollection = "analyses"
	progressCollection = "progress"
)

// FirestoreClient is a Store backed by Firestore
type FirestoreClient struct {
	client *firestore.Client
}

// NewFirestoreClient creates a new Firestore client
func NewFirestoreClient(ctx context.Context, cfg *config.Config) (*FirestoreClient, error) {
	client, err := firestore.NewClient(ctx, cfg.ProjectID)
	if err != nil {
		return nil, fmt.Errorf("failed to create Firestore client: %w", err)
	}

	return &FirestoreClient{client: client}, nil
}

// Close closes the Firestore client
func (f *FirestoreClient) Close() error {
	return f.client.Close()
}

// ListJobs returns jobs for a domain, or all jobs when domain is empty
func (f *FirestoreClient) ListJobs(ctx context.Context, domain string) ([]models.JobRecord, error) {
	query := f.client.Collection(jobsCollection).Query
	if domain != "" {
		query = query.Where("domain", "==", domain)
	}
	iter := query.OrderBy("createdAt", firestore.Asc).Documents(ctx)
	defer iter.Stop()

	jobs := []models.JobRecord{}
	for {
		doc, err := iter.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("failed to query jobs: %w", err)
		}

		var job models.JobRecord
		if err := doc.DataTo(&job); err != nil {
			return nil, fmt.Errorf("failed to parse job data: %w", err)
		}
		job.ID = doc.Ref.ID
		jobs = append(jobs, job)
	}
	return jobs, nil
}

// ListDomains returns the distinct job domains
func (f *FirestoreClient) ListDomains(ctx context.Context) ([]string, error) {
	iter := f.client.Collection(jobsCollection).Select("domain").Documents(ctx)
	defer iter.Stop()

	var jobs []models.JobRecord
	for {
		doc, err := iter.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("failed to query job domains: %w", err)
		}
		domain, _ := doc.Data()["domain"].(string)
		jobs = append(jobs, models.JobRecord{Domain: domain})
	}
	return sortedDomains(jobs), nil
}

// SaveJob creates or replaces a job document
func (f *FirestoreClient) SaveJob(ctx context.Context, job *models.JobRecord) error {
	if job.ID == "" {
		job.ID = uuid.NewString()
	}
	if job.CreatedAt.IsZero() {
		job.CreatedAt = time.Now()
	}

	if _, err := f.client.Collection(jobsCollection).Doc(job.ID).Set(ctx, job); err != nil {
		return fmt.Errorf("failed to save job: %w", err)
	}
	return nil
}

// SaveAnalysis stores an analysis record
func (f *FirestoreClient) SaveAnalysis(ctx context.Context, record *models.AnalysisRecord) error {
	if record.ID == "" {
		record.ID = uuid.NewString()
	}
	if record.AnalyzedAt.IsZero() {
		record.AnalyzedAt = time.Now()
	}

	if _, err := f.client.Collection(analysesCollection).Doc(record.ID).Set(ctx, record); err != nil {
		return fmt.Errorf("failed to save analysis: %w", err)
	}
	return nil
}

// ListAnalyses returns a user's most recent analyses
func (f *FirestoreClient) ListAnalyses(ctx context.Context, userID string, limit int) ([]models.AnalysisRecord, error) {
	iter := f.client.Collection(analysesCollection).
		Where("userId", "==", userID).
		OrderBy("analyzedAt", firestore.Desc).
		Limit(historyLimit(limit)).
		Documents(ctx)
	defer iter.Stop()

	records := []models.AnalysisRecord{}
	for {
		doc, err := iter.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("failed to query analyses: %w", err)
		}

		var record models.AnalysisRecord
		if err := doc.DataTo(&record); err != nil {
			return nil, fmt.Errorf("failed to parse analysis data: %w", err)
		}
		record.ID = doc.Ref.ID
		records = append(records, record)
	}
	return records, nil
}

// SaveProgress stores a progress snapshot
func (f *FirestoreClient) SaveProgress(ctx context.Context, entry *models.ProgressEntry) error {
	if entry.ID == "" {
		entry.ID = uuid.NewString()
	}
	if entry.AnalyzedAt.IsZero() {
		entry.AnalyzedAt = time.Now()
	}

	if _, err := f.client.Collection(progressCollection).Doc(entry.ID).Set(ctx, entry); err != nil {
		return fmt.Errorf("failed to save progress: %w", err)
	}
	return nil
}

// ListProgress returns a user's most recent progress snapshots
func (f *FirestoreClient) ListProgress(ctx context.Context, userID string, limit int) ([]models.ProgressEntry, error) {
	iter := f.client.Collection(progressCollection).
		Where("userId", "==", userID).
		OrderBy("analyzedAt", firestore.Desc).
		Limit(historyLimit(limit)).
		Documents(ctx)
	defer iter.Stop()

	entries := []models.ProgressEntry{}
	for {
		doc, err := iter.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("failed to query progress: %w", err)
		}

		var entry models.ProgressEntry
		if err := doc.DataTo(&entry); err != nil {
			return nil, fmt.Errorf("failed to parse progress data: %w", err)
		}
		entry.ID = doc.Ref.ID
		entries = append(entries, entry)
	}
	return entries, nil
}

// CreateUser creates a new user in Firestore
func (f *FirestoreClient) CreateUser(ctx context.Context, user *models.User) error {
	user.Email = normalizeEmail(user.Email)
	user.CreatedAt = time.Now()
	user.UpdatedAt = user.CreatedAt

	// Use email as document ID for uniqueness
	docRef := f.client.Collection(usersCollection).Doc(user.Email)
	if _, err := docRef.Create(ctx, user); err != nil {
		if status.Code(err) == codes.AlreadyExists {
			return fmt.Errorf("user with this email %w", ErrAlreadyExists)
		}
		return fmt.Errorf("failed to create user: %w", err)
	}

	user.ID = user.Email
	return nil
}

// GetUserByEmail retrieves a user by email
func (f *FirestoreClient) GetUserByEmail(ctx context.Context, email string) (*models.User, error) {
	doc, err := f.client.Collection(usersCollection).Doc(normalizeEmail(email)).Get(ctx)
	if err != nil {
		if status.Code(err) == codes.NotFound {
			return nil, fmt.Errorf("user %w", ErrNotFound)
		}
		return nil, fmt.Errorf("failed to get user: %w", err)
	}

	var user models.User
	if err := doc.DataTo(&user); err != nil {
		return nil, fmt.Errorf("failed to parse user data: %w", err)
	}

	user.ID = doc.Ref.ID
	return &user, nil
}

// GetUserByGoogleID retrieves a user by Google ID
func (f *FirestoreClient) GetUserByGoogleID(ctx context.Context, googleID string) (*models.User, error) {
	iter := f.client.Collection(usersCollection).Where("googleId", "==", googleID).Limit(1).Documents(ctx)
	defer iter.Stop()

	doc, err := iter.Next()
	if err == iterator.Done {
		return nil, fmt.Errorf("user %w", ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to query user: %w", err)
	}

	var user models.User
	if err := doc.DataTo(&user); err != nil {
		return nil, fmt.Errorf("failed to parse user data: %w", err)
	}

	user.ID = doc.Ref.ID
	return &user, nil
}

// LinkGoogleAccount records a Google ID on an existing user
func (f *FirestoreClient) LinkGoogleAccount(ctx context.Context, email, googleID string) error {
	return f.updateUser(ctx, email, []firestore.Update{
		{Path: "googleId", Value: googleID},
		{Path: "provider", Value: models.ProviderGoogle},
	})
}

// UpdateUserName changes a user's display name
func (f *FirestoreClient) UpdateUserName(ctx context.Context, email, name string) error {
	return f.updateUser(ctx, email, []firestore.Update{{Path: "name", Value: name}})
}

// UpdateResumeURL records the location of a user's uploaded resume
func (f *FirestoreClient) UpdateResumeURL(ctx context.Context, email, resumeURL string) error {
	return f.updateUser(ctx, email, []firestore.Update{{Path: "resumeUrl", Value: resumeURL}})
}

func (f *FirestoreClient) updateUser(ctx context.Context, email string, updates []firestore.Update) error {
	updates = append(updates, firestore.Update{Path: "updatedAt", Value: time.Now()})

	_, err := f.client.Collection(usersCollection).Doc(normalizeEmail(email)).Update(ctx, updates)
	if err != nil {
		if status.Code(err) == codes.NotFound {
			return fmt.Errorf("user %w", ErrNotFound)
		}
		return fmt.Errorf("failed to update user: %w", err)
	}
	return nil
}
