package storage

import (
	"context"
	"fmt"
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/forhad-fhj/SkillBridge/models"
)

// MemoryStore is an in-process Store used for local runs and tests
type MemoryStore struct {
	mu       sync.RWMutex
	jobs     []models.JobRecord
	analyses []models.AnalysisRecord
	progress []models.ProgressEntry
	users    map[string]models.User
	now      func() time.Time
}

// NewMemoryStore creates an empty in-memory store
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		users: make(map[string]models.User),
		now:   time.Now,
	}
}

// Close is a no-op
func (m *MemoryStore) Close() error {
	return nil
}

// ListJobs returns stored jobs in insertion order
func (m *MemoryStore) ListJobs(ctx context.Context, domain string) ([]models.JobRecord, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	jobs := []models.JobRecord{}
	for _, j := range m.jobs {
		if domain == "" || j.Domain == domain {
			jobs = append(jobs, copyJob(j))
		}
	}
	return jobs, nil
}

// ListDomains returns the distinct job domains
func (m *MemoryStore) ListDomains(ctx context.Context) ([]string, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return sortedDomains(m.jobs), nil
}

// SaveJob stores a job, assigning an ID and creation time when missing
func (m *MemoryStore) SaveJob(ctx context.Context, job *models.JobRecord) error {
	if job.ID == "" {
		job.ID = uuid.NewString()
	}
	if job.CreatedAt.IsZero() {
		job.CreatedAt = m.now()
	}

	m.mu.Lock()
	defer m.mu.Unlock()
	for i := range m.jobs {
		if m.jobs[i].ID == job.ID {
			m.jobs[i] = copyJob(*job)
			return nil
		}
	}
	m.jobs = append(m.jobs, copyJob(*job))
	return nil
}

// SaveAnalysis appends an analysis record
func (m *MemoryStore) SaveAnalysis(ctx context.Context, record *models.AnalysisRecord) error {
	if record.ID == "" {
		record.ID = uuid.NewString()
	}
	if record.AnalyzedAt.IsZero() {
		record.AnalyzedAt = m.now()
	}

	m.mu.Lock()
	defer m.mu.Unlock()
	m.analyses = append(m.analyses, *record)
	return nil
}

// ListAnalyses returns a user's most recent analyses
func (m *MemoryStore) ListAnalyses(ctx context.Context, userID string, limit int) ([]models.AnalysisRecord, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	out := []models.AnalysisRecord{}
	for _, r := range m.analyses {
		if r.UserID == userID {
			out = append(out, r)
		}
	}
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].AnalyzedAt.After(out[j].AnalyzedAt)
	})
	if n := historyLimit(limit); len(out) > n {
		out = out[:n]
	}
	return out, nil
}

// SaveProgress appends a progress snapshot
func (m *MemoryStore) SaveProgress(ctx context.Context, entry *models.ProgressEntry) error {
	if entry.ID == "" {
		entry.ID = uuid.NewString()
	}
	if entry.AnalyzedAt.IsZero() {
		entry.AnalyzedAt = m.now()
	}

	m.mu.Lock()
	defer m.mu.Unlock()
	m.progress = append(m.progress, *entry)
	return nil
}

// ListProgress returns a user's most recent progress snapshots
func (m *MemoryStore) ListProgress(ctx context.Context, userID string, limit int) ([]models.ProgressEntry, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	out := []models.ProgressEntry{}
	for _, e := range m.progress {
		if e.UserID == userID {
			out = append(out, e)
		}
	}
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].AnalyzedAt.After(out[j].AnalyzedAt)
	})
	if n := historyLimit(limit); len(out) > n {
		out = out[:n]
	}
	return out, nil
}

// CreateUser stores a new user keyed by email
func (m *MemoryStore) CreateUser(ctx context.Context, user *models.User) error {
	key := normalizeEmail(user.Email)

	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.users[key]; ok {
		return fmt.Errorf("user with this email %w", ErrAlreadyExists)
	}

	now := m.now()
	user.Email = key
	user.ID = key
	user.CreatedAt = now
	user.UpdatedAt = now
	m.users[key] = *user
	return nil
}

// GetUserByEmail retrieves a user by email
func (m *MemoryStore) GetUserByEmail(ctx context.Context, email string) (*models.User, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	u, ok := m.users[normalizeEmail(email)]
	if !ok {
		return nil, fmt.Errorf("user %w", ErrNotFound)
	}
	return &u, nil
}

// GetUserByGoogleID retrieves a user by Google ID
func (m *MemoryStore) GetUserByGoogleID(ctx context.Context, googleID string) (*models.User, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	for _, u := range m.users {
		if googleID != "" && u.GoogleID == googleID {
			return &u, nil
		}
	}
	return nil, fmt.Errorf("user %w", ErrNotFound)
}

// LinkGoogleAccount records a Google ID on an existing user
func (m *MemoryStore) LinkGoogleAccount(ctx context.Context, email, googleID string) error {
	return m.update(email, func(u *models.User) {
		u.GoogleID = googleID
		u.Provider = models.ProviderGoogle
	})
}

// UpdateUserName changes a user's display name
func (m *MemoryStore) UpdateUserName(ctx context.Context, email, name string) error {
	return m.update(email, func(u *models.User) {
		u.Name = name
	})
}

// UpdateResumeURL records the location of a user's uploaded resume
func (m *MemoryStore) UpdateResumeURL(ctx context.Context, email, resumeURL string) error {
	return m.update(email, func(u *models.User) {
		u.ResumeURL = resumeURL
	})
}

func (m *MemoryStore) update(email string, fn func(*models.User)) error {
	key := normalizeEmail(email)

	m.mu.Lock()
	defer m.mu.Unlock()
	u, ok := m.users[key]
	if !ok {
		return fmt.Errorf("user %w", ErrNotFound)
	}
	fn(&u)
	u.UpdatedAt = m.now()
	m.users[key] = u
	return nil
}

func copyJob(j models.JobRecord) models.JobRecord {
	if j.ExtractedSkills != nil {
		skills := make(models.SkillSet, len(j.ExtractedSkills))
		for k, v := range j.ExtractedSkills {
			if v != nil {
				skills[k] = append([]string{}, v...)
			} else {
				skills[k] = nil
			}
		}
		j.ExtractedSkills = skills
	}
	return j
}
