package storage

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/lib/pq"

	"github.com/forhad-fhj/SkillBridge/models"
)

const schema = `
CREATE TABLE IF NOT EXISTS users (
    email       TEXT PRIMARY KEY,
    name        TEXT NOT NULL DEFAULT '',
    password    TEXT NOT NULL DEFAULT '',
    resume_url  TEXT NOT NULL DEFAULT '',
    provider    TEXT NOT NULL DEFAULT 'email',
    google_id   TEXT,
    created_at  TIMESTAMPTZ NOT NULL DEFAULT CURRENT_TIMESTAMP,
    updated_at  TIMESTAMPTZ NOT NULL DEFAULT CURRENT_TIMESTAMP
);
CREATE UNIQUE INDEX IF NOT EXISTS users_google_id_idx ON users (google_id) WHERE google_id IS NOT NULL;

CREATE TABLE IF NOT EXISTS jobs (
    id                UUID PRIMARY KEY,
    title             TEXT NOT NULL,
    company           TEXT NOT NULL DEFAULT '',
    domain            TEXT NOT NULL,
    extracted_skills  JSONB NOT NULL,
    description_text  TEXT NOT NULL DEFAULT '',
    source_url        TEXT NOT NULL DEFAULT '',
    created_at        TIMESTAMPTZ NOT NULL DEFAULT CURRENT_TIMESTAMP
);
CREATE INDEX IF NOT EXISTS jobs_domain_idx ON jobs (domain);

CREATE TABLE IF NOT EXISTS analyses (
    id                 UUID PRIMARY KEY,
    user_id            TEXT NOT NULL,
    domain             TEXT NOT NULL DEFAULT '',
    readiness_score    INTEGER NOT NULL,
    skill_count        INTEGER NOT NULL,
    matched_skills     JSONB NOT NULL,
    missing_skills     JSONB NOT NULL,
    generated_roadmap  TEXT NOT NULL,
    analyzed_at        TIMESTAMPTZ NOT NULL
);
CREATE INDEX IF NOT EXISTS analyses_user_idx ON analyses (user_id, analyzed_at DESC);

CREATE TABLE IF NOT EXISTS progress (
    id               UUID PRIMARY KEY,
    user_id          TEXT NOT NULL,
    readiness_score  INTEGER NOT NULL,
    skill_count      INTEGER NOT NULL,
    domain           TEXT NOT NULL DEFAULT '',
    analyzed_at      TIMESTAMPTZ NOT NULL
);
CREATE INDEX IF NOT EXISTS progress_user_idx ON progress (user_id, analyzed_at DESC);
`

// PostgresStore is a Store backed by PostgreSQL
type PostgresStore struct {
	db *sql.DB
}

// NewPostgresStore opens a connection pool and applies the schema
func NewPostgresStore(ctx context.Context, databaseURL string) (*PostgresStore, error) {
	db, err := sql.Open("postgres", databaseURL)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}
	db.SetMaxOpenConns(10)
	db.SetConnMaxIdleTime(5 * time.Minute)

	if err := db.PingContext(ctx); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	s := &PostgresStore{db: db}
	if err := s.Migrate(ctx); err != nil {
		db.Close()
		return nil, err
	}
	return s, nil
}

// Migrate creates tables and indexes that do not exist yet
func (s *PostgresStore) Migrate(ctx context.Context) error {
	if _, err := s.db.ExecContext(ctx, schema); err != nil {
		return fmt.Errorf("failed to apply schema: %w", err)
	}
	return nil
}

// Close closes the connection pool
func (s *PostgresStore) Close() error {
	return s.db.Close()
}

const listJobs = `-- name: ListJobs :many
SELECT id, title, company, domain, extracted_skills, description_text, source_url, created_at
FROM jobs
WHERE $1 = '' OR domain = $1
ORDER BY created_at, id
`

// ListJobs returns jobs for a domain, or all jobs when domain is empty
func (s *PostgresStore) ListJobs(ctx context.Context, domain string) ([]models.JobRecord, error) {
	rows, err := s.db.QueryContext(ctx, listJobs, domain)
	if err != nil {
		return nil, fmt.Errorf("failed to query jobs: %w", err)
	}
	defer rows.Close()

	jobs := []models.JobRecord{}
	for rows.Next() {
		var (
			job    models.JobRecord
			skills []byte
		)
		if err := rows.Scan(&job.ID, &job.Title, &job.Company, &job.Domain, &skills,
			&job.DescriptionText, &job.SourceURL, &job.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan job: %w", err)
		}
		if err := json.Unmarshal(skills, &job.ExtractedSkills); err != nil {
			return nil, fmt.Errorf("failed to decode job skills: %w", err)
		}
		jobs = append(jobs, job)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read jobs: %w", err)
	}
	return jobs, nil
}

const listDomains = `-- name: ListDomains :many
SELECT DISTINCT domain FROM jobs WHERE domain <> '' ORDER BY domain
`

// ListDomains returns the distinct job domains
func (s *PostgresStore) ListDomains(ctx context.Context) ([]string, error) {
	rows, err := s.db.QueryContext(ctx, listDomains)
	if err != nil {
		return nil, fmt.Errorf("failed to query job domains: %w", err)
	}
	defer rows.Close()

	domains := []string{}
	for rows.Next() {
		var d string
		if err := rows.Scan(&d); err != nil {
			return nil, fmt.Errorf("failed to scan domain: %w", err)
		}
		domains = append(domains, d)
	}
	return domains, rows.Err()
}

const upsertJob = `-- name: UpsertJob :exec
INSERT INTO jobs (id, title, company, domain, extracted_skills, description_text, source_url, created_at)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
ON CONFLICT (id)
DO UPDATE SET
    title = EXCLUDED.title,
    company = EXCLUDED.company,
    domain = EXCLUDED.domain,
    extracted_skills = EXCLUDED.extracted_skills,
    description_text = EXCLUDED.description_text,
    source_url = EXCLUDED.source_url
`

// SaveJob creates or replaces a job
func (s *PostgresStore) SaveJob(ctx context.Context, job *models.JobRecord) error {
	id := recordID(job.ID)
	if job.CreatedAt.IsZero() {
		job.CreatedAt = time.Now()
	}
	skills, err := json.Marshal(job.ExtractedSkills)
	if err != nil {
		return fmt.Errorf("failed to encode job skills: %w", err)
	}

	_, err = s.db.ExecContext(ctx, upsertJob, id, job.Title, job.Company, job.Domain, skills,
		job.DescriptionText, job.SourceURL, job.CreatedAt)
	if err != nil {
		return fmt.Errorf("failed to save job: %w", err)
	}
	job.ID = id.String()
	return nil
}

const insertAnalysis = `-- name: InsertAnalysis :exec
INSERT INTO analyses (id, user_id, domain, readiness_score, skill_count, matched_skills, missing_skills, generated_roadmap, analyzed_at)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
`

// SaveAnalysis stores an analysis record
func (s *PostgresStore) SaveAnalysis(ctx context.Context, record *models.AnalysisRecord) error {
	id := recordID(record.ID)
	if record.AnalyzedAt.IsZero() {
		record.AnalyzedAt = time.Now()
	}
	matched, err := json.Marshal(record.MatchedSkills)
	if err != nil {
		return fmt.Errorf("failed to encode matched skills: %w", err)
	}
	missing, err := json.Marshal(record.MissingSkills)
	if err != nil {
		return fmt.Errorf("failed to encode missing skills: %w", err)
	}

	_, err = s.db.ExecContext(ctx, insertAnalysis, id, record.UserID, record.Domain, record.ReadinessScore,
		record.SkillCount, matched, missing, record.GeneratedRoadmap, record.AnalyzedAt)
	if err != nil {
		return fmt.Errorf("failed to save analysis: %w", err)
	}
	record.ID = id.String()
	return nil
}

const listAnalyses = `-- name: ListAnalyses :many
SELECT id, user_id, domain, readiness_score, skill_count, matched_skills, missing_skills, generated_roadmap, analyzed_at
FROM analyses
WHERE user_id = $1
ORDER BY analyzed_at DESC
LIMIT $2
`

// ListAnalyses returns a user's most recent analyses
func (s *PostgresStore) ListAnalyses(ctx context.Context, userID string, limit int) ([]models.AnalysisRecord, error) {
	rows, err := s.db.QueryContext(ctx, listAnalyses, userID, historyLimit(limit))
	if err != nil {
		return nil, fmt.Errorf("failed to query analyses: %w", err)
	}
	defer rows.Close()

	records := []models.AnalysisRecord{}
	for rows.Next() {
		var (
			r                models.AnalysisRecord
			matched, missing []byte
		)
		if err := rows.Scan(&r.ID, &r.UserID, &r.Domain, &r.ReadinessScore, &r.SkillCount,
			&matched, &missing, &r.GeneratedRoadmap, &r.AnalyzedAt); err != nil {
			return nil, fmt.Errorf("failed to scan analysis: %w", err)
		}
		if err := json.Unmarshal(matched, &r.MatchedSkills); err != nil {
			return nil, fmt.Errorf("failed to decode matched skills: %w", err)
		}
		if err := json.Unmarshal(missing, &r.MissingSkills); err != nil {
			return nil, fmt.Errorf("failed to decode missing skills: %w", err)
		}
		records = append(records, r)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read analyses: %w", err)
	}
	return records, nil
}

const insertProgress = `-- name: InsertProgress :exec
INSERT INTO progress (id, user_id, readiness_score, skill_count, domain, analyzed_at)
VALUES ($1, $2, $3, $4, $5, $6)
`

// SaveProgress stores a progress snapshot
func (s *PostgresStore) SaveProgress(ctx context.Context, entry *models.ProgressEntry) error {
	id := recordID(entry.ID)
	if entry.AnalyzedAt.IsZero() {
		entry.AnalyzedAt = time.Now()
	}

	_, err := s.db.ExecContext(ctx, insertProgress, id, entry.UserID, entry.ReadinessScore,
		entry.SkillCount, entry.Domain, entry.AnalyzedAt)
	if err != nil {
		return fmt.Errorf("failed to save progress: %w", err)
	}
	entry.ID = id.String()
	return nil
}

const listProgress = `-- name: ListProgress :many
SELECT id, user_id, readiness_score, skill_count, domain, analyzed_at
FROM progress
WHERE user_id = $1
ORDER BY analyzed_at DESC
LIMIT $2
`

// ListProgress returns a user's most recent progress snapshots
func (s *PostgresStore) ListProgress(ctx context.Context, userID string, limit int) ([]models.ProgressEntry, error) {
	rows, err := s.db.QueryContext(ctx, listProgress, userID, historyLimit(limit))
	if err != nil {
		return nil, fmt.Errorf("failed to query progress: %w", err)
	}
	defer rows.Close()

	entries := []models.ProgressEntry{}
	for rows.Next() {
		var e models.ProgressEntry
		if err := rows.Scan(&e.ID, &e.UserID, &e.ReadinessScore, &e.SkillCount, &e.Domain, &e.AnalyzedAt); err != nil {
			return nil, fmt.Errorf("failed to scan progress: %w", err)
		}
		entries = append(entries, e)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read progress: %w", err)
	}
	return entries, nil
}

const createUser = `-- name: CreateUser :one
INSERT INTO users (email, name, password, resume_url, provider, google_id)
VALUES ($1, $2, $3, $4, $5, NULLIF($6, ''))
RETURNING created_at, updated_at
`

// CreateUser stores a new user keyed by email
func (s *PostgresStore) CreateUser(ctx context.Context, user *models.User) error {
	user.Email = normalizeEmail(user.Email)

	err := s.db.QueryRowContext(ctx, createUser, user.Email, user.Name, user.Password,
		user.ResumeURL, user.Provider, user.GoogleID).Scan(&user.CreatedAt, &user.UpdatedAt)
	if err != nil {
		var pqErr *pq.Error
		if errors.As(err, &pqErr) && pqErr.Code == "23505" {
			return fmt.Errorf("user with this email %w", ErrAlreadyExists)
		}
		return fmt.Errorf("failed to create user: %w", err)
	}
	user.ID = user.Email
	return nil
}

const userColumns = `email, name, password, resume_url, provider, COALESCE(google_id, ''), created_at, updated_at`

// GetUserByEmail retrieves a user by email
func (s *PostgresStore) GetUserByEmail(ctx context.Context, email string) (*models.User, error) {
	return s.getUser(ctx, `SELECT `+userColumns+` FROM users WHERE email = $1`, normalizeEmail(email))
}

// GetUserByGoogleID retrieves a user by Google ID
func (s *PostgresStore) GetUserByGoogleID(ctx context.Context, googleID string) (*models.User, error) {
	return s.getUser(ctx, `SELECT `+userColumns+` FROM users WHERE google_id = $1`, googleID)
}

func (s *PostgresStore) getUser(ctx context.Context, query string, arg string) (*models.User, error) {
	var u models.User
	err := s.db.QueryRowContext(ctx, query, arg).Scan(&u.Email, &u.Name, &u.Password,
		&u.ResumeURL, &u.Provider, &u.GoogleID, &u.CreatedAt, &u.UpdatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("user %w", ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get user: %w", err)
	}
	u.ID = u.Email
	return &u, nil
}

// LinkGoogleAccount records a Google ID on an existing user
func (s *PostgresStore) LinkGoogleAccount(ctx context.Context, email, googleID string) error {
	return s.updateUser(ctx, `UPDATE users SET google_id = $2, provider = 'google', updated_at = CURRENT_TIMESTAMP WHERE email = $1`, email, googleID)
}

// UpdateUserName changes a user's display name
func (s *PostgresStore) UpdateUserName(ctx context.Context, email, name string) error {
	return s.updateUser(ctx, `UPDATE users SET name = $2, updated_at = CURRENT_TIMESTAMP WHERE email = $1`, email, name)
}

// UpdateResumeURL records the location of a user's uploaded resume
func (s *PostgresStore) UpdateResumeURL(ctx context.Context, email, resumeURL string) error {
	return s.updateUser(ctx, `UPDATE users SET resume_url = $2, updated_at = CURRENT_TIMESTAMP WHERE email = $1`, email, resumeURL)
}

func (s *PostgresStore) updateUser(ctx context.Context, query, email, value string) error {
	res, err := s.db.ExecContext(ctx, query, normalizeEmail(email), value)
	if err != nil {
		return fmt.Errorf("failed to update user: %w", err)
	}
	if n, err := res.RowsAffected(); err == nil && n == 0 {
		return fmt.Errorf("user %w", ErrNotFound)
	}
	return nil
}

// recordID parses id, or generates one when id is empty. Non-UUID ids
// (such as the built-in market's) map to a stable name-based UUID.
func recordID(id string) uuid.UUID {
	if id == "" {
		return uuid.New()
	}
	if parsed, err := uuid.Parse(id); err == nil {
		return parsed
	}
	return uuid.NewSHA1(uuid.NameSpaceURL, []byte("skillbridge:"+id))
}
