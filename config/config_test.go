package config

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	for _, key := range []string{"PORT", "STORAGE_BACKEND", "BLOB_BACKEND", "SKILL_EXTRACTOR", "ALLOWED_ORIGINS", "ROADMAP_MAX_RESOURCES", "PARSER_TIMEOUT_MS"} {
		t.Setenv(key, "")
	}

	cfg := Load()
	assert.Equal(t, "8080", cfg.Port)
	assert.Equal(t, StorageMemory, cfg.StorageBackend)
	assert.Equal(t, BlobNone, cfg.BlobBackend)
	assert.Equal(t, ExtractorTaxonomy, cfg.SkillExtractor)
	assert.Equal(t, []string{"*"}, cfg.AllowedOrigins)
	assert.Equal(t, 3, cfg.RoadmapMaxResources)
	assert.Equal(t, 30*time.Second, cfg.ParserTimeout())
}

func TestLoad_FromEnv(t *testing.T) {
	t.Setenv("STORAGE_BACKEND", "Postgres")
	t.Setenv("DATABASE_URL", "postgres://localhost/skillbridge")
	t.Setenv("ALLOWED_ORIGINS", "http://localhost:3000, https://skillbridge.app ,")
	t.Setenv("ROADMAP_TOP_K", "5")
	t.Setenv("CRITICAL_FREQUENCY", "not-a-number")
	t.Setenv("DEBUG", "true")
	t.Setenv("PARSER_TIMEOUT_MS", "1500")

	cfg := Load()
	assert.Equal(t, StoragePostgres, cfg.StorageBackend)
	assert.Equal(t, []string{"http://localhost:3000", "https://skillbridge.app"}, cfg.AllowedOrigins)
	assert.Equal(t, 5, cfg.RoadmapTopK)
	assert.Equal(t, 0, cfg.CriticalFrequency)
	assert.True(t, cfg.Debug)
	assert.Equal(t, 1500*time.Millisecond, cfg.ParserTimeout())
	assert.NoError(t, cfg.Validate())
}

func validConfig() *Config {
	return &Config{
		StorageBackend: StorageMemory,
		BlobBackend:    BlobNone,
		SkillExtractor: ExtractorTaxonomy,
		JWTSecret:      "secret",
	}
}

func TestValidate(t *testing.T) {
	cases := []struct {
		name   string
		mutate func(*Config)
		field  string
	}{
		{"firestore needs project", func(c *Config) { c.StorageBackend = StorageFirestore }, "PROJECT_ID"},
		{"postgres needs url", func(c *Config) { c.StorageBackend = StoragePostgres }, "DATABASE_URL"},
		{"unknown storage", func(c *Config) { c.StorageBackend = "mysql" }, "STORAGE_BACKEND"},
		{"gcs needs bucket", func(c *Config) { c.BlobBackend = BlobGCS }, "CV_BUCKET_NAME"},
		{"r2 needs account", func(c *Config) { c.BlobBackend = BlobR2 }, "R2_ACCOUNT_ID"},
		{"r2 needs secret", func(c *Config) {
			c.BlobBackend = BlobR2
			c.R2AccountID, c.R2Bucket, c.R2AccessKey = "acct", "bucket", "key"
		}, "R2_SECRET_KEY"},
		{"unknown blob", func(c *Config) { c.BlobBackend = "s3" }, "BLOB_BACKEND"},
		{"gemini needs project", func(c *Config) { c.SkillExtractor = ExtractorGemini }, "PROJECT_ID"},
		{"unknown extractor", func(c *Config) { c.SkillExtractor = "spacy" }, "SKILL_EXTRACTOR"},
		{"negative limits", func(c *Config) { c.RoadmapTopK = -1 }, "ROADMAP"},
		{"default secret outside debug", func(c *Config) { c.JWTSecret = defaultJWTSecret }, "JWT_SECRET"},
	}

	require.NoError(t, validConfig().Validate())

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			cfg := validConfig()
			tc.mutate(cfg)

			err := cfg.Validate()
			var cfgErr *ConfigError
			require.True(t, errors.As(err, &cfgErr), "got %v", err)
			assert.Equal(t, tc.field, cfgErr.Field)
		})
	}
}

func TestValidate_DefaultSecretAllowedInDebug(t *testing.T) {
	cfg := validConfig()
	cfg.JWTSecret = defaultJWTSecret
	cfg.Debug = true
	assert.NoError(t, cfg.Validate())
}
