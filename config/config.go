package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"
)

// Storage backends
const (
	StorageMemory    = "memory"
	StorageFirestore = "firestore"
	StoragePostgres  = "postgres"
)

// Blob backends
const (
	BlobNone = "none"
	BlobGCS  = "gcs"
	BlobR2   = "r2"
)

// Skill extractors
const (
	ExtractorTaxonomy = "taxonomy"
	ExtractorGemini   = "gemini"
)

const defaultJWTSecret = "your-secret-key-change-in-production"

// Config holds all configuration for the application
type Config struct {
	// Server
	Port               string
	Debug              bool
	HTTPTimeoutSeconds int
	AllowedOrigins     []string

	// Google Cloud
	ProjectID string
	Location  string

	// Persistence
	StorageBackend string
	DatabaseURL    string

	// Resume storage
	BlobBackend  string
	CVBucketName string
	R2AccountID  string
	R2Bucket     string
	R2AccessKey  string
	R2SecretKey  string

	// Events
	RabbitMQURL    string
	EventsExchange string

	// Document parsing
	ParserBaseURL   string
	ParserTimeoutMS int
	SkillExtractor  string
	GeminiModel     string

	// Engine
	SkillAliases        string // "default", "none", or a JSON/YAML alias file
	ResourceCatalogPath string
	RoleCatalogPath     string
	RoadmapMaxResources int
	RoadmapTopK         int
	CriticalFrequency   int
	HighFrequency       int
	DefaultDomain       string

	// Authentication
	JWTSecret          string
	JWTExpiryHours     int
	GoogleClientID     string
	GoogleHostedDomain string // restricts Google sign-in to one Workspace domain
}

// Load loads configuration from environment variables
func Load() *Config {
	cfg := &Config{
		// Server
		Port:               getEnv("PORT", "8080"),
		Debug:              getEnvBool("DEBUG", false),
		HTTPTimeoutSeconds: getEnvInt("HTTP_TIMEOUT_SECONDS", 30),
		AllowedOrigins:     getEnvList("ALLOWED_ORIGINS", []string{"*"}),

		// Google Cloud
		ProjectID: getEnv("PROJECT_ID", ""),
		Location:  getEnv("LOCATION", "us-central1"),

		// Persistence
		StorageBackend: strings.ToLower(getEnv("STORAGE_BACKEND", StorageMemory)),
		DatabaseURL:    getEnv("DATABASE_URL", ""),

		// Resume storage
		BlobBackend:  strings.ToLower(getEnv("BLOB_BACKEND", BlobNone)),
		CVBucketName: getEnv("CV_BUCKET_NAME", ""),
		R2AccountID:  getEnv("R2_ACCOUNT_ID", ""),
		R2Bucket:     getEnv("R2_BUCKET", ""),
		R2AccessKey:  getEnv("R2_ACCESS_KEY", ""),
		R2SecretKey:  getEnv("R2_SECRET_KEY", ""),

		// Events
		RabbitMQURL:    getEnv("RABBITMQ_URL", ""),
		EventsExchange: getEnv("EVENTS_EXCHANGE", "skillbridge.events"),

		// Document parsing
		ParserBaseURL:   getEnv("PARSER_BASE_URL", ""),
		ParserTimeoutMS: getEnvInt("PARSER_TIMEOUT_MS", 30000),
		SkillExtractor:  strings.ToLower(getEnv("SKILL_EXTRACTOR", ExtractorTaxonomy)),
		GeminiModel:     getEnv("GEMINI_MODEL", "gemini-2.5-flash"),

		// Engine
		SkillAliases:        getEnv("SKILL_ALIASES", "default"),
		ResourceCatalogPath: getEnv("RESOURCE_CATALOG_PATH", ""),
		RoleCatalogPath:     getEnv("ROLE_CATALOG_PATH", ""),
		RoadmapMaxResources: getEnvInt("ROADMAP_MAX_RESOURCES", 3),
		RoadmapTopK:         getEnvInt("ROADMAP_TOP_K", 0),
		CriticalFrequency:   getEnvInt("CRITICAL_FREQUENCY", 0),
		HighFrequency:       getEnvInt("HIGH_FREQUENCY", 0),
		DefaultDomain:       getEnv("DEFAULT_DOMAIN", "Frontend Developer"),

		// Authentication
		JWTSecret:          getEnv("JWT_SECRET", defaultJWTSecret),
		JWTExpiryHours:     getEnvInt("JWT_EXPIRY_HOURS", 24),
		GoogleClientID:     getEnv("GOOGLE_CLIENT_ID", ""),
		GoogleHostedDomain: getEnv("GOOGLE_HOSTED_DOMAIN", ""),
	}

	return cfg
}

// Validate checks that the selected backends have what they need
func (c *Config) Validate() error {
	switch c.StorageBackend {
	case StorageMemory:
	case StorageFirestore:
		if c.ProjectID == "" {
			return &ConfigError{Field: "PROJECT_ID", Message: "PROJECT_ID is required for Firestore storage"}
		}
	case StoragePostgres:
		if c.DatabaseURL == "" {
			return &ConfigError{Field: "DATABASE_URL", Message: "DATABASE_URL is required for postgres storage"}
		}
	default:
		return &ConfigError{Field: "STORAGE_BACKEND", Message: fmt.Sprintf("unknown storage backend %q", c.StorageBackend)}
	}

	switch c.BlobBackend {
	case BlobNone, "":
	case BlobGCS:
		if c.CVBucketName == "" {
			return &ConfigError{Field: "CV_BUCKET_NAME", Message: "CV_BUCKET_NAME is required for gcs resume storage"}
		}
	case BlobR2:
		required := []struct{ field, value string }{
			{"R2_ACCOUNT_ID", c.R2AccountID},
			{"R2_BUCKET", c.R2Bucket},
			{"R2_ACCESS_KEY", c.R2AccessKey},
			{"R2_SECRET_KEY", c.R2SecretKey},
		}
		for _, r := range required {
			if r.value == "" {
				return &ConfigError{Field: r.field, Message: r.field + " is required for r2 resume storage"}
			}
		}
	default:
		return &ConfigError{Field: "BLOB_BACKEND", Message: fmt.Sprintf("unknown blob backend %q", c.BlobBackend)}
	}

	switch c.SkillExtractor {
	case ExtractorTaxonomy:
	case ExtractorGemini:
		if c.ProjectID == "" {
			return &ConfigError{Field: "PROJECT_ID", Message: "PROJECT_ID is required for the gemini skill extractor"}
		}
	default:
		return &ConfigError{Field: "SKILL_EXTRACTOR", Message: fmt.Sprintf("unknown skill extractor %q", c.SkillExtractor)}
	}

	if c.RoadmapMaxResources < 0 || c.RoadmapTopK < 0 || c.CriticalFrequency < 0 || c.HighFrequency < 0 {
		return &ConfigError{Field: "ROADMAP", Message: "roadmap limits and frequency thresholds must not be negative"}
	}

	if !c.Debug && c.JWTSecret == defaultJWTSecret {
		return &ConfigError{Field: "JWT_SECRET", Message: "JWT_SECRET must be set outside debug mode"}
	}

	return nil
}

// ParserTimeout returns the parser service timeout
func (c *Config) ParserTimeout() time.Duration {
	return time.Duration(c.ParserTimeoutMS) * time.Millisecond
}

// HTTPTimeout returns the server read/write timeout
func (c *Config) HTTPTimeout() time.Duration {
	return time.Duration(c.HTTPTimeoutSeconds) * time.Second
}

// ConfigError represents a configuration error
type ConfigError struct {
	Field   string
	Message string
}

func (e *ConfigError) Error() string {
	return e.Message
}

// Helper functions

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvBool(key string, defaultValue bool) bool {
	if value := os.Getenv(key); value != "" {
		if parsed, err := strconv.ParseBool(value); err == nil {
			return parsed
		}
	}
	return defaultValue
}

func getEnvInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if parsed, err := strconv.Atoi(value); err == nil {
			return parsed
		}
	}
	return defaultValue
}

func getEnvList(key string, defaultValue []string) []string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	var out []string
	for _, item := range strings.Split(value, ",") {
		if item = strings.TrimSpace(item); item != "" {
			out = append(out, item)
		}
	}
	if len(out) == 0 {
		return defaultValue
	}
	return out
}
