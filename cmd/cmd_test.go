package cmd

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/forhad-fhj/SkillBridge/auth"
	"github.com/forhad-fhj/SkillBridge/catalog"
	"github.com/forhad-fhj/SkillBridge/config"
	"github.com/forhad-fhj/SkillBridge/engine"
	"github.com/forhad-fhj/SkillBridge/events"
	"github.com/forhad-fhj/SkillBridge/extract"
	"github.com/forhad-fhj/SkillBridge/models"
	"github.com/forhad-fhj/SkillBridge/storage"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestLoadAliases(t *testing.T) {
	aliases, err := loadAliases("default")
	require.NoError(t, err)
	assert.Equal(t, engine.DefaultAliases(), aliases)

	aliases, err = loadAliases("")
	require.NoError(t, err)
	assert.Equal(t, engine.DefaultAliases(), aliases)

	aliases, err = loadAliases("none")
	require.NoError(t, err)
	assert.Nil(t, aliases)

	aliases, err = loadAliases(writeFile(t, "aliases.json", `{"golang": ["go", "go lang"]}`))
	require.NoError(t, err)
	assert.Equal(t, engine.AliasTable{"golang": {"go", "go lang"}}, aliases)

	aliases, err = loadAliases(writeFile(t, "aliases.yaml", "postgres:\n  - postgresql\n  - psql\n"))
	require.NoError(t, err)
	assert.Equal(t, engine.AliasTable{"postgres": {"postgresql", "psql"}}, aliases)

	_, err = loadAliases(writeFile(t, "aliases.txt", "x"))
	assert.Error(t, err)

	_, err = loadAliases(writeFile(t, "broken.json", `{"golang": "go"}`))
	assert.Error(t, err)

	_, err = loadAliases(filepath.Join(t.TempDir(), "missing.json"))
	assert.Error(t, err)
}

func TestEngineOptions(t *testing.T) {
	cfg := &config.Config{RoadmapMaxResources: 5, RoadmapTopK: 2, CriticalFrequency: 7, HighFrequency: 4}
	opts := engineOptions(cfg, nil, nil)
	assert.Equal(t, 5, opts.Roadmap.MaxResources)
	assert.Equal(t, 2, opts.Roadmap.TopK)
	assert.Equal(t, engine.TierOptions{CriticalFrequency: 7, HighFrequency: 4}, opts.Tiers)

	opts = engineOptions(&config.Config{}, nil, nil)
	assert.Equal(t, engine.DefaultMaxResources, opts.Roadmap.MaxResources)
	assert.Zero(t, opts.Roadmap.TopK)
}

func TestNewEngine_AppliesAliasesAndCatalog(t *testing.T) {
	cfg := &config.Config{SkillAliases: "default", RoadmapMaxResources: 1}
	eng, resources, err := newEngine(cfg)
	require.NoError(t, err)
	assert.Positive(t, resources.Len())

	result, err := eng.Analyze(models.SkillSet{"frameworks": {"ReactJS"}}, []models.JobRecord{
		{ExtractedSkills: models.SkillSet{"frameworks": {"React"}, "languages": {"Python"}}},
	})
	require.NoError(t, err)
	require.Len(t, result.MatchedSkills, 1)
	require.Len(t, result.GeneratedRoadmap, 1)
	assert.Len(t, result.GeneratedRoadmap[0].Resources, 1)
}

func TestReadDataFile(t *testing.T) {
	var skills models.SkillSet
	require.NoError(t, readDataFile(writeFile(t, "skills.yaml", "languages:\n  - Go\n"), &skills))
	assert.Equal(t, models.SkillSet{"languages": {"Go"}}, skills)

	var jobs []models.JobRecord
	require.NoError(t, readDataFile(writeFile(t, "jobs.json", `[{"title": "API", "extractedSkills": {"languages": ["Go"]}}]`), &jobs))
	require.Len(t, jobs, 1)
	assert.Equal(t, "API", jobs[0].Title)

	assert.Error(t, readDataFile(writeFile(t, "bad.json", `{`), &skills))
}

func TestAnalyzeCommand(t *testing.T) {
	t.Setenv("SKILL_ALIASES", "default")
	skillsPath := writeFile(t, "skills.json", `{"languages": ["Python", "SQL"]}`)

	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetArgs([]string{"analyze", "--skills", skillsPath, "--domain", "Data Analyst"})
	t.Cleanup(func() {
		rootCmd.SetOut(nil)
		rootCmd.SetArgs(nil)
	})
	require.NoError(t, rootCmd.Execute())

	var result models.AnalysisResult
	require.NoError(t, json.Unmarshal(out.Bytes(), &result))
	assert.True(t, result.UsedFallback)
	assert.Equal(t, models.DomainData, result.Domain)
	assert.Equal(t, 5, result.JobCount)
	assert.NotEmpty(t, result.MatchedSkills)
}

func newTestServices(t *testing.T) *services {
	t.Helper()
	cfg := &config.Config{
		JWTSecret:      "test-secret",
		JWTExpiryHours: 1,
		AllowedOrigins: []string{"*"},
		DefaultDomain:  models.DomainFrontend,
		SkillAliases:   "default",
	}
	eng, resources, err := newEngine(cfg)
	require.NoError(t, err)

	return &services{
		cfg:        cfg,
		jwtService: auth.NewJWTService(cfg),
		store:      storage.NewMemoryStore(),
		publisher:  events.NoopPublisher{},
		extractor:  extract.NewTaxonomyExtractor(extract.DefaultTaxonomy()),
		engine:     eng,
		catalog:    resources,
		roles:      catalog.BuiltinRoles(),
	}
}

func TestNewRouter_Routes(t *testing.T) {
	router := newRouter(newTestServices(t))

	cases := []struct {
		method string
		path   string
		body   string
		want   int
	}{
		{http.MethodGet, "/health", "", http.StatusOK},
		{http.MethodGet, "/api/health", "", http.StatusOK},
		{http.MethodPost, "/api/analyze-job-fit", `{"userSkills": {"languages": ["Go"]}, "jobDescription": "Backend engineer writing Go services on Docker and Kubernetes."}`, http.StatusOK},
		{http.MethodPost, "/api/analyze-job-fit", `{"userSkills": {}, "jobDescription": "Go"}`, http.StatusBadRequest},
		{http.MethodPost, "/api/recommend-roles", `{"userSkills": {"languages": ["Python", "SQL"]}, "readinessScore": 45}`, http.StatusOK},
		{http.MethodPost, "/api/resume-feedback", `{"resumeText": "Built and shipped a Go API serving 2,000 users, cutting latency by 40% across three regions while mentoring two engineers."}`, http.StatusOK},
		{http.MethodPost, "/api/resume-feedback", `{"resumeText": "Go"}`, http.StatusBadRequest},
		{http.MethodGet, "/api/resources", "", http.StatusOK},
		{http.MethodPost, "/api/analyze-gap", `{"userSkills": {"languages": ["Go"]}}`, http.StatusOK},
		{http.MethodPost, "/api/analyze-gap", `{"userSkills": []}`, http.StatusBadRequest},
		{http.MethodPost, "/api/extract-skills", `{"text": "React and Node.js developer"}`, http.StatusOK},
		{http.MethodGet, "/api/jobs", "", http.StatusOK},
		{http.MethodGet, "/api/resources?skill=Go", "", http.StatusOK},
		{http.MethodGet, "/api/tools", "", http.StatusOK},
		{http.MethodPost, "/api/mcp", `{"jsonrpc": "2.0", "id": 1, "method": "tools/list"}`, http.StatusOK},
		{http.MethodPost, "/api/jobs", `{}`, http.StatusUnauthorized},
		{http.MethodGet, "/api/progress", "", http.StatusUnauthorized},
		{http.MethodPost, "/api/progress/save", `{}`, http.StatusUnauthorized},
		{http.MethodGet, "/api/analyses", "", http.StatusUnauthorized},
		{http.MethodGet, "/api/auth/profile", "", http.StatusUnauthorized},
		{http.MethodPost, "/api/auth/google", `{"idToken": "x"}`, http.StatusServiceUnavailable},
	}
	for _, tc := range cases {
		t.Run(tc.method+" "+tc.path, func(t *testing.T) {
			req := httptest.NewRequest(tc.method, tc.path, bytes.NewBufferString(tc.body))
			req.Header.Set("Content-Type", "application/json")
			w := httptest.NewRecorder()
			router.ServeHTTP(w, req)
			assert.Equal(t, tc.want, w.Code, w.Body.String())
		})
	}
}

func TestNewRouter_AuthenticatedAnalysisHistory(t *testing.T) {
	svc := newTestServices(t)
	router := newRouter(svc)

	register := httptest.NewRequest(http.MethodPost, "/api/auth/register",
		bytes.NewBufferString(`{"email": "rafi@example.com", "password": "password123", "name": "Rafi"}`))
	register.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, register)
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

	var authResp models.AuthResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &authResp))

	analyze := httptest.NewRequest(http.MethodPost, "/api/analyze-gap",
		bytes.NewBufferString(`{"userSkills": {"languages": ["JavaScript"]}}`))
	analyze.Header.Set("Content-Type", "application/json")
	analyze.Header.Set("Authorization", "Bearer "+authResp.Token)
	w = httptest.NewRecorder()
	router.ServeHTTP(w, analyze)
	require.Equal(t, http.StatusOK, w.Code)

	progress := httptest.NewRequest(http.MethodGet, "/api/progress", nil)
	progress.Header.Set("Authorization", "Bearer "+authResp.Token)
	w = httptest.NewRecorder()
	router.ServeHTTP(w, progress)
	require.Equal(t, http.StatusOK, w.Code)

	var progressResp models.ProgressResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &progressResp))
	assert.Equal(t, 1, progressResp.Stats.TotalAnalyses)
}

func TestAllowsAnyOrigin(t *testing.T) {
	assert.True(t, allowsAnyOrigin([]string{"http://localhost:5173", "*"}))
	assert.False(t, allowsAnyOrigin([]string{"http://localhost:5173"}))
}

func TestNewToolRegistry(t *testing.T) {
	registry, err := newToolRegistry(newTestServices(t))
	require.NoError(t, err)

	var names []string
	for _, def := range registry.Definitions() {
		names = append(names, def.Name)
	}
	assert.Equal(t, []string{
		"analyze_gap", "analyze_job_fit", "extract_skills",
		"get_learning_resources", "recommend_roles", "resume_feedback",
	}, names)
}
