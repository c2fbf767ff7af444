package handlers

import (
	"context"
	"net/http"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/forhad-fhj/SkillBridge/auth"
	"github.com/forhad-fhj/SkillBridge/models"
	"github.com/forhad-fhj/SkillBridge/storage"
)

func newProgressRouter(store storage.ResultStore, jwt *auth.JWTService) *gin.Engine {
	h := NewProgressHandler(store)
	router := gin.New()
	protected := router.Group("/api", auth.AuthMiddleware(jwt))
	protected.GET("/progress", h.GetProgress)
	protected.POST("/progress/save", h.SaveProgress)
	protected.GET("/analyses", h.ListAnalyses)
	return router
}

func TestProgress_RequiresAuth(t *testing.T) {
	router := newProgressRouter(storage.NewMemoryStore(), newTestJWT())

	for _, route := range []struct{ method, path string }{
		{http.MethodGet, "/api/progress"},
		{http.MethodPost, "/api/progress/save"},
		{http.MethodGet, "/api/analyses"},
	} {
		w := doJSON(router, route.method, route.path, nil, "")
		assert.Equal(t, http.StatusUnauthorized, w.Code, route.path)

		w = doJSON(router, route.method, route.path, nil, "not-a-token")
		assert.Equal(t, http.StatusUnauthorized, w.Code, route.path)
	}
}

func TestProgress_SaveAndSummarize(t *testing.T) {
	jwt := newTestJWT()
	store := storage.NewMemoryStore()
	router := newProgressRouter(store, jwt)
	token := tokenFor(t, jwt, testEmail)

	for _, score := range []int{40, 55, 70} {
		w := doJSON(router, http.MethodPost, "/api/progress/save",
			models.SaveProgressRequest{ReadinessScore: score, SkillCount: score / 5, Domain: models.DomainBackend}, token)
		require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

		var saved models.SaveProgressResponse
		decodeBody(t, w, &saved)
		assert.NotEmpty(t, saved.ID)
		time.Sleep(2 * time.Millisecond)
	}

	w := doJSON(router, http.MethodGet, "/api/progress", nil, token)
	require.Equal(t, http.StatusOK, w.Code)

	var resp models.ProgressResponse
	decodeBody(t, w, &resp)
	require.Len(t, resp.History, 3)
	assert.Equal(t, 70, resp.History[0].ReadinessScore)
	assert.Equal(t, models.ProgressStats{TotalAnalyses: 3, AverageScore: 55, HighestScore: 70}, resp.Stats)

	other := tokenFor(t, jwt, "someone@example.com")
	w = doJSON(router, http.MethodGet, "/api/progress", nil, other)
	require.Equal(t, http.StatusOK, w.Code)
	decodeBody(t, w, &resp)
	assert.Empty(t, resp.History)
	assert.Zero(t, resp.Stats.TotalAnalyses)
}

func TestProgress_SaveValidation(t *testing.T) {
	jwt := newTestJWT()
	router := newProgressRouter(storage.NewMemoryStore(), jwt)
	token := tokenFor(t, jwt, testEmail)

	for _, body := range []string{
		`{"readinessScore": 101, "skillCount": 3}`,
		`{"readinessScore": -1, "skillCount": 3}`,
		`{"readinessScore": 50, "skillCount": -3}`,
		`{"readinessScore": "high"}`,
	} {
		w := doJSON(router, http.MethodPost, "/api/progress/save", body, token)
		assert.Equal(t, http.StatusBadRequest, w.Code, body)
	}
}

func TestListAnalyses(t *testing.T) {
	jwt := newTestJWT()
	store := storage.NewMemoryStore()
	router := newProgressRouter(store, jwt)

	ctx := context.Background()
	require.NoError(t, store.SaveAnalysis(ctx, &models.AnalysisRecord{UserID: testEmail, ReadinessScore: 60,
		Domain: models.DomainFrontend, GeneratedRoadmap: "[]"}))
	require.NoError(t, store.SaveAnalysis(ctx, &models.AnalysisRecord{UserID: "other@example.com", ReadinessScore: 10}))

	w := doJSON(router, http.MethodGet, "/api/analyses", nil, tokenFor(t, jwt, testEmail))
	require.Equal(t, http.StatusOK, w.Code)

	var resp models.AnalysesResponse
	decodeBody(t, w, &resp)
	require.Len(t, resp.Analyses, 1)
	assert.Equal(t, 60, resp.Analyses[0].ReadinessScore)
}
