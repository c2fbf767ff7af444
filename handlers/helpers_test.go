package handlers

import (
	"bytes"
	"context"
	"encoding/json"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"

	"github.com/forhad-fhj/SkillBridge/auth"
	"github.com/forhad-fhj/SkillBridge/catalog"
	"github.com/forhad-fhj/SkillBridge/config"
	"github.com/forhad-fhj/SkillBridge/engine"
	"github.com/forhad-fhj/SkillBridge/events"
	"github.com/forhad-fhj/SkillBridge/models"
)

func init() {
	gin.SetMode(gin.TestMode)
}

const testEmail = "nadia@example.com"

func newTestConfigWithSecret(secret string) *config.Config {
	return &config.Config{JWTSecret: secret, JWTExpiryHours: 1}
}

func newTestJWT() *auth.JWTService {
	return auth.NewJWTService(newTestConfigWithSecret("test-secret"))
}

func tokenFor(t *testing.T, jwt *auth.JWTService, email string) string {
	t.Helper()
	token, err := jwt.GenerateToken(&models.User{ID: email, Email: email, Name: "Test User"})
	require.NoError(t, err)
	return token
}

func newTestCatalog() *catalog.Catalog {
	return catalog.New(catalog.Builtin(), catalog.Options{SearchFallback: true})
}

func newTestEngine() *engine.Engine {
	opts := engine.DefaultOptions()
	opts.Aliases = engine.DefaultAliases()
	opts.Catalog = newTestCatalog()
	return engine.New(opts)
}

func doJSON(router http.Handler, method, path string, body interface{}, token string) *httptest.ResponseRecorder {
	var payload []byte
	switch b := body.(type) {
	case nil:
	case string:
		payload = []byte(b)
	default:
		payload, _ = json.Marshal(b)
	}

	req := httptest.NewRequest(method, path, bytes.NewReader(payload))
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func doUpload(t *testing.T, router http.Handler, path, filename, content, token string) *httptest.ResponseRecorder {
	t.Helper()
	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)
	if filename != "" {
		part, err := mw.CreateFormFile("file", filename)
		require.NoError(t, err)
		_, err = part.Write([]byte(content))
		require.NoError(t, err)
	}
	require.NoError(t, mw.Close())

	req := httptest.NewRequest(http.MethodPost, path, &buf)
	req.Header.Set("Content-Type", mw.FormDataContentType())
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func decodeBody(t *testing.T, w *httptest.ResponseRecorder, out interface{}) {
	t.Helper()
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), out), w.Body.String())
}

type recordingPublisher struct {
	mu     sync.Mutex
	events []events.AnalysisCompleted
	keys   []string
	err    error
}

func (p *recordingPublisher) Publish(ctx context.Context, routingKey string, event interface{}) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	if e, ok := event.(events.AnalysisCompleted); ok {
		p.events = append(p.events, e)
	}
	p.keys = append(p.keys, routingKey)
	return p.err
}

func (p *recordingPublisher) Close() error { return nil }
