package handlers

import (
	"context"
	"errors"
	"net/http"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/forhad-fhj/SkillBridge/auth"
	"github.com/forhad-fhj/SkillBridge/extract"
	"github.com/forhad-fhj/SkillBridge/models"
	"github.com/forhad-fhj/SkillBridge/parser"
	"github.com/forhad-fhj/SkillBridge/storage"
)

const resumeText = "Backend engineer with five years of Go and Python, running PostgreSQL and Redis on AWS with Docker."

type stubParser struct {
	resp     *models.ExtractSkillsResponse
	err      error
	filename string
	mime     string
	text     string
}

func (p *stubParser) ParseDocument(ctx context.Context, filename, contentType string, data []byte) (*models.ExtractSkillsResponse, error) {
	p.filename = filename
	p.mime = contentType
	return p.resp, p.err
}

func (p *stubParser) ExtractSkills(ctx context.Context, text string) (*models.ExtractSkillsResponse, error) {
	p.text = text
	return p.resp, p.err
}

// pdfModel reads PDFs directly, like the Gemini client
type pdfModel struct {
	skills models.SkillSet
	err    error
	pdf    []byte
}

func (e *pdfModel) ExtractSkills(ctx context.Context, text string) (models.SkillSet, error) {
	return nil, errors.New("text extraction not expected")
}

func (e *pdfModel) ExtractSkillsFromPDF(ctx context.Context, pdfData []byte) (models.SkillSet, error) {
	e.pdf = pdfData
	return e.skills, e.err
}

type stubBlobStore struct {
	url   string
	err   error
	email string
	calls int
}

func (b *stubBlobStore) UploadResume(ctx context.Context, userEmail, filename, contentType string, data []byte) (string, error) {
	b.calls++
	b.email = userEmail
	return b.url, b.err
}

func (b *stubBlobStore) Close() error { return nil }

type failingExtractor struct{}

func (failingExtractor) ExtractSkills(ctx context.Context, text string) (models.SkillSet, error) {
	return nil, errors.New("model unavailable")
}

func newDocumentRouter(h *DocumentHandler) *gin.Engine {
	router := gin.New()
	router.POST("/api/parse-document", auth.OptionalAuthMiddleware(newTestJWT()), h.ParseDocument)
	router.POST("/api/extract-skills", h.ExtractSkills)
	return router
}

func taxonomyExtractor() extract.SkillExtractor {
	return extract.NewTaxonomyExtractor(extract.DefaultTaxonomy())
}

func TestParseDocument_LocalExtraction(t *testing.T) {
	router := newDocumentRouter(NewDocumentHandler(taxonomyExtractor(), nil, nil, nil))

	w := doUpload(t, router, "/api/parse-document", "resume.txt", resumeText, "")
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	var resp models.ParseDocumentResponse
	decodeBody(t, w, &resp)
	assert.Equal(t, []string{"Go", "Python"}, resp.Skills["languages"])
	assert.Equal(t, resp.Skills.Count(), resp.TotalSkills)
	assert.Empty(t, resp.ResumeURL)
}

func TestParseDocument_Rejections(t *testing.T) {
	router := newDocumentRouter(NewDocumentHandler(taxonomyExtractor(), nil, nil, nil))

	cases := []struct {
		name     string
		filename string
		content  string
	}{
		{"no file", "", ""},
		{"unsupported type", "resume.exe", resumeText},
		{"too little text", "resume.txt", "Go, SQL"},
		{"unreadable pdf", "resume.pdf", "not really a pdf"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			w := doUpload(t, router, "/api/parse-document", tc.filename, tc.content, "")
			assert.Equal(t, http.StatusBadRequest, w.Code, w.Body.String())
		})
	}
}

func TestParseDocument_ExtractorFailure(t *testing.T) {
	router := newDocumentRouter(NewDocumentHandler(failingExtractor{}, nil, nil, nil))

	w := doUpload(t, router, "/api/parse-document", "resume.txt", resumeText, "")
	assert.Equal(t, http.StatusInternalServerError, w.Code)
}

func TestParseDocument_UsesParserService(t *testing.T) {
	p := &stubParser{resp: &models.ExtractSkillsResponse{
		Skills:      models.SkillSet{"frameworks": {"React"}},
		TotalSkills: 1,
	}}
	router := newDocumentRouter(NewDocumentHandler(failingExtractor{}, p, nil, nil))

	// short text is fine: the service does its own extraction
	w := doUpload(t, router, "/api/parse-document", "cv.pdf", "%PDF-1.4", "")
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	var resp models.ParseDocumentResponse
	decodeBody(t, w, &resp)
	assert.Equal(t, []string{"React"}, resp.Skills["frameworks"])
	assert.Equal(t, 1, resp.TotalSkills)
	assert.Equal(t, "cv.pdf", p.filename)
	assert.Equal(t, "application/pdf", p.mime)
}

func TestParseDocument_ParserErrors(t *testing.T) {
	cases := []struct {
		name string
		err  error
		want int
	}{
		{"client error", &parser.APIError{Status: http.StatusUnprocessableEntity, Detail: "Could not extract sufficient text"}, http.StatusBadRequest},
		{"server error", &parser.APIError{Status: http.StatusInternalServerError, Detail: "boom"}, http.StatusBadGateway},
		{"unreachable", errors.New("connection refused"), http.StatusBadGateway},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			router := newDocumentRouter(NewDocumentHandler(taxonomyExtractor(), &stubParser{err: tc.err}, nil, nil))
			w := doUpload(t, router, "/api/parse-document", "cv.docx", "data", "")
			assert.Equal(t, tc.want, w.Code)
		})
	}
}

func TestParseDocument_SavesResumeForAuthenticatedUser(t *testing.T) {
	ctx := context.Background()
	store := storage.NewMemoryStore()
	require.NoError(t, store.CreateUser(ctx, &models.User{Email: testEmail, Name: "Nadia"}))
	blobs := &stubBlobStore{url: "gs://resumes/nadia.txt"}
	router := newDocumentRouter(NewDocumentHandler(taxonomyExtractor(), nil, blobs, store))
	token := tokenFor(t, newTestJWT(), testEmail)

	w := doUpload(t, router, "/api/parse-document?save=true", "resume.txt", resumeText, token)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	var resp models.ParseDocumentResponse
	decodeBody(t, w, &resp)
	assert.Equal(t, blobs.url, resp.ResumeURL)
	assert.Equal(t, testEmail, blobs.email)

	user, err := store.GetUserByEmail(ctx, testEmail)
	require.NoError(t, err)
	assert.Equal(t, blobs.url, user.ResumeURL)
}

func TestParseDocument_SaveSkippedWithoutAuth(t *testing.T) {
	blobs := &stubBlobStore{url: "gs://resumes/x.txt"}
	router := newDocumentRouter(NewDocumentHandler(taxonomyExtractor(), nil, blobs, storage.NewMemoryStore()))

	w := doUpload(t, router, "/api/parse-document?save=true", "resume.txt", resumeText, "")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Zero(t, blobs.calls)
}

func TestParseDocument_UploadFailureKeepsSkills(t *testing.T) {
	blobs := &stubBlobStore{err: errors.New("bucket missing")}
	router := newDocumentRouter(NewDocumentHandler(taxonomyExtractor(), nil, blobs, storage.NewMemoryStore()))
	token := tokenFor(t, newTestJWT(), testEmail)

	w := doUpload(t, router, "/api/parse-document?save=true", "resume.txt", resumeText, token)
	require.Equal(t, http.StatusOK, w.Code)

	var resp models.ParseDocumentResponse
	decodeBody(t, w, &resp)
	assert.Empty(t, resp.ResumeURL)
	assert.NotZero(t, resp.TotalSkills)
}

func TestExtractSkills(t *testing.T) {
	router := newDocumentRouter(NewDocumentHandler(taxonomyExtractor(), nil, nil, nil))

	w := doJSON(router, http.MethodPost, "/api/extract-skills",
		models.ExtractSkillsRequest{Text: "We need React and TypeScript experience"}, "")
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	var resp models.ExtractSkillsResponse
	decodeBody(t, w, &resp)
	assert.Contains(t, resp.Skills["frameworks"], "React")
	assert.Contains(t, resp.Skills["languages"], "Typescript")
	assert.Equal(t, resp.Skills.Count(), resp.TotalSkills)
}

func TestExtractSkills_TooShort(t *testing.T) {
	router := newDocumentRouter(NewDocumentHandler(taxonomyExtractor(), nil, nil, nil))

	for _, text := range []string{"", "Go, SQL", strings.Repeat(" ", 20)} {
		w := doJSON(router, http.MethodPost, "/api/extract-skills", models.ExtractSkillsRequest{Text: text}, "")
		assert.Equal(t, http.StatusBadRequest, w.Code, "text %q", text)
	}
}

func TestParseDocument_SendsPDFToModel(t *testing.T) {
	model := &pdfModel{skills: models.SkillSet{"languages": {"Go"}, "tools": {"Docker"}}}
	router := newDocumentRouter(NewDocumentHandler(model, nil, nil, nil))

	w := doUpload(t, router, "/api/parse-document", "cv.pdf", "%PDF-1.4", "")
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	var resp models.ParseDocumentResponse
	decodeBody(t, w, &resp)
	assert.Equal(t, []string{"Go"}, resp.Skills["languages"])
	assert.Equal(t, 2, resp.TotalSkills)
	assert.Equal(t, []byte("%PDF-1.4"), model.pdf)

	model.err = errors.New("quota exceeded")
	w = doUpload(t, router, "/api/parse-document", "cv.pdf", "%PDF-1.4", "")
	assert.Equal(t, http.StatusInternalServerError, w.Code)
}

func TestParseDocument_PDFModelSkipsOtherFormats(t *testing.T) {
	model := &pdfModel{skills: models.SkillSet{"languages": {"Go"}}}
	router := newDocumentRouter(NewDocumentHandler(model, nil, nil, nil))

	w := doUpload(t, router, "/api/parse-document", "resume.txt", resumeText, "")
	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.Nil(t, model.pdf)
}

func TestExtractSkills_UsesParserService(t *testing.T) {
	p := &stubParser{resp: &models.ExtractSkillsResponse{Skills: models.SkillSet{"databases": {"Redis"}}}}
	router := newDocumentRouter(NewDocumentHandler(failingExtractor{}, p, nil, nil))

	text := "Looking for Redis and caching experience"
	w := doJSON(router, http.MethodPost, "/api/extract-skills", models.ExtractSkillsRequest{Text: text}, "")
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	var resp models.ExtractSkillsResponse
	decodeBody(t, w, &resp)
	assert.Equal(t, []string{"Redis"}, resp.Skills["databases"])
	assert.Equal(t, 1, resp.TotalSkills)
	assert.Equal(t, text, p.text)
}

func TestExtractSkills_ParserErrors(t *testing.T) {
	cases := []struct {
		err  error
		want int
	}{
		{&parser.APIError{Status: http.StatusUnprocessableEntity, Detail: "text too short"}, http.StatusBadRequest},
		{&parser.APIError{Status: http.StatusServiceUnavailable, Detail: "down"}, http.StatusBadGateway},
		{errors.New("connection refused"), http.StatusBadGateway},
	}
	for _, tc := range cases {
		router := newDocumentRouter(NewDocumentHandler(taxonomyExtractor(), &stubParser{err: tc.err}, nil, nil))
		w := doJSON(router, http.MethodPost, "/api/extract-skills",
			models.ExtractSkillsRequest{Text: "Go and Kubernetes required"}, "")
		assert.Equal(t, tc.want, w.Code, tc.err.Error())
	}
}
