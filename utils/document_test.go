package utils

import (
	"bytes"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDetectMime(t *testing.T) {
	assert.Equal(t, MimePDF, DetectMime("cv.PDF", ""))
	assert.Equal(t, MimeDOCX, DetectMime("cv.docx", "application/octet-stream"))
	assert.Equal(t, MimeText, DetectMime("notes.txt", ""))
	assert.Equal(t, MimePDF, DetectMime("upload", "application/pdf; charset=binary"))
	assert.Equal(t, "image/png", DetectMime("photo.png", "image/png"))
}

func TestIsSupportedFormat(t *testing.T) {
	e := NewDocumentExtractor()
	assert.True(t, e.IsSupportedFormat("cv.pdf", ""))
	assert.True(t, e.IsSupportedFormat("cv", MimeDOCX))
	assert.False(t, e.IsSupportedFormat("cv.doc", "application/msword"))
	assert.False(t, e.IsSupportedFormat("photo.png", "image/png"))
}

func TestExtractText(t *testing.T) {
	e := NewDocumentExtractor()

	text, err := e.ExtractText(MimeText, []byte("Go and Docker"))
	require.NoError(t, err)
	assert.Equal(t, "Go and Docker", text)

	_, err = e.ExtractText("image/png", []byte{0x89})
	assert.ErrorIs(t, err, ErrUnsupportedFormat)

	_, err = e.ExtractText(MimePDF, []byte("not a pdf"))
	assert.ErrorContains(t, err, "failed to read pdf")

	_, err = e.ExtractText(MimeDOCX, []byte("not a zip"))
	assert.ErrorContains(t, err, "failed to parse docx")
}

func TestExtractFile(t *testing.T) {
	body := new(bytes.Buffer)
	w := multipart.NewWriter(body)
	part, err := w.CreateFormFile("file", "resume.txt")
	require.NoError(t, err)
	_, err = part.Write([]byte("Python developer with SQL experience"))
	require.NoError(t, err)
	require.NoError(t, w.Close())

	req := httptest.NewRequest(http.MethodPost, "/", body)
	req.Header.Set("Content-Type", w.FormDataContentType())
	file, header, err := req.FormFile("file")
	require.NoError(t, err)
	defer file.Close()

	text, data, err := NewDocumentExtractor().ExtractFile(file, header)
	require.NoError(t, err)
	assert.Equal(t, "Python developer with SQL experience", text)
	assert.Equal(t, []byte(text), data)
}

func TestDocxXMLToText(t *testing.T) {
	xml := `<w:document><w:body>` +
		`<w:p><w:r><w:t>Jane Doe</w:t></w:r></w:p>` +
		`<w:p><w:r><w:t>Skills: Go, </w:t></w:r><w:r><w:t>React &amp; SQL</w:t></w:r></w:p>` +
		`<w:p></w:p>` +
		`</w:body></w:document>`

	assert.Equal(t, "Jane Doe\nSkills: Go, React & SQL", docxXMLToText(xml))
}

func TestNewHTTPClient_SetsUserAgent(t *testing.T) {
	var got string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		got = r.Header.Get("User-Agent")
	}))
	defer srv.Close()

	client := NewHTTPClient(5 * time.Second)
	resp, err := client.Get(srv.URL)
	require.NoError(t, err)
	resp.Body.Close()
	assert.Equal(t, userAgent, got)

	req, err := http.NewRequest(http.MethodGet, srv.URL, nil)
	require.NoError(t, err)
	req.Header.Set("User-Agent", "custom")
	resp, err = client.Do(req)
	require.NoError(t, err)
	resp.Body.Close()
	assert.Equal(t, "custom", got)
}
