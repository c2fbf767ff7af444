// Package parser talks to the external document parsing service.
package parser

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"net/textproto"
	"strings"
	"time"

	"github.com/forhad-fhj/SkillBridge/models"
	"github.com/forhad-fhj/SkillBridge/utils"
)

// DefaultTimeout applies when Config.Timeout is zero.
const DefaultTimeout = 30 * time.Second

// Config configures a Client.
type Config struct {
	BaseURL string
	Timeout time.Duration
	// HTTPClient overrides the client built from Timeout.
	HTTPClient *http.Client
}

// APIError is a non-2xx reply from the parsing service.
type APIError struct {
	Status int
	Detail string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("parser service returned %d: %s", e.Status, e.Detail)
}

// Client calls the parsing service. It holds no package-level state, so
// several clients with different endpoints can coexist.
type Client struct {
	baseURL string
	http    *http.Client
}

// NewClient creates a parsing service client.
func NewClient(cfg Config) (*Client, error) {
	base := strings.TrimRight(strings.TrimSpace(cfg.BaseURL), "/")
	if base == "" {
		return nil, fmt.Errorf("parser base URL is required")
	}

	httpClient := cfg.HTTPClient
	if httpClient == nil {
		timeout := cfg.Timeout
		if timeout <= 0 {
			timeout = DefaultTimeout
		}
		httpClient = utils.NewHTTPClient(timeout)
	}

	return &Client{baseURL: base, http: httpClient}, nil
}

// ParseDocument uploads a document and returns the skills found in it.
func (c *Client) ParseDocument(ctx context.Context, filename, contentType string, data []byte) (*models.ExtractSkillsResponse, error) {
	body := new(bytes.Buffer)
	w := multipart.NewWriter(body)

	h := make(textproto.MIMEHeader)
	h.Set("Content-Disposition", fmt.Sprintf(`form-data; name="file"; filename="%s"`, escapeQuotes(filename)))
	if contentType == "" {
		contentType = "application/octet-stream"
	}
	h.Set("Content-Type", contentType)

	part, err := w.CreatePart(h)
	if err != nil {
		return nil, fmt.Errorf("failed to create form file: %w", err)
	}
	if _, err := part.Write(data); err != nil {
		return nil, fmt.Errorf("failed to write form file: %w", err)
	}
	if err := w.Close(); err != nil {
		return nil, fmt.Errorf("failed to close multipart body: %w", err)
	}

	var out models.ExtractSkillsResponse
	if err := c.do(ctx, http.MethodPost, "/api/parse-document", w.FormDataContentType(), body, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// ExtractSkills asks the service to find skills in plain text.
func (c *Client) ExtractSkills(ctx context.Context, text string) (*models.ExtractSkillsResponse, error) {
	payload, err := json.Marshal(models.ExtractSkillsRequest{Text: text})
	if err != nil {
		return nil, fmt.Errorf("failed to marshal request: %w", err)
	}

	var out models.ExtractSkillsResponse
	if err := c.do(ctx, http.MethodPost, "/api/extract-skills", "application/json", bytes.NewReader(payload), &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// Health checks that the service is reachable.
func (c *Client) Health(ctx context.Context) error {
	return c.do(ctx, http.MethodGet, "/api/health", "", nil, nil)
}

func (c *Client) do(ctx context.Context, method, path, contentType string, body io.Reader, out interface{}) error {
	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, body)
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}
	if contentType != "" {
		req.Header.Set("Content-Type", contentType)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("failed to call parser service: %w", err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(io.LimitReader(resp.Body, 10<<20))
	if err != nil {
		return fmt.Errorf("failed to read parser response: %w", err)
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return &APIError{Status: resp.StatusCode, Detail: errorDetail(raw, resp.Status)}
	}

	if out == nil {
		return nil
	}
	if err := json.Unmarshal(raw, out); err != nil {
		return fmt.Errorf("failed to decode parser response: %w", err)
	}
	return nil
}

// errorDetail pulls the message out of {"detail": ...} or {"error": ...}
// bodies, falling back to the raw body or HTTP status text.
func errorDetail(raw []byte, status string) string {
	var body struct {
		Detail json.RawMessage `json:"detail"`
		Error  string          `json:"error"`
	}
	if err := json.Unmarshal(raw, &body); err == nil {
		var s string
		if len(body.Detail) > 0 && json.Unmarshal(body.Detail, &s) == nil && s != "" {
			return s
		}
		if len(body.Detail) > 0 && string(body.Detail) != "null" {
			return string(body.Detail)
		}
		if body.Error != "" {
			return body.Error
		}
	}
	if text := strings.TrimSpace(string(raw)); text != "" {
		return text
	}
	return status
}

func escapeQuotes(s string) string {
	return strings.NewReplacer(`\`, `\\`, `"`, `\"`).Replace(s)
}
