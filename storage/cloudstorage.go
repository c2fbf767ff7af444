package storage

import (
	"context"
	"fmt"
	"path/filepath"
	"strings"
	"time"

	"cloud.google.com/go/storage"

	"github.com/forhad-fhj/SkillBridge/config"
)

// CloudStorageClient stores resumes in Google Cloud Storage
type CloudStorageClient struct {
	client     *storage.Client
	bucketName string
}

// NewCloudStorageClient creates a new Cloud Storage client
func NewCloudStorageClient(ctx context.Context, cfg *config.Config) (*CloudStorageClient, error) {
	client, err := storage.NewClient(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to create Cloud Storage client: %w", err)
	}

	return &CloudStorageClient{
		client:     client,
		bucketName: cfg.CVBucketName,
	}, nil
}

// Close closes the Cloud Storage client
func (c *CloudStorageClient) Close() error {
	return c.client.Close()
}

// UploadResume uploads resume content and returns its public URL
func (c *CloudStorageClient) UploadResume(ctx context.Context, userEmail, filename, contentType string, data []byte) (string, error) {
	ext := filepath.Ext(filename)
	objectName := resumeObjectName(userEmail, ext, time.Now())

	wc := c.client.Bucket(c.bucketName).Object(objectName).NewWriter(ctx)
	wc.ContentType = contentType
	if wc.ContentType == "" {
		wc.ContentType = getContentType(ext)
	}

	if _, err := wc.Write(data); err != nil {
		wc.Close()
		return "", fmt.Errorf("failed to write content: %w", err)
	}
	if err := wc.Close(); err != nil {
		return "", fmt.Errorf("failed to close writer: %w", err)
	}

	return fmt.Sprintf("https://storage.googleapis.com/%s/%s", c.bucketName, objectName), nil
}

func getContentType(ext string) string {
	switch strings.ToLower(ext) {
	case ".pdf":
		return "application/pdf"
	case ".docx":
		return "application/vnd.openxmlformats-officedocument.wordprocessingml.document"
	case ".txt":
		return "text/plain"
	default:
		return "application/octet-stream"
	}
}
