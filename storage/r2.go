package storage

import (
	"bytes"
	"context"
	"fmt"
	"path/filepath"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"

	"github.com/forhad-fhj/SkillBridge/config"
)

// R2Client stores resumes in a Cloudflare R2 bucket through the S3 API
type R2Client struct {
	client *s3.Client
	bucket string
}

// NewR2Client creates an S3 client pointed at the account's R2 endpoint
func NewR2Client(ctx context.Context, cfg *config.Config) (*R2Client, error) {
	awsCfg, err := awsconfig.LoadDefaultConfig(ctx,
		awsconfig.WithCredentialsProvider(credentials.NewStaticCredentialsProvider(cfg.R2AccessKey, cfg.R2SecretKey, "")),
		awsconfig.WithRegion("auto"),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to load R2 config: %w", err)
	}

	client := s3.NewFromConfig(awsCfg, func(o *s3.Options) {
		o.BaseEndpoint = aws.String(fmt.Sprintf("https://%s.r2.cloudflarestorage.com", cfg.R2AccountID))
	})

	return &R2Client{client: client, bucket: cfg.R2Bucket}, nil
}

// Close is a no-op; the S3 client holds no resources that need releasing
func (r *R2Client) Close() error {
	return nil
}

// UploadResume stores resume content and returns its object key
func (r *R2Client) UploadResume(ctx context.Context, userEmail, filename, contentType string, data []byte) (string, error) {
	ext := filepath.Ext(filename)
	key := resumeObjectName(userEmail, ext, time.Now())
	if contentType == "" {
		contentType = getContentType(ext)
	}

	_, err := r.client.PutObject(ctx, &s3.PutObjectInput{
		Bucket:      aws.String(r.bucket),
		Key:         aws.String(key),
		Body:        bytes.NewReader(data),
		ContentType: aws.String(contentType),
	})
	if err != nil {
		return "", fmt.Errorf("failed to put object: %w", err)
	}
	return fmt.Sprintf("r2://%s/%s", r.bucket, key), nil
}
