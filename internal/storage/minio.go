// Package storage holds resume file objects in a MinIO/S3-compatible bucket.
package storage

import (
	"context"
	"fmt"
	"io"
	"net/url"
	"time"

	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"

	"jobboard/internal/config"
)

// presignExpiry bounds how long a download link stays valid.
const presignExpiry = 15 * time.Minute

// ResumeStore abstracts object storage for resume files.
type ResumeStore interface {
	Upload(ctx context.Context, objectName string, reader io.Reader, size int64, contentType string) error
	PresignedURL(ctx context.Context, objectName string) (string, error)
	Remove(ctx context.Context, objectName string) error
}

// Client wraps a MinIO client bound to a single bucket.
type Client struct {
	client *minio.Client
	bucket string
}

var _ ResumeStore = (*Client)(nil)

// NewClient initializes the MinIO client and ensures the bucket exists.
func NewClient(cfg *config.Config) (*Client, error) {
	mc, err := minio.New(cfg.MinioEndpoint, &minio.Options{
		Creds:  credentials.NewStaticV4(cfg.MinioAccessKey, cfg.MinioSecretKey, ""),
		Secure: cfg.MinioUseSSL,
	})
	if err != nil {
		return nil, fmt.Errorf("init minio client: %w", err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	exists, err := mc.BucketExists(ctx, cfg.MinioBucket)
	if err != nil {
		return nil, fmt.Errorf("check bucket %q: %w", cfg.MinioBucket, err)
	}
	if !exists {
		if err := mc.MakeBucket(ctx, cfg.MinioBucket, minio.MakeBucketOptions{}); err != nil {
			return nil, fmt.Errorf("make bucket %q: %w", cfg.MinioBucket, err)
		}
	}

	return &Client{client: mc, bucket: cfg.MinioBucket}, nil
}

// Upload stores an object under objectName.
func (c *Client) Upload(ctx context.Context, objectName string, reader io.Reader, size int64, contentType string) error {
	_, err := c.client.PutObject(ctx, c.bucket, objectName, reader, size, minio.PutObjectOptions{
		ContentType: contentType,
	})
	if err != nil {
		return fmt.Errorf("upload %q: %w", objectName, err)
	}
	return nil
}

// PresignedURL returns a short-lived download link for an object.
func (c *Client) PresignedURL(ctx context.Context, objectName string) (string, error) {
	u, err := c.client.PresignedGetObject(ctx, c.bucket, objectName, presignExpiry, url.Values{})
	if err != nil {
		return "", fmt.Errorf("presign %q: %w", objectName, err)
	}
	return u.String(), nil
}

// Remove deletes an object.
func (c *Client) Remove(ctx context.Context, objectName string) error {
	if err := c.client.RemoveObject(ctx, c.bucket, objectName, minio.RemoveObjectOptions{}); err != nil {
		return fmt.Errorf("remove %q: %w", objectName, err)
	}
	return nil
}
