package storage

import (
	"bytes"
	"context"
	"fmt"
	"path"
	"time"

	"mybuddy/mybuddy/config"

	"github.com/google/uuid"
	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"
)

// MinIOClient archives uploaded OCR images.
type MinIOClient struct {
	client *minio.Client
	bucket string
}

var imageExtensions = map[string]string{
	"image/jpeg": ".jpg",
	"image/png":  ".png",
	"image/gif":  ".gif",
	"image/webp": ".webp",
}

func NewMinIOClient(ctx context.Context, cfg config.Config) (*MinIOClient, error) {
	bucket := cfg.MinIOBucket
	client, err := minio.New(
		cfg.MinIOEndpoint,
		&minio.Options{
			Creds:  credentials.NewStaticV4(cfg.MinIOAccessKey, cfg.MinIOSecretKey, ""),
			Secure: cfg.MinIOSecure,
		},
	)
	if err != nil {
		return nil, err
	}
	// Create bucket if not exists
	exists, err := client.BucketExists(ctx, bucket)
	if err != nil {
		return nil, err
	}
	if !exists {
		if err := client.MakeBucket(ctx, bucket, minio.MakeBucketOptions{}); err != nil {
			return nil, err
		}
	}
	return &MinIOClient{client: client, bucket: bucket}, nil
}

// ObjectKey returns ocr/YYYY/MM/DD/<uuid><ext> for an upload received at t.
func ObjectKey(t time.Time, mediaType string) string {
	return path.Join("ocr", t.UTC().Format("2006/01/02"), uuid.NewString()+imageExtensions[mediaType])
}

// ArchiveImage stores the raw upload and returns its object key.
func (m *MinIOClient) ArchiveImage(ctx context.Context, data []byte, mediaType string) (string, error) {
	key := ObjectKey(time.Now(), mediaType)
	_, err := m.client.PutObject(ctx, m.bucket, key, bytes.NewReader(data), int64(len(data)), minio.PutObjectOptions{ContentType: mediaType})
	if err != nil {
		return "", fmt.Errorf("failed to archive image: %w", err)
	}
	return key, nil
}
