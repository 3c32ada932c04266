package storage

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"net/url"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/loftlabs/loft-backend/internal/config"
	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"
)

// ImageStore uploads report photos to a MinIO (S3-compatible) bucket and
// hands back public URLs that get persisted on the report row.
type ImageStore struct {
	client         *minio.Client
	bucket         string
	publicEndpoint string
	useSSL         bool
}

func NewImageStore(cfg *config.Config) (*ImageStore, error) {
	client, err := minio.New(cfg.StorageEndpoint, &minio.Options{
		Creds:  credentials.NewStaticV4(cfg.StorageAccessKey, cfg.StorageSecretKey, ""),
		Secure: cfg.StorageUseSSL,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create storage client: %w", err)
	}

	publicEndpoint := strings.TrimSuffix(strings.TrimSpace(cfg.StoragePublicEndpoint), "/")
	if publicEndpoint == "" {
		publicEndpoint = cfg.StorageEndpoint
	}

	s := &ImageStore{
		client:         client,
		bucket:         cfg.StorageBucket,
		publicEndpoint: publicEndpoint,
		useSSL:         cfg.StorageUseSSL,
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	exists, err := client.BucketExists(ctx, s.bucket)
	if err != nil {
		return nil, fmt.Errorf("failed to check bucket %q: %w", s.bucket, err)
	}
	if !exists {
		if err := client.MakeBucket(ctx, s.bucket, minio.MakeBucketOptions{}); err != nil {
			return nil, fmt.Errorf("failed to create bucket %q: %w", s.bucket, err)
		}
		policy := fmt.Sprintf(`{"Version":"2012-10-17","Statement":[{"Action":["s3:GetObject"],"Effect":"Allow","Principal":{"AWS":["*"]},"Resource":["arn:aws:s3:::%s/*"]}]}`, s.bucket)
		if err := client.SetBucketPolicy(ctx, s.bucket, policy); err != nil {
			slog.Error("failed to set bucket policy", "bucket", s.bucket, "error", err)
		}
		slog.Info("bucket created", "bucket", s.bucket)
	}

	slog.Info("image store initialized", "endpoint", cfg.StorageEndpoint, "bucket", s.bucket)
	return s, nil
}

// Upload stores an image under prefix (e.g. "lost_reports") and returns its
// public URL. Object keys are date-partitioned and uuid-named so uploads
// never collide.
func (s *ImageStore) Upload(ctx context.Context, reader io.Reader, filename, contentType string, size int64, prefix string) (string, error) {
	ext := filepath.Ext(filename)
	if ext == "" {
		ext = ".jpg"
	}
	key := fmt.Sprintf("%s/%s/%s%s", prefix, time.Now().UTC().Format("2006-01-02"), uuid.New().String(), ext)

	_, err := s.client.PutObject(ctx, s.bucket, key, reader, size, minio.PutObjectOptions{
		ContentType: contentType,
	})
	if err != nil {
		return "", fmt.Errorf("failed to upload image: %w", err)
	}

	return s.PublicURL(key), nil
}

// Delete removes the object behind a public URL. Used for best-effort
// cleanup when report creation fails after photos were already uploaded.
func (s *ImageStore) Delete(ctx context.Context, imageURL string) error {
	key := s.KeyFromURL(imageURL)
	if key == "" {
		return fmt.Errorf("could not extract object key from URL %q", imageURL)
	}
	if err := s.client.RemoveObject(ctx, s.bucket, key, minio.RemoveObjectOptions{}); err != nil {
		return fmt.Errorf("failed to delete image: %w", err)
	}
	return nil
}

// PublicURL builds the externally reachable URL for an object key.
func (s *ImageStore) PublicURL(key string) string {
	if strings.Contains(s.publicEndpoint, "://") {
		return fmt.Sprintf("%s/%s/%s", s.publicEndpoint, s.bucket, key)
	}
	scheme := "http"
	if s.useSSL {
		scheme = "https"
	}
	return fmt.Sprintf("%s://%s/%s/%s", scheme, s.publicEndpoint, s.bucket, key)
}

// KeyFromURL extracts the object key from a public URL, or "" when the URL
// does not point into this store's bucket.
func (s *ImageStore) KeyFromURL(imageURL string) string {
	u, err := url.Parse(imageURL)
	if err != nil {
		return ""
	}
	path := strings.TrimPrefix(u.Path, "/")
	prefix := s.bucket + "/"
	if strings.HasPrefix(path, prefix) {
		return strings.TrimPrefix(path, prefix)
	}
	return ""
}

// Health verifies the bucket is reachable.
func (s *ImageStore) Health(ctx context.Context) error {
	exists, err := s.client.BucketExists(ctx, s.bucket)
	if err != nil {
		return fmt.Errorf("storage health check failed: %w", err)
	}
	if !exists {
		return fmt.Errorf("bucket %q does not exist", s.bucket)
	}
	return nil
}
