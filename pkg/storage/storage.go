package storage

import (
	"context"
	"fmt"
	"net/url"
	"time"
)

// Connect verifies the bucket is reachable and marks the client connected.
func (s *implStorage) Connect(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	exists, err := s.minioClient.BucketExists(ctx, s.config.Bucket)
	if err != nil {
		s.connected = false
		return fmt.Errorf("storage: failed to reach bucket %q: %w", s.config.Bucket, err)
	}
	if !exists {
		s.connected = false
		return fmt.Errorf("storage: bucket %q does not exist", s.config.Bucket)
	}

	s.connected = true
	return nil
}

// SignedViewURL returns a presigned GET URL for inline viewing.
func (s *implStorage) SignedViewURL(ctx context.Context, objectPath string, ttl time.Duration) (string, error) {
	if objectPath == "" {
		return "", fmt.Errorf("storage: object path is required")
	}

	u, err := s.minioClient.PresignedGetObject(ctx, s.config.Bucket, objectPath, ttl, nil)
	if err != nil {
		return "", fmt.Errorf("storage: failed to presign view url: %w", err)
	}
	return u.String(), nil
}

// SignedDownloadURL returns a presigned GET URL that forces an attachment
// download with the given file name.
func (s *implStorage) SignedDownloadURL(ctx context.Context, objectPath, fileName string, ttl time.Duration) (string, error) {
	if objectPath == "" {
		return "", fmt.Errorf("storage: object path is required")
	}

	params := make(url.Values)
	params.Set("response-content-disposition", fmt.Sprintf(`attachment; filename="%s"`, fileName))

	u, err := s.minioClient.PresignedGetObject(ctx, s.config.Bucket, objectPath, ttl, params)
	if err != nil {
		return "", fmt.Errorf("storage: failed to presign download url: %w", err)
	}
	return u.String(), nil
}

// HealthCheck verifies the bucket is still reachable.
func (s *implStorage) HealthCheck(ctx context.Context) error {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if _, err := s.minioClient.BucketExists(ctx, s.config.Bucket); err != nil {
		return fmt.Errorf("storage: health check failed: %w", err)
	}
	return nil
}

// Close marks the client disconnected. The MinIO client manages its own
// connection pool, so no explicit shutdown is required.
func (s *implStorage) Close() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.connected = false
	return nil
}
